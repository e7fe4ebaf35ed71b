package services

import (
	dbm "tiffinbox/internal/models/db_models"
)

// statusFlow is the forward-only transition allow-list. Terminal statuses map
// to an empty list; anything not listed fails with ErrInvalidTransition.
var statusFlow = map[dbm.OrderStatus][]dbm.OrderStatus{
	dbm.OrderStatusPending:        {dbm.OrderStatusConfirmed, dbm.OrderStatusCancelled},
	dbm.OrderStatusConfirmed:      {dbm.OrderStatusPreparing, dbm.OrderStatusDelivered, dbm.OrderStatusCancelled},
	dbm.OrderStatusPreparing:      {dbm.OrderStatusInTransit},
	dbm.OrderStatusInTransit:      {dbm.OrderStatusOutForDelivery},
	dbm.OrderStatusOutForDelivery: {dbm.OrderStatusNearby, dbm.OrderStatusDelivered},
	dbm.OrderStatusNearby:         {dbm.OrderStatusDelivered},
	dbm.OrderStatusDelivered:      {},
	dbm.OrderStatusCancelled:      {},
}

func CanTransition(from, to dbm.OrderStatus) bool {
	for _, allowed := range statusFlow[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

func IsValidOrderStatus(s dbm.OrderStatus) bool {
	_, ok := statusFlow[s]
	return ok
}

// statusNotificationText maps each reachable status to the delivery update
// pushed through the notification dispatcher.
var statusNotificationText = map[dbm.OrderStatus]string{
	dbm.OrderStatusConfirmed:      "Your order has been confirmed. We will start preparing it shortly.",
	dbm.OrderStatusPreparing:      "Your tiffin is being prepared.",
	dbm.OrderStatusInTransit:      "Your order is on its way.",
	dbm.OrderStatusOutForDelivery: "Your order is out for delivery.",
	dbm.OrderStatusNearby:         "Your delivery partner is nearby. Please be available.",
	dbm.OrderStatusDelivered:      "Your order has been delivered. Enjoy your meal!",
	dbm.OrderStatusCancelled:      "Your order has been cancelled.",
}
