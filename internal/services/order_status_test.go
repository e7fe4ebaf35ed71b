package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	dbm "tiffinbox/internal/models/db_models"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name string
		from dbm.OrderStatus
		to   dbm.OrderStatus
		want bool
	}{
		{"pending to confirmed", dbm.OrderStatusPending, dbm.OrderStatusConfirmed, true},
		{"pending to cancelled", dbm.OrderStatusPending, dbm.OrderStatusCancelled, true},
		{"pending cannot skip to delivered", dbm.OrderStatusPending, dbm.OrderStatusDelivered, false},
		{"confirmed to preparing", dbm.OrderStatusConfirmed, dbm.OrderStatusPreparing, true},
		{"confirmed straight to delivered", dbm.OrderStatusConfirmed, dbm.OrderStatusDelivered, true},
		{"confirmed to cancelled", dbm.OrderStatusConfirmed, dbm.OrderStatusCancelled, true},
		{"preparing to in_transit", dbm.OrderStatusPreparing, dbm.OrderStatusInTransit, true},
		{"preparing cannot cancel", dbm.OrderStatusPreparing, dbm.OrderStatusCancelled, false},
		{"no backwards moves", dbm.OrderStatusInTransit, dbm.OrderStatusPreparing, false},
		{"out_for_delivery to nearby", dbm.OrderStatusOutForDelivery, dbm.OrderStatusNearby, true},
		{"out_for_delivery to delivered", dbm.OrderStatusOutForDelivery, dbm.OrderStatusDelivered, true},
		{"nearby to delivered", dbm.OrderStatusNearby, dbm.OrderStatusDelivered, true},
		{"delivered is terminal", dbm.OrderStatusDelivered, dbm.OrderStatusCancelled, false},
		{"cancelled is terminal", dbm.OrderStatusCancelled, dbm.OrderStatusPending, false},
		{"self transition rejected", dbm.OrderStatusConfirmed, dbm.OrderStatusConfirmed, false},
		{"unknown source rejected", dbm.OrderStatus("bogus"), dbm.OrderStatusPending, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanTransition(tt.from, tt.to))
		})
	}
}

func TestIsValidOrderStatus(t *testing.T) {
	assert.True(t, IsValidOrderStatus(dbm.OrderStatusNearby))
	assert.True(t, IsValidOrderStatus(dbm.OrderStatusCancelled))
	assert.False(t, IsValidOrderStatus(dbm.OrderStatus("shipped")))
	assert.False(t, IsValidOrderStatus(dbm.OrderStatus("")))
}
