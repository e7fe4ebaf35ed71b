package services

import (
	"context"
	"fmt"
	"log"

	"tiffinbox/internal/config"
	dbm "tiffinbox/internal/models/db_models"
	req "tiffinbox/internal/models/request_models"
	"tiffinbox/internal/repositories"
	"tiffinbox/pkg/utils"
)

type OrderService interface {
	// Checkout snapshots the user's cart into a new order and clears the
	// cart. With a valid payment attempt the order is created confirmed;
	// otherwise it starts pending.
	Checkout(ctx context.Context, userID uint, request req.CreateOrderRequest) (*dbm.Order, error)

	// Advance moves the order along the forward-only status flow, enforcing
	// the allow-list and actor permissions.
	Advance(ctx context.Context, orderID uint, newStatus dbm.OrderStatus, actorID uint, actorRole string, payment *req.PaymentAttempt) (*dbm.Order, error)

	Get(ctx context.Context, orderID, actorID uint, actorRole string) (*dbm.Order, error)
	ListByUser(ctx context.Context, userID uint) ([]dbm.Order, error)
	ListAll(ctx context.Context) ([]dbm.Order, error)
}

type orderService struct {
	cfg       *config.Config
	orders    repositories.OrderRepository
	carts     repositories.CartRepository
	meals     repositories.MealRepository
	addresses repositories.AddressRepository
	verifier  PaymentVerifier
	notifier  NotificationService
}

func NewOrderService(
	cfg *config.Config,
	orders repositories.OrderRepository,
	carts repositories.CartRepository,
	meals repositories.MealRepository,
	addresses repositories.AddressRepository,
	verifier PaymentVerifier,
	notifier NotificationService,
) OrderService {
	return &orderService{
		cfg:       cfg,
		orders:    orders,
		carts:     carts,
		meals:     meals,
		addresses: addresses,
		verifier:  verifier,
		notifier:  notifier,
	}
}

func (s *orderService) Checkout(ctx context.Context, userID uint, request req.CreateOrderRequest) (*dbm.Order, error) {
	items, err := s.carts.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if len(items) == 0 {
		return nil, utils.ErrEmptyCart
	}

	addr, err := s.addresses.FindByIDAndUser(ctx, request.AddressID, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if addr == nil {
		return nil, utils.ErrNotFound
	}

	order := &dbm.Order{
		UserID:          userID,
		Status:          dbm.OrderStatusPending,
		DeliveryMinor:   s.cfg.DeliveryChargeMinor,
		DeliveryAddress: formatAddress(addr),
		PaymentMethod:   request.PaymentMethod,
	}

	// Line prices are resolved from the live catalogue and frozen onto the
	// order items.
	for _, item := range items {
		meal, err := s.meals.FindByID(ctx, item.MealID)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
		}
		if meal == nil || !meal.IsAvailable {
			return nil, fmt.Errorf("%w: meal %d no longer available", utils.ErrValidation, item.MealID)
		}

		unit := meal.PriceMinor
		optionName := ""
		if item.CurryOptionID != nil {
			opt, err := s.meals.FindCurryOption(ctx, item.MealID, *item.CurryOptionID)
			if err != nil {
				return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
			}
			if opt == nil {
				return nil, fmt.Errorf("%w: curry option %d no longer available", utils.ErrValidation, *item.CurryOptionID)
			}
			unit += opt.PriceMinor
			optionName = opt.Name
		}

		line := dbm.OrderItem{
			MealID:          item.MealID,
			MealName:        meal.Name,
			CurryOptionID:   item.CurryOptionID,
			CurryOptionName: optionName,
			UnitMinor:       unit,
			Quantity:        item.Quantity,
			Notes:           item.Notes,
		}
		order.Items = append(order.Items, line)
		order.TotalMinor += line.LineTotalMinor()
	}
	order.TotalMinor += order.DeliveryMinor

	// A payment attempt supplied at checkout confirms the order atomically;
	// an invalid signature fails the whole checkout and nothing is written.
	if request.Payment != nil {
		pay := request.Payment
		if err := s.verifier.VerifySignature(pay.RazorpayOrderID, pay.RazorpayPaymentID, pay.RazorpaySignature); err != nil {
			return nil, err
		}
		order.Status = dbm.OrderStatusConfirmed
		order.RazorpayOrderID = pay.RazorpayOrderID
		order.RazorpayPaymentID = pay.RazorpayPaymentID
	}

	if err := s.orders.Insert(ctx, order); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if err := s.carts.Clear(ctx, userID); err != nil {
		// The order exists; a lingering cart is an annoyance, not a failure.
		log.Printf("checkout: clearing cart for user %d failed: %v", userID, err)
	}

	if order.Status == dbm.OrderStatusConfirmed {
		s.notifier.Notify(ctx, userID,
			[]NotificationChannel{ChannelApp, ChannelSMS},
			"Order confirmed", statusNotificationText[dbm.OrderStatusConfirmed])
	}
	return order, nil
}

func (s *orderService) Advance(ctx context.Context, orderID uint, newStatus dbm.OrderStatus, actorID uint, actorRole string, payment *req.PaymentAttempt) (*dbm.Order, error) {
	if !IsValidOrderStatus(newStatus) {
		return nil, fmt.Errorf("%w: unknown status %q", utils.ErrValidation, newStatus)
	}

	var order *dbm.Order
	var err error
	switch actorRole {
	case dbm.RoleAdmin, dbm.RoleManager:
		order, err = s.orders.FindByID(ctx, orderID)
	default:
		// Customers may only cancel their own pending orders; everything
		// else on the delivery chain is staff-driven.
		if newStatus != dbm.OrderStatusCancelled {
			return nil, utils.ErrForbidden
		}
		order, err = s.orders.FindByIDAndUser(ctx, orderID, actorID)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if order == nil {
		return nil, utils.ErrNotFound
	}

	if !CanTransition(order.Status, newStatus) {
		return nil, utils.ErrInvalidTransition
	}
	// Staff may cancel a confirmed order; customers lose the option the
	// moment the kitchen has it.
	if actorRole != dbm.RoleAdmin && actorRole != dbm.RoleManager &&
		newStatus == dbm.OrderStatusCancelled && order.Status != dbm.OrderStatusPending {
		return nil, utils.ErrInvalidTransition
	}

	extra := map[string]interface{}{}
	if newStatus == dbm.OrderStatusConfirmed && payment != nil {
		if err := s.verifier.VerifySignature(payment.RazorpayOrderID, payment.RazorpayPaymentID, payment.RazorpaySignature); err != nil {
			return nil, err
		}
		extra["razorpay_order_id"] = payment.RazorpayOrderID
		extra["razorpay_payment_id"] = payment.RazorpayPaymentID
	}

	won, err := s.orders.UpdateStatusCAS(ctx, orderID, order.Status, newStatus, extra)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if !won {
		// A concurrent transition got there first; re-running the allow-list
		// from the new current status is the caller's decision.
		return nil, utils.ErrInvalidTransition
	}

	if text, ok := statusNotificationText[newStatus]; ok {
		s.notifier.Notify(ctx, order.UserID,
			[]NotificationChannel{ChannelApp, ChannelSMS},
			"Order update", text)
	}

	updated, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return updated, nil
}

func (s *orderService) Get(ctx context.Context, orderID, actorID uint, actorRole string) (*dbm.Order, error) {
	var order *dbm.Order
	var err error
	if actorRole == dbm.RoleAdmin || actorRole == dbm.RoleManager {
		order, err = s.orders.FindByID(ctx, orderID)
	} else {
		order, err = s.orders.FindByIDAndUser(ctx, orderID, actorID)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if order == nil {
		return nil, utils.ErrNotFound
	}
	return order, nil
}

func (s *orderService) ListByUser(ctx context.Context, userID uint) ([]dbm.Order, error) {
	orders, err := s.orders.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return orders, nil
}

func (s *orderService) ListAll(ctx context.Context) ([]dbm.Order, error) {
	orders, err := s.orders.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return orders, nil
}

func formatAddress(a *dbm.Address) string {
	out := a.Line1
	if a.Line2 != "" {
		out += ", " + a.Line2
	}
	return fmt.Sprintf("%s, %s, %s - %s", out, a.City, a.State, a.Pincode)
}
