package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tiffinbox/internal/config"
	dbm "tiffinbox/internal/models/db_models"
	req "tiffinbox/internal/models/request_models"
	"tiffinbox/pkg/utils"
)

func newOrderService(f *fixtures, verifier PaymentVerifier) OrderService {
	cfg := &config.Config{DeliveryChargeMinor: 4000}
	return NewOrderService(cfg, f.orders, f.carts, f.meals, f.addrs, verifier, noopNotifier{})
}

func TestCheckoutEmptyCart(t *testing.T) {
	f := newFixtures()
	svc := newOrderService(f, stubVerifier{})
	addr := f.seedAddress(1)

	_, err := svc.Checkout(context.Background(), 1, req.CreateOrderRequest{
		AddressID:     addr.ID,
		PaymentMethod: "cod",
	})
	assert.ErrorIs(t, err, utils.ErrEmptyCart)
}

func TestCheckoutFreezesPricesAndClearsCart(t *testing.T) {
	f := newFixtures()
	svc := newOrderService(f, stubVerifier{})
	carts := NewCartService(f.carts, f.meals)
	ctx := context.Background()

	meal := f.seedMeal("Special Thali", 10000, curryOption("Extra Paneer", 2000))
	optID := meal.CurryOptions[0].ID
	addr := f.seedAddress(1)

	_, err := carts.Add(ctx, 1, req.AddCartItemRequest{MealID: meal.ID, CurryOptionID: &optID, Quantity: 3})
	require.NoError(t, err)

	order, err := svc.Checkout(ctx, 1, req.CreateOrderRequest{
		AddressID:     addr.ID,
		PaymentMethod: "cod",
	})
	require.NoError(t, err)

	assert.Equal(t, dbm.OrderStatusPending, order.Status)
	require.Len(t, order.Items, 1)
	assert.Equal(t, int64(12000), order.Items[0].UnitMinor)
	// (100.00 + 20.00) * 3 + 40.00 delivery
	assert.Equal(t, int64(40000), order.TotalMinor)

	// Later catalogue edits must not touch the frozen snapshot.
	meal.PriceMinor = 99900
	require.NoError(t, f.meals.Update(ctx, meal))
	reread, err := f.orders.FindByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(12000), reread.Items[0].UnitMinor)

	cart, err := carts.List(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, cart.Lines)
}

func TestCheckoutWithValidPaymentConfirms(t *testing.T) {
	f := newFixtures()
	svc := newOrderService(f, stubVerifier{})
	ctx := context.Background()

	meal := f.seedMeal("Veg Thali", 10000)
	addr := f.seedAddress(1)
	carts := NewCartService(f.carts, f.meals)
	_, err := carts.Add(ctx, 1, req.AddCartItemRequest{MealID: meal.ID, Quantity: 1})
	require.NoError(t, err)

	order, err := svc.Checkout(ctx, 1, req.CreateOrderRequest{
		AddressID:     addr.ID,
		PaymentMethod: "razorpay",
		Payment: &req.PaymentAttempt{
			RazorpayOrderID:   "order_1",
			RazorpayPaymentID: "pay_1",
			RazorpaySignature: "sig",
		},
	})
	require.NoError(t, err)
	assert.Equal(t, dbm.OrderStatusConfirmed, order.Status)
	assert.Equal(t, "order_1", order.RazorpayOrderID)
}

func TestCheckoutWithBadPaymentWritesNothing(t *testing.T) {
	f := newFixtures()
	svc := newOrderService(f, stubVerifier{err: utils.ErrPaymentVerificationFailed})
	ctx := context.Background()

	meal := f.seedMeal("Veg Thali", 10000)
	addr := f.seedAddress(1)
	carts := NewCartService(f.carts, f.meals)
	_, err := carts.Add(ctx, 1, req.AddCartItemRequest{MealID: meal.ID, Quantity: 1})
	require.NoError(t, err)

	_, err = svc.Checkout(ctx, 1, req.CreateOrderRequest{
		AddressID:     addr.ID,
		PaymentMethod: "razorpay",
		Payment: &req.PaymentAttempt{
			RazorpayOrderID:   "order_1",
			RazorpayPaymentID: "pay_1",
			RazorpaySignature: "tampered",
		},
	})
	assert.ErrorIs(t, err, utils.ErrPaymentVerificationFailed)

	orders, err := f.orders.ListByUser(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, orders)

	// Cart survives the failed checkout.
	cart, err := carts.List(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, cart.Lines, 1)
}

func seedOrder(t *testing.T, f *fixtures, userID uint, status dbm.OrderStatus) *dbm.Order {
	t.Helper()
	order := &dbm.Order{
		UserID:        userID,
		Status:        status,
		TotalMinor:    14000,
		PaymentMethod: "cod",
	}
	require.NoError(t, f.orders.Insert(context.Background(), order))
	return order
}

func TestAdvanceFollowsAllowList(t *testing.T) {
	f := newFixtures()
	svc := newOrderService(f, stubVerifier{})
	ctx := context.Background()

	order := seedOrder(t, f, 1, dbm.OrderStatusConfirmed)

	updated, err := svc.Advance(ctx, order.ID, dbm.OrderStatusPreparing, 99, dbm.RoleManager, nil)
	require.NoError(t, err)
	assert.Equal(t, dbm.OrderStatusPreparing, updated.Status)

	// Skipping ahead is refused and the stored status is untouched.
	_, err = svc.Advance(ctx, order.ID, dbm.OrderStatusDelivered, 99, dbm.RoleManager, nil)
	assert.ErrorIs(t, err, utils.ErrInvalidTransition)

	reread, err := f.orders.FindByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, dbm.OrderStatusPreparing, reread.Status)
}

func TestAdvanceTerminalStatusesAreImmutable(t *testing.T) {
	f := newFixtures()
	svc := newOrderService(f, stubVerifier{})
	ctx := context.Background()

	for _, terminal := range []dbm.OrderStatus{dbm.OrderStatusDelivered, dbm.OrderStatusCancelled} {
		order := seedOrder(t, f, 1, terminal)
		_, err := svc.Advance(ctx, order.ID, dbm.OrderStatusConfirmed, 99, dbm.RoleAdmin, nil)
		assert.ErrorIs(t, err, utils.ErrInvalidTransition)
	}
}

func TestAdvanceCustomerRules(t *testing.T) {
	f := newFixtures()
	svc := newOrderService(f, stubVerifier{})
	ctx := context.Background()

	order := seedOrder(t, f, 1, dbm.OrderStatusPending)

	// Customers cannot drive the delivery chain.
	_, err := svc.Advance(ctx, order.ID, dbm.OrderStatusConfirmed, 1, dbm.RoleUser, nil)
	assert.ErrorIs(t, err, utils.ErrForbidden)

	// Another customer's order reads as missing, not forbidden.
	_, err = svc.Advance(ctx, order.ID, dbm.OrderStatusCancelled, 2, dbm.RoleUser, nil)
	assert.ErrorIs(t, err, utils.ErrNotFound)

	updated, err := svc.Advance(ctx, order.ID, dbm.OrderStatusCancelled, 1, dbm.RoleUser, nil)
	require.NoError(t, err)
	assert.Equal(t, dbm.OrderStatusCancelled, updated.Status)

	// Once confirmed the customer can no longer cancel.
	confirmed := seedOrder(t, f, 1, dbm.OrderStatusConfirmed)
	_, err = svc.Advance(ctx, confirmed.ID, dbm.OrderStatusCancelled, 1, dbm.RoleUser, nil)
	assert.ErrorIs(t, err, utils.ErrInvalidTransition)
}

func TestAdvanceRejectsUnknownStatus(t *testing.T) {
	f := newFixtures()
	svc := newOrderService(f, stubVerifier{})

	order := seedOrder(t, f, 1, dbm.OrderStatusPending)
	_, err := svc.Advance(context.Background(), order.ID, dbm.OrderStatus("shipped"), 99, dbm.RoleAdmin, nil)
	assert.ErrorIs(t, err, utils.ErrValidation)
}
