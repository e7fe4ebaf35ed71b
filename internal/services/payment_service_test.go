package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tiffinbox/internal/config"
	dbm "tiffinbox/internal/models/db_models"
	"tiffinbox/pkg/utils"
)

const (
	testKeySecret     = "key-secret"
	testWebhookSecret = "webhook-secret"
)

func newPaymentService(f *fixtures) PaymentService {
	cfg := &config.Config{
		RazorpayKeySecret:     testKeySecret,
		RazorpayWebhookSecret: testWebhookSecret,
	}
	return NewPaymentService(cfg, f.txns, f.orders, noopNotifier{})
}

func TestVerifySignature(t *testing.T) {
	svc := newPaymentService(newFixtures())

	valid := computeHMAC(testKeySecret, "order_abc|pay_xyz")

	require.NoError(t, svc.VerifySignature("order_abc", "pay_xyz", valid))

	tests := []struct {
		name      string
		orderID   string
		paymentID string
		signature string
	}{
		{"flipped hex digit", "order_abc", "pay_xyz", flipLastChar(valid)},
		{"signature for different order", "order_other", "pay_xyz", valid},
		{"empty signature", "order_abc", "pay_xyz", ""},
		{"signed with the webhook secret", "order_abc", "pay_xyz", computeHMAC(testWebhookSecret, "order_abc|pay_xyz")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.VerifySignature(tt.orderID, tt.paymentID, tt.signature)
			assert.ErrorIs(t, err, utils.ErrPaymentVerificationFailed)
		})
	}
}

func flipLastChar(s string) string {
	last := s[len(s)-1]
	if last == '0' {
		return s[:len(s)-1] + "1"
	}
	return s[:len(s)-1] + "0"
}

func webhookBody(providerOrderID, paymentID string) []byte {
	return []byte(fmt.Sprintf(
		`{"event":"payment.captured","payload":{"payment":{"entity":{"id":%q,"order_id":%q,"status":"captured"}}}}`,
		paymentID, providerOrderID))
}

func TestHandleWebhookRejectsBadSignature(t *testing.T) {
	svc := newPaymentService(newFixtures())
	body := webhookBody("order_abc", "pay_xyz")

	err := svc.HandleWebhook(context.Background(), body, "nonsense")
	assert.ErrorIs(t, err, utils.ErrInvalidSignature)

	// Signing with the checkout secret instead of the webhook secret fails too.
	err = svc.HandleWebhook(context.Background(), body, computeHMAC(testKeySecret, string(body)))
	assert.ErrorIs(t, err, utils.ErrInvalidSignature)
}

func TestHandleWebhookConfirmsOrder(t *testing.T) {
	f := newFixtures()
	svc := newPaymentService(f)
	ctx := context.Background()

	order := &dbm.Order{UserID: 1, Status: dbm.OrderStatusPending, TotalMinor: 40000}
	require.NoError(t, f.orders.Insert(ctx, order))

	txn := &dbm.Transaction{
		UserID:          1,
		OrderID:         &order.ID,
		AmountMinor:     40000,
		Currency:        "INR",
		Status:          dbm.TxnStatusPending,
		Provider:        "razorpay",
		ProviderOrderID: "order_abc",
	}
	require.NoError(t, f.txns.Insert(ctx, txn))

	body := webhookBody("order_abc", "pay_xyz")
	sig := computeHMAC(testWebhookSecret, string(body))

	require.NoError(t, svc.HandleWebhook(ctx, body, sig))

	reread, err := f.orders.FindByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, dbm.OrderStatusConfirmed, reread.Status)
	assert.Equal(t, "pay_xyz", reread.RazorpayPaymentID)

	stored, err := f.txns.FindByProviderOrderID(ctx, "order_abc")
	require.NoError(t, err)
	assert.Equal(t, dbm.TxnStatusPaid, stored.Status)

	// Redelivery is a no-op and the order stays confirmed.
	require.NoError(t, svc.HandleWebhook(ctx, body, sig))
	reread, err = f.orders.FindByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, dbm.OrderStatusConfirmed, reread.Status)
}

func TestHandleWebhookIgnoresUnknownOrdersAndEvents(t *testing.T) {
	svc := newPaymentService(newFixtures())
	ctx := context.Background()

	body := webhookBody("order_unknown", "pay_1")
	require.NoError(t, svc.HandleWebhook(ctx, body, computeHMAC(testWebhookSecret, string(body))))

	other := []byte(`{"event":"payment.failed","payload":{"payment":{"entity":{"id":"pay_2","order_id":"order_abc","status":"failed"}}}}`)
	require.NoError(t, svc.HandleWebhook(ctx, other, computeHMAC(testWebhookSecret, string(other))))
}
