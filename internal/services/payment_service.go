package services

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log"

	razorpay "github.com/razorpay/razorpay-go"

	"tiffinbox/internal/config"
	dbm "tiffinbox/internal/models/db_models"
	resp "tiffinbox/internal/models/response_models"
	"tiffinbox/internal/repositories"
	"tiffinbox/pkg/middleware"
	"tiffinbox/pkg/utils"
)

// PaymentVerifier is the slice of the gateway adapter the order flow needs:
// a payment is never accepted unless this check passes.
type PaymentVerifier interface {
	VerifySignature(orderID, paymentID, signature string) error
}

type PaymentService interface {
	PaymentVerifier

	// CreateIntent registers an order with the gateway and records a pending
	// transaction keyed by the provider order id.
	CreateIntent(ctx context.Context, userID uint, amountMinor int64, receipt string, notes map[string]string) (*resp.CreatePaymentOrderResponse, error)

	// HandleWebhook verifies the provider signature over the raw payload
	// before trusting any embedded field; unverified payloads are rejected
	// outright.
	HandleWebhook(ctx context.Context, rawBody []byte, signature string) error
}

type paymentService struct {
	cfg      *config.Config
	client   *razorpay.Client
	txns     repositories.TransactionRepository
	orders   repositories.OrderRepository
	notifier NotificationService
}

func NewPaymentService(
	cfg *config.Config,
	txns repositories.TransactionRepository,
	orders repositories.OrderRepository,
	notifier NotificationService,
) PaymentService {
	var client *razorpay.Client
	if cfg.RazorpayKeyID != "" && cfg.RazorpayKeySecret != "" {
		client = razorpay.NewClient(cfg.RazorpayKeyID, cfg.RazorpayKeySecret)
	} else {
		log.Println("razorpay credentials missing, checkout disabled")
	}
	return &paymentService{
		cfg:      cfg,
		client:   client,
		txns:     txns,
		orders:   orders,
		notifier: notifier,
	}
}

func (p *paymentService) CreateIntent(ctx context.Context, userID uint, amountMinor int64, receipt string, notes map[string]string) (*resp.CreatePaymentOrderResponse, error) {
	if p.client == nil {
		return nil, fmt.Errorf("payment gateway not configured")
	}
	if amountMinor <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive", utils.ErrValidation)
	}

	data := map[string]interface{}{
		"amount":   amountMinor,
		"currency": "INR",
		"receipt":  receipt,
	}
	if len(notes) > 0 {
		data["notes"] = notes
	}

	body, err := p.client.Order.Create(data, nil)
	if err != nil {
		return nil, fmt.Errorf("razorpay create order: %w", err)
	}
	providerOrderID, _ := body["id"].(string)
	if providerOrderID == "" {
		return nil, fmt.Errorf("razorpay create order: missing id in response")
	}

	txn := &dbm.Transaction{
		UserID:          userID,
		AmountMinor:     amountMinor,
		Currency:        "INR",
		Status:          dbm.TxnStatusPending,
		Provider:        "razorpay",
		ProviderOrderID: providerOrderID,
		Receipt:         receipt,
	}
	if meta, err := json.Marshal(notes); err == nil {
		txn.Metadata = meta
	}
	if err := p.txns.Insert(ctx, txn); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	return &resp.CreatePaymentOrderResponse{
		ProviderOrderID: providerOrderID,
		AmountMinor:     amountMinor,
		Currency:        "INR",
		KeyID:           p.cfg.RazorpayKeyID,
	}, nil
}

// VerifySignature recomputes HMAC-SHA256 over "orderID|paymentID" with the
// key secret and compares constant-time. Any mismatch fails closed.
func (p *paymentService) VerifySignature(orderID, paymentID, signature string) error {
	expected := computeHMAC(p.cfg.RazorpayKeySecret, orderID+"|"+paymentID)
	if !hmac.Equal([]byte(expected), []byte(signature)) {
		middleware.RecordPaymentVerification(false)
		return utils.ErrPaymentVerificationFailed
	}
	middleware.RecordPaymentVerification(true)
	return nil
}

func computeHMAC(secret, payload string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(payload))
	return hex.EncodeToString(mac.Sum(nil))
}

type webhookPayload struct {
	Event   string `json:"event"`
	Payload struct {
		Payment struct {
			Entity struct {
				ID      string `json:"id"`
				OrderID string `json:"order_id"`
				Status  string `json:"status"`
			} `json:"entity"`
		} `json:"payment"`
	} `json:"payload"`
}

func (p *paymentService) HandleWebhook(ctx context.Context, rawBody []byte, signature string) error {
	// Webhooks are signed with a secret independent from the checkout key.
	expected := computeHMAC(p.cfg.RazorpayWebhookSecret, string(rawBody))
	if !hmac.Equal([]byte(expected), []byte(signature)) {
		middleware.RecordPaymentVerification(false)
		return utils.ErrInvalidSignature
	}
	middleware.RecordPaymentVerification(true)

	var payload webhookPayload
	if err := json.Unmarshal(rawBody, &payload); err != nil {
		return fmt.Errorf("%w: malformed webhook payload", utils.ErrValidation)
	}

	if payload.Event != "payment.captured" {
		log.Printf("webhook: ignoring event %q", payload.Event)
		return nil
	}

	providerOrderID := payload.Payload.Payment.Entity.OrderID
	txn, err := p.txns.FindByProviderOrderID(ctx, providerOrderID)
	if err != nil {
		return fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if txn == nil {
		// Ack unknown orders to avoid a redelivery storm, but keep a trace.
		log.Printf("webhook: no transaction for provider order %s", providerOrderID)
		return nil
	}

	won, err := p.txns.MarkPaid(ctx, providerOrderID)
	if err != nil {
		return fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if !won {
		// Redelivered webhook; the first delivery already did the work.
		return nil
	}

	if txn.OrderID != nil {
		confirmed, err := p.orders.UpdateStatusCAS(ctx, *txn.OrderID,
			dbm.OrderStatusPending, dbm.OrderStatusConfirmed,
			map[string]interface{}{
				"razorpay_order_id":   providerOrderID,
				"razorpay_payment_id": payload.Payload.Payment.Entity.ID,
			})
		if err != nil {
			return fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
		}
		if confirmed {
			p.notifier.Notify(ctx, txn.UserID,
				[]NotificationChannel{ChannelApp, ChannelSMS},
				"Order confirmed", statusNotificationText[dbm.OrderStatusConfirmed])
		}
	}
	return nil
}
