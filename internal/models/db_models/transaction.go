package db_models

import "gorm.io/datatypes"

type TransactionStatus string

const (
	TxnStatusPending  TransactionStatus = "pending"
	TxnStatusPaid     TransactionStatus = "paid"
	TxnStatusFailed   TransactionStatus = "failed"
	TxnStatusRefunded TransactionStatus = "refunded"
)

// Transaction links a local order or subscription to a Razorpay order. The
// provider order id is the idempotency key across webhook redeliveries.
type Transaction struct {
	BaseModel
	UserID         uint              `gorm:"index" json:"user_id"`
	OrderID        *uint             `gorm:"index" json:"order_id,omitempty"`
	SubscriptionID *uint             `gorm:"index" json:"subscription_id,omitempty"`
	AmountMinor    int64             `json:"amount_minor"`
	Currency       string            `gorm:"size:3;default:INR" json:"currency"`
	Status         TransactionStatus `gorm:"type:varchar(20);index" json:"status"`

	Provider        string `gorm:"default:razorpay" json:"provider"`
	ProviderOrderID string `gorm:"uniqueIndex" json:"provider_order_id"`
	Receipt         string `json:"receipt"`

	PaidAt   *int64         `json:"paid_at,omitempty"`
	Metadata datatypes.JSON `gorm:"type:jsonb;default:'{}'" json:"metadata,omitempty"`
}
