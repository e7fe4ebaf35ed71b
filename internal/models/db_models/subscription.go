package db_models

// SubscriptionStatus is never persisted. It is recomputed on every read from
// StartDate, DurationDays and the cancelled flag (see services.ComputeSubscriptionStatus),
// so the stored record can never drift from the true status.
type SubscriptionStatus string

const (
	SubStatusPending   SubscriptionStatus = "pending"
	SubStatusActive    SubscriptionStatus = "active"
	SubStatusCompleted SubscriptionStatus = "completed"
	SubStatusCancelled SubscriptionStatus = "cancelled"
)

type Subscription struct {
	BaseModel
	UserID            uint   `gorm:"index" json:"user_id"`
	Plan              string `gorm:"index" json:"plan"` // "weekly" | "monthly" | ...
	StartDate         int64  `gorm:"not null" json:"start_date"`
	DurationDays      int    `gorm:"not null" json:"duration_days"`
	MealsPerMonth     int    `json:"meals_per_month"`
	PersonCount       int    `json:"person_count"`
	DietaryPreference string `json:"dietary_preference"`
	PriceMinor        int64  `json:"price_minor"`
	CancelledAt       *int64 `json:"cancelled_at,omitempty"`

	RazorpayOrderID   string `json:"razorpay_order_id,omitempty"`
	RazorpayPaymentID string `json:"razorpay_payment_id,omitempty"`
}

func (s *Subscription) IsCancelled() bool {
	return s.CancelledAt != nil
}
