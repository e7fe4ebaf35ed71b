package db_models

type OrderStatus string

const (
	OrderStatusPending        OrderStatus = "pending"
	OrderStatusConfirmed      OrderStatus = "confirmed"
	OrderStatusPreparing      OrderStatus = "preparing"
	OrderStatusInTransit      OrderStatus = "in_transit"
	OrderStatusOutForDelivery OrderStatus = "out_for_delivery"
	OrderStatusNearby         OrderStatus = "nearby"
	OrderStatusDelivered      OrderStatus = "delivered"
	OrderStatusCancelled      OrderStatus = "cancelled"
)

type Order struct {
	BaseModel
	UserID          uint        `gorm:"index" json:"user_id"`
	Status          OrderStatus `gorm:"type:varchar(20);default:'pending';index" json:"status"`
	TotalMinor      int64       `json:"total_minor"`
	DeliveryMinor   int64       `json:"delivery_minor"`
	DeliveryAddress string      `json:"delivery_address"`
	PaymentMethod   string      `json:"payment_method"` // "razorpay" | "cod"

	// Gateway fields, set once payment is captured.
	RazorpayOrderID   string `gorm:"index" json:"razorpay_order_id,omitempty"`
	RazorpayPaymentID string `json:"razorpay_payment_id,omitempty"`

	Items []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
}

// OrderItem snapshots the cart line at checkout. Prices are frozen here so a
// later catalogue change cannot alter a placed order.
type OrderItem struct {
	BaseModel
	OrderID         uint   `gorm:"index" json:"order_id"`
	MealID          uint   `json:"meal_id"`
	MealName        string `json:"meal_name"`
	CurryOptionID   *uint  `json:"curry_option_id,omitempty"`
	CurryOptionName string `json:"curry_option_name,omitempty"`
	UnitMinor       int64  `json:"unit_minor"` // meal price + curry adjustment
	Quantity        int    `json:"quantity"`
	Notes           string `json:"notes,omitempty"`
}

func (i OrderItem) LineTotalMinor() int64 {
	return i.UnitMinor * int64(i.Quantity)
}
