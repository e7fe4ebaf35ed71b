package request_models

type PaymentAttempt struct {
	RazorpayOrderID   string `json:"razorpay_order_id" binding:"required"`
	RazorpayPaymentID string `json:"razorpay_payment_id" binding:"required"`
	RazorpaySignature string `json:"razorpay_signature" binding:"required"`
}

type CreateOrderRequest struct {
	AddressID     uint            `json:"address_id" binding:"required"`
	PaymentMethod string          `json:"payment_method" binding:"required,oneof=razorpay cod"`
	Payment       *PaymentAttempt `json:"payment"`
}

type AdvanceOrderRequest struct {
	Status  string          `json:"status" binding:"required"`
	Payment *PaymentAttempt `json:"payment"`
}
