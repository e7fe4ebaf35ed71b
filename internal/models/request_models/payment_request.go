package request_models

type CreatePaymentOrderRequest struct {
	AmountMinor int64             `json:"amount_minor" binding:"required,min=100"`
	Receipt     string            `json:"receipt"`
	Notes       map[string]string `json:"notes"`
}

type VerifyPaymentRequest struct {
	RazorpayOrderID   string `json:"razorpay_order_id" binding:"required"`
	RazorpayPaymentID string `json:"razorpay_payment_id" binding:"required"`
	RazorpaySignature string `json:"razorpay_signature" binding:"required"`
}
