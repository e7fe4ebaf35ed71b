package response_models

type CreatePaymentOrderResponse struct {
	ProviderOrderID string `json:"provider_order_id"`
	AmountMinor     int64  `json:"amount_minor"`
	Currency        string `json:"currency"`
	KeyID           string `json:"key_id"` // public key for the checkout widget
}
