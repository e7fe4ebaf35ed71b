package request_models

type AddressRequest struct {
	Label     string `json:"label" binding:"required"`
	Line1     string `json:"line1" binding:"required"`
	Line2     string `json:"line2"`
	City      string `json:"city" binding:"required"`
	State     string `json:"state" binding:"required"`
	Pincode   string `json:"pincode" binding:"required,len=6"`
	Phone     string `json:"phone" binding:"required"`
	IsDefault bool   `json:"is_default"`
}
