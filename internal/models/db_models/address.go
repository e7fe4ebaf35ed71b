package db_models

// Address belongs to exactly one user. At most one address per user carries
// IsDefault; setting a new default unsets the rest in the same transaction.
type Address struct {
	BaseModel
	UserID    uint   `gorm:"index" json:"user_id"`
	Label     string `json:"label"` // "home", "office", ...
	Line1     string `json:"line1"`
	Line2     string `json:"line2,omitempty"`
	City      string `json:"city"`
	State     string `json:"state"`
	Pincode   string `json:"pincode"`
	Phone     string `json:"phone"`
	IsDefault bool   `gorm:"default:false" json:"is_default"`
}
