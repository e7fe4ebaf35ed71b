package db_models

// Meal is a catalogue entry. Prices are stored in minor units (paise).
type Meal struct {
	BaseModel
	Name        string `json:"name"`
	Description string `json:"description"`
	Image       string `json:"image"`
	PriceMinor  int64  `json:"price_minor"`
	Category    string `gorm:"index" json:"category"` // "veg" | "non_veg" | ...
	IsAvailable bool   `gorm:"default:true" json:"is_available"`

	CurryOptions []CurryOption `gorm:"foreignKey:MealID;constraint:OnDelete:CASCADE" json:"curry_options,omitempty"`
}

// CurryOption is a priced add-on attached to a meal; PriceMinor adjusts the
// meal's unit price when selected.
type CurryOption struct {
	BaseModel
	MealID     uint   `gorm:"index" json:"meal_id"`
	Name       string `json:"name"`
	PriceMinor int64  `json:"price_minor"`
}
