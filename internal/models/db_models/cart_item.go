package db_models

// CartItem is one line of a user's cart. One row per
// (user, meal, curry option); adding the same combination again increments
// Quantity instead of inserting a duplicate.
type CartItem struct {
	BaseModel
	UserID        uint   `gorm:"index:idx_cart_user_meal_option,priority:1" json:"user_id"`
	MealID        uint   `gorm:"index:idx_cart_user_meal_option,priority:2" json:"meal_id"`
	CurryOptionID *uint  `gorm:"index:idx_cart_user_meal_option,priority:3" json:"curry_option_id,omitempty"`
	Quantity      int    `gorm:"not null" json:"quantity"`
	Notes         string `json:"notes,omitempty"`

	// Denormalised for display; authoritative prices are resolved from the
	// catalogue at read and checkout time.
	CurryOptionName string `json:"curry_option_name,omitempty"`
}
