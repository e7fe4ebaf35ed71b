package request_models

type AddCartItemRequest struct {
	MealID        uint   `json:"meal_id" binding:"required"`
	CurryOptionID *uint  `json:"curry_option_id"`
	Quantity      int    `json:"quantity" binding:"required,min=1"`
	Notes         string `json:"notes"`
}

// UpdateCartItemRequest carries partial updates; nil fields are left alone.
type UpdateCartItemRequest struct {
	Quantity      *int    `json:"quantity" binding:"omitempty,min=1"`
	Notes         *string `json:"notes"`
	CurryOptionID *uint   `json:"curry_option_id"`
}
