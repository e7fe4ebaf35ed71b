package request_models

type CurryOptionInput struct {
	Name       string `json:"name" binding:"required"`
	PriceMinor int64  `json:"price_minor"`
}

type MealRequest struct {
	Name         string             `json:"name" binding:"required"`
	Description  string             `json:"description"`
	Image        string             `json:"image"`
	PriceMinor   int64              `json:"price_minor" binding:"required,min=1"`
	Category     string             `json:"category" binding:"required"`
	IsAvailable  *bool              `json:"is_available"`
	CurryOptions []CurryOptionInput `json:"curry_options"`
}
