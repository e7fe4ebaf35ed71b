package request_models

type CreateSubscriptionRequest struct {
	Plan              string          `json:"plan" binding:"required,oneof=weekly monthly quarterly"`
	StartDate         string          `json:"start_date" binding:"required"` // "2006-01-02"
	MealsPerMonth     int             `json:"meals_per_month" binding:"required,min=1"`
	PersonCount       int             `json:"person_count" binding:"required,min=1"`
	DietaryPreference string          `json:"dietary_preference" binding:"omitempty,oneof=veg non_veg jain"`
	Payment           *PaymentAttempt `json:"payment"`
}

type ModifySubscriptionRequest struct {
	ResumeDate string `json:"resume_date" binding:"required"` // "2006-01-02"
}
