package response_models

import dbm "tiffinbox/internal/models/db_models"

type SubscriptionResponse struct {
	dbm.Subscription
	Status        dbm.SubscriptionStatus `json:"status"`
	EndDate       string                 `json:"end_date"` // "2006-01-02", day after last delivery
	DaysRemaining int                    `json:"days_remaining"`
}
