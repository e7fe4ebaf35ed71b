package response_models

type AnalyticsReport struct {
	Range               string           `json:"range"`
	OrderCount          int64            `json:"order_count"`
	DeliveredCount      int64            `json:"delivered_count"`
	CancelledCount      int64            `json:"cancelled_count"`
	RevenueMinor        int64            `json:"revenue_minor"`
	NewUserCount        int64            `json:"new_user_count"`
	ActiveSubscriptions int64            `json:"active_subscriptions"`
	OrdersByStatus      map[string]int64 `json:"orders_by_status"`
}
