package services

import (
	"time"

	dbm "tiffinbox/internal/models/db_models"
	"tiffinbox/pkg/utils"
)

// ComputeSubscriptionStatus derives the subscription status from its
// canonical fields. It is a pure function of its inputs so the status can
// never drift from what is stored. Dates are compared at day granularity in
// IST; the canonical end date is startDate + durationDays (exclusive), i.e.
// the last delivered day is endDate - 1.
func ComputeSubscriptionStatus(startUnix int64, durationDays int, today time.Time, cancelled bool) (dbm.SubscriptionStatus, int) {
	if cancelled {
		return dbm.SubStatusCancelled, 0
	}

	start := utils.FromUnixDate(startUnix)
	day := utils.DateOf(today)

	if day.Before(start) {
		return dbm.SubStatusPending, 0
	}

	end := start.AddDate(0, 0, durationDays)
	if day.Before(end) {
		return dbm.SubStatusActive, utils.DaysBetween(day, end)
	}
	return dbm.SubStatusCompleted, 0
}

// SubscriptionEndDate returns the exclusive end date of a subscription.
func SubscriptionEndDate(startUnix int64, durationDays int) time.Time {
	return utils.FromUnixDate(startUnix).AddDate(0, 0, durationDays)
}
