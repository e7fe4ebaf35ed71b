package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dbm "tiffinbox/internal/models/db_models"
	"tiffinbox/pkg/utils"
)

func TestBuildReport(t *testing.T) {
	f := newFixtures()
	svc := NewDashboardService(f.orders, f.users, f.subs)
	ctx := context.Background()

	seedOrder(t, f, 1, dbm.OrderStatusDelivered)
	seedOrder(t, f, 1, dbm.OrderStatusDelivered)
	seedOrder(t, f, 2, dbm.OrderStatusCancelled)
	seedOrder(t, f, 2, dbm.OrderStatusPending)

	require.NoError(t, f.users.Insert(ctx, &dbm.User{Name: "A", Email: "a@example.com"}))

	require.NoError(t, f.subs.Insert(ctx, &dbm.Subscription{
		UserID: 1, Plan: "monthly",
		StartDate:    utils.Today().AddDate(0, 0, -5).Unix(),
		DurationDays: 30,
	}))
	require.NoError(t, f.subs.Insert(ctx, &dbm.Subscription{
		UserID: 2, Plan: "weekly",
		StartDate:    utils.Today().AddDate(0, 0, -20).Unix(),
		DurationDays: 7,
	}))

	report, err := svc.BuildReport(ctx, "7days")
	require.NoError(t, err)

	assert.Equal(t, "7days", report.Range)
	assert.Equal(t, int64(4), report.OrderCount)
	assert.Equal(t, int64(2), report.DeliveredCount)
	assert.Equal(t, int64(1), report.CancelledCount)
	// Cancelled orders never count towards revenue.
	assert.Equal(t, int64(3*14000), report.RevenueMinor)
	assert.Equal(t, int64(1), report.NewUserCount)
	assert.Equal(t, int64(1), report.ActiveSubscriptions)
}

func TestBuildReportRangeHandling(t *testing.T) {
	f := newFixtures()
	svc := NewDashboardService(f.orders, f.users, f.subs)

	report, err := svc.BuildReport(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, "30days", report.Range)

	_, err = svc.BuildReport(context.Background(), "fortnight")
	assert.ErrorIs(t, err, utils.ErrValidation)
}
