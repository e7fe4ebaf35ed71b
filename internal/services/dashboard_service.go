package services

import (
	"context"
	"fmt"
	"time"

	dbm "tiffinbox/internal/models/db_models"
	resp "tiffinbox/internal/models/response_models"
	"tiffinbox/internal/repositories"
	"tiffinbox/pkg/utils"
)

var rangeDurations = map[string]time.Duration{
	"7days":  7 * 24 * time.Hour,
	"30days": 30 * 24 * time.Hour,
	"90days": 90 * 24 * time.Hour,
	"year":   365 * 24 * time.Hour,
}

type DashboardService interface {
	BuildReport(ctx context.Context, rng string) (*resp.AnalyticsReport, error)
}

type dashboardService struct {
	orders repositories.OrderRepository
	users  repositories.UserRepository
	subs   repositories.SubscriptionRepository
}

func NewDashboardService(
	orders repositories.OrderRepository,
	users repositories.UserRepository,
	subs repositories.SubscriptionRepository,
) DashboardService {
	return &dashboardService{orders: orders, users: users, subs: subs}
}

func (s *dashboardService) BuildReport(ctx context.Context, rng string) (*resp.AnalyticsReport, error) {
	if rng == "" {
		rng = "30days"
	}
	window, ok := rangeDurations[rng]
	if !ok {
		return nil, fmt.Errorf("%w: unknown range %q", utils.ErrValidation, rng)
	}
	since := time.Now().Add(-window).Unix()

	report := &resp.AnalyticsReport{Range: rng}

	var err error
	if report.OrderCount, err = s.orders.CountSince(ctx, since); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if report.OrdersByStatus, err = s.orders.CountByStatusSince(ctx, since); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	report.DeliveredCount = report.OrdersByStatus[string(dbm.OrderStatusDelivered)]
	report.CancelledCount = report.OrdersByStatus[string(dbm.OrderStatusCancelled)]

	if report.RevenueMinor, err = s.orders.RevenueSince(ctx, since); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if report.NewUserCount, err = s.users.CountCreatedSince(ctx, since); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	// Active is a derived state, so counting goes through the same pure
	// status computation as the subscription endpoints.
	subs, err := s.subs.ListNotCancelled(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	now := time.Now()
	for _, sub := range subs {
		status, _ := ComputeSubscriptionStatus(sub.StartDate, sub.DurationDays, now, false)
		if status == dbm.SubStatusActive {
			report.ActiveSubscriptions++
		}
	}

	return report, nil
}
