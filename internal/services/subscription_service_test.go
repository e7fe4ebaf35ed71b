package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dbm "tiffinbox/internal/models/db_models"
	req "tiffinbox/internal/models/request_models"
	"tiffinbox/pkg/utils"
)

func newSubscriptionService(f *fixtures) SubscriptionService {
	return NewSubscriptionService(f.subs, stubVerifier{}, noopNotifier{})
}

func istDate(t time.Time) string {
	return t.In(utils.ISTLocation()).Format("2006-01-02")
}

func TestSubscriptionCreate(t *testing.T) {
	f := newFixtures()
	svc := newSubscriptionService(f)
	ctx := context.Background()

	start := utils.Today().AddDate(0, 0, 5)
	sub, err := svc.Create(ctx, 1, req.CreateSubscriptionRequest{
		Plan:          "monthly",
		StartDate:     istDate(start),
		MealsPerMonth: 30,
		PersonCount:   2,
	})
	require.NoError(t, err)

	assert.Equal(t, dbm.SubStatusPending, sub.Status)
	assert.Equal(t, 30, sub.DurationDays)
	assert.Equal(t, planPrices["monthly"]*2, sub.PriceMinor)
	assert.Equal(t, istDate(start.AddDate(0, 0, 30)), sub.EndDate)
}

func TestSubscriptionCreateRejectsPastStart(t *testing.T) {
	f := newFixtures()
	svc := newSubscriptionService(f)

	_, err := svc.Create(context.Background(), 1, req.CreateSubscriptionRequest{
		Plan:          "weekly",
		StartDate:     istDate(utils.Today().AddDate(0, 0, -1)),
		MealsPerMonth: 30,
		PersonCount:   1,
	})
	assert.ErrorIs(t, err, utils.ErrValidation)
}

func TestSubscriptionModifyReschedulesRemainder(t *testing.T) {
	f := newFixtures()
	svc := newSubscriptionService(f)
	ctx := context.Background()

	// Started 10 days ago: 10 delivered, 20 left on a monthly plan.
	started := utils.Today().AddDate(0, 0, -10)
	sub := &dbm.Subscription{
		UserID:       1,
		Plan:         "monthly",
		StartDate:    started.Unix(),
		DurationDays: 30,
	}
	require.NoError(t, f.subs.Insert(ctx, sub))

	resume := utils.Today().AddDate(0, 0, 7)
	out, err := svc.Modify(ctx, sub.ID, 1, dbm.RoleUser, req.ModifySubscriptionRequest{
		ResumeDate: istDate(resume),
	})
	require.NoError(t, err)

	assert.Equal(t, 20, out.DurationDays)
	assert.Equal(t, resume.Unix(), out.StartDate)
	// Last covered day is resume + 19; the exclusive end date is resume + 20.
	assert.Equal(t, istDate(resume.AddDate(0, 0, 20)), out.EndDate)
}

func TestSubscriptionModifyExhaustedPlan(t *testing.T) {
	f := newFixtures()
	svc := newSubscriptionService(f)
	ctx := context.Background()

	sub := &dbm.Subscription{
		UserID:       1,
		Plan:         "weekly",
		StartDate:    utils.Today().AddDate(0, 0, -7).Unix(),
		DurationDays: 7,
	}
	require.NoError(t, f.subs.Insert(ctx, sub))

	_, err := svc.Modify(ctx, sub.ID, 1, dbm.RoleUser, req.ModifySubscriptionRequest{
		ResumeDate: istDate(utils.Today().AddDate(0, 0, 3)),
	})
	assert.ErrorIs(t, err, utils.ErrNoRemainingDays)
}

func TestSubscriptionCancel(t *testing.T) {
	f := newFixtures()
	svc := newSubscriptionService(f)
	ctx := context.Background()

	sub := &dbm.Subscription{
		UserID:       1,
		Plan:         "monthly",
		StartDate:    utils.Today().Unix(),
		DurationDays: 30,
	}
	require.NoError(t, f.subs.Insert(ctx, sub))

	require.NoError(t, svc.Cancel(ctx, sub.ID, 1, dbm.RoleUser))

	out, err := svc.Get(ctx, sub.ID, 1, dbm.RoleUser)
	require.NoError(t, err)
	assert.Equal(t, dbm.SubStatusCancelled, out.Status)
	assert.Equal(t, 0, out.DaysRemaining)

	// Cancelling again is a no-op, not an error.
	require.NoError(t, svc.Cancel(ctx, sub.ID, 1, dbm.RoleUser))

	_, err = svc.Modify(ctx, sub.ID, 1, dbm.RoleUser, req.ModifySubscriptionRequest{
		ResumeDate: istDate(utils.Today().AddDate(0, 0, 3)),
	})
	assert.ErrorIs(t, err, utils.ErrValidation)
}

func TestSubscriptionOwnership(t *testing.T) {
	f := newFixtures()
	svc := newSubscriptionService(f)
	ctx := context.Background()

	sub := &dbm.Subscription{
		UserID:       1,
		Plan:         "monthly",
		StartDate:    utils.Today().Unix(),
		DurationDays: 30,
	}
	require.NoError(t, f.subs.Insert(ctx, sub))

	_, err := svc.Get(ctx, sub.ID, 2, dbm.RoleUser)
	assert.ErrorIs(t, err, utils.ErrNotFound)

	// Admins see every subscription.
	_, err = svc.Get(ctx, sub.ID, 99, dbm.RoleAdmin)
	assert.NoError(t, err)
}
