package services

import (
	"context"
	"fmt"
	"time"

	dbm "tiffinbox/internal/models/db_models"
	req "tiffinbox/internal/models/request_models"
	resp "tiffinbox/internal/models/response_models"
	"tiffinbox/internal/repositories"
	"tiffinbox/pkg/utils"
)

var planDurations = map[string]int{
	"weekly":    7,
	"monthly":   30,
	"quarterly": 90,
}

// Per-person plan prices in minor units.
var planPrices = map[string]int64{
	"weekly":    79900,
	"monthly":   299900,
	"quarterly": 849900,
}

type SubscriptionService interface {
	Create(ctx context.Context, userID uint, request req.CreateSubscriptionRequest) (*resp.SubscriptionResponse, error)
	Get(ctx context.Context, id, actorID uint, actorRole string) (*resp.SubscriptionResponse, error)
	ListByUser(ctx context.Context, userID uint) ([]resp.SubscriptionResponse, error)
	ListAll(ctx context.Context) ([]resp.SubscriptionResponse, error)

	// Modify reschedules the undelivered remainder of the plan to resume on
	// a new date.
	Modify(ctx context.Context, id, actorID uint, actorRole string, request req.ModifySubscriptionRequest) (*resp.SubscriptionResponse, error)

	Cancel(ctx context.Context, id, actorID uint, actorRole string) error
}

type subscriptionService struct {
	subs     repositories.SubscriptionRepository
	verifier PaymentVerifier
	notifier NotificationService
}

func NewSubscriptionService(
	subs repositories.SubscriptionRepository,
	verifier PaymentVerifier,
	notifier NotificationService,
) SubscriptionService {
	return &subscriptionService{
		subs:     subs,
		verifier: verifier,
		notifier: notifier,
	}
}

func (s *subscriptionService) decorate(sub dbm.Subscription) resp.SubscriptionResponse {
	status, remaining := ComputeSubscriptionStatus(sub.StartDate, sub.DurationDays, time.Now(), sub.IsCancelled())
	return resp.SubscriptionResponse{
		Subscription:  sub,
		Status:        status,
		EndDate:       SubscriptionEndDate(sub.StartDate, sub.DurationDays).Format("2006-01-02"),
		DaysRemaining: remaining,
	}
}

func (s *subscriptionService) Create(ctx context.Context, userID uint, request req.CreateSubscriptionRequest) (*resp.SubscriptionResponse, error) {
	duration, ok := planDurations[request.Plan]
	if !ok {
		return nil, fmt.Errorf("%w: unknown plan %q", utils.ErrValidation, request.Plan)
	}

	start, err := time.ParseInLocation("2006-01-02", request.StartDate, utils.ISTLocation())
	if err != nil {
		return nil, fmt.Errorf("%w: start_date must be YYYY-MM-DD", utils.ErrValidation)
	}
	if start.Before(utils.Today()) {
		return nil, fmt.Errorf("%w: start_date cannot be in the past", utils.ErrValidation)
	}

	sub := &dbm.Subscription{
		UserID:            userID,
		Plan:              request.Plan,
		StartDate:         start.Unix(),
		DurationDays:      duration,
		MealsPerMonth:     request.MealsPerMonth,
		PersonCount:       request.PersonCount,
		DietaryPreference: request.DietaryPreference,
		PriceMinor:        planPrices[request.Plan] * int64(request.PersonCount),
	}

	if request.Payment != nil {
		pay := request.Payment
		if err := s.verifier.VerifySignature(pay.RazorpayOrderID, pay.RazorpayPaymentID, pay.RazorpaySignature); err != nil {
			return nil, err
		}
		sub.RazorpayOrderID = pay.RazorpayOrderID
		sub.RazorpayPaymentID = pay.RazorpayPaymentID
	}

	if err := s.subs.Insert(ctx, sub); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	s.notifier.Notify(ctx, userID,
		[]NotificationChannel{ChannelApp, ChannelEmail},
		"Subscription created",
		fmt.Sprintf("Your %s meal plan starts on %s.", sub.Plan, request.StartDate))

	out := s.decorate(*sub)
	return &out, nil
}

func (s *subscriptionService) load(ctx context.Context, id, actorID uint, actorRole string) (*dbm.Subscription, error) {
	var sub *dbm.Subscription
	var err error
	if actorRole == dbm.RoleAdmin {
		sub, err = s.subs.FindByID(ctx, id)
	} else {
		sub, err = s.subs.FindByIDAndUser(ctx, id, actorID)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if sub == nil {
		return nil, utils.ErrNotFound
	}
	return sub, nil
}

func (s *subscriptionService) Get(ctx context.Context, id, actorID uint, actorRole string) (*resp.SubscriptionResponse, error) {
	sub, err := s.load(ctx, id, actorID, actorRole)
	if err != nil {
		return nil, err
	}
	out := s.decorate(*sub)
	return &out, nil
}

func (s *subscriptionService) ListByUser(ctx context.Context, userID uint) ([]resp.SubscriptionResponse, error) {
	subs, err := s.subs.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	out := make([]resp.SubscriptionResponse, 0, len(subs))
	for _, sub := range subs {
		out = append(out, s.decorate(sub))
	}
	return out, nil
}

func (s *subscriptionService) ListAll(ctx context.Context) ([]resp.SubscriptionResponse, error) {
	subs, err := s.subs.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	out := make([]resp.SubscriptionResponse, 0, len(subs))
	for _, sub := range subs {
		out = append(out, s.decorate(sub))
	}
	return out, nil
}

func (s *subscriptionService) Modify(ctx context.Context, id, actorID uint, actorRole string, request req.ModifySubscriptionRequest) (*resp.SubscriptionResponse, error) {
	sub, err := s.load(ctx, id, actorID, actorRole)
	if err != nil {
		return nil, err
	}
	if sub.IsCancelled() {
		return nil, fmt.Errorf("%w: subscription is cancelled", utils.ErrValidation)
	}

	resume, err := time.ParseInLocation("2006-01-02", request.ResumeDate, utils.ISTLocation())
	if err != nil {
		return nil, fmt.Errorf("%w: resume_date must be YYYY-MM-DD", utils.ErrValidation)
	}
	if resume.Before(utils.Today()) {
		return nil, fmt.Errorf("%w: resume_date cannot be in the past", utils.ErrValidation)
	}

	// Days already delivered count against the plan; only the remainder is
	// rescheduled.
	delivered := utils.DaysBetween(utils.FromUnixDate(sub.StartDate), utils.Today())
	if delivered < 0 {
		delivered = 0
	}
	remaining := sub.DurationDays - delivered
	if remaining <= 0 {
		return nil, utils.ErrNoRemainingDays
	}

	sub.StartDate = utils.DateOf(resume).Unix()
	sub.DurationDays = remaining
	if err := s.subs.Update(ctx, sub); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	s.notifier.Notify(ctx, sub.UserID,
		[]NotificationChannel{ChannelApp, ChannelEmail},
		"Subscription rescheduled",
		fmt.Sprintf("Your plan resumes on %s with %d days remaining.", request.ResumeDate, remaining))

	out := s.decorate(*sub)
	return &out, nil
}

func (s *subscriptionService) Cancel(ctx context.Context, id, actorID uint, actorRole string) error {
	sub, err := s.load(ctx, id, actorID, actorRole)
	if err != nil {
		return err
	}
	if sub.IsCancelled() {
		return nil
	}
	now := time.Now().Unix()
	sub.CancelledAt = &now
	if err := s.subs.Update(ctx, sub); err != nil {
		return fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	s.notifier.Notify(ctx, sub.UserID,
		[]NotificationChannel{ChannelApp, ChannelEmail},
		"Subscription cancelled", "Your meal plan has been cancelled.")
	return nil
}
