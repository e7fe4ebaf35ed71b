package services

import (
	"context"
	"fmt"
	"log"
	"time"

	dbm "tiffinbox/internal/models/db_models"
	"tiffinbox/internal/repositories"
	"tiffinbox/pkg/utils"
)

const expiryWarningDays = 3

// Sweeper runs the periodic subscription jobs: an hourly pass that warns
// users whose plans are about to run out, and a daily pass that reminds
// active subscribers of the day's delivery.
type Sweeper struct {
	subs     repositories.SubscriptionRepository
	notifier NotificationService

	stop chan struct{}
	done chan struct{}
}

func NewSweeper(subs repositories.SubscriptionRepository, notifier NotificationService) *Sweeper {
	return &Sweeper{
		subs:     subs,
		notifier: notifier,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

func (s *Sweeper) Start() {
	go s.run()
}

func (s *Sweeper) Stop() {
	close(s.stop)
	<-s.done
}

func (s *Sweeper) run() {
	defer close(s.done)

	hourly := time.NewTicker(time.Hour)
	defer hourly.Stop()
	daily := time.NewTicker(24 * time.Hour)
	defer daily.Stop()

	// Warn already-expiring plans on boot instead of waiting an hour.
	s.sweepExpiring()

	for {
		select {
		case <-s.stop:
			return
		case <-hourly.C:
			s.sweepExpiring()
		case <-daily.C:
			s.sweepDeliveryReminders()
		}
	}
}

// lastWarnedDay dedupes the hourly pass so each subscription is warned at
// most once per day.
var lastWarnedDay = map[uint]string{}

func (s *Sweeper) sweepExpiring() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	subs, err := s.subs.ListNotCancelled(ctx)
	if err != nil {
		log.Printf("sweeper: listing subscriptions failed: %v", err)
		return
	}

	now := time.Now()
	today := utils.Today().Format("2006-01-02")
	for _, sub := range subs {
		status, remaining := ComputeSubscriptionStatus(sub.StartDate, sub.DurationDays, now, false)
		if status != dbm.SubStatusActive || remaining > expiryWarningDays {
			continue
		}
		if lastWarnedDay[sub.ID] == today {
			continue
		}
		lastWarnedDay[sub.ID] = today

		s.notifier.Notify(ctx, sub.UserID,
			[]NotificationChannel{ChannelApp, ChannelEmail},
			"Plan ending soon",
			fmt.Sprintf("Your %s meal plan ends in %d day(s). Renew to keep deliveries coming.", sub.Plan, remaining))
	}
}

func (s *Sweeper) sweepDeliveryReminders() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	subs, err := s.subs.ListNotCancelled(ctx)
	if err != nil {
		log.Printf("sweeper: listing subscriptions failed: %v", err)
		return
	}

	now := time.Now()
	for _, sub := range subs {
		status, _ := ComputeSubscriptionStatus(sub.StartDate, sub.DurationDays, now, false)
		if status != dbm.SubStatusActive {
			continue
		}
		s.notifier.Notify(ctx, sub.UserID,
			[]NotificationChannel{ChannelApp},
			"Delivery today",
			"Your tiffin is scheduled for delivery today.")
	}
}
