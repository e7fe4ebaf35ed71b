package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	dbm "tiffinbox/internal/models/db_models"
	"tiffinbox/pkg/utils"
)

func ist(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, utils.ISTLocation())
}

func TestComputeSubscriptionStatus(t *testing.T) {
	start := ist(2026, time.March, 1)

	tests := []struct {
		name          string
		start         time.Time
		durationDays  int
		today         time.Time
		cancelled     bool
		wantStatus    dbm.SubscriptionStatus
		wantRemaining int
	}{
		{
			name:         "before start is pending",
			start:        start,
			durationDays: 30,
			today:        ist(2026, time.February, 24),
			wantStatus:   dbm.SubStatusPending,
		},
		{
			name:          "first day is active with full duration remaining",
			start:         start,
			durationDays:  30,
			today:         start,
			wantStatus:    dbm.SubStatusActive,
			wantRemaining: 30,
		},
		{
			name:          "ten days in leaves twenty",
			start:         start,
			durationDays:  30,
			today:         ist(2026, time.March, 11),
			wantStatus:    dbm.SubStatusActive,
			wantRemaining: 20,
		},
		{
			name:          "last covered day has one remaining",
			start:         start,
			durationDays:  30,
			today:         ist(2026, time.March, 30),
			wantStatus:    dbm.SubStatusActive,
			wantRemaining: 1,
		},
		{
			name:         "day after the plan is completed",
			start:        start,
			durationDays: 30,
			today:        ist(2026, time.March, 31),
			wantStatus:   dbm.SubStatusCompleted,
		},
		{
			name:         "cancelled wins over everything",
			start:        start,
			durationDays: 30,
			today:        ist(2026, time.March, 11),
			cancelled:    true,
			wantStatus:   dbm.SubStatusCancelled,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, remaining := ComputeSubscriptionStatus(tt.start.Unix(), tt.durationDays, tt.today, tt.cancelled)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantRemaining, remaining)
		})
	}
}

func TestComputeSubscriptionStatusIdempotent(t *testing.T) {
	start := ist(2026, time.March, 1)
	today := ist(2026, time.March, 11)

	s1, r1 := ComputeSubscriptionStatus(start.Unix(), 30, today, false)
	s2, r2 := ComputeSubscriptionStatus(start.Unix(), 30, today, false)
	assert.Equal(t, s1, s2)
	assert.Equal(t, r1, r2)
}

func TestSubscriptionEndDate(t *testing.T) {
	start := ist(2026, time.March, 1)
	end := SubscriptionEndDate(start.Unix(), 7)
	assert.Equal(t, ist(2026, time.March, 8), end)
}
