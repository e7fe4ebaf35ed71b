package repositories

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dbm "tiffinbox/internal/models/db_models"
)

func TestOrderUpdateStatusCAS(t *testing.T) {
	r := NewMemoryOrderRepository(NewMemorySequence())
	ctx := context.Background()

	order := &dbm.Order{UserID: 1, Status: dbm.OrderStatusPending}
	require.NoError(t, r.Insert(ctx, order))

	won, err := r.UpdateStatusCAS(ctx, order.ID, dbm.OrderStatusPending, dbm.OrderStatusConfirmed, nil)
	require.NoError(t, err)
	assert.True(t, won)

	// Stale expected status loses.
	won, err = r.UpdateStatusCAS(ctx, order.ID, dbm.OrderStatusPending, dbm.OrderStatusCancelled, nil)
	require.NoError(t, err)
	assert.False(t, won)

	got, err := r.FindByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, dbm.OrderStatusConfirmed, got.Status)
}

func TestOrderUpdateStatusCASConcurrent(t *testing.T) {
	r := NewMemoryOrderRepository(NewMemorySequence())
	ctx := context.Background()

	order := &dbm.Order{UserID: 1, Status: dbm.OrderStatusPending}
	require.NoError(t, r.Insert(ctx, order))

	const racers = 16
	var wg sync.WaitGroup
	wins := make(chan bool, racers)
	for i := 0; i < racers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			won, err := r.UpdateStatusCAS(ctx, order.ID, dbm.OrderStatusPending, dbm.OrderStatusConfirmed, nil)
			assert.NoError(t, err)
			wins <- won
		}()
	}
	wg.Wait()
	close(wins)

	winners := 0
	for won := range wins {
		if won {
			winners++
		}
	}
	assert.Equal(t, 1, winners)
}

func TestOrderInsertAssignsSequentialIDs(t *testing.T) {
	r := NewMemoryOrderRepository(NewMemorySequence())
	ctx := context.Background()

	a := &dbm.Order{UserID: 1, Status: dbm.OrderStatusPending}
	b := &dbm.Order{UserID: 1, Status: dbm.OrderStatusPending}
	require.NoError(t, r.Insert(ctx, a))
	require.NoError(t, r.Insert(ctx, b))

	assert.Equal(t, uint(1), a.ID)
	assert.Equal(t, uint(2), b.ID)
}
