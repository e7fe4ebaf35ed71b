package repositories

import (
	"context"
	"sync"
	"time"

	"gorm.io/gorm"

	dbm "tiffinbox/internal/models/db_models"
)

type MemorySubscriptionRepository struct {
	mu   sync.RWMutex
	subs map[uint]dbm.Subscription
	seq  *MemorySequence
}

func NewMemorySubscriptionRepository(seq *MemorySequence) *MemorySubscriptionRepository {
	return &MemorySubscriptionRepository{
		subs: make(map[uint]dbm.Subscription),
		seq:  seq,
	}
}

func (r *MemorySubscriptionRepository) Insert(ctx context.Context, sub *dbm.Subscription) error {
	id, _ := r.seq.Next(ctx, "subscriptions")
	sub.ID = id
	now := time.Now().Unix()
	sub.CreatedAt = now
	sub.UpdatedAt = now

	r.mu.Lock()
	defer r.mu.Unlock()
	r.subs[sub.ID] = *sub
	return nil
}

func (r *MemorySubscriptionRepository) Update(ctx context.Context, sub *dbm.Subscription) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.subs[sub.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	sub.UpdatedAt = time.Now().Unix()
	r.subs[sub.ID] = *sub
	return nil
}

func (r *MemorySubscriptionRepository) FindByID(ctx context.Context, id uint) (*dbm.Subscription, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if s, ok := r.subs[id]; ok {
		copied := s
		return &copied, nil
	}
	return nil, nil
}

func (r *MemorySubscriptionRepository) FindByIDAndUser(ctx context.Context, id, userID uint) (*dbm.Subscription, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if s, ok := r.subs[id]; ok && s.UserID == userID {
		copied := s
		return &copied, nil
	}
	return nil, nil
}

func (r *MemorySubscriptionRepository) ListByUser(ctx context.Context, userID uint) ([]dbm.Subscription, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []dbm.Subscription
	for _, s := range r.subs {
		if s.UserID == userID {
			out = append(out, s)
		}
	}
	sortByID(out, func(s dbm.Subscription) uint { return s.ID })
	return out, nil
}

func (r *MemorySubscriptionRepository) ListNotCancelled(ctx context.Context) ([]dbm.Subscription, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []dbm.Subscription
	for _, s := range r.subs {
		if s.CancelledAt == nil {
			out = append(out, s)
		}
	}
	sortByID(out, func(s dbm.Subscription) uint { return s.ID })
	return out, nil
}

func (r *MemorySubscriptionRepository) ListAll(ctx context.Context) ([]dbm.Subscription, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]dbm.Subscription, 0, len(r.subs))
	for _, s := range r.subs {
		out = append(out, s)
	}
	sortByID(out, func(s dbm.Subscription) uint { return s.ID })
	return out, nil
}
