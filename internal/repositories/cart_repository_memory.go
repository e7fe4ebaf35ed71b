package repositories

import (
	"context"
	"sync"
	"time"

	"gorm.io/gorm"

	dbm "tiffinbox/internal/models/db_models"
)

type MemoryCartRepository struct {
	mu    sync.RWMutex
	items map[uint]dbm.CartItem
	seq   *MemorySequence
}

func NewMemoryCartRepository(seq *MemorySequence) *MemoryCartRepository {
	return &MemoryCartRepository{
		items: make(map[uint]dbm.CartItem),
		seq:   seq,
	}
}

func sameOption(a, b *uint) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func (r *MemoryCartRepository) FindByUserMealOption(ctx context.Context, userID, mealID uint, curryOptionID *uint) (*dbm.CartItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, it := range r.items {
		if it.UserID == userID && it.MealID == mealID && sameOption(it.CurryOptionID, curryOptionID) {
			copied := it
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *MemoryCartRepository) Insert(ctx context.Context, item *dbm.CartItem) error {
	id, _ := r.seq.Next(ctx, "cart_items")
	item.ID = id
	now := time.Now().Unix()
	item.CreatedAt = now
	item.UpdatedAt = now

	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[item.ID] = *item
	return nil
}

func (r *MemoryCartRepository) Update(ctx context.Context, item *dbm.CartItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[item.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	item.UpdatedAt = time.Now().Unix()
	r.items[item.ID] = *item
	return nil
}

func (r *MemoryCartRepository) FindByIDAndUser(ctx context.Context, id, userID uint) (*dbm.CartItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if it, ok := r.items[id]; ok && it.UserID == userID {
		copied := it
		return &copied, nil
	}
	return nil, nil
}

func (r *MemoryCartRepository) Delete(ctx context.Context, id, userID uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if it, ok := r.items[id]; ok && it.UserID == userID {
		delete(r.items, id)
		return nil
	}
	return gorm.ErrRecordNotFound
}

func (r *MemoryCartRepository) Clear(ctx context.Context, userID uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, it := range r.items {
		if it.UserID == userID {
			delete(r.items, id)
		}
	}
	return nil
}

func (r *MemoryCartRepository) ListByUser(ctx context.Context, userID uint) ([]dbm.CartItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []dbm.CartItem
	for _, it := range r.items {
		if it.UserID == userID {
			out = append(out, it)
		}
	}
	sortByID(out, func(i dbm.CartItem) uint { return i.ID })
	return out, nil
}
