package repositories

import (
	"context"
	"sync"
	"time"

	dbm "tiffinbox/internal/models/db_models"
)

// MemoryUserRepository is the in-memory fallback backend, selected at startup
// when no database is configured. It also serves as a test fixture.
type MemoryUserRepository struct {
	mu    sync.RWMutex
	users map[uint]dbm.User
	seq   *MemorySequence
}

func NewMemoryUserRepository(seq *MemorySequence) *MemoryUserRepository {
	return &MemoryUserRepository{
		users: make(map[uint]dbm.User),
		seq:   seq,
	}
}

func (r *MemoryUserRepository) Insert(ctx context.Context, user *dbm.User) error {
	id, _ := r.seq.Next(ctx, "users")
	user.ID = id
	now := time.Now().Unix()
	user.CreatedAt = now
	user.UpdatedAt = now

	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[user.ID] = *user
	return nil
}

func (r *MemoryUserRepository) FindByID(ctx context.Context, id uint) (*dbm.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if u, ok := r.users[id]; ok {
		copied := u
		return &copied, nil
	}
	return nil, nil
}

func (r *MemoryUserRepository) FindByEmail(ctx context.Context, email string) (*dbm.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if u.Email == email {
			copied := u
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *MemoryUserRepository) ListAll(ctx context.Context) ([]dbm.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]dbm.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, u)
	}
	sortByID(out, func(u dbm.User) uint { return u.ID })
	return out, nil
}

func (r *MemoryUserRepository) CountCreatedSince(ctx context.Context, since int64) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var count int64
	for _, u := range r.users {
		if u.CreatedAt >= since {
			count++
		}
	}
	return count, nil
}
