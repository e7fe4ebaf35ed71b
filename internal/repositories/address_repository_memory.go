package repositories

import (
	"context"
	"sync"
	"time"

	"gorm.io/gorm"

	dbm "tiffinbox/internal/models/db_models"
)

type MemoryAddressRepository struct {
	mu    sync.RWMutex
	addrs map[uint]dbm.Address
	seq   *MemorySequence
}

func NewMemoryAddressRepository(seq *MemorySequence) *MemoryAddressRepository {
	return &MemoryAddressRepository{
		addrs: make(map[uint]dbm.Address),
		seq:   seq,
	}
}

func (r *MemoryAddressRepository) Insert(ctx context.Context, addr *dbm.Address) error {
	id, _ := r.seq.Next(ctx, "addresses")
	addr.ID = id
	now := time.Now().Unix()
	addr.CreatedAt = now
	addr.UpdatedAt = now

	r.mu.Lock()
	defer r.mu.Unlock()
	if addr.IsDefault {
		r.unsetDefaultsLocked(addr.UserID, 0)
	}
	r.addrs[addr.ID] = *addr
	return nil
}

func (r *MemoryAddressRepository) Update(ctx context.Context, addr *dbm.Address) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.addrs[addr.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	addr.UpdatedAt = time.Now().Unix()
	r.addrs[addr.ID] = *addr
	return nil
}

func (r *MemoryAddressRepository) Delete(ctx context.Context, id, userID uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if a, ok := r.addrs[id]; ok && a.UserID == userID {
		delete(r.addrs, id)
		return nil
	}
	return gorm.ErrRecordNotFound
}

func (r *MemoryAddressRepository) FindByIDAndUser(ctx context.Context, id, userID uint) (*dbm.Address, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if a, ok := r.addrs[id]; ok && a.UserID == userID {
		copied := a
		return &copied, nil
	}
	return nil, nil
}

func (r *MemoryAddressRepository) ListByUser(ctx context.Context, userID uint) ([]dbm.Address, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []dbm.Address
	for _, a := range r.addrs {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	sortByID(out, func(a dbm.Address) uint { return a.ID })
	return out, nil
}

func (r *MemoryAddressRepository) SetDefault(ctx context.Context, id, userID uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.addrs[id]
	if !ok || a.UserID != userID {
		return gorm.ErrRecordNotFound
	}
	r.unsetDefaultsLocked(userID, id)
	a.IsDefault = true
	a.UpdatedAt = time.Now().Unix()
	r.addrs[id] = a
	return nil
}

func (r *MemoryAddressRepository) unsetDefaultsLocked(userID, except uint) {
	for id, a := range r.addrs {
		if a.UserID == userID && a.IsDefault && id != except {
			a.IsDefault = false
			r.addrs[id] = a
		}
	}
}
