package repositories

import (
	"context"
	"sync"
	"time"

	"gorm.io/gorm"

	dbm "tiffinbox/internal/models/db_models"
)

type MemoryTransactionRepository struct {
	mu   sync.RWMutex
	txns map[uint]dbm.Transaction
	seq  *MemorySequence
}

func NewMemoryTransactionRepository(seq *MemorySequence) *MemoryTransactionRepository {
	return &MemoryTransactionRepository{
		txns: make(map[uint]dbm.Transaction),
		seq:  seq,
	}
}

func (r *MemoryTransactionRepository) Insert(ctx context.Context, txn *dbm.Transaction) error {
	id, _ := r.seq.Next(ctx, "transactions")
	txn.ID = id
	now := time.Now().Unix()
	txn.CreatedAt = now
	txn.UpdatedAt = now

	r.mu.Lock()
	defer r.mu.Unlock()
	r.txns[txn.ID] = *txn
	return nil
}

func (r *MemoryTransactionRepository) FindByProviderOrderID(ctx context.Context, providerOrderID string) (*dbm.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, t := range r.txns {
		if t.ProviderOrderID == providerOrderID {
			copied := t
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *MemoryTransactionRepository) MarkPaid(ctx context.Context, providerOrderID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, t := range r.txns {
		if t.ProviderOrderID == providerOrderID {
			if t.Status != dbm.TxnStatusPending {
				return false, nil
			}
			now := time.Now().Unix()
			t.Status = dbm.TxnStatusPaid
			t.PaidAt = &now
			t.UpdatedAt = now
			r.txns[id] = t
			return true, nil
		}
	}
	return false, nil
}

func (r *MemoryTransactionRepository) MarkFailed(ctx context.Context, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.txns[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	t.Status = dbm.TxnStatusFailed
	t.UpdatedAt = time.Now().Unix()
	r.txns[id] = t
	return nil
}
