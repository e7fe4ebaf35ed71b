package repositories

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	dbm "tiffinbox/internal/models/db_models"
)

type TransactionRepository interface {
	Insert(ctx context.Context, txn *dbm.Transaction) error
	FindByProviderOrderID(ctx context.Context, providerOrderID string) (*dbm.Transaction, error)

	// MarkPaid flips the transaction from pending to paid. Returns false when
	// the transaction was already paid (webhook redelivery) or is missing.
	MarkPaid(ctx context.Context, providerOrderID string) (bool, error)

	MarkFailed(ctx context.Context, id uint) error
}

type transactionRepository struct {
	db  *gorm.DB
	seq Sequence
}

func NewTransactionRepository(db *gorm.DB, seq Sequence) TransactionRepository {
	return &transactionRepository{db: db, seq: seq}
}

func (r *transactionRepository) Insert(ctx context.Context, txn *dbm.Transaction) error {
	id, err := r.seq.Next(ctx, "transactions")
	if err != nil {
		return err
	}
	txn.ID = id
	return r.db.WithContext(ctx).Create(txn).Error
}

func (r *transactionRepository) FindByProviderOrderID(ctx context.Context, providerOrderID string) (*dbm.Transaction, error) {
	var txn dbm.Transaction
	err := r.db.WithContext(ctx).
		First(&txn, "provider_order_id = ?", providerOrderID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &txn, nil
}

func (r *transactionRepository) MarkPaid(ctx context.Context, providerOrderID string) (bool, error) {
	now := time.Now().Unix()
	res := r.db.WithContext(ctx).Model(&dbm.Transaction{}).
		Where("provider_order_id = ? AND status = ?", providerOrderID, dbm.TxnStatusPending).
		Updates(map[string]interface{}{
			"status":  dbm.TxnStatusPaid,
			"paid_at": now,
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *transactionRepository) MarkFailed(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Model(&dbm.Transaction{}).
		Where("id = ?", id).
		Update("status", dbm.TxnStatusFailed).Error
}
