package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	dbm "tiffinbox/internal/models/db_models"
)

type SubscriptionRepository interface {
	Insert(ctx context.Context, sub *dbm.Subscription) error
	Update(ctx context.Context, sub *dbm.Subscription) error
	FindByID(ctx context.Context, id uint) (*dbm.Subscription, error)
	FindByIDAndUser(ctx context.Context, id, userID uint) (*dbm.Subscription, error)
	ListByUser(ctx context.Context, userID uint) ([]dbm.Subscription, error)
	ListNotCancelled(ctx context.Context) ([]dbm.Subscription, error)
	ListAll(ctx context.Context) ([]dbm.Subscription, error)
}

type subscriptionRepository struct {
	db  *gorm.DB
	seq Sequence
}

func NewSubscriptionRepository(db *gorm.DB, seq Sequence) SubscriptionRepository {
	return &subscriptionRepository{db: db, seq: seq}
}

func (r *subscriptionRepository) Insert(ctx context.Context, sub *dbm.Subscription) error {
	id, err := r.seq.Next(ctx, "subscriptions")
	if err != nil {
		return err
	}
	sub.ID = id
	return r.db.WithContext(ctx).Create(sub).Error
}

func (r *subscriptionRepository) Update(ctx context.Context, sub *dbm.Subscription) error {
	return r.db.WithContext(ctx).Save(sub).Error
}

func (r *subscriptionRepository) FindByID(ctx context.Context, id uint) (*dbm.Subscription, error) {
	var sub dbm.Subscription
	err := r.db.WithContext(ctx).First(&sub, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &sub, nil
}

func (r *subscriptionRepository) FindByIDAndUser(ctx context.Context, id, userID uint) (*dbm.Subscription, error) {
	var sub dbm.Subscription
	err := r.db.WithContext(ctx).
		First(&sub, "id = ? AND user_id = ?", id, userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &sub, nil
}

func (r *subscriptionRepository) ListByUser(ctx context.Context, userID uint) ([]dbm.Subscription, error) {
	var subs []dbm.Subscription
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id DESC").
		Find(&subs).Error
	return subs, err
}

func (r *subscriptionRepository) ListNotCancelled(ctx context.Context) ([]dbm.Subscription, error) {
	var subs []dbm.Subscription
	err := r.db.WithContext(ctx).
		Where("cancelled_at IS NULL").
		Order("id").
		Find(&subs).Error
	return subs, err
}

func (r *subscriptionRepository) ListAll(ctx context.Context) ([]dbm.Subscription, error) {
	var subs []dbm.Subscription
	err := r.db.WithContext(ctx).Order("id DESC").Find(&subs).Error
	return subs, err
}
