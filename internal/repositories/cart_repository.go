package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	dbm "tiffinbox/internal/models/db_models"
)

type CartRepository interface {
	// FindByUserMealOption locates the row an Add should merge into.
	FindByUserMealOption(ctx context.Context, userID, mealID uint, curryOptionID *uint) (*dbm.CartItem, error)
	Insert(ctx context.Context, item *dbm.CartItem) error
	Update(ctx context.Context, item *dbm.CartItem) error

	// FindByIDAndUser returns nil when the item is missing or owned by
	// someone else; callers cannot distinguish the two.
	FindByIDAndUser(ctx context.Context, id, userID uint) (*dbm.CartItem, error)
	Delete(ctx context.Context, id, userID uint) error
	Clear(ctx context.Context, userID uint) error
	ListByUser(ctx context.Context, userID uint) ([]dbm.CartItem, error)
}

type cartRepository struct {
	db  *gorm.DB
	seq Sequence
}

func NewCartRepository(db *gorm.DB, seq Sequence) CartRepository {
	return &cartRepository{db: db, seq: seq}
}

func (r *cartRepository) FindByUserMealOption(ctx context.Context, userID, mealID uint, curryOptionID *uint) (*dbm.CartItem, error) {
	q := r.db.WithContext(ctx).Where("user_id = ? AND meal_id = ?", userID, mealID)
	if curryOptionID == nil {
		q = q.Where("curry_option_id IS NULL")
	} else {
		q = q.Where("curry_option_id = ?", *curryOptionID)
	}

	var item dbm.CartItem
	if err := q.First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

func (r *cartRepository) Insert(ctx context.Context, item *dbm.CartItem) error {
	id, err := r.seq.Next(ctx, "cart_items")
	if err != nil {
		return err
	}
	item.ID = id
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *cartRepository) Update(ctx context.Context, item *dbm.CartItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *cartRepository) FindByIDAndUser(ctx context.Context, id, userID uint) (*dbm.CartItem, error) {
	var item dbm.CartItem
	err := r.db.WithContext(ctx).
		First(&item, "id = ? AND user_id = ?", id, userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

func (r *cartRepository) Delete(ctx context.Context, id, userID uint) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&dbm.CartItem{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *cartRepository) Clear(ctx context.Context, userID uint) error {
	return r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&dbm.CartItem{}).Error
}

func (r *cartRepository) ListByUser(ctx context.Context, userID uint) ([]dbm.CartItem, error) {
	var items []dbm.CartItem
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id").
		Find(&items).Error
	return items, err
}
