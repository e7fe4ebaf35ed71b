package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	dbm "tiffinbox/internal/models/db_models"
)

type AddressRepository interface {
	Insert(ctx context.Context, addr *dbm.Address) error
	Update(ctx context.Context, addr *dbm.Address) error
	Delete(ctx context.Context, id, userID uint) error
	FindByIDAndUser(ctx context.Context, id, userID uint) (*dbm.Address, error)
	ListByUser(ctx context.Context, userID uint) ([]dbm.Address, error)

	// SetDefault marks one address as the user's default and unsets every
	// other default for that user atomically.
	SetDefault(ctx context.Context, id, userID uint) error
}

type addressRepository struct {
	db  *gorm.DB
	seq Sequence
}

func NewAddressRepository(db *gorm.DB, seq Sequence) AddressRepository {
	return &addressRepository{db: db, seq: seq}
}

func (r *addressRepository) Insert(ctx context.Context, addr *dbm.Address) error {
	id, err := r.seq.Next(ctx, "addresses")
	if err != nil {
		return err
	}
	addr.ID = id
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if addr.IsDefault {
			if err := tx.Model(&dbm.Address{}).
				Where("user_id = ?", addr.UserID).
				Update("is_default", false).Error; err != nil {
				return err
			}
		}
		return tx.Create(addr).Error
	})
}

func (r *addressRepository) Update(ctx context.Context, addr *dbm.Address) error {
	return r.db.WithContext(ctx).Save(addr).Error
}

func (r *addressRepository) Delete(ctx context.Context, id, userID uint) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&dbm.Address{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *addressRepository) FindByIDAndUser(ctx context.Context, id, userID uint) (*dbm.Address, error) {
	var addr dbm.Address
	err := r.db.WithContext(ctx).
		First(&addr, "id = ? AND user_id = ?", id, userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &addr, nil
}

func (r *addressRepository) ListByUser(ctx context.Context, userID uint) ([]dbm.Address, error) {
	var addrs []dbm.Address
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id").
		Find(&addrs).Error
	return addrs, err
}

func (r *addressRepository) SetDefault(ctx context.Context, id, userID uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&dbm.Address{}).
			Where("id = ? AND user_id = ?", id, userID).
			Update("is_default", true)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.Model(&dbm.Address{}).
			Where("user_id = ? AND id <> ?", userID, id).
			Update("is_default", false).Error
	})
}
