package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	dbm "tiffinbox/internal/models/db_models"
)

type UserRepository interface {
	Insert(ctx context.Context, user *dbm.User) error
	FindByID(ctx context.Context, id uint) (*dbm.User, error)
	FindByEmail(ctx context.Context, email string) (*dbm.User, error)
	ListAll(ctx context.Context) ([]dbm.User, error)
	CountCreatedSince(ctx context.Context, since int64) (int64, error)
}

type userRepository struct {
	db  *gorm.DB
	seq Sequence
}

func NewUserRepository(db *gorm.DB, seq Sequence) UserRepository {
	return &userRepository{db: db, seq: seq}
}

func (r *userRepository) Insert(ctx context.Context, user *dbm.User) error {
	id, err := r.seq.Next(ctx, "users")
	if err != nil {
		return err
	}
	user.ID = id
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) FindByID(ctx context.Context, id uint) (*dbm.User, error) {
	var user dbm.User
	err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*dbm.User, error) {
	var user dbm.User
	err := r.db.WithContext(ctx).First(&user, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) ListAll(ctx context.Context) ([]dbm.User, error) {
	var users []dbm.User
	err := r.db.WithContext(ctx).Order("id").Find(&users).Error
	return users, err
}

func (r *userRepository) CountCreatedSince(ctx context.Context, since int64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&dbm.User{}).
		Where("created_at >= ?", since).
		Count(&count).Error
	return count, err
}
