package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	dbm "tiffinbox/internal/models/db_models"
)

type MealRepository interface {
	Insert(ctx context.Context, meal *dbm.Meal) error
	Update(ctx context.Context, meal *dbm.Meal) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*dbm.Meal, error)
	FindCurryOption(ctx context.Context, mealID, optionID uint) (*dbm.CurryOption, error)
	List(ctx context.Context, category string, onlyAvailable bool) ([]dbm.Meal, error)
}

type mealRepository struct {
	db  *gorm.DB
	seq Sequence
}

func NewMealRepository(db *gorm.DB, seq Sequence) MealRepository {
	return &mealRepository{db: db, seq: seq}
}

func (r *mealRepository) Insert(ctx context.Context, meal *dbm.Meal) error {
	id, err := r.seq.Next(ctx, "meals")
	if err != nil {
		return err
	}
	meal.ID = id
	for i := range meal.CurryOptions {
		optID, err := r.seq.Next(ctx, "curry_options")
		if err != nil {
			return err
		}
		meal.CurryOptions[i].ID = optID
		meal.CurryOptions[i].MealID = id
	}
	return r.db.WithContext(ctx).Create(meal).Error
}

func (r *mealRepository) Update(ctx context.Context, meal *dbm.Meal) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("meal_id = ?", meal.ID).Delete(&dbm.CurryOption{}).Error; err != nil {
			return err
		}
		for i := range meal.CurryOptions {
			if meal.CurryOptions[i].ID == 0 {
				optID, err := r.seq.Next(ctx, "curry_options")
				if err != nil {
					return err
				}
				meal.CurryOptions[i].ID = optID
			}
			meal.CurryOptions[i].MealID = meal.ID
		}
		return tx.Session(&gorm.Session{FullSaveAssociations: true}).Save(meal).Error
	})
}

func (r *mealRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&dbm.Meal{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *mealRepository) FindByID(ctx context.Context, id uint) (*dbm.Meal, error) {
	var meal dbm.Meal
	err := r.db.WithContext(ctx).Preload("CurryOptions").First(&meal, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &meal, nil
}

func (r *mealRepository) FindCurryOption(ctx context.Context, mealID, optionID uint) (*dbm.CurryOption, error) {
	var opt dbm.CurryOption
	err := r.db.WithContext(ctx).
		First(&opt, "id = ? AND meal_id = ?", optionID, mealID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &opt, nil
}

func (r *mealRepository) List(ctx context.Context, category string, onlyAvailable bool) ([]dbm.Meal, error) {
	q := r.db.WithContext(ctx).Preload("CurryOptions").Order("id")
	if category != "" {
		q = q.Where("category = ?", category)
	}
	if onlyAvailable {
		q = q.Where("is_available = TRUE")
	}
	var meals []dbm.Meal
	err := q.Find(&meals).Error
	return meals, err
}
