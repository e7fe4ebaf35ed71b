package services

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	dbm "tiffinbox/internal/models/db_models"
	req "tiffinbox/internal/models/request_models"
	"tiffinbox/internal/repositories"
	"tiffinbox/pkg/utils"
)

type MealService interface {
	Create(ctx context.Context, request req.MealRequest) (*dbm.Meal, error)
	Update(ctx context.Context, id uint, request req.MealRequest) (*dbm.Meal, error)
	Delete(ctx context.Context, id uint) error
	Get(ctx context.Context, id uint) (*dbm.Meal, error)
	List(ctx context.Context, category string, onlyAvailable bool) ([]dbm.Meal, error)
}

type mealService struct {
	meals repositories.MealRepository
}

func NewMealService(meals repositories.MealRepository) MealService {
	return &mealService{meals: meals}
}

func fromRequest(request req.MealRequest) dbm.Meal {
	meal := dbm.Meal{
		Name:        request.Name,
		Description: request.Description,
		Image:       request.Image,
		PriceMinor:  request.PriceMinor,
		Category:    request.Category,
		IsAvailable: true,
	}
	if request.IsAvailable != nil {
		meal.IsAvailable = *request.IsAvailable
	}
	for _, opt := range request.CurryOptions {
		meal.CurryOptions = append(meal.CurryOptions, dbm.CurryOption{
			Name:       opt.Name,
			PriceMinor: opt.PriceMinor,
		})
	}
	return meal
}

func (s *mealService) Create(ctx context.Context, request req.MealRequest) (*dbm.Meal, error) {
	meal := fromRequest(request)
	if err := s.meals.Insert(ctx, &meal); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return &meal, nil
}

func (s *mealService) Update(ctx context.Context, id uint, request req.MealRequest) (*dbm.Meal, error) {
	existing, err := s.meals.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if existing == nil {
		return nil, utils.ErrNotFound
	}

	meal := fromRequest(request)
	meal.BaseModel = existing.BaseModel
	if err := s.meals.Update(ctx, &meal); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.ErrNotFound
		}
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return &meal, nil
}

func (s *mealService) Delete(ctx context.Context, id uint) error {
	if err := s.meals.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrNotFound
		}
		return fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return nil
}

func (s *mealService) Get(ctx context.Context, id uint) (*dbm.Meal, error) {
	meal, err := s.meals.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if meal == nil {
		return nil, utils.ErrNotFound
	}
	return meal, nil
}

func (s *mealService) List(ctx context.Context, category string, onlyAvailable bool) ([]dbm.Meal, error) {
	meals, err := s.meals.List(ctx, category, onlyAvailable)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return meals, nil
}
