package repositories

import (
	"context"
	"sync"
	"time"

	"gorm.io/gorm"

	dbm "tiffinbox/internal/models/db_models"
)

type MemoryMealRepository struct {
	mu    sync.RWMutex
	meals map[uint]dbm.Meal
	seq   *MemorySequence
}

func NewMemoryMealRepository(seq *MemorySequence) *MemoryMealRepository {
	return &MemoryMealRepository{
		meals: make(map[uint]dbm.Meal),
		seq:   seq,
	}
}

func (r *MemoryMealRepository) Insert(ctx context.Context, meal *dbm.Meal) error {
	id, _ := r.seq.Next(ctx, "meals")
	meal.ID = id
	now := time.Now().Unix()
	meal.CreatedAt = now
	meal.UpdatedAt = now
	for i := range meal.CurryOptions {
		optID, _ := r.seq.Next(ctx, "curry_options")
		meal.CurryOptions[i].ID = optID
		meal.CurryOptions[i].MealID = id
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.meals[meal.ID] = *meal
	return nil
}

func (r *MemoryMealRepository) Update(ctx context.Context, meal *dbm.Meal) error {
	for i := range meal.CurryOptions {
		if meal.CurryOptions[i].ID == 0 {
			optID, _ := r.seq.Next(ctx, "curry_options")
			meal.CurryOptions[i].ID = optID
		}
		meal.CurryOptions[i].MealID = meal.ID
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.meals[meal.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	meal.UpdatedAt = time.Now().Unix()
	r.meals[meal.ID] = *meal
	return nil
}

func (r *MemoryMealRepository) Delete(ctx context.Context, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.meals[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.meals, id)
	return nil
}

func (r *MemoryMealRepository) FindByID(ctx context.Context, id uint) (*dbm.Meal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if m, ok := r.meals[id]; ok {
		copied := m
		return &copied, nil
	}
	return nil, nil
}

func (r *MemoryMealRepository) FindCurryOption(ctx context.Context, mealID, optionID uint) (*dbm.CurryOption, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	m, ok := r.meals[mealID]
	if !ok {
		return nil, nil
	}
	for _, opt := range m.CurryOptions {
		if opt.ID == optionID {
			copied := opt
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *MemoryMealRepository) List(ctx context.Context, category string, onlyAvailable bool) ([]dbm.Meal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]dbm.Meal, 0, len(r.meals))
	for _, m := range r.meals {
		if category != "" && m.Category != category {
			continue
		}
		if onlyAvailable && !m.IsAvailable {
			continue
		}
		out = append(out, m)
	}
	sortByID(out, func(m dbm.Meal) uint { return m.ID })
	return out, nil
}
