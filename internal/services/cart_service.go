package services

import (
	"context"
	"fmt"

	dbm "tiffinbox/internal/models/db_models"
	req "tiffinbox/internal/models/request_models"
	resp "tiffinbox/internal/models/response_models"
	"tiffinbox/internal/repositories"
	"tiffinbox/pkg/utils"
)

type CartService interface {
	Add(ctx context.Context, userID uint, request req.AddCartItemRequest) (*dbm.CartItem, error)
	Update(ctx context.Context, userID, itemID uint, request req.UpdateCartItemRequest) (*dbm.CartItem, error)
	Remove(ctx context.Context, userID, itemID uint) error
	Clear(ctx context.Context, userID uint) error
	List(ctx context.Context, userID uint) (*resp.CartResponse, error)
}

type cartService struct {
	carts repositories.CartRepository
	meals repositories.MealRepository
}

func NewCartService(carts repositories.CartRepository, meals repositories.MealRepository) CartService {
	return &cartService{carts: carts, meals: meals}
}

// Add merges into an existing (user, meal, curry option) row when one exists,
// incrementing its quantity; otherwise it inserts a new row.
func (s *cartService) Add(ctx context.Context, userID uint, request req.AddCartItemRequest) (*dbm.CartItem, error) {
	meal, err := s.meals.FindByID(ctx, request.MealID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if meal == nil || !meal.IsAvailable {
		return nil, fmt.Errorf("%w: meal not available", utils.ErrValidation)
	}

	optionName := ""
	if request.CurryOptionID != nil {
		opt, err := s.meals.FindCurryOption(ctx, request.MealID, *request.CurryOptionID)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
		}
		if opt == nil {
			return nil, fmt.Errorf("%w: unknown curry option", utils.ErrValidation)
		}
		optionName = opt.Name
	}

	existing, err := s.carts.FindByUserMealOption(ctx, userID, request.MealID, request.CurryOptionID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if existing != nil {
		existing.Quantity += request.Quantity
		if request.Notes != "" {
			existing.Notes = request.Notes
		}
		if err := s.carts.Update(ctx, existing); err != nil {
			return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
		}
		return existing, nil
	}

	item := &dbm.CartItem{
		UserID:          userID,
		MealID:          request.MealID,
		CurryOptionID:   request.CurryOptionID,
		CurryOptionName: optionName,
		Quantity:        request.Quantity,
		Notes:           request.Notes,
	}
	if err := s.carts.Insert(ctx, item); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return item, nil
}

func (s *cartService) Update(ctx context.Context, userID, itemID uint, request req.UpdateCartItemRequest) (*dbm.CartItem, error) {
	item, err := s.carts.FindByIDAndUser(ctx, itemID, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if item == nil {
		// Not-owned and missing look identical to the caller.
		return nil, utils.ErrNotFound
	}

	if request.Quantity != nil {
		item.Quantity = *request.Quantity
	}
	if request.Notes != nil {
		item.Notes = *request.Notes
	}
	if request.CurryOptionID != nil {
		opt, err := s.meals.FindCurryOption(ctx, item.MealID, *request.CurryOptionID)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
		}
		if opt == nil {
			return nil, fmt.Errorf("%w: unknown curry option", utils.ErrValidation)
		}
		item.CurryOptionID = request.CurryOptionID
		item.CurryOptionName = opt.Name
	}

	if err := s.carts.Update(ctx, item); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return item, nil
}

func (s *cartService) Remove(ctx context.Context, userID, itemID uint) error {
	item, err := s.carts.FindByIDAndUser(ctx, itemID, userID)
	if err != nil {
		return fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if item == nil {
		return utils.ErrNotFound
	}
	if err := s.carts.Delete(ctx, itemID, userID); err != nil {
		return fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return nil
}

func (s *cartService) Clear(ctx context.Context, userID uint) error {
	if err := s.carts.Clear(ctx, userID); err != nil {
		return fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return nil
}

// List resolves live catalogue prices for every line; totals are never cached.
func (s *cartService) List(ctx context.Context, userID uint) (*resp.CartResponse, error) {
	items, err := s.carts.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	out := &resp.CartResponse{Lines: make([]resp.CartLine, 0, len(items))}
	for _, item := range items {
		meal, err := s.meals.FindByID(ctx, item.MealID)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
		}
		if meal == nil {
			// Meal removed from the catalogue after it was carted; skip the
			// line rather than failing the whole read.
			continue
		}

		unit := meal.PriceMinor
		optionName := item.CurryOptionName
		if item.CurryOptionID != nil {
			if opt, err := s.meals.FindCurryOption(ctx, item.MealID, *item.CurryOptionID); err == nil && opt != nil {
				unit += opt.PriceMinor
				optionName = opt.Name
			}
		}

		line := resp.CartLine{
			Item:            item,
			MealName:        meal.Name,
			UnitMinor:       unit,
			LineTotalMinor:  unit * int64(item.Quantity),
			CurryOptionName: optionName,
		}
		out.Lines = append(out.Lines, line)
		out.SubtotalMinor += line.LineTotalMinor
	}
	return out, nil
}
