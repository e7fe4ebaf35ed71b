package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	req "tiffinbox/internal/models/request_models"
	"tiffinbox/pkg/utils"
)

func TestCartAddMergesSameMealAndOption(t *testing.T) {
	f := newFixtures()
	svc := NewCartService(f.carts, f.meals)
	ctx := context.Background()

	meal := f.seedMeal("Veg Thali", 10000)

	first, err := svc.Add(ctx, 1, req.AddCartItemRequest{MealID: meal.ID, Quantity: 2})
	require.NoError(t, err)

	second, err := svc.Add(ctx, 1, req.AddCartItemRequest{MealID: meal.ID, Quantity: 3})
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 5, second.Quantity)

	cart, err := svc.List(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, cart.Lines, 1)
}

func TestCartAddDifferentCurryOptionsStaySeparate(t *testing.T) {
	f := newFixtures()
	svc := NewCartService(f.carts, f.meals)
	ctx := context.Background()

	meal := f.seedMeal("Roti Meal", 8000,
		curryOption("Paneer", 2000), curryOption("Dal", 1000))
	paneer := meal.CurryOptions[0].ID
	dal := meal.CurryOptions[1].ID

	_, err := svc.Add(ctx, 1, req.AddCartItemRequest{MealID: meal.ID, CurryOptionID: &paneer, Quantity: 1})
	require.NoError(t, err)
	_, err = svc.Add(ctx, 1, req.AddCartItemRequest{MealID: meal.ID, CurryOptionID: &dal, Quantity: 1})
	require.NoError(t, err)
	_, err = svc.Add(ctx, 1, req.AddCartItemRequest{MealID: meal.ID, Quantity: 1})
	require.NoError(t, err)

	cart, err := svc.List(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, cart.Lines, 3)
}

func TestCartListComputesLiveTotals(t *testing.T) {
	f := newFixtures()
	svc := NewCartService(f.carts, f.meals)
	ctx := context.Background()

	meal := f.seedMeal("Special Thali", 10000, curryOption("Extra Paneer", 2000))
	optID := meal.CurryOptions[0].ID

	_, err := svc.Add(ctx, 1, req.AddCartItemRequest{MealID: meal.ID, CurryOptionID: &optID, Quantity: 3})
	require.NoError(t, err)

	cart, err := svc.List(ctx, 1)
	require.NoError(t, err)
	require.Len(t, cart.Lines, 1)
	assert.Equal(t, int64(12000), cart.Lines[0].UnitMinor)
	assert.Equal(t, int64(36000), cart.Lines[0].LineTotalMinor)
	assert.Equal(t, int64(36000), cart.SubtotalMinor)
}

func TestCartRejectsUnknownOption(t *testing.T) {
	f := newFixtures()
	svc := NewCartService(f.carts, f.meals)
	ctx := context.Background()

	meal := f.seedMeal("Plain Meal", 5000)
	bogus := uint(999)

	_, err := svc.Add(ctx, 1, req.AddCartItemRequest{MealID: meal.ID, CurryOptionID: &bogus, Quantity: 1})
	assert.ErrorIs(t, err, utils.ErrValidation)
}

func TestCartUpdateAndRemoveEnforceOwnership(t *testing.T) {
	f := newFixtures()
	svc := NewCartService(f.carts, f.meals)
	ctx := context.Background()

	meal := f.seedMeal("Veg Thali", 10000)
	item, err := svc.Add(ctx, 1, req.AddCartItemRequest{MealID: meal.ID, Quantity: 1})
	require.NoError(t, err)

	qty := 4
	_, err = svc.Update(ctx, 2, item.ID, req.UpdateCartItemRequest{Quantity: &qty})
	assert.ErrorIs(t, err, utils.ErrNotFound)

	err = svc.Remove(ctx, 2, item.ID)
	assert.ErrorIs(t, err, utils.ErrNotFound)

	updated, err := svc.Update(ctx, 1, item.ID, req.UpdateCartItemRequest{Quantity: &qty})
	require.NoError(t, err)
	assert.Equal(t, 4, updated.Quantity)

	require.NoError(t, svc.Remove(ctx, 1, item.ID))
	cart, err := svc.List(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, cart.Lines)
}
