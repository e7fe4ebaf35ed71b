package meal_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"tiffinbox/internal/api/controllers"
	"tiffinbox/internal/repositories"
	"tiffinbox/internal/services"
)

var Module = fx.Provide(
	provideMealRepo, services.NewMealService, controllers.NewMealController)

func provideMealRepo(db *gorm.DB, seq repositories.Sequence, memSeq *repositories.MemorySequence) repositories.MealRepository {
	if db != nil {
		return repositories.NewMealRepository(db, seq)
	}
	return repositories.NewMemoryMealRepository(memSeq)
}
