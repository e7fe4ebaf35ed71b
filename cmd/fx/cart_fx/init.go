package cart_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"tiffinbox/internal/api/controllers"
	"tiffinbox/internal/repositories"
	"tiffinbox/internal/services"
)

var Module = fx.Provide(
	provideCartRepo, services.NewCartService, controllers.NewCartController)

func provideCartRepo(db *gorm.DB, seq repositories.Sequence, memSeq *repositories.MemorySequence) repositories.CartRepository {
	if db != nil {
		return repositories.NewCartRepository(db, seq)
	}
	return repositories.NewMemoryCartRepository(memSeq)
}
