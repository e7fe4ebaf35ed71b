package order_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"tiffinbox/internal/api/controllers"
	"tiffinbox/internal/repositories"
	"tiffinbox/internal/services"
)

var Module = fx.Provide(
	provideOrderRepo, services.NewOrderService, controllers.NewOrderController)

func provideOrderRepo(db *gorm.DB, seq repositories.Sequence, memSeq *repositories.MemorySequence) repositories.OrderRepository {
	if db != nil {
		return repositories.NewOrderRepository(db, seq)
	}
	return repositories.NewMemoryOrderRepository(memSeq)
}
