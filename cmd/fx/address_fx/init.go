package address_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"tiffinbox/internal/api/controllers"
	"tiffinbox/internal/repositories"
	"tiffinbox/internal/services"
)

var Module = fx.Provide(
	provideAddressRepo, services.NewAddressService, controllers.NewAddressController)

func provideAddressRepo(db *gorm.DB, seq repositories.Sequence, memSeq *repositories.MemorySequence) repositories.AddressRepository {
	if db != nil {
		return repositories.NewAddressRepository(db, seq)
	}
	return repositories.NewMemoryAddressRepository(memSeq)
}
