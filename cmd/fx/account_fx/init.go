package account_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"tiffinbox/internal/api/controllers"
	"tiffinbox/internal/config"
	"tiffinbox/internal/infra"
	"tiffinbox/internal/repositories"
	"tiffinbox/internal/services"
	mem "tiffinbox/pkg/memcache"
)

var Module = fx.Provide(
	provideUserRepo, provideTokenStore, provideAccountService, controllers.NewAccountController)

func provideUserRepo(db *gorm.DB, seq repositories.Sequence, memSeq *repositories.MemorySequence) repositories.UserRepository {
	if db != nil {
		return repositories.NewUserRepository(db, seq)
	}
	return repositories.NewMemoryUserRepository(memSeq)
}

func provideTokenStore(cfg *config.Config) mem.RefreshTokenStore {
	if cfg.TokenStoreBackend == config.TokenStoreRedis {
		return mem.NewRedisRefreshTokens(infra.NewRedisClient(cfg))
	}
	return mem.NewRefreshTokens()
}

func provideAccountService(users repositories.UserRepository, tokens mem.RefreshTokenStore) services.AccountService {
	return services.NewAccountService(users, tokens)
}
