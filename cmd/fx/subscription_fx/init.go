package subscription_fx

import (
	"context"

	"go.uber.org/fx"
	"gorm.io/gorm"

	"tiffinbox/internal/api/controllers"
	"tiffinbox/internal/repositories"
	"tiffinbox/internal/services"
)

var Module = fx.Options(
	fx.Provide(
		provideSubscriptionRepo, services.NewSubscriptionService, services.NewSweeper,
		controllers.NewSubscriptionController),
	fx.Invoke(registerSweeper),
)

func provideSubscriptionRepo(db *gorm.DB, seq repositories.Sequence, memSeq *repositories.MemorySequence) repositories.SubscriptionRepository {
	if db != nil {
		return repositories.NewSubscriptionRepository(db, seq)
	}
	return repositories.NewMemorySubscriptionRepository(memSeq)
}

func registerSweeper(lc fx.Lifecycle, sweeper *services.Sweeper) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			sweeper.Start()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			sweeper.Stop()
			return nil
		},
	})
}
