package db_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"tiffinbox/internal/config"
	"tiffinbox/internal/infra"
	"tiffinbox/internal/repositories"
)

var Module = fx.Provide(
	provideDB, provideMemorySequence, provideSequence)

// provideDB returns nil when the in-memory backend is selected; repository
// providers switch on the backend, not on the db handle.
func provideDB(cfg *config.Config) *gorm.DB {
	if cfg.StorageBackend != config.StoragePostgres {
		return nil
	}
	return infra.InitPostgresql(cfg)
}

func provideMemorySequence() *repositories.MemorySequence {
	return repositories.NewMemorySequence()
}

func provideSequence(db *gorm.DB, mem *repositories.MemorySequence) repositories.Sequence {
	if db != nil {
		return repositories.NewSequence(db)
	}
	return mem
}
