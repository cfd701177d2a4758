// Package persistence selects the storage adapter named by storage.driver.
package persistence

import (
	"log/slog"
	"time"

	"shop/config"
	"shop/internal/domain/constants"
	"shop/internal/infra/persistence/memory"
	"shop/internal/infra/persistence/postgres"

	"go.uber.org/fx"
)

// Module returns the repositories and transaction manager for the configured
// driver. The in-memory store is seeded with a demo catalog in develop.
func Module(cfg *config.Config) fx.Option {
	if cfg.Storage != nil && cfg.Storage.Driver == constants.StorageDriverMemory {
		return fx.Options(
			memory.Module,
			fx.Invoke(seedDemoCatalog),
		)
	}

	return postgres.Module
}

func seedDemoCatalog(cfg *config.Config, logger *slog.Logger, store *memory.Store) {
	if cfg.Env.Env != constants.EnvDevelop {
		return
	}

	memory.SeedDemoCatalog(store, time.Now().UTC())
	logger.Info("Seeded in-memory demo catalog")
}
