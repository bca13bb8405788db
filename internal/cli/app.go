package cli

import (
	"fmt"

	"github.com/rs/zerolog"

	"taxi-service/internal/config"
	"taxi-service/internal/db"
	"taxi-service/internal/logger"
	"taxi-service/internal/repository"
	"taxi-service/internal/repository/memory"
)

type app struct {
	cfg    *config.Config
	log    zerolog.Logger
	stores repository.Stores
	close  func() error
}

// bootstrap loads configuration and opens the configured record stores.
// The postgres schema is migrated before the stores are returned.
func bootstrap() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	log := logger.New(cfg.Environment)

	if cfg.DB.Driver == config.StorageDriverMemory {
		log.Warn().Msg("using in-memory storage, records are lost on exit")
		return &app{
			cfg:    cfg,
			log:    log,
			stores: memory.NewStores(),
			close:  func() error { return nil },
		}, nil
	}

	database, err := db.New(cfg, log)
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}
	if err := db.Migrate(database); err != nil {
		return nil, fmt.Errorf("migrate database: %w", err)
	}

	sqlDB, err := database.DB()
	if err != nil {
		return nil, fmt.Errorf("database handle: %w", err)
	}

	return &app{
		cfg:    cfg,
		log:    log,
		stores: repository.NewStores(database),
		close:  sqlDB.Close,
	}, nil
}
