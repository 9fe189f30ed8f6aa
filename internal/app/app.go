package app

import (
	"fmt"
	"os"
	"time"

	"github.com/hance08/moneymgr/internal/config"
	"github.com/hance08/moneymgr/internal/logging"
	"github.com/hance08/moneymgr/internal/service"
	"github.com/hance08/moneymgr/internal/store"
	"go.uber.org/zap"
)

type App struct {
	Service *service.Service
	Store   store.Repository
	Logger  *zap.Logger
}

// NewApp builds the logger, the backend client and the services from cfg.
func NewApp(cfg *config.Config) (*App, func(), error) {
	logger, err := logging.New(cfg.Log)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	apiStore, err := store.NewStore(cfg.API.BaseURL, cfg.API.Timeout, logger)
	if err != nil {
		_ = logger.Sync()
		return nil, nil, fmt.Errorf("failed to initialize api client: %w", err)
	}

	svc := service.NewService(apiStore, cfg, logger, time.Now)

	logger.Debug("application initialized",
		zap.String("api", apiStore.BaseURL()),
		zap.String("config", cfg.ConfigPath))

	cleanup := func() {
		if err := apiStore.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "Error closing api client: %v\n", err)
		}
		_ = logger.Sync()
	}

	return &App{
		Service: svc,
		Store:   apiStore,
		Logger:  logger,
	}, cleanup, nil
}
