package cmd

import (
	"fmt"

	"roboforecast/api"
	"roboforecast/internal/app"
	"roboforecast/internal/config"
	"roboforecast/internal/repository"
)

func InitializeDependencies() (*api.ApiHandler, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	return &api.ApiHandler{
		Config:               cfg,
		ProjectionService:    app.ProjectionHandler{},
		MarketDataRepository: repository.NewMarketDataRepository(cfg.DataDir),
	}, nil
}
