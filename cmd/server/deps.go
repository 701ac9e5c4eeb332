package main

import (
	"go.uber.org/zap"

	"github.com/duncancan/sit323-2024t1-4.2c/internal/config"
)

// Dependencies holds all application dependencies
type Dependencies struct {
	Config   *config.Config
	Logger   *zap.Logger
	Services *Services
	Handlers *Handlers

	// SentryEnabled is true once the Sentry SDK initialized successfully
	SentryEnabled bool
}

// initDependencies wires services and handlers
func initDependencies(cfg *config.Config, logger *zap.Logger, sentryEnabled bool) (*Dependencies, error) {
	services := initServices(logger)

	handlers, err := initHandlers(cfg, services)
	if err != nil {
		return nil, err
	}

	return &Dependencies{
		Config:        cfg,
		Logger:        logger,
		Services:      services,
		Handlers:      handlers,
		SentryEnabled: sentryEnabled,
	}, nil
}
