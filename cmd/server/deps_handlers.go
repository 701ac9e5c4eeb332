package main

import (
	"fmt"

	"github.com/duncancan/sit323-2024t1-4.2c/internal/config"
	"github.com/duncancan/sit323-2024t1-4.2c/internal/handler"
)

// Handlers holds all HTTP handler instances
type Handlers struct {
	Health     *handler.HealthHandler
	Docs       *handler.DocsHandler
	Calculator *handler.CalculatorHandler
	Response   *handler.ResponseWriter
}

// initHandlers creates all handler instances
func initHandlers(cfg *config.Config, services *Services) (*Handlers, error) {
	docs, err := handler.NewDocsHandler()
	if err != nil {
		return nil, fmt.Errorf("failed to load API docs: %w", err)
	}

	response := handler.NewResponseWriter(cfg.Server.ErrorStatusCompat)

	return &Handlers{
		Health:     handler.NewHealthHandler(cfg.Server.ServiceName, appVersion),
		Docs:       docs,
		Calculator: handler.NewCalculatorHandler(services.Calculator, response),
		Response:   response,
	}, nil
}
