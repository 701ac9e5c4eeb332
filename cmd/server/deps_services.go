package main

import (
	"go.uber.org/zap"

	"github.com/duncancan/sit323-2024t1-4.2c/internal/service"
)

// Services holds all service instances
type Services struct {
	Calculator *service.CalculatorService
}

// initServices creates all service instances
func initServices(logger *zap.Logger) *Services {
	return &Services{
		Calculator: service.NewCalculatorService(logger),
	}
}
