package config

import (
	"net"
	"strconv"
)

// Config holds all configuration for the application
type Config struct {
	Server ServerConfig
	Log    LogConfig
	Sentry SentryConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host        string `mapstructure:"host" validate:"required"`
	Port        int    `mapstructure:"port" validate:"min=1,max=65535"`
	Env         string `mapstructure:"env" validate:"oneof=development staging production test"`
	ServiceName string `mapstructure:"service_name" validate:"required"`
	// ErrorStatusCompat answers 500 for every failure, including bad input,
	// the way existing clients of the service expect.
	ErrorStatusCompat bool `mapstructure:"error_status_compat"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level        string `mapstructure:"level" validate:"oneof=debug info warn error"`
	Format       string `mapstructure:"format" validate:"oneof=json console"`
	ErrorFile    string `mapstructure:"error_file"`
	CombinedFile string `mapstructure:"combined_file"`
}

// SentryConfig holds error reporting configuration
type SentryConfig struct {
	Enabled          bool    `mapstructure:"enabled"`
	DSN              string  `mapstructure:"dsn"`
	Environment      string  `mapstructure:"environment"`
	Release          string  `mapstructure:"release"`
	Debug            bool    `mapstructure:"debug"`
	SampleRate       float64 `mapstructure:"sample_rate" validate:"gte=0,lte=1"`
	TracesSampleRate float64 `mapstructure:"traces_sample_rate" validate:"gte=0,lte=1"`
}

// Addr returns the listen address
func (c ServerConfig) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// IsDevelopment returns true if running in development mode
func (c Config) IsDevelopment() bool {
	return c.Server.Env == "development"
}

// IsProduction returns true if running in production mode
func (c Config) IsProduction() bool {
	return c.Server.Env == "production"
}
