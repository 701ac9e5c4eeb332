package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/duncancan/sit323-2024t1-4.2c/internal/validator"
)

// envBindings maps config keys to the environment variables read for them,
// in order of precedence.
var envBindings = map[string][]string{
	"server_host":               {"SERVER_HOST"},
	"server_port":               {"SERVER_PORT", "PORT", "port"},
	"server_env":                {"SERVER_ENV"},
	"service_name":              {"SERVICE_NAME"},
	"error_status_compat":       {"ERROR_STATUS_COMPAT"},
	"log_level":                 {"LOG_LEVEL"},
	"log_format":                {"LOG_FORMAT"},
	"log_error_file":            {"LOG_ERROR_FILE"},
	"log_combined_file":         {"LOG_COMBINED_FILE"},
	"sentry_enabled":            {"SENTRY_ENABLED"},
	"sentry_dsn":                {"SENTRY_DSN"},
	"sentry_environment":        {"SENTRY_ENVIRONMENT"},
	"sentry_release":            {"SENTRY_RELEASE"},
	"sentry_debug":              {"SENTRY_DEBUG"},
	"sentry_sample_rate":        {"SENTRY_SAMPLE_RATE"},
	"sentry_traces_sample_rate": {"SENTRY_TRACES_SAMPLE_RATE"},
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()

	// Set defaults
	setDefaults(v)

	// Read from environment variables
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	for key, envs := range envBindings {
		if err := v.BindEnv(append([]string{key}, envs...)...); err != nil {
			return nil, fmt.Errorf("bind env for %s: %w", key, err)
		}
	}

	// Optionally read from config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/calculator-service")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	var cfg Config

	// Server
	cfg.Server.Host = v.GetString("server_host")
	cfg.Server.Port = v.GetInt("server_port")
	cfg.Server.Env = v.GetString("server_env")
	cfg.Server.ServiceName = v.GetString("service_name")
	cfg.Server.ErrorStatusCompat = v.GetBool("error_status_compat")

	// Logging
	cfg.Log.Level = strings.ToLower(v.GetString("log_level"))
	cfg.Log.Format = strings.ToLower(v.GetString("log_format"))
	cfg.Log.ErrorFile = v.GetString("log_error_file")
	cfg.Log.CombinedFile = v.GetString("log_combined_file")

	// Sentry
	cfg.Sentry.Enabled = v.GetBool("sentry_enabled")
	cfg.Sentry.DSN = v.GetString("sentry_dsn")
	cfg.Sentry.Environment = v.GetString("sentry_environment")
	cfg.Sentry.Release = v.GetString("sentry_release")
	cfg.Sentry.Debug = v.GetBool("sentry_debug")
	cfg.Sentry.SampleRate = v.GetFloat64("sentry_sample_rate")
	cfg.Sentry.TracesSampleRate = v.GetFloat64("sentry_traces_sample_rate")

	// Validate required fields
	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server_host", "0.0.0.0")
	v.SetDefault("server_port", 3000)
	v.SetDefault("server_env", "development")
	v.SetDefault("service_name", "calculator-service")
	v.SetDefault("error_status_compat", true)

	// Logging defaults
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "json")
	v.SetDefault("log_error_file", "error.log")
	v.SetDefault("log_combined_file", "combined.log")

	// Sentry defaults
	v.SetDefault("sentry_enabled", false)
	v.SetDefault("sentry_sample_rate", 1.0)
	v.SetDefault("sentry_traces_sample_rate", 0.1)
}

func validate(cfg *Config) error {
	if err := validator.Validate(cfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if cfg.Sentry.Enabled && cfg.Sentry.DSN == "" {
		return fmt.Errorf("invalid configuration: sentry is enabled but no DSN is set")
	}
	return nil
}
