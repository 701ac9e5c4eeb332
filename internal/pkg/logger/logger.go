package logger

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds logger configuration
type Config struct {
	Level       string
	Format      string
	ServiceName string
	// ErrorFile receives error level entries and above. Empty disables it.
	ErrorFile string
	// CombinedFile receives every entry at or above Level. Empty disables it.
	CombinedFile string
	// Stdout overrides the console sink, used by tests.
	Stdout zapcore.WriteSyncer
}

// New builds a logger that writes to stdout and, when configured, appends
// JSON records to the error and combined log files. The returned cleanup
// function flushes the logger and closes the files.
func New(cfg Config) (*zap.Logger, func(), error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		level = zapcore.InfoLevel
	}

	stdout := cfg.Stdout
	if stdout == nil {
		stdout = zapcore.Lock(os.Stdout)
	}

	var consoleEncoder zapcore.Encoder
	if cfg.Format == "console" {
		encoderConfig := encoderConfig()
		encoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		consoleEncoder = zapcore.NewConsoleEncoder(encoderConfig)
	} else {
		consoleEncoder = zapcore.NewJSONEncoder(encoderConfig())
	}

	cores := []zapcore.Core{zapcore.NewCore(consoleEncoder, stdout, level)}
	var closers []func()

	if cfg.CombinedFile != "" {
		sink, closeFn, err := zap.Open(cfg.CombinedFile)
		if err != nil {
			return nil, nil, fmt.Errorf("open combined log %s: %w", cfg.CombinedFile, err)
		}
		closers = append(closers, closeFn)
		cores = append(cores, zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig()), sink, level))
	}

	if cfg.ErrorFile != "" {
		sink, closeFn, err := zap.Open(cfg.ErrorFile)
		if err != nil {
			for _, c := range closers {
				c()
			}
			return nil, nil, fmt.Errorf("open error log %s: %w", cfg.ErrorFile, err)
		}
		closers = append(closers, closeFn)
		errorLevel := zap.LevelEnablerFunc(func(l zapcore.Level) bool {
			return l >= zapcore.ErrorLevel && level.Enabled(l)
		})
		cores = append(cores, zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig()), sink, errorLevel))
	}

	opts := []zap.Option{zap.AddCaller()}
	if cfg.ServiceName != "" {
		opts = append(opts, zap.Fields(zap.String("service", cfg.ServiceName)))
	}

	log := zap.New(zapcore.NewTee(cores...), opts...)

	cleanup := func() {
		_ = log.Sync()
		for _, c := range closers {
			c()
		}
	}

	return log, cleanup, nil
}

// encoderConfig returns the shared encoder settings: ISO-8601 timestamps
// under "timestamp", lowercase levels and the message under "message".
func encoderConfig() zapcore.EncoderConfig {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.MessageKey = "message"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.EncodeLevel = zapcore.LowercaseLevelEncoder
	return encoderConfig
}

// WithRequestID returns a logger with request ID
func WithRequestID(log *zap.Logger, requestID string) *zap.Logger {
	if requestID == "" {
		return log
	}
	return log.With(zap.String("request_id", requestID))
}
