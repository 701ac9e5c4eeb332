package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	gfshutdown "github.com/gelmium/graceful-shutdown"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"go.uber.org/zap"

	"github.com/duncancan/sit323-2024t1-4.2c/internal/config"
	"github.com/duncancan/sit323-2024t1-4.2c/internal/middleware"
	apperrors "github.com/duncancan/sit323-2024t1-4.2c/internal/pkg/errors"
	"github.com/duncancan/sit323-2024t1-4.2c/internal/pkg/logger"
)

const (
	appVersion      = "1.0.0"
	shutdownTimeout = 30 * time.Second
)

func main() {
	os.Exit(run())
}

// run starts the server and blocks until it stops, returning the exit code
func run() int {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		return 1
	}

	// Initialize logger
	log, closeLog, err := logger.New(logger.Config{
		Level:        cfg.Log.Level,
		Format:       cfg.Log.Format,
		ServiceName:  cfg.Server.ServiceName,
		ErrorFile:    cfg.Log.ErrorFile,
		CombinedFile: cfg.Log.CombinedFile,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		return 1
	}
	defer closeLog()

	// Initialize Sentry if enabled
	sentryEnabled := initSentry(cfg, log)
	if sentryEnabled {
		defer middleware.FlushSentry(5 * time.Second)
	}

	// Initialize dependencies
	deps, err := initDependencies(cfg, log, sentryEnabled)
	if err != nil {
		log.Error("failed to initialize dependencies", zap.Error(err))
		return 1
	}

	app := newApp(deps)

	// Start server
	serverErr := make(chan error, 1)
	go func() {
		addr := cfg.Server.Addr()
		log.Info(fmt.Sprintf("Server listening on port %d", cfg.Server.Port), zap.String("addr", addr))
		serverErr <- app.Listen(addr)
	}()

	// Graceful shutdown on SIGINT/SIGTERM
	wait := gfshutdown.GracefulShutdown(
		context.Background(),
		shutdownTimeout,
		map[string]gfshutdown.Operation{
			"http-server": func(ctx context.Context) error {
				log.Info("shutting down server...")
				return app.ShutdownWithContext(ctx)
			},
		},
	)

	select {
	case exitCode := <-wait:
		log.Info("server stopped", zap.Int("exit_code", exitCode))
		return exitCode
	case err := <-serverErr:
		if err != nil {
			log.Error("server failed", zap.Error(err))
			return 1
		}
		// Listen returns nil once shutdown has begun
		return <-wait
	}
}

// newApp builds the Fiber app with middleware and routes
func newApp(deps *Dependencies) *fiber.App {
	cfg := deps.Config
	log := deps.Logger

	app := fiber.New(fiber.Config{
		AppName:               cfg.Server.ServiceName,
		ReadTimeout:           30 * time.Second,
		WriteTimeout:          30 * time.Second,
		IdleTimeout:           120 * time.Second,
		DisableStartupMessage: cfg.IsProduction(),
		ErrorHandler:          errorHandler(deps),
	})

	// Apply global middleware
	app.Use(middleware.RequestID())

	loggerMiddleware := middleware.NewLoggerMiddleware(middleware.DefaultLoggerConfig(log))
	app.Use(loggerMiddleware.Handler())

	recoverConfig := middleware.DefaultRecoverConfig(log)
	recoverConfig.SentryEnabled = deps.SentryEnabled
	recoverConfig.ErrorHandler = deps.Handlers.Response.Error
	app.Use(middleware.NewRecoverMiddleware(recoverConfig).Handler())

	// Add Sentry context middleware if enabled
	if deps.SentryEnabled {
		app.Use(middleware.SentryMiddleware(true))
	}

	corsMiddleware := middleware.NewCORSMiddleware(middleware.DefaultCORSConfig())
	app.Use(corsMiddleware.Handler())

	// Metrics middleware
	metricsMiddleware := middleware.NewMetricsMiddleware(middleware.DefaultMetricsConfig())
	app.Use(metricsMiddleware.Handler())

	// Register routes
	registerRoutes(app, deps)

	return app
}

// initSentry initializes Sentry when configured and reports whether it is active
func initSentry(cfg *config.Config, log *zap.Logger) bool {
	if !cfg.Sentry.Enabled || cfg.Sentry.DSN == "" {
		return false
	}

	sentryConfig := middleware.SentryConfig{
		DSN:              cfg.Sentry.DSN,
		Environment:      cfg.Sentry.Environment,
		Release:          cfg.Sentry.Release,
		Debug:            cfg.Sentry.Debug,
		SampleRate:       cfg.Sentry.SampleRate,
		TracesSampleRate: cfg.Sentry.TracesSampleRate,
		FlushTimeout:     5 * time.Second,
	}
	if sentryConfig.Release == "" {
		sentryConfig.Release = cfg.Server.ServiceName + "@" + appVersion
	}
	if sentryConfig.Environment == "" {
		sentryConfig.Environment = cfg.Server.Env
	}

	if err := middleware.InitSentry(sentryConfig); err != nil {
		log.Error("failed to initialize Sentry", zap.Error(err))
		return false
	}

	log.Info("Sentry initialized",
		zap.String("environment", sentryConfig.Environment),
		zap.String("release", sentryConfig.Release),
	)
	return true
}

// errorHandler renders errors that escape handlers, such as unknown routes,
// using the calculator envelope.
func errorHandler(deps *Dependencies) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		response := deps.Handlers.Response
		err = routingError(c, err)
		code := response.StatusCode(err)

		if !apperrors.IsRoutingError(err) || code >= fiber.StatusInternalServerError {
			deps.Logger.Error("request error",
				zap.Int("status", code),
				zap.String("error", err.Error()),
				zap.String("path", utils.CopyString(c.Path())),
				zap.String("method", utils.CopyString(c.Method())),
				zap.String("request_id", middleware.GetRequestID(c)),
			)
		}

		// Report to Sentry for 5xx errors
		if deps.SentryEnabled && code >= fiber.StatusInternalServerError {
			middleware.CaptureError(c, err)
		}

		return response.Error(c, err)
	}
}

// routingError converts Fiber's routing failures into application errors,
// leaving every other error untouched.
func routingError(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if !errors.As(err, &fe) {
		return err
	}
	switch fe.Code {
	case fiber.StatusNotFound:
		return apperrors.NotFound(c.Method(), c.Path()).WithError(err)
	case fiber.StatusMethodNotAllowed:
		return apperrors.MethodNotAllowed().WithError(err)
	}
	return err
}
