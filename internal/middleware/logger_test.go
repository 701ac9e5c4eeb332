package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newLoggedApp(t *testing.T) (*fiber.App, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)

	app := fiber.New()
	app.Use(RequestID())
	app.Use(NewLoggerMiddleware(DefaultLoggerConfig(zap.New(core))).Handler())
	app.Get("/add", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	app.Get("/divide", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusInternalServerError)
	})
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	return app, logs
}

func TestLoggerMiddleware(t *testing.T) {
	t.Run("logs completed request with request ID", func(t *testing.T) {
		app, logs := newLoggedApp(t)

		req := httptest.NewRequest(http.MethodGet, "/add?n1=1&n2=2", nil)
		req.Header.Set("X-Request-ID", "log-req")
		_, err := app.Test(req)
		require.NoError(t, err)

		entries := logs.FilterMessage("request completed").All()
		require.Len(t, entries, 1)
		assert.Equal(t, zapcore.DebugLevel, entries[0].Level)

		ctx := entries[0].ContextMap()
		assert.Equal(t, "log-req", ctx["request_id"])
		assert.Equal(t, "/add", ctx["path"])
		assert.Equal(t, "n1=1&n2=2", ctx["query"])
		assert.Equal(t, int64(200), ctx["status"])
	})

	t.Run("logs failures at warn", func(t *testing.T) {
		app, logs := newLoggedApp(t)

		_, err := app.Test(httptest.NewRequest(http.MethodGet, "/divide?n1=1&n2=0", nil))
		require.NoError(t, err)

		entries := logs.FilterMessage("request failed").All()
		require.Len(t, entries, 1)
		assert.Equal(t, zapcore.WarnLevel, entries[0].Level)
	})

	t.Run("skips health checks", func(t *testing.T) {
		app, logs := newLoggedApp(t)

		_, err := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil))
		require.NoError(t, err)

		assert.Equal(t, 0, logs.Len())
	})
}

func TestCombinedSkipper(t *testing.T) {
	app := fiber.New()
	skip := CombinedSkipper(HealthSkipper, MetricsSkipper)
	results := make(map[string]bool)
	app.Get("/*", func(c *fiber.Ctx) error {
		results[utils.CopyString(c.Path())] = skip(c)
		return nil
	})

	for _, path := range []string{"/metrics", "/livez", "/add"} {
		_, err := app.Test(httptest.NewRequest(http.MethodGet, path, nil))
		require.NoError(t, err)
	}

	assert.True(t, results["/metrics"])
	assert.True(t, results["/livez"])
	assert.False(t, results["/add"])
}
