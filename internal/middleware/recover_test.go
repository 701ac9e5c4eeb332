package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newPanicApp(config RecoverConfig) *fiber.App {
	app := fiber.New()
	app.Use(RequestID())
	app.Use(NewRecoverMiddleware(config).Handler())
	app.Get("/panic", func(c *fiber.Ctx) error {
		panic("calculator exploded")
	})
	app.Get("/panic-error", func(c *fiber.Ctx) error {
		panic(errors.New("wrapped failure"))
	})
	app.Get("/ok", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	return app
}

func TestRecoverMiddleware_DefaultResponse(t *testing.T) {
	core, logs := observer.New(zapcore.ErrorLevel)
	app := newPanicApp(DefaultRecoverConfig(zap.New(core)))

	req := httptest.NewRequest(http.MethodGet, "/panic", nil)
	req.Header.Set("X-Request-ID", "panic-req")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, float64(500), body["statuscode"])
	assert.Equal(t, "Error: An unexpected error occurred", body["msg"])

	entries := logs.FilterMessage("panic recovered").All()
	require.Len(t, entries, 1)
	ctx := entries[0].ContextMap()
	assert.Equal(t, "calculator exploded", ctx["error"])
	assert.Equal(t, "/panic", ctx["path"])
	assert.Equal(t, "panic-req", ctx["request_id"])
}

func TestRecoverMiddleware_CustomErrorHandler(t *testing.T) {
	var handled error
	config := DefaultRecoverConfig(zap.NewNop())
	config.ErrorHandler = func(c *fiber.Ctx, err error) error {
		handled = err
		return c.Status(fiber.StatusTeapot).SendString(err.Error())
	}
	app := newPanicApp(config)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/panic-error", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusTeapot, resp.StatusCode)
	require.Error(t, handled)
	assert.Equal(t, "wrapped failure", handled.Error())
}

func TestRecoverMiddleware_PassesThrough(t *testing.T) {
	app := newPanicApp(DefaultRecoverConfig(zap.NewNop()))

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/ok", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestNewRecoverMiddleware_DefaultsStackSize(t *testing.T) {
	m := NewRecoverMiddleware(RecoverConfig{Logger: zap.NewNop()})
	assert.Equal(t, 4<<10, m.config.StackSize)
}

func TestInitSentry_NoDSN(t *testing.T) {
	assert.NoError(t, InitSentry(DefaultSentryConfig()))
}
