package middleware

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRequestIDApp(config ...RequestIDConfig) (*fiber.App, *string) {
	app := fiber.New()
	var seen string
	app.Use(RequestID(config...))
	app.Get("/add", func(c *fiber.Ctx) error {
		seen = GetRequestID(c)
		return c.SendStatus(fiber.StatusOK)
	})
	return app, &seen
}

func TestRequestID(t *testing.T) {
	t.Run("generates request ID when not present", func(t *testing.T) {
		app, seen := newRequestIDApp()

		resp, err := app.Test(httptest.NewRequest("GET", "/add?n1=1&n2=2", nil))
		require.NoError(t, err)

		requestID := resp.Header.Get("X-Request-ID")
		assert.Len(t, requestID, 36)
		assert.Equal(t, requestID, *seen)
	})

	t.Run("preserves existing request ID from header", func(t *testing.T) {
		app, seen := newRequestIDApp()

		req := httptest.NewRequest("GET", "/add", nil)
		req.Header.Set("X-Request-ID", "existing-request-id-12345")

		resp, err := app.Test(req)
		require.NoError(t, err)

		assert.Equal(t, "existing-request-id-12345", resp.Header.Get("X-Request-ID"))
		assert.Equal(t, "existing-request-id-12345", *seen)
	})

	t.Run("replaces oversized request ID", func(t *testing.T) {
		app, _ := newRequestIDApp()

		req := httptest.NewRequest("GET", "/add", nil)
		req.Header.Set("X-Request-ID", strings.Repeat("a", maxRequestIDLength+1))

		resp, err := app.Test(req)
		require.NoError(t, err)

		assert.Len(t, resp.Header.Get("X-Request-ID"), 36)
	})
}

func TestRequestIDWithConfig(t *testing.T) {
	t.Run("uses custom header name", func(t *testing.T) {
		app, _ := newRequestIDApp(RequestIDConfig{
			Header:    "X-Correlation-ID",
			Generator: func() string { return "custom-generated-id" },
		})

		resp, err := app.Test(httptest.NewRequest("GET", "/add", nil))
		require.NoError(t, err)

		assert.Equal(t, "custom-generated-id", resp.Header.Get("X-Correlation-ID"))
	})

	t.Run("does not call generator when ID exists", func(t *testing.T) {
		callCount := 0
		app, _ := newRequestIDApp(RequestIDConfig{
			Generator: func() string {
				callCount++
				return "generated-id"
			},
		})

		req := httptest.NewRequest("GET", "/add", nil)
		req.Header.Set("X-Request-ID", "existing-id")
		_, err := app.Test(req)
		require.NoError(t, err)

		assert.Equal(t, 0, callCount)
	})

	t.Run("falls back to default header", func(t *testing.T) {
		app, _ := newRequestIDApp(RequestIDConfig{
			Generator: func() string { return "generated-id" },
		})

		resp, err := app.Test(httptest.NewRequest("GET", "/add", nil))
		require.NoError(t, err)

		assert.Equal(t, "generated-id", resp.Header.Get("X-Request-ID"))
	})
}

func TestValidRequestID(t *testing.T) {
	tests := []struct {
		name string
		id   string
		want bool
	}{
		{"empty", "", false},
		{"uuid", "0b5e0c1c-3b58-4b0e-9a63-6f1c2a6d9e10", true},
		{"contains space", "abc def", false},
		{"contains newline", "abc\ndef", false},
		{"max length", strings.Repeat("x", maxRequestIDLength), true},
		{"too long", strings.Repeat("x", maxRequestIDLength+1), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, validRequestID(tt.id))
		})
	}
}
