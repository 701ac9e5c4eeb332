package handler

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDocsApp(t *testing.T) *fiber.App {
	t.Helper()
	h, err := NewDocsHandler()
	require.NoError(t, err)

	app := fiber.New()
	h.RegisterRoutes(app)
	return app
}

func TestNewDocsHandler_InvalidSpec(t *testing.T) {
	_, err := newDocsHandler([]byte("openapi: [unterminated"))
	assert.Error(t, err)
}

func TestDocsHandler_OpenAPIYAML(t *testing.T) {
	app := newDocsApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/openapi.yaml", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/x-yaml", resp.Header.Get("Content-Type"))

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "openapi:")
}

func TestDocsHandler_OpenAPIJSON(t *testing.T) {
	app := newDocsApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/openapi.json", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var doc struct {
		Paths map[string]any `json:"paths"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&doc))
	for _, path := range []string{"/add", "/subtract", "/multiply", "/divide", "/power", "/root", "/mod"} {
		assert.Contains(t, doc.Paths, path)
	}
}

func TestDocsHandler_HTMLPages(t *testing.T) {
	app := newDocsApp(t)

	for _, path := range []string{"/docs", "/redoc"} {
		t.Run(path, func(t *testing.T) {
			resp, err := app.Test(httptest.NewRequest(http.MethodGet, path, nil))
			require.NoError(t, err)
			assert.Equal(t, http.StatusOK, resp.StatusCode)
			assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")

			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)
			assert.Contains(t, string(body), "/openapi.yaml")
		})
	}
}
