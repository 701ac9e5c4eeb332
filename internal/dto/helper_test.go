package dto

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseQuery(t *testing.T) {
	tests := []struct {
		name   string
		target string
		want   OperandsQuery
	}{
		{"both present", "/q?n1=1&n2=5", OperandsQuery{N1: "1", N2: "5"}},
		{"missing n2", "/q?n1=1", OperandsQuery{N1: "1"}},
		{"raw text kept", "/q?n1=foo&n2=%20-3.5", OperandsQuery{N1: "foo", N2: " -3.5"}},
		{"extra params ignored", "/q?n1=1&n2=2&n3=3", OperandsQuery{N1: "1", N2: "2"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()

			var got OperandsQuery
			app.Get("/q", func(c *fiber.Ctx) error {
				if err := ParseQuery(c, &got); err != nil {
					return err
				}
				return c.SendStatus(http.StatusNoContent)
			})

			resp, err := app.Test(httptest.NewRequest(http.MethodGet, tt.target, nil))
			require.NoError(t, err)
			assert.Equal(t, http.StatusNoContent, resp.StatusCode)
			assert.Equal(t, tt.want, got)
		})
	}
}
