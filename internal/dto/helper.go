package dto

import (
	"github.com/gofiber/fiber/v2"

	apperrors "github.com/duncancan/sit323-2024t1-4.2c/internal/pkg/errors"
)

// ParseQuery parses the query string into the given struct.
// A malformed query string is returned as an internal AppError.
func ParseQuery(c *fiber.Ctx, v any) error {
	if err := c.QueryParser(v); err != nil {
		return apperrors.Internal("Invalid query string").WithError(err)
	}
	return nil
}
