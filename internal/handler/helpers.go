package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/duncancan/sit323-2024t1-4.2c/internal/domain"
	apperrors "github.com/duncancan/sit323-2024t1-4.2c/internal/pkg/errors"
)

// ResponseWriter renders calculator envelopes. In compat mode every failure
// is answered with 500; otherwise the error's own status code is used.
type ResponseWriter struct {
	compatStatus bool
}

// NewResponseWriter creates a new response writer
func NewResponseWriter(compatStatus bool) *ResponseWriter {
	return &ResponseWriter{compatStatus: compatStatus}
}

// Success writes a 200 envelope carrying the result
func (w *ResponseWriter) Success(c *fiber.Ctx, result float64) error {
	return c.Status(fiber.StatusOK).JSON(domain.SuccessEnvelope(fiber.StatusOK, result))
}

// Error writes a failure envelope for err
func (w *ResponseWriter) Error(c *fiber.Ctx, err error) error {
	statusCode := w.StatusCode(err)
	return c.Status(statusCode).JSON(domain.FailureEnvelope(statusCode, Message(err)))
}

// StatusCode returns the HTTP status used for err. Routing errors and
// errors raised by Fiber keep their own code in both modes.
func (w *ResponseWriter) StatusCode(err error) int {
	if fe, ok := err.(*fiber.Error); ok {
		return fe.Code
	}
	if apperrors.IsRoutingError(err) {
		return apperrors.GetStatusCode(err)
	}
	if w.compatStatus {
		return fiber.StatusInternalServerError
	}
	return apperrors.GetStatusCode(err)
}

// Message formats err for the msg field of an envelope, prefixed with
// "Error: " as clients of the service expect.
func Message(err error) string {
	if appErr := apperrors.GetAppError(err); appErr != nil {
		return "Error: " + appErr.Message
	}
	if fe, ok := err.(*fiber.Error); ok {
		return "Error: " + fe.Message
	}
	return "Error: Internal Server Error"
}
