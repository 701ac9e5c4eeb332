package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/duncancan/sit323-2024t1-4.2c/internal/domain"
	"github.com/duncancan/sit323-2024t1-4.2c/internal/dto"
	"github.com/duncancan/sit323-2024t1-4.2c/internal/middleware"
	"github.com/duncancan/sit323-2024t1-4.2c/internal/service"
)

// CalculatorHandler serves the arithmetic endpoints
type CalculatorHandler struct {
	service  *service.CalculatorService
	response *ResponseWriter
}

// NewCalculatorHandler creates a new calculator handler
func NewCalculatorHandler(svc *service.CalculatorService, response *ResponseWriter) *CalculatorHandler {
	return &CalculatorHandler{
		service:  svc,
		response: response,
	}
}

// OperationInfo describes a served operation
type OperationInfo struct {
	Name string `json:"name"`
	Path string `json:"path"`
}

// Operation returns the handler for GET /<op>?n1=&n2=
func (h *CalculatorHandler) Operation(op domain.Operation) fiber.Handler {
	return func(c *fiber.Ctx) error {
		requestID := middleware.GetRequestID(c)

		var query dto.OperandsQuery
		if err := dto.ParseQuery(c, &query); err != nil {
			h.service.RejectQuery(op, requestID, err)
			return h.response.Error(c, err)
		}

		result, err := h.service.Calculate(service.CalculateInput{
			Operation: op,
			N1:        query.N1,
			N2:        query.N2,
			RequestID: requestID,
		})
		if err != nil {
			return h.response.Error(c, err)
		}

		return h.response.Success(c, result)
	}
}

// ListOperations handles GET /operations
func (h *CalculatorHandler) ListOperations(c *fiber.Ctx) error {
	ops := make([]OperationInfo, 0, len(domain.Operations))
	for _, op := range domain.Operations {
		ops = append(ops, OperationInfo{Name: string(op), Path: op.Path()})
	}
	return c.JSON(fiber.Map{
		"operations": ops,
	})
}

// RegisterRoutes registers one GET route per operation
func (h *CalculatorHandler) RegisterRoutes(router fiber.Router) {
	for _, op := range domain.Operations {
		router.Get(op.Path(), h.Operation(op))
	}
	router.Get("/operations", h.ListOperations)
}
