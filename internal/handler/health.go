package handler

import (
	"fmt"
	"math"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/duncancan/sit323-2024t1-4.2c/internal/domain"
	"github.com/duncancan/sit323-2024t1-4.2c/internal/service"
)

// HealthHandler handles health check endpoints
type HealthHandler struct {
	serviceName string
	version     string
	startTime   time.Time
	check       func() error
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(serviceName, version string) *HealthHandler {
	return &HealthHandler{
		serviceName: serviceName,
		version:     version,
		startTime:   time.Now(),
		check:       selfCheck,
	}
}

// HealthStatus represents health check status
type HealthStatus struct {
	Status    string            `json:"status"`
	Service   string            `json:"service"`
	Version   string            `json:"version"`
	Uptime    string            `json:"uptime"`
	Timestamp string            `json:"timestamp"`
	Checks    map[string]string `json:"checks"`
}

// Health handles GET /health
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	status := HealthStatus{
		Status:    "healthy",
		Service:   h.serviceName,
		Version:   h.version,
		Uptime:    time.Since(h.startTime).String(),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Checks:    make(map[string]string),
	}

	status.Checks["operations"] = fmt.Sprintf("healthy: %d registered", len(domain.Operations))

	if err := h.check(); err != nil {
		status.Status = "unhealthy"
		status.Checks["calculator"] = "unhealthy: " + err.Error()
	} else {
		status.Checks["calculator"] = "healthy"
	}

	statusCode := fiber.StatusOK
	if status.Status != "healthy" {
		statusCode = fiber.StatusServiceUnavailable
	}

	return c.Status(statusCode).JSON(status)
}

// Liveness handles GET /livez - basic liveness check
func (h *HealthHandler) Liveness(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status": "alive",
	})
}

// Readiness handles GET /readyz - readiness check
func (h *HealthHandler) Readiness(c *fiber.Ctx) error {
	if err := h.check(); err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"status": "not ready",
			"reason": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"status": "ready",
	})
}

// Version handles GET /version
func (h *HealthHandler) Version(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"service": h.serviceName,
		"version": h.version,
		"uptime":  time.Since(h.startTime).String(),
	})
}

// RegisterRoutes registers health check routes
func (h *HealthHandler) RegisterRoutes(app fiber.Router) {
	app.Get("/health", h.Health)
	app.Get("/healthz", h.Health)
	app.Get("/livez", h.Liveness)
	app.Get("/live", h.Liveness)
	app.Get("/readyz", h.Readiness)
	app.Get("/ready", h.Readiness)
	app.Get("/version", h.Version)
}

// selfCheckOperands and selfCheckResults form a canary: the evaluator runs
// in-process, so a failure here means a broken build rather than a missing
// dependency.
var (
	selfCheckOperands = domain.Operands{A: 9, B: 2}
	selfCheckResults  = map[domain.Operation]float64{
		domain.OperationAdd:      11,
		domain.OperationSubtract: 7,
		domain.OperationMultiply: 18,
		domain.OperationDivide:   4.5,
		domain.OperationPower:    81,
		domain.OperationRoot:     3,
		domain.OperationMod:      1,
	}
)

// selfCheck evaluates every operation on known operands
func selfCheck() error {
	return checkOperations(domain.Operations, selfCheckOperands, selfCheckResults)
}

func checkOperations(ops []domain.Operation, operands domain.Operands, want map[domain.Operation]float64) error {
	for _, op := range ops {
		got, err := service.Evaluate(op, operands)
		if err != nil {
			return fmt.Errorf("%s self-check failed: %w", op, err)
		}
		expected, ok := want[op]
		if !ok {
			return fmt.Errorf("%s self-check failed: no expected result", op)
		}
		if math.Abs(got-expected) > 1e-9 {
			return fmt.Errorf("%s self-check failed: got %v, want %v", op, got, expected)
		}
	}
	return nil
}
