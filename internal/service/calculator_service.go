package service

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/duncancan/sit323-2024t1-4.2c/internal/domain"
	apperrors "github.com/duncancan/sit323-2024t1-4.2c/internal/pkg/errors"
	"github.com/duncancan/sit323-2024t1-4.2c/internal/pkg/logger"
	"github.com/duncancan/sit323-2024t1-4.2c/internal/pkg/metrics"
)

// Query parameter names
const (
	ParamN1 = "n1"
	ParamN2 = "n2"
)

// CalculateInput holds the raw values of a calculation request
type CalculateInput struct {
	Operation domain.Operation
	N1        string
	N2        string
	RequestID string
}

// CalculatorService parses, validates and evaluates calculations
type CalculatorService struct {
	logger *zap.Logger
}

// NewCalculatorService creates a new calculator service
func NewCalculatorService(logger *zap.Logger) *CalculatorService {
	return &CalculatorService{logger: logger}
}

// Calculate parses both operands and applies the operation. n1 is parsed
// before n2 and parsing stops at the first invalid value. A panic during
// evaluation is returned as an internal error.
func (s *CalculatorService) Calculate(input CalculateInput) (result float64, err error) {
	start := time.Now()
	log := logger.WithRequestID(s.logger.With(zap.String("operation", string(input.Operation))), input.RequestID)

	defer func() {
		if r := recover(); r != nil {
			err = apperrors.Internal("unexpected failure during calculation").
				WithError(fmt.Errorf("panic: %v", r))
			log.Error("calculation panicked", zap.Any("panic", r))
		}
		metrics.RecordOperation(string(input.Operation), outcome(err), time.Since(start))
	}()

	if !input.Operation.IsValid() {
		err = apperrors.Internal(fmt.Sprintf("unknown operation %q", input.Operation))
		log.Error(err.Error())
		return 0, err
	}

	operands, err := ParseOperands(input.N1, input.N2)
	if err != nil {
		log.Error(apperrors.GetAppError(err).Message)
		return 0, err
	}

	result, err = Evaluate(input.Operation, operands)
	if err != nil {
		log.Error(apperrors.GetAppError(err).Message,
			zap.Float64("n1", operands.A),
			zap.Float64("n2", operands.B),
		)
		return 0, err
	}

	log.Info(fmt.Sprintf("Numbers %s and %s received for %s.",
		domain.FormatNumber(operands.A), domain.FormatNumber(operands.B), input.Operation.Verb()),
		zap.Float64("n1", operands.A),
		zap.Float64("n2", operands.B),
	)

	if math.IsNaN(result) || math.IsInf(result, 0) {
		metrics.RecordNonFinite(string(input.Operation))
	}

	return result, nil
}

// RejectQuery logs and counts a request whose query string could not be
// read at all, before any operand was parsed.
func (s *CalculatorService) RejectQuery(op domain.Operation, requestID string, err error) {
	log := logger.WithRequestID(s.logger.With(zap.String("operation", string(op))), requestID)
	msg := "Invalid query string"
	if appErr := apperrors.GetAppError(err); appErr != nil {
		msg = appErr.Message
	}
	log.Error(msg, zap.Error(err))
	metrics.RecordOperation(string(op), metrics.OutcomeInternal, 0)
}

// ParseOperands parses n1 then n2, returning the first failure
func ParseOperands(rawN1, rawN2 string) (domain.Operands, error) {
	a, err := ParseOperand(ParamN1, rawN1)
	if err != nil {
		return domain.Operands{}, err
	}
	b, err := ParseOperand(ParamN2, rawN2)
	if err != nil {
		return domain.Operands{}, err
	}
	return domain.Operands{A: a, B: b}, nil
}

// ParseOperand parses a single query value as a decimal float64.
// Surrounding whitespace is ignored. Values too large for a float64 parse
// as ±Inf; "NaN", hex literals, digit separators and anything else that is
// not a decimal number are rejected.
func ParseOperand(param, raw string) (float64, error) {
	text := strings.TrimSpace(raw)
	if strings.ContainsAny(text, "xX_") {
		return 0, apperrors.InvalidNumber(param, raw)
	}
	f, err := strconv.ParseFloat(text, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, apperrors.InvalidNumber(param, raw)
	}
	if math.IsNaN(f) {
		return 0, apperrors.InvalidNumber(param, raw)
	}
	return f, nil
}

// Evaluate runs the operation's guard and applies it to the operands
func Evaluate(op domain.Operation, operands domain.Operands) (float64, error) {
	if err := guard(op, operands); err != nil {
		return 0, err
	}
	return op.Apply(operands.A, operands.B), nil
}

// guard rejects inputs for which the operation is undefined
func guard(op domain.Operation, operands domain.Operands) error {
	switch op {
	case domain.OperationDivide:
		if operands.B == 0 {
			return apperrors.DivisionByZero(ParamN2)
		}
	case domain.OperationRoot:
		if operands.A < 0 && domain.IsEvenInteger(operands.B) {
			return apperrors.InvalidRoot(ParamN2, ParamN1)
		}
	}
	return nil
}

// outcome maps a calculation error to its metrics label
func outcome(err error) string {
	switch {
	case err == nil:
		return metrics.OutcomeSuccess
	case apperrors.IsInvalidNumber(err):
		return metrics.OutcomeInvalidNumber
	case apperrors.IsDivisionByZero(err):
		return metrics.OutcomeDivisionByZero
	case apperrors.IsInvalidRoot(err):
		return metrics.OutcomeInvalidRoot
	default:
		return metrics.OutcomeInternal
	}
}
