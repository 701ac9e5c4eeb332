// Package service contains the business logic layer for the calculator.
//
// CalculatorService turns the raw query values of a request into a result:
// it parses both operands, runs the operation's guard, evaluates the
// operation and writes one log entry describing the outcome. It knows
// nothing about HTTP; failures are returned as *apperrors.AppError values
// and mapped to responses by the handler layer.
//
// # Thread Safety
//
// CalculatorService holds no mutable state and is safe for concurrent use
// from multiple goroutines.
package service
