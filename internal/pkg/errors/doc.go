// Package errors provides application error types for the calculator service.
//
// This package defines:
//   - AppError type with error classification
//   - Error constructors for the calculator's failure modes
//   - Error type checking helpers
//   - HTTP status code mapping
//
// # Error Types
//
//   - InvalidNumber: a query parameter is not a number (400)
//   - DivisionByZero: the divisor is zero (400)
//   - InvalidRoot: even root of a negative number (400)
//   - NotFound: unknown route (404)
//   - Internal: unexpected server error (500)
//
// The status codes above are the natural ones. The HTTP layer may collapse
// every failure to 500 for compatibility with existing clients.
//
// # Usage
//
//	return apperrors.InvalidNumber("n1", raw)
//
//	if apperrors.IsDivisionByZero(err) {
//	    // Handle zero divisor
//	}
package errors
