package errors

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"unicode/utf8"
)

// Error codes
const (
	CodeInternal         = "INTERNAL_ERROR"
	CodeInvalidNumber    = "INVALID_NUMBER"
	CodeDivisionByZero   = "DIVISION_BY_ZERO"
	CodeInvalidRoot      = "INVALID_ROOT"
	CodeNotFound         = "NOT_FOUND"
	CodeMethodNotAllowed = "METHOD_NOT_ALLOWED"
)

// AppError represents an application error with context
type AppError struct {
	Code       string            `json:"code"`
	Message    string            `json:"message"`
	Details    map[string]string `json:"details,omitempty"`
	StatusCode int               `json:"-"`
	Err        error             `json:"-"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error
func (e *AppError) Unwrap() error {
	return e.Err
}

// WithDetail adds a detail to the error
func (e *AppError) WithDetail(key, value string) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]string)
	}
	e.Details[key] = value
	return e
}

// WithError wraps an underlying error
func (e *AppError) WithError(err error) *AppError {
	e.Err = err
	return e
}

// New creates a new AppError
func New(code, message string, statusCode int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
	}
}

// Internal creates an internal server error
func Internal(message string) *AppError {
	return New(CodeInternal, message, http.StatusInternalServerError)
}

// InvalidNumber creates an error for a query parameter that is not a number
func InvalidNumber(param, value string) *AppError {
	shown := printable(value)
	return New(CodeInvalidNumber,
		fmt.Sprintf("Invalid number '%s' received for parameter %s.", shown, param),
		http.StatusBadRequest,
	).WithDetail("param", param).WithDetail("value", shown)
}

// printable returns value unchanged when it is valid UTF-8, otherwise the
// Go-escaped form so invalid bytes show up as \xNN instead of U+FFFD.
func printable(value string) string {
	if utf8.ValidString(value) {
		return value
	}
	quoted := strconv.Quote(value)
	return quoted[1 : len(quoted)-1]
}

// DivisionByZero creates an error for a zero divisor
func DivisionByZero(param string) *AppError {
	return New(CodeDivisionByZero,
		fmt.Sprintf("Parameter %s is zero. Unable to divide by zero", param),
		http.StatusBadRequest,
	).WithDetail("param", param)
}

// InvalidRoot creates an error for an even root of a negative number
func InvalidRoot(indexParam, radicandParam string) *AppError {
	return New(CodeInvalidRoot,
		fmt.Sprintf("Parameter %s is an even root index and parameter %s is negative. Invalid even root of negative number",
			indexParam, radicandParam),
		http.StatusBadRequest,
	).WithDetail("param", indexParam)
}

// NotFound creates an error for a request that matched no route
func NotFound(method, path string) *AppError {
	return New(CodeNotFound, fmt.Sprintf("Cannot %s %s", method, path), http.StatusNotFound)
}

// MethodNotAllowed creates an error for a known route hit with the wrong method
func MethodNotAllowed() *AppError {
	return New(CodeMethodNotAllowed, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
}

// IsAppError checks if the error is an AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError extracts AppError from error if present
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

// GetStatusCode returns the HTTP status code for an error
func GetStatusCode(err error) int {
	if appErr := GetAppError(err); appErr != nil {
		return appErr.StatusCode
	}
	return http.StatusInternalServerError
}

// IsInvalidNumber checks if the error is an invalid number error
func IsInvalidNumber(err error) bool {
	if appErr := GetAppError(err); appErr != nil {
		return appErr.Code == CodeInvalidNumber
	}
	return false
}

// IsDivisionByZero checks if the error is a division by zero error
func IsDivisionByZero(err error) bool {
	if appErr := GetAppError(err); appErr != nil {
		return appErr.Code == CodeDivisionByZero
	}
	return false
}

// IsInvalidRoot checks if the error is an invalid root error
func IsInvalidRoot(err error) bool {
	if appErr := GetAppError(err); appErr != nil {
		return appErr.Code == CodeInvalidRoot
	}
	return false
}

// IsInternal checks if the error is an internal error. Errors that are not
// AppErrors count as internal.
func IsInternal(err error) bool {
	if appErr := GetAppError(err); appErr != nil {
		return appErr.Code == CodeInternal
	}
	return err != nil
}

// IsRoutingError checks if the error is a not found or method not allowed
// error. These keep their status code regardless of compatibility mode.
func IsRoutingError(err error) bool {
	if appErr := GetAppError(err); appErr != nil {
		return appErr.Code == CodeNotFound || appErr.Code == CodeMethodNotAllowed
	}
	return false
}
