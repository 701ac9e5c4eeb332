// Package validator provides struct validation for the calculator service.
//
// This package wraps go-playground/validator to provide human-readable,
// structured validation errors. It is used to check the loaded
// configuration before the server starts.
//
//	if err := validator.Validate(cfg); err != nil {
//	    // err is a validator.ValidationErrors
//	}
package validator
