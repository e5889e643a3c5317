package errs

import (
	"errors"
	"fmt"
	"net/http"
)

// Request & Input-Validation Errors
var (
	ErrValidation  = errors.New("validation failed")
	ErrInvalidJSON = errors.New("invalid JSON")
)

// NewValidationError reports schema-level violations as a 422 carrying one
// entry per failed field.
func NewValidationError(violations []FieldViolation) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusUnprocessableEntity,
		err:        ErrValidation,
		Violations: violations,
	}
}

// NewInvalidParamError reports a single bad query parameter as a 422.
func NewInvalidParamError(param, reason string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusUnprocessableEntity,
		err:        ErrValidation,
		Field:      param,
		Details:    fmt.Sprintf("Invalid parameter %s: %s", param, reason),
		Violations: []FieldViolation{{Field: param, Message: reason}},
	}
}

func NewInvalidJSONError(cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadRequest,
		err:        ErrInvalidJSON,
		Details:    "Invalid JSON format",
		Cause:      cause,
		Field:      "json",
	}
}

// Request & Input-Validation Error Type Checkers

func IsValidationError(err error) bool {
	return errors.Is(err, ErrValidation)
}

func IsInvalidJSONError(err error) bool {
	return errors.Is(err, ErrInvalidJSON)
}
