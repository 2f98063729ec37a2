package errors

import (
	"fmt"
	"strings"
)

// ValidationError represents a rejected builder input.
type ValidationError struct {
	Field   string
	Message string
	Err     error // Underlying error for wrapping
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("fluentkit: validation error for field %q: %s", e.Field, e.Message)
}

// Unwrap returns the underlying error for error chain support.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Code returns the error code for the validation error.
// Implements the FluentError interface.
func (e *ValidationError) Code() ErrorCode {
	return ErrCodeValidation
}

// Ensure ValidationError implements FluentError.
var _ FluentError = (*ValidationError)(nil)

// NewValidationError creates a new validation error.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

// NewValidationErrorWithCause creates a new validation error with an underlying cause.
func NewValidationErrorWithCause(field, message string, cause error) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
		Err:     cause,
	}
}

// ValidationErrors is a list of validation errors reported together.
// It unwraps to its members, so errors.As finds each *ValidationError.
type ValidationErrors []error

// Error implements the error interface.
func (e ValidationErrors) Error() string {
	msgs := make([]string, len(e))
	for i, err := range e {
		msgs[i] = err.Error()
	}
	return "fluentkit: multiple validation errors: " + strings.Join(msgs, "; ")
}

// Unwrap returns the member errors.
func (e ValidationErrors) Unwrap() []error {
	return e
}

// Code implements the FluentError interface.
func (e ValidationErrors) Code() ErrorCode {
	return ErrCodeValidation
}

// Fields returns the field names of the member validation errors, in order.
func (e ValidationErrors) Fields() []string {
	fields := make([]string, 0, len(e))
	for _, err := range e {
		if ve, ok := err.(*ValidationError); ok {
			fields = append(fields, ve.Field)
		}
	}
	return fields
}

// CombineValidationErrors combines multiple validation errors into a single error.
// It returns nil for no errors and the error itself when there is only one.
func CombineValidationErrors(errs []error) error {
	switch len(errs) {
	case 0:
		return nil
	case 1:
		return errs[0]
	}
	combined := make(ValidationErrors, len(errs))
	copy(combined, errs)
	return combined
}
