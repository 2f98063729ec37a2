package errors

import (
	"errors"
)

// ErrorCode represents a category of error for logging.
type ErrorCode string

// Error codes for categorization.
const (
	ErrCodeConfig     ErrorCode = "CONFIG"     // Configuration errors
	ErrCodeValidation ErrorCode = "VALIDATION" // Builder input validation errors
	ErrCodeDemo       ErrorCode = "DEMO"       // Demo runner errors
	ErrCodeInternal   ErrorCode = "INTERNAL"   // Everything else
)

// FluentError is the common interface for errors raised by fluentkit.
type FluentError interface {
	error

	// Code returns a machine-readable error code for categorization.
	Code() ErrorCode
}

// Sentinel errors.
var (
	ErrUnknownDemo             = errors.New("fluentkit: unknown demo")
	ErrInvalidConfig           = errors.New("fluentkit: invalid configuration")
	ErrUnsupportedConfigFormat = errors.New("fluentkit: unsupported configuration format")
)

// CodeOf returns the code of the first FluentError in err's chain.
// Sentinel errors map to their category; anything else is ErrCodeInternal.
func CodeOf(err error) ErrorCode {
	if err == nil {
		return ""
	}
	var fe FluentError
	if errors.As(err, &fe) {
		return fe.Code()
	}
	switch {
	case errors.Is(err, ErrUnknownDemo):
		return ErrCodeDemo
	case errors.Is(err, ErrInvalidConfig), errors.Is(err, ErrUnsupportedConfigFormat):
		return ErrCodeConfig
	default:
		return ErrCodeInternal
	}
}
