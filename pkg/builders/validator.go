package builders

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	pkgerrors "github.com/jdziat/fluentkit/pkg/errors"
)

// Limits enforced by the validated builders.
const (
	// MaxNameLength is the maximum allowed length for name fields.
	MaxNameLength = 100

	// MaxAge is the largest age a validated person may have.
	MaxAge = 150

	// MaxPort is the largest TCP port number.
	MaxPort = 65535
)

// Validator provides validation methods for builder types.
// Builders can embed this to gain validation capabilities.
type Validator struct {
	errors []error
}

// AddError adds a validation error. Nil errors are ignored.
func (v *Validator) AddError(err error) {
	if err != nil {
		v.errors = append(v.errors, err)
	}
}

// AddFieldError adds a validation error for a specific field.
func (v *Validator) AddFieldError(field, message string) {
	v.errors = append(v.errors, pkgerrors.NewValidationError(field, message))
}

// Check records err if it is non-nil and reports whether the input passed.
func (v *Validator) Check(err error) bool {
	if err != nil {
		v.errors = append(v.errors, err)
		return false
	}
	return true
}

// HasErrors returns true if there are any validation errors.
func (v *Validator) HasErrors() bool {
	return len(v.errors) > 0
}

// Errors returns a copy of all accumulated validation errors.
func (v *Validator) Errors() []error {
	if len(v.errors) == 0 {
		return nil
	}
	out := make([]error, len(v.errors))
	copy(out, v.errors)
	return out
}

// ClearErrors clears all validation errors.
func (v *Validator) ClearErrors() {
	v.errors = nil
}

// CombinedError returns a single error combining all validation errors,
// or nil if there are no errors.
func (v *Validator) CombinedError() error {
	return pkgerrors.CombineValidationErrors(v.errors)
}

// Validation rules

// ValidateRequired validates that a required field is not empty.
func ValidateRequired(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return pkgerrors.NewValidationError(field, "is required")
	}
	return nil
}

// ValidateLength validates that a string field fits within maxLength runes.
func ValidateLength(field, value string, maxLength int) error {
	if maxLength > 0 && utf8.RuneCountInString(value) > maxLength {
		return pkgerrors.NewValidationError(field, fmt.Sprintf("exceeds maximum length of %d characters", maxLength))
	}
	return nil
}

// ValidateRange validates that a numeric field is within a range.
func ValidateRange(field string, value, min, max int) error {
	if value < min || value > max {
		return pkgerrors.NewValidationError(field, fmt.Sprintf("must be between %d and %d", min, max))
	}
	return nil
}

// ValidateEmail validates an email address. An empty address is valid
// because email is optional.
func ValidateEmail(field, value string) error {
	if value == "" {
		return nil
	}
	at := strings.IndexByte(value, '@')
	if at <= 0 || at != strings.LastIndexByte(value, '@') || at == len(value)-1 {
		return pkgerrors.NewValidationError(field, "must be a valid email address")
	}
	if strings.ContainsAny(value, " \t\n") {
		return pkgerrors.NewValidationError(field, "must not contain whitespace")
	}
	return nil
}

// ValidatePort validates a TCP port number.
func ValidatePort(field string, port int) error {
	return ValidateRange(field, port, 1, MaxPort)
}

// ValidatePositiveDuration validates that a duration is greater than zero.
func ValidatePositiveDuration(field string, d time.Duration) error {
	if d <= 0 {
		return pkgerrors.NewValidationError(field, "must be positive")
	}
	return nil
}
