package service

import (
	"errors"
	"fmt"
)

// ErrRepositoryNotConfigured is returned by admin operations that need the
// settings store when none is configured.
var ErrRepositoryNotConfigured = errors.New("settings repository not configured")

// ErrUnknownCarrier is returned for carrier names outside USPS and UPS.
var ErrUnknownCarrier = errors.New("unknown carrier")

// ValidationError reports a missing or malformed input field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// NewValidationError creates a ValidationError.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}
