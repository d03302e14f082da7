// Package domain defines the core business entities and errors.
package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// This is often wrapped with a more specific error message.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidAccountType is returned when an account type literal is not
	// one of the known values.
	ErrInvalidAccountType = errors.New("invalid account type")

	// ErrInvalidCardType is returned when a card type literal is not one of
	// the known values.
	ErrInvalidCardType = errors.New("invalid card type")

	// ErrInvalidLoanType is returned when a loan type literal is not one of
	// the known values.
	ErrInvalidLoanType = errors.New("invalid loan type")

	// ErrInsufficientFunds is returned when a spend would exceed a card's
	// available amount.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrNonPositiveAmount is returned when a monetary operation receives an
	// amount that is zero or negative.
	ErrNonPositiveAmount = errors.New("amount must be positive")
)

// ValidationError wraps ErrValidation with field context so callers can
// still match on the sentinel with errors.Is.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	return "validation failed on " + e.Field + ": " + e.Message
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// NewValidationError creates a ValidationError wrapping ErrValidation.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message, Err: ErrValidation}
}
