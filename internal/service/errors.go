// Package service implements the domain services for the accounts, cards
// and loans APIs. Services raise typed failures; assigning HTTP status and
// response shape is left entirely to the API boundary.
package service

import "fmt"

// NotFoundError reports a business-key lookup miss. It carries the entity
// name, the key name and the key value so the caller can self-diagnose
// without server-side log access.
type NotFoundError struct {
	Entity   string
	KeyName  string
	KeyValue string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found with %s : '%s'", e.Entity, e.KeyName, e.KeyValue)
}

// NewNotFoundError creates a NotFoundError.
func NewNotFoundError(entity, keyName, keyValue string) *NotFoundError {
	return &NotFoundError{Entity: entity, KeyName: keyName, KeyValue: keyValue}
}

// AlreadyExistsError reports a duplicate unique business key on create.
type AlreadyExistsError struct {
	Message string
}

func (e *AlreadyExistsError) Error() string {
	return e.Message
}

// InsufficientFundsError reports a spend exceeding a card's available
// amount.
type InsufficientFundsError struct {
	CardNumber string
	Amount     float64
}

func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("Insufficient funds in card with card number %s", e.CardNumber)
}
