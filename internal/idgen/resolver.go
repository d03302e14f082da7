package idgen

import (
	"context"
	"errors"
	"fmt"
)

// DefaultMaxAttempts bounds the generate-and-check loop. Collisions in a
// ~9-billion identifier space are astronomically unlikely; exhausting the
// budget points at a store problem, not bad luck.
const DefaultMaxAttempts = 10

// ErrExhausted is the sentinel wrapped by ExhaustedError.
var ErrExhausted = errors.New("identifier generation exhausted")

// ExhaustedError reports that every candidate in a bounded run collided.
type ExhaustedError struct {
	Resource string
	Attempts int
}

func (e *ExhaustedError) Error() string {
	return fmt.Sprintf("failed to generate a unique %s after %d attempts",
		e.Resource, e.Attempts)
}

// Unwrap returns ErrExhausted to support errors.Is.
func (e *ExhaustedError) Unwrap() error {
	return ErrExhausted
}

// ExistsFunc reports whether an identifier candidate is already taken.
// It is typically backed by the store's exists-by-key query.
type ExistsFunc func(ctx context.Context, id string) (bool, error)

// Resolver retries a Generator against an existence predicate until a
// non-colliding identifier is found or the attempt budget runs out.
type Resolver struct {
	generator   Generator
	resource    string
	maxAttempts int
}

// NewResolver creates a Resolver for the named resource (for example
// "account number"), used in the exhaustion error message.
func NewResolver(generator Generator, resource string) *Resolver {
	return &Resolver{
		generator:   generator,
		resource:    resource,
		maxAttempts: DefaultMaxAttempts,
	}
}

// GenerateUnique returns the first candidate the predicate reports as free.
// It fails with an ExhaustedError once maxAttempts candidates all collided,
// and propagates predicate or generator errors as-is.
func (r *Resolver) GenerateUnique(ctx context.Context, exists ExistsFunc) (string, error) {
	for attempt := 1; attempt <= r.maxAttempts; attempt++ {
		candidate, err := r.generator.Generate()
		if err != nil {
			return "", err
		}
		taken, err := exists(ctx, candidate)
		if err != nil {
			return "", fmt.Errorf("failed to check %s uniqueness: %w", r.resource, err)
		}
		if !taken {
			return candidate, nil
		}
	}
	return "", &ExhaustedError{Resource: r.resource, Attempts: r.maxAttempts}
}
