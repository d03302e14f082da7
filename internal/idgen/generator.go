// Package idgen produces the 10-digit numeric identifiers used as account,
// card and loan numbers, and resolves them to uniqueness against the store.
package idgen

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// Identifiers are drawn uniformly from [1_000_000_000, 9_999_999_999], so a
// leading zero can never occur and the rendered string is always 10 digits.
const (
	minIdentifier  = 1_000_000_000
	identifierSpan = 9_000_000_000
)

// Generator produces a single identifier candidate per call. Identifiers
// double as externally visible reference tokens, so implementations must
// draw from a non-predictable source.
type Generator interface {
	Generate() (string, error)
}

// NumberGenerator draws 10-digit identifiers from crypto/rand.
type NumberGenerator struct{}

// NewNumberGenerator creates a NumberGenerator.
func NewNumberGenerator() *NumberGenerator {
	return &NumberGenerator{}
}

var _ Generator = (*NumberGenerator)(nil)

// Generate returns a fresh uniformly distributed 10-digit numeric string.
// Each call is an independent draw; the generator holds no state.
func (g *NumberGenerator) Generate() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(identifierSpan))
	if err != nil {
		return "", fmt.Errorf("failed to draw random identifier: %w", err)
	}
	return fmt.Sprintf("%010d", minIdentifier+n.Int64()), nil
}
