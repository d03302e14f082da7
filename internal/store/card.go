package store

import (
	"context"

	"github.com/bunshock/hipbank/internal/domain"
)

// CardStore defines the interface for card data persistence.
type CardStore interface {
	// Create saves a new card and assigns its surrogate CardID.
	Create(ctx context.Context, card *domain.Card) error

	// ExistsByNumber reports whether a card with the given number exists.
	// Backs the identifier uniqueness resolver.
	ExistsByNumber(ctx context.Context, cardNumber string) (bool, error)

	// FindByNumber retrieves a card by its unique business key.
	// Returns ErrCardNotFound if no card has the number.
	FindByNumber(ctx context.Context, cardNumber string) (*domain.Card, error)

	// FindAll returns every card. An empty slice is valid output.
	FindAll(ctx context.Context) ([]domain.Card, error)

	// Update saves changes to an existing card.
	// Returns ErrCardNotFound if the card does not exist.
	Update(ctx context.Context, card *domain.Card) error

	// Delete removes a card by its surrogate key.
	// Returns ErrCardNotFound if the card does not exist.
	Delete(ctx context.Context, cardID int64) error
}
