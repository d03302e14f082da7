package store

import (
	"context"
	"database/sql"

	"github.com/bunshock/hipbank/internal/domain"
)

// AccountStore defines the interface for account data persistence.
type AccountStore interface {
	// Create saves a new account. The account number is the primary key and
	// must already be resolved as unique.
	Create(ctx context.Context, account *domain.Account) error

	// ExistsByNumber reports whether an account with the given number exists.
	// Backs the identifier uniqueness resolver.
	ExistsByNumber(ctx context.Context, accountNumber string) (bool, error)

	// FindByCustomerID retrieves the account owned by the given customer.
	// Returns ErrAccountNotFound if the customer has no account row; callers
	// treat that as a data-integrity inconsistency when the customer exists.
	FindByCustomerID(ctx context.Context, customerID int64) (*domain.Account, error)

	// FindAll returns every account. An empty slice is valid output.
	FindAll(ctx context.Context) ([]domain.Account, error)

	// Update saves changes to an existing account.
	// Returns ErrAccountNotFound if the account does not exist.
	Update(ctx context.Context, account *domain.Account) error

	// DeleteByCustomerID removes the account owned by the given customer.
	// Returns ErrAccountNotFound if no row was deleted.
	DeleteByCustomerID(ctx context.Context, customerID int64) error

	// WithTx returns an AccountStore bound to the provided transaction.
	// Account creation and deletion are transactional with the owning
	// customer row; use RunInTransaction.
	WithTx(tx *sql.Tx) AccountStore
}
