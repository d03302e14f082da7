package store

import (
	"context"

	"github.com/bunshock/hipbank/internal/domain"
)

// LoanStore defines the interface for loan data persistence.
type LoanStore interface {
	// Create saves a new loan and assigns its surrogate LoanID.
	Create(ctx context.Context, loan *domain.Loan) error

	// ExistsByNumber reports whether a loan with the given number exists.
	// Backs the identifier uniqueness resolver.
	ExistsByNumber(ctx context.Context, loanNumber string) (bool, error)

	// FindByNumber retrieves a loan by its unique business key.
	// Returns ErrLoanNotFound if no loan has the number.
	FindByNumber(ctx context.Context, loanNumber string) (*domain.Loan, error)

	// FindAll returns every loan. An empty slice is valid output.
	FindAll(ctx context.Context) ([]domain.Loan, error)

	// Update saves changes to an existing loan.
	// Returns ErrLoanNotFound if the loan does not exist.
	Update(ctx context.Context, loan *domain.Loan) error

	// Delete removes a loan by its surrogate key.
	// Returns ErrLoanNotFound if the loan does not exist.
	Delete(ctx context.Context, loanID int64) error
}
