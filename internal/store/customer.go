package store

import (
	"context"
	"database/sql"

	"github.com/bunshock/hipbank/internal/domain"
)

// CustomerStore defines the interface for customer data persistence.
type CustomerStore interface {
	// Create saves a new customer and assigns its surrogate CustomerID.
	// Returns ErrMobileNumberExists if the mobile number is already taken.
	Create(ctx context.Context, customer *domain.Customer) error

	// GetByID retrieves a customer by its surrogate key.
	// Returns ErrCustomerNotFound if the customer does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Customer, error)

	// FindByMobileNumber retrieves a customer by its unique business key.
	// Returns ErrCustomerNotFound if no customer has the mobile number.
	FindByMobileNumber(ctx context.Context, mobileNumber string) (*domain.Customer, error)

	// Update saves changes to an existing customer.
	// Returns ErrCustomerNotFound if the customer does not exist and
	// ErrMobileNumberExists if the new mobile number is already taken.
	Update(ctx context.Context, customer *domain.Customer) error

	// Delete removes a customer by its surrogate key.
	// Returns ErrCustomerNotFound if the customer does not exist.
	Delete(ctx context.Context, id int64) error

	// WithTx returns a CustomerStore bound to the provided transaction.
	// Deleting a customer together with its account must run inside one
	// transaction via RunInTransaction.
	WithTx(tx *sql.Tx) CustomerStore
}
