package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/bunshock/hipbank/internal/domain"
	"github.com/bunshock/hipbank/internal/platform/logger"
	"github.com/bunshock/hipbank/internal/store"
)

// PostgresCustomerStore implements the store.CustomerStore interface
// using a PostgreSQL database as the storage backend.
type PostgresCustomerStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresCustomerStore creates a new PostgreSQL implementation of the
// CustomerStore interface. It accepts a database connection or transaction
// that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresCustomerStore(db store.DBTX, log *slog.Logger) *PostgresCustomerStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}
	return &PostgresCustomerStore{
		db:     db,
		logger: log.With(slog.String("component", "customer_store")),
	}
}

// Ensure PostgresCustomerStore implements store.CustomerStore interface
var _ store.CustomerStore = (*PostgresCustomerStore)(nil)

// Create implements store.CustomerStore.Create
// It saves a new customer and fills in the generated surrogate key.
// Returns store.ErrMobileNumberExists on a unique violation.
func (s *PostgresCustomerStore) Create(ctx context.Context, customer *domain.Customer) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := customer.Validate(); err != nil {
		log.Warn("customer validation failed during create",
			slog.String("error", err.Error()))
		return err
	}

	query := `
		INSERT INTO customers (name, email, mobile_number, created_at, created_by, updated_at, updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING customer_id
	`
	err := s.db.QueryRowContext(
		ctx,
		query,
		customer.Name,
		customer.Email,
		customer.MobileNumber,
		customer.CreatedAt,
		customer.CreatedBy,
		customer.UpdatedAt,
		customer.UpdatedBy,
	).Scan(&customer.CustomerID)

	if err != nil {
		if isUniqueViolation(err) {
			log.Warn("duplicate mobile number during customer creation",
				slog.String("mobile_number", customer.MobileNumber))
			return fmt.Errorf("%w: %s", store.ErrMobileNumberExists, customer.MobileNumber)
		}
		log.Error("failed to create customer",
			slog.String("error", err.Error()))
		return err
	}

	log.Info("customer created successfully",
		slog.Int64("customer_id", customer.CustomerID))
	return nil
}

// GetByID implements store.CustomerStore.GetByID
// Returns store.ErrCustomerNotFound if the customer does not exist.
func (s *PostgresCustomerStore) GetByID(ctx context.Context, id int64) (*domain.Customer, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT customer_id, name, email, mobile_number, created_at, created_by, updated_at, updated_by
		FROM customers
		WHERE customer_id = $1
	`

	var customer domain.Customer
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&customer.CustomerID,
		&customer.Name,
		&customer.Email,
		&customer.MobileNumber,
		&customer.CreatedAt,
		&customer.CreatedBy,
		&customer.UpdatedAt,
		&customer.UpdatedBy,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("customer not found", slog.Int64("customer_id", id))
			return nil, store.ErrCustomerNotFound
		}
		log.Error("failed to get customer by ID",
			slog.String("error", err.Error()),
			slog.Int64("customer_id", id))
		return nil, err
	}

	return &customer, nil
}

// FindByMobileNumber implements store.CustomerStore.FindByMobileNumber
// Returns store.ErrCustomerNotFound if no customer has the mobile number.
func (s *PostgresCustomerStore) FindByMobileNumber(
	ctx context.Context,
	mobileNumber string,
) (*domain.Customer, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT customer_id, name, email, mobile_number, created_at, created_by, updated_at, updated_by
		FROM customers
		WHERE mobile_number = $1
	`

	var customer domain.Customer
	err := s.db.QueryRowContext(ctx, query, mobileNumber).Scan(
		&customer.CustomerID,
		&customer.Name,
		&customer.Email,
		&customer.MobileNumber,
		&customer.CreatedAt,
		&customer.CreatedBy,
		&customer.UpdatedAt,
		&customer.UpdatedBy,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("customer not found by mobile number")
			return nil, store.ErrCustomerNotFound
		}
		log.Error("failed to find customer by mobile number",
			slog.String("error", err.Error()))
		return nil, err
	}

	return &customer, nil
}

// Update implements store.CustomerStore.Update
// Returns store.ErrCustomerNotFound if the customer does not exist.
func (s *PostgresCustomerStore) Update(ctx context.Context, customer *domain.Customer) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := customer.Validate(); err != nil {
		log.Warn("customer validation failed during update",
			slog.String("error", err.Error()),
			slog.Int64("customer_id", customer.CustomerID))
		return err
	}

	query := `
		UPDATE customers
		SET name = $1, email = $2, mobile_number = $3, updated_at = $4, updated_by = $5
		WHERE customer_id = $6
	`

	result, err := s.db.ExecContext(
		ctx,
		query,
		customer.Name,
		customer.Email,
		customer.MobileNumber,
		customer.UpdatedAt,
		customer.UpdatedBy,
		customer.CustomerID,
	)

	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: %s", store.ErrMobileNumberExists, customer.MobileNumber)
		}
		log.Error("failed to update customer",
			slog.String("error", err.Error()),
			slog.Int64("customer_id", customer.CustomerID))
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Error("failed to get rows affected",
			slog.String("error", err.Error()),
			slog.Int64("customer_id", customer.CustomerID))
		return err
	}
	if rowsAffected == 0 {
		log.Debug("customer not found for update",
			slog.Int64("customer_id", customer.CustomerID))
		return store.ErrCustomerNotFound
	}

	log.Info("customer updated successfully",
		slog.Int64("customer_id", customer.CustomerID))
	return nil
}

// Delete implements store.CustomerStore.Delete
// Returns store.ErrCustomerNotFound if the customer does not exist.
func (s *PostgresCustomerStore) Delete(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM customers WHERE customer_id = $1`, id)
	if err != nil {
		log.Error("failed to delete customer",
			slog.String("error", err.Error()),
			slog.Int64("customer_id", id))
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Error("failed to get rows affected",
			slog.String("error", err.Error()),
			slog.Int64("customer_id", id))
		return err
	}
	if rowsAffected == 0 {
		log.Debug("customer not found for delete", slog.Int64("customer_id", id))
		return store.ErrCustomerNotFound
	}

	log.Info("customer deleted successfully", slog.Int64("customer_id", id))
	return nil
}

// WithTx implements store.CustomerStore.WithTx
func (s *PostgresCustomerStore) WithTx(tx *sql.Tx) store.CustomerStore {
	return &PostgresCustomerStore{
		db:     tx,
		logger: s.logger,
	}
}
