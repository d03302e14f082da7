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

// PostgresAccountStore implements the store.AccountStore interface
// using a PostgreSQL database as the storage backend.
type PostgresAccountStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresAccountStore creates a new PostgreSQL implementation of the
// AccountStore interface. If logger is nil, a default logger will be used.
func NewPostgresAccountStore(db store.DBTX, log *slog.Logger) *PostgresAccountStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}
	return &PostgresAccountStore{
		db:     db,
		logger: log.With(slog.String("component", "account_store")),
	}
}

// Ensure PostgresAccountStore implements store.AccountStore interface
var _ store.AccountStore = (*PostgresAccountStore)(nil)

const accountColumns = `account_number, customer_id, account_type, branch_address,
	created_at, created_by, updated_at, updated_by`

func scanAccount(row interface{ Scan(dest ...any) error }) (*domain.Account, error) {
	var account domain.Account
	err := row.Scan(
		&account.AccountNumber,
		&account.CustomerID,
		&account.AccountType,
		&account.BranchAddress,
		&account.CreatedAt,
		&account.CreatedBy,
		&account.UpdatedAt,
		&account.UpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &account, nil
}

// Create implements store.AccountStore.Create
// Returns store.ErrCustomerNotFound if the owning customer row is missing.
func (s *PostgresAccountStore) Create(ctx context.Context, account *domain.Account) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		INSERT INTO accounts (account_number, customer_id, account_type, branch_address,
			created_at, created_by, updated_at, updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		account.AccountNumber,
		account.CustomerID,
		account.AccountType,
		account.BranchAddress,
		account.CreatedAt,
		account.CreatedBy,
		account.UpdatedAt,
		account.UpdatedBy,
	)

	if err != nil {
		if isForeignKeyViolation(err) {
			log.Warn("foreign key violation during account creation",
				slog.Int64("customer_id", account.CustomerID))
			return fmt.Errorf("%w: customer with ID %d",
				store.ErrCustomerNotFound, account.CustomerID)
		}
		log.Error("failed to create account",
			slog.String("error", err.Error()),
			slog.String("account_number", account.AccountNumber))
		return err
	}

	log.Info("account created successfully",
		slog.String("account_number", account.AccountNumber),
		slog.Int64("customer_id", account.CustomerID))
	return nil
}

// ExistsByNumber implements store.AccountStore.ExistsByNumber
func (s *PostgresAccountStore) ExistsByNumber(
	ctx context.Context,
	accountNumber string,
) (bool, error) {
	var exists bool
	err := s.db.QueryRowContext(
		ctx,
		`SELECT EXISTS (SELECT 1 FROM accounts WHERE account_number = $1)`,
		accountNumber,
	).Scan(&exists)
	if err != nil {
		s.logger.Error("failed to check account number existence",
			slog.String("error", err.Error()))
		return false, err
	}
	return exists, nil
}

// FindByCustomerID implements store.AccountStore.FindByCustomerID
// Returns store.ErrAccountNotFound if the customer has no account row.
func (s *PostgresAccountStore) FindByCustomerID(
	ctx context.Context,
	customerID int64,
) (*domain.Account, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT ` + accountColumns + ` FROM accounts WHERE customer_id = $1`

	account, err := scanAccount(s.db.QueryRowContext(ctx, query, customerID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("account not found for customer",
				slog.Int64("customer_id", customerID))
			return nil, store.ErrAccountNotFound
		}
		log.Error("failed to find account by customer ID",
			slog.String("error", err.Error()),
			slog.Int64("customer_id", customerID))
		return nil, err
	}
	return account, nil
}

// FindAll implements store.AccountStore.FindAll
// Returns an empty slice when there are no accounts.
func (s *PostgresAccountStore) FindAll(ctx context.Context) ([]domain.Account, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT ` + accountColumns + ` FROM accounts ORDER BY created_at`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		log.Error("failed to query accounts", slog.String("error", err.Error()))
		return nil, err
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	accounts := []domain.Account{}
	for rows.Next() {
		account, err := scanAccount(rows)
		if err != nil {
			log.Error("failed to scan account row", slog.String("error", err.Error()))
			return nil, err
		}
		accounts = append(accounts, *account)
	}
	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows", slog.String("error", err.Error()))
		return nil, err
	}

	return accounts, nil
}

// Update implements store.AccountStore.Update
// Returns store.ErrAccountNotFound if the account does not exist.
func (s *PostgresAccountStore) Update(ctx context.Context, account *domain.Account) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		UPDATE accounts
		SET account_type = $1, branch_address = $2, updated_at = $3, updated_by = $4
		WHERE account_number = $5
	`

	result, err := s.db.ExecContext(
		ctx,
		query,
		account.AccountType,
		account.BranchAddress,
		account.UpdatedAt,
		account.UpdatedBy,
		account.AccountNumber,
	)
	if err != nil {
		log.Error("failed to update account",
			slog.String("error", err.Error()),
			slog.String("account_number", account.AccountNumber))
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Error("failed to get rows affected",
			slog.String("error", err.Error()),
			slog.String("account_number", account.AccountNumber))
		return err
	}
	if rowsAffected == 0 {
		log.Debug("account not found for update",
			slog.String("account_number", account.AccountNumber))
		return store.ErrAccountNotFound
	}

	log.Info("account updated successfully",
		slog.String("account_number", account.AccountNumber))
	return nil
}

// DeleteByCustomerID implements store.AccountStore.DeleteByCustomerID
// Returns store.ErrAccountNotFound if no row was deleted.
func (s *PostgresAccountStore) DeleteByCustomerID(ctx context.Context, customerID int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(
		ctx,
		`DELETE FROM accounts WHERE customer_id = $1`,
		customerID,
	)
	if err != nil {
		log.Error("failed to delete account",
			slog.String("error", err.Error()),
			slog.Int64("customer_id", customerID))
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Error("failed to get rows affected",
			slog.String("error", err.Error()),
			slog.Int64("customer_id", customerID))
		return err
	}
	if rowsAffected == 0 {
		log.Debug("account not found for delete",
			slog.Int64("customer_id", customerID))
		return store.ErrAccountNotFound
	}

	log.Info("account deleted successfully", slog.Int64("customer_id", customerID))
	return nil
}

// WithTx implements store.AccountStore.WithTx
func (s *PostgresAccountStore) WithTx(tx *sql.Tx) store.AccountStore {
	return &PostgresAccountStore{
		db:     tx,
		logger: s.logger,
	}
}
