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

// PostgresLoanStore implements the store.LoanStore interface
// using a PostgreSQL database as the storage backend.
type PostgresLoanStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresLoanStore creates a new PostgreSQL implementation of the
// LoanStore interface. If logger is nil, a default logger will be used.
func NewPostgresLoanStore(db store.DBTX, log *slog.Logger) *PostgresLoanStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}
	return &PostgresLoanStore{
		db:     db,
		logger: log.With(slog.String("component", "loan_store")),
	}
}

// Ensure PostgresLoanStore implements store.LoanStore interface
var _ store.LoanStore = (*PostgresLoanStore)(nil)

const loanColumns = `loan_id, mobile_number, loan_number, loan_type, total_loan,
	amount_paid, outstanding_amount, created_at, created_by, updated_at, updated_by`

func scanLoan(row interface{ Scan(dest ...any) error }) (*domain.Loan, error) {
	var loan domain.Loan
	err := row.Scan(
		&loan.LoanID,
		&loan.MobileNumber,
		&loan.LoanNumber,
		&loan.LoanType,
		&loan.TotalLoan,
		&loan.AmountPaid,
		&loan.OutstandingAmount,
		&loan.CreatedAt,
		&loan.CreatedBy,
		&loan.UpdatedAt,
		&loan.UpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &loan, nil
}

// Create implements store.LoanStore.Create
// It saves a new loan and fills in the generated surrogate key.
func (s *PostgresLoanStore) Create(ctx context.Context, loan *domain.Loan) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		INSERT INTO loans (mobile_number, loan_number, loan_type, total_loan,
			amount_paid, outstanding_amount, created_at, created_by, updated_at, updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING loan_id
	`
	err := s.db.QueryRowContext(
		ctx,
		query,
		loan.MobileNumber,
		loan.LoanNumber,
		loan.LoanType,
		loan.TotalLoan,
		loan.AmountPaid,
		loan.OutstandingAmount,
		loan.CreatedAt,
		loan.CreatedBy,
		loan.UpdatedAt,
		loan.UpdatedBy,
	).Scan(&loan.LoanID)

	if err != nil {
		if isUniqueViolation(err) {
			log.Warn("duplicate loan number during loan creation",
				slog.String("loan_number", loan.LoanNumber))
			return fmt.Errorf("%w: loan number %s", store.ErrDuplicate, loan.LoanNumber)
		}
		log.Error("failed to create loan",
			slog.String("error", err.Error()),
			slog.String("loan_number", loan.LoanNumber))
		return err
	}

	log.Info("loan created successfully",
		slog.Int64("loan_id", loan.LoanID),
		slog.String("loan_number", loan.LoanNumber))
	return nil
}

// ExistsByNumber implements store.LoanStore.ExistsByNumber
func (s *PostgresLoanStore) ExistsByNumber(ctx context.Context, loanNumber string) (bool, error) {
	var exists bool
	err := s.db.QueryRowContext(
		ctx,
		`SELECT EXISTS (SELECT 1 FROM loans WHERE loan_number = $1)`,
		loanNumber,
	).Scan(&exists)
	if err != nil {
		s.logger.Error("failed to check loan number existence",
			slog.String("error", err.Error()))
		return false, err
	}
	return exists, nil
}

// FindByNumber implements store.LoanStore.FindByNumber
// Returns store.ErrLoanNotFound if no loan has the number.
func (s *PostgresLoanStore) FindByNumber(
	ctx context.Context,
	loanNumber string,
) (*domain.Loan, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT ` + loanColumns + ` FROM loans WHERE loan_number = $1`

	loan, err := scanLoan(s.db.QueryRowContext(ctx, query, loanNumber))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("loan not found", slog.String("loan_number", loanNumber))
			return nil, store.ErrLoanNotFound
		}
		log.Error("failed to find loan by number",
			slog.String("error", err.Error()),
			slog.String("loan_number", loanNumber))
		return nil, err
	}
	return loan, nil
}

// FindAll implements store.LoanStore.FindAll
// Returns an empty slice when there are no loans.
func (s *PostgresLoanStore) FindAll(ctx context.Context) ([]domain.Loan, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT ` + loanColumns + ` FROM loans ORDER BY created_at`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		log.Error("failed to query loans", slog.String("error", err.Error()))
		return nil, err
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	loans := []domain.Loan{}
	for rows.Next() {
		loan, err := scanLoan(rows)
		if err != nil {
			log.Error("failed to scan loan row", slog.String("error", err.Error()))
			return nil, err
		}
		loans = append(loans, *loan)
	}
	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows", slog.String("error", err.Error()))
		return nil, err
	}

	return loans, nil
}

// Update implements store.LoanStore.Update
// Returns store.ErrLoanNotFound if the loan does not exist.
func (s *PostgresLoanStore) Update(ctx context.Context, loan *domain.Loan) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		UPDATE loans
		SET mobile_number = $1, loan_type = $2, total_loan = $3, amount_paid = $4,
			outstanding_amount = $5, updated_at = $6, updated_by = $7
		WHERE loan_id = $8
	`

	result, err := s.db.ExecContext(
		ctx,
		query,
		loan.MobileNumber,
		loan.LoanType,
		loan.TotalLoan,
		loan.AmountPaid,
		loan.OutstandingAmount,
		loan.UpdatedAt,
		loan.UpdatedBy,
		loan.LoanID,
	)
	if err != nil {
		log.Error("failed to update loan",
			slog.String("error", err.Error()),
			slog.Int64("loan_id", loan.LoanID))
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Error("failed to get rows affected",
			slog.String("error", err.Error()),
			slog.Int64("loan_id", loan.LoanID))
		return err
	}
	if rowsAffected == 0 {
		log.Debug("loan not found for update", slog.Int64("loan_id", loan.LoanID))
		return store.ErrLoanNotFound
	}

	log.Info("loan updated successfully",
		slog.Int64("loan_id", loan.LoanID),
		slog.String("loan_number", loan.LoanNumber))
	return nil
}

// Delete implements store.LoanStore.Delete
// Returns store.ErrLoanNotFound if the loan does not exist.
func (s *PostgresLoanStore) Delete(ctx context.Context, loanID int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM loans WHERE loan_id = $1`, loanID)
	if err != nil {
		log.Error("failed to delete loan",
			slog.String("error", err.Error()),
			slog.Int64("loan_id", loanID))
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Error("failed to get rows affected",
			slog.String("error", err.Error()),
			slog.Int64("loan_id", loanID))
		return err
	}
	if rowsAffected == 0 {
		log.Debug("loan not found for delete", slog.Int64("loan_id", loanID))
		return store.ErrLoanNotFound
	}

	log.Info("loan deleted successfully", slog.Int64("loan_id", loanID))
	return nil
}
