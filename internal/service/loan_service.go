package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/bunshock/hipbank/internal/domain"
	"github.com/bunshock/hipbank/internal/idgen"
	"github.com/bunshock/hipbank/internal/store"
)

// LoanInput carries the fields accepted on loan creation.
type LoanInput struct {
	MobileNumber string
	LoanType     domain.LoanType
}

// LoanUpdate carries the optional fields of a partial loan update. Nil
// fields are left unchanged. OutstandingAmount is settable directly; repayment
// tracking is reported by clients rather than computed here.
type LoanUpdate struct {
	MobileNumber      *string
	LoanType          *domain.LoanType
	TotalLoan         *float64
	AmountPaid        *float64
	OutstandingAmount *float64
}

// LoanService defines the loan operations exposed over the API.
type LoanService interface {
	// CreateLoan books a new loan with a freshly generated loan number
	// and the default principal.
	CreateLoan(ctx context.Context, actor string, in LoanInput) (*domain.Loan, error)

	// FetchLoan returns the loan identified by the given loan number.
	FetchLoan(ctx context.Context, loanNumber string) (*domain.Loan, error)

	// FetchAllLoans returns every loan.
	FetchAllLoans(ctx context.Context) ([]domain.Loan, error)

	// UpdateLoan applies a partial update to the loan identified by the
	// given loan number and returns the merged result.
	UpdateLoan(ctx context.Context, actor, loanNumber string, in LoanUpdate) (*domain.Loan, error)

	// DeleteLoan removes the loan identified by the given loan number.
	DeleteLoan(ctx context.Context, loanNumber string) error
}

type loanService struct {
	loanStore   store.LoanStore
	loanNumbers *idgen.Resolver
	logger      *slog.Logger
}

// NewLoanService creates a LoanService backed by the given store.
func NewLoanService(loanStore store.LoanStore, loanNumbers *idgen.Resolver, logger *slog.Logger) (LoanService, error) {
	if loanStore == nil {
		return nil, errors.New("loan store cannot be nil")
	}
	if loanNumbers == nil {
		return nil, errors.New("loan number resolver cannot be nil")
	}
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	return &loanService{
		loanStore:   loanStore,
		loanNumbers: loanNumbers,
		logger:      logger.With(slog.String("component", "loan_service")),
	}, nil
}

func (s *loanService) CreateLoan(ctx context.Context, actor string, in LoanInput) (*domain.Loan, error) {
	number, err := s.loanNumbers.GenerateUnique(ctx, s.loanStore.ExistsByNumber)
	if err != nil {
		return nil, err
	}

	loan := domain.NewLoan(in.MobileNumber, number, in.LoanType, actor)
	if err := s.loanStore.Create(ctx, loan); err != nil {
		return nil, fmt.Errorf("failed to save loan: %w", err)
	}

	s.logger.DebugContext(ctx, "loan created",
		slog.String("loan_number", loan.LoanNumber),
		slog.String("loan_type", string(loan.LoanType)))
	return loan, nil
}

func (s *loanService) FetchLoan(ctx context.Context, loanNumber string) (*domain.Loan, error) {
	loan, err := s.loanStore.FindByNumber(ctx, loanNumber)
	if err != nil {
		if store.IsNotFoundError(err) {
			return nil, NewNotFoundError("Loan", "loanNumber", loanNumber)
		}
		return nil, fmt.Errorf("failed to find loan: %w", err)
	}
	return loan, nil
}

func (s *loanService) FetchAllLoans(ctx context.Context) ([]domain.Loan, error) {
	loans, err := s.loanStore.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list loans: %w", err)
	}
	return loans, nil
}

func (s *loanService) UpdateLoan(ctx context.Context, actor, loanNumber string, in LoanUpdate) (*domain.Loan, error) {
	loan, err := s.FetchLoan(ctx, loanNumber)
	if err != nil {
		return nil, err
	}

	if in.MobileNumber != nil {
		loan.MobileNumber = *in.MobileNumber
	}
	if in.LoanType != nil {
		loan.LoanType = *in.LoanType
	}
	if in.TotalLoan != nil {
		loan.TotalLoan = *in.TotalLoan
	}
	if in.AmountPaid != nil {
		loan.AmountPaid = *in.AmountPaid
	}
	if in.OutstandingAmount != nil {
		loan.OutstandingAmount = *in.OutstandingAmount
	}
	loan.Touch(actor)

	if err := s.loanStore.Update(ctx, loan); err != nil {
		if store.IsNotFoundError(err) {
			return nil, NewNotFoundError("Loan", "loanNumber", loanNumber)
		}
		return nil, fmt.Errorf("failed to update loan: %w", err)
	}
	return loan, nil
}

func (s *loanService) DeleteLoan(ctx context.Context, loanNumber string) error {
	loan, err := s.FetchLoan(ctx, loanNumber)
	if err != nil {
		return err
	}
	if err := s.loanStore.Delete(ctx, loan.LoanID); err != nil {
		if store.IsNotFoundError(err) {
			return NewNotFoundError("Loan", "loanNumber", loanNumber)
		}
		return fmt.Errorf("failed to delete loan: %w", err)
	}
	return nil
}
