package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/bunshock/hipbank/internal/domain"
	"github.com/bunshock/hipbank/internal/idgen"
	"github.com/bunshock/hipbank/internal/store"
)

// txRunner executes fn inside a database transaction. It exists as an
// indirection so tests can run services without a live *sql.DB.
type txRunner func(ctx context.Context, db *sql.DB, fn store.TxFn) error

// CustomerInput carries the customer fields accepted on account creation.
type CustomerInput struct {
	Name         string
	Email        string
	MobileNumber string
}

// AccountUpdate carries the optional account fields of a partial update.
// Nil fields are left unchanged.
type AccountUpdate struct {
	AccountType   *domain.AccountType
	BranchAddress *string
}

// CustomerAccountUpdate carries the optional customer and account fields of
// a partial update. Nil fields are left unchanged.
type CustomerAccountUpdate struct {
	Name         *string
	Email        *string
	MobileNumber *string
	Account      *AccountUpdate
}

// CustomerAccountDetails pairs a customer with their account for read
// responses.
type CustomerAccountDetails struct {
	Customer domain.Customer
	Account  domain.Account
}

// AccountService defines the account operations exposed over the API.
type AccountService interface {
	// CreateAccount registers a new customer and opens a savings account
	// with a freshly generated account number. It fails with
	// *AlreadyExistsError when the mobile number is already registered.
	CreateAccount(ctx context.Context, actor string, in CustomerInput) (*CustomerAccountDetails, error)

	// FetchAccountDetails returns the customer and account identified by
	// the given mobile number.
	FetchAccountDetails(ctx context.Context, mobileNumber string) (*CustomerAccountDetails, error)

	// FetchAllAccountDetails returns every account paired with its
	// customer.
	FetchAllAccountDetails(ctx context.Context) ([]CustomerAccountDetails, error)

	// UpdateAccount applies a partial update to the customer and account
	// identified by the given mobile number and returns the merged result.
	UpdateAccount(ctx context.Context, actor, mobileNumber string, in CustomerAccountUpdate) (*CustomerAccountDetails, error)

	// DeleteAccount removes the account and the owning customer identified
	// by the given mobile number.
	DeleteAccount(ctx context.Context, mobileNumber string) error
}

type accountService struct {
	db             *sql.DB
	customerStore  store.CustomerStore
	accountStore   store.AccountStore
	accountNumbers *idgen.Resolver
	logger         *slog.Logger
	runTx          txRunner
}

// NewAccountService creates an AccountService backed by the given stores.
func NewAccountService(
	db *sql.DB,
	customerStore store.CustomerStore,
	accountStore store.AccountStore,
	accountNumbers *idgen.Resolver,
	logger *slog.Logger,
) (AccountService, error) {
	if customerStore == nil {
		return nil, errors.New("customer store cannot be nil")
	}
	if accountStore == nil {
		return nil, errors.New("account store cannot be nil")
	}
	if accountNumbers == nil {
		return nil, errors.New("account number resolver cannot be nil")
	}
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	return &accountService{
		db:             db,
		customerStore:  customerStore,
		accountStore:   accountStore,
		accountNumbers: accountNumbers,
		logger:         logger.With(slog.String("component", "account_service")),
		runTx:          store.RunInTransaction,
	}, nil
}

func (s *accountService) CreateAccount(ctx context.Context, actor string, in CustomerInput) (*CustomerAccountDetails, error) {
	log := s.logger.With(slog.String("mobile_number", in.MobileNumber))

	var details *CustomerAccountDetails
	err := s.runTx(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		customers := s.customerStore.WithTx(tx)
		accounts := s.accountStore.WithTx(tx)

		_, err := customers.FindByMobileNumber(ctx, in.MobileNumber)
		if err == nil {
			return &AlreadyExistsError{
				Message: fmt.Sprintf("Customer with mobile number '%s' already exists", in.MobileNumber),
			}
		}
		if !store.IsNotFoundError(err) {
			return fmt.Errorf("failed to check existing customer: %w", err)
		}

		customer, err := domain.NewCustomer(in.Name, in.Email, in.MobileNumber, actor)
		if err != nil {
			return err
		}
		if err := customers.Create(ctx, customer); err != nil {
			if store.IsDuplicateError(err) {
				return &AlreadyExistsError{
					Message: fmt.Sprintf("Customer with mobile number '%s' already exists", in.MobileNumber),
				}
			}
			return fmt.Errorf("failed to save customer: %w", err)
		}

		number, err := s.accountNumbers.GenerateUnique(ctx, accounts.ExistsByNumber)
		if err != nil {
			return err
		}
		account := domain.NewAccount(number, customer.CustomerID, actor)
		if err := accounts.Create(ctx, account); err != nil {
			return fmt.Errorf("failed to save account: %w", err)
		}

		details = &CustomerAccountDetails{Customer: *customer, Account: *account}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.DebugContext(ctx, "account created",
		slog.String("account_number", details.Account.AccountNumber))
	return details, nil
}

func (s *accountService) FetchAccountDetails(ctx context.Context, mobileNumber string) (*CustomerAccountDetails, error) {
	customer, err := s.customerStore.FindByMobileNumber(ctx, mobileNumber)
	if err != nil {
		if store.IsNotFoundError(err) {
			return nil, NewNotFoundError("Customer", "mobileNumber", mobileNumber)
		}
		return nil, fmt.Errorf("failed to find customer: %w", err)
	}

	account, err := s.accountStore.FindByCustomerID(ctx, customer.CustomerID)
	if err != nil {
		if store.IsNotFoundError(err) {
			return nil, NewNotFoundError("Account", "customerId", strconv.FormatInt(customer.CustomerID, 10))
		}
		return nil, fmt.Errorf("failed to find account: %w", err)
	}

	return &CustomerAccountDetails{Customer: *customer, Account: *account}, nil
}

func (s *accountService) FetchAllAccountDetails(ctx context.Context) ([]CustomerAccountDetails, error) {
	accounts, err := s.accountStore.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}

	details := make([]CustomerAccountDetails, 0, len(accounts))
	for _, account := range accounts {
		customer, err := s.customerStore.GetByID(ctx, account.CustomerID)
		if err != nil {
			if store.IsNotFoundError(err) {
				return nil, NewNotFoundError("Customer", "customerId", strconv.FormatInt(account.CustomerID, 10))
			}
			return nil, fmt.Errorf("failed to find customer: %w", err)
		}
		details = append(details, CustomerAccountDetails{Customer: *customer, Account: account})
	}
	return details, nil
}

func (s *accountService) UpdateAccount(ctx context.Context, actor, mobileNumber string, in CustomerAccountUpdate) (*CustomerAccountDetails, error) {
	var details *CustomerAccountDetails
	err := s.runTx(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		customers := s.customerStore.WithTx(tx)
		accounts := s.accountStore.WithTx(tx)

		customer, err := customers.FindByMobileNumber(ctx, mobileNumber)
		if err != nil {
			if store.IsNotFoundError(err) {
				return NewNotFoundError("Customer", "mobileNumber", mobileNumber)
			}
			return fmt.Errorf("failed to find customer: %w", err)
		}
		account, err := accounts.FindByCustomerID(ctx, customer.CustomerID)
		if err != nil {
			if store.IsNotFoundError(err) {
				return NewNotFoundError("Account", "customerId", strconv.FormatInt(customer.CustomerID, 10))
			}
			return fmt.Errorf("failed to find account: %w", err)
		}

		customerChanged := false
		if in.Name != nil {
			customer.Name = *in.Name
			customerChanged = true
		}
		if in.Email != nil {
			customer.Email = *in.Email
			customerChanged = true
		}
		if in.MobileNumber != nil {
			customer.MobileNumber = *in.MobileNumber
			customerChanged = true
		}
		if customerChanged {
			if err := customer.Validate(); err != nil {
				return err
			}
			customer.Touch(actor)
			if err := customers.Update(ctx, customer); err != nil {
				if store.IsDuplicateError(err) {
					return &AlreadyExistsError{
						Message: fmt.Sprintf("Customer with mobile number '%s' already exists", *in.MobileNumber),
					}
				}
				return fmt.Errorf("failed to update customer: %w", err)
			}
		}

		if in.Account != nil {
			if in.Account.AccountType != nil {
				account.AccountType = *in.Account.AccountType
			}
			if in.Account.BranchAddress != nil {
				account.BranchAddress = *in.Account.BranchAddress
			}
			account.Touch(actor)
			if err := accounts.Update(ctx, account); err != nil {
				return fmt.Errorf("failed to update account: %w", err)
			}
		}

		details = &CustomerAccountDetails{Customer: *customer, Account: *account}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return details, nil
}

func (s *accountService) DeleteAccount(ctx context.Context, mobileNumber string) error {
	return s.runTx(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		customers := s.customerStore.WithTx(tx)
		accounts := s.accountStore.WithTx(tx)

		customer, err := customers.FindByMobileNumber(ctx, mobileNumber)
		if err != nil {
			if store.IsNotFoundError(err) {
				return NewNotFoundError("Customer", "mobileNumber", mobileNumber)
			}
			return fmt.Errorf("failed to find customer: %w", err)
		}
		if err := accounts.DeleteByCustomerID(ctx, customer.CustomerID); err != nil {
			if store.IsNotFoundError(err) {
				return NewNotFoundError("Account", "customerId", strconv.FormatInt(customer.CustomerID, 10))
			}
			return fmt.Errorf("failed to delete account: %w", err)
		}
		if err := customers.Delete(ctx, customer.CustomerID); err != nil {
			return fmt.Errorf("failed to delete customer: %w", err)
		}
		return nil
	})
}
