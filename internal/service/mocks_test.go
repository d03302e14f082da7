package service

import (
	"context"
	"database/sql"

	"github.com/bunshock/hipbank/internal/domain"
	"github.com/bunshock/hipbank/internal/store"
)

// stubTxRunner replaces store.RunInTransaction in tests. It invokes fn with
// a nil *sql.Tx; the mock stores ignore the handle and return themselves
// from WithTx.
func stubTxRunner(ctx context.Context, db *sql.DB, fn store.TxFn) error {
	return fn(ctx, nil)
}

type mockCustomerStore struct {
	// Method call tracking
	createCalled bool
	updateCalled bool
	deleteCalled bool

	// Return values
	createError          error
	findByMobileCustomer *domain.Customer
	findByMobileError    error
	getByIDCustomer      *domain.Customer
	getByIDError         error
	updateError          error
	deleteError          error
	nextCustomerID       int64
}

func (m *mockCustomerStore) Create(ctx context.Context, customer *domain.Customer) error {
	m.createCalled = true
	if m.createError != nil {
		return m.createError
	}
	customer.CustomerID = m.nextCustomerID
	return nil
}

func (m *mockCustomerStore) GetByID(ctx context.Context, id int64) (*domain.Customer, error) {
	if m.getByIDError != nil {
		return nil, m.getByIDError
	}
	return m.getByIDCustomer, nil
}

func (m *mockCustomerStore) FindByMobileNumber(ctx context.Context, mobileNumber string) (*domain.Customer, error) {
	if m.findByMobileError != nil {
		return nil, m.findByMobileError
	}
	return m.findByMobileCustomer, nil
}

func (m *mockCustomerStore) Update(ctx context.Context, customer *domain.Customer) error {
	m.updateCalled = true
	return m.updateError
}

func (m *mockCustomerStore) Delete(ctx context.Context, id int64) error {
	m.deleteCalled = true
	return m.deleteError
}

func (m *mockCustomerStore) WithTx(tx *sql.Tx) store.CustomerStore {
	return m
}

type mockAccountStore struct {
	createCalled bool
	updateCalled bool
	deleteCalled bool

	createError        error
	existsByNumber     map[string]bool
	existsAlways       bool
	existsError        error
	findByCustomerAcct *domain.Account
	findByCustomerErr  error
	findAllAccounts    []domain.Account
	findAllError       error
	updateError        error
	deleteError        error
}

func (m *mockAccountStore) Create(ctx context.Context, account *domain.Account) error {
	m.createCalled = true
	return m.createError
}

func (m *mockAccountStore) ExistsByNumber(ctx context.Context, accountNumber string) (bool, error) {
	if m.existsError != nil {
		return false, m.existsError
	}
	return m.existsAlways || m.existsByNumber[accountNumber], nil
}

func (m *mockAccountStore) FindByCustomerID(ctx context.Context, customerID int64) (*domain.Account, error) {
	if m.findByCustomerErr != nil {
		return nil, m.findByCustomerErr
	}
	return m.findByCustomerAcct, nil
}

func (m *mockAccountStore) FindAll(ctx context.Context) ([]domain.Account, error) {
	if m.findAllError != nil {
		return nil, m.findAllError
	}
	return m.findAllAccounts, nil
}

func (m *mockAccountStore) Update(ctx context.Context, account *domain.Account) error {
	m.updateCalled = true
	return m.updateError
}

func (m *mockAccountStore) DeleteByCustomerID(ctx context.Context, customerID int64) error {
	m.deleteCalled = true
	return m.deleteError
}

func (m *mockAccountStore) WithTx(tx *sql.Tx) store.AccountStore {
	return m
}

type mockCardStore struct {
	createCalled bool
	updateCalled bool
	deleteCalled bool

	createError    error
	existsByNumber map[string]bool
	existsAlways   bool
	existsError    error
	findByNumber   *domain.Card
	findError      error
	findAllCards   []domain.Card
	findAllError   error
	updateError    error
	deleteError    error
	updatedCard    *domain.Card
}

func (m *mockCardStore) Create(ctx context.Context, card *domain.Card) error {
	m.createCalled = true
	return m.createError
}

func (m *mockCardStore) ExistsByNumber(ctx context.Context, cardNumber string) (bool, error) {
	if m.existsError != nil {
		return false, m.existsError
	}
	return m.existsAlways || m.existsByNumber[cardNumber], nil
}

func (m *mockCardStore) FindByNumber(ctx context.Context, cardNumber string) (*domain.Card, error) {
	if m.findError != nil {
		return nil, m.findError
	}
	return m.findByNumber, nil
}

func (m *mockCardStore) FindAll(ctx context.Context) ([]domain.Card, error) {
	if m.findAllError != nil {
		return nil, m.findAllError
	}
	return m.findAllCards, nil
}

func (m *mockCardStore) Update(ctx context.Context, card *domain.Card) error {
	m.updateCalled = true
	if m.updateError != nil {
		return m.updateError
	}
	copied := *card
	m.updatedCard = &copied
	return nil
}

func (m *mockCardStore) Delete(ctx context.Context, cardID int64) error {
	m.deleteCalled = true
	return m.deleteError
}

type mockLoanStore struct {
	createCalled bool
	updateCalled bool
	deleteCalled bool

	createError    error
	existsByNumber map[string]bool
	existsAlways   bool
	existsError    error
	findByNumber   *domain.Loan
	findError      error
	findAllLoans   []domain.Loan
	findAllError   error
	updateError    error
	deleteError    error
	updatedLoan    *domain.Loan
}

func (m *mockLoanStore) Create(ctx context.Context, loan *domain.Loan) error {
	m.createCalled = true
	return m.createError
}

func (m *mockLoanStore) ExistsByNumber(ctx context.Context, loanNumber string) (bool, error) {
	if m.existsError != nil {
		return false, m.existsError
	}
	return m.existsAlways || m.existsByNumber[loanNumber], nil
}

func (m *mockLoanStore) FindByNumber(ctx context.Context, loanNumber string) (*domain.Loan, error) {
	if m.findError != nil {
		return nil, m.findError
	}
	return m.findByNumber, nil
}

func (m *mockLoanStore) FindAll(ctx context.Context) ([]domain.Loan, error) {
	if m.findAllError != nil {
		return nil, m.findAllError
	}
	return m.findAllLoans, nil
}

func (m *mockLoanStore) Update(ctx context.Context, loan *domain.Loan) error {
	m.updateCalled = true
	if m.updateError != nil {
		return m.updateError
	}
	copied := *loan
	m.updatedLoan = &copied
	return nil
}

func (m *mockLoanStore) Delete(ctx context.Context, loanID int64) error {
	m.deleteCalled = true
	return m.deleteError
}
