package service

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bunshock/hipbank/internal/domain"
	"github.com/bunshock/hipbank/internal/idgen"
	"github.com/bunshock/hipbank/internal/store"
)

func newTestAccountService(t *testing.T, customers *mockCustomerStore, accounts *mockAccountStore) AccountService {
	t.Helper()
	resolver := idgen.NewResolver(idgen.NewNumberGenerator(), "account number")
	svc, err := NewAccountService(nil, customers, accounts, resolver, slog.Default())
	require.NoError(t, err)
	svc.(*accountService).runTx = stubTxRunner
	return svc
}

func TestNewAccountService(t *testing.T) {
	resolver := idgen.NewResolver(idgen.NewNumberGenerator(), "account number")

	tests := []struct {
		name          string
		customerStore store.CustomerStore
		accountStore  store.AccountStore
		resolver      *idgen.Resolver
		logger        *slog.Logger
		errorContains string
	}{
		{
			name:          "nil customer store",
			accountStore:  &mockAccountStore{},
			resolver:      resolver,
			logger:        slog.Default(),
			errorContains: "customer store",
		},
		{
			name:          "nil account store",
			customerStore: &mockCustomerStore{},
			resolver:      resolver,
			logger:        slog.Default(),
			errorContains: "account store",
		},
		{
			name:          "nil resolver",
			customerStore: &mockCustomerStore{},
			accountStore:  &mockAccountStore{},
			logger:        slog.Default(),
			errorContains: "resolver",
		},
		{
			name:          "nil logger",
			customerStore: &mockCustomerStore{},
			accountStore:  &mockAccountStore{},
			resolver:      resolver,
			errorContains: "logger",
		},
		{
			name:          "all dependencies provided",
			customerStore: &mockCustomerStore{},
			accountStore:  &mockAccountStore{},
			resolver:      resolver,
			logger:        slog.Default(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, err := NewAccountService(nil, tt.customerStore, tt.accountStore, tt.resolver, tt.logger)
			if tt.errorContains != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorContains)
				assert.Nil(t, svc)
			} else {
				require.NoError(t, err)
				assert.NotNil(t, svc)
			}
		})
	}
}

func TestAccountService_CreateAccount(t *testing.T) {
	ctx := context.Background()
	input := CustomerInput{
		Name:         "Miray Kas",
		Email:        "miray@example.com",
		MobileNumber: "4354437687",
	}

	t.Run("creates customer and account with defaults", func(t *testing.T) {
		customers := &mockCustomerStore{
			findByMobileError: store.ErrCustomerNotFound,
			nextCustomerID:    7,
		}
		accounts := &mockAccountStore{}
		svc := newTestAccountService(t, customers, accounts)

		details, err := svc.CreateAccount(ctx, "tester", input)
		require.NoError(t, err)
		assert.True(t, customers.createCalled)
		assert.True(t, accounts.createCalled)

		assert.Equal(t, int64(7), details.Customer.CustomerID)
		assert.Equal(t, input.Name, details.Customer.Name)
		assert.Equal(t, int64(7), details.Account.CustomerID)
		assert.Len(t, details.Account.AccountNumber, 10)
		assert.Equal(t, domain.DefaultAccountType, details.Account.AccountType)
		assert.Equal(t, domain.DefaultBranchAddress, details.Account.BranchAddress)
		assert.Equal(t, "tester", details.Account.CreatedBy)
	})

	t.Run("rejects duplicate mobile number without saving", func(t *testing.T) {
		existing := &domain.Customer{CustomerID: 1, MobileNumber: input.MobileNumber}
		customers := &mockCustomerStore{findByMobileCustomer: existing}
		accounts := &mockAccountStore{}
		svc := newTestAccountService(t, customers, accounts)

		details, err := svc.CreateAccount(ctx, "tester", input)
		require.Error(t, err)
		assert.Nil(t, details)

		var dup *AlreadyExistsError
		require.ErrorAs(t, err, &dup)
		assert.Equal(t, "Customer with mobile number '4354437687' already exists", dup.Error())
		assert.False(t, customers.createCalled)
		assert.False(t, accounts.createCalled)
	})

	t.Run("maps store duplicate on concurrent insert", func(t *testing.T) {
		customers := &mockCustomerStore{
			findByMobileError: store.ErrCustomerNotFound,
			createError:       store.ErrMobileNumberExists,
		}
		accounts := &mockAccountStore{}
		svc := newTestAccountService(t, customers, accounts)

		_, err := svc.CreateAccount(ctx, "tester", input)
		var dup *AlreadyExistsError
		require.ErrorAs(t, err, &dup)
		assert.False(t, accounts.createCalled)
	})

	t.Run("surfaces exhaustion when every number collides", func(t *testing.T) {
		customers := &mockCustomerStore{
			findByMobileError: store.ErrCustomerNotFound,
			nextCustomerID:    1,
		}
		accounts := &mockAccountStore{existsAlways: true}
		svc := newTestAccountService(t, customers, accounts)

		_, err := svc.CreateAccount(ctx, "tester", input)
		require.Error(t, err)
		assert.ErrorIs(t, err, idgen.ErrExhausted)
		assert.Contains(t, err.Error(), "account number")
		assert.False(t, accounts.createCalled)
	})

	t.Run("rejects invalid customer fields", func(t *testing.T) {
		customers := &mockCustomerStore{findByMobileError: store.ErrCustomerNotFound}
		accounts := &mockAccountStore{}
		svc := newTestAccountService(t, customers, accounts)

		_, err := svc.CreateAccount(ctx, "tester", CustomerInput{Email: "a@b.c", MobileNumber: "4354437687"})
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrValidation)
		assert.False(t, customers.createCalled)
	})
}

func TestAccountService_FetchAccountDetails(t *testing.T) {
	ctx := context.Background()
	customer := &domain.Customer{CustomerID: 3, Name: "Miray Kas", MobileNumber: "4354437687"}
	account := &domain.Account{AccountNumber: "1234567890", CustomerID: 3}

	t.Run("returns customer with account", func(t *testing.T) {
		svc := newTestAccountService(t,
			&mockCustomerStore{findByMobileCustomer: customer},
			&mockAccountStore{findByCustomerAcct: account})

		details, err := svc.FetchAccountDetails(ctx, "4354437687")
		require.NoError(t, err)
		assert.Equal(t, *customer, details.Customer)
		assert.Equal(t, *account, details.Account)
	})

	t.Run("unknown mobile number", func(t *testing.T) {
		svc := newTestAccountService(t,
			&mockCustomerStore{findByMobileError: store.ErrCustomerNotFound},
			&mockAccountStore{})

		_, err := svc.FetchAccountDetails(ctx, "9999999999")
		var nf *NotFoundError
		require.ErrorAs(t, err, &nf)
		assert.Equal(t, "Customer not found with mobileNumber : '9999999999'", nf.Error())
	})

	t.Run("customer without account", func(t *testing.T) {
		svc := newTestAccountService(t,
			&mockCustomerStore{findByMobileCustomer: customer},
			&mockAccountStore{findByCustomerErr: store.ErrAccountNotFound})

		_, err := svc.FetchAccountDetails(ctx, "4354437687")
		var nf *NotFoundError
		require.ErrorAs(t, err, &nf)
		assert.Equal(t, "Account not found with customerId : '3'", nf.Error())
	})
}

func TestAccountService_FetchAllAccountDetails(t *testing.T) {
	ctx := context.Background()

	t.Run("pairs each account with its customer", func(t *testing.T) {
		customer := &domain.Customer{CustomerID: 3, Name: "Miray Kas"}
		svc := newTestAccountService(t,
			&mockCustomerStore{getByIDCustomer: customer},
			&mockAccountStore{findAllAccounts: []domain.Account{
				{AccountNumber: "1234567890", CustomerID: 3},
			}})

		details, err := svc.FetchAllAccountDetails(ctx)
		require.NoError(t, err)
		require.Len(t, details, 1)
		assert.Equal(t, "Miray Kas", details[0].Customer.Name)
		assert.Equal(t, "1234567890", details[0].Account.AccountNumber)
	})

	t.Run("empty store yields empty slice", func(t *testing.T) {
		svc := newTestAccountService(t, &mockCustomerStore{}, &mockAccountStore{})

		details, err := svc.FetchAllAccountDetails(ctx)
		require.NoError(t, err)
		assert.Empty(t, details)
	})
}

func TestAccountService_UpdateAccount(t *testing.T) {
	ctx := context.Background()

	newCustomer := func() *domain.Customer {
		return &domain.Customer{
			CustomerID:   3,
			Name:         "Miray Kas",
			Email:        "miray@example.com",
			MobileNumber: "4354437687",
		}
	}
	newAccount := func() *domain.Account {
		return &domain.Account{
			AccountNumber: "1234567890",
			CustomerID:    3,
			AccountType:   domain.AccountTypeSavings,
			BranchAddress: domain.DefaultBranchAddress,
		}
	}

	t.Run("merges only provided fields", func(t *testing.T) {
		customers := &mockCustomerStore{findByMobileCustomer: newCustomer()}
		accounts := &mockAccountStore{findByCustomerAcct: newAccount()}
		svc := newTestAccountService(t, customers, accounts)

		email := "new@example.com"
		checking := domain.AccountTypeChecking
		details, err := svc.UpdateAccount(ctx, "tester", "4354437687", CustomerAccountUpdate{
			Email:   &email,
			Account: &AccountUpdate{AccountType: &checking},
		})
		require.NoError(t, err)

		assert.Equal(t, "new@example.com", details.Customer.Email)
		assert.Equal(t, "Miray Kas", details.Customer.Name)
		assert.Equal(t, domain.AccountTypeChecking, details.Account.AccountType)
		assert.Equal(t, domain.DefaultBranchAddress, details.Account.BranchAddress)
		assert.True(t, customers.updateCalled)
		assert.True(t, accounts.updateCalled)
	})

	t.Run("skips customer write when only account fields change", func(t *testing.T) {
		customers := &mockCustomerStore{findByMobileCustomer: newCustomer()}
		accounts := &mockAccountStore{findByCustomerAcct: newAccount()}
		svc := newTestAccountService(t, customers, accounts)

		branch := "77 Harbor Road, Anytown, USA"
		_, err := svc.UpdateAccount(ctx, "tester", "4354437687", CustomerAccountUpdate{
			Account: &AccountUpdate{BranchAddress: &branch},
		})
		require.NoError(t, err)
		assert.False(t, customers.updateCalled)
		assert.True(t, accounts.updateCalled)
	})

	t.Run("unknown mobile number", func(t *testing.T) {
		svc := newTestAccountService(t,
			&mockCustomerStore{findByMobileError: store.ErrCustomerNotFound},
			&mockAccountStore{})

		_, err := svc.UpdateAccount(ctx, "tester", "9999999999", CustomerAccountUpdate{})
		var nf *NotFoundError
		require.ErrorAs(t, err, &nf)
		assert.Equal(t, "Customer", nf.Entity)
	})

	t.Run("new mobile number already taken", func(t *testing.T) {
		customers := &mockCustomerStore{
			findByMobileCustomer: newCustomer(),
			updateError:          store.ErrMobileNumberExists,
		}
		accounts := &mockAccountStore{findByCustomerAcct: newAccount()}
		svc := newTestAccountService(t, customers, accounts)

		taken := "5550001111"
		_, err := svc.UpdateAccount(ctx, "tester", "4354437687", CustomerAccountUpdate{MobileNumber: &taken})
		var dup *AlreadyExistsError
		require.ErrorAs(t, err, &dup)
	})
}

func TestAccountService_DeleteAccount(t *testing.T) {
	ctx := context.Background()
	customer := &domain.Customer{CustomerID: 3, MobileNumber: "4354437687"}

	t.Run("removes account and customer", func(t *testing.T) {
		customers := &mockCustomerStore{findByMobileCustomer: customer}
		accounts := &mockAccountStore{}
		svc := newTestAccountService(t, customers, accounts)

		err := svc.DeleteAccount(ctx, "4354437687")
		require.NoError(t, err)
		assert.True(t, accounts.deleteCalled)
		assert.True(t, customers.deleteCalled)
	})

	t.Run("unknown mobile number", func(t *testing.T) {
		customers := &mockCustomerStore{findByMobileError: store.ErrCustomerNotFound}
		svc := newTestAccountService(t, customers, &mockAccountStore{})

		err := svc.DeleteAccount(ctx, "9999999999")
		var nf *NotFoundError
		require.ErrorAs(t, err, &nf)
		assert.False(t, customers.deleteCalled)
	})

	t.Run("customer without account", func(t *testing.T) {
		customers := &mockCustomerStore{findByMobileCustomer: customer}
		accounts := &mockAccountStore{deleteError: store.ErrAccountNotFound}
		svc := newTestAccountService(t, customers, accounts)

		err := svc.DeleteAccount(ctx, "4354437687")
		var nf *NotFoundError
		require.ErrorAs(t, err, &nf)
		assert.Equal(t, "Account", nf.Entity)
		assert.False(t, customers.deleteCalled)
	})
}
