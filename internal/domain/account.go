package domain

// Account policy defaults. New accounts are opened as savings accounts at
// the single demo branch; the caller does not choose either.
const (
	DefaultBranchAddress = "1234 Main Street, Anytown, USA"
	DefaultAccountType   = AccountTypeSavings
)

// Account is the banking account owned by exactly one Customer. The
// 10-digit AccountNumber is the primary key and is immutable once created.
type Account struct {
	AccountNumber string
	CustomerID    int64
	AccountType   AccountType
	BranchAddress string
	Audit
}

// NewAccount creates an Account for the given customer with the policy
// defaults applied. The account number must already be resolved as unique.
func NewAccount(accountNumber string, customerID int64, actor string) *Account {
	return &Account{
		AccountNumber: accountNumber,
		CustomerID:    customerID,
		AccountType:   DefaultAccountType,
		BranchAddress: DefaultBranchAddress,
		Audit:         NewAudit(actor),
	}
}
