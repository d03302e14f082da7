package domain

import "strings"

// AccountType enumerates the supported account flavors.
type AccountType string

const (
	AccountTypeSavings  AccountType = "SAVINGS"
	AccountTypeChecking AccountType = "CHECKING"
)

// ParseAccountType validates a raw string against the known account types.
// Matching is case-insensitive; the canonical upper-case value is returned.
func ParseAccountType(s string) (AccountType, error) {
	switch t := AccountType(strings.ToUpper(s)); t {
	case AccountTypeSavings, AccountTypeChecking:
		return t, nil
	default:
		return "", ErrInvalidAccountType
	}
}

// CardType enumerates the supported card flavors.
type CardType string

const (
	CardTypeDebit  CardType = "DEBIT"
	CardTypeCredit CardType = "CREDIT"
)

// ParseCardType validates a raw string against the known card types.
func ParseCardType(s string) (CardType, error) {
	switch t := CardType(strings.ToUpper(s)); t {
	case CardTypeDebit, CardTypeCredit:
		return t, nil
	default:
		return "", ErrInvalidCardType
	}
}

// LoanType enumerates the supported loan flavors.
type LoanType string

const (
	LoanTypePersonal LoanType = "PERSONAL"
	LoanTypeBusiness LoanType = "BUSINESS"
	LoanTypeStudent  LoanType = "STUDENT"
	LoanTypeMortgage LoanType = "MORTGAGE"
	LoanTypeAuto     LoanType = "AUTO"
)

// ParseLoanType validates a raw string against the known loan types.
func ParseLoanType(s string) (LoanType, error) {
	switch t := LoanType(strings.ToUpper(s)); t {
	case LoanTypePersonal, LoanTypeBusiness, LoanTypeStudent,
		LoanTypeMortgage, LoanTypeAuto:
		return t, nil
	default:
		return "", ErrInvalidLoanType
	}
}
