package domain

// NewLoanPrincipal is the policy principal granted to every new loan.
const NewLoanPrincipal = 20_000.0

// Loan is a loan tied to a mobile number. The 10-digit LoanNumber is the
// unique business key.
//
// OutstandingAmount is caller-settable on update rather than derived from
// TotalLoan - AmountPaid; repayment tracking is reported, not computed.
type Loan struct {
	LoanID            int64
	MobileNumber      string
	LoanNumber        string
	LoanType          LoanType
	TotalLoan         float64
	AmountPaid        float64
	OutstandingAmount float64
	Audit
}

// NewLoan grants a loan with the policy principal, nothing paid, and the
// full principal outstanding. The loan number must already be resolved as
// unique.
func NewLoan(mobileNumber, loanNumber string, loanType LoanType, actor string) *Loan {
	return &Loan{
		MobileNumber:      mobileNumber,
		LoanNumber:        loanNumber,
		LoanType:          loanType,
		TotalLoan:         NewLoanPrincipal,
		AmountPaid:        0,
		OutstandingAmount: NewLoanPrincipal,
		Audit:             NewAudit(actor),
	}
}
