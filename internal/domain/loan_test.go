package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewLoan(t *testing.T) {
	loan := NewLoan("+2211345678", "8765432109", LoanTypeStudent, "tester")

	assert.Equal(t, "+2211345678", loan.MobileNumber)
	assert.Equal(t, "8765432109", loan.LoanNumber)
	assert.Equal(t, LoanTypeStudent, loan.LoanType)
	assert.Equal(t, NewLoanPrincipal, loan.TotalLoan)
	assert.Zero(t, loan.AmountPaid)
	assert.Equal(t, NewLoanPrincipal, loan.OutstandingAmount)
	assert.Equal(t, "tester", loan.CreatedBy)
}
