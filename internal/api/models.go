package api

import (
	"github.com/bunshock/hipbank/internal/domain"
	"github.com/bunshock/hipbank/internal/service"
)

// Request bodies. Update requests use pointer fields: nil means "leave
// unchanged", so a partial body only touches the fields it names.

// CustomerCreateRequest is the body of POST /api/accounts/create.
type CustomerCreateRequest struct {
	Name         string `json:"name"         validate:"required,min=3,max=50"`
	Email        string `json:"email"        validate:"required,email"`
	MobileNumber string `json:"mobileNumber" validate:"required,mobile"`
}

// AccountUpdateRequest is the nested account part of an account update.
type AccountUpdateRequest struct {
	AccountType   *string `json:"accountType"   validate:"omitempty,accounttype"`
	BranchAddress *string `json:"branchAddress"`
}

// CustomerAccountUpdateRequest is the body of PUT /api/accounts/update.
type CustomerAccountUpdateRequest struct {
	Name         *string               `json:"name"         validate:"omitempty,min=3,max=50"`
	Email        *string               `json:"email"        validate:"omitempty,email"`
	MobileNumber *string               `json:"mobileNumber" validate:"omitempty,mobile"`
	Account      *AccountUpdateRequest `json:"account"`
}

// CardCreateRequest is the body of POST /api/cards/create.
type CardCreateRequest struct {
	MobileNumber string `json:"mobileNumber" validate:"required,mobile"`
	CardType     string `json:"cardType"     validate:"required,cardtype"`
}

// CardUpdateRequest is the body of PUT /api/cards/update.
type CardUpdateRequest struct {
	MobileNumber *string  `json:"mobileNumber" validate:"omitempty,mobile"`
	CardType     *string  `json:"cardType"     validate:"omitempty,cardtype"`
	CardLimit    *float64 `json:"cardLimit"    validate:"omitempty,gt=0"`
}

// LoanCreateRequest is the body of POST /api/loans/create.
type LoanCreateRequest struct {
	MobileNumber string `json:"mobileNumber" validate:"required,mobile"`
	LoanType     string `json:"loanType"     validate:"required,loantype"`
}

// LoanUpdateRequest is the body of PUT /api/loans/update.
type LoanUpdateRequest struct {
	MobileNumber      *string  `json:"mobileNumber"      validate:"omitempty,mobile"`
	LoanType          *string  `json:"loanType"          validate:"omitempty,loantype"`
	TotalLoan         *float64 `json:"totalLoan"         validate:"omitempty,gt=0"`
	AmountPaid        *float64 `json:"amountPaid"        validate:"omitempty,gte=0"`
	OutstandingAmount *float64 `json:"outstandingAmount" validate:"omitempty,gte=0"`
}

// Response payloads carried in the success envelope's data field.

// AccountResponse is the account part of an account details projection.
type AccountResponse struct {
	AccountNumber string             `json:"accountNumber"`
	AccountType   domain.AccountType `json:"accountType"`
	BranchAddress string             `json:"branchAddress"`
}

// CustomerAccountDetailsResponse pairs customer and account fields.
type CustomerAccountDetailsResponse struct {
	Name         string          `json:"name"`
	Email        string          `json:"email"`
	MobileNumber string          `json:"mobileNumber"`
	Account      AccountResponse `json:"account"`
}

// CardResponse is a single card projection.
type CardResponse struct {
	MobileNumber    string          `json:"mobileNumber"`
	CardNumber      string          `json:"cardNumber"`
	CardType        domain.CardType `json:"cardType"`
	CardLimit       float64         `json:"cardLimit"`
	AmountUsed      float64         `json:"amountUsed"`
	AvailableAmount float64         `json:"availableAmount"`
}

// LoanResponse is a single loan projection.
type LoanResponse struct {
	MobileNumber      string          `json:"mobileNumber"`
	LoanNumber        string          `json:"loanNumber"`
	LoanType          domain.LoanType `json:"loanType"`
	TotalLoan         float64         `json:"totalLoan"`
	AmountPaid        float64         `json:"amountPaid"`
	OutstandingAmount float64         `json:"outstandingAmount"`
}

// ContactInfoResponse is the body of GET /api/accounts/contact-info.
type ContactInfoResponse struct {
	Message        string            `json:"message"`
	ContactDetails map[string]string `json:"contactDetails"`
	OnCallSupport  []string          `json:"onCallSupport"`
}

func newCustomerAccountDetailsResponse(d service.CustomerAccountDetails) CustomerAccountDetailsResponse {
	return CustomerAccountDetailsResponse{
		Name:         d.Customer.Name,
		Email:        d.Customer.Email,
		MobileNumber: d.Customer.MobileNumber,
		Account: AccountResponse{
			AccountNumber: d.Account.AccountNumber,
			AccountType:   d.Account.AccountType,
			BranchAddress: d.Account.BranchAddress,
		},
	}
}

func newCardResponse(card domain.Card) CardResponse {
	return CardResponse{
		MobileNumber:    card.MobileNumber,
		CardNumber:      card.CardNumber,
		CardType:        card.CardType,
		CardLimit:       card.CardLimit,
		AmountUsed:      card.AmountUsed,
		AvailableAmount: card.AvailableAmount,
	}
}

func newLoanResponse(loan domain.Loan) LoanResponse {
	return LoanResponse{
		MobileNumber:      loan.MobileNumber,
		LoanNumber:        loan.LoanNumber,
		LoanType:          loan.LoanType,
		TotalLoan:         loan.TotalLoan,
		AmountPaid:        loan.AmountPaid,
		OutstandingAmount: loan.OutstandingAmount,
	}
}

// toServiceUpdate converts the validated request to the service input,
// parsing enum literals to their domain types.
func (req CustomerAccountUpdateRequest) toServiceUpdate() (service.CustomerAccountUpdate, error) {
	update := service.CustomerAccountUpdate{
		Name:         req.Name,
		Email:        req.Email,
		MobileNumber: req.MobileNumber,
	}
	if req.Account != nil {
		accountUpdate := &service.AccountUpdate{BranchAddress: req.Account.BranchAddress}
		if req.Account.AccountType != nil {
			accountType, err := domain.ParseAccountType(*req.Account.AccountType)
			if err != nil {
				return service.CustomerAccountUpdate{}, err
			}
			accountUpdate.AccountType = &accountType
		}
		update.Account = accountUpdate
	}
	return update, nil
}

func (req CardUpdateRequest) toServiceUpdate() (service.CardUpdate, error) {
	update := service.CardUpdate{
		MobileNumber: req.MobileNumber,
		CardLimit:    req.CardLimit,
	}
	if req.CardType != nil {
		cardType, err := domain.ParseCardType(*req.CardType)
		if err != nil {
			return service.CardUpdate{}, err
		}
		update.CardType = &cardType
	}
	return update, nil
}

func (req LoanUpdateRequest) toServiceUpdate() (service.LoanUpdate, error) {
	update := service.LoanUpdate{
		MobileNumber:      req.MobileNumber,
		TotalLoan:         req.TotalLoan,
		AmountPaid:        req.AmountPaid,
		OutstandingAmount: req.OutstandingAmount,
	}
	if req.LoanType != nil {
		loanType, err := domain.ParseLoanType(*req.LoanType)
		if err != nil {
			return service.LoanUpdate{}, err
		}
		update.LoanType = &loanType
	}
	return update, nil
}
