package domain

// Customer is the owning party of an Account. Customers are only ever
// created as part of the account-creation workflow and removed as part of
// the cascading account deletion; they never exist standalone.
type Customer struct {
	CustomerID   int64
	Name         string
	Email        string
	MobileNumber string
	Audit
}

// NewCustomer creates a Customer pending persistence. The surrogate
// CustomerID is assigned by the store on insert.
func NewCustomer(name, email, mobileNumber, actor string) (*Customer, error) {
	c := &Customer{
		Name:         name,
		Email:        email,
		MobileNumber: mobileNumber,
		Audit:        NewAudit(actor),
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate checks the Customer invariants that do not depend on the store.
func (c *Customer) Validate() error {
	if c.Name == "" {
		return NewValidationError("name", "cannot be empty")
	}
	if c.Email == "" {
		return NewValidationError("email", "cannot be empty")
	}
	if c.MobileNumber == "" {
		return NewValidationError("mobileNumber", "cannot be empty")
	}
	return nil
}
