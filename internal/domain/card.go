package domain

// NewCardLimit is the policy limit assigned to every freshly issued card.
// Limits are fixed by policy, not supplied by the caller.
const NewCardLimit = 100_000.0

// Card is a debit or credit card tied to a mobile number. Several cards may
// share a mobile number; the 10-digit CardNumber is the unique business key.
//
// Invariant: AvailableAmount == CardLimit - AmountUsed after every mutation.
type Card struct {
	CardID          int64
	MobileNumber    string
	CardNumber      string
	CardType        CardType
	CardLimit       float64
	AmountUsed      float64
	AvailableAmount float64
	Audit
}

// NewCard issues a card with the policy limit and nothing spent. The card
// number must already be resolved as unique.
func NewCard(mobileNumber, cardNumber string, cardType CardType, actor string) *Card {
	return &Card{
		MobileNumber:    mobileNumber,
		CardNumber:      cardNumber,
		CardType:        cardType,
		CardLimit:       NewCardLimit,
		AmountUsed:      0,
		AvailableAmount: NewCardLimit,
		Audit:           NewAudit(actor),
	}
}

// Spend debits amount from the card's available balance. Spending the exact
// available amount succeeds and leaves the balance at zero. On failure the
// card is left unchanged.
func (c *Card) Spend(amount float64, actor string) error {
	if amount <= 0 {
		return ErrNonPositiveAmount
	}
	if amount > c.AvailableAmount {
		return ErrInsufficientFunds
	}
	c.AvailableAmount -= amount
	c.AmountUsed += amount
	c.Touch(actor)
	return nil
}

// SetLimit changes the card limit and recomputes the available amount so the
// balance invariant keeps holding.
func (c *Card) SetLimit(limit float64, actor string) {
	c.CardLimit = limit
	c.AvailableAmount = limit - c.AmountUsed
	c.Touch(actor)
}
