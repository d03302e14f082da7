package domain

import "time"

// Audit carries the row-level audit columns shared by every entity.
// The actor is always supplied explicitly by the caller, never read from
// ambient state.
type Audit struct {
	CreatedAt time.Time
	CreatedBy string
	UpdatedAt time.Time
	UpdatedBy string
}

// NewAudit stamps a fresh audit block for a row created by actor.
func NewAudit(actor string) Audit {
	now := time.Now().UTC()
	return Audit{
		CreatedAt: now,
		CreatedBy: actor,
		UpdatedAt: now,
		UpdatedBy: actor,
	}
}

// Touch records a mutation by actor.
func (a *Audit) Touch(actor string) {
	a.UpdatedAt = time.Now().UTC()
	a.UpdatedBy = actor
}
