package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Wallet holds a user's cash balance. Invariant: Cash >= 0.
type Wallet struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Cash      decimal.Decimal
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CanDebit reports whether amount can be taken without going negative.
func (w *Wallet) CanDebit(amount decimal.Decimal) bool {
	return w.Cash.GreaterThanOrEqual(amount)
}
