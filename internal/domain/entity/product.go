package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product is the catalog read model the ordering core consumes.
// The core never writes products.
type Product struct {
	ID          uuid.UUID
	Name        string
	Description string
	Price       decimal.Decimal
	Quantity    int // units in stock as reported by the catalog
	CategoryID  uuid.UUID
	CreatedAt   time.Time
}
