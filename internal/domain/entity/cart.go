package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CartItem is one product line in a user's cart. A (UserID, ProductID) pair is unique.
type CartItem struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	ProductID uuid.UUID
	Quantity  int // always >= 1
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CartLine is a cart item enriched with catalog data.
type CartLine struct {
	Product   *Product
	Quantity  int
	LineTotal decimal.Decimal
}

// NewCartLine prices a cart line against the current catalog price.
func NewCartLine(product *Product, quantity int) CartLine {
	return CartLine{
		Product:   product,
		Quantity:  quantity,
		LineTotal: product.Price.Mul(decimal.NewFromInt(int64(quantity))),
	}
}
