package repository

import (
	"context"
	"time"

	"shop/internal/domain/entity"

	"github.com/google/uuid"
)

// OrderRepository defines order persistence.
type OrderRepository interface {
	// CreateOrders inserts a batch of orders.
	CreateOrders(ctx context.Context, orders []*entity.Order) error

	// FindOrdersByUser lists the user's orders in insertion order.
	FindOrdersByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error)

	// FindOrdersByUserAndProduct lists every order of the user for one product.
	FindOrdersByUserAndProduct(ctx context.Context, userID, productID uuid.UUID) ([]*entity.Order, error)

	// CompleteOrders moves all processing orders of the pair to completed and
	// returns how many rows changed.
	CompleteOrders(ctx context.Context, userID, productID uuid.UUID, now time.Time) (int64, error)
}
