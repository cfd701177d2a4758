package usecase

import (
	"context"

	"shop/internal/domain/entity"

	"github.com/google/uuid"
)

// CartUsecase manages the per-user cart.
type CartUsecase interface {
	AddItem(ctx context.Context, userID, productID uuid.UUID, quantity int) (*entity.CartItem, error)
	UpdateQuantity(ctx context.Context, userID, productID uuid.UUID, quantity int) error
	RemoveItem(ctx context.Context, userID, productID uuid.UUID) error

	// ListItems returns the cart enriched with catalog data, in insertion order.
	ListItems(ctx context.Context, userID uuid.UUID) ([]entity.CartLine, error)
}
