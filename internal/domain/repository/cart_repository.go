package repository

import (
	"context"

	"shop/internal/domain/entity"
	"shop/internal/errors"

	"github.com/google/uuid"
)

var (
	// ErrCartItemNotFound is returned when the product is not in the user's cart.
	ErrCartItemNotFound = errors.New("cart item not found")
	// ErrCartItemAlreadyExists is returned when the product is already in the user's cart.
	ErrCartItemAlreadyExists = errors.New("cart item already exists")
)

// CartRepository defines cart persistence keyed by (user, product).
type CartRepository interface {
	// CreateCartItem inserts a new line. Returns ErrCartItemAlreadyExists if the pair exists.
	CreateCartItem(ctx context.Context, item *entity.CartItem) error

	// UpdateCartItemQuantity overwrites the quantity of an existing line.
	UpdateCartItemQuantity(ctx context.Context, userID, productID uuid.UUID, quantity int) error

	// DeleteCartItem removes a line. Returns ErrCartItemNotFound if absent.
	DeleteCartItem(ctx context.Context, userID, productID uuid.UUID) error

	// FindCartItemsByUser lists the user's cart in insertion order.
	FindCartItemsByUser(ctx context.Context, userID uuid.UUID) ([]*entity.CartItem, error)

	// DrainCart removes and returns every line of the user's cart.
	DrainCart(ctx context.Context, userID uuid.UUID) ([]*entity.CartItem, error)
}
