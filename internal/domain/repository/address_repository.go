package repository

import (
	"context"

	"shop/internal/domain/entity"
	"shop/internal/errors"

	"github.com/google/uuid"
)

var (
	// ErrShippingAddressNotFound is returned when a user has no matching shipping address on file.
	ErrShippingAddressNotFound = errors.New("shipping address not found")
	// ErrShippingAddressInUse is returned when deleting an address an order ships to.
	ErrShippingAddressInUse = errors.New("shipping address is referenced by an order")
)

// AddressRepository defines shipping address persistence.
type AddressRepository interface {
	// CreateShippingAddress persists a new address for a user.
	CreateShippingAddress(ctx context.Context, address *entity.ShippingAddress) error

	// FindShippingAddressByUser returns the oldest address on file for the user.
	FindShippingAddressByUser(ctx context.Context, userID uuid.UUID) (*entity.ShippingAddress, error)

	// FindShippingAddressesByUser lists every address of the user, oldest first.
	FindShippingAddressesByUser(ctx context.Context, userID uuid.UUID) ([]*entity.ShippingAddress, error)

	// UpdateShippingAddress overwrites the fields of an address owned by address.UserID.
	// Returns ErrShippingAddressNotFound when no address matches both ids.
	UpdateShippingAddress(ctx context.Context, address *entity.ShippingAddress) error

	// DeleteShippingAddress removes an address owned by userID.
	// Returns ErrShippingAddressInUse while an order still ships to it.
	DeleteShippingAddress(ctx context.Context, userID, addressID uuid.UUID) error
}
