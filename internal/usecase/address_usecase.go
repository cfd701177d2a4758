package usecase

import (
	"context"

	"shop/internal/domain/entity"

	"github.com/google/uuid"
)

// AddShippingAddressInput holds the fields of a shipping address. Updates
// replace every field, so the same input serves both.
type AddShippingAddressInput struct {
	PhoneNumber   string
	PostalCode    string
	StreetAddress string
	HouseNumber   string
	City          string
	State         string
	Country       string
}

// AddressUsecase manages the shipping addresses a checkout ships to.
type AddressUsecase interface {
	AddShippingAddress(ctx context.Context, userID uuid.UUID, input AddShippingAddressInput) (*entity.ShippingAddress, error)
	ListShippingAddresses(ctx context.Context, userID uuid.UUID) ([]*entity.ShippingAddress, error)
	UpdateShippingAddress(ctx context.Context, userID, addressID uuid.UUID, input AddShippingAddressInput) (*entity.ShippingAddress, error)
	DeleteShippingAddress(ctx context.Context, userID, addressID uuid.UUID) error
}
