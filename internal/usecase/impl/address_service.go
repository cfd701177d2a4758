package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"shop/internal/domain/entity"
	domainerrors "shop/internal/domain/errors"
	"shop/internal/domain/repository"
	"shop/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type addressService struct {
	addressRepo repository.AddressRepository
	logger      *slog.Logger
}

// AddressServiceParams holds dependencies for AddressService, injected by Fx.
type AddressServiceParams struct {
	fx.In

	AddressRepo repository.AddressRepository
	Logger      *slog.Logger
}

// NewAddressService builds the shipping address usecase.
func NewAddressService(params AddressServiceParams) usecase.AddressUsecase {
	return &addressService{
		addressRepo: params.AddressRepo,
		logger:      params.Logger,
	}
}

// AddShippingAddress stores a new address after checking every field is present.
func (srv *addressService) AddShippingAddress(ctx context.Context, userID uuid.UUID, input usecase.AddShippingAddressInput) (*entity.ShippingAddress, error) {
	address := addressFromInput(uuid.New(), userID, input)
	address.CreatedAt = time.Now()

	if missing := missingAddressFields(address); len(missing) > 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("missing fields: " + strings.Join(missing, ", "))
	}

	if err := srv.addressRepo.CreateShippingAddress(ctx, address); err != nil {
		return nil, errors.Wrap(err, "failed to create shipping address")
	}

	scopedLogger(ctx, srv.logger).Info("Shipping address added", slog.Any("userID", userID), slog.Any("addressID", address.ID))

	return address, nil
}

// UpdateShippingAddress replaces every field of one of the user's addresses.
func (srv *addressService) UpdateShippingAddress(ctx context.Context, userID, addressID uuid.UUID, input usecase.AddShippingAddressInput) (*entity.ShippingAddress, error) {
	address := addressFromInput(addressID, userID, input)

	if missing := missingAddressFields(address); len(missing) > 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("missing fields: " + strings.Join(missing, ", "))
	}

	err := srv.addressRepo.UpdateShippingAddress(ctx, address)
	if errors.Is(err, repository.ErrShippingAddressNotFound) {
		return nil, errors.Wrap(domainerrors.ErrShippingAddressNotFound, addressID.String())
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to update shipping address")
	}

	scopedLogger(ctx, srv.logger).Info("Shipping address updated", slog.Any("userID", userID), slog.Any("addressID", addressID))

	return address, nil
}

// DeleteShippingAddress removes one of the user's addresses. Addresses an
// order already ships to stay.
func (srv *addressService) DeleteShippingAddress(ctx context.Context, userID, addressID uuid.UUID) error {
	err := srv.addressRepo.DeleteShippingAddress(ctx, userID, addressID)
	switch {
	case errors.Is(err, repository.ErrShippingAddressNotFound):
		return errors.Wrap(domainerrors.ErrShippingAddressNotFound, addressID.String())
	case errors.Is(err, repository.ErrShippingAddressInUse):
		return errors.Wrap(domainerrors.ErrShippingAddressInUse, addressID.String())
	case err != nil:
		return errors.Wrap(err, "failed to delete shipping address")
	}

	scopedLogger(ctx, srv.logger).Info("Shipping address deleted", slog.Any("userID", userID), slog.Any("addressID", addressID))

	return nil
}

// ListShippingAddresses returns the user's addresses, oldest first.
func (srv *addressService) ListShippingAddresses(ctx context.Context, userID uuid.UUID) ([]*entity.ShippingAddress, error) {
	addresses, err := srv.addressRepo.FindShippingAddressesByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list shipping addresses")
	}

	return addresses, nil
}

func addressFromInput(id, userID uuid.UUID, input usecase.AddShippingAddressInput) *entity.ShippingAddress {
	return &entity.ShippingAddress{
		ID:            id,
		UserID:        userID,
		PhoneNumber:   strings.TrimSpace(input.PhoneNumber),
		PostalCode:    strings.TrimSpace(input.PostalCode),
		StreetAddress: strings.TrimSpace(input.StreetAddress),
		HouseNumber:   strings.TrimSpace(input.HouseNumber),
		City:          strings.TrimSpace(input.City),
		State:         strings.TrimSpace(input.State),
		Country:       strings.TrimSpace(input.Country),
	}
}

func missingAddressFields(a *entity.ShippingAddress) []string {
	fields := []struct {
		name  string
		value string
	}{
		{"phone_number", a.PhoneNumber},
		{"postal_code", a.PostalCode},
		{"street_address", a.StreetAddress},
		{"house_number", a.HouseNumber},
		{"city", a.City},
		{"state", a.State},
		{"country", a.Country},
	}

	var missing []string
	for _, f := range fields {
		if f.value == "" {
			missing = append(missing, f.name)
		}
	}

	return missing
}
