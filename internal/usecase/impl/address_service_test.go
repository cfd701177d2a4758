package impl

import (
	"context"
	"testing"

	"shop/internal/domain/entity"
	domainerrors "shop/internal/domain/errors"
	"shop/internal/domain/repository"
	mockRepo "shop/internal/mocks/repository"
	"shop/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func validAddressInput() usecase.AddShippingAddressInput {
	return usecase.AddShippingAddressInput{
		PhoneNumber:   "+33123456789",
		PostalCode:    "75001",
		StreetAddress: "Rue de Rivoli",
		HouseNumber:   "12",
		City:          "Paris",
		State:         "IDF",
		Country:       "FR",
	}
}

func TestAddressService_AddShippingAddress(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	addressRepo := mockRepo.NewMockAddressRepository(t)
	srv := NewAddressService(AddressServiceParams{AddressRepo: addressRepo, Logger: newDiscardLogger()})

	input := validAddressInput()
	input.City = "  Paris  "

	addressRepo.EXPECT().
		CreateShippingAddress(ctx, mock.MatchedBy(func(a *entity.ShippingAddress) bool {
			return a.UserID == userID && a.City == "Paris"
		})).
		Return(nil)

	address, err := srv.AddShippingAddress(ctx, userID, input)

	require.NoError(t, err)
	assert.Equal(t, "12 Rue de Rivoli, Paris, IDF 75001, FR", address.String())
}

func TestAddressService_AddShippingAddress_MissingFields(t *testing.T) {
	addressRepo := mockRepo.NewMockAddressRepository(t)
	srv := NewAddressService(AddressServiceParams{AddressRepo: addressRepo, Logger: newDiscardLogger()})

	input := validAddressInput()
	input.PhoneNumber = ""
	input.Country = " "

	_, err := srv.AddShippingAddress(context.Background(), uuid.New(), input)

	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "missing fields: phone_number, country", appErr.Details())
}

func TestAddressService_ListShippingAddresses(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	addressRepo := mockRepo.NewMockAddressRepository(t)
	srv := NewAddressService(AddressServiceParams{AddressRepo: addressRepo, Logger: newDiscardLogger()})

	addressRepo.EXPECT().FindShippingAddressesByUser(ctx, userID).Return([]*entity.ShippingAddress{{UserID: userID}}, nil)

	addresses, err := srv.ListShippingAddresses(ctx, userID)

	require.NoError(t, err)
	assert.Len(t, addresses, 1)
}

func TestAddressService_UpdateShippingAddress(t *testing.T) {
	ctx := context.Background()
	userID, addressID := uuid.New(), uuid.New()

	t.Run("replaces the fields", func(t *testing.T) {
		addressRepo := mockRepo.NewMockAddressRepository(t)
		srv := NewAddressService(AddressServiceParams{AddressRepo: addressRepo, Logger: newDiscardLogger()})

		input := validAddressInput()
		input.City = " Lyon "
		addressRepo.EXPECT().
			UpdateShippingAddress(ctx, mock.MatchedBy(func(a *entity.ShippingAddress) bool {
				return a.ID == addressID && a.UserID == userID && a.City == "Lyon"
			})).
			Return(nil).
			Once()

		address, err := srv.UpdateShippingAddress(ctx, userID, addressID, input)

		require.NoError(t, err)
		assert.Equal(t, "Lyon", address.City)
	})

	t.Run("someone else's address", func(t *testing.T) {
		addressRepo := mockRepo.NewMockAddressRepository(t)
		srv := NewAddressService(AddressServiceParams{AddressRepo: addressRepo, Logger: newDiscardLogger()})
		addressRepo.EXPECT().UpdateShippingAddress(ctx, mock.Anything).Return(repository.ErrShippingAddressNotFound)

		_, err := srv.UpdateShippingAddress(ctx, userID, addressID, validAddressInput())

		assert.ErrorIs(t, err, domainerrors.ErrShippingAddressNotFound)
	})

	t.Run("missing fields", func(t *testing.T) {
		addressRepo := mockRepo.NewMockAddressRepository(t)
		srv := NewAddressService(AddressServiceParams{AddressRepo: addressRepo, Logger: newDiscardLogger()})

		_, err := srv.UpdateShippingAddress(ctx, userID, addressID, usecase.AddShippingAddressInput{})

		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})
}

func TestAddressService_DeleteShippingAddress(t *testing.T) {
	ctx := context.Background()
	backend := newMemoryBackend()
	srv := NewAddressService(AddressServiceParams{AddressRepo: backend.repos.AddressRepo(), Logger: newDiscardLogger()})

	userID := uuid.New()
	shipped := backend.seedAddress(t, userID)
	spare := backend.seedAddress(t, userID)
	require.NoError(t, backend.repos.OrderRepo().CreateOrders(ctx, []*entity.Order{{
		ID:                uuid.New(),
		UserID:            userID,
		ShippingAddressID: shipped.ID,
		ProductID:         uuid.New(),
		Quantity:          1,
		Status:            entity.OrderStatusProcessing,
	}}))

	err := srv.DeleteShippingAddress(ctx, uuid.New(), spare.ID)
	assert.ErrorIs(t, err, domainerrors.ErrShippingAddressNotFound)

	err = srv.DeleteShippingAddress(ctx, userID, shipped.ID)
	assert.ErrorIs(t, err, domainerrors.ErrShippingAddressInUse)

	require.NoError(t, srv.DeleteShippingAddress(ctx, userID, spare.ID))

	addresses, err := srv.ListShippingAddresses(ctx, userID)
	require.NoError(t, err)
	require.Len(t, addresses, 1)
	assert.Equal(t, shipped.ID, addresses[0].ID)
}
