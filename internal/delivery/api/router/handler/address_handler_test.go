package handler

import (
	"net/http"
	"testing"

	"shop/internal/domain/entity"
	domainerrors "shop/internal/domain/errors"
	mockUsecase "shop/internal/mocks/usecase"
	"shop/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const addressBody = `{"phone_number":"+33123456789","postal_code":"69001","street_address":"Rue de la Republique",` +
	`"house_number":"4","city":"Lyon","state":"ARA","country":"FR"}`

func newTestAddressHandler(t *testing.T) (*AddressHandler, *mockUsecase.MockAddressUsecase) {
	addressUC := mockUsecase.NewMockAddressUsecase(t)

	return NewAddressHandler(AddressHandlerParams{AddressUC: addressUC, Logger: newDiscardLogger()}), addressUC
}

func withAddressID(c echo.Context, addressID string) {
	c.SetParamNames("addressId")
	c.SetParamValues(addressID)
}

func TestAddressHandler_UpdateAddress(t *testing.T) {
	userID, addressID := uuid.New(), uuid.New()

	t.Run("updated", func(t *testing.T) {
		h, addressUC := newTestAddressHandler(t)
		addressUC.EXPECT().
			UpdateShippingAddress(mock.Anything, userID, addressID, mock.MatchedBy(func(in usecase.AddShippingAddressInput) bool {
				return in.City == "Lyon" && in.HouseNumber == "4"
			})).
			Return(&entity.ShippingAddress{ID: addressID, UserID: userID, City: "Lyon"}, nil)

		c, rec := newTestContext(http.MethodPut, "/api/v1/addresses/x", addressBody, userID)
		withAddressID(c, addressID.String())
		require.NoError(t, h.UpdateAddress(c))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Lyon", decodeData[AddressResponse](t, rec).City)
	})

	t.Run("not the owner", func(t *testing.T) {
		h, addressUC := newTestAddressHandler(t)
		addressUC.EXPECT().
			UpdateShippingAddress(mock.Anything, userID, addressID, mock.Anything).
			Return(nil, domainerrors.ErrShippingAddressNotFound)

		c, rec := newTestContext(http.MethodPut, "/api/v1/addresses/x", addressBody, userID)
		withAddressID(c, addressID.String())
		require.NoError(t, h.UpdateAddress(c))

		requireErrorCode(t, rec, http.StatusNotFound, "SHIPPING_ADDRESS_NOT_FOUND")
	})

	t.Run("bad id", func(t *testing.T) {
		h, _ := newTestAddressHandler(t)

		c, rec := newTestContext(http.MethodPut, "/api/v1/addresses/x", addressBody, userID)
		withAddressID(c, "x")
		require.NoError(t, h.UpdateAddress(c))

		requireErrorCode(t, rec, http.StatusBadRequest, "VALIDATION_FAILED")
	})
}

func TestAddressHandler_DeleteAddress(t *testing.T) {
	userID, addressID := uuid.New(), uuid.New()

	t.Run("deleted", func(t *testing.T) {
		h, addressUC := newTestAddressHandler(t)
		addressUC.EXPECT().DeleteShippingAddress(mock.Anything, userID, addressID).Return(nil)

		c, rec := newTestContext(http.MethodDelete, "/api/v1/addresses/x", "", userID)
		withAddressID(c, addressID.String())
		require.NoError(t, h.DeleteAddress(c))

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("still shipping", func(t *testing.T) {
		h, addressUC := newTestAddressHandler(t)
		addressUC.EXPECT().DeleteShippingAddress(mock.Anything, userID, addressID).Return(domainerrors.ErrShippingAddressInUse)

		c, rec := newTestContext(http.MethodDelete, "/api/v1/addresses/x", "", userID)
		withAddressID(c, addressID.String())
		require.NoError(t, h.DeleteAddress(c))

		requireErrorCode(t, rec, http.StatusConflict, "SHIPPING_ADDRESS_IN_USE")
	})
}
