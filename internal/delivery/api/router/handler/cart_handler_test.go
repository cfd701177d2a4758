package handler

import (
	"net/http"
	"testing"
	"time"

	"shop/internal/domain/entity"
	domainerrors "shop/internal/domain/errors"
	mockUsecase "shop/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestCartHandler(t *testing.T) (*CartHandler, *mockUsecase.MockCartUsecase) {
	cartUC := mockUsecase.NewMockCartUsecase(t)

	return NewCartHandler(CartHandlerParams{CartUC: cartUC, Logger: newDiscardLogger()}), cartUC
}

func TestCartHandler_AddItem(t *testing.T) {
	userID, productID := uuid.New(), uuid.New()
	body := `{"product_id":"` + productID.String() + `","quantity":2}`

	t.Run("created", func(t *testing.T) {
		h, cartUC := newTestCartHandler(t)
		cartUC.EXPECT().
			AddItem(mock.Anything, userID, productID, 2).
			Return(&entity.CartItem{ProductID: productID, Quantity: 2, CreatedAt: time.Now()}, nil)

		c, rec := newTestContext(http.MethodPost, "/cart", body, userID)
		require.NoError(t, h.AddItem(c))

		assert.Equal(t, http.StatusCreated, rec.Code)
		item := decodeData[CartItemResponse](t, rec)
		assert.Equal(t, productID, item.ProductID)
		assert.Equal(t, 2, item.Quantity)
	})

	t.Run("duplicate line", func(t *testing.T) {
		h, cartUC := newTestCartHandler(t)
		cartUC.EXPECT().
			AddItem(mock.Anything, userID, productID, 2).
			Return(nil, errors.Wrap(domainerrors.ErrCartItemAlreadyExists, productID.String()))

		c, rec := newTestContext(http.MethodPost, "/cart", body, userID)
		require.NoError(t, h.AddItem(c))

		requireErrorCode(t, rec, http.StatusConflict, "CART_ITEM_ALREADY_EXISTS")
	})

	t.Run("zero quantity", func(t *testing.T) {
		h, _ := newTestCartHandler(t)

		c, rec := newTestContext(http.MethodPost, "/cart", `{"product_id":"`+productID.String()+`","quantity":0}`, userID)
		require.NoError(t, h.AddItem(c))

		env := requireErrorCode(t, rec, http.StatusBadRequest, "VALIDATION_FAILED")
		assert.Equal(t, map[string]any{"quantity": "gte=1"}, env.Error.Details)
	})

	t.Run("malformed body", func(t *testing.T) {
		h, _ := newTestCartHandler(t)

		c, rec := newTestContext(http.MethodPost, "/cart", `{"quantity":"two"`, userID)
		require.NoError(t, h.AddItem(c))

		requireErrorCode(t, rec, http.StatusBadRequest, "INVALID_INPUT")
	})

	t.Run("anonymous", func(t *testing.T) {
		h, _ := newTestCartHandler(t)

		c, rec := newTestContext(http.MethodPost, "/cart", body, uuid.Nil)
		require.NoError(t, h.AddItem(c))

		requireErrorCode(t, rec, http.StatusUnauthorized, "INVALID_TOKEN")
	})
}

func TestCartHandler_RemoveItem(t *testing.T) {
	userID, productID := uuid.New(), uuid.New()

	t.Run("no content", func(t *testing.T) {
		h, cartUC := newTestCartHandler(t)
		cartUC.EXPECT().RemoveItem(mock.Anything, userID, productID).Return(nil)

		c, rec := newTestContext(http.MethodDelete, "/cart/"+productID.String(), "", userID)
		withProductID(c, productID.String())
		require.NoError(t, h.RemoveItem(c))

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("bad product id", func(t *testing.T) {
		h, _ := newTestCartHandler(t)

		c, rec := newTestContext(http.MethodDelete, "/cart/nope", "", userID)
		withProductID(c, "nope")
		require.NoError(t, h.RemoveItem(c))

		requireErrorCode(t, rec, http.StatusBadRequest, "VALIDATION_FAILED")
	})

	t.Run("not in cart", func(t *testing.T) {
		h, cartUC := newTestCartHandler(t)
		cartUC.EXPECT().RemoveItem(mock.Anything, userID, productID).Return(domainerrors.ErrCartItemNotFound)

		c, rec := newTestContext(http.MethodDelete, "/cart/"+productID.String(), "", userID)
		withProductID(c, productID.String())
		require.NoError(t, h.RemoveItem(c))

		requireErrorCode(t, rec, http.StatusNotFound, "CART_ITEM_NOT_FOUND")
	})
}

func TestCartHandler_ListItems(t *testing.T) {
	h, cartUC := newTestCartHandler(t)
	userID := uuid.New()
	product := &entity.Product{ID: uuid.New(), Name: "Beans", Price: decimal.RequireFromString("4.5")}

	cartUC.EXPECT().ListItems(mock.Anything, userID).Return([]entity.CartLine{entity.NewCartLine(product, 3)}, nil)

	c, rec := newTestContext(http.MethodGet, "/cart", "", userID)
	require.NoError(t, h.ListItems(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	cart := decodeData[CartResponse](t, rec)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, "4.50", cart.Items[0].Product.Price)
	assert.Equal(t, "13.50", cart.Items[0].LineTotal)
	assert.Equal(t, "13.50", cart.Total)
}

func TestCartHandler_ServerErrorIsReturned(t *testing.T) {
	h, cartUC := newTestCartHandler(t)
	userID := uuid.New()

	cartUC.EXPECT().ListItems(mock.Anything, userID).Return(nil, errors.New("db down"))

	c, rec := newTestContext(http.MethodGet, "/cart", "", userID)
	err := h.ListItems(c)

	require.Error(t, err)
	assert.False(t, c.Response().Committed)
	assert.Zero(t, rec.Body.Len())
}
