package handler

import (
	"net/http"
	"testing"

	"shop/internal/domain/entity"
	domainerrors "shop/internal/domain/errors"
	mockUsecase "shop/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestFavoriteHandler(t *testing.T) (*FavoriteHandler, *mockUsecase.MockFavoriteUsecase) {
	favoriteUC := mockUsecase.NewMockFavoriteUsecase(t)

	return NewFavoriteHandler(FavoriteHandlerParams{FavoriteUC: favoriteUC, Logger: newDiscardLogger()}), favoriteUC
}

func TestFavoriteHandler_ToggleFavorite(t *testing.T) {
	userID, productID := uuid.New(), uuid.New()
	body := `{"product_id":"` + productID.String() + `"}`

	t.Run("added", func(t *testing.T) {
		h, favoriteUC := newTestFavoriteHandler(t)
		favoriteUC.EXPECT().ToggleFavorite(mock.Anything, userID, productID).Return(true, nil)

		c, rec := newTestContext(http.MethodPost, "/api/v1/favorites", body, userID)
		require.NoError(t, h.ToggleFavorite(c))

		assert.Equal(t, http.StatusOK, rec.Code)
		resp := decodeData[FavoriteToggleResponse](t, rec)
		assert.True(t, resp.Favorite)
		assert.Equal(t, productID, resp.ProductID)
	})

	t.Run("unknown product", func(t *testing.T) {
		h, favoriteUC := newTestFavoriteHandler(t)
		favoriteUC.EXPECT().ToggleFavorite(mock.Anything, userID, productID).Return(false, domainerrors.ErrProductNotFound)

		c, rec := newTestContext(http.MethodPost, "/api/v1/favorites", body, userID)
		require.NoError(t, h.ToggleFavorite(c))

		requireErrorCode(t, rec, http.StatusNotFound, "PRODUCT_NOT_FOUND")
	})

	t.Run("missing product id", func(t *testing.T) {
		h, _ := newTestFavoriteHandler(t)

		c, rec := newTestContext(http.MethodPost, "/api/v1/favorites", `{}`, userID)
		require.NoError(t, h.ToggleFavorite(c))

		requireErrorCode(t, rec, http.StatusBadRequest, "VALIDATION_FAILED")
	})
}

func TestFavoriteHandler_ListFavorites(t *testing.T) {
	userID := uuid.New()
	h, favoriteUC := newTestFavoriteHandler(t)
	favoriteUC.EXPECT().ListFavorites(mock.Anything, userID).Return([]*entity.Product{
		{ID: uuid.New(), Name: "Milk jug", Price: decimal.RequireFromString("14.5")},
	}, nil)

	c, rec := newTestContext(http.MethodGet, "/api/v1/favorites", "", userID)
	require.NoError(t, h.ListFavorites(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	products := decodeData[[]ProductResponse](t, rec)
	require.Len(t, products, 1)
	assert.Equal(t, "14.50", products[0].Price)
}
