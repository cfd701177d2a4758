package impl

import (
	"context"
	"testing"

	"shop/internal/domain/entity"
	domainerrors "shop/internal/domain/errors"
	mockRepo "shop/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestFavoriteService_ToggleFavorite(t *testing.T) {
	ctx := context.Background()
	backend := newMemoryBackend()
	srv := NewFavoriteService(FavoriteServiceParams{
		FavoriteRepo: backend.repos.FavoriteRepo(),
		ProductRepo:  backend.repos.ProductRepo(),
		Logger:       newDiscardLogger(),
	})
	userID := uuid.New()
	product := backend.seedProduct(t, "12.00")

	added, err := srv.ToggleFavorite(ctx, userID, product.ID)
	require.NoError(t, err)
	assert.True(t, added)

	added, err = srv.ToggleFavorite(ctx, userID, product.ID)
	require.NoError(t, err)
	assert.False(t, added)

	favorites, err := srv.ListFavorites(ctx, userID)
	require.NoError(t, err)
	assert.Empty(t, favorites)

	_, err = srv.ToggleFavorite(ctx, userID, uuid.New())
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestFavoriteService_ListFavorites(t *testing.T) {
	ctx := context.Background()
	backend := newMemoryBackend()
	srv := NewFavoriteService(FavoriteServiceParams{
		FavoriteRepo: backend.repos.FavoriteRepo(),
		ProductRepo:  backend.repos.ProductRepo(),
		Logger:       newDiscardLogger(),
	})
	userID := uuid.New()
	grinder := backend.seedProduct(t, "89.00")
	kettle := backend.seedProduct(t, "35.00")

	for _, id := range []uuid.UUID{kettle.ID, grinder.ID} {
		_, err := srv.ToggleFavorite(ctx, userID, id)
		require.NoError(t, err)
	}
	_, err := srv.ToggleFavorite(ctx, uuid.New(), grinder.ID)
	require.NoError(t, err)

	products, err := srv.ListFavorites(ctx, userID)
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, kettle.ID, products[0].ID)
	assert.Equal(t, "35.00", products[0].Price.StringFixed(2))
	assert.Equal(t, grinder.ID, products[1].ID)
}

func TestFavoriteService_ListSkipsDelistedProducts(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	listed, delisted := uuid.New(), uuid.New()
	favoriteRepo := mockRepo.NewMockFavoriteRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	srv := NewFavoriteService(FavoriteServiceParams{FavoriteRepo: favoriteRepo, ProductRepo: productRepo, Logger: newDiscardLogger()})

	favoriteRepo.EXPECT().FindFavoritesByUser(ctx, userID).Return([]*entity.Favorite{
		{UserID: userID, ProductID: delisted},
		{UserID: userID, ProductID: listed},
	}, nil)
	productRepo.EXPECT().
		FindProductsByIDs(ctx, []uuid.UUID{delisted, listed}).
		Return([]*entity.Product{{ID: listed, Name: "Tamper"}}, nil)

	products, err := srv.ListFavorites(ctx, userID)

	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Tamper", products[0].Name)
}

func TestFavoriteService_ToggleSurfacesStoreErrors(t *testing.T) {
	ctx := context.Background()
	favoriteRepo := mockRepo.NewMockFavoriteRepository(t)
	srv := NewFavoriteService(FavoriteServiceParams{
		FavoriteRepo: favoriteRepo,
		ProductRepo:  mockRepo.NewMockProductRepository(t),
		Logger:       newDiscardLogger(),
	})

	favoriteRepo.EXPECT().DeleteFavorite(ctx, mock.Anything, mock.Anything).Return(false, errors.New("db down"))

	_, err := srv.ToggleFavorite(ctx, uuid.New(), uuid.New())

	assert.Error(t, err)
}
