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
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type cartServiceFixtures struct {
	service     usecase.CartUsecase
	cartRepo    *mockRepo.MockCartRepository
	productRepo *mockRepo.MockProductRepository
}

func createTestCartService(t *testing.T) cartServiceFixtures {
	cartRepo := mockRepo.NewMockCartRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)

	return cartServiceFixtures{
		service: NewCartService(CartServiceParams{
			CartRepo:    cartRepo,
			ProductRepo: productRepo,
			Logger:      newDiscardLogger(),
		}),
		cartRepo:    cartRepo,
		productRepo: productRepo,
	}
}

func TestCartService_AddItem_Success(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()
	userID, productID := uuid.New(), uuid.New()

	fx.productRepo.EXPECT().FindProductByID(ctx, productID).Return(&entity.Product{ID: productID}, nil)
	fx.cartRepo.EXPECT().
		CreateCartItem(ctx, mock.MatchedBy(func(item *entity.CartItem) bool {
			return item.UserID == userID && item.ProductID == productID && item.Quantity == 3
		})).
		Return(nil)

	item, err := fx.service.AddItem(ctx, userID, productID, 3)

	require.NoError(t, err)
	assert.Equal(t, 3, item.Quantity)
	assert.NotEqual(t, uuid.Nil, item.ID)
}

func TestCartService_AddItem_Errors(t *testing.T) {
	ctx := context.Background()
	userID, productID := uuid.New(), uuid.New()

	t.Run("quantity below one", func(t *testing.T) {
		fx := createTestCartService(t)

		_, err := fx.service.AddItem(ctx, userID, productID, 0)

		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("unknown product", func(t *testing.T) {
		fx := createTestCartService(t)
		fx.productRepo.EXPECT().FindProductByID(ctx, productID).Return(nil, repository.ErrProductNotFound)

		_, err := fx.service.AddItem(ctx, userID, productID, 1)

		assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
	})

	t.Run("already in cart", func(t *testing.T) {
		fx := createTestCartService(t)
		fx.productRepo.EXPECT().FindProductByID(ctx, productID).Return(&entity.Product{ID: productID}, nil)
		fx.cartRepo.EXPECT().CreateCartItem(ctx, mock.Anything).Return(repository.ErrCartItemAlreadyExists)

		_, err := fx.service.AddItem(ctx, userID, productID, 1)

		assert.ErrorIs(t, err, domainerrors.ErrCartItemAlreadyExists)
	})

	t.Run("storage failure", func(t *testing.T) {
		fx := createTestCartService(t)
		fx.productRepo.EXPECT().FindProductByID(ctx, productID).Return(&entity.Product{ID: productID}, nil)
		fx.cartRepo.EXPECT().CreateCartItem(ctx, mock.Anything).Return(errors.New("connection reset"))

		_, err := fx.service.AddItem(ctx, userID, productID, 1)

		require.Error(t, err)
		var appErr domainerrors.AppError
		assert.False(t, errors.As(err, &appErr))
	})
}

func TestCartService_UpdateQuantity(t *testing.T) {
	ctx := context.Background()
	userID, productID := uuid.New(), uuid.New()

	t.Run("overwrites quantity", func(t *testing.T) {
		fx := createTestCartService(t)
		fx.cartRepo.EXPECT().UpdateCartItemQuantity(ctx, userID, productID, 7).Return(nil)

		assert.NoError(t, fx.service.UpdateQuantity(ctx, userID, productID, 7))
	})

	t.Run("rejects zero", func(t *testing.T) {
		fx := createTestCartService(t)

		assert.ErrorIs(t, fx.service.UpdateQuantity(ctx, userID, productID, 0), domainerrors.ErrValidationFailed)
	})

	t.Run("missing line", func(t *testing.T) {
		fx := createTestCartService(t)
		fx.cartRepo.EXPECT().UpdateCartItemQuantity(ctx, userID, productID, 2).Return(repository.ErrCartItemNotFound)

		assert.ErrorIs(t, fx.service.UpdateQuantity(ctx, userID, productID, 2), domainerrors.ErrCartItemNotFound)
	})
}

func TestCartService_RemoveItem(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()
	userID, productID := uuid.New(), uuid.New()

	fx.cartRepo.EXPECT().DeleteCartItem(ctx, userID, productID).Return(nil).Once()
	fx.cartRepo.EXPECT().DeleteCartItem(ctx, userID, productID).Return(repository.ErrCartItemNotFound).Once()

	require.NoError(t, fx.service.RemoveItem(ctx, userID, productID))
	assert.ErrorIs(t, fx.service.RemoveItem(ctx, userID, productID), domainerrors.ErrCartItemNotFound)
}

func TestCartService_ListItems(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()
	userID := uuid.New()
	beans := &entity.Product{ID: uuid.New(), Name: "Beans", Price: decimal.RequireFromString("4.25")}
	gone := uuid.New()

	fx.cartRepo.EXPECT().FindCartItemsByUser(ctx, userID).Return([]*entity.CartItem{
		{UserID: userID, ProductID: beans.ID, Quantity: 4},
		{UserID: userID, ProductID: gone, Quantity: 1},
	}, nil)
	fx.productRepo.EXPECT().
		FindProductsByIDs(ctx, []uuid.UUID{beans.ID, gone}).
		Return([]*entity.Product{beans}, nil)

	lines, err := fx.service.ListItems(ctx, userID)

	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, "Beans", lines[0].Product.Name)
	assert.Equal(t, "17.00", lines[0].LineTotal.StringFixed(2))
}

func TestCartService_ListItems_Empty(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.cartRepo.EXPECT().FindCartItemsByUser(ctx, userID).Return(nil, nil)

	lines, err := fx.service.ListItems(ctx, userID)

	require.NoError(t, err)
	assert.NotNil(t, lines)
	assert.Empty(t, lines)
}
