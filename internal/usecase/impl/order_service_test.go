package impl

import (
	"context"
	"sync"
	"testing"
	"time"

	"shop/internal/domain/entity"
	domainerrors "shop/internal/domain/errors"
	"shop/internal/domain/service"
	mockSvc "shop/internal/mocks/service"
	mockUsecase "shop/internal/mocks/usecase"
	"shop/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// orderServiceFixtures holds the order engine with an in-memory ledger and mocked collaborators.
type orderServiceFixtures struct {
	service     usecase.OrderUsecase
	backend     *memoryBackend
	users       *mockUsecase.MockUserUsecase
	wallet      *mockUsecase.MockWalletUsecase
	idempotency *mockSvc.MockIdempotencyStore
	notifier    *mockSvc.MockNotifier
	metrics     *recordingMetrics
}

func createTestOrderService(t *testing.T) orderServiceFixtures {
	backend := newMemoryBackend()
	users := mockUsecase.NewMockUserUsecase(t)
	wallet := mockUsecase.NewMockWalletUsecase(t)
	idempotency := mockSvc.NewMockIdempotencyStore(t)
	notifier := mockSvc.NewMockNotifier(t)
	metrics := &recordingMetrics{}

	srv := NewOrderService(OrderServiceParams{
		TxManager:   backend.txManager,
		OrderRepo:   backend.repos.OrderRepo(),
		Users:       users,
		Wallet:      wallet,
		Idempotency: idempotency,
		Notifier:    notifier,
		Clock:       fixedClock{now: promoNow},
		Metrics:     metrics,
		Logger:      newDiscardLogger(),
	})

	return orderServiceFixtures{
		service:     srv,
		backend:     backend,
		users:       users,
		wallet:      wallet,
		idempotency: idempotency,
		notifier:    notifier,
		metrics:     metrics,
	}
}

func (fx orderServiceFixtures) cartSize(t *testing.T, userID uuid.UUID) int {
	t.Helper()

	items, err := fx.backend.repos.CartRepo().FindCartItemsByUser(context.Background(), userID)
	require.NoError(t, err)

	return len(items)
}

func (fx orderServiceFixtures) orders(t *testing.T, userID uuid.UUID) []*entity.Order {
	t.Helper()

	orders, err := fx.service.ListOrders(context.Background(), userID)
	require.NoError(t, err)

	return orders
}

func TestOrderService_Checkout_WithPromoCode(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	userID := uuid.New()

	espresso := fx.backend.seedProduct(t, "10.00")
	pitcher := fx.backend.seedProduct(t, "5.50")
	address := fx.backend.seedAddress(t, userID)
	fx.backend.seedCartItem(t, userID, espresso.ID, 2)
	fx.backend.seedCartItem(t, userID, pitcher.ID, 1)
	fx.backend.seedPromo(t, "TENOFF", 10, 5, promoNow.Add(-time.Hour), promoNow.Add(time.Hour))

	fx.users.EXPECT().EmailOf(ctx, userID).Return("buyer@example.com", nil)

	var payload service.OrderPlacedPayload
	fx.notifier.EXPECT().
		Notify(ctx, service.EventOrderPlaced, mock.AnythingOfType("service.OrderPlacedPayload")).
		Run(func(_ context.Context, _ service.EventKind, p any) {
			payload = p.(service.OrderPlacedPayload)
		}).
		Once()

	result, err := fx.service.Checkout(ctx, userID, usecase.CheckoutInput{PromoCode: " TENOFF "})

	require.NoError(t, err)
	require.Len(t, result.Orders, 2)
	assert.Equal(t, "25.50", result.Subtotal.StringFixed(2))
	assert.Equal(t, "2.55", result.Discount.StringFixed(2))
	assert.Equal(t, "22.95", result.Total.StringFixed(2))
	require.NotNil(t, result.PromoCode)
	assert.Equal(t, "TENOFF", *result.PromoCode)

	for _, o := range result.Orders {
		assert.Equal(t, entity.OrderStatusProcessing, o.Status)
		assert.Equal(t, address.ID, o.ShippingAddressID)
		assert.Equal(t, userID, o.UserID)
		assert.Equal(t, uuid.Version(7), o.ID.Version())
	}
	assert.Equal(t, espresso.ID, result.Orders[0].ProductID)
	assert.Equal(t, 2, result.Orders[0].Quantity)

	assert.Equal(t, 0, fx.cartSize(t, userID))
	assert.Equal(t, 1, fx.backend.promoUsage(t, "TENOFF"))
	assert.Len(t, fx.orders(t, userID), 2)

	assert.Equal(t, "buyer@example.com", payload.Email)
	assert.Equal(t, "22.95", payload.Total)
	assert.Equal(t, "TENOFF", payload.PromoCode)
	assert.Len(t, payload.OrderIDs, 2)
	assert.Equal(t, []string{"order.checkout/ok"}, fx.metrics.observations())
}

func TestOrderService_Checkout_WithoutPromoCode(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	userID := uuid.New()

	product := fx.backend.seedProduct(t, "3.20")
	fx.backend.seedAddress(t, userID)
	fx.backend.seedCartItem(t, userID, product.ID, 3)

	fx.users.EXPECT().EmailOf(ctx, userID).Return("", domainerrors.ErrUserNotFound)

	result, err := fx.service.Checkout(ctx, userID, usecase.CheckoutInput{})

	require.NoError(t, err)
	assert.Nil(t, result.PromoCode)
	assert.Nil(t, result.Orders[0].PromoCode)
	assert.True(t, result.Discount.IsZero())
	assert.Equal(t, "9.60", result.Total.StringFixed(2))
}

func TestOrderService_Checkout_RollsBackOnPromoFailure(t *testing.T) {
	tests := []struct {
		name     string
		start    time.Time
		end      time.Time
		maxUsage int
		code     string
		wantErr  error
	}{
		{
			name:     "expired",
			start:    promoNow.Add(-48 * time.Hour),
			end:      promoNow.Add(-24 * time.Hour),
			maxUsage: 5,
			code:     "OLD",
			wantErr:  domainerrors.ErrPromoCodeExpired,
		},
		{
			name:     "exhausted",
			start:    promoNow.Add(-time.Hour),
			end:      promoNow.Add(time.Hour),
			maxUsage: 0,
			code:     "OLD",
			wantErr:  domainerrors.ErrPromoCodeExhausted,
		},
		{
			name:     "unknown",
			start:    promoNow.Add(-time.Hour),
			end:      promoNow.Add(time.Hour),
			maxUsage: 5,
			code:     "TYPO",
			wantErr:  domainerrors.ErrPromoCodeNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestOrderService(t)
			ctx := context.Background()
			userID := uuid.New()

			product := fx.backend.seedProduct(t, "10.00")
			fx.backend.seedAddress(t, userID)
			fx.backend.seedCartItem(t, userID, product.ID, 1)
			fx.backend.seedPromo(t, "OLD", 10, tt.maxUsage, tt.start, tt.end)

			result, err := fx.service.Checkout(ctx, userID, usecase.CheckoutInput{PromoCode: tt.code})

			require.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, result)
			assert.Equal(t, 1, fx.cartSize(t, userID))
			assert.Empty(t, fx.orders(t, userID))
			assert.Equal(t, 0, fx.backend.promoUsage(t, "OLD"))
		})
	}
}

func TestOrderService_Checkout_ConcurrentUsesCartOnce(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	userID := uuid.New()

	product := fx.backend.seedProduct(t, "7.00")
	fx.backend.seedAddress(t, userID)
	fx.backend.seedCartItem(t, userID, product.ID, 1)

	fx.users.EXPECT().EmailOf(ctx, userID).Return("buyer@example.com", nil).Once()
	fx.notifier.EXPECT().Notify(ctx, service.EventOrderPlaced, mock.Anything).Return().Once()

	const attempts = 20
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		placed   int
		empty    int
		failures []error
	)
	for range attempts {
		wg.Add(1)
		go func() {
			defer wg.Done()

			_, err := fx.service.Checkout(ctx, userID, usecase.CheckoutInput{})

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				placed++
			case errors.Is(err, domainerrors.ErrEmptyCart):
				empty++
			default:
				failures = append(failures, err)
			}
		}()
	}
	wg.Wait()

	assert.Empty(t, failures)
	assert.Equal(t, 1, placed)
	assert.Equal(t, attempts-1, empty)
	assert.Len(t, fx.orders(t, userID), 1)
	assert.Equal(t, 0, fx.cartSize(t, userID))
}

func TestOrderService_Checkout_MissingProductRestoresCart(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	userID := uuid.New()

	product := fx.backend.seedProduct(t, "2.00")
	fx.backend.seedAddress(t, userID)
	fx.backend.seedCartItem(t, userID, product.ID, 1)
	// Delisted after it was added to the cart.
	fx.backend.seedCartItem(t, userID, uuid.New(), 1)

	result, err := fx.service.Checkout(ctx, userID, usecase.CheckoutInput{})

	require.ErrorIs(t, err, domainerrors.ErrProductNotFound)
	assert.Nil(t, result)
	assert.Equal(t, 2, fx.cartSize(t, userID))
	assert.Empty(t, fx.orders(t, userID))
	assert.Equal(t, []string{"order.checkout/PRODUCT_NOT_FOUND"}, fx.metrics.observations())
}

func TestOrderService_Checkout_Preconditions(t *testing.T) {
	t.Run("no shipping address", func(t *testing.T) {
		fx := createTestOrderService(t)
		userID := uuid.New()
		product := fx.backend.seedProduct(t, "1.00")
		fx.backend.seedCartItem(t, userID, product.ID, 1)

		_, err := fx.service.Checkout(context.Background(), userID, usecase.CheckoutInput{})

		require.ErrorIs(t, err, domainerrors.ErrShippingAddressNotFound)
		assert.Equal(t, 1, fx.cartSize(t, userID))
	})

	t.Run("empty cart", func(t *testing.T) {
		fx := createTestOrderService(t)
		userID := uuid.New()
		fx.backend.seedAddress(t, userID)

		_, err := fx.service.Checkout(context.Background(), userID, usecase.CheckoutInput{})

		require.ErrorIs(t, err, domainerrors.ErrEmptyCart)
		assert.Equal(t, []string{"order.checkout/EMPTY_CART"}, fx.metrics.observations())
	})
}

func TestOrderService_MarkCompleted(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	userID := uuid.New()

	product := fx.backend.seedProduct(t, "4.00")
	other := fx.backend.seedProduct(t, "6.00")
	fx.backend.seedAddress(t, userID)
	fx.backend.seedCartItem(t, userID, product.ID, 1)
	fx.backend.seedCartItem(t, userID, other.ID, 1)

	fx.users.EXPECT().EmailOf(ctx, userID).Return("buyer@example.com", nil)
	fx.notifier.EXPECT().Notify(ctx, service.EventOrderPlaced, mock.Anything).Return()

	_, err := fx.service.Checkout(ctx, userID, usecase.CheckoutInput{})
	require.NoError(t, err)

	completed, err := fx.service.MarkCompleted(ctx, userID, product.ID)
	require.NoError(t, err)
	require.Len(t, completed, 1)
	assert.Equal(t, entity.OrderStatusCompleted, completed[0].Status)

	again, err := fx.service.MarkCompleted(ctx, userID, product.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusCompleted, again[0].Status)

	statuses := map[uuid.UUID]entity.OrderStatus{}
	for _, o := range fx.orders(t, userID) {
		statuses[o.ProductID] = o.Status
	}
	assert.Equal(t, entity.OrderStatusCompleted, statuses[product.ID])
	assert.Equal(t, entity.OrderStatusProcessing, statuses[other.ID])

	_, err = fx.service.MarkCompleted(ctx, userID, uuid.New())
	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
}

func TestOrderService_Pay(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	amount := decimal.RequireFromString("12.34")
	key := "pay:" + userID.String() + ":abc"

	t.Run("debits with a fresh key", func(t *testing.T) {
		fx := createTestOrderService(t)
		fx.idempotency.EXPECT().Reserve(ctx, key).Return(true, nil).Once()
		fx.wallet.EXPECT().Debit(ctx, userID, amount).Return(decimal.RequireFromString("87.66"), nil).Once()

		result, err := fx.service.Pay(ctx, userID, usecase.PayInput{Amount: amount, IdempotencyKey: " abc "})

		require.NoError(t, err)
		assert.Equal(t, "87.66", result.Balance.StringFixed(2))
		assert.Equal(t, []string{"order.pay/ok"}, fx.metrics.observations())
	})

	t.Run("refuses a replayed key", func(t *testing.T) {
		fx := createTestOrderService(t)
		fx.idempotency.EXPECT().Reserve(ctx, key).Return(false, nil).Once()

		_, err := fx.service.Pay(ctx, userID, usecase.PayInput{Amount: amount, IdempotencyKey: "abc"})

		assert.ErrorIs(t, err, domainerrors.ErrDuplicateRequest)
	})

	t.Run("releases the key when the debit fails", func(t *testing.T) {
		fx := createTestOrderService(t)
		fx.idempotency.EXPECT().Reserve(ctx, key).Return(true, nil).Once()
		fx.wallet.EXPECT().Debit(ctx, userID, amount).Return(decimal.Zero, domainerrors.ErrInsufficientFunds).Once()
		fx.idempotency.EXPECT().Release(mock.Anything, key).Return(errors.New("redis down")).Once()

		_, err := fx.service.Pay(ctx, userID, usecase.PayInput{Amount: amount, IdempotencyKey: "abc"})

		assert.ErrorIs(t, err, domainerrors.ErrInsufficientFunds)
		assert.Equal(t, []string{"order.pay/INSUFFICIENT_FUNDS"}, fx.metrics.observations())
	})

	t.Run("skips the store without a key", func(t *testing.T) {
		fx := createTestOrderService(t)
		fx.wallet.EXPECT().Debit(ctx, userID, amount).Return(decimal.NewFromInt(1), nil).Once()

		_, err := fx.service.Pay(ctx, userID, usecase.PayInput{Amount: amount})

		require.NoError(t, err)
	})

	t.Run("rejects a non-positive amount", func(t *testing.T) {
		fx := createTestOrderService(t)

		_, err := fx.service.Pay(ctx, userID, usecase.PayInput{Amount: decimal.Zero, IdempotencyKey: "abc"})

		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("surfaces store failures", func(t *testing.T) {
		fx := createTestOrderService(t)
		fx.idempotency.EXPECT().Reserve(ctx, key).Return(false, errors.New("redis down")).Once()

		_, err := fx.service.Pay(ctx, userID, usecase.PayInput{Amount: amount, IdempotencyKey: "abc"})

		require.Error(t, err)
		assert.Equal(t, []string{"order.pay/error"}, fx.metrics.observations())
	})
}
