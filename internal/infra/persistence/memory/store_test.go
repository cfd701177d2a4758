package memory

import (
	"context"
	"testing"
	"time"

	"shop/internal/domain/entity"
	"shop/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSeededStore(t *testing.T) (*Store, uuid.UUID, *entity.PromoCode) {
	t.Helper()

	store := NewStore()
	userID := uuid.New()
	now := time.Now()
	promo := &entity.PromoCode{
		ID:                 uuid.New(),
		Code:               "SAVE10",
		DiscountPercentage: decimal.NewFromInt(10),
		StartTime:          now.Add(-time.Hour),
		EndTime:            now.Add(time.Hour),
		MaxUsage:           1,
	}
	store.SeedPromoCodes(promo)

	created, err := NewRepositoryFactory(store).WalletRepo().CreateWalletIfAbsent(context.Background(), &entity.Wallet{
		ID:     uuid.New(),
		UserID: userID,
		Cash:   decimal.NewFromInt(100),
	})
	require.NoError(t, err)
	require.True(t, created)

	return store, userID, promo
}

func TestTransactionManager_RollsBackOnError(t *testing.T) {
	store, userID, promo := newSeededStore(t)
	ctx := context.Background()
	boom := errors.New("boom")

	err := NewTransactionManager(store).Execute(ctx, func(f repository.RepositoryFactory) error {
		if _, err := f.WalletRepo().Debit(ctx, userID, decimal.NewFromInt(40)); err != nil {
			return err
		}
		if err := f.PromoCodeRepo().IncrementUsage(ctx, promo.ID); err != nil {
			return err
		}

		return boom
	})

	require.ErrorIs(t, err, boom)

	repos := NewRepositoryFactory(store)
	wallet, err := repos.WalletRepo().FindWalletByUser(ctx, userID)
	require.NoError(t, err)
	assert.True(t, wallet.Cash.Equal(decimal.NewFromInt(100)))

	stored, err := repos.PromoCodeRepo().FindPromoCodeByCode(ctx, promo.Code)
	require.NoError(t, err)
	assert.Equal(t, 0, stored.CurrentUsage)
}

func TestTransactionManager_RollsBackOnPanic(t *testing.T) {
	store, userID, _ := newSeededStore(t)
	ctx := context.Background()

	assert.Panics(t, func() {
		_ = NewTransactionManager(store).Execute(ctx, func(f repository.RepositoryFactory) error {
			_, _ = f.WalletRepo().Debit(ctx, userID, decimal.NewFromInt(40))
			panic("boom")
		})
	})

	wallet, err := NewRepositoryFactory(store).WalletRepo().FindWalletByUser(ctx, userID)
	require.NoError(t, err)
	assert.True(t, wallet.Cash.Equal(decimal.NewFromInt(100)))
}

func TestTransactionManager_CommitsOnSuccess(t *testing.T) {
	store, userID, promo := newSeededStore(t)
	ctx := context.Background()

	err := NewTransactionManager(store).Execute(ctx, func(f repository.RepositoryFactory) error {
		if _, err := f.WalletRepo().Debit(ctx, userID, decimal.NewFromInt(40)); err != nil {
			return err
		}

		return f.PromoCodeRepo().IncrementUsage(ctx, promo.ID)
	})
	require.NoError(t, err)

	repos := NewRepositoryFactory(store)
	wallet, err := repos.WalletRepo().FindWalletByUser(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, "60", wallet.Cash.String())

	stored, err := repos.PromoCodeRepo().FindPromoCodeByCode(ctx, promo.Code)
	require.NoError(t, err)
	assert.Equal(t, 1, stored.CurrentUsage)
}

func TestTransactionManager_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	err := NewTransactionManager(NewStore()).Execute(ctx, func(repository.RepositoryFactory) error {
		called = true

		return nil
	})

	require.ErrorIs(t, err, context.Canceled)
	assert.False(t, called)
}

func TestPromoCodeRepository_IncrementUsageStopsAtCap(t *testing.T) {
	store, _, promo := newSeededStore(t)
	repo := NewRepositoryFactory(store).PromoCodeRepo()
	ctx := context.Background()

	require.NoError(t, repo.IncrementUsage(ctx, promo.ID))
	require.ErrorIs(t, repo.IncrementUsage(ctx, promo.ID), repository.ErrPromoCodeUsageExhausted)
	require.ErrorIs(t, repo.IncrementUsage(ctx, uuid.New()), repository.ErrPromoCodeNotFound)
}

func TestWalletRepository(t *testing.T) {
	store, userID, _ := newSeededStore(t)
	repo := NewRepositoryFactory(store).WalletRepo()
	ctx := context.Background()

	created, err := repo.CreateWalletIfAbsent(ctx, &entity.Wallet{ID: uuid.New(), UserID: userID, Cash: decimal.NewFromInt(5)})
	require.NoError(t, err)
	assert.False(t, created)

	_, err = repo.Debit(ctx, userID, decimal.NewFromInt(101))
	require.ErrorIs(t, err, repository.ErrInsufficientFunds)

	balance, err := repo.Debit(ctx, userID, decimal.NewFromInt(100))
	require.NoError(t, err)
	assert.True(t, balance.IsZero())

	_, err = repo.Debit(ctx, uuid.New(), decimal.NewFromInt(1))
	require.ErrorIs(t, err, repository.ErrWalletNotFound)
}

func TestCartRepository_DrainCartOnlyTouchesOwner(t *testing.T) {
	store := NewStore()
	repo := NewRepositoryFactory(store).CartRepo()
	ctx := context.Background()
	owner, other, product := uuid.New(), uuid.New(), uuid.New()

	require.NoError(t, repo.CreateCartItem(ctx, &entity.CartItem{ID: uuid.New(), UserID: owner, ProductID: product, Quantity: 2}))
	require.NoError(t, repo.CreateCartItem(ctx, &entity.CartItem{ID: uuid.New(), UserID: other, ProductID: product, Quantity: 1}))
	require.ErrorIs(t,
		repo.CreateCartItem(ctx, &entity.CartItem{ID: uuid.New(), UserID: owner, ProductID: product, Quantity: 5}),
		repository.ErrCartItemAlreadyExists,
	)

	drained, err := repo.DrainCart(ctx, owner)
	require.NoError(t, err)
	require.Len(t, drained, 1)
	assert.Equal(t, 2, drained[0].Quantity)

	left, err := repo.FindCartItemsByUser(ctx, owner)
	require.NoError(t, err)
	assert.Empty(t, left)

	kept, err := repo.FindCartItemsByUser(ctx, other)
	require.NoError(t, err)
	assert.Len(t, kept, 1)
}

func TestReviewRepository_LikesAreIdempotent(t *testing.T) {
	repo := NewRepositoryFactory(NewStore()).ReviewRepo()
	ctx := context.Background()
	userID, productID := uuid.New(), uuid.New()

	like := &entity.Like{ID: uuid.New(), UserID: userID, ProductID: productID}
	require.NoError(t, repo.UpsertLike(ctx, like))
	require.NoError(t, repo.UpsertLike(ctx, like))

	count, err := repo.CountLikes(ctx, productID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	require.NoError(t, repo.DeleteLike(ctx, userID, productID))
	require.NoError(t, repo.DeleteLike(ctx, userID, productID))

	count, err = repo.CountLikes(ctx, productID)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestFavoriteRepository_AddAndDelete(t *testing.T) {
	repo := NewRepositoryFactory(NewStore()).FavoriteRepo()
	ctx := context.Background()
	userID, first, second := uuid.New(), uuid.New(), uuid.New()

	created, err := repo.AddFavorite(ctx, &entity.Favorite{ID: uuid.New(), UserID: userID, ProductID: first})
	require.NoError(t, err)
	assert.True(t, created)
	created, err = repo.AddFavorite(ctx, &entity.Favorite{ID: uuid.New(), UserID: userID, ProductID: first})
	require.NoError(t, err)
	assert.False(t, created)
	_, err = repo.AddFavorite(ctx, &entity.Favorite{ID: uuid.New(), UserID: userID, ProductID: second})
	require.NoError(t, err)
	_, err = repo.AddFavorite(ctx, &entity.Favorite{ID: uuid.New(), UserID: uuid.New(), ProductID: first})
	require.NoError(t, err)

	favorites, err := repo.FindFavoritesByUser(ctx, userID)
	require.NoError(t, err)
	require.Len(t, favorites, 2)
	assert.Equal(t, first, favorites[0].ProductID)

	removed, err := repo.DeleteFavorite(ctx, userID, first)
	require.NoError(t, err)
	assert.True(t, removed)
	removed, err = repo.DeleteFavorite(ctx, userID, first)
	require.NoError(t, err)
	assert.False(t, removed)

	favorites, err = repo.FindFavoritesByUser(ctx, userID)
	require.NoError(t, err)
	require.Len(t, favorites, 1)
	assert.Equal(t, second, favorites[0].ProductID)
}

func TestAddressRepository_UpdateAndDeleteAreOwnerScoped(t *testing.T) {
	factory := NewRepositoryFactory(NewStore())
	repo := factory.AddressRepo()
	ctx := context.Background()
	owner := uuid.New()
	createdAt := time.Now().Add(-time.Hour)

	address := &entity.ShippingAddress{ID: uuid.New(), UserID: owner, City: "Paris", CreatedAt: createdAt}
	require.NoError(t, repo.CreateShippingAddress(ctx, address))

	stranger := *address
	stranger.UserID = uuid.New()
	stranger.City = "Berlin"
	assert.ErrorIs(t, repo.UpdateShippingAddress(ctx, &stranger), repository.ErrShippingAddressNotFound)
	assert.ErrorIs(t, repo.DeleteShippingAddress(ctx, stranger.UserID, address.ID), repository.ErrShippingAddressNotFound)

	moved := *address
	moved.City = "Lyon"
	moved.CreatedAt = time.Time{}
	require.NoError(t, repo.UpdateShippingAddress(ctx, &moved))

	stored, err := repo.FindShippingAddressByUser(ctx, owner)
	require.NoError(t, err)
	assert.Equal(t, "Lyon", stored.City)
	assert.True(t, createdAt.Equal(stored.CreatedAt))

	require.NoError(t, factory.OrderRepo().CreateOrders(ctx, []*entity.Order{{ID: uuid.New(), UserID: owner, ShippingAddressID: address.ID}}))
	assert.ErrorIs(t, repo.DeleteShippingAddress(ctx, owner, address.ID), repository.ErrShippingAddressInUse)
}

func TestUserRepository_UpdatePassword(t *testing.T) {
	repo := NewRepositoryFactory(NewStore()).UserRepo()
	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "a@example.com", PasswordHash: "old"}
	require.NoError(t, repo.Create(ctx, user))

	require.NoError(t, repo.UpdatePassword(ctx, user.ID, "new"))
	stored, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "new", stored.PasswordHash)

	assert.ErrorIs(t, repo.UpdatePassword(ctx, uuid.New(), "x"), repository.ErrUserNotFound)
}

func TestReturnedEntitiesAreCopies(t *testing.T) {
	store, userID, _ := newSeededStore(t)
	repo := NewRepositoryFactory(store).WalletRepo()
	ctx := context.Background()

	wallet, err := repo.FindWalletByUser(ctx, userID)
	require.NoError(t, err)
	wallet.Cash = decimal.Zero

	again, err := repo.FindWalletByUser(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, "100", again.Cash.String())
}

func TestSeedDemoCatalog(t *testing.T) {
	store := NewStore()
	SeedDemoCatalog(store, time.Now())

	product, err := NewRepositoryFactory(store).ProductRepo().FindProductByID(
		context.Background(), uuid.MustParse("5f1c3a52-7a8e-4a55-8d9e-1a2b3c4d0001"))
	require.NoError(t, err)
	assert.Equal(t, "Espresso beans 1kg", product.Name)
}
