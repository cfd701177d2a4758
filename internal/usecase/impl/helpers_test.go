package impl

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"shop/config"
	"shop/internal/domain/entity"
	"shop/internal/domain/repository"
	"shop/internal/infra/persistence/memory"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(initialBalance string) *config.Config {
	return &config.Config{
		Auth:   &config.AuthConfig{MinPasswordLength: 8},
		Wallet: &config.WalletConfig{InitialBalance: initialBalance},
	}
}

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time { return c.now }

// recordingMetrics collects every observation as "operation/outcome".
type recordingMetrics struct {
	mu  sync.Mutex
	obs []string
}

func (m *recordingMetrics) ObserveOperation(operation, outcome string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.obs = append(m.obs, operation+"/"+outcome)
}

func (m *recordingMetrics) observations() []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	return append([]string(nil), m.obs...)
}

// memoryBackend is a real in-memory persistence layer used by ledger tests.
type memoryBackend struct {
	store     *memory.Store
	txManager repository.TransactionManager
	repos     repository.RepositoryFactory
}

func newMemoryBackend() *memoryBackend {
	store := memory.NewStore()

	return &memoryBackend{
		store:     store,
		txManager: memory.NewTransactionManager(store),
		repos:     memory.NewRepositoryFactory(store),
	}
}

func (b *memoryBackend) seedProduct(t *testing.T, price string) *entity.Product {
	t.Helper()

	product := &entity.Product{
		ID:        uuid.New(),
		Name:      "product " + price,
		Price:     decimal.RequireFromString(price),
		Quantity:  10,
		CreatedAt: time.Now(),
	}
	b.store.SeedProducts(product)

	return product
}

func (b *memoryBackend) seedPromo(t *testing.T, code string, percentage int64, maxUsage int, start, end time.Time) *entity.PromoCode {
	t.Helper()

	promo := &entity.PromoCode{
		ID:                 uuid.New(),
		Code:               code,
		DiscountPercentage: decimal.NewFromInt(percentage),
		StartTime:          start,
		EndTime:            end,
		MaxUsage:           maxUsage,
	}
	b.store.SeedPromoCodes(promo)

	return promo
}

func (b *memoryBackend) seedWallet(t *testing.T, userID uuid.UUID, cash string) {
	t.Helper()

	created, err := b.repos.WalletRepo().CreateWalletIfAbsent(context.Background(), &entity.Wallet{
		ID:     uuid.New(),
		UserID: userID,
		Cash:   decimal.RequireFromString(cash),
	})
	require.NoError(t, err)
	require.True(t, created)
}

func (b *memoryBackend) seedAddress(t *testing.T, userID uuid.UUID) *entity.ShippingAddress {
	t.Helper()

	address := &entity.ShippingAddress{
		ID:            uuid.New(),
		UserID:        userID,
		PhoneNumber:   "+33123456789",
		PostalCode:    "75001",
		StreetAddress: "Rue de Rivoli",
		HouseNumber:   "12",
		City:          "Paris",
		State:         "IDF",
		Country:       "FR",
	}
	require.NoError(t, b.repos.AddressRepo().CreateShippingAddress(context.Background(), address))

	return address
}

func (b *memoryBackend) seedCartItem(t *testing.T, userID, productID uuid.UUID, quantity int) {
	t.Helper()

	require.NoError(t, b.repos.CartRepo().CreateCartItem(context.Background(), &entity.CartItem{
		ID:        uuid.New(),
		UserID:    userID,
		ProductID: productID,
		Quantity:  quantity,
	}))
}

func (b *memoryBackend) promoUsage(t *testing.T, code string) int {
	t.Helper()

	promo, err := b.repos.PromoCodeRepo().FindPromoCodeByCode(context.Background(), code)
	require.NoError(t, err)

	return promo.CurrentUsage
}

func (b *memoryBackend) balance(t *testing.T, userID uuid.UUID) decimal.Decimal {
	t.Helper()

	wallet, err := b.repos.WalletRepo().FindWalletByUser(context.Background(), userID)
	require.NoError(t, err)

	return wallet.Cash
}
