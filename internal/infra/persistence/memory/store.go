// Package memory implements the persistence ports in process memory. Every
// transaction holds the store lock for its whole duration, so transactions are
// serializable, and a failed transaction restores the snapshot taken at its start.
//
// Taking that snapshot deep-copies the whole dataset, so each transaction costs
// O(rows in the store) and all writers queue on one mutex. The store backs the
// develop environment and tests. Production traffic belongs on postgres.
package memory

import (
	"context"
	"sync"

	"shop/internal/domain/entity"
	"shop/internal/domain/repository"

	"github.com/google/uuid"
)

// dataset is the full state of the store.
type dataset struct {
	users     map[uuid.UUID]*entity.User
	products  map[uuid.UUID]*entity.Product
	addresses []*entity.ShippingAddress
	cart      []*entity.CartItem
	orders    []*entity.Order
	promos    map[string]*entity.PromoCode
	wallets   map[uuid.UUID]*entity.Wallet
	reviews   []*entity.Review
	likes     []*entity.Like
	favorites []*entity.Favorite
}

func newDataset() *dataset {
	return &dataset{
		users:    make(map[uuid.UUID]*entity.User),
		products: make(map[uuid.UUID]*entity.Product),
		promos:   make(map[string]*entity.PromoCode),
		wallets:  make(map[uuid.UUID]*entity.Wallet),
	}
}

func (d *dataset) clone() *dataset {
	c := &dataset{
		users:     cloneMap(d.users),
		products:  cloneMap(d.products),
		addresses: cloneSlice(d.addresses),
		cart:      cloneSlice(d.cart),
		orders:    cloneSlice(d.orders),
		promos:    cloneMap(d.promos),
		wallets:   cloneMap(d.wallets),
		reviews:   cloneSlice(d.reviews),
		likes:     cloneSlice(d.likes),
		favorites: cloneSlice(d.favorites),
	}

	return c
}

func cloneMap[K comparable, V any](m map[K]*V) map[K]*V {
	out := make(map[K]*V, len(m))
	for k, v := range m {
		out[k] = clonePtr(v)
	}

	return out
}

func cloneSlice[V any](s []*V) []*V {
	out := make([]*V, 0, len(s))
	for _, v := range s {
		out = append(out, clonePtr(v))
	}

	return out
}

func clonePtr[V any](v *V) *V {
	cp := *v

	return &cp
}

// Store is an in-memory database shared by every repository it hands out.
type Store struct {
	mu   sync.Mutex
	data *dataset
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{data: newDataset()}
}

// with runs fn against the live dataset, taking the lock unless the caller
// already holds it through a transaction.
func (s *Store) with(locked bool, fn func(d *dataset)) {
	if !locked {
		s.mu.Lock()
		defer s.mu.Unlock()
	}
	fn(s.data)
}

// SeedProducts adds catalog entries. The ordering core never writes products,
// so this is the only way to populate the catalog.
func (s *Store) SeedProducts(products ...*entity.Product) {
	s.with(false, func(d *dataset) {
		for _, p := range products {
			d.products[p.ID] = clonePtr(p)
		}
	})
}

// SeedPromoCodes adds promo codes keyed by their code.
func (s *Store) SeedPromoCodes(promos ...*entity.PromoCode) {
	s.with(false, func(d *dataset) {
		for _, p := range promos {
			d.promos[p.Code] = clonePtr(p)
		}
	})
}

type transactionManager struct {
	store *Store
}

// NewTransactionManager returns a TransactionManager over the store.
func NewTransactionManager(store *Store) repository.TransactionManager {
	return &transactionManager{store: store}
}

// Execute runs fn with exclusive access to the store and rolls back on error or panic.
func (tm *transactionManager) Execute(ctx context.Context, fn func(txRepoFactory repository.RepositoryFactory) error) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	tm.store.mu.Lock()
	defer tm.store.mu.Unlock()

	snapshot := tm.store.data.clone()
	defer func() {
		if r := recover(); r != nil {
			tm.store.data = snapshot
			panic(r)
		}
	}()

	if err = fn(&repositoryFactory{store: tm.store, locked: true}); err != nil {
		tm.store.data = snapshot

		return err
	}

	return nil
}

type repositoryFactory struct {
	store  *Store
	locked bool
}

// NewRepositoryFactory returns repositories that lock the store per call.
func NewRepositoryFactory(store *Store) repository.RepositoryFactory {
	return &repositoryFactory{store: store}
}

func (f *repositoryFactory) UserRepo() repository.UserRepository {
	return &userRepository{store: f.store, locked: f.locked}
}

func (f *repositoryFactory) ProductRepo() repository.ProductRepository {
	return &productRepository{store: f.store, locked: f.locked}
}

func (f *repositoryFactory) AddressRepo() repository.AddressRepository {
	return &addressRepository{store: f.store, locked: f.locked}
}

func (f *repositoryFactory) CartRepo() repository.CartRepository {
	return &cartRepository{store: f.store, locked: f.locked}
}

func (f *repositoryFactory) OrderRepo() repository.OrderRepository {
	return &orderRepository{store: f.store, locked: f.locked}
}

func (f *repositoryFactory) PromoCodeRepo() repository.PromoCodeRepository {
	return &promoCodeRepository{store: f.store, locked: f.locked}
}

func (f *repositoryFactory) WalletRepo() repository.WalletRepository {
	return &walletRepository{store: f.store, locked: f.locked}
}

func (f *repositoryFactory) ReviewRepo() repository.ReviewRepository {
	return &reviewRepository{store: f.store, locked: f.locked}
}

func (f *repositoryFactory) FavoriteRepo() repository.FavoriteRepository {
	return &favoriteRepository{store: f.store, locked: f.locked}
}
