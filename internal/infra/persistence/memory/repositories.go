package memory

import (
	"context"
	"slices"
	"time"

	"shop/internal/domain/entity"
	"shop/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type userRepository struct {
	store  *Store
	locked bool
}

func (r *userRepository) FindByID(_ context.Context, id uuid.UUID) (user *entity.User, err error) {
	r.store.with(r.locked, func(d *dataset) {
		u, ok := d.users[id]
		if !ok {
			err = repository.ErrUserNotFound

			return
		}
		user = clonePtr(u)
	})

	return user, err
}

func (r *userRepository) FindByEmail(_ context.Context, email string) (user *entity.User, err error) {
	err = repository.ErrUserNotFound
	r.store.with(r.locked, func(d *dataset) {
		for _, u := range d.users {
			if u.Email == email {
				user, err = clonePtr(u), nil

				return
			}
		}
	})

	return user, err
}

func (r *userRepository) Create(_ context.Context, user *entity.User) (err error) {
	r.store.with(r.locked, func(d *dataset) {
		for _, u := range d.users {
			if u.Email == user.Email {
				err = repository.ErrUserAlreadyExists

				return
			}
		}
		d.users[user.ID] = clonePtr(user)
	})

	return err
}

func (r *userRepository) UpdatePassword(_ context.Context, id uuid.UUID, passwordHash string) (err error) {
	r.store.with(r.locked, func(d *dataset) {
		u, ok := d.users[id]
		if !ok {
			err = repository.ErrUserNotFound

			return
		}
		u.PasswordHash = passwordHash
		u.UpdatedAt = time.Now()
	})

	return err
}

type productRepository struct {
	store  *Store
	locked bool
}

func (r *productRepository) FindProductByID(_ context.Context, id uuid.UUID) (product *entity.Product, err error) {
	r.store.with(r.locked, func(d *dataset) {
		p, ok := d.products[id]
		if !ok {
			err = repository.ErrProductNotFound

			return
		}
		product = clonePtr(p)
	})

	return product, err
}

func (r *productRepository) FindProductsByIDs(_ context.Context, ids []uuid.UUID) ([]*entity.Product, error) {
	products := make([]*entity.Product, 0, len(ids))
	r.store.with(r.locked, func(d *dataset) {
		for _, id := range ids {
			if p, ok := d.products[id]; ok {
				products = append(products, clonePtr(p))
			}
		}
	})

	return products, nil
}

type addressRepository struct {
	store  *Store
	locked bool
}

func (r *addressRepository) CreateShippingAddress(_ context.Context, address *entity.ShippingAddress) error {
	r.store.with(r.locked, func(d *dataset) {
		d.addresses = append(d.addresses, clonePtr(address))
	})

	return nil
}

func (r *addressRepository) FindShippingAddressByUser(ctx context.Context, userID uuid.UUID) (*entity.ShippingAddress, error) {
	addresses, _ := r.FindShippingAddressesByUser(ctx, userID)
	if len(addresses) == 0 {
		return nil, repository.ErrShippingAddressNotFound
	}

	return addresses[0], nil
}

func (r *addressRepository) FindShippingAddressesByUser(_ context.Context, userID uuid.UUID) ([]*entity.ShippingAddress, error) {
	var addresses []*entity.ShippingAddress
	r.store.with(r.locked, func(d *dataset) {
		for _, a := range d.addresses {
			if a.UserID == userID {
				addresses = append(addresses, clonePtr(a))
			}
		}
	})

	return addresses, nil
}

func (r *addressRepository) UpdateShippingAddress(_ context.Context, address *entity.ShippingAddress) (err error) {
	r.store.with(r.locked, func(d *dataset) {
		i := slices.IndexFunc(d.addresses, func(a *entity.ShippingAddress) bool {
			return a.ID == address.ID && a.UserID == address.UserID
		})
		if i < 0 {
			err = repository.ErrShippingAddressNotFound

			return
		}
		updated := clonePtr(address)
		updated.CreatedAt = d.addresses[i].CreatedAt
		d.addresses[i] = updated
	})

	return err
}

func (r *addressRepository) DeleteShippingAddress(_ context.Context, userID, addressID uuid.UUID) (err error) {
	r.store.with(r.locked, func(d *dataset) {
		i := slices.IndexFunc(d.addresses, func(a *entity.ShippingAddress) bool {
			return a.ID == addressID && a.UserID == userID
		})
		if i < 0 {
			err = repository.ErrShippingAddressNotFound

			return
		}
		if slices.ContainsFunc(d.orders, func(o *entity.Order) bool { return o.ShippingAddressID == addressID }) {
			err = repository.ErrShippingAddressInUse

			return
		}
		d.addresses = slices.Delete(d.addresses, i, i+1)
	})

	return err
}

type cartRepository struct {
	store  *Store
	locked bool
}

func cartIndex(d *dataset, userID, productID uuid.UUID) int {
	return slices.IndexFunc(d.cart, func(c *entity.CartItem) bool {
		return c.UserID == userID && c.ProductID == productID
	})
}

func (r *cartRepository) CreateCartItem(_ context.Context, item *entity.CartItem) (err error) {
	r.store.with(r.locked, func(d *dataset) {
		if cartIndex(d, item.UserID, item.ProductID) >= 0 {
			err = repository.ErrCartItemAlreadyExists

			return
		}
		d.cart = append(d.cart, clonePtr(item))
	})

	return err
}

func (r *cartRepository) UpdateCartItemQuantity(_ context.Context, userID, productID uuid.UUID, quantity int) (err error) {
	r.store.with(r.locked, func(d *dataset) {
		i := cartIndex(d, userID, productID)
		if i < 0 {
			err = repository.ErrCartItemNotFound

			return
		}
		d.cart[i].Quantity = quantity
		d.cart[i].UpdatedAt = time.Now()
	})

	return err
}

func (r *cartRepository) DeleteCartItem(_ context.Context, userID, productID uuid.UUID) (err error) {
	r.store.with(r.locked, func(d *dataset) {
		i := cartIndex(d, userID, productID)
		if i < 0 {
			err = repository.ErrCartItemNotFound

			return
		}
		d.cart = slices.Delete(d.cart, i, i+1)
	})

	return err
}

func (r *cartRepository) FindCartItemsByUser(_ context.Context, userID uuid.UUID) ([]*entity.CartItem, error) {
	var items []*entity.CartItem
	r.store.with(r.locked, func(d *dataset) {
		for _, c := range d.cart {
			if c.UserID == userID {
				items = append(items, clonePtr(c))
			}
		}
	})

	return items, nil
}

func (r *cartRepository) DrainCart(_ context.Context, userID uuid.UUID) ([]*entity.CartItem, error) {
	var drained []*entity.CartItem
	r.store.with(r.locked, func(d *dataset) {
		kept := d.cart[:0:0]
		for _, c := range d.cart {
			if c.UserID == userID {
				drained = append(drained, c)
			} else {
				kept = append(kept, c)
			}
		}
		d.cart = kept
	})

	return drained, nil
}

type orderRepository struct {
	store  *Store
	locked bool
}

func (r *orderRepository) CreateOrders(_ context.Context, orders []*entity.Order) error {
	r.store.with(r.locked, func(d *dataset) {
		for _, o := range orders {
			d.orders = append(d.orders, clonePtr(o))
		}
	})

	return nil
}

func (r *orderRepository) FindOrdersByUser(_ context.Context, userID uuid.UUID) ([]*entity.Order, error) {
	return r.filter(func(o *entity.Order) bool { return o.UserID == userID }), nil
}

func (r *orderRepository) FindOrdersByUserAndProduct(_ context.Context, userID, productID uuid.UUID) ([]*entity.Order, error) {
	return r.filter(func(o *entity.Order) bool { return o.UserID == userID && o.ProductID == productID }), nil
}

func (r *orderRepository) CompleteOrders(_ context.Context, userID, productID uuid.UUID, now time.Time) (int64, error) {
	var changed int64
	r.store.with(r.locked, func(d *dataset) {
		for _, o := range d.orders {
			if o.UserID == userID && o.ProductID == productID && o.Complete(now) {
				changed++
			}
		}
	})

	return changed, nil
}

func (r *orderRepository) filter(keep func(o *entity.Order) bool) []*entity.Order {
	var orders []*entity.Order
	r.store.with(r.locked, func(d *dataset) {
		for _, o := range d.orders {
			if keep(o) {
				orders = append(orders, clonePtr(o))
			}
		}
	})

	return orders
}

type promoCodeRepository struct {
	store  *Store
	locked bool
}

func (r *promoCodeRepository) FindPromoCodeByCode(_ context.Context, code string) (promo *entity.PromoCode, err error) {
	r.store.with(r.locked, func(d *dataset) {
		p, ok := d.promos[code]
		if !ok {
			err = repository.ErrPromoCodeNotFound

			return
		}
		promo = clonePtr(p)
	})

	return promo, err
}

// FindPromoCodeByCodeForUpdate needs no row lock: a transaction already owns the whole store.
func (r *promoCodeRepository) FindPromoCodeByCodeForUpdate(ctx context.Context, code string) (*entity.PromoCode, error) {
	return r.FindPromoCodeByCode(ctx, code)
}

func (r *promoCodeRepository) IncrementUsage(_ context.Context, id uuid.UUID) (err error) {
	err = repository.ErrPromoCodeNotFound
	r.store.with(r.locked, func(d *dataset) {
		for _, p := range d.promos {
			if p.ID != id {
				continue
			}
			if p.CurrentUsage >= p.MaxUsage {
				err = repository.ErrPromoCodeUsageExhausted

				return
			}
			p.CurrentUsage++
			p.UpdatedAt = time.Now()
			err = nil

			return
		}
	})

	return err
}

type walletRepository struct {
	store  *Store
	locked bool
}

func (r *walletRepository) FindWalletByUser(_ context.Context, userID uuid.UUID) (wallet *entity.Wallet, err error) {
	r.store.with(r.locked, func(d *dataset) {
		w, ok := d.wallets[userID]
		if !ok {
			err = repository.ErrWalletNotFound

			return
		}
		wallet = clonePtr(w)
	})

	return wallet, err
}

func (r *walletRepository) FindWalletByUserForUpdate(ctx context.Context, userID uuid.UUID) (*entity.Wallet, error) {
	return r.FindWalletByUser(ctx, userID)
}

func (r *walletRepository) CreateWalletIfAbsent(_ context.Context, wallet *entity.Wallet) (created bool, err error) {
	r.store.with(r.locked, func(d *dataset) {
		if _, ok := d.wallets[wallet.UserID]; ok {
			return
		}
		d.wallets[wallet.UserID] = clonePtr(wallet)
		created = true
	})

	return created, nil
}

func (r *walletRepository) Debit(_ context.Context, userID uuid.UUID, amount decimal.Decimal) (balance decimal.Decimal, err error) {
	r.store.with(r.locked, func(d *dataset) {
		w, ok := d.wallets[userID]
		if !ok {
			err = repository.ErrWalletNotFound

			return
		}
		if w.Cash.LessThan(amount) {
			err = repository.ErrInsufficientFunds

			return
		}
		w.Cash = w.Cash.Sub(amount)
		w.UpdatedAt = time.Now()
		balance = w.Cash
	})

	return balance, err
}

type reviewRepository struct {
	store  *Store
	locked bool
}

func reviewIndex(d *dataset, userID, productID uuid.UUID) int {
	return slices.IndexFunc(d.reviews, func(rv *entity.Review) bool {
		return rv.UserID == userID && rv.ProductID == productID
	})
}

func likeIndex(d *dataset, userID, productID uuid.UUID) int {
	return slices.IndexFunc(d.likes, func(l *entity.Like) bool {
		return l.UserID == userID && l.ProductID == productID
	})
}

func (r *reviewRepository) CreateReview(_ context.Context, review *entity.Review) (err error) {
	r.store.with(r.locked, func(d *dataset) {
		if reviewIndex(d, review.UserID, review.ProductID) >= 0 {
			err = repository.ErrReviewAlreadyExists

			return
		}
		d.reviews = append(d.reviews, clonePtr(review))
	})

	return err
}

func (r *reviewRepository) FindReview(_ context.Context, userID, productID uuid.UUID) (review *entity.Review, err error) {
	r.store.with(r.locked, func(d *dataset) {
		i := reviewIndex(d, userID, productID)
		if i < 0 {
			err = repository.ErrReviewNotFound

			return
		}
		review = clonePtr(d.reviews[i])
	})

	return review, err
}

func (r *reviewRepository) UpdateReview(_ context.Context, review *entity.Review) (err error) {
	r.store.with(r.locked, func(d *dataset) {
		i := reviewIndex(d, review.UserID, review.ProductID)
		if i < 0 {
			err = repository.ErrReviewNotFound

			return
		}
		d.reviews[i] = clonePtr(review)
	})

	return err
}

func (r *reviewRepository) DeleteReview(_ context.Context, userID, productID uuid.UUID) (err error) {
	r.store.with(r.locked, func(d *dataset) {
		i := reviewIndex(d, userID, productID)
		if i < 0 {
			err = repository.ErrReviewNotFound

			return
		}
		d.reviews = slices.Delete(d.reviews, i, i+1)
	})

	return err
}

func (r *reviewRepository) FindReviewsByProduct(_ context.Context, productID uuid.UUID) ([]*entity.Review, error) {
	var reviews []*entity.Review
	r.store.with(r.locked, func(d *dataset) {
		for _, rv := range d.reviews {
			if rv.ProductID == productID {
				reviews = append(reviews, clonePtr(rv))
			}
		}
	})

	return reviews, nil
}

func (r *reviewRepository) UpsertLike(_ context.Context, like *entity.Like) error {
	r.store.with(r.locked, func(d *dataset) {
		if likeIndex(d, like.UserID, like.ProductID) >= 0 {
			return
		}
		d.likes = append(d.likes, clonePtr(like))
	})

	return nil
}

func (r *reviewRepository) DeleteLike(_ context.Context, userID, productID uuid.UUID) error {
	r.store.with(r.locked, func(d *dataset) {
		if i := likeIndex(d, userID, productID); i >= 0 {
			d.likes = slices.Delete(d.likes, i, i+1)
		}
	})

	return nil
}

func (r *reviewRepository) CountLikes(_ context.Context, productID uuid.UUID) (int64, error) {
	var count int64
	r.store.with(r.locked, func(d *dataset) {
		for _, l := range d.likes {
			if l.ProductID == productID {
				count++
			}
		}
	})

	return count, nil
}

type favoriteRepository struct {
	store  *Store
	locked bool
}

func favoriteIndex(d *dataset, userID, productID uuid.UUID) int {
	return slices.IndexFunc(d.favorites, func(f *entity.Favorite) bool {
		return f.UserID == userID && f.ProductID == productID
	})
}

func (r *favoriteRepository) AddFavorite(_ context.Context, favorite *entity.Favorite) (created bool, err error) {
	r.store.with(r.locked, func(d *dataset) {
		if favoriteIndex(d, favorite.UserID, favorite.ProductID) >= 0 {
			return
		}
		d.favorites = append(d.favorites, clonePtr(favorite))
		created = true
	})

	return created, nil
}

func (r *favoriteRepository) DeleteFavorite(_ context.Context, userID, productID uuid.UUID) (removed bool, err error) {
	r.store.with(r.locked, func(d *dataset) {
		if i := favoriteIndex(d, userID, productID); i >= 0 {
			d.favorites = slices.Delete(d.favorites, i, i+1)
			removed = true
		}
	})

	return removed, nil
}

func (r *favoriteRepository) FindFavoritesByUser(_ context.Context, userID uuid.UUID) ([]*entity.Favorite, error) {
	var favorites []*entity.Favorite
	r.store.with(r.locked, func(d *dataset) {
		for _, f := range d.favorites {
			if f.UserID == userID {
				favorites = append(favorites, clonePtr(f))
			}
		}
	})

	return favorites, nil
}
