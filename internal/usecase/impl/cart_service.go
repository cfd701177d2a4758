package impl

import (
	"context"
	"log/slog"
	"time"

	"shop/internal/domain/entity"
	domainerrors "shop/internal/domain/errors"
	"shop/internal/domain/repository"
	"shop/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type cartService struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
	logger      *slog.Logger
}

// CartServiceParams holds dependencies for CartService, injected by Fx.
type CartServiceParams struct {
	fx.In

	CartRepo    repository.CartRepository
	ProductRepo repository.ProductRepository
	Logger      *slog.Logger
}

// NewCartService builds the cart store.
func NewCartService(params CartServiceParams) usecase.CartUsecase {
	return &cartService{
		cartRepo:    params.CartRepo,
		productRepo: params.ProductRepo,
		logger:      params.Logger,
	}
}

func (srv *cartService) log(ctx context.Context) *slog.Logger {
	return scopedLogger(ctx, srv.logger)
}

// AddItem puts a new product line in the cart. An existing line is left untouched.
func (srv *cartService) AddItem(ctx context.Context, userID, productID uuid.UUID, quantity int) (*entity.CartItem, error) {
	if quantity < 1 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("quantity must be at least 1")
	}

	if _, err := srv.productRepo.FindProductByID(ctx, productID); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, errors.Wrap(domainerrors.ErrProductNotFound, productID.String())
		}

		return nil, errors.Wrap(err, "failed to resolve product")
	}

	now := time.Now()
	item := &entity.CartItem{
		ID:        uuid.New(),
		UserID:    userID,
		ProductID: productID,
		Quantity:  quantity,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := srv.cartRepo.CreateCartItem(ctx, item); err != nil {
		if errors.Is(err, repository.ErrCartItemAlreadyExists) {
			return nil, errors.Wrap(domainerrors.ErrCartItemAlreadyExists, productID.String())
		}

		return nil, errors.Wrap(err, "failed to add cart item")
	}

	srv.log(ctx).Debug("Cart item added", slog.Any("userID", userID), slog.Any("productID", productID), slog.Int("quantity", quantity))

	return item, nil
}

// UpdateQuantity overwrites the quantity of an existing line.
func (srv *cartService) UpdateQuantity(ctx context.Context, userID, productID uuid.UUID, quantity int) error {
	if quantity <= 0 {
		return domainerrors.ErrValidationFailed.WithDetails("quantity must be at least 1")
	}

	if err := srv.cartRepo.UpdateCartItemQuantity(ctx, userID, productID, quantity); err != nil {
		if errors.Is(err, repository.ErrCartItemNotFound) {
			return errors.Wrap(domainerrors.ErrCartItemNotFound, productID.String())
		}

		return errors.Wrap(err, "failed to update cart item")
	}

	return nil
}

// RemoveItem deletes a line from the cart.
func (srv *cartService) RemoveItem(ctx context.Context, userID, productID uuid.UUID) error {
	if err := srv.cartRepo.DeleteCartItem(ctx, userID, productID); err != nil {
		if errors.Is(err, repository.ErrCartItemNotFound) {
			return errors.Wrap(domainerrors.ErrCartItemNotFound, productID.String())
		}

		return errors.Wrap(err, "failed to remove cart item")
	}

	return nil
}

// ListItems prices every line against the catalog. Lines whose product no longer
// exists are skipped.
func (srv *cartService) ListItems(ctx context.Context, userID uuid.UUID) ([]entity.CartLine, error) {
	items, err := srv.cartRepo.FindCartItemsByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list cart items")
	}
	if len(items) == 0 {
		return []entity.CartLine{}, nil
	}

	products, err := productsByID(ctx, srv.productRepo, items)
	if err != nil {
		return nil, err
	}

	lines := make([]entity.CartLine, 0, len(items))
	for _, item := range items {
		product, ok := products[item.ProductID]
		if !ok {
			srv.log(ctx).Warn("Cart references a missing product", slog.Any("userID", userID), slog.Any("productID", item.ProductID))

			continue
		}
		lines = append(lines, entity.NewCartLine(product, item.Quantity))
	}

	return lines, nil
}

// productsByID batch-loads the products referenced by the cart items.
func productsByID(ctx context.Context, productRepo repository.ProductRepository, items []*entity.CartItem) (map[uuid.UUID]*entity.Product, error) {
	ids := make([]uuid.UUID, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ProductID)
	}

	products, err := productRepo.FindProductsByIDs(ctx, ids)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load products")
	}

	byID := make(map[uuid.UUID]*entity.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	return byID, nil
}
