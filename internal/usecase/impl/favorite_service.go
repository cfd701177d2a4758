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

type favoriteService struct {
	favoriteRepo repository.FavoriteRepository
	productRepo  repository.ProductRepository
	logger       *slog.Logger
}

// FavoriteServiceParams holds dependencies for FavoriteService, injected by Fx.
type FavoriteServiceParams struct {
	fx.In

	FavoriteRepo repository.FavoriteRepository
	ProductRepo  repository.ProductRepository
	Logger       *slog.Logger
}

// NewFavoriteService builds the wishlist usecase.
func NewFavoriteService(params FavoriteServiceParams) usecase.FavoriteUsecase {
	return &favoriteService{
		favoriteRepo: params.FavoriteRepo,
		productRepo:  params.ProductRepo,
		logger:       params.Logger,
	}
}

// ToggleFavorite tries the delete first so removing a delisted product still works.
func (srv *favoriteService) ToggleFavorite(ctx context.Context, userID, productID uuid.UUID) (bool, error) {
	removed, err := srv.favoriteRepo.DeleteFavorite(ctx, userID, productID)
	if err != nil {
		return false, errors.Wrap(err, "failed to remove favourite")
	}
	if removed {
		scopedLogger(ctx, srv.logger).Debug("Favourite removed", slog.Any("userID", userID), slog.Any("productID", productID))

		return false, nil
	}

	if _, err := srv.productRepo.FindProductByID(ctx, productID); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return false, errors.Wrap(domainerrors.ErrProductNotFound, productID.String())
		}

		return false, errors.Wrap(err, "failed to resolve product")
	}

	_, err = srv.favoriteRepo.AddFavorite(ctx, &entity.Favorite{
		ID:        uuid.New(),
		UserID:    userID,
		ProductID: productID,
		CreatedAt: time.Now(),
	})
	if err != nil {
		return false, errors.Wrap(err, "failed to add favourite")
	}

	scopedLogger(ctx, srv.logger).Debug("Favourite added", slog.Any("userID", userID), slog.Any("productID", productID))

	return true, nil
}

// ListFavorites joins the favourites with the catalog. Products that left the
// catalog are skipped.
func (srv *favoriteService) ListFavorites(ctx context.Context, userID uuid.UUID) ([]*entity.Product, error) {
	favorites, err := srv.favoriteRepo.FindFavoritesByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list favourites")
	}
	if len(favorites) == 0 {
		return []*entity.Product{}, nil
	}

	ids := make([]uuid.UUID, 0, len(favorites))
	for _, f := range favorites {
		ids = append(ids, f.ProductID)
	}

	found, err := srv.productRepo.FindProductsByIDs(ctx, ids)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load favourite products")
	}
	byID := make(map[uuid.UUID]*entity.Product, len(found))
	for _, p := range found {
		byID[p.ID] = p
	}

	products := make([]*entity.Product, 0, len(favorites))
	for _, f := range favorites {
		if p, ok := byID[f.ProductID]; ok {
			products = append(products, p)
		}
	}

	return products, nil
}
