package usecase

import (
	"context"

	"shop/internal/domain/entity"

	"github.com/google/uuid"
)

// FavoriteUsecase manages a user's wishlist of products.
type FavoriteUsecase interface {
	// ToggleFavorite adds the product when absent and removes it otherwise.
	// It reports whether the product is a favourite afterwards.
	ToggleFavorite(ctx context.Context, userID, productID uuid.UUID) (bool, error)
	// ListFavorites returns the favourited products, oldest favourite first.
	ListFavorites(ctx context.Context, userID uuid.UUID) ([]*entity.Product, error)
}
