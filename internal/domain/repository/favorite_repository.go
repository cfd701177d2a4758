package repository

import (
	"context"

	"shop/internal/domain/entity"

	"github.com/google/uuid"
)

// FavoriteRepository stores the products a user has favourited.
type FavoriteRepository interface {
	// AddFavorite inserts the pair and reports whether a new row was written.
	AddFavorite(ctx context.Context, favorite *entity.Favorite) (created bool, err error)

	// DeleteFavorite removes the pair and reports whether a row existed.
	DeleteFavorite(ctx context.Context, userID, productID uuid.UUID) (removed bool, err error)

	// FindFavoritesByUser lists the user's favourites, oldest first.
	FindFavoritesByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Favorite, error)
}
