package repository

import (
	"context"

	"shop/internal/domain/entity"
	"shop/internal/errors"

	"github.com/google/uuid"
)

var (
	// ErrReviewNotFound is returned when the user has not reviewed the product.
	ErrReviewNotFound = errors.New("review not found")
	// ErrReviewAlreadyExists is returned when the user already reviewed the product.
	ErrReviewAlreadyExists = errors.New("review already exists")
)

// ReviewRepository defines review and like persistence, both keyed by (user, product).
type ReviewRepository interface {
	CreateReview(ctx context.Context, review *entity.Review) error
	FindReview(ctx context.Context, userID, productID uuid.UUID) (*entity.Review, error)
	UpdateReview(ctx context.Context, review *entity.Review) error
	DeleteReview(ctx context.Context, userID, productID uuid.UUID) error
	FindReviewsByProduct(ctx context.Context, productID uuid.UUID) ([]*entity.Review, error)

	// UpsertLike records a like; liking twice keeps a single row.
	UpsertLike(ctx context.Context, like *entity.Like) error
	// DeleteLike removes a like if present; removing an absent like is not an error.
	DeleteLike(ctx context.Context, userID, productID uuid.UUID) error
	CountLikes(ctx context.Context, productID uuid.UUID) (int64, error)
}
