package usecase

import (
	"context"

	"shop/internal/domain/entity"

	"github.com/google/uuid"
)

// AddReviewInput is a new product review.
type AddReviewInput struct {
	Comment string
	Star    float64
}

// UpdateReviewInput changes the provided fields only.
type UpdateReviewInput struct {
	Comment *string
	Star    *float64
}

// ReviewUsecase manages reviews and likes.
type ReviewUsecase interface {
	AddReview(ctx context.Context, userID, productID uuid.UUID, input AddReviewInput) (*entity.Review, error)
	UpdateReview(ctx context.Context, userID, productID uuid.UUID, input UpdateReviewInput) (*entity.Review, error)
	DeleteReview(ctx context.Context, userID, productID uuid.UUID) error
	ListProductReviews(ctx context.Context, productID uuid.UUID) ([]*entity.Review, error)

	Like(ctx context.Context, userID, productID uuid.UUID) error
	Unlike(ctx context.Context, userID, productID uuid.UUID) error
	CountLikes(ctx context.Context, productID uuid.UUID) (int64, error)
}
