package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"shop/internal/domain/entity"
	domainerrors "shop/internal/domain/errors"
	"shop/internal/domain/repository"
	"shop/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type reviewService struct {
	reviewRepo  repository.ReviewRepository
	productRepo repository.ProductRepository
	logger      *slog.Logger
}

// ReviewServiceParams holds dependencies for ReviewService, injected by Fx.
type ReviewServiceParams struct {
	fx.In

	ReviewRepo  repository.ReviewRepository
	ProductRepo repository.ProductRepository
	Logger      *slog.Logger
}

// NewReviewService builds the review and like ledger.
func NewReviewService(params ReviewServiceParams) usecase.ReviewUsecase {
	return &reviewService{
		reviewRepo:  params.ReviewRepo,
		productRepo: params.ProductRepo,
		logger:      params.Logger,
	}
}

func (srv *reviewService) log(ctx context.Context) *slog.Logger {
	return scopedLogger(ctx, srv.logger)
}

// AddReview records the user's single review of a product.
func (srv *reviewService) AddReview(ctx context.Context, userID, productID uuid.UUID, input usecase.AddReviewInput) (*entity.Review, error) {
	comment := strings.TrimSpace(input.Comment)
	if comment == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("comment is required")
	}
	if err := validateStar(input.Star); err != nil {
		return nil, err
	}
	if err := srv.ensureProduct(ctx, productID); err != nil {
		return nil, err
	}

	now := time.Now()
	review := &entity.Review{
		ID:         uuid.New(),
		UserID:     userID,
		ProductID:  productID,
		Comment:    comment,
		Star:       input.Star,
		ReviewedAt: now,
		UpdatedAt:  now,
	}
	if err := srv.reviewRepo.CreateReview(ctx, review); err != nil {
		if errors.Is(err, repository.ErrReviewAlreadyExists) {
			return nil, errors.Wrap(domainerrors.ErrReviewAlreadyExists, productID.String())
		}

		return nil, errors.Wrap(err, "failed to create review")
	}

	srv.log(ctx).Info("Review added", slog.Any("userID", userID), slog.Any("productID", productID))

	return review, nil
}

// UpdateReview applies the provided fields to the user's review.
func (srv *reviewService) UpdateReview(ctx context.Context, userID, productID uuid.UUID, input usecase.UpdateReviewInput) (*entity.Review, error) {
	if input.Comment == nil && input.Star == nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("nothing to update")
	}

	review, err := srv.reviewRepo.FindReview(ctx, userID, productID)
	if errors.Is(err, repository.ErrReviewNotFound) {
		return nil, errors.Wrap(domainerrors.ErrReviewNotFound, productID.String())
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find review")
	}

	if input.Comment != nil {
		comment := strings.TrimSpace(*input.Comment)
		if comment == "" {
			return nil, domainerrors.ErrValidationFailed.WithDetails("comment must not be empty")
		}
		review.Comment = comment
	}
	if input.Star != nil {
		if err := validateStar(*input.Star); err != nil {
			return nil, err
		}
		review.Star = *input.Star
	}
	review.UpdatedAt = time.Now()

	if err := srv.reviewRepo.UpdateReview(ctx, review); err != nil {
		if errors.Is(err, repository.ErrReviewNotFound) {
			return nil, errors.Wrap(domainerrors.ErrReviewNotFound, productID.String())
		}

		return nil, errors.Wrap(err, "failed to update review")
	}

	return review, nil
}

// DeleteReview removes the user's review. Likes are not affected.
func (srv *reviewService) DeleteReview(ctx context.Context, userID, productID uuid.UUID) error {
	if err := srv.reviewRepo.DeleteReview(ctx, userID, productID); err != nil {
		if errors.Is(err, repository.ErrReviewNotFound) {
			return errors.Wrap(domainerrors.ErrReviewNotFound, productID.String())
		}

		return errors.Wrap(err, "failed to delete review")
	}

	return nil
}

// ListProductReviews returns every review of a product, oldest first.
func (srv *reviewService) ListProductReviews(ctx context.Context, productID uuid.UUID) ([]*entity.Review, error) {
	if err := srv.ensureProduct(ctx, productID); err != nil {
		return nil, err
	}

	reviews, err := srv.reviewRepo.FindReviewsByProduct(ctx, productID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list reviews")
	}

	return reviews, nil
}

// Like is idempotent.
func (srv *reviewService) Like(ctx context.Context, userID, productID uuid.UUID) error {
	if err := srv.ensureProduct(ctx, productID); err != nil {
		return err
	}

	like := &entity.Like{
		ID:        uuid.New(),
		UserID:    userID,
		ProductID: productID,
		CreatedAt: time.Now(),
	}
	if err := srv.reviewRepo.UpsertLike(ctx, like); err != nil {
		return errors.Wrap(err, "failed to like product")
	}

	return nil
}

// Unlike is idempotent.
func (srv *reviewService) Unlike(ctx context.Context, userID, productID uuid.UUID) error {
	if err := srv.reviewRepo.DeleteLike(ctx, userID, productID); err != nil {
		return errors.Wrap(err, "failed to unlike product")
	}

	return nil
}

// CountLikes returns how many users like the product.
func (srv *reviewService) CountLikes(ctx context.Context, productID uuid.UUID) (int64, error) {
	count, err := srv.reviewRepo.CountLikes(ctx, productID)
	if err != nil {
		return 0, errors.Wrap(err, "failed to count likes")
	}

	return count, nil
}

func (srv *reviewService) ensureProduct(ctx context.Context, productID uuid.UUID) error {
	if _, err := srv.productRepo.FindProductByID(ctx, productID); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return errors.Wrap(domainerrors.ErrProductNotFound, productID.String())
		}

		return errors.Wrap(err, "failed to resolve product")
	}

	return nil
}

func validateStar(star float64) error {
	if star < entity.MinReviewStar || star > entity.MaxReviewStar {
		return domainerrors.ErrValidationFailed.WithDetails("star must be between 1 and 5")
	}

	return nil
}
