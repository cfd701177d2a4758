package postgres

import (
	"context"

	"shop/internal/domain/entity"
	domainerrors "shop/internal/domain/errors"
	"shop/internal/domain/repository"
	"shop/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// reviewRepository implements the repository.ReviewRepository interface.
type reviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository is the constructor for reviewRepository.
func NewReviewRepository(db *gorm.DB) repository.ReviewRepository {
	return &reviewRepository{db: db}
}

func (repo *reviewRepository) CreateReview(ctx context.Context, review *entity.Review) error {
	if err := repo.db.WithContext(ctx).Create(fromReviewDomain(review)).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrReviewAlreadyExists
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create review")
	}

	return nil
}

func (repo *reviewRepository) FindReview(ctx context.Context, userID, productID uuid.UUID) (*entity.Review, error) {
	var reviewM model.ReviewModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		First(&reviewM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrReviewNotFound
		}

		return nil, errors.Wrap(err, "failed to find review")
	}

	return toReviewDomain(&reviewM), nil
}

func (repo *reviewRepository) UpdateReview(ctx context.Context, review *entity.Review) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ReviewModel{}).
		Where("user_id = ? AND product_id = ?", review.UserID, review.ProductID).
		Updates(map[string]any{
			"comment":    review.Comment,
			"star":       review.Star,
			"updated_at": review.UpdatedAt,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update review")
	}
	if result.RowsAffected == 0 {
		return repository.ErrReviewNotFound
	}

	return nil
}

// DeleteReview removes the review row only; likes live in their own table.
func (repo *reviewRepository) DeleteReview(ctx context.Context, userID, productID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Delete(&model.ReviewModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete review")
	}
	if result.RowsAffected == 0 {
		return repository.ErrReviewNotFound
	}

	return nil
}

func (repo *reviewRepository) FindReviewsByProduct(ctx context.Context, productID uuid.UUID) ([]*entity.Review, error) {
	var reviewModels []*model.ReviewModel
	err := repo.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("reviewed_at, id").
		Find(&reviewModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list reviews")
	}

	reviews := make([]*entity.Review, 0, len(reviewModels))
	for _, reviewM := range reviewModels {
		reviews = append(reviews, toReviewDomain(reviewM))
	}

	return reviews, nil
}

// UpsertLike uses INSERT ... ON CONFLICT (user_id, product_id) DO NOTHING.
func (repo *reviewRepository) UpsertLike(ctx context.Context, like *entity.Like) error {
	likeM := &model.LikeModel{
		ID:        like.ID,
		UserID:    like.UserID,
		ProductID: like.ProductID,
		CreatedAt: like.CreatedAt,
	}

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "user_id"}, {Name: "product_id"}}, DoNothing: true}).
		Create(likeM).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to like product")
	}

	return nil
}

func (repo *reviewRepository) DeleteLike(ctx context.Context, userID, productID uuid.UUID) error {
	err := repo.db.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Delete(&model.LikeModel{}).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to unlike product")
	}

	return nil
}

func (repo *reviewRepository) CountLikes(ctx context.Context, productID uuid.UUID) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.LikeModel{}).Where("product_id = ?", productID).Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count likes")
	}

	return count, nil
}

func toReviewDomain(data *model.ReviewModel) *entity.Review {
	return &entity.Review{
		ID:         data.ID,
		UserID:     data.UserID,
		ProductID:  data.ProductID,
		Comment:    data.Comment,
		Star:       data.Star,
		ReviewedAt: data.ReviewedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}

func fromReviewDomain(data *entity.Review) *model.ReviewModel {
	return &model.ReviewModel{
		ID:         data.ID,
		UserID:     data.UserID,
		ProductID:  data.ProductID,
		Comment:    data.Comment,
		Star:       data.Star,
		ReviewedAt: data.ReviewedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}
