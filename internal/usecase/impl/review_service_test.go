package impl

import (
	"context"
	"testing"

	"shop/internal/domain/entity"
	domainerrors "shop/internal/domain/errors"
	"shop/internal/domain/repository"
	mockRepo "shop/internal/mocks/repository"
	"shop/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type reviewServiceFixtures struct {
	service     usecase.ReviewUsecase
	reviewRepo  *mockRepo.MockReviewRepository
	productRepo *mockRepo.MockProductRepository
}

func createTestReviewService(t *testing.T) reviewServiceFixtures {
	reviewRepo := mockRepo.NewMockReviewRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)

	return reviewServiceFixtures{
		service: NewReviewService(ReviewServiceParams{
			ReviewRepo:  reviewRepo,
			ProductRepo: productRepo,
			Logger:      newDiscardLogger(),
		}),
		reviewRepo:  reviewRepo,
		productRepo: productRepo,
	}
}

func ptr[T any](v T) *T { return &v }

func TestReviewService_AddReview(t *testing.T) {
	ctx := context.Background()
	userID, productID := uuid.New(), uuid.New()

	t.Run("success", func(t *testing.T) {
		fx := createTestReviewService(t)
		fx.productRepo.EXPECT().FindProductByID(ctx, productID).Return(&entity.Product{ID: productID}, nil)
		fx.reviewRepo.EXPECT().
			CreateReview(ctx, mock.MatchedBy(func(r *entity.Review) bool {
				return r.Comment == "Great beans" && r.Star == 4.5
			})).
			Return(nil)

		review, err := fx.service.AddReview(ctx, userID, productID, usecase.AddReviewInput{Comment: " Great beans ", Star: 4.5})

		require.NoError(t, err)
		assert.Equal(t, userID, review.UserID)
	})

	t.Run("second review refused", func(t *testing.T) {
		fx := createTestReviewService(t)
		fx.productRepo.EXPECT().FindProductByID(ctx, productID).Return(&entity.Product{ID: productID}, nil)
		fx.reviewRepo.EXPECT().CreateReview(ctx, mock.Anything).Return(repository.ErrReviewAlreadyExists)

		_, err := fx.service.AddReview(ctx, userID, productID, usecase.AddReviewInput{Comment: "Again", Star: 3})

		assert.ErrorIs(t, err, domainerrors.ErrReviewAlreadyExists)
	})

	t.Run("unknown product", func(t *testing.T) {
		fx := createTestReviewService(t)
		fx.productRepo.EXPECT().FindProductByID(ctx, productID).Return(nil, repository.ErrProductNotFound)

		_, err := fx.service.AddReview(ctx, userID, productID, usecase.AddReviewInput{Comment: "Hm", Star: 3})

		assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
	})

	for _, star := range []float64{0, 0.5, 5.5} {
		t.Run("star out of range", func(t *testing.T) {
			fx := createTestReviewService(t)

			_, err := fx.service.AddReview(ctx, userID, productID, usecase.AddReviewInput{Comment: "ok", Star: star})

			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		})
	}

	t.Run("blank comment", func(t *testing.T) {
		fx := createTestReviewService(t)

		_, err := fx.service.AddReview(ctx, userID, productID, usecase.AddReviewInput{Comment: "  ", Star: 3})

		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})
}

func TestReviewService_UpdateReview(t *testing.T) {
	ctx := context.Background()
	userID, productID := uuid.New(), uuid.New()

	t.Run("changes only provided fields", func(t *testing.T) {
		fx := createTestReviewService(t)
		fx.reviewRepo.EXPECT().FindReview(ctx, userID, productID).Return(&entity.Review{
			UserID:    userID,
			ProductID: productID,
			Comment:   "Fine",
			Star:      3,
		}, nil)
		fx.reviewRepo.EXPECT().UpdateReview(ctx, mock.AnythingOfType("*entity.Review")).Return(nil)

		review, err := fx.service.UpdateReview(ctx, userID, productID, usecase.UpdateReviewInput{Star: ptr(5.0)})

		require.NoError(t, err)
		assert.Equal(t, "Fine", review.Comment)
		assert.Equal(t, 5.0, review.Star)
	})

	t.Run("nothing to update", func(t *testing.T) {
		fx := createTestReviewService(t)

		_, err := fx.service.UpdateReview(ctx, userID, productID, usecase.UpdateReviewInput{})

		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("no review yet", func(t *testing.T) {
		fx := createTestReviewService(t)
		fx.reviewRepo.EXPECT().FindReview(ctx, userID, productID).Return(nil, repository.ErrReviewNotFound)

		_, err := fx.service.UpdateReview(ctx, userID, productID, usecase.UpdateReviewInput{Comment: ptr("New")})

		assert.ErrorIs(t, err, domainerrors.ErrReviewNotFound)
	})

	t.Run("invalid star keeps review", func(t *testing.T) {
		fx := createTestReviewService(t)
		fx.reviewRepo.EXPECT().FindReview(ctx, userID, productID).Return(&entity.Review{Star: 3, Comment: "Fine"}, nil)

		_, err := fx.service.UpdateReview(ctx, userID, productID, usecase.UpdateReviewInput{Star: ptr(9.0)})

		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})
}

func TestReviewService_DeleteReview(t *testing.T) {
	fx := createTestReviewService(t)
	ctx := context.Background()
	userID, productID := uuid.New(), uuid.New()

	fx.reviewRepo.EXPECT().DeleteReview(ctx, userID, productID).Return(repository.ErrReviewNotFound)

	assert.ErrorIs(t, fx.service.DeleteReview(ctx, userID, productID), domainerrors.ErrReviewNotFound)
}

func TestReviewService_ListProductReviews(t *testing.T) {
	fx := createTestReviewService(t)
	ctx := context.Background()
	productID := uuid.New()

	fx.productRepo.EXPECT().FindProductByID(ctx, productID).Return(&entity.Product{ID: productID}, nil)
	fx.reviewRepo.EXPECT().FindReviewsByProduct(ctx, productID).Return([]*entity.Review{{}, {}}, nil)

	reviews, err := fx.service.ListProductReviews(ctx, productID)

	require.NoError(t, err)
	assert.Len(t, reviews, 2)
}

func TestReviewService_Likes(t *testing.T) {
	fx := createTestReviewService(t)
	ctx := context.Background()
	userID, productID := uuid.New(), uuid.New()

	fx.productRepo.EXPECT().FindProductByID(ctx, productID).Return(&entity.Product{ID: productID}, nil).Twice()
	fx.reviewRepo.EXPECT().
		UpsertLike(ctx, mock.MatchedBy(func(l *entity.Like) bool { return l.UserID == userID && l.ProductID == productID })).
		Return(nil).
		Twice()
	fx.reviewRepo.EXPECT().DeleteLike(ctx, userID, productID).Return(nil).Twice()
	fx.reviewRepo.EXPECT().CountLikes(ctx, productID).Return(int64(0), nil)

	require.NoError(t, fx.service.Like(ctx, userID, productID))
	require.NoError(t, fx.service.Like(ctx, userID, productID))
	require.NoError(t, fx.service.Unlike(ctx, userID, productID))
	require.NoError(t, fx.service.Unlike(ctx, userID, productID))

	count, err := fx.service.CountLikes(ctx, productID)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestReviewService_Like_UnknownProduct(t *testing.T) {
	fx := createTestReviewService(t)
	ctx := context.Background()
	productID := uuid.New()

	fx.productRepo.EXPECT().FindProductByID(ctx, productID).Return(nil, repository.ErrProductNotFound)

	assert.ErrorIs(t, fx.service.Like(ctx, uuid.New(), productID), domainerrors.ErrProductNotFound)
}
