package handler

import (
	"net/http"
	"testing"

	"shop/internal/domain/entity"
	domainerrors "shop/internal/domain/errors"
	mockUsecase "shop/internal/mocks/usecase"
	"shop/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestReviewHandler(t *testing.T) (*ReviewHandler, *mockUsecase.MockReviewUsecase) {
	reviewUC := mockUsecase.NewMockReviewUsecase(t)

	return NewReviewHandler(ReviewHandlerParams{ReviewUC: reviewUC, Logger: newDiscardLogger()}), reviewUC
}

func TestReviewHandler_AddReview(t *testing.T) {
	userID, productID := uuid.New(), uuid.New()

	t.Run("created", func(t *testing.T) {
		h, reviewUC := newTestReviewHandler(t)
		reviewUC.EXPECT().
			AddReview(mock.Anything, userID, productID, usecase.AddReviewInput{Comment: "Lovely", Star: 4.5}).
			Return(&entity.Review{UserID: userID, ProductID: productID, Comment: "Lovely", Star: 4.5}, nil)

		c, rec := newTestContext(http.MethodPost, "/products/x/reviews", `{"comment":"Lovely","star":4.5}`, userID)
		withProductID(c, productID.String())
		require.NoError(t, h.AddReview(c))

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, 4.5, decodeData[ReviewResponse](t, rec).Star)
	})

	t.Run("star out of range", func(t *testing.T) {
		h, _ := newTestReviewHandler(t)

		c, rec := newTestContext(http.MethodPost, "/products/x/reviews", `{"comment":"Meh","star":6}`, userID)
		withProductID(c, productID.String())
		require.NoError(t, h.AddReview(c))

		env := requireErrorCode(t, rec, http.StatusBadRequest, "VALIDATION_FAILED")
		assert.Equal(t, map[string]any{"star": "lte=5"}, env.Error.Details)
	})

	t.Run("already reviewed", func(t *testing.T) {
		h, reviewUC := newTestReviewHandler(t)
		reviewUC.EXPECT().AddReview(mock.Anything, userID, productID, mock.Anything).Return(nil, domainerrors.ErrReviewAlreadyExists)

		c, rec := newTestContext(http.MethodPost, "/products/x/reviews", `{"comment":"Again","star":2}`, userID)
		withProductID(c, productID.String())
		require.NoError(t, h.AddReview(c))

		requireErrorCode(t, rec, http.StatusConflict, "REVIEW_ALREADY_EXISTS")
	})
}

func TestReviewHandler_DeleteReview(t *testing.T) {
	h, reviewUC := newTestReviewHandler(t)
	userID, productID := uuid.New(), uuid.New()

	reviewUC.EXPECT().DeleteReview(mock.Anything, userID, productID).Return(nil)

	c, rec := newTestContext(http.MethodDelete, "/products/x/reviews", "", userID)
	withProductID(c, productID.String())
	require.NoError(t, h.DeleteReview(c))

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestReviewHandler_LikeReturnsCount(t *testing.T) {
	h, reviewUC := newTestReviewHandler(t)
	userID, productID := uuid.New(), uuid.New()

	reviewUC.EXPECT().Like(mock.Anything, userID, productID).Return(nil)
	reviewUC.EXPECT().CountLikes(mock.Anything, productID).Return(int64(3), nil)

	c, rec := newTestContext(http.MethodPost, "/products/x/like", "", userID)
	withProductID(c, productID.String())
	require.NoError(t, h.Like(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	likes := decodeData[LikesResponse](t, rec)
	assert.Equal(t, productID, likes.ProductID)
	assert.Equal(t, int64(3), likes.Likes)
}

func TestReviewHandler_ListReviews_InvalidProduct(t *testing.T) {
	h, _ := newTestReviewHandler(t)

	c, rec := newTestContext(http.MethodGet, "/products/x/reviews", "", uuid.Nil)
	withProductID(c, uuid.Nil.String())
	require.NoError(t, h.ListReviews(c))

	env := requireErrorCode(t, rec, http.StatusBadRequest, "VALIDATION_FAILED")
	assert.Equal(t, map[string]any{"productId": "uuid"}, env.Error.Details)
}
