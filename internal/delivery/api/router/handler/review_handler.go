package handler

import (
	"context"
	"log/slog"
	"net/http"

	"shop/internal/delivery/api/middleware"
	"shop/internal/delivery/api/response"
	"shop/internal/delivery/api/validator"
	"shop/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ReviewHandlerParams holds dependencies for ReviewHandler, injected by Fx.
type ReviewHandlerParams struct {
	fx.In

	ReviewUC usecase.ReviewUsecase
	Logger   *slog.Logger
}

// ReviewHandler serves product reviews and likes.
type ReviewHandler struct {
	reviewUC usecase.ReviewUsecase
	logger   *slog.Logger
}

func NewReviewHandler(params ReviewHandlerParams) *ReviewHandler {
	return &ReviewHandler{
		reviewUC: params.ReviewUC,
		logger:   params.Logger,
	}
}

type AddReviewRequest struct {
	Comment string  `json:"comment" validate:"required,max=2000"`
	Star    float64 `json:"star" validate:"gte=1,lte=5"`
}

type UpdateReviewRequest struct {
	Comment *string  `json:"comment,omitempty" validate:"omitempty,min=1,max=2000"`
	Star    *float64 `json:"star,omitempty" validate:"omitempty,gte=1,lte=5"`
}

func (h *ReviewHandler) AddReview(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthorized(c)
	}
	productID, ok := parseProductID(c)
	if !ok {
		return invalidProductID(c)
	}

	var req AddReviewRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid review input")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, validator.FieldErrors(err))
	}

	review, err := h.reviewUC.AddReview(c.Request().Context(), userID, productID, usecase.AddReviewInput{
		Comment: req.Comment,
		Star:    req.Star,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toReviewResponse(review))
}

func (h *ReviewHandler) UpdateReview(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthorized(c)
	}
	productID, ok := parseProductID(c)
	if !ok {
		return invalidProductID(c)
	}

	var req UpdateReviewRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid review input")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, validator.FieldErrors(err))
	}

	review, err := h.reviewUC.UpdateReview(c.Request().Context(), userID, productID, usecase.UpdateReviewInput{
		Comment: req.Comment,
		Star:    req.Star,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toReviewResponse(review))
}

func (h *ReviewHandler) DeleteReview(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthorized(c)
	}
	productID, ok := parseProductID(c)
	if !ok {
		return invalidProductID(c)
	}

	if err := h.reviewUC.DeleteReview(c.Request().Context(), userID, productID); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

func (h *ReviewHandler) ListReviews(c echo.Context) error {
	productID, ok := parseProductID(c)
	if !ok {
		return invalidProductID(c)
	}

	reviews, err := h.reviewUC.ListProductReviews(c.Request().Context(), productID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	resp := make([]*ReviewResponse, 0, len(reviews))
	for _, r := range reviews {
		resp = append(resp, toReviewResponse(r))
	}

	return response.Success(c, http.StatusOK, resp)
}

// Like is idempotent.
func (h *ReviewHandler) Like(c echo.Context) error {
	return h.toggleLike(c, h.reviewUC.Like)
}

// Unlike is idempotent.
func (h *ReviewHandler) Unlike(c echo.Context) error {
	return h.toggleLike(c, h.reviewUC.Unlike)
}

func (h *ReviewHandler) CountLikes(c echo.Context) error {
	productID, ok := parseProductID(c)
	if !ok {
		return invalidProductID(c)
	}

	return h.respondLikes(c, productID)
}

func (h *ReviewHandler) toggleLike(c echo.Context, apply func(ctx context.Context, userID, productID uuid.UUID) error) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthorized(c)
	}
	productID, ok := parseProductID(c)
	if !ok {
		return invalidProductID(c)
	}

	if err := apply(c.Request().Context(), userID, productID); err != nil {
		return response.HandleAppError(c, err)
	}

	return h.respondLikes(c, productID)
}

func (h *ReviewHandler) respondLikes(c echo.Context, productID uuid.UUID) error {
	likes, err := h.reviewUC.CountLikes(c.Request().Context(), productID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, &LikesResponse{ProductID: productID, Likes: likes})
}
