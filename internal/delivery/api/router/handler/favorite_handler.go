package handler

import (
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

// FavoriteHandlerParams holds dependencies for FavoriteHandler, injected by Fx.
type FavoriteHandlerParams struct {
	fx.In

	FavoriteUC usecase.FavoriteUsecase
	Logger     *slog.Logger
}

// FavoriteHandler serves the caller's wishlist.
type FavoriteHandler struct {
	favoriteUC usecase.FavoriteUsecase
	logger     *slog.Logger
}

func NewFavoriteHandler(params FavoriteHandlerParams) *FavoriteHandler {
	return &FavoriteHandler{
		favoriteUC: params.FavoriteUC,
		logger:     params.Logger,
	}
}

type ToggleFavoriteRequest struct {
	ProductID uuid.UUID `json:"product_id" validate:"required"`
}

// ToggleFavorite adds or removes a product and reports which happened.
func (h *FavoriteHandler) ToggleFavorite(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthorized(c)
	}

	var req ToggleFavoriteRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid favourite input")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, validator.FieldErrors(err))
	}

	favorite, err := h.favoriteUC.ToggleFavorite(c.Request().Context(), userID, req.ProductID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, &FavoriteToggleResponse{ProductID: req.ProductID, Favorite: favorite})
}

// ListFavorites returns the favourited products with their catalog data.
func (h *FavoriteHandler) ListFavorites(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthorized(c)
	}

	products, err := h.favoriteUC.ListFavorites(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	resp := make([]*ProductResponse, 0, len(products))
	for _, p := range products {
		resp = append(resp, toProductResponse(p))
	}

	return response.Success(c, http.StatusOK, resp)
}
