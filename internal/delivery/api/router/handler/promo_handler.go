package handler

import (
	"net/http"

	"shop/internal/delivery/api/response"
	"shop/internal/delivery/api/validator"
	"shop/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type PromoHandlerParams struct {
	fx.In

	PromoUC usecase.PromoUsecase
}

// PromoHandler exposes promo code lookup and redemption.
type PromoHandler struct {
	promoUC usecase.PromoUsecase
}

func NewPromoHandler(params PromoHandlerParams) *PromoHandler {
	return &PromoHandler{promoUC: params.PromoUC}
}

type RedeemPromoRequest struct {
	Code string `json:"code" validate:"required,max=64"`
}

// Redeem consumes one use of a promo code.
func (h *PromoHandler) Redeem(c echo.Context) error {
	var req RedeemPromoRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid promo code input")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, validator.FieldErrors(err))
	}

	result, err := h.promoUC.RedeemPromoCode(c.Request().Context(), req.Code)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, &RedeemResponse{
		Code:               result.Code,
		DiscountPercentage: result.DiscountPercentage,
		CurrentUsage:       result.CurrentUsage,
		MaxUsage:           result.MaxUsage,
	})
}

// Get looks a promo code up without consuming it.
func (h *PromoHandler) Get(c echo.Context) error {
	promo, err := h.promoUC.GetPromoCode(c.Request().Context(), c.Param("code"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, &PromoCodeResponse{
		Code:               promo.Code,
		DiscountPercentage: promo.DiscountPercentage,
		StartTime:          promo.StartTime,
		EndTime:            promo.EndTime,
		MaxUsage:           promo.MaxUsage,
		CurrentUsage:       promo.CurrentUsage,
		RemainingUsage:     promo.RemainingUsage(),
	})
}
