package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"shop/internal/delivery/api/middleware"
	"shop/internal/delivery/api/response"
	"shop/internal/delivery/api/validator"
	"shop/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// HeaderIdempotencyKey lets clients retry a payment safely.
const HeaderIdempotencyKey = "Idempotency-Key"

// OrderHandlerParams holds dependencies for OrderHandler, injected by Fx.
type OrderHandlerParams struct {
	fx.In

	OrderUC usecase.OrderUsecase
	Logger  *slog.Logger
}

// OrderHandler serves checkout, order history and payments.
type OrderHandler struct {
	orderUC usecase.OrderUsecase
	logger  *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler
func NewOrderHandler(params OrderHandlerParams) *OrderHandler {
	return &OrderHandler{
		orderUC: params.OrderUC,
		logger:  params.Logger,
	}
}

type CheckoutRequest struct {
	PromoCode string `json:"promo_code,omitempty" validate:"omitempty,max=64"`
}

type CompleteOrderRequest struct {
	ProductID uuid.UUID `json:"product_id" validate:"required"`
}

type PaymentRequest struct {
	Amount string `json:"amount" validate:"required,positive_decimal"`
}

// Checkout converts the cart into orders.
func (h *OrderHandler) Checkout(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthorized(c)
	}

	var req CheckoutRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid checkout input")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, validator.FieldErrors(err))
	}

	result, err := h.orderUC.Checkout(c.Request().Context(), userID, usecase.CheckoutInput{PromoCode: req.PromoCode})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, &CheckoutResponse{
		Orders:    toOrderResponses(result.Orders),
		Subtotal:  money(result.Subtotal),
		Discount:  money(result.Discount),
		Total:     money(result.Total),
		PromoCode: result.PromoCode,
	})
}

// ListOrders returns the caller's orders oldest first.
func (h *OrderHandler) ListOrders(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthorized(c)
	}

	orders, err := h.orderUC.ListOrders(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toOrderResponses(orders))
}

// CompleteOrders marks the caller's orders for a product as completed.
func (h *OrderHandler) CompleteOrders(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthorized(c)
	}

	var req CompleteOrderRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid order input")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, validator.FieldErrors(err))
	}

	orders, err := h.orderUC.MarkCompleted(c.Request().Context(), userID, req.ProductID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toOrderResponses(orders))
}

// Pay debits the caller's wallet.
func (h *OrderHandler) Pay(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthorized(c)
	}

	var req PaymentRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid payment input")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, validator.FieldErrors(err))
	}

	// Validated by positive_decimal above.
	amount := decimal.RequireFromString(req.Amount)

	result, err := h.orderUC.Pay(c.Request().Context(), userID, usecase.PayInput{
		Amount:         amount,
		IdempotencyKey: strings.TrimSpace(c.Request().Header.Get(HeaderIdempotencyKey)),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, &PaymentResponse{Balance: money(result.Balance)})
}
