package handler

import (
	"net/http"
	"testing"

	"shop/internal/domain/entity"
	domainerrors "shop/internal/domain/errors"
	mockUsecase "shop/internal/mocks/usecase"
	"shop/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestOrderHandler(t *testing.T) (*OrderHandler, *mockUsecase.MockOrderUsecase) {
	orderUC := mockUsecase.NewMockOrderUsecase(t)

	return NewOrderHandler(OrderHandlerParams{OrderUC: orderUC, Logger: newDiscardLogger()}), orderUC
}

func TestOrderHandler_Checkout(t *testing.T) {
	userID := uuid.New()
	code := "TENOFF"

	t.Run("created with totals", func(t *testing.T) {
		h, orderUC := newTestOrderHandler(t)
		orderUC.EXPECT().
			Checkout(mock.Anything, userID, usecase.CheckoutInput{PromoCode: code}).
			Return(&usecase.CheckoutResult{
				Orders: []*entity.Order{
					{ID: uuid.New(), ProductID: uuid.New(), Quantity: 1, Status: entity.OrderStatusProcessing, PromoCode: &code},
				},
				Subtotal:  decimal.RequireFromString("20"),
				Discount:  decimal.RequireFromString("2"),
				Total:     decimal.RequireFromString("18"),
				PromoCode: &code,
			}, nil)

		c, rec := newTestContext(http.MethodPost, "/orders/checkout", `{"promo_code":"TENOFF"}`, userID)
		require.NoError(t, h.Checkout(c))

		assert.Equal(t, http.StatusCreated, rec.Code)
		out := decodeData[CheckoutResponse](t, rec)
		assert.Equal(t, "20.00", out.Subtotal)
		assert.Equal(t, "2.00", out.Discount)
		assert.Equal(t, "18.00", out.Total)
		require.Len(t, out.Orders, 1)
		assert.Equal(t, "processing", out.Orders[0].Status)
	})

	t.Run("empty cart", func(t *testing.T) {
		h, orderUC := newTestOrderHandler(t)
		orderUC.EXPECT().Checkout(mock.Anything, userID, usecase.CheckoutInput{}).Return(nil, domainerrors.ErrEmptyCart)

		c, rec := newTestContext(http.MethodPost, "/orders/checkout", `{}`, userID)
		require.NoError(t, h.Checkout(c))

		requireErrorCode(t, rec, http.StatusBadRequest, "EMPTY_CART")
	})
}

func TestOrderHandler_CompleteOrders(t *testing.T) {
	userID, productID := uuid.New(), uuid.New()

	t.Run("completed", func(t *testing.T) {
		h, orderUC := newTestOrderHandler(t)
		orderUC.EXPECT().
			MarkCompleted(mock.Anything, userID, productID).
			Return([]*entity.Order{{ProductID: productID, Status: entity.OrderStatusCompleted}}, nil)

		c, rec := newTestContext(http.MethodPut, "/orders/complete", `{"product_id":"`+productID.String()+`"}`, userID)
		require.NoError(t, h.CompleteOrders(c))

		assert.Equal(t, http.StatusOK, rec.Code)
		orders := decodeData[[]OrderResponse](t, rec)
		require.Len(t, orders, 1)
		assert.Equal(t, "completed", orders[0].Status)
	})

	t.Run("missing product id", func(t *testing.T) {
		h, _ := newTestOrderHandler(t)

		c, rec := newTestContext(http.MethodPut, "/orders/complete", `{}`, userID)
		require.NoError(t, h.CompleteOrders(c))

		env := requireErrorCode(t, rec, http.StatusBadRequest, "VALIDATION_FAILED")
		assert.Equal(t, map[string]any{"product_id": "required"}, env.Error.Details)
	})
}

func TestOrderHandler_Pay(t *testing.T) {
	userID := uuid.New()

	t.Run("passes the idempotency key", func(t *testing.T) {
		h, orderUC := newTestOrderHandler(t)
		orderUC.EXPECT().
			Pay(mock.Anything, userID, mock.MatchedBy(func(in usecase.PayInput) bool {
				return in.Amount.Equal(decimal.RequireFromString("12.5")) && in.IdempotencyKey == "k-1"
			})).
			Return(&usecase.PaymentResult{Balance: decimal.RequireFromString("87.5")}, nil)

		c, rec := newTestContext(http.MethodPost, "/orders/pay", `{"amount":"12.5"}`, userID)
		c.Request().Header.Set(HeaderIdempotencyKey, "k-1")
		require.NoError(t, h.Pay(c))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "87.50", decodeData[PaymentResponse](t, rec).Balance)
	})

	for _, amount := range []string{`"0"`, `"-3"`, `"ten"`, `""`} {
		t.Run("rejects amount "+amount, func(t *testing.T) {
			h, _ := newTestOrderHandler(t)

			c, rec := newTestContext(http.MethodPost, "/orders/pay", `{"amount":`+amount+`}`, userID)
			require.NoError(t, h.Pay(c))

			requireErrorCode(t, rec, http.StatusBadRequest, "VALIDATION_FAILED")
		})
	}

	t.Run("insufficient funds", func(t *testing.T) {
		h, orderUC := newTestOrderHandler(t)
		orderUC.EXPECT().Pay(mock.Anything, userID, mock.Anything).Return(nil, domainerrors.ErrInsufficientFunds)

		c, rec := newTestContext(http.MethodPost, "/orders/pay", `{"amount":"1000000"}`, userID)
		require.NoError(t, h.Pay(c))

		requireErrorCode(t, rec, http.StatusPaymentRequired, "INSUFFICIENT_FUNDS")
	})

	t.Run("duplicate request", func(t *testing.T) {
		h, orderUC := newTestOrderHandler(t)
		orderUC.EXPECT().Pay(mock.Anything, userID, mock.Anything).Return(nil, domainerrors.ErrDuplicateRequest)

		c, rec := newTestContext(http.MethodPost, "/orders/pay", `{"amount":"1"}`, userID)
		c.Request().Header.Set(HeaderIdempotencyKey, "k-1")
		require.NoError(t, h.Pay(c))

		requireErrorCode(t, rec, http.StatusConflict, "DUPLICATE_REQUEST")
	})
}
