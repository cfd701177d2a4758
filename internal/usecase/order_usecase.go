package usecase

import (
	"context"

	"shop/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CheckoutInput carries the optional promo code applied at checkout.
type CheckoutInput struct {
	PromoCode string
}

// CheckoutResult holds the orders created by a checkout and the priced totals.
type CheckoutResult struct {
	Orders    []*entity.Order
	Subtotal  decimal.Decimal
	Discount  decimal.Decimal
	Total     decimal.Decimal
	PromoCode *string
}

// PayInput is a wallet payment request.
type PayInput struct {
	Amount         decimal.Decimal
	IdempotencyKey string
}

// PaymentResult is the wallet balance after a payment.
type PaymentResult struct {
	Balance decimal.Decimal
}

// OrderUsecase turns carts into orders and handles order payment.
type OrderUsecase interface {
	Checkout(ctx context.Context, userID uuid.UUID, input CheckoutInput) (*CheckoutResult, error)
	ListOrders(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error)

	// MarkCompleted completes every processing order of the user for the product.
	MarkCompleted(ctx context.Context, userID, productID uuid.UUID) ([]*entity.Order, error)

	Pay(ctx context.Context, userID uuid.UUID, input PayInput) (*PaymentResult, error)
}
