package usecase

import (
	"context"

	"shop/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// RedeemResult describes a successful redemption.
type RedeemResult struct {
	Code               string
	DiscountPercentage decimal.Decimal
	CurrentUsage       int
	MaxUsage           int
}

// PromoUsecase manages promo code redemption.
type PromoUsecase interface {
	// RedeemPromoCode atomically validates the code and consumes one use.
	RedeemPromoCode(ctx context.Context, code string) (*RedeemResult, error)

	// GetPromoCode looks a code up without consuming it.
	GetPromoCode(ctx context.Context, code string) (*entity.PromoCode, error)
}
