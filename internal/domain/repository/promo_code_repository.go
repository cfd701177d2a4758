package repository

import (
	"context"

	"shop/internal/domain/entity"
	"shop/internal/errors"

	"github.com/google/uuid"
)

var (
	// ErrPromoCodeNotFound is returned when no promo code matches.
	ErrPromoCodeNotFound = errors.New("promo code not found")
	// ErrPromoCodeUsageExhausted is returned when the conditional increment matched no row.
	ErrPromoCodeUsageExhausted = errors.New("promo code usage exhausted")
)

// PromoCodeRepository defines promo code persistence.
type PromoCodeRepository interface {
	// FindPromoCodeByCode reads a promo code without locking.
	FindPromoCodeByCode(ctx context.Context, code string) (*entity.PromoCode, error)

	// FindPromoCodeByCodeForUpdate reads and row-locks a promo code until the
	// surrounding transaction ends. Only meaningful inside TransactionManager.Execute.
	FindPromoCodeByCodeForUpdate(ctx context.Context, code string) (*entity.PromoCode, error)

	// IncrementUsage adds one redemption if current_usage < max_usage.
	// Returns ErrPromoCodeUsageExhausted when the cap is already reached.
	IncrementUsage(ctx context.Context, id uuid.UUID) error
}
