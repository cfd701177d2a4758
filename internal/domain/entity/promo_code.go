package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PromoCodeState is the outcome of evaluating a promo code at a point in time.
type PromoCodeState int

const (
	PromoCodeRedeemable PromoCodeState = iota
	PromoCodeNotYetActive
	PromoCodeExpired
	PromoCodeExhausted
)

// PromoCode is a percentage discount with a validity window and a usage cap.
// Invariant: 0 <= CurrentUsage <= MaxUsage.
type PromoCode struct {
	ID                 uuid.UUID
	Code               string
	DiscountPercentage decimal.Decimal
	StartTime          time.Time
	EndTime            time.Time
	MaxUsage           int
	CurrentUsage       int
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// Check evaluates the window before the usage cap, so an expired code reports
// expired even when it is also exhausted.
func (p *PromoCode) Check(now time.Time) PromoCodeState {
	switch {
	case now.Before(p.StartTime):
		return PromoCodeNotYetActive
	case now.After(p.EndTime):
		return PromoCodeExpired
	case p.CurrentUsage >= p.MaxUsage:
		return PromoCodeExhausted
	default:
		return PromoCodeRedeemable
	}
}

// IsValid reports start_time <= now <= end_time and current_usage < max_usage.
func (p *PromoCode) IsValid(now time.Time) bool {
	return p.Check(now) == PromoCodeRedeemable
}

// RemainingUsage is the number of redemptions left.
func (p *PromoCode) RemainingUsage() int {
	return max(p.MaxUsage-p.CurrentUsage, 0)
}

// Discount applies the percentage to an amount.
func (p *PromoCode) Discount(amount decimal.Decimal) decimal.Decimal {
	return amount.Mul(p.DiscountPercentage).Div(decimal.NewFromInt(100)).Round(2)
}
