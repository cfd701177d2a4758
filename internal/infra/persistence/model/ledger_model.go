package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PromoCodeModel mirrors the 'promo_codes' table.
type PromoCodeModel struct {
	ID                 uuid.UUID       `gorm:"type:uuid;primary_key"`
	Code               string          `gorm:"type:varchar(64);unique;not null"`
	DiscountPercentage decimal.Decimal `gorm:"type:numeric(5,2);not null"`
	StartTime          time.Time       `gorm:"not null"`
	EndTime            time.Time       `gorm:"not null"`
	MaxUsage           int             `gorm:"not null"`
	CurrentUsage       int             `gorm:"not null;default:0;check:current_usage <= max_usage"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// TableName explicitly sets the table name for GORM.
func (PromoCodeModel) TableName() string {
	return "promo_codes"
}

// WalletModel mirrors the 'wallets' table. One row per user.
type WalletModel struct {
	ID        uuid.UUID       `gorm:"type:uuid;primary_key"`
	UserID    uuid.UUID       `gorm:"type:uuid;unique;not null"`
	Cash      decimal.Decimal `gorm:"type:numeric(14,2);not null;check:cash >= 0"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (WalletModel) TableName() string {
	return "wallets"
}
