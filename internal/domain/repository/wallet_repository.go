package repository

import (
	"context"

	"shop/internal/domain/entity"
	"shop/internal/errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	// ErrWalletNotFound is returned when the user has no wallet.
	ErrWalletNotFound = errors.New("wallet not found")
	// ErrInsufficientFunds is returned when a debit would make the balance negative.
	ErrInsufficientFunds = errors.New("insufficient funds")
)

// WalletRepository defines wallet persistence. One wallet per user.
type WalletRepository interface {
	FindWalletByUser(ctx context.Context, userID uuid.UUID) (*entity.Wallet, error)

	// FindWalletByUserForUpdate reads and row-locks the wallet until the
	// surrounding transaction ends.
	FindWalletByUserForUpdate(ctx context.Context, userID uuid.UUID) (*entity.Wallet, error)

	// CreateWalletIfAbsent inserts the wallet unless the user already has one.
	// It reports whether a row was inserted; an existing wallet is never modified.
	CreateWalletIfAbsent(ctx context.Context, wallet *entity.Wallet) (bool, error)

	// Debit subtracts amount if cash >= amount and returns the new balance.
	// Returns ErrInsufficientFunds otherwise, leaving the balance untouched.
	Debit(ctx context.Context, userID uuid.UUID, amount decimal.Decimal) (decimal.Decimal, error)
}
