package usecase

import (
	"context"

	"shop/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// WalletUsecase manages wallet balances.
type WalletUsecase interface {
	UserCreatedHook

	GetBalance(ctx context.Context, userID uuid.UUID) (*entity.Wallet, error)

	// Debit atomically subtracts amount and returns the new balance.
	Debit(ctx context.Context, userID uuid.UUID, amount decimal.Decimal) (decimal.Decimal, error)

	// ProvisionWallet creates the user's wallet with the initial balance.
	// Calling it again never creates a second wallet nor resets the balance.
	ProvisionWallet(ctx context.Context, userID uuid.UUID) error
}
