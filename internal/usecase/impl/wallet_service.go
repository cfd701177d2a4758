package impl

import (
	"context"
	"log/slog"
	"time"

	"shop/config"
	"shop/internal/domain/entity"
	domainerrors "shop/internal/domain/errors"
	"shop/internal/domain/repository"
	"shop/internal/domain/service"
	"shop/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

type walletService struct {
	txManager      repository.TransactionManager
	walletRepo     repository.WalletRepository
	initialBalance decimal.Decimal
	metrics        service.MetricsRecorder
	logger         *slog.Logger
}

// WalletServiceParams holds dependencies for WalletService, injected by Fx.
type WalletServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	WalletRepo repository.WalletRepository
	Config     *config.Config
	Metrics    service.MetricsRecorder `optional:"true"`
	Logger     *slog.Logger
}

// NewWalletService builds the wallet ledger. The initial balance comes from config.
func NewWalletService(params WalletServiceParams) (usecase.WalletUsecase, error) {
	initial := decimal.NewFromInt(10000)
	if params.Config != nil && params.Config.Wallet != nil && params.Config.Wallet.InitialBalance != "" {
		parsed, err := decimal.NewFromString(params.Config.Wallet.InitialBalance)
		if err != nil {
			return nil, errors.Wrap(err, "invalid wallet.initialBalance")
		}
		initial = parsed
	}
	if initial.IsNegative() {
		return nil, errors.Errorf("wallet.initialBalance must not be negative, got %s", initial)
	}

	return &walletService{
		txManager:      params.TxManager,
		walletRepo:     params.WalletRepo,
		initialBalance: initial,
		metrics:        metricsOrNoop(params.Metrics),
		logger:         params.Logger,
	}, nil
}

func (srv *walletService) log(ctx context.Context) *slog.Logger {
	return scopedLogger(ctx, srv.logger)
}

// GetBalance returns the user's wallet.
func (srv *walletService) GetBalance(ctx context.Context, userID uuid.UUID) (*entity.Wallet, error) {
	wallet, err := srv.walletRepo.FindWalletByUser(ctx, userID)
	if errors.Is(err, repository.ErrWalletNotFound) {
		return nil, errors.Wrap(domainerrors.ErrWalletNotFound, "get balance")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find wallet")
	}

	return wallet, nil
}

// Debit takes amount from the wallet under a row lock. Insufficient funds leave the balance unchanged.
func (srv *walletService) Debit(ctx context.Context, userID uuid.UUID, amount decimal.Decimal) (balance decimal.Decimal, err error) {
	defer func() { srv.metrics.ObserveOperation(opWalletDebit, outcomeOf(err)) }()

	if !amount.IsPositive() {
		return decimal.Zero, domainerrors.ErrValidationFailed.WithDetails("amount must be greater than zero")
	}

	err = srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		walletRepo := factory.WalletRepo()

		wallet, findErr := walletRepo.FindWalletByUserForUpdate(ctx, userID)
		if errors.Is(findErr, repository.ErrWalletNotFound) {
			return errors.Wrap(domainerrors.ErrWalletNotFound, "debit")
		}
		if findErr != nil {
			return errors.Wrap(findErr, "failed to lock wallet")
		}

		if !wallet.CanDebit(amount) {
			return domainerrors.ErrInsufficientFunds.WithDetails("balance " + wallet.Cash.String() + " is lower than " + amount.String())
		}

		newBalance, debitErr := walletRepo.Debit(ctx, userID, amount)
		if errors.Is(debitErr, repository.ErrInsufficientFunds) {
			return errors.Wrap(domainerrors.ErrInsufficientFunds, "debit")
		}
		if debitErr != nil {
			return errors.Wrap(debitErr, "failed to debit wallet")
		}
		balance = newBalance

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Wallet debit failed", slog.Any("userID", userID), slog.String("amount", amount.String()), slog.Any("error", err))

		return decimal.Zero, err
	}

	srv.log(ctx).Info("Wallet debited", slog.Any("userID", userID), slog.String("amount", amount.String()), slog.String("balance", balance.String()))

	return balance, nil
}

// ProvisionWallet creates the wallet once; repeated calls are no-ops.
func (srv *walletService) ProvisionWallet(ctx context.Context, userID uuid.UUID) (err error) {
	defer func() { srv.metrics.ObserveOperation(opWalletCreate, outcomeOf(err)) }()

	now := time.Now()
	created, err := srv.walletRepo.CreateWalletIfAbsent(ctx, &entity.Wallet{
		ID:        uuid.New(),
		UserID:    userID,
		Cash:      srv.initialBalance,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return errors.Wrap(err, "failed to provision wallet")
	}

	if created {
		srv.log(ctx).Info("Wallet provisioned", slog.Any("userID", userID), slog.String("balance", srv.initialBalance.String()))
	} else {
		srv.log(ctx).Debug("Wallet already provisioned", slog.Any("userID", userID))
	}

	return nil
}

// OnUserCreated provisions the wallet of a freshly registered user.
func (srv *walletService) OnUserCreated(ctx context.Context, user *entity.User) error {
	return srv.ProvisionWallet(ctx, user.ID)
}
