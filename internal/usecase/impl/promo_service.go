package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"shop/internal/domain/entity"
	domainerrors "shop/internal/domain/errors"
	"shop/internal/domain/repository"
	"shop/internal/domain/service"
	"shop/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type promoService struct {
	txManager repository.TransactionManager
	promoRepo repository.PromoCodeRepository
	clock     service.Clock
	metrics   service.MetricsRecorder
	logger    *slog.Logger
}

// PromoServiceParams holds dependencies for PromoService, injected by Fx.
type PromoServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	PromoRepo repository.PromoCodeRepository
	Clock     service.Clock           `optional:"true"`
	Metrics   service.MetricsRecorder `optional:"true"`
	Logger    *slog.Logger
}

// NewPromoService builds the promo code ledger.
func NewPromoService(params PromoServiceParams) usecase.PromoUsecase {
	return &promoService{
		txManager: params.TxManager,
		promoRepo: params.PromoRepo,
		clock:     clockOrSystem(params.Clock),
		metrics:   metricsOrNoop(params.Metrics),
		logger:    params.Logger,
	}
}

func (srv *promoService) log(ctx context.Context) *slog.Logger {
	return scopedLogger(ctx, srv.logger)
}

// RedeemPromoCode consumes one use of the code.
func (srv *promoService) RedeemPromoCode(ctx context.Context, code string) (result *usecase.RedeemResult, err error) {
	defer func() { srv.metrics.ObserveOperation(opPromoRedeem, outcomeOf(err)) }()

	code = strings.TrimSpace(code)
	if code == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("promo code is required")
	}

	err = srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		promo, redeemErr := redeemPromoCode(ctx, factory.PromoCodeRepo(), code, srv.clock.Now())
		if redeemErr != nil {
			return redeemErr
		}

		result = &usecase.RedeemResult{
			Code:               promo.Code,
			DiscountPercentage: promo.DiscountPercentage,
			CurrentUsage:       promo.CurrentUsage,
			MaxUsage:           promo.MaxUsage,
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Info("Promo code redemption refused", slog.String("code", code), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("Promo code redeemed", slog.String("code", code), slog.Int("currentUsage", result.CurrentUsage), slog.Int("maxUsage", result.MaxUsage))

	return result, nil
}

// GetPromoCode looks the code up without touching its usage.
func (srv *promoService) GetPromoCode(ctx context.Context, code string) (*entity.PromoCode, error) {
	promo, err := srv.promoRepo.FindPromoCodeByCode(ctx, strings.TrimSpace(code))
	if errors.Is(err, repository.ErrPromoCodeNotFound) {
		return nil, errors.Wrap(domainerrors.ErrPromoCodeNotFound, code)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find promo code")
	}

	return promo, nil
}

// redeemPromoCode locks the promo row, checks it against now and consumes one use.
// It must run inside a transaction; the returned promo reflects the incremented usage.
func redeemPromoCode(ctx context.Context, promoRepo repository.PromoCodeRepository, code string, now time.Time) (*entity.PromoCode, error) {
	promo, err := promoRepo.FindPromoCodeByCodeForUpdate(ctx, code)
	if errors.Is(err, repository.ErrPromoCodeNotFound) {
		return nil, errors.Wrap(domainerrors.ErrPromoCodeNotFound, code)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to lock promo code")
	}

	switch promo.Check(now) {
	case entity.PromoCodeNotYetActive:
		return nil, domainerrors.ErrPromoCodeNotYetActive.WithDetails("starts at " + promo.StartTime.Format(time.RFC3339))
	case entity.PromoCodeExpired:
		return nil, domainerrors.ErrPromoCodeExpired.WithDetails("ended at " + promo.EndTime.Format(time.RFC3339))
	case entity.PromoCodeExhausted:
		return nil, errors.Wrap(domainerrors.ErrPromoCodeExhausted, code)
	}

	if err := promoRepo.IncrementUsage(ctx, promo.ID); err != nil {
		if errors.Is(err, repository.ErrPromoCodeUsageExhausted) {
			return nil, errors.Wrap(domainerrors.ErrPromoCodeExhausted, code)
		}

		return nil, errors.Wrap(err, "failed to increment promo code usage")
	}
	promo.CurrentUsage++

	return promo, nil
}
