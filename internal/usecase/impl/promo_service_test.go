package impl

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	domainerrors "shop/internal/domain/errors"
	"shop/internal/domain/repository"
	mockRepo "shop/internal/mocks/repository"
	"shop/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var promoNow = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

func newMemoryPromoService(backend *memoryBackend, metrics *recordingMetrics) usecase.PromoUsecase {
	params := PromoServiceParams{
		TxManager: backend.txManager,
		PromoRepo: backend.repos.PromoCodeRepo(),
		Clock:     fixedClock{now: promoNow},
		Logger:    newDiscardLogger(),
	}
	if metrics != nil {
		params.Metrics = metrics
	}

	return NewPromoService(params)
}

func TestPromoService_RedeemPromoCode_States(t *testing.T) {
	tests := []struct {
		name     string
		start    time.Time
		end      time.Time
		maxUsage int
		redeemed int
		wantErr  error
	}{
		{
			name:     "redeemable",
			start:    promoNow.Add(-time.Hour),
			end:      promoNow.Add(time.Hour),
			maxUsage: 2,
		},
		{
			name:     "boundaries are inclusive",
			start:    promoNow,
			end:      promoNow,
			maxUsage: 1,
		},
		{
			name:     "not yet active",
			start:    promoNow.Add(time.Minute),
			end:      promoNow.Add(time.Hour),
			maxUsage: 1,
			wantErr:  domainerrors.ErrPromoCodeNotYetActive,
		},
		{
			name:     "expired",
			start:    promoNow.Add(-2 * time.Hour),
			end:      promoNow.Add(-time.Hour),
			maxUsage: 1,
			wantErr:  domainerrors.ErrPromoCodeExpired,
		},
		{
			name:     "expired wins over exhausted",
			start:    promoNow.Add(-2 * time.Hour),
			end:      promoNow.Add(-time.Hour),
			maxUsage: 1,
			redeemed: 1,
			wantErr:  domainerrors.ErrPromoCodeExpired,
		},
		{
			name:     "exhausted",
			start:    promoNow.Add(-time.Hour),
			end:      promoNow.Add(time.Hour),
			maxUsage: 1,
			redeemed: 1,
			wantErr:  domainerrors.ErrPromoCodeExhausted,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			backend := newMemoryBackend()
			promo := backend.seedPromo(t, "SUMMER", 15, tt.maxUsage, tt.start, tt.end)
			promo.CurrentUsage = tt.redeemed
			backend.store.SeedPromoCodes(promo)
			srv := newMemoryPromoService(backend, nil)

			result, err := srv.RedeemPromoCode(context.Background(), "SUMMER")

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, result)
				assert.Equal(t, tt.redeemed, backend.promoUsage(t, "SUMMER"))

				return
			}
			require.NoError(t, err)
			assert.Equal(t, "SUMMER", result.Code)
			assert.Equal(t, tt.redeemed+1, result.CurrentUsage)
			assert.Equal(t, tt.maxUsage, result.MaxUsage)
			assert.Equal(t, tt.redeemed+1, backend.promoUsage(t, "SUMMER"))
		})
	}
}

func TestPromoService_RedeemPromoCode_UnknownAndBlank(t *testing.T) {
	backend := newMemoryBackend()
	metrics := &recordingMetrics{}
	srv := newMemoryPromoService(backend, metrics)

	_, err := srv.RedeemPromoCode(context.Background(), "NOPE")
	assert.ErrorIs(t, err, domainerrors.ErrPromoCodeNotFound)

	_, err = srv.RedeemPromoCode(context.Background(), "   ")
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	assert.Equal(t, []string{"promo.redeem/PROMO_CODE_NOT_FOUND", "promo.redeem/VALIDATION_FAILED"}, metrics.observations())
}

func TestPromoService_RedeemPromoCode_ConcurrentRedemptionsRespectCap(t *testing.T) {
	const maxUsage = 5

	backend := newMemoryBackend()
	backend.seedPromo(t, "FLASH", 50, maxUsage, promoNow.Add(-time.Hour), promoNow.Add(time.Hour))
	srv := newMemoryPromoService(backend, nil)

	var (
		wg        sync.WaitGroup
		succeeded atomic.Int32
		exhausted atomic.Int32
	)
	for range maxUsage + 1 {
		wg.Add(1)
		go func() {
			defer wg.Done()

			_, err := srv.RedeemPromoCode(context.Background(), "FLASH")
			switch {
			case err == nil:
				succeeded.Add(1)
			case errors.Is(err, domainerrors.ErrPromoCodeExhausted):
				exhausted.Add(1)
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(maxUsage), succeeded.Load())
	assert.Equal(t, int32(1), exhausted.Load())
	assert.Equal(t, maxUsage, backend.promoUsage(t, "FLASH"))
}

func TestPromoService_RedeemPromoCode_LostIncrementRace(t *testing.T) {
	ctx := context.Background()
	txManager := mockRepo.NewMockTransactionManager(t)
	backend := newMemoryBackend()
	promo := backend.seedPromo(t, "RACE", 10, 1, promoNow.Add(-time.Hour), promoNow.Add(time.Hour))

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockPromoRepo := mockRepo.NewMockPromoCodeRepository(t)

			mockFactory.EXPECT().PromoCodeRepo().Return(mockPromoRepo)
			mockPromoRepo.EXPECT().FindPromoCodeByCodeForUpdate(ctx, "RACE").Return(promo, nil)
			mockPromoRepo.EXPECT().IncrementUsage(ctx, promo.ID).Return(repository.ErrPromoCodeUsageExhausted)

			return fn(mockFactory)
		})

	srv := NewPromoService(PromoServiceParams{
		TxManager: txManager,
		Clock:     fixedClock{now: promoNow},
		Logger:    newDiscardLogger(),
	})

	_, err := srv.RedeemPromoCode(ctx, "RACE")

	assert.ErrorIs(t, err, domainerrors.ErrPromoCodeExhausted)
}

func TestPromoService_GetPromoCode_DoesNotConsume(t *testing.T) {
	backend := newMemoryBackend()
	backend.seedPromo(t, "LOOK", 20, 3, promoNow.Add(-time.Hour), promoNow.Add(time.Hour))
	srv := newMemoryPromoService(backend, nil)

	promo, err := srv.GetPromoCode(context.Background(), " LOOK ")

	require.NoError(t, err)
	assert.Equal(t, 3, promo.RemainingUsage())
	assert.Equal(t, 0, backend.promoUsage(t, "LOOK"))

	_, err = srv.GetPromoCode(context.Background(), "MISSING")
	assert.ErrorIs(t, err, domainerrors.ErrPromoCodeNotFound)
}
