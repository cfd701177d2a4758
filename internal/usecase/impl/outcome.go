// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "shop/internal/delivery/context"
	domainerrors "shop/internal/domain/errors"
	"shop/internal/domain/service"

	"github.com/pkg/errors"
)

// Operation names reported to the metrics recorder.
const (
	opPromoRedeem   = "promo.redeem"
	opWalletDebit   = "wallet.debit"
	opWalletCreate  = "wallet.provision"
	opOrderCheckout = "order.checkout"
	opOrderPay      = "order.pay"
)

// outcomeOf maps an operation result to a metrics label.
func outcomeOf(err error) string {
	if err == nil {
		return service.OutcomeOK
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return appErr.ErrorCode()
	}

	return service.OutcomeError
}

func metricsOrNoop(m service.MetricsRecorder) service.MetricsRecorder {
	if m == nil {
		return service.NoopMetrics
	}

	return m
}

func clockOrSystem(c service.Clock) service.Clock {
	if c == nil {
		return service.SystemClock
	}

	return c
}

// scopedLogger returns a request-scoped logger if available, otherwise the fallback.
func scopedLogger(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, fallback)
}
