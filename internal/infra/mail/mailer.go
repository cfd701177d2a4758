// Package mail sends transactional email.
package mail

import (
	"context"
	"log/slog"

	"shop/config"
	"shop/internal/domain/constants"
	"shop/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Params holds dependencies for the Mailer, injected by Fx
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewMailer selects the mail provider from configuration.
func NewMailer(params Params) (service.Mailer, error) {
	cfg := params.Config.Mail
	if cfg == nil || cfg.Provider == "" {
		params.Logger.Info("Mail not configured, using no-op mailer")

		return &noopMailer{logger: params.Logger}, nil
	}

	switch cfg.Provider {
	case constants.MailProviderPostmark:
		if cfg.ServerToken == "" || cfg.From == "" {
			return nil, errors.New("postmark server token and sender are required")
		}

		return NewPostmarkMailer(cfg, params.Logger), nil
	default:
		return nil, errors.Errorf("unknown mail provider: %s", cfg.Provider)
	}
}

type noopMailer struct {
	logger *slog.Logger
}

func (m *noopMailer) SendOrderConfirmation(_ context.Context, msg *service.OrderConfirmation) error {
	m.logger.Debug("[NoopMail] Mail disabled, skipping order confirmation",
		slog.Any("order_ids", msg.OrderIDs),
	)

	return nil
}

func (m *noopMailer) SendPasswordReset(_ context.Context, msg *service.PasswordReset) error {
	m.logger.Debug("[NoopMail] Mail disabled, skipping password reset",
		slog.String("to", msg.To),
	)

	return nil
}

// Module provides the mail FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewMailer),
)
