package mail

import (
	"bytes"
	"context"
	"html/template"
	"log/slog"
	"net/url"
	"strings"

	"shop/config"
	"shop/internal/domain/service"

	"github.com/keighl/postmark"
	"github.com/pkg/errors"
)

const (
	orderConfirmationTag = "order-confirmation"
	passwordResetTag     = "password-reset"
)

var orderConfirmationHTML = template.Must(template.New("order_confirmation").Parse(
	`<p>Thank you for your order.</p>` +
		`<p>Orders: {{range $i, $id := .OrderIDs}}{{if $i}}, {{end}}{{$id}}{{end}}</p>` +
		`<p>Subtotal: {{.Subtotal}}<br>Discount: {{.Discount}}{{if .PromoCode}} ({{.PromoCode}}){{end}}<br>` +
		`<strong>Total: {{.Total}}</strong></p>` +
		`<p>Shipping to: {{.ShipTo}}</p>`,
))

var passwordResetHTML = template.Must(template.New("password_reset").Parse(
	`<p>We received a request to reset your password.</p>` +
		`<p><a href="{{.Link}}">Choose a new password</a></p>` +
		`<p>If you did not ask for this, ignore this email.</p>`,
))

type postmarkMailer struct {
	client   *postmark.Client
	from     string
	resetURL string
	logger   *slog.Logger
}

// NewPostmarkMailer sends email through the Postmark API.
func NewPostmarkMailer(cfg *config.MailConfig, logger *slog.Logger) service.Mailer {
	return &postmarkMailer{
		client:   postmark.NewClient(cfg.ServerToken, cfg.AccountToken),
		from:     cfg.From,
		resetURL: cfg.ResetURL,
		logger:   logger,
	}
}

func (m *postmarkMailer) SendOrderConfirmation(ctx context.Context, msg *service.OrderConfirmation) error {
	if msg.To == "" {
		return errors.New("order confirmation has no recipient")
	}
	if err := ctx.Err(); err != nil {
		return errors.WithStack(err)
	}

	var html bytes.Buffer
	if err := orderConfirmationHTML.Execute(&html, msg); err != nil {
		return errors.Wrap(err, "failed to render order confirmation")
	}

	res, err := m.client.SendEmail(postmark.Email{
		From:     m.from,
		To:       msg.To,
		Subject:  "Your order has been placed",
		HtmlBody: html.String(),
		TextBody: orderConfirmationText(msg),
		Tag:      orderConfirmationTag,
	})
	if err != nil {
		return errors.Wrap(err, "failed to send order confirmation")
	}
	if res.ErrorCode != 0 {
		return errors.Errorf("postmark rejected order confirmation: %d %s", res.ErrorCode, res.Message)
	}

	m.logger.Info("[Postmark] Order confirmation sent",
		slog.String("message_id", res.MessageID),
		slog.Int("order_count", len(msg.OrderIDs)),
	)

	return nil
}

func (m *postmarkMailer) SendPasswordReset(ctx context.Context, msg *service.PasswordReset) error {
	if msg.To == "" || msg.Token == "" {
		return errors.New("password reset needs a recipient and a token")
	}
	if err := ctx.Err(); err != nil {
		return errors.WithStack(err)
	}

	link := m.resetURL + url.QueryEscape(msg.Token)

	var html bytes.Buffer
	if err := passwordResetHTML.Execute(&html, struct{ Link string }{Link: link}); err != nil {
		return errors.Wrap(err, "failed to render password reset")
	}

	res, err := m.client.SendEmail(postmark.Email{
		From:     m.from,
		To:       msg.To,
		Subject:  "Reset your password",
		HtmlBody: html.String(),
		TextBody: "Reset your password: " + link + "\n",
		Tag:      passwordResetTag,
	})
	if err != nil {
		return errors.Wrap(err, "failed to send password reset")
	}
	if res.ErrorCode != 0 {
		return errors.Errorf("postmark rejected password reset: %d %s", res.ErrorCode, res.Message)
	}

	m.logger.Info("[Postmark] Password reset sent", slog.String("message_id", res.MessageID))

	return nil
}

func orderConfirmationText(msg *service.OrderConfirmation) string {
	var b strings.Builder
	b.WriteString("Thank you for your order.\n\n")
	b.WriteString("Orders: " + strings.Join(msg.OrderIDs, ", ") + "\n")
	b.WriteString("Subtotal: " + msg.Subtotal + "\n")
	b.WriteString("Discount: " + msg.Discount)
	if msg.PromoCode != "" {
		b.WriteString(" (" + msg.PromoCode + ")")
	}
	b.WriteString("\nTotal: " + msg.Total + "\n")
	b.WriteString("Shipping to: " + msg.ShipTo + "\n")

	return b.String()
}
