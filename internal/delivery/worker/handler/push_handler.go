package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"shop/config"
	deliverycontext "shop/internal/delivery/context"
	domainerrors "shop/internal/domain/errors"
	"shop/internal/domain/service"
	"shop/internal/infra/pubsub"
	"shop/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// retryableError wraps an error to indicate it should trigger a Pub/Sub retry
type retryableError struct {
	err error
}

func (e *retryableError) Error() string {
	return fmt.Sprintf("retryable: %v", e.err)
}

func (e *retryableError) Unwrap() error {
	return e.err
}

func newRetryableError(err error) error {
	return &retryableError{err: err}
}

func isRetryableError(err error) bool {
	var re *retryableError

	return errors.As(err, &re)
}

// tokenValidator matches idtoken.Validate.
type tokenValidator func(ctx context.Context, token, audience string) (*idtoken.Payload, error)

// PushHandler consumes domain events delivered by a Pub/Sub push subscription.
type PushHandler struct {
	verifyPushAuth bool
	audience       string
	validateToken  tokenValidator
	logger         *slog.Logger
	walletUC       usecase.WalletUsecase
	mailer         service.Mailer
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config   *config.Config
	Logger   *slog.Logger
	WalletUC usecase.WalletUsecase
	Mailer   service.Mailer
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	h := &PushHandler{
		validateToken: idtoken.Validate,
		logger:        params.Logger,
		walletUC:      params.WalletUC,
		mailer:        params.Mailer,
	}
	if w := params.Config.Worker; w != nil {
		h.verifyPushAuth = w.VerifyPushAuth
		h.audience = w.PushAudience
	}

	return h
}

// HandlePush answers 2xx to acknowledge and 5xx to have the message redelivered.
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verifyPushAuth {
		if err := h.verifyPubSubToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg pubsub.PushMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	event, err := pushMsg.Event()
	if err != nil {
		h.logger.Error("[Worker] Failed to decode event", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	requestID := h.extractRequestID(ctx, &pushMsg, event)
	reqLogger := h.logger.With(
		slog.String("request_id", requestID),
		slog.String("event_id", event.ID),
		slog.String("kind", string(event.Kind)),
	)
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	if err := h.dispatch(ctx, event); err != nil {
		reqLogger.Error("[Worker] Failed to process event",
			slog.Any("error", err),
			slog.Bool("retryable", isRetryableError(err)),
		)
		if isRetryableError(err) {
			return c.NoContent(http.StatusInternalServerError)
		}

		// Acknowledge poison messages so they are not redelivered forever.
		return c.NoContent(http.StatusOK)
	}

	reqLogger.Info("[Worker] Event processed")

	return c.NoContent(http.StatusOK)
}

func (h *PushHandler) dispatch(ctx context.Context, event *service.DomainEvent) error {
	switch event.Kind {
	case service.EventUserCreated:
		return h.handleUserCreated(ctx, event)
	case service.EventOrderPlaced:
		return h.handleOrderPlaced(ctx, event)
	case service.EventPasswordResetRequested:
		return h.handlePasswordResetRequested(ctx, event)
	default:
		deliverycontext.GetLoggerOrDefault(ctx, h.logger).Warn("[Worker] Ignoring unknown event kind")

		return nil
	}
}

// handleUserCreated repeats wallet provisioning, which is idempotent. A user
// that no longer exists will never get a wallet, so that event is acked.
func (h *PushHandler) handleUserCreated(ctx context.Context, event *service.DomainEvent) error {
	var payload service.UserCreatedPayload
	if err := json.Unmarshal(event.Payload, &payload); err != nil {
		return errors.Wrap(err, "invalid user.created payload")
	}

	userID, err := uuid.Parse(payload.UserID)
	if err != nil {
		return errors.Wrap(err, "invalid user id")
	}

	err = h.walletUC.ProvisionWallet(ctx, userID)
	if errors.Is(err, domainerrors.ErrUserNotFound) {
		deliverycontext.GetLoggerOrDefault(ctx, h.logger).Warn("[Worker] Skipping wallet for missing user",
			slog.String("user_id", payload.UserID),
		)

		return nil
	}
	if err != nil {
		return newRetryableError(err)
	}

	return nil
}

// handleOrderPlaced sends the confirmation email. Failures are logged only.
func (h *PushHandler) handleOrderPlaced(ctx context.Context, event *service.DomainEvent) error {
	var payload service.OrderPlacedPayload
	if err := json.Unmarshal(event.Payload, &payload); err != nil {
		return errors.Wrap(err, "invalid order.placed payload")
	}

	err := h.mailer.SendOrderConfirmation(ctx, &service.OrderConfirmation{
		To:        payload.Email,
		OrderIDs:  payload.OrderIDs,
		Subtotal:  payload.Subtotal,
		Discount:  payload.Discount,
		Total:     payload.Total,
		PromoCode: payload.PromoCode,
		ShipTo:    payload.ShipTo,
	})
	if err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, h.logger).Warn("[Worker] Order confirmation not sent",
			slog.Any("error", err),
		)
	}

	return nil
}

// handlePasswordResetRequested mails the reset link. Failures are logged only.
func (h *PushHandler) handlePasswordResetRequested(ctx context.Context, event *service.DomainEvent) error {
	var payload service.PasswordResetRequestedPayload
	if err := json.Unmarshal(event.Payload, &payload); err != nil {
		return errors.Wrap(err, "invalid password.reset_requested payload")
	}

	err := h.mailer.SendPasswordReset(ctx, &service.PasswordReset{
		To:    payload.Email,
		Token: payload.Token,
	})
	if err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, h.logger).Warn("[Worker] Password reset not sent",
			slog.Any("error", err),
		)
	}

	return nil
}

// extractRequestID prefers message attributes, then the event, then the inbound header.
func (h *PushHandler) extractRequestID(ctx context.Context, pushMsg *pubsub.PushMessage, event *service.DomainEvent) string {
	if requestID := pushMsg.Message.Attributes[pubsub.AttrRequestID]; requestID != "" {
		return requestID
	}
	if event.RequestID != "" {
		return event.RequestID
	}
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.New().String()
}

// verifyPubSubToken verifies the Google-signed OIDC token of a push request.
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func (h *PushHandler) verifyPubSubToken(req *http.Request) error {
	authHeader := req.Header.Get(echo.HeaderAuthorization)
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	token, found := strings.CutPrefix(authHeader, "Bearer ")
	if !found {
		return errors.New("invalid authorization header format")
	}

	// Without a configured audience the endpoint URL is expected.
	audience := h.audience
	if audience == "" {
		scheme := "https"
		if req.TLS == nil {
			scheme = "http"
		}
		audience = fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)
	}

	payload, err := h.validateToken(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
