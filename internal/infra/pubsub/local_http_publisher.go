package pubsub

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	deliverycontext "shop/internal/delivery/context"
	"shop/internal/domain/service"

	"github.com/pkg/errors"
)

const (
	localSubscription = "projects/local/subscriptions/shop-events"

	// HeaderEventKind and HeaderEventID mirror the message attributes so the
	// worker access log shows which shop event a push carried.
	HeaderEventKind = "X-Shop-Event-Kind"
	HeaderEventID   = "X-Shop-Event-ID"

	localPushTimeout = 30 * time.Second
)

// localHTTPPublisher pushes shop events straight to the worker in develop, in
// the same envelope a Pub/Sub push subscription would deliver.
type localHTTPPublisher struct {
	endpoint   string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewLocalHTTPPublisher posts every event to endpoint, usually the worker's
// /pubsub/push route.
func NewLocalHTTPPublisher(endpoint string, logger *slog.Logger) service.EventPublisher {
	return &localHTTPPublisher{
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: localPushTimeout},
		logger:     logger,
	}
}

func (p *localHTTPPublisher) newPushRequest(ctx context.Context, event *service.DomainEvent) (*http.Request, error) {
	pushMsg, err := NewPushMessage(event, localSubscription)
	if err != nil {
		return nil, err
	}

	body, err := json.Marshal(pushMsg)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to encode push envelope for %s", event.Kind)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(HeaderEventKind, string(event.Kind))
	req.Header.Set(HeaderEventID, event.ID)
	if event.RequestID != "" {
		req.Header.Set(deliverycontext.HeaderXRequestID, event.RequestID)
	}

	return req, nil
}

// Publish returns an error when the worker does not answer 2xx, which is the
// same signal Pub/Sub would treat as a nack.
func (p *localHTTPPublisher) Publish(ctx context.Context, event *service.DomainEvent) error {
	req, err := p.newPushRequest(ctx, event)
	if err != nil {
		return err
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return errors.Wrapf(err, "failed to push %s event %s", event.Kind, event.ID)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return errors.Errorf("worker rejected %s event %s with status %d", event.Kind, event.ID, resp.StatusCode)
	}

	p.logger.Debug("[LocalPubSub] Shop event pushed",
		slog.String("endpoint", p.endpoint),
		slog.String("kind", string(event.Kind)),
		slog.String("event_id", event.ID),
	)

	return nil
}

func (p *localHTTPPublisher) Close() error {
	return nil
}
