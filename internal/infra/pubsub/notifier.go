package pubsub

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"shop/config"
	deliverycontext "shop/internal/delivery/context"
	"shop/internal/domain/service"

	"go.uber.org/fx"
)

const defaultPublishTimeout = 5 * time.Second

// NotifierParams holds dependencies for the Notifier, injected by Fx
type NotifierParams struct {
	fx.In

	Lc        fx.Lifecycle
	Config    *config.Config
	Publisher service.EventPublisher
	Logger    *slog.Logger
}

// Notifier publishes domain events in the background.
type Notifier struct {
	publisher service.EventPublisher
	timeout   time.Duration
	logger    *slog.Logger
	inflight  sync.WaitGroup
}

// NewNotifier builds the Notifier and drains in-flight publishes on shutdown.
func NewNotifier(params NotifierParams) service.Notifier {
	timeout := defaultPublishTimeout
	if cfg := params.Config.PubSub; cfg != nil && cfg.PublishTimeout > 0 {
		timeout = cfg.PublishTimeout
	}

	n := newNotifier(params.Publisher, timeout, params.Logger)

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			n.Wait(ctx)

			return nil
		},
	})

	return n
}

func newNotifier(publisher service.EventPublisher, timeout time.Duration, logger *slog.Logger) *Notifier {
	return &Notifier{
		publisher: publisher,
		timeout:   timeout,
		logger:    logger,
	}
}

// Notify never blocks on the broker and never reports failure to the caller.
// The publish outlives the caller's cancellation but is bounded by the timeout.
func (n *Notifier) Notify(ctx context.Context, kind service.EventKind, payload any) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, n.logger)

	event, err := service.NewDomainEvent(kind, payload)
	if err != nil {
		logger.Warn("Dropping event with unencodable payload",
			slog.String("kind", string(kind)),
			slog.Any("error", err),
		)

		return
	}
	event.RequestID = deliverycontext.GetRequestIDFromContext(ctx)

	detached := context.WithoutCancel(ctx)

	n.inflight.Add(1)
	go func() {
		defer n.inflight.Done()

		publishCtx, cancel := context.WithTimeout(detached, n.timeout)
		defer cancel()

		if err := n.publisher.Publish(publishCtx, event); err != nil {
			logger.Warn("Failed to publish event",
				slog.String("event_id", event.ID),
				slog.String("kind", string(kind)),
				slog.Any("error", err),
			)
		}
	}()
}

// Wait blocks until in-flight publishes finish or ctx is done.
func (n *Notifier) Wait(ctx context.Context) {
	done := make(chan struct{})
	go func() {
		n.inflight.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		n.logger.Warn("Shutdown reached with events still publishing")
	}
}
