package pubsub

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"shop/internal/domain/service"

	"cloud.google.com/go/pubsub/v2"
	pubsubpb "cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"github.com/pkg/errors"
)

// googlePubSubPublisher delivers shop domain events (order placed, user created,
// password reset requested) to a Cloud Pub/Sub topic whose push subscription
// targets the worker's /pubsub/push endpoint.
type googlePubSubPublisher struct {
	client    *pubsub.Client
	publisher *pubsub.Publisher
	topicPath string
	logger    *slog.Logger
}

// NewGooglePubSubPublisher connects to projectID and fails fast when the shop
// events topic does not exist.
func NewGooglePubSubPublisher(ctx context.Context, projectID, topicID string, logger *slog.Logger) (service.EventPublisher, error) {
	client, err := pubsub.NewClient(ctx, projectID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create pubsub client")
	}

	topicPath := shopTopicPath(projectID, topicID)
	if _, err = client.TopicAdminClient.GetTopic(ctx, &pubsubpb.GetTopicRequest{Topic: topicPath}); err != nil {
		_ = client.Close()

		return nil, errors.Wrapf(err, "shop events topic %s is not available", topicPath)
	}

	return &googlePubSubPublisher{
		client:    client,
		publisher: client.Publisher(topicID),
		topicPath: topicPath,
		logger:    logger,
	}, nil
}

func shopTopicPath(projectID, topicID string) string {
	return fmt.Sprintf("projects/%s/topics/%s", projectID, topicID)
}

// newShopMessage encodes event as the Pub/Sub message body. The kind, id and
// request id travel as attributes so subscriptions can filter on kind without
// decoding the payload.
func newShopMessage(event *service.DomainEvent) (*pubsub.Message, error) {
	if event == nil || event.Kind == "" {
		return nil, errors.New("event kind is required")
	}

	data, err := json.Marshal(event)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to encode %s event", event.Kind)
	}

	return &pubsub.Message{
		Data:       data,
		Attributes: eventAttributes(event),
	}, nil
}

// Publish blocks until Pub/Sub has stored the event. Callers that must not wait
// go through the notifier instead.
func (p *googlePubSubPublisher) Publish(ctx context.Context, event *service.DomainEvent) error {
	msg, err := newShopMessage(event)
	if err != nil {
		return err
	}

	serverID, err := p.publisher.Publish(ctx, msg).Get(ctx)
	if err != nil {
		return errors.Wrapf(err, "failed to publish %s event %s", event.Kind, event.ID)
	}

	p.logger.Info("[GooglePubSub] Shop event stored",
		slog.String("topic", p.topicPath),
		slog.String("kind", string(event.Kind)),
		slog.String("event_id", event.ID),
		slog.String("server_id", serverID),
	)

	return nil
}

// Close flushes pending events and releases the client.
func (p *googlePubSubPublisher) Close() error {
	if p.publisher != nil {
		p.publisher.Stop()
	}
	if p.client == nil {
		return nil
	}

	return errors.WithStack(p.client.Close())
}
