package pubsub

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"
	"time"

	deliverycontext "shop/internal/delivery/context"
	"shop/internal/domain/service"
	mockService "shop/internal/mocks/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNotifier_PublishesAfterCallerCancels(t *testing.T) {
	publisher := mockService.NewMockEventPublisher(t)
	n := newNotifier(publisher, time.Second, newDiscardLogger())

	ctx, cancel := context.WithCancel(deliverycontext.WithRequestID(context.Background(), "req-1"))

	published := make(chan *service.DomainEvent, 1)
	publisher.EXPECT().
		Publish(mock.Anything, mock.AnythingOfType("*service.DomainEvent")).
		RunAndReturn(func(pubCtx context.Context, event *service.DomainEvent) error {
			// The caller's context is already cancelled here.
			assert.NoError(t, pubCtx.Err())
			_, hasDeadline := pubCtx.Deadline()
			assert.True(t, hasDeadline)
			published <- event

			return nil
		}).
		Once()

	cancel()
	n.Notify(ctx, service.EventUserCreated, service.UserCreatedPayload{UserID: "u-1", Email: "a@b.c"})
	n.Wait(context.Background())

	event := <-published
	assert.Equal(t, service.EventUserCreated, event.Kind)
	assert.Equal(t, "req-1", event.RequestID)
	assert.NotEmpty(t, event.ID)

	var payload service.UserCreatedPayload
	require.NoError(t, json.Unmarshal(event.Payload, &payload))
	assert.Equal(t, "u-1", payload.UserID)
	assert.Equal(t, "a@b.c", payload.Email)
}

func TestNotifier_SwallowsPublishFailure(t *testing.T) {
	publisher := mockService.NewMockEventPublisher(t)
	n := newNotifier(publisher, time.Second, newDiscardLogger())

	publisher.EXPECT().
		Publish(mock.Anything, mock.Anything).
		Return(errors.New("broker unavailable")).
		Once()

	assert.NotPanics(t, func() {
		n.Notify(context.Background(), service.EventOrderPlaced, service.OrderPlacedPayload{UserID: "u-1"})
		n.Wait(context.Background())
	})
}

func TestNotifier_DropsUnencodablePayload(t *testing.T) {
	publisher := mockService.NewMockEventPublisher(t)
	n := newNotifier(publisher, time.Second, newDiscardLogger())

	n.Notify(context.Background(), service.EventOrderPlaced, make(chan int))
	n.Wait(context.Background())

	publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestNotifier_DoesNotBlockCaller(t *testing.T) {
	publisher := mockService.NewMockEventPublisher(t)
	n := newNotifier(publisher, time.Second, newDiscardLogger())

	release := make(chan struct{})
	publisher.EXPECT().
		Publish(mock.Anything, mock.Anything).
		RunAndReturn(func(context.Context, *service.DomainEvent) error {
			<-release

			return nil
		}).
		Once()

	returned := make(chan struct{})
	go func() {
		n.Notify(context.Background(), service.EventUserCreated, service.UserCreatedPayload{UserID: "u-1"})
		close(returned)
	}()

	select {
	case <-returned:
	case <-time.After(time.Second):
		t.Fatal("Notify blocked on the publisher")
	}

	close(release)
	n.Wait(context.Background())
}
