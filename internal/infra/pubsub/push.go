package pubsub

import (
	"encoding/base64"
	"encoding/json"
	"time"

	"shop/internal/domain/service"

	"github.com/pkg/errors"
)

// Attribute keys set on every published message.
const (
	AttrEventID   = "event_id"
	AttrKind      = "kind"
	AttrRequestID = "request_id"
)

// PushMessage represents the structure of a Pub/Sub push message.
// The local publisher produces the same shape Google Pub/Sub uses when pushing to HTTP endpoints.
type PushMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// NewPushMessage wraps an event the way a push subscription delivers it.
func NewPushMessage(event *service.DomainEvent, subscription string) (*PushMessage, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	msg := &PushMessage{Subscription: subscription}
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.MessageID = event.ID
	msg.Message.PublishTime = time.Now().UTC().Format(time.RFC3339)
	msg.Message.Attributes = eventAttributes(event)

	return msg, nil
}

// Event decodes the base64 data of the push message.
func (m *PushMessage) Event() (*service.DomainEvent, error) {
	raw, err := base64.StdEncoding.DecodeString(m.Message.Data)
	if err != nil {
		return nil, errors.Wrap(err, "invalid base64 message data")
	}

	event := new(service.DomainEvent)
	if err := json.Unmarshal(raw, event); err != nil {
		return nil, errors.Wrap(err, "invalid event payload")
	}
	if event.Kind == "" {
		return nil, errors.New("event kind is missing")
	}

	return event, nil
}

func eventAttributes(event *service.DomainEvent) map[string]string {
	attributes := map[string]string{
		AttrEventID: event.ID,
		AttrKind:    string(event.Kind),
	}
	if event.RequestID != "" {
		attributes[AttrRequestID] = event.RequestID
	}

	return attributes
}
