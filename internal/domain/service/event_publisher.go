package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// EventKind names a domain event.
type EventKind string

const (
	// EventUserCreated is emitted once a user account is persisted.
	EventUserCreated EventKind = "user.created"
	// EventOrderPlaced is emitted after a checkout commits.
	EventOrderPlaced EventKind = "order.placed"
	// EventPasswordResetRequested carries a reset token to the mail worker.
	EventPasswordResetRequested EventKind = "password.reset_requested"
)

// DomainEvent is the envelope carried by every publisher.
type DomainEvent struct {
	ID         string          `json:"id"`
	Kind       EventKind       `json:"kind"`
	RequestID  string          `json:"request_id,omitempty"` // For distributed tracing
	OccurredAt time.Time       `json:"occurred_at"`
	Payload    json.RawMessage `json:"payload"`
}

// NewDomainEvent marshals payload into a fresh event envelope.
func NewDomainEvent(kind EventKind, payload any) (*DomainEvent, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	return &DomainEvent{
		ID:         uuid.NewString(),
		Kind:       kind,
		OccurredAt: time.Now().UTC(),
		Payload:    raw,
	}, nil
}

// UserCreatedPayload is the payload of EventUserCreated.
type UserCreatedPayload struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
}

// OrderPlacedPayload is the payload of EventOrderPlaced.
type OrderPlacedPayload struct {
	UserID    string   `json:"user_id"`
	Email     string   `json:"email"`
	OrderIDs  []string `json:"order_ids"`
	Subtotal  string   `json:"subtotal"`
	Discount  string   `json:"discount"`
	Total     string   `json:"total"`
	PromoCode string   `json:"promo_code,omitempty"`
	ShipTo    string   `json:"ship_to"`
}

// PasswordResetRequestedPayload is the payload of EventPasswordResetRequested.
type PasswordResetRequestedPayload struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Token  string `json:"token"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// Publish sends the event to the configured broker.
	Publish(ctx context.Context, event *DomainEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
