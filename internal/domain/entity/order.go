package entity

import (
	"time"

	"github.com/google/uuid"
)

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

const (
	// OrderStatusProcessing is the initial state of every order.
	OrderStatusProcessing OrderStatus = "processing"
	// OrderStatusCompleted is terminal.
	OrderStatusCompleted OrderStatus = "completed"
)

// IsValid checks if the status is a known value.
func (s OrderStatus) IsValid() bool {
	return s == OrderStatusProcessing || s == OrderStatusCompleted
}

// Order is a single product line that went through checkout.
type Order struct {
	ID                uuid.UUID
	UserID            uuid.UUID
	ShippingAddressID uuid.UUID
	ProductID         uuid.UUID
	Quantity          int
	Status            OrderStatus
	PromoCode         *string // code redeemed at checkout, nil when none was applied
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// Complete moves the order to completed. It reports false when the order was
// already completed, in which case nothing changes.
func (o *Order) Complete(now time.Time) bool {
	if o.Status == OrderStatusCompleted {
		return false
	}
	o.Status = OrderStatusCompleted
	o.UpdatedAt = now

	return true
}
