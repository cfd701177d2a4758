package entity

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ShippingAddress is where an order is delivered.
type ShippingAddress struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	PhoneNumber   string
	PostalCode    string
	StreetAddress string
	HouseNumber   string
	City          string
	State         string
	Country       string
	CreatedAt     time.Time
}

// String renders the address on a single line, e.g. for confirmation emails.
func (a *ShippingAddress) String() string {
	return fmt.Sprintf("%s %s, %s, %s %s, %s",
		a.HouseNumber, a.StreetAddress, a.City, a.State, a.PostalCode, a.Country)
}
