// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is an account able to own a cart, orders and a wallet.
type User struct {
	ID           uuid.UUID // The Global Unique Identifier (GUID) for the user.
	Email        string    // Primary contact email, also the login identifier.
	Name         string    // Display name.
	PasswordHash string    // bcrypt hash; never serialized.
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
