package entity

import (
	"time"

	"github.com/google/uuid"
)

// Favorite is a product a user keeps on their wishlist; one per (UserID, ProductID).
// Unlike a Like it is private to the user and not counted on the product.
type Favorite struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	ProductID uuid.UUID
	CreatedAt time.Time
}
