package entity

import (
	"time"

	"github.com/google/uuid"
)

const (
	MinReviewStar = 1
	MaxReviewStar = 5
)

// Review is a user's rating of a product; one per (UserID, ProductID).
type Review struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	ProductID  uuid.UUID
	Comment    string
	Star       float64
	ReviewedAt time.Time
	UpdatedAt  time.Time
}

// Like marks that a user likes a product; one per (UserID, ProductID).
type Like struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	ProductID uuid.UUID
	CreatedAt time.Time
}
