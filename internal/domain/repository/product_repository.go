package repository

import (
	"context"

	"shop/internal/domain/entity"
	"shop/internal/errors"

	"github.com/google/uuid"
)

// ErrProductNotFound is returned when the catalog has no such product.
var ErrProductNotFound = errors.New("product not found")

// ProductRepository is the read-only view of the catalog.
type ProductRepository interface {
	FindProductByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// FindProductsByIDs returns the products that exist; missing IDs are silently absent.
	FindProductsByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Product, error)
}
