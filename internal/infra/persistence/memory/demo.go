package memory

import (
	"time"

	"shop/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SeedDemoCatalog fills an empty store with a few products and a promo code so
// the API can be explored without a database.
func SeedDemoCatalog(store *Store, now time.Time) {
	category := uuid.MustParse("0b0d5e4c-5a7e-4c53-9a43-6b8b2d1f0001")

	store.SeedProducts(
		&entity.Product{
			ID:         uuid.MustParse("5f1c3a52-7a8e-4a55-8d9e-1a2b3c4d0001"),
			Name:       "Espresso beans 1kg",
			Price:      decimal.RequireFromString("24.90"),
			Quantity:   120,
			CategoryID: category,
			CreatedAt:  now,
		},
		&entity.Product{
			ID:         uuid.MustParse("5f1c3a52-7a8e-4a55-8d9e-1a2b3c4d0002"),
			Name:       "Burr grinder",
			Price:      decimal.RequireFromString("149.00"),
			Quantity:   15,
			CategoryID: category,
			CreatedAt:  now,
		},
		&entity.Product{
			ID:         uuid.MustParse("5f1c3a52-7a8e-4a55-8d9e-1a2b3c4d0003"),
			Name:       "Milk pitcher",
			Price:      decimal.RequireFromString("12.50"),
			Quantity:   60,
			CategoryID: category,
			CreatedAt:  now,
		},
	)

	store.SeedPromoCodes(&entity.PromoCode{
		ID:                 uuid.MustParse("9a7f0c11-2b3c-4d5e-8f90-a1b2c3d40001"),
		Code:               "WELCOME10",
		DiscountPercentage: decimal.NewFromInt(10),
		StartTime:          now.Add(-time.Hour),
		EndTime:            now.AddDate(0, 1, 0),
		MaxUsage:           100,
		CreatedAt:          now,
		UpdatedAt:          now,
	})
}
