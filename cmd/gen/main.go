package main

import (
	"shop/internal/infra/persistence/model"

	"gorm.io/gen"
)

// Generates typed query helpers for the persistence models into
// internal/infra/persistence/postgres/query.
func main() {
	models := []any{
		model.UserModel{},
		model.ProductModel{},
		model.ShippingAddressModel{},
		model.CartItemModel{},
		model.OrderModel{},
		model.PromoCodeModel{},
		model.WalletModel{},
		model.ReviewModel{},
		model.LikeModel{},
		model.FavoriteModel{},
	}

	g := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
		Mode:    gen.WithDefaultQuery | gen.WithQueryInterface,
	})

	g.ApplyBasic(models...)

	g.Execute()
}
