package handler

import "go.uber.org/fx"

// Module provides every API handler.
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		NewAuthHandler,
		NewAddressHandler,
		NewCartHandler,
		NewOrderHandler,
		NewWalletHandler,
		NewPromoHandler,
		NewReviewHandler,
		NewFavoriteHandler,
	),
)
