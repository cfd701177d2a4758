package impl

import (
	"shop/internal/usecase"

	"go.uber.org/fx"
)

// Module provides every use case. The wallet service doubles as the
// user-created hook that provisions the starting balance.
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		NewUserService,
		NewAddressService,
		NewCartService,
		NewOrderService,
		NewPromoService,
		NewReviewService,
		NewFavoriteService,
		NewWalletService,
		fx.Annotate(
			asUserCreatedHook,
			fx.ResultTags(`group:"user_created_hooks"`),
		),
	),
)

func asUserCreatedHook(wallet usecase.WalletUsecase) usecase.UserCreatedHook {
	return wallet
}
