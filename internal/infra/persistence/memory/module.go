package memory

import (
	"shop/internal/domain/repository"

	"go.uber.org/fx"
)

// Module wires the in-memory adapter. Repositories outside a transaction lock
// the store per call.
var Module = fx.Options(
	fx.Provide(
		NewStore,
		NewTransactionManager,
		NewRepositoryFactory,
		func(f repository.RepositoryFactory) repository.UserRepository { return f.UserRepo() },
		func(f repository.RepositoryFactory) repository.ProductRepository { return f.ProductRepo() },
		func(f repository.RepositoryFactory) repository.AddressRepository { return f.AddressRepo() },
		func(f repository.RepositoryFactory) repository.CartRepository { return f.CartRepo() },
		func(f repository.RepositoryFactory) repository.OrderRepository { return f.OrderRepo() },
		func(f repository.RepositoryFactory) repository.PromoCodeRepository { return f.PromoCodeRepo() },
		func(f repository.RepositoryFactory) repository.WalletRepository { return f.WalletRepo() },
		func(f repository.RepositoryFactory) repository.ReviewRepository { return f.ReviewRepo() },
		func(f repository.RepositoryFactory) repository.FavoriteRepository { return f.FavoriteRepo() },
	),
)
