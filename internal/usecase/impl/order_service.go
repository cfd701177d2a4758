package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"shop/internal/domain/entity"
	domainerrors "shop/internal/domain/errors"
	"shop/internal/domain/repository"
	"shop/internal/domain/service"
	"shop/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

type orderService struct {
	txManager   repository.TransactionManager
	orderRepo   repository.OrderRepository
	users       usecase.UserUsecase
	wallet      usecase.WalletUsecase
	idempotency service.IdempotencyStore
	notifier    service.Notifier
	clock       service.Clock
	metrics     service.MetricsRecorder
	logger      *slog.Logger
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	OrderRepo   repository.OrderRepository
	Users       usecase.UserUsecase
	Wallet      usecase.WalletUsecase
	Idempotency service.IdempotencyStore
	Notifier    service.Notifier
	Clock       service.Clock           `optional:"true"`
	Metrics     service.MetricsRecorder `optional:"true"`
	Logger      *slog.Logger
}

// NewOrderService builds the order engine.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		txManager:   params.TxManager,
		orderRepo:   params.OrderRepo,
		users:       params.Users,
		wallet:      params.Wallet,
		idempotency: params.Idempotency,
		notifier:    params.Notifier,
		clock:       clockOrSystem(params.Clock),
		metrics:     metricsOrNoop(params.Metrics),
		logger:      params.Logger,
	}
}

func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return scopedLogger(ctx, srv.logger)
}

// Checkout drains the cart into processing orders inside a single transaction.
// Any failure leaves the cart, the promo code and the orders table untouched.
func (srv *orderService) Checkout(ctx context.Context, userID uuid.UUID, input usecase.CheckoutInput) (result *usecase.CheckoutResult, err error) {
	defer func() { srv.metrics.ObserveOperation(opOrderCheckout, outcomeOf(err)) }()

	code := strings.TrimSpace(input.PromoCode)
	var shipTo string

	err = srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		address, addrErr := factory.AddressRepo().FindShippingAddressByUser(ctx, userID)
		if errors.Is(addrErr, repository.ErrShippingAddressNotFound) {
			return errors.Wrap(domainerrors.ErrShippingAddressNotFound, "checkout")
		}
		if addrErr != nil {
			return errors.Wrap(addrErr, "failed to resolve shipping address")
		}

		items, drainErr := factory.CartRepo().DrainCart(ctx, userID)
		if drainErr != nil {
			return errors.Wrap(drainErr, "failed to drain cart")
		}
		if len(items) == 0 {
			return errors.Wrap(domainerrors.ErrEmptyCart, "checkout")
		}

		products, loadErr := productsByID(ctx, factory.ProductRepo(), items)
		if loadErr != nil {
			return loadErr
		}

		now := srv.clock.Now()
		subtotal := decimal.Zero
		for _, item := range items {
			product, ok := products[item.ProductID]
			if !ok {
				return errors.Wrap(domainerrors.ErrProductNotFound, item.ProductID.String())
			}
			subtotal = subtotal.Add(entity.NewCartLine(product, item.Quantity).LineTotal)
		}

		discount := decimal.Zero
		var appliedCode *string
		if code != "" {
			promo, redeemErr := redeemPromoCode(ctx, factory.PromoCodeRepo(), code, now)
			if redeemErr != nil {
				return redeemErr
			}
			discount = promo.Discount(subtotal)
			appliedCode = &promo.Code
		}

		orders := make([]*entity.Order, 0, len(items))
		for _, item := range items {
			orders = append(orders, &entity.Order{
				ID:                uuid.Must(uuid.NewV7()),
				UserID:            userID,
				ShippingAddressID: address.ID,
				ProductID:         item.ProductID,
				Quantity:          item.Quantity,
				Status:            entity.OrderStatusProcessing,
				PromoCode:         appliedCode,
				CreatedAt:         now,
				UpdatedAt:         now,
			})
		}
		if createErr := factory.OrderRepo().CreateOrders(ctx, orders); createErr != nil {
			return errors.Wrap(createErr, "failed to create orders")
		}

		shipTo = address.String()
		result = &usecase.CheckoutResult{
			Orders:    orders,
			Subtotal:  subtotal,
			Discount:  discount,
			Total:     subtotal.Sub(discount),
			PromoCode: appliedCode,
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Info("Checkout aborted", slog.Any("userID", userID), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("Checkout completed", slog.Any("userID", userID), slog.Int("orders", len(result.Orders)), slog.String("total", result.Total.String()))

	srv.notifyOrderPlaced(ctx, userID, result, shipTo)

	return result, nil
}

func (srv *orderService) notifyOrderPlaced(ctx context.Context, userID uuid.UUID, result *usecase.CheckoutResult, shipTo string) {
	email, err := srv.users.EmailOf(ctx, userID)
	if err != nil {
		srv.log(ctx).Warn("Skipping order notification, email unavailable", slog.Any("userID", userID), slog.Any("error", err))

		return
	}

	orderIDs := make([]string, 0, len(result.Orders))
	for _, o := range result.Orders {
		orderIDs = append(orderIDs, o.ID.String())
	}

	payload := service.OrderPlacedPayload{
		UserID:   userID.String(),
		Email:    email,
		OrderIDs: orderIDs,
		Subtotal: result.Subtotal.StringFixed(2),
		Discount: result.Discount.StringFixed(2),
		Total:    result.Total.StringFixed(2),
		ShipTo:   shipTo,
	}
	if result.PromoCode != nil {
		payload.PromoCode = *result.PromoCode
	}

	srv.notifier.Notify(ctx, service.EventOrderPlaced, payload)
}

// ListOrders returns the user's orders in insertion order.
func (srv *orderService) ListOrders(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error) {
	orders, err := srv.orderRepo.FindOrdersByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return orders, nil
}

// MarkCompleted completes every processing order of the pair. Orders that are
// already completed stay as they are.
func (srv *orderService) MarkCompleted(ctx context.Context, userID, productID uuid.UUID) ([]*entity.Order, error) {
	var orders []*entity.Order

	err := srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		orderRepo := factory.OrderRepo()

		found, findErr := orderRepo.FindOrdersByUserAndProduct(ctx, userID, productID)
		if findErr != nil {
			return errors.Wrap(findErr, "failed to find orders")
		}
		if len(found) == 0 {
			return errors.Wrap(domainerrors.ErrOrderNotFound, productID.String())
		}

		now := srv.clock.Now()
		pending := 0
		for _, o := range found {
			if o.Complete(now) {
				pending++
			}
		}
		if pending > 0 {
			if _, updateErr := orderRepo.CompleteOrders(ctx, userID, productID, now); updateErr != nil {
				return errors.Wrap(updateErr, "failed to complete orders")
			}
		}
		orders = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Orders completed", slog.Any("userID", userID), slog.Any("productID", productID), slog.Int("orders", len(orders)))

	return orders, nil
}

// Pay debits the wallet. A repeated idempotency key is refused without
// touching the balance.
func (srv *orderService) Pay(ctx context.Context, userID uuid.UUID, input usecase.PayInput) (result *usecase.PaymentResult, err error) {
	defer func() { srv.metrics.ObserveOperation(opOrderPay, outcomeOf(err)) }()

	if !input.Amount.IsPositive() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("amount must be greater than zero")
	}

	key := strings.TrimSpace(input.IdempotencyKey)
	if key != "" {
		key = paymentKey(userID, key)

		reserved, reserveErr := srv.idempotency.Reserve(ctx, key)
		if reserveErr != nil {
			return nil, errors.Wrap(reserveErr, "failed to reserve idempotency key")
		}
		if !reserved {
			return nil, errors.Wrap(domainerrors.ErrDuplicateRequest, "payment")
		}
	}

	balance, err := srv.wallet.Debit(ctx, userID, input.Amount)
	if err != nil {
		if key != "" {
			if releaseErr := srv.idempotency.Release(context.WithoutCancel(ctx), key); releaseErr != nil {
				srv.log(ctx).Warn("Failed to release idempotency key", slog.String("key", key), slog.Any("error", releaseErr))
			}
		}

		return nil, err
	}

	return &usecase.PaymentResult{Balance: balance}, nil
}

func paymentKey(userID uuid.UUID, key string) string {
	return fmt.Sprintf("pay:%s:%s", userID, key)
}
