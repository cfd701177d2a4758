package postgres

import (
	"context"
	"time"

	"shop/internal/domain/entity"
	domainerrors "shop/internal/domain/errors"
	"shop/internal/domain/repository"
	"shop/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// orderRepository implements the repository.OrderRepository interface.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{db: db}
}

// CreateOrders inserts the batch in one statement.
func (repo *orderRepository) CreateOrders(ctx context.Context, orders []*entity.Order) error {
	if len(orders) == 0 {
		return nil
	}

	orderModels := make([]*model.OrderModel, 0, len(orders))
	for _, o := range orders {
		orderModels = append(orderModels, fromOrderDomain(o))
	}

	if err := repo.db.WithContext(ctx).Create(&orderModels).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create orders")
	}

	return nil
}

func (repo *orderRepository) FindOrdersByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error) {
	return repo.find(ctx, repo.db.Where("user_id = ?", userID))
}

func (repo *orderRepository) FindOrdersByUserAndProduct(ctx context.Context, userID, productID uuid.UUID) ([]*entity.Order, error) {
	return repo.find(ctx, repo.db.Where("user_id = ? AND product_id = ?", userID, productID))
}

// CompleteOrders only touches processing rows, so completed orders keep their timestamps.
func (repo *orderRepository) CompleteOrders(ctx context.Context, userID, productID uuid.UUID, now time.Time) (int64, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("user_id = ? AND product_id = ? AND status = ?", userID, productID, string(entity.OrderStatusProcessing)).
		Updates(map[string]any{"status": string(entity.OrderStatusCompleted), "updated_at": now})
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to complete orders")
	}

	return result.RowsAffected, nil
}

func (repo *orderRepository) find(ctx context.Context, scope *gorm.DB) ([]*entity.Order, error) {
	var orderModels []*model.OrderModel
	if err := scope.WithContext(ctx).Order("created_at, id").Find(&orderModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	orders := make([]*entity.Order, 0, len(orderModels))
	for _, orderM := range orderModels {
		orders = append(orders, toOrderDomain(orderM))
	}

	return orders, nil
}

func toOrderDomain(data *model.OrderModel) *entity.Order {
	return &entity.Order{
		ID:                data.ID,
		UserID:            data.UserID,
		ShippingAddressID: data.ShippingAddressID,
		ProductID:         data.ProductID,
		Quantity:          data.Quantity,
		Status:            entity.OrderStatus(data.Status),
		PromoCode:         data.PromoCode,
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}
}

func fromOrderDomain(data *entity.Order) *model.OrderModel {
	return &model.OrderModel{
		ID:                data.ID,
		UserID:            data.UserID,
		ShippingAddressID: data.ShippingAddressID,
		ProductID:         data.ProductID,
		Quantity:          data.Quantity,
		Status:            string(data.Status),
		PromoCode:         data.PromoCode,
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}
}
