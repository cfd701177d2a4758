package postgres

import (
	"context"

	"shop/internal/domain/entity"
	domainerrors "shop/internal/domain/errors"
	"shop/internal/domain/repository"
	"shop/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// addressRepository implements the repository.AddressRepository interface.
type addressRepository struct {
	db *gorm.DB
}

// NewAddressRepository is the constructor for addressRepository.
func NewAddressRepository(db *gorm.DB) repository.AddressRepository {
	return &addressRepository{db: db}
}

// CreateShippingAddress persists a new address for a user.
func (repo *addressRepository) CreateShippingAddress(ctx context.Context, address *entity.ShippingAddress) error {
	addressM := fromAddressDomain(address)

	if err := repo.db.WithContext(ctx).Create(addressM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("invalid address owner")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create shipping address")
	}

	address.CreatedAt = addressM.CreatedAt

	return nil
}

// FindShippingAddressByUser returns the oldest address of the user.
func (repo *addressRepository) FindShippingAddressByUser(ctx context.Context, userID uuid.UUID) (*entity.ShippingAddress, error) {
	var addressM model.ShippingAddressModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at, id").
		First(&addressM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrShippingAddressNotFound
		}

		return nil, errors.Wrap(err, "failed to find shipping address")
	}

	return toAddressDomain(&addressM), nil
}

// FindShippingAddressesByUser lists every address of the user, oldest first.
func (repo *addressRepository) FindShippingAddressesByUser(ctx context.Context, userID uuid.UUID) ([]*entity.ShippingAddress, error) {
	var addressModels []*model.ShippingAddressModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at, id").
		Find(&addressModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list shipping addresses")
	}

	addresses := make([]*entity.ShippingAddress, 0, len(addressModels))
	for _, addressM := range addressModels {
		addresses = append(addresses, toAddressDomain(addressM))
	}

	return addresses, nil
}

// UpdateShippingAddress rewrites the address fields, scoped by id and owner.
func (repo *addressRepository) UpdateShippingAddress(ctx context.Context, address *entity.ShippingAddress) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ShippingAddressModel{}).
		Where("id = ? AND user_id = ?", address.ID, address.UserID).
		Updates(map[string]any{
			"phone_number":   address.PhoneNumber,
			"postal_code":    address.PostalCode,
			"street_address": address.StreetAddress,
			"house_number":   address.HouseNumber,
			"city":           address.City,
			"state":          address.State,
			"country":        address.Country,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update shipping address")
	}
	if result.RowsAffected == 0 {
		return repository.ErrShippingAddressNotFound
	}

	return nil
}

// DeleteShippingAddress deletes the address unless an order references it.
// A zero-row delete is resolved into not found or in use with one extra lookup.
func (repo *addressRepository) DeleteShippingAddress(ctx context.Context, userID, addressID uuid.UUID) error {
	db := repo.db.WithContext(ctx)
	referenced := db.Model(&model.OrderModel{}).Select("1").Where("orders.shipping_address_id = shipping_addresses.id")

	result := db.
		Where("id = ? AND user_id = ?", addressID, userID).
		Where("NOT EXISTS (?)", referenced).
		Delete(&model.ShippingAddressModel{})
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return repository.ErrShippingAddressInUse
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete shipping address")
	}
	if result.RowsAffected == 1 {
		return nil
	}

	var count int64
	err := db.Model(&model.ShippingAddressModel{}).
		Where("id = ? AND user_id = ?", addressID, userID).
		Count(&count).Error
	if err != nil {
		return errors.Wrap(err, "failed to look up shipping address")
	}
	if count == 0 {
		return repository.ErrShippingAddressNotFound
	}

	return repository.ErrShippingAddressInUse
}

func toAddressDomain(data *model.ShippingAddressModel) *entity.ShippingAddress {
	return &entity.ShippingAddress{
		ID:            data.ID,
		UserID:        data.UserID,
		PhoneNumber:   data.PhoneNumber,
		PostalCode:    data.PostalCode,
		StreetAddress: data.StreetAddress,
		HouseNumber:   data.HouseNumber,
		City:          data.City,
		State:         data.State,
		Country:       data.Country,
		CreatedAt:     data.CreatedAt,
	}
}

func fromAddressDomain(data *entity.ShippingAddress) *model.ShippingAddressModel {
	return &model.ShippingAddressModel{
		ID:            data.ID,
		UserID:        data.UserID,
		PhoneNumber:   data.PhoneNumber,
		PostalCode:    data.PostalCode,
		StreetAddress: data.StreetAddress,
		HouseNumber:   data.HouseNumber,
		City:          data.City,
		State:         data.State,
		Country:       data.Country,
		CreatedAt:     data.CreatedAt,
	}
}
