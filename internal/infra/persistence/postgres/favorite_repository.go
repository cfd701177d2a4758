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
	"gorm.io/gorm/clause"
)

// favoriteRepository implements the repository.FavoriteRepository interface.
type favoriteRepository struct {
	db *gorm.DB
}

// NewFavoriteRepository is the constructor for favoriteRepository.
func NewFavoriteRepository(db *gorm.DB) repository.FavoriteRepository {
	return &favoriteRepository{db: db}
}

// AddFavorite uses INSERT ... ON CONFLICT (user_id, product_id) DO NOTHING.
func (repo *favoriteRepository) AddFavorite(ctx context.Context, favorite *entity.Favorite) (bool, error) {
	favoriteM := &model.FavoriteModel{
		ID:        favorite.ID,
		UserID:    favorite.UserID,
		ProductID: favorite.ProductID,
		CreatedAt: favorite.CreatedAt,
	}

	result := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "user_id"}, {Name: "product_id"}}, DoNothing: true}).
		Create(favoriteM)
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return false, domainerrors.ErrProductNotFound.WrapMessage("favourite references a missing product")
		}

		return false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to add favourite")
	}

	return result.RowsAffected == 1, nil
}

func (repo *favoriteRepository) DeleteFavorite(ctx context.Context, userID, productID uuid.UUID) (bool, error) {
	result := repo.db.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Delete(&model.FavoriteModel{})
	if result.Error != nil {
		return false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to remove favourite")
	}

	return result.RowsAffected > 0, nil
}

func (repo *favoriteRepository) FindFavoritesByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Favorite, error) {
	var favoriteModels []*model.FavoriteModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at, id").
		Find(&favoriteModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list favourites")
	}

	favorites := make([]*entity.Favorite, 0, len(favoriteModels))
	for _, favoriteM := range favoriteModels {
		favorites = append(favorites, &entity.Favorite{
			ID:        favoriteM.ID,
			UserID:    favoriteM.UserID,
			ProductID: favoriteM.ProductID,
			CreatedAt: favoriteM.CreatedAt,
		})
	}

	return favorites, nil
}
