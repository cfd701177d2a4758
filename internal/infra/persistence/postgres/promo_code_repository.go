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
	"gorm.io/gorm/clause"
)

// promoCodeRepository implements the repository.PromoCodeRepository interface.
type promoCodeRepository struct {
	db *gorm.DB
}

// NewPromoCodeRepository is the constructor for promoCodeRepository.
func NewPromoCodeRepository(db *gorm.DB) repository.PromoCodeRepository {
	return &promoCodeRepository{db: db}
}

func (repo *promoCodeRepository) FindPromoCodeByCode(ctx context.Context, code string) (*entity.PromoCode, error) {
	return repo.first(repo.db.WithContext(ctx), code)
}

// FindPromoCodeByCodeForUpdate issues SELECT ... FOR UPDATE.
func (repo *promoCodeRepository) FindPromoCodeByCodeForUpdate(ctx context.Context, code string) (*entity.PromoCode, error) {
	return repo.first(repo.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), code)
}

// IncrementUsage is a conditional update; the cap holds even without the row lock.
func (repo *promoCodeRepository) IncrementUsage(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.PromoCodeModel{}).
		Where("id = ? AND current_usage < max_usage", id).
		Updates(map[string]any{
			"current_usage": gorm.Expr("current_usage + 1"),
			"updated_at":    time.Now(),
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to increment promo code usage")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPromoCodeUsageExhausted
	}

	return nil
}

func (repo *promoCodeRepository) first(db *gorm.DB, code string) (*entity.PromoCode, error) {
	var promoM model.PromoCodeModel
	if err := db.Where("code = ?", code).First(&promoM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPromoCodeNotFound
		}

		return nil, errors.Wrap(err, "failed to find promo code")
	}

	return &entity.PromoCode{
		ID:                 promoM.ID,
		Code:               promoM.Code,
		DiscountPercentage: promoM.DiscountPercentage,
		StartTime:          promoM.StartTime,
		EndTime:            promoM.EndTime,
		MaxUsage:           promoM.MaxUsage,
		CurrentUsage:       promoM.CurrentUsage,
		CreatedAt:          promoM.CreatedAt,
		UpdatedAt:          promoM.UpdatedAt,
	}, nil
}
