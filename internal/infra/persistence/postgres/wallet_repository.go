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
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// walletRepository implements the repository.WalletRepository interface.
type walletRepository struct {
	db *gorm.DB
}

// NewWalletRepository is the constructor for walletRepository.
func NewWalletRepository(db *gorm.DB) repository.WalletRepository {
	return &walletRepository{db: db}
}

func (repo *walletRepository) FindWalletByUser(ctx context.Context, userID uuid.UUID) (*entity.Wallet, error) {
	return repo.first(repo.db.WithContext(ctx), userID)
}

// FindWalletByUserForUpdate issues SELECT ... FOR UPDATE.
func (repo *walletRepository) FindWalletByUserForUpdate(ctx context.Context, userID uuid.UUID) (*entity.Wallet, error) {
	return repo.first(repo.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), userID)
}

// CreateWalletIfAbsent uses INSERT ... ON CONFLICT (user_id) DO NOTHING.
func (repo *walletRepository) CreateWalletIfAbsent(ctx context.Context, wallet *entity.Wallet) (bool, error) {
	walletM := &model.WalletModel{
		ID:        wallet.ID,
		UserID:    wallet.UserID,
		Cash:      wallet.Cash,
		CreatedAt: wallet.CreatedAt,
		UpdatedAt: wallet.UpdatedAt,
	}

	result := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "user_id"}}, DoNothing: true}).
		Create(walletM)
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return false, domainerrors.ErrUserNotFound.WrapMessage("wallet owner does not exist")
		}

		return false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to create wallet")
	}

	return result.RowsAffected == 1, nil
}

// Debit runs UPDATE ... WHERE cash >= amount RETURNING cash.
func (repo *walletRepository) Debit(ctx context.Context, userID uuid.UUID, amount decimal.Decimal) (decimal.Decimal, error) {
	var walletM model.WalletModel
	result := repo.db.WithContext(ctx).
		Model(&walletM).
		Clauses(clause.Returning{Columns: []clause.Column{{Name: "cash"}}}).
		Where("user_id = ? AND cash >= ?", userID, amount).
		Updates(map[string]any{
			"cash":       gorm.Expr("cash - ?", amount),
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		if isCheckConstraintViolation(result.Error) {
			return decimal.Zero, repository.ErrInsufficientFunds
		}

		return decimal.Zero, domainerrors.NewDatabaseExecuteError(result.Error, "failed to debit wallet")
	}

	if result.RowsAffected == 0 {
		if _, err := repo.FindWalletByUser(ctx, userID); err != nil {
			return decimal.Zero, err
		}

		return decimal.Zero, repository.ErrInsufficientFunds
	}

	return walletM.Cash, nil
}

func (repo *walletRepository) first(db *gorm.DB, userID uuid.UUID) (*entity.Wallet, error) {
	var walletM model.WalletModel
	if err := db.Where("user_id = ?", userID).First(&walletM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrWalletNotFound
		}

		return nil, errors.Wrap(err, "failed to find wallet")
	}

	return &entity.Wallet{
		ID:        walletM.ID,
		UserID:    walletM.UserID,
		Cash:      walletM.Cash,
		CreatedAt: walletM.CreatedAt,
		UpdatedAt: walletM.UpdatedAt,
	}, nil
}
