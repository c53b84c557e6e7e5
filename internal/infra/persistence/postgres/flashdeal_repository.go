package postgres

import (
	"context"
	"time"

	"dealdrop/internal/domain/entity"
	domainerrors "dealdrop/internal/domain/errors"
	"dealdrop/internal/domain/repository"
	"dealdrop/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// flashDealRepository implements the repository.FlashDealRepository interface.
type flashDealRepository struct {
	db *gorm.DB
}

// NewFlashDealRepository is the constructor for flashDealRepository.
func NewFlashDealRepository(db *gorm.DB) repository.FlashDealRepository {
	return &flashDealRepository{
		db: db,
	}
}

// CreateFlashDeal persists a new flash deal.
func (repo *flashDealRepository) CreateFlashDeal(ctx context.Context, deal *entity.FlashDeal) error {
	dealM := fromFlashDealDomain(deal)

	if err := repo.db.WithContext(ctx).Create(dealM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid vendor reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required flash deal information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create flash deal")
	}

	// Update the entity with generated values
	deal.ID = dealM.ID
	deal.CreatedAt = dealM.CreatedAt
	deal.UpdatedAt = dealM.UpdatedAt

	return nil
}

// FindFlashDealByID retrieves a flash deal by its unique ID.
func (repo *flashDealRepository) FindFlashDealByID(ctx context.Context, id uuid.UUID) (*entity.FlashDeal, error) {
	var dealM model.FlashDealModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&dealM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrFlashDealNotFound
		}

		return nil, errors.Wrap(err, "failed to find flash deal by ID")
	}

	return toFlashDealDomain(&dealM), nil
}

// FindActiveFlashDeals retrieves all deals that have not expired as of the given time.
func (repo *flashDealRepository) FindActiveFlashDeals(ctx context.Context, now time.Time) ([]*entity.FlashDeal, error) {
	var dealModels []*model.FlashDealModel

	if err := repo.db.WithContext(ctx).
		Where("expires_at > ?", now).
		Order("expires_at ASC").
		Find(&dealModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find active flash deals")
	}

	deals := make([]*entity.FlashDeal, 0, len(dealModels))
	for _, dealM := range dealModels {
		deals = append(deals, toFlashDealDomain(dealM))
	}

	return deals, nil
}

// FindFlashDealsByVendor retrieves all flash deals posted by a vendor (excluding soft-deleted).
func (repo *flashDealRepository) FindFlashDealsByVendor(ctx context.Context, vendorID uuid.UUID) ([]*entity.FlashDeal, error) {
	var dealModels []*model.FlashDealModel

	if err := repo.db.WithContext(ctx).
		Where("vendor_id = ?", vendorID).
		Order("created_at DESC").
		Find(&dealModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find flash deals by vendor")
	}

	deals := make([]*entity.FlashDeal, 0, len(dealModels))
	for _, dealM := range dealModels {
		deals = append(deals, toFlashDealDomain(dealM))
	}

	return deals, nil
}

// IncrementRedemptions atomically increments current_redemptions while it is
// still below max_redemptions. The guard lives in the WHERE clause so two
// concurrent redemptions can never both take the last slot.
func (repo *flashDealRepository) IncrementRedemptions(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.FlashDealModel{}).
		Where("id = ? AND (max_redemptions IS NULL OR current_redemptions < max_redemptions)", id).
		Update("current_redemptions", gorm.Expr("current_redemptions + 1"))

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to increment redemptions")
	}

	if result.RowsAffected == 0 {
		return repository.ErrRedemptionExhausted
	}

	return nil
}

// DeleteFlashDeal removes a flash deal by its ID (soft delete).
func (repo *flashDealRepository) DeleteFlashDeal(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.FlashDealModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete flash deal")
	}

	if result.RowsAffected == 0 {
		return repository.ErrFlashDealNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toFlashDealDomain converts a GORM FlashDealModel to a domain FlashDeal entity.
func toFlashDealDomain(data *model.FlashDealModel) *entity.FlashDeal {
	if data == nil {
		return nil
	}

	return &entity.FlashDeal{
		ID:                 data.ID,
		VendorID:           data.VendorID,
		Title:              data.Title,
		Category:           data.Category,
		OriginalPrice:      data.OriginalPrice,
		FlashPrice:         data.FlashPrice,
		ExpiresAt:          data.ExpiresAt,
		MaxRedemptions:     data.MaxRedemptions,
		CurrentRedemptions: data.CurrentRedemptions,
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
	}
}

// fromFlashDealDomain converts a domain FlashDeal entity to a GORM FlashDealModel.
func fromFlashDealDomain(data *entity.FlashDeal) *model.FlashDealModel {
	if data == nil {
		return nil
	}

	return &model.FlashDealModel{
		ID:                 data.ID,
		VendorID:           data.VendorID,
		Title:              data.Title,
		Category:           data.Category,
		OriginalPrice:      data.OriginalPrice,
		FlashPrice:         data.FlashPrice,
		ExpiresAt:          data.ExpiresAt,
		MaxRedemptions:     data.MaxRedemptions,
		CurrentRedemptions: data.CurrentRedemptions,
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
	}
}
