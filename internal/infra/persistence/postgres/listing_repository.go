// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
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

// listingRepository implements the repository.ListingRepository interface.
type listingRepository struct {
	db *gorm.DB
}

// NewListingRepository is the constructor for listingRepository.
func NewListingRepository(db *gorm.DB) repository.ListingRepository {
	return &listingRepository{
		db: db,
	}
}

// CreateListing persists a new vendor listing.
func (repo *listingRepository) CreateListing(ctx context.Context, listing *entity.VendorListing) error {
	listingM := fromListingDomain(listing)

	if err := repo.db.WithContext(ctx).Create(listingM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateListing
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required listing information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create listing")
	}

	// Update the entity with generated values
	listing.ID = listingM.ID
	listing.CreatedAt = listingM.CreatedAt
	listing.UpdatedAt = listingM.UpdatedAt

	return nil
}

// FindListingByID retrieves a listing by its unique ID.
func (repo *listingRepository) FindListingByID(ctx context.Context, id uuid.UUID) (*entity.VendorListing, error) {
	var listingM model.VendorListingModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&listingM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrListingNotFound
		}

		return nil, errors.Wrap(err, "failed to find listing by ID")
	}

	return toListingDomain(&listingM), nil
}

// FindListingsByUser retrieves all listings owned by a specific user (excluding soft-deleted).
func (repo *listingRepository) FindListingsByUser(ctx context.Context, userID uuid.UUID) ([]*entity.VendorListing, error) {
	var listingModels []*model.VendorListingModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&listingModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find listings by user")
	}

	listings := make([]*entity.VendorListing, 0, len(listingModels))
	for _, listingM := range listingModels {
		listings = append(listings, toListingDomain(listingM))
	}

	return listings, nil
}

// UpdateListing persists the full state of an existing listing.
func (repo *listingRepository) UpdateListing(ctx context.Context, listing *entity.VendorListing) error {
	listingM := fromListingDomain(listing)

	result := repo.db.WithContext(ctx).
		Model(&model.VendorListingModel{}).
		Where("id = ?", listing.ID).
		Updates(listingM)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update listing")
	}

	if result.RowsAffected == 0 {
		return repository.ErrListingNotFound
	}

	return nil
}

// UpdateLocation applies a location update and stamps last_location_update.
// The caller is responsible for enforcing the cooldown before calling this.
func (repo *listingRepository) UpdateLocation(ctx context.Context, id uuid.UUID, update entity.LocationUpdate) error {
	values := map[string]any{
		"location_lat":         update.LocationLat,
		"location_lng":         update.LocationLng,
		"last_location_update": time.Now().UTC(),
	}
	if update.City != "" {
		values["city"] = update.City
	}
	if update.State != "" {
		values["state"] = update.State
	}

	result := repo.db.WithContext(ctx).
		Model(&model.VendorListingModel{}).
		Where("id = ?", id).
		Updates(values)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update listing location")
	}

	if result.RowsAffected == 0 {
		return repository.ErrListingNotFound
	}

	return nil
}

// DeleteListing removes a listing by its ID (soft delete).
func (repo *listingRepository) DeleteListing(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.VendorListingModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete listing")
	}

	if result.RowsAffected == 0 {
		return repository.ErrListingNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toListingDomain converts a GORM VendorListingModel to a domain VendorListing entity.
func toListingDomain(data *model.VendorListingModel) *entity.VendorListing {
	if data == nil {
		return nil
	}

	return &entity.VendorListing{
		ID:                 data.ID,
		UserID:             data.UserID,
		BusinessName:       data.BusinessName,
		Category:           data.Category,
		LocationLat:        data.LocationLat,
		LocationLng:        data.LocationLng,
		City:               data.City,
		State:              data.State,
		LastLocationUpdate: data.LastLocationUpdate,
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
	}
}

// fromListingDomain converts a domain VendorListing entity to a GORM VendorListingModel.
func fromListingDomain(data *entity.VendorListing) *model.VendorListingModel {
	if data == nil {
		return nil
	}

	return &model.VendorListingModel{
		ID:                 data.ID,
		UserID:             data.UserID,
		BusinessName:       data.BusinessName,
		Category:           data.Category,
		LocationLat:        data.LocationLat,
		LocationLng:        data.LocationLng,
		City:               data.City,
		State:              data.State,
		LastLocationUpdate: data.LastLocationUpdate,
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
	}
}
