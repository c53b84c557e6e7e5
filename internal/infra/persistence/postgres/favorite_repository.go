package postgres

import (
	"context"
	"encoding/json"

	"dealdrop/internal/domain/entity"
	domainerrors "dealdrop/internal/domain/errors"
	"dealdrop/internal/domain/repository"
	"dealdrop/internal/infra/persistence/model"

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
	return &favoriteRepository{
		db: db,
	}
}

// CreateFavorite persists a new favorite subscription.
func (repo *favoriteRepository) CreateFavorite(ctx context.Context, favorite *entity.FavoriteSubscription) error {
	favoriteM := fromFavoriteDomain(favorite)

	if err := repo.db.WithContext(ctx).Create(favoriteM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateFavorite
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid user or vendor reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create favorite")
	}

	// Update the entity with generated values
	favorite.ID = favoriteM.ID
	favorite.CreatedAt = favoriteM.CreatedAt
	favorite.UpdatedAt = favoriteM.UpdatedAt

	return nil
}

// FindFavoriteByUserAndVendor retrieves a favorite by user and vendor IDs.
func (repo *favoriteRepository) FindFavoriteByUserAndVendor(ctx context.Context, userID, vendorID uuid.UUID) (*entity.FavoriteSubscription, error) {
	var favoriteM model.FavoriteSubscriptionModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND vendor_id = ?", userID, vendorID).
		First(&favoriteM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrFavoriteNotFound
		}

		return nil, errors.Wrap(err, "failed to find favorite by user and vendor")
	}

	return toFavoriteDomain(&favoriteM), nil
}

// FindFavoritesByUser retrieves all favorite subscriptions for a user (excluding soft-deleted).
func (repo *favoriteRepository) FindFavoritesByUser(ctx context.Context, userID uuid.UUID) ([]*entity.FavoriteSubscription, error) {
	var favoriteModels []*model.FavoriteSubscriptionModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&favoriteModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find favorites by user")
	}

	favorites := make([]*entity.FavoriteSubscription, 0, len(favoriteModels))
	for _, favoriteM := range favoriteModels {
		favorites = append(favorites, toFavoriteDomain(favoriteM))
	}

	return favorites, nil
}

// favoriteVendorRow is the scan target for the favorite-vendor join.
type favoriteVendorRow struct {
	VendorID         uuid.UUID
	BusinessName     string
	LocationLat      float64
	LocationLng      float64
	NotifyWhenNearby bool
}

// FindFavoriteVendors retrieves the vendors a user favorites, bundled with
// their current coordinates so proximity checks avoid an N+1 listing lookup.
func (repo *favoriteRepository) FindFavoriteVendors(ctx context.Context, userID uuid.UUID) ([]*entity.FavoriteVendor, error) {
	var rows []*favoriteVendorRow

	query := `
		SELECT f.vendor_id,
		       l.business_name,
		       l.location_lat,
		       l.location_lng,
		       f.notify_when_nearby
		FROM favorite_subscriptions f
		JOIN vendor_listings l ON l.id = f.vendor_id AND l.deleted_at IS NULL
		WHERE f.user_id = ?
		  AND f.deleted_at IS NULL
		ORDER BY f.created_at DESC
	`

	if err := repo.db.WithContext(ctx).
		Raw(query, userID).
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find favorite vendors")
	}

	vendors := make([]*entity.FavoriteVendor, 0, len(rows))
	for _, row := range rows {
		vendors = append(vendors, &entity.FavoriteVendor{
			VendorID:         row.VendorID,
			BusinessName:     row.BusinessName,
			LocationLat:      row.LocationLat,
			LocationLng:      row.LocationLng,
			NotifyWhenNearby: row.NotifyWhenNearby,
		})
	}

	return vendors, nil
}

// FindUsersFavoritingVendor retrieves the user IDs with nearby alerts enabled for a vendor.
func (repo *favoriteRepository) FindUsersFavoritingVendor(ctx context.Context, vendorID uuid.UUID) ([]uuid.UUID, error) {
	var userIDs []uuid.UUID

	if err := repo.db.WithContext(ctx).
		Model(&model.FavoriteSubscriptionModel{}).
		Where("vendor_id = ? AND notify_when_nearby = ?", vendorID, true).
		Pluck("user_id", &userIDs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find users favoriting vendor")
	}

	return userIDs, nil
}

// UpdateNotifyWhenNearby toggles proximity alerts for a favorite.
func (repo *favoriteRepository) UpdateNotifyWhenNearby(ctx context.Context, id uuid.UUID, notify bool) error {
	result := repo.db.WithContext(ctx).
		Model(&model.FavoriteSubscriptionModel{}).
		Where("id = ?", id).
		Update("notify_when_nearby", notify)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update notify when nearby")
	}

	if result.RowsAffected == 0 {
		return repository.ErrFavoriteNotFound
	}

	return nil
}

// DeleteFavorite removes a favorite by its ID (soft delete).
func (repo *favoriteRepository) DeleteFavorite(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.FavoriteSubscriptionModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete favorite")
	}

	if result.RowsAffected == 0 {
		return repository.ErrFavoriteNotFound
	}

	return nil
}

// FindAlertPreferences retrieves a user's flash-deal alert preferences.
func (repo *favoriteRepository) FindAlertPreferences(ctx context.Context, userID uuid.UUID) (*entity.AlertPreferences, error) {
	var prefsM model.AlertPreferencesModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&prefsM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrFavoriteNotFound
		}

		return nil, errors.Wrap(err, "failed to find alert preferences")
	}

	return toAlertPreferencesDomain(&prefsM)
}

// SaveAlertPreferences creates or replaces a user's flash-deal alert preferences.
func (repo *favoriteRepository) SaveAlertPreferences(ctx context.Context, prefs *entity.AlertPreferences) error {
	prefsM, err := fromAlertPreferencesDomain(prefs)
	if err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"subscribed_vendors", "subscribed_categories", "updated_at"}),
		}).
		Create(prefsM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to save alert preferences")
	}

	return nil
}

// FindUsersWithAlertPreferences retrieves every user who has saved alert preferences.
func (repo *favoriteRepository) FindUsersWithAlertPreferences(ctx context.Context) ([]*entity.AlertPreferences, error) {
	var prefModels []*model.AlertPreferencesModel

	if err := repo.db.WithContext(ctx).
		Find(&prefModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find users with alert preferences")
	}

	prefs := make([]*entity.AlertPreferences, 0, len(prefModels))
	for _, prefsM := range prefModels {
		p, err := toAlertPreferencesDomain(prefsM)
		if err != nil {
			return nil, err
		}
		prefs = append(prefs, p)
	}

	return prefs, nil
}

// --- Mapper Functions ---

// toFavoriteDomain converts a GORM FavoriteSubscriptionModel to a domain FavoriteSubscription entity.
func toFavoriteDomain(data *model.FavoriteSubscriptionModel) *entity.FavoriteSubscription {
	if data == nil {
		return nil
	}

	return &entity.FavoriteSubscription{
		ID:               data.ID,
		UserID:           data.UserID,
		VendorID:         data.VendorID,
		NotifyWhenNearby: data.NotifyWhenNearby,
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}
}

// fromFavoriteDomain converts a domain FavoriteSubscription entity to a GORM FavoriteSubscriptionModel.
func fromFavoriteDomain(data *entity.FavoriteSubscription) *model.FavoriteSubscriptionModel {
	if data == nil {
		return nil
	}

	return &model.FavoriteSubscriptionModel{
		ID:               data.ID,
		UserID:           data.UserID,
		VendorID:         data.VendorID,
		NotifyWhenNearby: data.NotifyWhenNearby,
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}
}

// toAlertPreferencesDomain converts a GORM AlertPreferencesModel to a domain AlertPreferences entity.
func toAlertPreferencesDomain(data *model.AlertPreferencesModel) (*entity.AlertPreferences, error) {
	if data == nil {
		return nil, nil
	}

	prefs := &entity.AlertPreferences{
		UserID:    data.UserID,
		UpdatedAt: data.UpdatedAt,
	}

	if len(data.SubscribedVendors) > 0 {
		if err := json.Unmarshal(data.SubscribedVendors, &prefs.SubscribedVendors); err != nil {
			return nil, errors.Wrap(err, "failed to decode subscribed vendors")
		}
	}
	if len(data.SubscribedCategories) > 0 {
		if err := json.Unmarshal(data.SubscribedCategories, &prefs.SubscribedCategories); err != nil {
			return nil, errors.Wrap(err, "failed to decode subscribed categories")
		}
	}

	return prefs, nil
}

// fromAlertPreferencesDomain converts a domain AlertPreferences entity to a GORM AlertPreferencesModel.
func fromAlertPreferencesDomain(data *entity.AlertPreferences) (*model.AlertPreferencesModel, error) {
	if data == nil {
		return nil, nil
	}

	vendors := data.SubscribedVendors
	if vendors == nil {
		vendors = []uuid.UUID{}
	}
	categories := data.SubscribedCategories
	if categories == nil {
		categories = []string{}
	}

	vendorsJSON, err := json.Marshal(vendors)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode subscribed vendors")
	}
	categoriesJSON, err := json.Marshal(categories)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode subscribed categories")
	}

	return &model.AlertPreferencesModel{
		UserID:               data.UserID,
		SubscribedVendors:    vendorsJSON,
		SubscribedCategories: categoriesJSON,
		UpdatedAt:            data.UpdatedAt,
	}, nil
}
