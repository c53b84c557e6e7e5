// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"dealdrop/internal/domain/entity"
	"dealdrop/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for favorite persistence.
var (
	// ErrFavoriteNotFound is returned when a favorite subscription is not found.
	ErrFavoriteNotFound = errors.New("favorite not found")
	// ErrDuplicateFavorite is returned when trying to favorite a vendor twice.
	ErrDuplicateFavorite = errors.New("favorite already exists")
)

// FavoriteRepository defines the interface for favorite-subscription database operations.
type FavoriteRepository interface {
	// CreateFavorite persists a new favorite subscription.
	CreateFavorite(ctx context.Context, favorite *entity.FavoriteSubscription) error

	// FindFavoriteByUserAndVendor retrieves a favorite by user and vendor IDs.
	FindFavoriteByUserAndVendor(ctx context.Context, userID, vendorID uuid.UUID) (*entity.FavoriteSubscription, error)

	// FindFavoritesByUser retrieves all favorite subscriptions for a user.
	FindFavoritesByUser(ctx context.Context, userID uuid.UUID) ([]*entity.FavoriteSubscription, error)

	// FindFavoriteVendors retrieves the vendors a user favorites, bundled with
	// their current coordinates to avoid N+1 listing lookups.
	FindFavoriteVendors(ctx context.Context, userID uuid.UUID) ([]*entity.FavoriteVendor, error)

	// FindUsersFavoritingVendor retrieves the user IDs with nearby alerts
	// enabled for a vendor.
	FindUsersFavoritingVendor(ctx context.Context, vendorID uuid.UUID) ([]uuid.UUID, error)

	// UpdateNotifyWhenNearby toggles proximity alerts for a favorite.
	UpdateNotifyWhenNearby(ctx context.Context, id uuid.UUID, notify bool) error

	// DeleteFavorite removes a favorite by its ID (soft delete).
	DeleteFavorite(ctx context.Context, id uuid.UUID) error

	// FindAlertPreferences retrieves a user's flash-deal alert preferences.
	FindAlertPreferences(ctx context.Context, userID uuid.UUID) (*entity.AlertPreferences, error)

	// SaveAlertPreferences creates or replaces a user's flash-deal alert preferences.
	SaveAlertPreferences(ctx context.Context, prefs *entity.AlertPreferences) error

	// FindUsersWithAlertPreferences retrieves every user who has saved alert
	// preferences. Used to fan out flash-deal candidate matching.
	FindUsersWithAlertPreferences(ctx context.Context) ([]*entity.AlertPreferences, error)
}
