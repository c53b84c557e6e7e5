package usecase

import (
	"context"

	"dealdrop/internal/domain/entity"

	"github.com/google/uuid"
)

// FavoriteUsecase defines the interface for favorite and alert-preference use cases
type FavoriteUsecase interface {
	// FavoriteVendor creates a favorite subscription for the user. Favoriting
	// an already-favorited vendor returns the existing subscription.
	FavoriteVendor(ctx context.Context, userID, vendorID uuid.UUID) (*entity.FavoriteSubscription, error)

	// UnfavoriteVendor removes the user's favorite for the vendor
	UnfavoriteVendor(ctx context.Context, userID, vendorID uuid.UUID) error

	// SetNotifyWhenNearby toggles proximity alerts for a favorite
	SetNotifyWhenNearby(ctx context.Context, userID, vendorID uuid.UUID, notify bool) error

	// ListFavorites retrieves the user's favorite vendors with their
	// current coordinates
	ListFavorites(ctx context.Context, userID uuid.UUID) ([]*entity.FavoriteVendor, error)

	// GenerateFavoriteQR generates a QR code that favorites the vendor when scanned
	GenerateFavoriteQR(ctx context.Context, vendorID uuid.UUID) ([]byte, error)

	// FavoriteFromQR favorites the vendor encoded in scanned QR data
	FavoriteFromQR(ctx context.Context, userID uuid.UUID, qrData string) (*entity.FavoriteSubscription, error)

	// GetAlertPreferences retrieves the user's flash-deal alert preferences.
	// A user with no saved preferences gets empty sets, meaning alerts for
	// every flash deal.
	GetAlertPreferences(ctx context.Context, userID uuid.UUID) (*entity.AlertPreferences, error)

	// SaveAlertPreferences creates or replaces the user's flash-deal alert preferences
	SaveAlertPreferences(ctx context.Context, prefs *entity.AlertPreferences) error
}
