package usecase

import (
	"context"

	"dealdrop/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateListingInput carries the fields for creating a vendor listing.
type CreateListingInput struct {
	BusinessName string  `json:"business_name"`
	Category     string  `json:"category"`
	LocationLat  float64 `json:"location_lat"`
	LocationLng  float64 `json:"location_lng"`
	City         string  `json:"city"`
	State        string  `json:"state"`
}

// ListingUsecase defines the interface for vendor-listing management use cases
type ListingUsecase interface {
	// CreateListing creates a new vendor listing owned by the user
	CreateListing(ctx context.Context, userID uuid.UUID, input CreateListingInput) (*entity.VendorListing, error)

	// GetListing retrieves a listing by ID
	GetListing(ctx context.Context, listingID uuid.UUID) (*entity.VendorListing, error)

	// GetListingsByUser retrieves all listings owned by the user
	GetListingsByUser(ctx context.Context, userID uuid.UUID) ([]*entity.VendorListing, error)

	// UpdateLocation applies a location update to the user's listing.
	// Updates inside the cooldown window are refused with a rate-limit error
	// carrying the remaining wait in minutes.
	UpdateLocation(ctx context.Context, userID, listingID uuid.UUID, update entity.LocationUpdate) (*entity.VendorListing, error)

	// DeleteListing removes the user's listing
	DeleteListing(ctx context.Context, userID, listingID uuid.UUID) error
}
