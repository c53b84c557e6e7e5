// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"dealdrop/internal/domain/entity"
	"dealdrop/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for listing persistence.
var (
	// ErrListingNotFound is returned when a vendor listing is not found.
	ErrListingNotFound = errors.New("listing not found")
	// ErrDuplicateListing is returned when trying to create a listing that already exists.
	ErrDuplicateListing = errors.New("listing already exists")
)

// ListingRepository defines the interface for vendor-listing database operations.
type ListingRepository interface {
	// CreateListing persists a new vendor listing.
	CreateListing(ctx context.Context, listing *entity.VendorListing) error

	// FindListingByID retrieves a listing by its unique ID.
	FindListingByID(ctx context.Context, id uuid.UUID) (*entity.VendorListing, error)

	// FindListingsByUser retrieves all listings owned by a specific user.
	FindListingsByUser(ctx context.Context, userID uuid.UUID) ([]*entity.VendorListing, error)

	// UpdateListing persists the full state of an existing listing.
	UpdateListing(ctx context.Context, listing *entity.VendorListing) error

	// UpdateLocation applies a location update and stamps lastLocationUpdate.
	// The caller is responsible for enforcing the cooldown before calling this.
	UpdateLocation(ctx context.Context, id uuid.UUID, update entity.LocationUpdate) error

	// DeleteListing removes a listing by its ID (soft delete).
	DeleteListing(ctx context.Context, id uuid.UUID) error
}
