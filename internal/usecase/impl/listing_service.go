package impl

import (
	"context"
	"time"

	"dealdrop/internal/domain/entity"
	domainerrors "dealdrop/internal/domain/errors"
	"dealdrop/internal/domain/repository"
	"dealdrop/internal/errors"
	"dealdrop/internal/ratelimit"
	"dealdrop/internal/usecase"

	"github.com/google/uuid"
)

type listingService struct {
	listingRepo repository.ListingRepository
	gate        *ratelimit.Gate

	nowFunc func() time.Time
}

// NewListingService creates a new listing service instance. cooldown is the
// minimum interval between location updates per listing.
func NewListingService(listingRepo repository.ListingRepository, cooldown time.Duration) usecase.ListingUsecase {
	s := &listingService{
		listingRepo: listingRepo,
		nowFunc:     time.Now,
	}
	// The gate reads the clock through the service so swapping nowFunc
	// steers both.
	s.gate = ratelimit.NewGateWithClock(cooldown, func() time.Time { return s.nowFunc() })
	return s
}

// CreateListing creates a new vendor listing owned by the user
func (s *listingService) CreateListing(ctx context.Context, userID uuid.UUID, input usecase.CreateListingInput) (*entity.VendorListing, error) {
	now := s.nowFunc()
	listing := &entity.VendorListing{
		ID:           uuid.New(),
		UserID:       userID,
		BusinessName: input.BusinessName,
		Category:     input.Category,
		LocationLat:  input.LocationLat,
		LocationLng:  input.LocationLng,
		City:         input.City,
		State:        input.State,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.listingRepo.CreateListing(ctx, listing); err != nil {
		return nil, errors.Wrap(err, "create listing")
	}
	return listing, nil
}

// GetListing retrieves a listing by ID
func (s *listingService) GetListing(ctx context.Context, listingID uuid.UUID) (*entity.VendorListing, error) {
	listing, err := s.listingRepo.FindListingByID(ctx, listingID)
	if err != nil {
		if errors.Is(err, repository.ErrListingNotFound) {
			return nil, domainerrors.ErrListingNotFound
		}
		return nil, errors.Wrap(err, "find listing")
	}
	return listing, nil
}

// GetListingsByUser retrieves all listings owned by the user
func (s *listingService) GetListingsByUser(ctx context.Context, userID uuid.UUID) ([]*entity.VendorListing, error) {
	listings, err := s.listingRepo.FindListingsByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "find listings by user")
	}
	return listings, nil
}

// UpdateLocation applies a location update to the user's listing, enforcing
// the per-listing cooldown.
func (s *listingService) UpdateLocation(ctx context.Context, userID, listingID uuid.UUID, update entity.LocationUpdate) (*entity.VendorListing, error) {
	listing, err := s.GetListing(ctx, listingID)
	if err != nil {
		return nil, err
	}
	if listing.UserID != userID {
		return nil, domainerrors.ErrNotListingOwner
	}

	// The gate is in-memory; stamps persisted before a restart come back
	// from the listing row.
	key := listingID.String()
	if listing.LastLocationUpdate != nil {
		s.gate.SeedIfAbsent(key, *listing.LastLocationUpdate)
	}

	wait, ok := s.gate.Reserve(key)
	if !ok {
		return nil, domainerrors.NewRateLimitError(wait)
	}

	prevUpdate := listing.LastLocationUpdate
	listing.ApplyLocation(update, s.nowFunc())
	if err := s.listingRepo.UpdateLocation(ctx, listingID, update); err != nil {
		// Roll the gate back so the failed update does not consume the window.
		if prevUpdate != nil {
			s.gate.Seed(key, *prevUpdate)
		} else {
			s.gate.Forget(key)
		}
		return nil, errors.Wrap(err, "update location")
	}
	return listing, nil
}

// DeleteListing removes the user's listing
func (s *listingService) DeleteListing(ctx context.Context, userID, listingID uuid.UUID) error {
	listing, err := s.GetListing(ctx, listingID)
	if err != nil {
		return err
	}
	if listing.UserID != userID {
		return domainerrors.ErrNotListingOwner
	}

	if err := s.listingRepo.DeleteListing(ctx, listingID); err != nil {
		return errors.Wrap(err, "delete listing")
	}
	s.gate.Forget(listingID.String())
	return nil
}
