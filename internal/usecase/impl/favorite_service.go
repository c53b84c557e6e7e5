package impl

import (
	"context"
	"time"

	"dealdrop/internal/domain/entity"
	domainerrors "dealdrop/internal/domain/errors"
	"dealdrop/internal/domain/repository"
	"dealdrop/internal/domain/service"
	"dealdrop/internal/errors"
	"dealdrop/internal/usecase"

	"github.com/google/uuid"
)

type favoriteService struct {
	favoriteRepo repository.FavoriteRepository
	listingRepo  repository.ListingRepository
	qrcodeSvc    service.QRCodeService

	nowFunc func() time.Time
}

// NewFavoriteService creates a new favorite service instance
func NewFavoriteService(
	favoriteRepo repository.FavoriteRepository,
	listingRepo repository.ListingRepository,
	qrcodeSvc service.QRCodeService,
) usecase.FavoriteUsecase {
	return &favoriteService{
		favoriteRepo: favoriteRepo,
		listingRepo:  listingRepo,
		qrcodeSvc:    qrcodeSvc,
		nowFunc:      time.Now,
	}
}

// FavoriteVendor creates a favorite subscription for the user
func (s *favoriteService) FavoriteVendor(ctx context.Context, userID, vendorID uuid.UUID) (*entity.FavoriteSubscription, error) {
	if _, err := s.listingRepo.FindListingByID(ctx, vendorID); err != nil {
		if errors.Is(err, repository.ErrListingNotFound) {
			return nil, domainerrors.ErrListingNotFound
		}
		return nil, errors.Wrap(err, "find vendor listing")
	}

	existing, err := s.favoriteRepo.FindFavoriteByUserAndVendor(ctx, userID, vendorID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, repository.ErrFavoriteNotFound) {
		return nil, errors.Wrap(err, "find favorite")
	}

	now := s.nowFunc()
	favorite := &entity.FavoriteSubscription{
		ID:               uuid.New(),
		UserID:           userID,
		VendorID:         vendorID,
		NotifyWhenNearby: true,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := s.favoriteRepo.CreateFavorite(ctx, favorite); err != nil {
		// A concurrent favorite of the same vendor wins the race; return it.
		if errors.Is(err, repository.ErrDuplicateFavorite) {
			return s.favoriteRepo.FindFavoriteByUserAndVendor(ctx, userID, vendorID)
		}
		return nil, errors.Wrap(err, "create favorite")
	}
	return favorite, nil
}

// UnfavoriteVendor removes the user's favorite for the vendor
func (s *favoriteService) UnfavoriteVendor(ctx context.Context, userID, vendorID uuid.UUID) error {
	favorite, err := s.favoriteRepo.FindFavoriteByUserAndVendor(ctx, userID, vendorID)
	if err != nil {
		if errors.Is(err, repository.ErrFavoriteNotFound) {
			return domainerrors.ErrFavoriteNotFound
		}
		return errors.Wrap(err, "find favorite")
	}

	if err := s.favoriteRepo.DeleteFavorite(ctx, favorite.ID); err != nil {
		return errors.Wrap(err, "delete favorite")
	}
	return nil
}

// SetNotifyWhenNearby toggles proximity alerts for a favorite
func (s *favoriteService) SetNotifyWhenNearby(ctx context.Context, userID, vendorID uuid.UUID, notify bool) error {
	favorite, err := s.favoriteRepo.FindFavoriteByUserAndVendor(ctx, userID, vendorID)
	if err != nil {
		if errors.Is(err, repository.ErrFavoriteNotFound) {
			return domainerrors.ErrFavoriteNotFound
		}
		return errors.Wrap(err, "find favorite")
	}

	if err := s.favoriteRepo.UpdateNotifyWhenNearby(ctx, favorite.ID, notify); err != nil {
		return errors.Wrap(err, "update notify flag")
	}
	return nil
}

// ListFavorites retrieves the user's favorite vendors with their current
// coordinates
func (s *favoriteService) ListFavorites(ctx context.Context, userID uuid.UUID) ([]*entity.FavoriteVendor, error) {
	favorites, err := s.favoriteRepo.FindFavoriteVendors(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "find favorite vendors")
	}
	return favorites, nil
}

// GenerateFavoriteQR generates a QR code that favorites the vendor when scanned
func (s *favoriteService) GenerateFavoriteQR(ctx context.Context, vendorID uuid.UUID) ([]byte, error) {
	if _, err := s.listingRepo.FindListingByID(ctx, vendorID); err != nil {
		if errors.Is(err, repository.ErrListingNotFound) {
			return nil, domainerrors.ErrListingNotFound
		}
		return nil, errors.Wrap(err, "find vendor listing")
	}
	return s.qrcodeSvc.GenerateFavoriteQR(vendorID)
}

// FavoriteFromQR favorites the vendor encoded in scanned QR data
func (s *favoriteService) FavoriteFromQR(ctx context.Context, userID uuid.UUID, qrData string) (*entity.FavoriteSubscription, error) {
	vendorID, err := s.qrcodeSvc.ParseFavoriteQR(qrData)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unrecognized QR payload")
	}
	return s.FavoriteVendor(ctx, userID, vendorID)
}

// GetAlertPreferences retrieves the user's flash-deal alert preferences
func (s *favoriteService) GetAlertPreferences(ctx context.Context, userID uuid.UUID) (*entity.AlertPreferences, error) {
	prefs, err := s.favoriteRepo.FindAlertPreferences(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrFavoriteNotFound) {
			// No saved preferences means subscribed to everything.
			return &entity.AlertPreferences{UserID: userID}, nil
		}
		return nil, errors.Wrap(err, "find alert preferences")
	}
	return prefs, nil
}

// SaveAlertPreferences creates or replaces the user's flash-deal alert preferences
func (s *favoriteService) SaveAlertPreferences(ctx context.Context, prefs *entity.AlertPreferences) error {
	prefs.UpdatedAt = s.nowFunc()
	if err := s.favoriteRepo.SaveAlertPreferences(ctx, prefs); err != nil {
		return errors.Wrap(err, "save alert preferences")
	}
	return nil
}
