package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "dealdrop/internal/delivery/context"
	"dealdrop/internal/domain/entity"
	domainerrors "dealdrop/internal/domain/errors"
	"dealdrop/internal/domain/repository"
	"dealdrop/internal/domain/service"
	"dealdrop/internal/errors"
	"dealdrop/internal/usecase"

	"github.com/google/uuid"
)

type flashDealService struct {
	flashDealRepo repository.FlashDealRepository
	listingRepo   repository.ListingRepository
	alertUsecase  usecase.AlertUsecase
	publisher     service.EventPublisher
	logger        *slog.Logger

	nowFunc func() time.Time
}

// NewFlashDealService creates a new flash-deal service instance
func NewFlashDealService(
	flashDealRepo repository.FlashDealRepository,
	listingRepo repository.ListingRepository,
	alertUsecase usecase.AlertUsecase,
	publisher service.EventPublisher,
	logger *slog.Logger,
) usecase.FlashDealUsecase {
	return &flashDealService{
		flashDealRepo: flashDealRepo,
		listingRepo:   listingRepo,
		alertUsecase:  alertUsecase,
		publisher:     publisher,
		logger:        logger,
		nowFunc:       time.Now,
	}
}

// PostFlashDeal creates a flash deal under the user's listing and fans it
// out to matching subscribers.
func (s *flashDealService) PostFlashDeal(ctx context.Context, userID, listingID uuid.UUID, input usecase.PostFlashDealInput) (*entity.FlashDeal, error) {
	listing, err := s.listingRepo.FindListingByID(ctx, listingID)
	if err != nil {
		if errors.Is(err, repository.ErrListingNotFound) {
			return nil, domainerrors.ErrListingNotFound
		}
		return nil, errors.Wrap(err, "find listing")
	}
	if listing.UserID != userID {
		return nil, domainerrors.ErrNotListingOwner
	}

	now := s.nowFunc()
	if !input.ExpiresAt.After(now) {
		return nil, domainerrors.ErrValidationFailed.WithDetails("expiresAt must be in the future")
	}

	deal := &entity.FlashDeal{
		ID:             uuid.New(),
		VendorID:       listingID,
		Title:          input.Title,
		Category:       input.Category,
		OriginalPrice:  input.OriginalPrice,
		FlashPrice:     input.FlashPrice,
		ExpiresAt:      input.ExpiresAt,
		MaxRedemptions: input.MaxRedemptions,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if !deal.Discounted() {
		return nil, domainerrors.ErrFlashDealNotDiscounted
	}

	if err := s.flashDealRepo.CreateFlashDeal(ctx, deal); err != nil {
		return nil, errors.Wrap(err, "create flash deal")
	}

	// Fan-out is best effort: a publish failure must not undo the post.
	candidates, err := s.alertUsecase.MatchFlashDealCandidates(ctx, deal)
	if err != nil {
		s.logger.Error("flash deal candidate matching failed",
			slog.String("dealId", deal.ID.String()), slog.Any("error", err))
	} else if len(candidates) > 0 {
		event := &service.FlashDealEvent{
			RequestID:     deliverycontext.GetRequestIDFromContext(ctx),
			FlashDealID:   deal.ID.String(),
			VendorID:      listingID.String(),
			Title:         deal.Title,
			Category:      deal.Category,
			OriginalPrice: deal.OriginalPrice,
			FlashPrice:    deal.FlashPrice,
			ExpiresAt:     deal.ExpiresAt.Format(time.RFC3339),
			CandidateIDs:  uuidStrings(candidates),
		}
		if err := s.publisher.PublishFlashDealEvent(ctx, event); err != nil {
			s.logger.Error("flash deal event publish failed",
				slog.String("dealId", deal.ID.String()), slog.Any("error", err))
		}
	}

	s.alertUsecase.ScheduleExpiryReminder(deal)
	return deal, nil
}

// GetFlashDeal retrieves a flash deal by ID
func (s *flashDealService) GetFlashDeal(ctx context.Context, dealID uuid.UUID) (*entity.FlashDeal, error) {
	deal, err := s.flashDealRepo.FindFlashDealByID(ctx, dealID)
	if err != nil {
		if errors.Is(err, repository.ErrFlashDealNotFound) {
			return nil, domainerrors.ErrFlashDealNotFound
		}
		return nil, errors.Wrap(err, "find flash deal")
	}
	return deal, nil
}

// GetActiveFlashDeals retrieves all flash deals that have not expired
func (s *flashDealService) GetActiveFlashDeals(ctx context.Context) ([]*entity.FlashDeal, error) {
	deals, err := s.flashDealRepo.FindActiveFlashDeals(ctx, s.nowFunc())
	if err != nil {
		return nil, errors.Wrap(err, "find active flash deals")
	}
	return deals, nil
}

// RedeemFlashDeal consumes one redemption of the deal.
func (s *flashDealService) RedeemFlashDeal(ctx context.Context, dealID uuid.UUID) (*entity.FlashDeal, error) {
	deal, err := s.GetFlashDeal(ctx, dealID)
	if err != nil {
		return nil, err
	}

	if deal.Expired(s.nowFunc()) {
		return nil, domainerrors.ErrFlashDealExpired
	}
	if deal.SoldOut() {
		return nil, domainerrors.ErrFlashDealSoldOut
	}

	// The guarded update in the repository is what actually prevents
	// overselling under concurrent redemptions.
	if err := s.flashDealRepo.IncrementRedemptions(ctx, dealID); err != nil {
		if errors.Is(err, repository.ErrRedemptionExhausted) {
			return nil, domainerrors.ErrFlashDealSoldOut
		}
		return nil, errors.Wrap(err, "increment redemptions")
	}

	deal.CurrentRedemptions++
	deal.UpdatedAt = s.nowFunc()
	return deal, nil
}

func uuidStrings(ids []uuid.UUID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}
	return out
}
