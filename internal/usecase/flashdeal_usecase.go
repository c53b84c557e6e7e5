package usecase

import (
	"context"
	"time"

	"dealdrop/internal/domain/entity"

	"github.com/google/uuid"
)

// PostFlashDealInput carries the fields for posting a flash deal.
type PostFlashDealInput struct {
	Title          string    `json:"title"`
	Category       string    `json:"category"`
	OriginalPrice  float64   `json:"original_price"`
	FlashPrice     float64   `json:"flash_price"`
	ExpiresAt      time.Time `json:"expires_at"`
	MaxRedemptions *int      `json:"max_redemptions"`
}

// FlashDealUsecase defines the interface for flash-deal management use cases
type FlashDealUsecase interface {
	// PostFlashDeal creates a flash deal under the user's listing and fans it
	// out to matching subscribers
	PostFlashDeal(ctx context.Context, userID, listingID uuid.UUID, input PostFlashDealInput) (*entity.FlashDeal, error)

	// GetFlashDeal retrieves a flash deal by ID
	GetFlashDeal(ctx context.Context, dealID uuid.UUID) (*entity.FlashDeal, error)

	// GetActiveFlashDeals retrieves all flash deals that have not expired
	GetActiveFlashDeals(ctx context.Context) ([]*entity.FlashDeal, error)

	// RedeemFlashDeal consumes one redemption of the deal. Expired and
	// sold-out deals are refused with terminal errors.
	RedeemFlashDeal(ctx context.Context, dealID uuid.UUID) (*entity.FlashDeal, error)
}
