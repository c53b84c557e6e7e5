// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"time"

	"dealdrop/internal/domain/entity"
	"dealdrop/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for flash-deal persistence.
var (
	// ErrFlashDealNotFound is returned when a flash deal is not found.
	ErrFlashDealNotFound = errors.New("flash deal not found")
	// ErrRedemptionExhausted is returned when an atomic redemption finds no capacity left.
	ErrRedemptionExhausted = errors.New("flash deal redemptions exhausted")
)

// FlashDealRepository defines the interface for flash-deal database operations.
type FlashDealRepository interface {
	// CreateFlashDeal persists a new flash deal.
	CreateFlashDeal(ctx context.Context, deal *entity.FlashDeal) error

	// FindFlashDealByID retrieves a flash deal by its unique ID.
	FindFlashDealByID(ctx context.Context, id uuid.UUID) (*entity.FlashDeal, error)

	// FindActiveFlashDeals retrieves all deals that have not expired as of the given time.
	FindActiveFlashDeals(ctx context.Context, now time.Time) ([]*entity.FlashDeal, error)

	// FindFlashDealsByVendor retrieves all flash deals posted by a vendor.
	FindFlashDealsByVendor(ctx context.Context, vendorID uuid.UUID) ([]*entity.FlashDeal, error)

	// IncrementRedemptions atomically increments currentRedemptions while it is
	// still below maxRedemptions. Returns ErrRedemptionExhausted when the
	// guarded update matches no row.
	IncrementRedemptions(ctx context.Context, id uuid.UUID) error

	// DeleteFlashDeal removes a flash deal by its ID (soft delete).
	DeleteFlashDeal(ctx context.Context, id uuid.UUID) error
}
