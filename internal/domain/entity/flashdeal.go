// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// FlashDeal represents a short-lived deal with optional redemption capacity.
// CurrentRedemptions is monotonically increasing and never exceeds
// MaxRedemptions when that limit is set.
type FlashDeal struct {
	ID                 uuid.UUID `json:"id"`                        // The Global Unique Identifier (GUID) for the flash deal.
	VendorID           uuid.UUID `json:"vendor_id"`                 // The ID of the vendor listing that published this deal.
	Title              string    `json:"title"`                     // The display title of the flash deal.
	Category           string    `json:"category"`                  // The deal category used for subscription matching.
	OriginalPrice      float64   `json:"original_price"`            // The undiscounted price.
	FlashPrice         float64   `json:"flash_price"`               // The flash price; must undercut OriginalPrice.
	ExpiresAt          time.Time `json:"expires_at"`                // Instant after which the deal can no longer be redeemed.
	MaxRedemptions     *int      `json:"max_redemptions,omitempty"` // Optional redemption capacity; nil means unlimited.
	CurrentRedemptions int       `json:"current_redemptions"`       // Number of redemptions committed so far.
	CreatedAt          time.Time `json:"created_at"`                // Timestamp of when this deal was created.
	UpdatedAt          time.Time `json:"updated_at"`                // Timestamp of the last modification.
}

// Expired reports whether the deal can no longer be redeemed at the given instant.
func (d *FlashDeal) Expired(now time.Time) bool {
	return !now.Before(d.ExpiresAt)
}

// SoldOut reports whether the redemption capacity is exhausted.
func (d *FlashDeal) SoldOut() bool {
	return d.MaxRedemptions != nil && d.CurrentRedemptions >= *d.MaxRedemptions
}

// Active reports whether the deal is redeemable at the given instant.
func (d *FlashDeal) Active(now time.Time) bool {
	return !d.Expired(now) && !d.SoldOut()
}

// Discounted reports whether the flash price actually undercuts the
// original price. Degenerate discounts are never broadcast.
func (d *FlashDeal) Discounted() bool {
	return d.FlashPrice > 0 && d.FlashPrice < d.OriginalPrice
}
