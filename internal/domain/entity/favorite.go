// Package entity contains the core business objects of the project.
package entity

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// FavoriteSubscription represents a customer's favorite relationship with a
// vendor. At most one exists per (user, vendor) pair.
type FavoriteSubscription struct {
	ID               uuid.UUID `json:"id"`                 // The Global Unique Identifier (GUID) for the favorite.
	UserID           uuid.UUID `json:"user_id"`            // The ID of the user who favorited the vendor.
	VendorID         uuid.UUID `json:"vendor_id"`          // The ID of the favorited vendor listing.
	NotifyWhenNearby bool      `json:"notify_when_nearby"` // Whether nearby-favorite alerts are enabled for this vendor.
	CreatedAt        time.Time `json:"created_at"`         // Timestamp of when the favorite was created.
	UpdatedAt        time.Time `json:"updated_at"`         // Timestamp of the last modification.
}

// FavoriteVendor bundles a favorite with the vendor's current location, so
// nearby filtering avoids an N+1 listing lookup.
type FavoriteVendor struct {
	VendorID         uuid.UUID `json:"vendor_id"`
	BusinessName     string    `json:"business_name"`
	LocationLat      float64   `json:"location_lat"`
	LocationLng      float64   `json:"location_lng"`
	NotifyWhenNearby bool      `json:"notify_when_nearby"`
}

// AlertPreferences holds a user's flash-deal subscription state. An empty
// set means "subscribed to everything" for that dimension.
type AlertPreferences struct {
	UserID               uuid.UUID   `json:"user_id"`
	SubscribedVendors    []uuid.UUID `json:"subscribed_vendors"`
	SubscribedCategories []string    `json:"subscribed_categories"`
	UpdatedAt            time.Time   `json:"updated_at"`
}

// MatchesDeal reports whether a deal from the vendor in the category passes
// the subscription filter. A deal matches when its vendor or its category is
// subscribed; with both sets empty the user is subscribed to everything. An
// empty set only widens the filter when the other set is empty too, so a
// category-only subscriber is not flooded by every vendor.
func (p *AlertPreferences) MatchesDeal(vendorID uuid.UUID, category string) bool {
	if len(p.SubscribedVendors) == 0 && len(p.SubscribedCategories) == 0 {
		return true
	}
	return slices.Contains(p.SubscribedVendors, vendorID) ||
		slices.Contains(p.SubscribedCategories, category)
}
