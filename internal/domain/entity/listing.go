// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// VendorListing represents a vendor's storefront listing, including its
// last published location. Location fields are mutated only through the
// location-update gate.
type VendorListing struct {
	ID                 uuid.UUID  `json:"id"`                   // The Global Unique Identifier (GUID) for the listing.
	UserID             uuid.UUID  `json:"user_id"`              // The ID of the vendor user who owns this listing.
	BusinessName       string     `json:"business_name"`        // The vendor's display name.
	Category           string     `json:"category"`             // The vendor category.
	LocationLat        float64    `json:"location_lat"`         // The geographic latitude of the current location.
	LocationLng        float64    `json:"location_lng"`         // The geographic longitude of the current location.
	City               string     `json:"city"`                 // The city of the current location.
	State              string     `json:"state"`                // The state of the current location.
	LastLocationUpdate *time.Time `json:"last_location_update"` // Timestamp of the last accepted location update.
	CreatedAt          time.Time  `json:"created_at"`           // Timestamp of when this listing was created.
	UpdatedAt          time.Time  `json:"updated_at"`           // Timestamp of the last modification.
}

// LocationUpdate carries the replacement location for a listing.
type LocationUpdate struct {
	LocationLat float64 `json:"location_lat"`
	LocationLng float64 `json:"location_lng"`
	City        string  `json:"city,omitempty"`
	State       string  `json:"state,omitempty"`
}

// ApplyLocation replaces the listing's location fields and stamps the
// update time. Callers are responsible for having passed the rate gate.
func (l *VendorListing) ApplyLocation(update LocationUpdate, now time.Time) {
	l.LocationLat = update.LocationLat
	l.LocationLng = update.LocationLng
	if update.City != "" {
		l.City = update.City
	}
	if update.State != "" {
		l.State = update.State
	}
	l.LastLocationUpdate = &now
	l.UpdatedAt = now
}
