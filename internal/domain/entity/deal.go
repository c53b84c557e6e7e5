// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Deal represents a published marketplace deal as surfaced to customers.
type Deal struct {
	ID            uuid.UUID `json:"id"`             // The Global Unique Identifier (GUID) for the deal.
	VendorID      uuid.UUID `json:"vendor_id"`      // The ID of the vendor listing that published this deal.
	Title         string    `json:"title"`          // The display title of the deal.
	Description   string    `json:"description"`    // The display description of the deal.
	Category      string    `json:"category"`       // The deal category (food, retail, services, ...).
	OriginalPrice float64   `json:"original_price"` // The undiscounted price.
	DealPrice     float64   `json:"deal_price"`     // The discounted price offered by the deal.
	DistanceMiles float64   `json:"distance_miles"` // Distance from the requesting user, when known.
	CreatedAt     time.Time `json:"created_at"`     // Timestamp of when this deal was created.
	UpdatedAt     time.Time `json:"updated_at"`     // Timestamp of the last modification.
}
