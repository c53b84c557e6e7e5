package sync

import (
	"time"

	"dealdrop/internal/domain/entity"
	"dealdrop/internal/ratelimit"
)

// LocationGuard mirrors the server's location-update cooldown on the client
// so vendors get an immediate answer while offline. The server stays
// authoritative: a 429 from the backend reseeds the local gate even when the
// local estimate would have admitted the update.
type LocationGuard struct {
	gate     *ratelimit.Gate
	cooldown time.Duration
}

// NewLocationGuard creates a guard with the same cooldown the server
// enforces.
func NewLocationGuard(cooldown time.Duration) *LocationGuard {
	return &LocationGuard{
		gate:     ratelimit.NewGate(cooldown),
		cooldown: cooldown,
	}
}

// SeedFromListings rebuilds the local gate from the cached listings'
// lastLocationUpdate stamps.
func (g *LocationGuard) SeedFromListings(listings []entity.VendorListing) {
	for _, listing := range listings {
		if listing.LastLocationUpdate != nil {
			g.gate.Seed(listing.ID.String(), *listing.LastLocationUpdate)
		}
	}
}

// Check estimates whether a location update for the listing would be
// admitted right now, returning the wait in whole minutes when it would not.
// An admitted check stamps the local gate so a second offline attempt is
// refused too.
func (g *LocationGuard) Check(listingID string) (waitMinutes int, ok bool) {
	return g.gate.Reserve(listingID)
}

// Reconcile absorbs the server's verdict. A refusal with waitMinutes left
// reseeds the gate from the server's remaining window; an acceptance stamps
// the gate at the accepted time.
func (g *LocationGuard) Reconcile(listingID string, acceptedAt time.Time, refusedWaitMinutes int) {
	if refusedWaitMinutes > 0 {
		elapsed := g.cooldown - time.Duration(refusedWaitMinutes)*time.Minute
		g.gate.Seed(listingID, time.Now().Add(-elapsed))
		return
	}
	g.gate.Seed(listingID, acceptedAt)
}
