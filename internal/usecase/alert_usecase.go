package usecase

import (
	"context"
	"time"

	"dealdrop/internal/domain/entity"
	"dealdrop/internal/domain/service"

	"github.com/google/uuid"
)

// NearbyAlert is one favorite vendor close enough to the user to notify
// about.
type NearbyAlert struct {
	VendorID      uuid.UUID `json:"vendor_id"`
	BusinessName  string    `json:"business_name"`
	DistanceMiles float64   `json:"distance_miles"`
}

// AlertUsecase defines the interface for proximity and flash-deal alert use cases
type AlertUsecase interface {
	// CheckNearbyFavorites returns the user's favorite vendors within the
	// alert radius of the given position, suppressing vendors alerted within
	// the notify cooldown, and pushes an alert for each hit.
	CheckNearbyFavorites(ctx context.Context, userID uuid.UUID, lat, lng float64) ([]*NearbyAlert, error)

	// MatchFlashDealCandidates returns the user IDs whose alert preferences
	// match the deal. Users with empty preference sets match every deal.
	MatchFlashDealCandidates(ctx context.Context, deal *entity.FlashDeal) ([]uuid.UUID, error)

	// DeliverFlashDealAlert pushes a flash-deal event to its candidates'
	// devices. Called by the alert worker.
	DeliverFlashDealAlert(ctx context.Context, event *service.FlashDealEvent) error

	// ScheduleExpiryReminder registers a reminder push shortly before the
	// deal expires. Deals already inside the lead window get no reminder.
	ScheduleExpiryReminder(deal *entity.FlashDeal)

	// DeliverDueReminders pushes every reminder that has come due as of now
	// and drops reminders for deals that already expired.
	DeliverDueReminders(ctx context.Context, now time.Time) error
}
