package impl

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"dealdrop/internal/domain/entity"
	"dealdrop/internal/domain/repository"
	"dealdrop/internal/domain/service"
	"dealdrop/internal/errors"
	"dealdrop/internal/ratelimit"
	"dealdrop/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

const (
	// Firebase batch size limit
	firebaseBatchSize = 500
)

// AlertConfig carries the tunables of the alert pipeline.
type AlertConfig struct {
	RadiusMiles    float64       // Nearby-favorite alert radius.
	NotifyCooldown time.Duration // Minimum interval between alerts per (user, vendor) pair.
	ReminderLead   time.Duration // How long before expiry the reminder fires.
}

type expiryReminder struct {
	deal  *entity.FlashDeal
	dueAt time.Time
}

type alertService struct {
	favoriteRepo    repository.FavoriteRepository
	deviceRepo      repository.DeviceRepository
	notificationSvc service.NotificationService
	cfg             AlertConfig
	logger          *slog.Logger

	// Suppression state is in-memory only; a restart may re-alert once per
	// pair, which is acceptable for this cooldown.
	suppression *ratelimit.Gate

	remindersMu sync.Mutex
	reminders   []expiryReminder

	nowFunc func() time.Time
}

// NewAlertService creates a new alert service instance
func NewAlertService(
	favoriteRepo repository.FavoriteRepository,
	deviceRepo repository.DeviceRepository,
	notificationSvc service.NotificationService,
	cfg AlertConfig,
	logger *slog.Logger,
) usecase.AlertUsecase {
	s := &alertService{
		favoriteRepo:    favoriteRepo,
		deviceRepo:      deviceRepo,
		notificationSvc: notificationSvc,
		cfg:             cfg,
		logger:          logger,
		nowFunc:         time.Now,
	}
	// Suppression shares the service clock so swapping nowFunc steers both.
	s.suppression = ratelimit.NewGateWithClock(cfg.NotifyCooldown, func() time.Time { return s.nowFunc() })
	return s
}

// CheckNearbyFavorites returns the user's favorite vendors within the alert
// radius, suppressing recently alerted vendors, and pushes an alert for each
// hit.
func (s *alertService) CheckNearbyFavorites(ctx context.Context, userID uuid.UUID, lat, lng float64) ([]*usecase.NearbyAlert, error) {
	favorites, err := s.favoriteRepo.FindFavoriteVendors(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "find favorite vendors")
	}

	userPos := orb.Point{lng, lat}
	var alerts []*usecase.NearbyAlert
	for _, fav := range favorites {
		if !fav.NotifyWhenNearby {
			continue
		}
		distance := haversineMiles(userPos, orb.Point{fav.LocationLng, fav.LocationLat})
		if distance > s.cfg.RadiusMiles {
			continue
		}
		if _, ok := s.suppression.Reserve(suppressionKey(userID, fav.VendorID)); !ok {
			continue
		}
		alerts = append(alerts, &usecase.NearbyAlert{
			VendorID:      fav.VendorID,
			BusinessName:  fav.BusinessName,
			DistanceMiles: distance,
		})
	}
	if len(alerts) == 0 {
		return nil, nil
	}
	sort.Slice(alerts, func(i, j int) bool {
		return alerts[i].DistanceMiles < alerts[j].DistanceMiles
	})

	s.pushNearbyAlerts(ctx, userID, alerts)
	return alerts, nil
}

func (s *alertService) pushNearbyAlerts(ctx context.Context, userID uuid.UUID, alerts []*usecase.NearbyAlert) {
	devices, err := s.deviceRepo.FindActiveDevicesByUser(ctx, userID)
	if err != nil {
		s.logger.Error("device lookup failed", slog.String("userId", userID.String()), slog.Any("error", err))
		return
	}
	if len(devices) == 0 {
		return
	}

	for _, alert := range alerts {
		title := fmt.Sprintf("%s is nearby", alert.BusinessName)
		body := fmt.Sprintf("%s is %.1f miles away. Check their current deals!", alert.BusinessName, alert.DistanceMiles)
		data := map[string]string{
			"type":           "nearby_favorite",
			"vendor_id":      alert.VendorID.String(),
			"distance_miles": fmt.Sprintf("%f", alert.DistanceMiles),
		}
		for _, device := range devices {
			if err := s.notificationSvc.SendSingleNotification(ctx, device.FCMToken, title, body, data); err != nil {
				s.logger.Warn("nearby alert push failed",
					slog.String("deviceId", device.ID.String()), slog.Any("error", err))
			}
		}
	}
}

// MatchFlashDealCandidates returns the user IDs whose alert preferences
// match the deal.
func (s *alertService) MatchFlashDealCandidates(ctx context.Context, deal *entity.FlashDeal) ([]uuid.UUID, error) {
	prefs, err := s.favoriteRepo.FindUsersWithAlertPreferences(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "find alert preferences")
	}

	var candidates []uuid.UUID
	for _, p := range prefs {
		if p.MatchesDeal(deal.VendorID, deal.Category) {
			candidates = append(candidates, p.UserID)
		}
	}
	return candidates, nil
}

// DeliverFlashDealAlert pushes a flash-deal event to its candidates' devices
func (s *alertService) DeliverFlashDealAlert(ctx context.Context, event *service.FlashDealEvent) error {
	userIDs := make([]uuid.UUID, 0, len(event.CandidateIDs))
	for _, raw := range event.CandidateIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			s.logger.Warn("skipping malformed candidate id", slog.String("candidateId", raw))
			continue
		}
		userIDs = append(userIDs, id)
	}
	if len(userIDs) == 0 {
		return nil
	}

	devices, err := s.deviceRepo.FindDevicesForUsers(ctx, userIDs)
	if err != nil {
		return errors.Wrap(err, "find devices for candidates")
	}
	if len(devices) == 0 {
		return nil
	}

	tokens := make([]string, 0, len(devices))
	deviceByToken := make(map[string]*entity.UserDevice, len(devices))
	for _, device := range devices {
		tokens = append(tokens, device.FCMToken)
		deviceByToken[device.FCMToken] = device
	}

	title := fmt.Sprintf("Flash deal: %s", event.Title)
	body := fmt.Sprintf("%s for $%.2f (was $%.2f), ends %s", event.Title, event.FlashPrice, event.OriginalPrice, event.ExpiresAt)
	data := map[string]string{
		"type":          "flash_deal",
		"flash_deal_id": event.FlashDealID,
		"vendor_id":     event.VendorID,
		"expires_at":    event.ExpiresAt,
	}

	var invalidTokens []string
	for i := 0; i < len(tokens); i += firebaseBatchSize {
		end := min(i+firebaseBatchSize, len(tokens))
		batch := tokens[i:end]

		sent, failed, batchInvalid, err := s.notificationSvc.SendBatchNotification(ctx, batch, title, body, data)
		if err != nil {
			s.logger.Error("flash deal batch push failed",
				slog.String("dealId", event.FlashDealID), slog.Any("error", err))
			continue
		}
		s.logger.Info("flash deal batch pushed",
			slog.String("dealId", event.FlashDealID),
			slog.Int("sent", sent), slog.Int("failed", failed))
		invalidTokens = append(invalidTokens, batchInvalid...)
	}

	for _, token := range invalidTokens {
		device, ok := deviceByToken[token]
		if !ok {
			continue
		}
		if err := s.deviceRepo.DeactivateDevice(ctx, device.ID); err != nil {
			s.logger.Warn("failed to deactivate stale device",
				slog.String("deviceId", device.ID.String()), slog.Any("error", err))
		}
	}
	return nil
}

// ScheduleExpiryReminder registers a reminder push shortly before the deal
// expires.
func (s *alertService) ScheduleExpiryReminder(deal *entity.FlashDeal) {
	dueAt := deal.ExpiresAt.Add(-s.cfg.ReminderLead)
	if !dueAt.After(s.nowFunc()) {
		// The deal expires within the lead window; a reminder now would be noise.
		return
	}

	s.remindersMu.Lock()
	defer s.remindersMu.Unlock()
	s.reminders = append(s.reminders, expiryReminder{deal: deal, dueAt: dueAt})
}

// DeliverDueReminders pushes every reminder that has come due as of now.
func (s *alertService) DeliverDueReminders(ctx context.Context, now time.Time) error {
	s.remindersMu.Lock()
	var due []expiryReminder
	var future []expiryReminder
	for _, r := range s.reminders {
		if r.dueAt.After(now) {
			future = append(future, r)
			continue
		}
		due = append(due, r)
	}
	s.reminders = future
	s.remindersMu.Unlock()

	for _, r := range due {
		if r.deal.Expired(now) {
			continue
		}
		candidates, err := s.MatchFlashDealCandidates(ctx, r.deal)
		if err != nil {
			s.logger.Error("reminder candidate matching failed",
				slog.String("dealId", r.deal.ID.String()), slog.Any("error", err))
			continue
		}
		if len(candidates) == 0 {
			continue
		}
		event := &service.FlashDealEvent{
			FlashDealID:   r.deal.ID.String(),
			VendorID:      r.deal.VendorID.String(),
			Title:         fmt.Sprintf("%s ends soon", r.deal.Title),
			Category:      r.deal.Category,
			OriginalPrice: r.deal.OriginalPrice,
			FlashPrice:    r.deal.FlashPrice,
			ExpiresAt:     r.deal.ExpiresAt.Format(time.RFC3339),
			CandidateIDs:  uuidStrings(candidates),
		}
		if err := s.DeliverFlashDealAlert(ctx, event); err != nil {
			s.logger.Error("reminder delivery failed",
				slog.String("dealId", r.deal.ID.String()), slog.Any("error", err))
		}
	}
	return nil
}

// PendingReminders reports how many reminders are scheduled. Used by tests
// and the worker's health output.
func (s *alertService) PendingReminders() int {
	s.remindersMu.Lock()
	defer s.remindersMu.Unlock()
	return len(s.reminders)
}

func suppressionKey(userID, vendorID uuid.UUID) string {
	return userID.String() + "|" + vendorID.String()
}
