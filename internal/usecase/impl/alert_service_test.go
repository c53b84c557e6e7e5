package impl

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"dealdrop/internal/domain/entity"
	"dealdrop/internal/domain/service"
	mockRepo "dealdrop/internal/mocks/repository"
	mockSvc "dealdrop/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type alertServiceMocks struct {
	favoriteRepo *mockRepo.MockFavoriteRepository
	deviceRepo   *mockRepo.MockDeviceRepository
	notifySvc    *mockSvc.MockNotificationService
}

func newAlertServiceForTest(t *testing.T) (*alertService, alertServiceMocks, *time.Time) {
	t.Helper()
	m := alertServiceMocks{
		favoriteRepo: mockRepo.NewMockFavoriteRepository(t),
		deviceRepo:   mockRepo.NewMockDeviceRepository(t),
		notifySvc:    mockSvc.NewMockNotificationService(t),
	}
	cfg := AlertConfig{
		RadiusMiles:    0.5,
		NotifyCooldown: 30 * time.Minute,
		ReminderLead:   5 * time.Minute,
	}
	svc := NewAlertService(m.favoriteRepo, m.deviceRepo, m.notifySvc, cfg, slog.Default()).(*alertService)
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	svc.nowFunc = func() time.Time { return now }
	return svc, m, &now
}

// Roughly 0.3 miles north of the reference point.
func nearbyVendor(id uuid.UUID, name string) *entity.FavoriteVendor {
	return &entity.FavoriteVendor{
		VendorID:         id,
		BusinessName:     name,
		LocationLat:      37.7749 + 0.0044,
		LocationLng:      -122.4194,
		NotifyWhenNearby: true,
	}
}

func TestAlertService_CheckNearbyFavorites_WithinRadius(t *testing.T) {
	svc, m, _ := newAlertServiceForTest(t)

	ctx := context.Background()
	userID := uuid.New()
	vendorID := uuid.New()

	m.favoriteRepo.EXPECT().
		FindFavoriteVendors(ctx, userID).
		Return([]*entity.FavoriteVendor{nearbyVendor(vendorID, "Taco Cart")}, nil)

	m.deviceRepo.EXPECT().
		FindActiveDevicesByUser(ctx, userID).
		Return([]*entity.UserDevice{{ID: uuid.New(), UserID: userID, FCMToken: "tok-1"}}, nil)

	m.notifySvc.EXPECT().
		SendSingleNotification(ctx, "tok-1", mock.AnythingOfType("string"), mock.AnythingOfType("string"), mock.AnythingOfType("map[string]string")).
		Return(nil)

	alerts, err := svc.CheckNearbyFavorites(ctx, userID, 37.7749, -122.4194)
	require.NoError(t, err)
	require.Len(t, alerts, 1)
	assert.Equal(t, vendorID, alerts[0].VendorID)
	assert.InDelta(t, 0.3, alerts[0].DistanceMiles, 0.05)
}

func TestAlertService_CheckNearbyFavorites_OutsideRadius(t *testing.T) {
	svc, m, _ := newAlertServiceForTest(t)

	ctx := context.Background()
	userID := uuid.New()

	// Roughly 0.7 miles away.
	m.favoriteRepo.EXPECT().
		FindFavoriteVendors(ctx, userID).
		Return([]*entity.FavoriteVendor{{
			VendorID:         uuid.New(),
			BusinessName:     "Far Away Grill",
			LocationLat:      37.7749 + 0.0101,
			LocationLng:      -122.4194,
			NotifyWhenNearby: true,
		}}, nil)

	alerts, err := svc.CheckNearbyFavorites(ctx, userID, 37.7749, -122.4194)
	require.NoError(t, err)
	assert.Empty(t, alerts)
}

func TestAlertService_CheckNearbyFavorites_NotifyDisabled(t *testing.T) {
	svc, m, _ := newAlertServiceForTest(t)

	ctx := context.Background()
	userID := uuid.New()

	vendor := nearbyVendor(uuid.New(), "Muted Cart")
	vendor.NotifyWhenNearby = false

	m.favoriteRepo.EXPECT().
		FindFavoriteVendors(ctx, userID).
		Return([]*entity.FavoriteVendor{vendor}, nil)

	alerts, err := svc.CheckNearbyFavorites(ctx, userID, 37.7749, -122.4194)
	require.NoError(t, err)
	assert.Empty(t, alerts)
}

func TestAlertService_CheckNearbyFavorites_SuppressedInsideCooldown(t *testing.T) {
	svc, m, now := newAlertServiceForTest(t)

	ctx := context.Background()
	userID := uuid.New()
	vendorID := uuid.New()

	m.favoriteRepo.EXPECT().
		FindFavoriteVendors(ctx, userID).
		Return([]*entity.FavoriteVendor{nearbyVendor(vendorID, "Taco Cart")}, nil)
	m.deviceRepo.EXPECT().
		FindActiveDevicesByUser(ctx, userID).
		Return(nil, nil).
		Once()

	alerts, err := svc.CheckNearbyFavorites(ctx, userID, 37.7749, -122.4194)
	require.NoError(t, err)
	require.Len(t, alerts, 1)

	// Standing next to the vendor 10 minutes later must not re-alert.
	*now = now.Add(10 * time.Minute)
	alerts, err = svc.CheckNearbyFavorites(ctx, userID, 37.7749, -122.4194)
	require.NoError(t, err)
	assert.Empty(t, alerts)

	// Past the cooldown the vendor is eligible again.
	*now = now.Add(30 * time.Minute)
	m.deviceRepo.EXPECT().
		FindActiveDevicesByUser(ctx, userID).
		Return(nil, nil).
		Once()
	alerts, err = svc.CheckNearbyFavorites(ctx, userID, 37.7749, -122.4194)
	require.NoError(t, err)
	assert.Len(t, alerts, 1)
}

func TestAlertService_CheckNearbyFavorites_SuppressionIsPerUser(t *testing.T) {
	svc, m, _ := newAlertServiceForTest(t)

	ctx := context.Background()
	firstUser := uuid.New()
	secondUser := uuid.New()
	vendorID := uuid.New()

	for _, userID := range []uuid.UUID{firstUser, secondUser} {
		m.favoriteRepo.EXPECT().
			FindFavoriteVendors(ctx, userID).
			Return([]*entity.FavoriteVendor{nearbyVendor(vendorID, "Taco Cart")}, nil)
		m.deviceRepo.EXPECT().
			FindActiveDevicesByUser(ctx, userID).
			Return(nil, nil)
	}

	alerts, err := svc.CheckNearbyFavorites(ctx, firstUser, 37.7749, -122.4194)
	require.NoError(t, err)
	require.Len(t, alerts, 1)

	// The first user's alert must not suppress the second user's.
	alerts, err = svc.CheckNearbyFavorites(ctx, secondUser, 37.7749, -122.4194)
	require.NoError(t, err)
	assert.Len(t, alerts, 1)
}

func TestAlertService_MatchFlashDealCandidates(t *testing.T) {
	svc, m, _ := newAlertServiceForTest(t)

	ctx := context.Background()
	vendorID := uuid.New()
	deal := &entity.FlashDeal{ID: uuid.New(), VendorID: vendorID, Category: "mexican"}

	everything := &entity.AlertPreferences{UserID: uuid.New()}
	rightVendor := &entity.AlertPreferences{UserID: uuid.New(), SubscribedVendors: []uuid.UUID{vendorID}}
	wrongVendor := &entity.AlertPreferences{UserID: uuid.New(), SubscribedVendors: []uuid.UUID{uuid.New()}}
	rightCategory := &entity.AlertPreferences{UserID: uuid.New(), SubscribedCategories: []string{"mexican"}}
	wrongCategory := &entity.AlertPreferences{UserID: uuid.New(), SubscribedCategories: []string{"sushi"}}

	m.favoriteRepo.EXPECT().
		FindUsersWithAlertPreferences(ctx).
		Return([]*entity.AlertPreferences{everything, rightVendor, wrongVendor, rightCategory, wrongCategory}, nil)

	candidates, err := svc.MatchFlashDealCandidates(ctx, deal)
	require.NoError(t, err)
	assert.ElementsMatch(t, []uuid.UUID{everything.UserID, rightVendor.UserID, rightCategory.UserID}, candidates)
}

func TestAlertService_MatchFlashDealCandidates_EitherDimensionMatches(t *testing.T) {
	svc, m, _ := newAlertServiceForTest(t)

	ctx := context.Background()
	vendorID := uuid.New()
	deal := &entity.FlashDeal{ID: uuid.New(), VendorID: vendorID, Category: "mexican"}

	// Subscribed to this vendor and an unrelated category: the vendor
	// subscription alone is enough.
	vendorOfTwo := &entity.AlertPreferences{
		UserID:               uuid.New(),
		SubscribedVendors:    []uuid.UUID{vendorID},
		SubscribedCategories: []string{"sushi"},
	}
	// Subscribed to another vendor and the deal's category: the category
	// subscription alone is enough.
	categoryOfTwo := &entity.AlertPreferences{
		UserID:               uuid.New(),
		SubscribedVendors:    []uuid.UUID{uuid.New()},
		SubscribedCategories: []string{"mexican"},
	}
	// Neither dimension matches.
	neither := &entity.AlertPreferences{
		UserID:               uuid.New(),
		SubscribedVendors:    []uuid.UUID{uuid.New()},
		SubscribedCategories: []string{"sushi"},
	}

	m.favoriteRepo.EXPECT().
		FindUsersWithAlertPreferences(ctx).
		Return([]*entity.AlertPreferences{vendorOfTwo, categoryOfTwo, neither}, nil)

	candidates, err := svc.MatchFlashDealCandidates(ctx, deal)
	require.NoError(t, err)
	assert.ElementsMatch(t, []uuid.UUID{vendorOfTwo.UserID, categoryOfTwo.UserID}, candidates)
}

func TestAlertService_DeliverFlashDealAlert(t *testing.T) {
	svc, m, _ := newAlertServiceForTest(t)

	ctx := context.Background()
	candidate := uuid.New()
	staleDeviceID := uuid.New()

	m.deviceRepo.EXPECT().
		FindDevicesForUsers(ctx, []uuid.UUID{candidate}).
		Return([]*entity.UserDevice{
			{ID: uuid.New(), UserID: candidate, FCMToken: "tok-good"},
			{ID: staleDeviceID, UserID: candidate, FCMToken: "tok-stale"},
		}, nil)

	m.notifySvc.EXPECT().
		SendBatchNotification(ctx, []string{"tok-good", "tok-stale"}, mock.AnythingOfType("string"), mock.AnythingOfType("string"), mock.AnythingOfType("map[string]string")).
		Return(1, 1, []string{"tok-stale"}, nil)

	m.deviceRepo.EXPECT().
		DeactivateDevice(ctx, staleDeviceID).
		Return(nil)

	err := svc.DeliverFlashDealAlert(ctx, &service.FlashDealEvent{
		FlashDealID:  uuid.New().String(),
		VendorID:     uuid.New().String(),
		Title:        "Half-price burritos",
		FlashPrice:   5,
		CandidateIDs: []string{candidate.String()},
	})
	require.NoError(t, err)
}

func TestAlertService_DeliverFlashDealAlert_NoCandidates(t *testing.T) {
	svc, _, _ := newAlertServiceForTest(t)

	err := svc.DeliverFlashDealAlert(context.Background(), &service.FlashDealEvent{
		FlashDealID: uuid.New().String(),
	})
	assert.NoError(t, err)
}

func TestAlertService_ScheduleExpiryReminder_SkipsInsideLeadWindow(t *testing.T) {
	svc, _, now := newAlertServiceForTest(t)

	// Expires in 3 minutes; the 5-minute reminder point already passed.
	svc.ScheduleExpiryReminder(&entity.FlashDeal{ID: uuid.New(), ExpiresAt: now.Add(3 * time.Minute)})
	assert.Zero(t, svc.PendingReminders())

	svc.ScheduleExpiryReminder(&entity.FlashDeal{ID: uuid.New(), ExpiresAt: now.Add(time.Hour)})
	assert.Equal(t, 1, svc.PendingReminders())
}

func TestAlertService_DeliverDueReminders(t *testing.T) {
	svc, m, now := newAlertServiceForTest(t)

	ctx := context.Background()
	candidate := uuid.New()
	deal := &entity.FlashDeal{
		ID:        uuid.New(),
		VendorID:  uuid.New(),
		Title:     "Half-price burritos",
		ExpiresAt: now.Add(time.Hour),
	}
	svc.ScheduleExpiryReminder(deal)

	// Not due yet.
	require.NoError(t, svc.DeliverDueReminders(ctx, now.Add(30*time.Minute)))
	assert.Equal(t, 1, svc.PendingReminders())

	m.favoriteRepo.EXPECT().
		FindUsersWithAlertPreferences(ctx).
		Return([]*entity.AlertPreferences{{UserID: candidate}}, nil)
	m.deviceRepo.EXPECT().
		FindDevicesForUsers(ctx, []uuid.UUID{candidate}).
		Return([]*entity.UserDevice{{ID: uuid.New(), UserID: candidate, FCMToken: "tok-1"}}, nil)
	m.notifySvc.EXPECT().
		SendBatchNotification(ctx, []string{"tok-1"}, mock.AnythingOfType("string"), mock.AnythingOfType("string"), mock.AnythingOfType("map[string]string")).
		Return(1, 0, nil, nil)

	require.NoError(t, svc.DeliverDueReminders(ctx, now.Add(56*time.Minute)))
	assert.Zero(t, svc.PendingReminders())
}

func TestAlertService_DeliverDueReminders_SkipsExpiredDeal(t *testing.T) {
	svc, _, now := newAlertServiceForTest(t)

	svc.ScheduleExpiryReminder(&entity.FlashDeal{ID: uuid.New(), ExpiresAt: now.Add(time.Hour)})

	// The sweep arrives after the deal already expired; no push goes out.
	require.NoError(t, svc.DeliverDueReminders(context.Background(), now.Add(2*time.Hour)))
	assert.Zero(t, svc.PendingReminders())
}
