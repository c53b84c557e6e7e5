package impl

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"dealdrop/internal/domain/entity"
	domainerrors "dealdrop/internal/domain/errors"
	"dealdrop/internal/domain/repository"
	"dealdrop/internal/domain/service"
	mockRepo "dealdrop/internal/mocks/repository"
	mockSvc "dealdrop/internal/mocks/service"
	mockUsecase "dealdrop/internal/mocks/usecase"
	"dealdrop/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type flashDealServiceMocks struct {
	dealRepo    *mockRepo.MockFlashDealRepository
	listingRepo *mockRepo.MockListingRepository
	alerts      *mockUsecase.MockAlertUsecase
	publisher   *mockSvc.MockEventPublisher
}

func newFlashDealServiceForTest(t *testing.T) (*flashDealService, flashDealServiceMocks, *time.Time) {
	t.Helper()
	m := flashDealServiceMocks{
		dealRepo:    mockRepo.NewMockFlashDealRepository(t),
		listingRepo: mockRepo.NewMockListingRepository(t),
		alerts:      mockUsecase.NewMockAlertUsecase(t),
		publisher:   mockSvc.NewMockEventPublisher(t),
	}
	svc := NewFlashDealService(m.dealRepo, m.listingRepo, m.alerts, m.publisher, slog.Default()).(*flashDealService)
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	svc.nowFunc = func() time.Time { return now }
	return svc, m, &now
}

func TestFlashDealService_PostFlashDeal(t *testing.T) {
	svc, m, now := newFlashDealServiceForTest(t)

	ctx := context.Background()
	userID := uuid.New()
	listingID := uuid.New()
	candidate := uuid.New()

	m.listingRepo.EXPECT().
		FindListingByID(ctx, listingID).
		Return(&entity.VendorListing{ID: listingID, UserID: userID}, nil)

	m.dealRepo.EXPECT().
		CreateFlashDeal(ctx, mock.AnythingOfType("*entity.FlashDeal")).
		Return(nil)

	m.alerts.EXPECT().
		MatchFlashDealCandidates(ctx, mock.AnythingOfType("*entity.FlashDeal")).
		Return([]uuid.UUID{candidate}, nil)

	m.publisher.EXPECT().
		PublishFlashDealEvent(ctx, mock.AnythingOfType("*service.FlashDealEvent")).
		Run(func(_ context.Context, event *service.FlashDealEvent) {
			assert.Equal(t, []string{candidate.String()}, event.CandidateIDs)
			assert.Equal(t, listingID.String(), event.VendorID)
		}).
		Return(nil)

	m.alerts.EXPECT().
		ScheduleExpiryReminder(mock.AnythingOfType("*entity.FlashDeal")).
		Return()

	deal, err := svc.PostFlashDeal(ctx, userID, listingID, usecase.PostFlashDealInput{
		Title:         "Half-price burritos",
		Category:      "mexican",
		OriginalPrice: 10,
		FlashPrice:    5,
		ExpiresAt:     now.Add(2 * time.Hour),
	})
	require.NoError(t, err)
	assert.Equal(t, listingID, deal.VendorID)
	assert.Zero(t, deal.CurrentRedemptions)
}

func TestFlashDealService_PostFlashDeal_NotOwner(t *testing.T) {
	svc, m, now := newFlashDealServiceForTest(t)

	ctx := context.Background()
	listingID := uuid.New()

	m.listingRepo.EXPECT().
		FindListingByID(ctx, listingID).
		Return(&entity.VendorListing{ID: listingID, UserID: uuid.New()}, nil)

	_, err := svc.PostFlashDeal(ctx, uuid.New(), listingID, usecase.PostFlashDealInput{
		OriginalPrice: 10, FlashPrice: 5, ExpiresAt: now.Add(time.Hour),
	})
	assert.ErrorIs(t, err, domainerrors.ErrNotListingOwner)
}

func TestFlashDealService_PostFlashDeal_NotDiscounted(t *testing.T) {
	svc, m, now := newFlashDealServiceForTest(t)

	ctx := context.Background()
	userID := uuid.New()
	listingID := uuid.New()

	m.listingRepo.EXPECT().
		FindListingByID(ctx, listingID).
		Return(&entity.VendorListing{ID: listingID, UserID: userID}, nil)

	_, err := svc.PostFlashDeal(ctx, userID, listingID, usecase.PostFlashDealInput{
		OriginalPrice: 5, FlashPrice: 5, ExpiresAt: now.Add(time.Hour),
	})
	assert.ErrorIs(t, err, domainerrors.ErrFlashDealNotDiscounted)
}

func TestFlashDealService_PostFlashDeal_ExpiryInPast(t *testing.T) {
	svc, m, now := newFlashDealServiceForTest(t)

	ctx := context.Background()
	userID := uuid.New()
	listingID := uuid.New()

	m.listingRepo.EXPECT().
		FindListingByID(ctx, listingID).
		Return(&entity.VendorListing{ID: listingID, UserID: userID}, nil)

	_, err := svc.PostFlashDeal(ctx, userID, listingID, usecase.PostFlashDealInput{
		OriginalPrice: 10, FlashPrice: 5, ExpiresAt: now.Add(-time.Minute),
	})
	assert.Error(t, err)
}

func TestFlashDealService_PostFlashDeal_PublishFailureDoesNotUndoPost(t *testing.T) {
	svc, m, now := newFlashDealServiceForTest(t)

	ctx := context.Background()
	userID := uuid.New()
	listingID := uuid.New()

	m.listingRepo.EXPECT().
		FindListingByID(ctx, listingID).
		Return(&entity.VendorListing{ID: listingID, UserID: userID}, nil)
	m.dealRepo.EXPECT().
		CreateFlashDeal(ctx, mock.AnythingOfType("*entity.FlashDeal")).
		Return(nil)
	m.alerts.EXPECT().
		MatchFlashDealCandidates(ctx, mock.AnythingOfType("*entity.FlashDeal")).
		Return([]uuid.UUID{uuid.New()}, nil)
	m.publisher.EXPECT().
		PublishFlashDealEvent(ctx, mock.AnythingOfType("*service.FlashDealEvent")).
		Return(errors.New("broker unavailable"))
	m.alerts.EXPECT().
		ScheduleExpiryReminder(mock.AnythingOfType("*entity.FlashDeal")).
		Return()

	deal, err := svc.PostFlashDeal(ctx, userID, listingID, usecase.PostFlashDealInput{
		OriginalPrice: 10, FlashPrice: 5, ExpiresAt: now.Add(time.Hour),
	})
	require.NoError(t, err)
	assert.NotNil(t, deal)
}

func TestFlashDealService_RedeemFlashDeal(t *testing.T) {
	svc, m, now := newFlashDealServiceForTest(t)

	ctx := context.Background()
	dealID := uuid.New()
	maxRedemptions := 10

	m.dealRepo.EXPECT().
		FindFlashDealByID(ctx, dealID).
		Return(&entity.FlashDeal{
			ID:                 dealID,
			ExpiresAt:          now.Add(time.Hour),
			MaxRedemptions:     &maxRedemptions,
			CurrentRedemptions: 4,
		}, nil)

	m.dealRepo.EXPECT().
		IncrementRedemptions(ctx, dealID).
		Return(nil)

	deal, err := svc.RedeemFlashDeal(ctx, dealID)
	require.NoError(t, err)
	assert.Equal(t, 5, deal.CurrentRedemptions)
}

func TestFlashDealService_RedeemFlashDeal_Expired(t *testing.T) {
	svc, m, now := newFlashDealServiceForTest(t)

	ctx := context.Background()
	dealID := uuid.New()

	m.dealRepo.EXPECT().
		FindFlashDealByID(ctx, dealID).
		Return(&entity.FlashDeal{ID: dealID, ExpiresAt: now.Add(-time.Minute)}, nil)

	_, err := svc.RedeemFlashDeal(ctx, dealID)
	assert.ErrorIs(t, err, domainerrors.ErrFlashDealExpired)
}

func TestFlashDealService_RedeemFlashDeal_SoldOut(t *testing.T) {
	svc, m, now := newFlashDealServiceForTest(t)

	ctx := context.Background()
	dealID := uuid.New()
	maxRedemptions := 3

	m.dealRepo.EXPECT().
		FindFlashDealByID(ctx, dealID).
		Return(&entity.FlashDeal{
			ID:                 dealID,
			ExpiresAt:          now.Add(time.Hour),
			MaxRedemptions:     &maxRedemptions,
			CurrentRedemptions: 3,
		}, nil)

	_, err := svc.RedeemFlashDeal(ctx, dealID)
	assert.ErrorIs(t, err, domainerrors.ErrFlashDealSoldOut)
}

func TestFlashDealService_RedeemFlashDeal_LosesGuardedIncrement(t *testing.T) {
	svc, m, now := newFlashDealServiceForTest(t)

	ctx := context.Background()
	dealID := uuid.New()
	maxRedemptions := 3

	// The in-memory check passed but another redemption got there first.
	m.dealRepo.EXPECT().
		FindFlashDealByID(ctx, dealID).
		Return(&entity.FlashDeal{
			ID:                 dealID,
			ExpiresAt:          now.Add(time.Hour),
			MaxRedemptions:     &maxRedemptions,
			CurrentRedemptions: 2,
		}, nil)

	m.dealRepo.EXPECT().
		IncrementRedemptions(ctx, dealID).
		Return(repository.ErrRedemptionExhausted)

	_, err := svc.RedeemFlashDeal(ctx, dealID)
	assert.ErrorIs(t, err, domainerrors.ErrFlashDealSoldOut)
}

func TestFlashDealService_RedeemFlashDeal_UnlimitedRedemptions(t *testing.T) {
	svc, m, now := newFlashDealServiceForTest(t)

	ctx := context.Background()
	dealID := uuid.New()

	m.dealRepo.EXPECT().
		FindFlashDealByID(ctx, dealID).
		Return(&entity.FlashDeal{
			ID:                 dealID,
			ExpiresAt:          now.Add(time.Hour),
			CurrentRedemptions: 9000,
		}, nil)

	m.dealRepo.EXPECT().
		IncrementRedemptions(ctx, dealID).
		Return(nil)

	deal, err := svc.RedeemFlashDeal(ctx, dealID)
	require.NoError(t, err)
	assert.Equal(t, 9001, deal.CurrentRedemptions)
}
