package impl

import (
	"context"
	"testing"

	"dealdrop/internal/domain/entity"
	domainerrors "dealdrop/internal/domain/errors"
	"dealdrop/internal/domain/repository"
	mockRepo "dealdrop/internal/mocks/repository"
	mockSvc "dealdrop/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type favoriteServiceMocks struct {
	favoriteRepo *mockRepo.MockFavoriteRepository
	listingRepo  *mockRepo.MockListingRepository
	qrcodeSvc    *mockSvc.MockQRCodeService
}

func newFavoriteServiceForTest(t *testing.T) (*favoriteService, favoriteServiceMocks) {
	t.Helper()
	m := favoriteServiceMocks{
		favoriteRepo: mockRepo.NewMockFavoriteRepository(t),
		listingRepo:  mockRepo.NewMockListingRepository(t),
		qrcodeSvc:    mockSvc.NewMockQRCodeService(t),
	}
	svc := NewFavoriteService(m.favoriteRepo, m.listingRepo, m.qrcodeSvc).(*favoriteService)
	return svc, m
}

func TestFavoriteService_FavoriteVendor_New(t *testing.T) {
	svc, m := newFavoriteServiceForTest(t)

	ctx := context.Background()
	userID := uuid.New()
	vendorID := uuid.New()

	m.listingRepo.EXPECT().
		FindListingByID(ctx, vendorID).
		Return(&entity.VendorListing{ID: vendorID}, nil)

	m.favoriteRepo.EXPECT().
		FindFavoriteByUserAndVendor(ctx, userID, vendorID).
		Return(nil, repository.ErrFavoriteNotFound)

	m.favoriteRepo.EXPECT().
		CreateFavorite(ctx, mock.AnythingOfType("*entity.FavoriteSubscription")).
		Return(nil)

	favorite, err := svc.FavoriteVendor(ctx, userID, vendorID)
	require.NoError(t, err)
	assert.Equal(t, userID, favorite.UserID)
	assert.Equal(t, vendorID, favorite.VendorID)
	assert.True(t, favorite.NotifyWhenNearby)
}

func TestFavoriteService_FavoriteVendor_AlreadyFavorited(t *testing.T) {
	svc, m := newFavoriteServiceForTest(t)

	ctx := context.Background()
	userID := uuid.New()
	vendorID := uuid.New()
	existing := &entity.FavoriteSubscription{ID: uuid.New(), UserID: userID, VendorID: vendorID}

	m.listingRepo.EXPECT().
		FindListingByID(ctx, vendorID).
		Return(&entity.VendorListing{ID: vendorID}, nil)

	m.favoriteRepo.EXPECT().
		FindFavoriteByUserAndVendor(ctx, userID, vendorID).
		Return(existing, nil)

	favorite, err := svc.FavoriteVendor(ctx, userID, vendorID)
	require.NoError(t, err)
	assert.Equal(t, existing.ID, favorite.ID)
}

func TestFavoriteService_FavoriteVendor_UnknownVendor(t *testing.T) {
	svc, m := newFavoriteServiceForTest(t)

	ctx := context.Background()
	vendorID := uuid.New()

	m.listingRepo.EXPECT().
		FindListingByID(ctx, vendorID).
		Return(nil, repository.ErrListingNotFound)

	_, err := svc.FavoriteVendor(ctx, uuid.New(), vendorID)
	assert.ErrorIs(t, err, domainerrors.ErrListingNotFound)
}

func TestFavoriteService_FavoriteVendor_LosesCreateRace(t *testing.T) {
	svc, m := newFavoriteServiceForTest(t)

	ctx := context.Background()
	userID := uuid.New()
	vendorID := uuid.New()
	winner := &entity.FavoriteSubscription{ID: uuid.New(), UserID: userID, VendorID: vendorID}

	m.listingRepo.EXPECT().
		FindListingByID(ctx, vendorID).
		Return(&entity.VendorListing{ID: vendorID}, nil)

	m.favoriteRepo.EXPECT().
		FindFavoriteByUserAndVendor(ctx, userID, vendorID).
		Return(nil, repository.ErrFavoriteNotFound).
		Once()

	m.favoriteRepo.EXPECT().
		CreateFavorite(ctx, mock.AnythingOfType("*entity.FavoriteSubscription")).
		Return(repository.ErrDuplicateFavorite)

	m.favoriteRepo.EXPECT().
		FindFavoriteByUserAndVendor(ctx, userID, vendorID).
		Return(winner, nil).
		Once()

	favorite, err := svc.FavoriteVendor(ctx, userID, vendorID)
	require.NoError(t, err)
	assert.Equal(t, winner.ID, favorite.ID)
}

func TestFavoriteService_UnfavoriteVendor_NotFound(t *testing.T) {
	svc, m := newFavoriteServiceForTest(t)

	ctx := context.Background()
	userID := uuid.New()
	vendorID := uuid.New()

	m.favoriteRepo.EXPECT().
		FindFavoriteByUserAndVendor(ctx, userID, vendorID).
		Return(nil, repository.ErrFavoriteNotFound)

	err := svc.UnfavoriteVendor(ctx, userID, vendorID)
	assert.ErrorIs(t, err, domainerrors.ErrFavoriteNotFound)
}

func TestFavoriteService_SetNotifyWhenNearby(t *testing.T) {
	svc, m := newFavoriteServiceForTest(t)

	ctx := context.Background()
	userID := uuid.New()
	vendorID := uuid.New()
	favoriteID := uuid.New()

	m.favoriteRepo.EXPECT().
		FindFavoriteByUserAndVendor(ctx, userID, vendorID).
		Return(&entity.FavoriteSubscription{ID: favoriteID, UserID: userID, VendorID: vendorID}, nil)

	m.favoriteRepo.EXPECT().
		UpdateNotifyWhenNearby(ctx, favoriteID, false).
		Return(nil)

	require.NoError(t, svc.SetNotifyWhenNearby(ctx, userID, vendorID, false))
}

func TestFavoriteService_FavoriteFromQR(t *testing.T) {
	svc, m := newFavoriteServiceForTest(t)

	ctx := context.Background()
	userID := uuid.New()
	vendorID := uuid.New()

	m.qrcodeSvc.EXPECT().
		ParseFavoriteQR("dealdrop://vendor/" + vendorID.String()).
		Return(vendorID, nil)

	m.listingRepo.EXPECT().
		FindListingByID(ctx, vendorID).
		Return(&entity.VendorListing{ID: vendorID}, nil)

	m.favoriteRepo.EXPECT().
		FindFavoriteByUserAndVendor(ctx, userID, vendorID).
		Return(nil, repository.ErrFavoriteNotFound)

	m.favoriteRepo.EXPECT().
		CreateFavorite(ctx, mock.AnythingOfType("*entity.FavoriteSubscription")).
		Return(nil)

	favorite, err := svc.FavoriteFromQR(ctx, userID, "dealdrop://vendor/"+vendorID.String())
	require.NoError(t, err)
	assert.Equal(t, vendorID, favorite.VendorID)
}

func TestFavoriteService_FavoriteFromQR_BadPayload(t *testing.T) {
	svc, m := newFavoriteServiceForTest(t)

	m.qrcodeSvc.EXPECT().
		ParseFavoriteQR("not-a-qr").
		Return(uuid.Nil, errors.New("invalid QR code format"))

	_, err := svc.FavoriteFromQR(context.Background(), uuid.New(), "not-a-qr")
	assert.Error(t, err)
}

func TestFavoriteService_GetAlertPreferences_DefaultsToEverything(t *testing.T) {
	svc, m := newFavoriteServiceForTest(t)

	ctx := context.Background()
	userID := uuid.New()

	m.favoriteRepo.EXPECT().
		FindAlertPreferences(ctx, userID).
		Return(nil, repository.ErrFavoriteNotFound)

	prefs, err := svc.GetAlertPreferences(ctx, userID)
	require.NoError(t, err)
	assert.Empty(t, prefs.SubscribedVendors)
	assert.Empty(t, prefs.SubscribedCategories)
	assert.True(t, prefs.MatchesDeal(uuid.New(), "anything"))
}

func TestFavoriteService_SaveAlertPreferences(t *testing.T) {
	svc, m := newFavoriteServiceForTest(t)

	ctx := context.Background()
	prefs := &entity.AlertPreferences{
		UserID:               uuid.New(),
		SubscribedCategories: []string{"mexican"},
	}

	m.favoriteRepo.EXPECT().
		SaveAlertPreferences(ctx, prefs).
		Return(nil)

	require.NoError(t, svc.SaveAlertPreferences(ctx, prefs))
	assert.False(t, prefs.UpdatedAt.IsZero())
}
