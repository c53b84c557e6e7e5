package impl

import (
	"context"
	"testing"
	"time"

	"dealdrop/internal/domain/entity"
	domainerrors "dealdrop/internal/domain/errors"
	"dealdrop/internal/domain/repository"
	mockRepo "dealdrop/internal/mocks/repository"
	"dealdrop/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newListingServiceForTest(t *testing.T) (*listingService, *mockRepo.MockListingRepository, *time.Time) {
	t.Helper()
	repo := mockRepo.NewMockListingRepository(t)
	svc := NewListingService(repo, 60*time.Minute).(*listingService)
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	svc.nowFunc = func() time.Time { return now }
	return svc, repo, &now
}

func TestListingService_CreateListing(t *testing.T) {
	svc, repo, _ := newListingServiceForTest(t)

	ctx := context.Background()
	userID := uuid.New()

	repo.EXPECT().
		CreateListing(ctx, mock.AnythingOfType("*entity.VendorListing")).
		Return(nil)

	listing, err := svc.CreateListing(ctx, userID, usecase.CreateListingInput{
		BusinessName: "Taco Cart",
		Category:     "mexican",
		LocationLat:  37.77,
		LocationLng:  -122.42,
		City:         "San Francisco",
		State:        "CA",
	})
	require.NoError(t, err)
	assert.Equal(t, userID, listing.UserID)
	assert.Equal(t, "Taco Cart", listing.BusinessName)
	assert.Nil(t, listing.LastLocationUpdate)
}

func TestListingService_UpdateLocation_FirstUpdate(t *testing.T) {
	svc, repo, _ := newListingServiceForTest(t)

	ctx := context.Background()
	userID := uuid.New()
	listingID := uuid.New()
	update := entity.LocationUpdate{LocationLat: 37.78, LocationLng: -122.41, City: "San Francisco", State: "CA"}

	repo.EXPECT().
		FindListingByID(ctx, listingID).
		Return(&entity.VendorListing{ID: listingID, UserID: userID}, nil)

	repo.EXPECT().
		UpdateLocation(ctx, listingID, update).
		Return(nil)

	listing, err := svc.UpdateLocation(ctx, userID, listingID, update)
	require.NoError(t, err)
	assert.Equal(t, 37.78, listing.LocationLat)
	require.NotNil(t, listing.LastLocationUpdate)
}

func TestListingService_UpdateLocation_NotFound(t *testing.T) {
	svc, repo, _ := newListingServiceForTest(t)

	ctx := context.Background()
	listingID := uuid.New()

	repo.EXPECT().
		FindListingByID(ctx, listingID).
		Return(nil, repository.ErrListingNotFound)

	_, err := svc.UpdateLocation(ctx, uuid.New(), listingID, entity.LocationUpdate{})
	assert.ErrorIs(t, err, domainerrors.ErrListingNotFound)
}

func TestListingService_UpdateLocation_NotOwner(t *testing.T) {
	svc, repo, _ := newListingServiceForTest(t)

	ctx := context.Background()
	listingID := uuid.New()

	repo.EXPECT().
		FindListingByID(ctx, listingID).
		Return(&entity.VendorListing{ID: listingID, UserID: uuid.New()}, nil)

	_, err := svc.UpdateLocation(ctx, uuid.New(), listingID, entity.LocationUpdate{})
	assert.ErrorIs(t, err, domainerrors.ErrNotListingOwner)
}

func TestListingService_UpdateLocation_InsideCooldown(t *testing.T) {
	svc, repo, now := newListingServiceForTest(t)

	ctx := context.Background()
	userID := uuid.New()
	listingID := uuid.New()
	lastUpdate := now.Add(-20 * time.Minute)

	repo.EXPECT().
		FindListingByID(ctx, listingID).
		Return(&entity.VendorListing{ID: listingID, UserID: userID, LastLocationUpdate: &lastUpdate}, nil)

	_, err := svc.UpdateLocation(ctx, userID, listingID, entity.LocationUpdate{})

	var rateErr *domainerrors.RateLimitError
	require.ErrorAs(t, err, &rateErr)
	assert.Equal(t, 40, rateErr.WaitMinutes)
}

func TestListingService_UpdateLocation_AfterCooldown(t *testing.T) {
	svc, repo, now := newListingServiceForTest(t)

	ctx := context.Background()
	userID := uuid.New()
	listingID := uuid.New()
	lastUpdate := now.Add(-61 * time.Minute)
	update := entity.LocationUpdate{LocationLat: 40.0, LocationLng: -105.0}

	repo.EXPECT().
		FindListingByID(ctx, listingID).
		Return(&entity.VendorListing{ID: listingID, UserID: userID, LastLocationUpdate: &lastUpdate}, nil)

	repo.EXPECT().
		UpdateLocation(ctx, listingID, update).
		Return(nil)

	listing, err := svc.UpdateLocation(ctx, userID, listingID, update)
	require.NoError(t, err)
	assert.Equal(t, *now, *listing.LastLocationUpdate)
}

func TestListingService_UpdateLocation_SecondUpdateRefused(t *testing.T) {
	svc, repo, now := newListingServiceForTest(t)

	ctx := context.Background()
	userID := uuid.New()
	listingID := uuid.New()
	update := entity.LocationUpdate{LocationLat: 40.0, LocationLng: -105.0}

	listing := &entity.VendorListing{ID: listingID, UserID: userID}
	repo.EXPECT().
		FindListingByID(ctx, listingID).
		Return(listing, nil)

	repo.EXPECT().
		UpdateLocation(ctx, listingID, update).
		Return(nil).
		Once()

	_, err := svc.UpdateLocation(ctx, userID, listingID, update)
	require.NoError(t, err)

	*now = now.Add(10 * time.Minute)
	_, err = svc.UpdateLocation(ctx, userID, listingID, update)

	var rateErr *domainerrors.RateLimitError
	require.ErrorAs(t, err, &rateErr)
	assert.Equal(t, 50, rateErr.WaitMinutes)
}

func TestListingService_UpdateLocation_PersistFailureReleasesWindow(t *testing.T) {
	svc, repo, _ := newListingServiceForTest(t)

	ctx := context.Background()
	userID := uuid.New()
	listingID := uuid.New()
	update := entity.LocationUpdate{LocationLat: 40.0, LocationLng: -105.0}

	repo.EXPECT().
		FindListingByID(ctx, listingID).
		Return(&entity.VendorListing{ID: listingID, UserID: userID}, nil).
		Once()

	repo.EXPECT().
		UpdateLocation(ctx, listingID, update).
		Return(errors.New("connection refused")).
		Once()

	_, err := svc.UpdateLocation(ctx, userID, listingID, update)
	require.Error(t, err)

	// The failed write must not consume the cooldown window.
	repo.EXPECT().
		FindListingByID(ctx, listingID).
		Return(&entity.VendorListing{ID: listingID, UserID: userID}, nil).
		Once()
	repo.EXPECT().
		UpdateLocation(ctx, listingID, update).
		Return(nil)

	_, err = svc.UpdateLocation(ctx, userID, listingID, update)
	assert.NoError(t, err)
}

func TestListingService_DeleteListing_ClearsCooldown(t *testing.T) {
	svc, repo, _ := newListingServiceForTest(t)

	ctx := context.Background()
	userID := uuid.New()
	listingID := uuid.New()
	update := entity.LocationUpdate{LocationLat: 40.0, LocationLng: -105.0}

	repo.EXPECT().
		FindListingByID(ctx, listingID).
		Return(&entity.VendorListing{ID: listingID, UserID: userID}, nil).
		Once()
	repo.EXPECT().
		UpdateLocation(ctx, listingID, update).
		Return(nil)

	_, err := svc.UpdateLocation(ctx, userID, listingID, update)
	require.NoError(t, err)

	repo.EXPECT().
		FindListingByID(ctx, listingID).
		Return(&entity.VendorListing{ID: listingID, UserID: userID}, nil).
		Once()
	repo.EXPECT().
		DeleteListing(ctx, listingID).
		Return(nil)

	require.NoError(t, svc.DeleteListing(ctx, userID, listingID))
}
