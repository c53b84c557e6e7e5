package sync

import (
	"context"
	"log/slog"
	"sync"
	"testing"
	"time"

	"dealdrop/internal/domain/entity"
	"dealdrop/internal/errors"
	"dealdrop/internal/offline/cache"
	"dealdrop/internal/offline/connectivity"
	"dealdrop/internal/offline/kv"
	"dealdrop/internal/offline/queue"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubFetcher struct {
	mu      sync.Mutex
	deals   []entity.Deal
	vendors []entity.VendorListing
	err     error
	calls   int
}

func (f *stubFetcher) FetchDeals(context.Context) ([]entity.Deal, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.deals, nil
}

func (f *stubFetcher) FetchVendors(context.Context) ([]entity.VendorListing, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	return f.vendors, nil
}

type recordingEffector struct {
	mu      sync.Mutex
	applied []string
	err     error
}

func (r *recordingEffector) Apply(_ context.Context, action *entity.PendingAction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	r.applied = append(r.applied, action.ID)
	return nil
}

func (r *recordingEffector) appliedIDs() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.applied))
	copy(out, r.applied)
	return out
}

func newTestEngine(t *testing.T, store kv.Store, fetcher Fetcher, effector queue.Effector) (*Engine, *connectivity.Monitor) {
	t.Helper()
	logger := slog.Default()
	deals := cache.New(store, "cachedDeals", func(d entity.Deal) string { return d.ID.String() }, 24*time.Hour, 100, logger)
	vendors := cache.New(store, "cachedVendors", func(v entity.VendorListing) string { return v.ID.String() }, 24*time.Hour, 50, logger)
	pending := queue.New(store, "pendingActions", 3, logger)
	monitor := connectivity.NewMonitor(nil, time.Second, logger)
	return NewEngine(deals, vendors, pending, monitor, fetcher, effector, 5*time.Second, logger), monitor
}

func TestEngine_DealsFetchesWhenOnline(t *testing.T) {
	deal := entity.Deal{ID: uuid.New(), Title: "Half-price tacos"}
	fetcher := &stubFetcher{deals: []entity.Deal{deal}}
	eng, _ := newTestEngine(t, kv.NewMemoryStore(), fetcher, &recordingEffector{})

	deals, fresh := eng.Deals(context.Background())
	require.True(t, fresh)
	require.Len(t, deals, 1)
	assert.Equal(t, deal.ID, deals[0].ID)
}

func TestEngine_DealsServesCacheWhenOffline(t *testing.T) {
	deal := entity.Deal{ID: uuid.New(), Title: "Half-price tacos"}
	fetcher := &stubFetcher{deals: []entity.Deal{deal}}
	eng, monitor := newTestEngine(t, kv.NewMemoryStore(), fetcher, &recordingEffector{})

	// Populate the cache while online, then drop the link.
	_, fresh := eng.Deals(context.Background())
	require.True(t, fresh)
	monitor.SetOnline(false)

	deals, fresh := eng.Deals(context.Background())
	assert.False(t, fresh)
	require.Len(t, deals, 1)
	assert.Equal(t, deal.ID, deals[0].ID)

	fetcher.mu.Lock()
	calls := fetcher.calls
	fetcher.mu.Unlock()
	assert.Equal(t, 1, calls)
}

func TestEngine_DealsFallsBackOnFetchError(t *testing.T) {
	deal := entity.Deal{ID: uuid.New()}
	fetcher := &stubFetcher{deals: []entity.Deal{deal}}
	eng, _ := newTestEngine(t, kv.NewMemoryStore(), fetcher, &recordingEffector{})

	_, fresh := eng.Deals(context.Background())
	require.True(t, fresh)

	fetcher.mu.Lock()
	fetcher.err = errors.New("gateway timeout")
	fetcher.mu.Unlock()

	deals, fresh := eng.Deals(context.Background())
	assert.False(t, fresh)
	assert.Len(t, deals, 1)
}

func TestEngine_SubmitAppliesImmediatelyWhenOnline(t *testing.T) {
	effector := &recordingEffector{}
	eng, _ := newTestEngine(t, kv.NewMemoryStore(), &stubFetcher{}, effector)

	action := &entity.PendingAction{ID: "a1", Type: entity.ActionFavorite}
	queued, err := eng.Submit(context.Background(), action)
	require.NoError(t, err)

	assert.False(t, queued)
	assert.Equal(t, []string{"a1"}, effector.appliedIDs())
}

func TestEngine_SubmitQueuesWhenOffline(t *testing.T) {
	effector := &recordingEffector{}
	eng, monitor := newTestEngine(t, kv.NewMemoryStore(), &stubFetcher{}, effector)
	monitor.SetOnline(false)

	queued, err := eng.Submit(context.Background(), &entity.PendingAction{Type: entity.ActionRedeem})
	require.NoError(t, err)

	assert.True(t, queued)
	assert.Empty(t, effector.appliedIDs())
}

func TestEngine_SubmitQueuesOnTransportFailure(t *testing.T) {
	effector := &recordingEffector{err: errors.New("connection reset")}
	eng, _ := newTestEngine(t, kv.NewMemoryStore(), &stubFetcher{}, effector)

	queued, err := eng.Submit(context.Background(), &entity.PendingAction{Type: entity.ActionFavorite})
	require.NoError(t, err)
	assert.True(t, queued)
}

func TestEngine_ReconnectDrainsQueueThenRefreshes(t *testing.T) {
	effector := &recordingEffector{}
	fetcher := &stubFetcher{deals: []entity.Deal{{ID: uuid.New()}}}
	eng, monitor := newTestEngine(t, kv.NewMemoryStore(), fetcher, effector)

	require.NoError(t, eng.Start(context.Background()))
	defer eng.Stop()

	monitor.SetOnline(false)
	queued, err := eng.Submit(context.Background(), &entity.PendingAction{ID: "a1", Type: entity.ActionFavorite})
	require.NoError(t, err)
	require.True(t, queued)

	monitor.SetOnline(true)

	require.Eventually(t, func() bool {
		return len(effector.appliedIDs()) == 1
	}, 2*time.Second, 10*time.Millisecond)
	assert.Equal(t, []string{"a1"}, effector.appliedIDs())
}

func TestEngine_RefreshReplaysQueuedActions(t *testing.T) {
	effector := &recordingEffector{}
	fetcher := &stubFetcher{deals: []entity.Deal{{ID: uuid.New()}}}
	eng, monitor := newTestEngine(t, kv.NewMemoryStore(), fetcher, effector)

	monitor.SetOnline(false)
	queued, err := eng.Submit(context.Background(), &entity.PendingAction{ID: "a1", Type: entity.ActionFavorite})
	require.NoError(t, err)
	require.True(t, queued)

	// A user-triggered refresh after the link returns replays the queue
	// without waiting for a transition event.
	monitor.SetOnline(true)
	eng.Refresh(context.Background())

	assert.Equal(t, []string{"a1"}, effector.appliedIDs())
	assert.Zero(t, eng.pending.Len())
}

func TestEngine_StartRestoresPersistedState(t *testing.T) {
	store := kv.NewMemoryStore()
	deal := entity.Deal{ID: uuid.New(), Title: "Half-price tacos"}
	fetcher := &stubFetcher{deals: []entity.Deal{deal}}

	first, firstMonitor := newTestEngine(t, store, fetcher, &recordingEffector{})
	_, fresh := first.Deals(context.Background())
	require.True(t, fresh)
	firstMonitor.SetOnline(false)
	queued, err := first.Submit(context.Background(), &entity.PendingAction{ID: "a1", Type: entity.ActionReview})
	require.NoError(t, err)
	require.True(t, queued)

	// A fresh process over the same store sees both the cache and the queue.
	second, secondMonitor := newTestEngine(t, store, &stubFetcher{err: errors.New("still down")}, &recordingEffector{})
	secondMonitor.SetOnline(false)
	require.NoError(t, second.Start(context.Background()))
	defer second.Stop()

	deals, fresh := second.Deals(context.Background())
	assert.False(t, fresh)
	require.Len(t, deals, 1)
	assert.Equal(t, deal.Title, deals[0].Title)
}

func TestLocationGuard_OfflineEstimate(t *testing.T) {
	guard := NewLocationGuard(60 * time.Minute)

	listingID := uuid.New()
	updatedAt := time.Now().Add(-20 * time.Minute)
	guard.SeedFromListings([]entity.VendorListing{
		{ID: listingID, LastLocationUpdate: &updatedAt},
	})

	wait, ok := guard.Check(listingID.String())
	require.False(t, ok)
	assert.Equal(t, 40, wait)
}

func TestLocationGuard_ServerVerdictOverridesLocalEstimate(t *testing.T) {
	guard := NewLocationGuard(60 * time.Minute)

	listingID := uuid.New().String()
	_, ok := guard.Check(listingID)
	require.True(t, ok)

	// The server says 15 minutes remain, replacing the local full-hour stamp.
	guard.Reconcile(listingID, time.Time{}, 15)

	wait, ok := guard.Check(listingID)
	require.False(t, ok)
	assert.Equal(t, 15, wait)
}
