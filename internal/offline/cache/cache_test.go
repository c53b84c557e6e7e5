package cache

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"dealdrop/internal/errors"
	"dealdrop/internal/offline/kv"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testDeal struct {
	ID    string  `json:"id"`
	Title string  `json:"title"`
	Price float64 `json:"price"`
}

func dealKey(d testDeal) string { return d.ID }

func newTestCache(t *testing.T, store kv.Store, ttl time.Duration, maxEntries int) (*Cache[testDeal], *time.Time) {
	t.Helper()
	c := New(store, "cachedDeals", dealKey, ttl, maxEntries, slog.Default())
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	c.nowFunc = func() time.Time { return now }
	return c, &now
}

func TestCache_MergeAndLoad(t *testing.T) {
	c, _ := newTestCache(t, kv.NewMemoryStore(), 24*time.Hour, 100)

	c.Merge(context.Background(), []testDeal{
		{ID: "d1", Title: "Half-price tacos", Price: 4.5},
		{ID: "d2", Title: "BOGO coffee", Price: 3},
	})

	items := c.Load(context.Background())
	assert.Len(t, items, 2)
}

func TestCache_MergeReplacesSameKey(t *testing.T) {
	c, now := newTestCache(t, kv.NewMemoryStore(), 24*time.Hour, 100)

	c.Merge(context.Background(), []testDeal{{ID: "d1", Title: "Half-price tacos", Price: 4.5}})

	*now = now.Add(time.Hour)
	c.Merge(context.Background(), []testDeal{{ID: "d1", Title: "Half-price tacos", Price: 3.5}})

	items := c.Load(context.Background())
	require.Len(t, items, 1)
	assert.Equal(t, 3.5, items[0].Price)
}

func TestCache_LoadDropsExpiredEntries(t *testing.T) {
	c, now := newTestCache(t, kv.NewMemoryStore(), 24*time.Hour, 100)

	c.Merge(context.Background(), []testDeal{{ID: "d1", Title: "Old deal"}})

	*now = now.Add(24*time.Hour + time.Minute)
	c.Merge(context.Background(), []testDeal{{ID: "d2", Title: "Fresh deal"}})

	items := c.Load(context.Background())
	require.Len(t, items, 1)
	assert.Equal(t, "d2", items[0].ID)
}

func TestCache_MergeRefreshesStamp(t *testing.T) {
	c, now := newTestCache(t, kv.NewMemoryStore(), 24*time.Hour, 100)

	c.Merge(context.Background(), []testDeal{{ID: "d1"}})

	// A re-merge 23h later restarts the TTL clock.
	*now = now.Add(23 * time.Hour)
	c.Merge(context.Background(), []testDeal{{ID: "d1"}})

	*now = now.Add(23 * time.Hour)
	items := c.Load(context.Background())
	assert.Len(t, items, 1)
}

func TestCache_TrimsToCapacityOldestFirst(t *testing.T) {
	c, now := newTestCache(t, kv.NewMemoryStore(), 24*time.Hour, 2)

	c.Merge(context.Background(), []testDeal{{ID: "d1"}})
	*now = now.Add(time.Minute)
	c.Merge(context.Background(), []testDeal{{ID: "d2"}})
	*now = now.Add(time.Minute)
	c.Merge(context.Background(), []testDeal{{ID: "d3"}})

	items := c.Load(context.Background())
	require.Len(t, items, 2)
	ids := []string{items[0].ID, items[1].ID}
	assert.NotContains(t, ids, "d1")
}

func TestCache_OversizedBatchTrimsInMergeOrder(t *testing.T) {
	c, _ := newTestCache(t, kv.NewMemoryStore(), 24*time.Hour, 2)

	// All four share one stamp; merge order breaks the tie, so the batch
	// head goes first.
	c.Merge(context.Background(), []testDeal{{ID: "d1"}, {ID: "d2"}, {ID: "d3"}, {ID: "d4"}})

	items := c.Load(context.Background())
	require.Len(t, items, 2)
	assert.Equal(t, "d4", items[0].ID)
	assert.Equal(t, "d3", items[1].ID)
}

func TestCache_LoadReturnsNewestFirst(t *testing.T) {
	c, now := newTestCache(t, kv.NewMemoryStore(), 24*time.Hour, 100)

	c.Merge(context.Background(), []testDeal{{ID: "older"}})
	*now = now.Add(time.Minute)
	c.Merge(context.Background(), []testDeal{{ID: "newer"}})

	items := c.Load(context.Background())
	require.Len(t, items, 2)
	assert.Equal(t, "newer", items[0].ID)
}

func TestCache_RestoreRoundTrip(t *testing.T) {
	store := kv.NewMemoryStore()
	c, now := newTestCache(t, store, 24*time.Hour, 100)

	c.Merge(context.Background(), []testDeal{{ID: "d1", Title: "Half-price tacos"}})

	restored, restoredNow := newTestCache(t, store, 24*time.Hour, 100)
	*restoredNow = *now
	require.NoError(t, restored.Restore(context.Background()))

	items := restored.Load(context.Background())
	require.Len(t, items, 1)
	assert.Equal(t, "Half-price tacos", items[0].Title)
	assert.Equal(t, c.LastSyncAt(), restored.LastSyncAt())
}

func TestCache_RestoreMissingKeyIsEmpty(t *testing.T) {
	c, _ := newTestCache(t, kv.NewMemoryStore(), 24*time.Hour, 100)

	require.NoError(t, c.Restore(context.Background()))
	assert.Empty(t, c.Load(context.Background()))
	assert.True(t, c.LastSyncAt().IsZero())
}

func TestCache_RestoreCorruptPayloadIsEmpty(t *testing.T) {
	store := kv.NewMemoryStore()
	require.NoError(t, store.Set(context.Background(), "cachedDeals", []byte("not json")))

	c, _ := newTestCache(t, store, 24*time.Hour, 100)
	require.NoError(t, c.Restore(context.Background()))
	assert.Empty(t, c.Load(context.Background()))
}

func TestCache_Clear(t *testing.T) {
	store := kv.NewMemoryStore()
	c, _ := newTestCache(t, store, 24*time.Hour, 100)

	c.Merge(context.Background(), []testDeal{{ID: "d1"}})
	c.Clear(context.Background())

	assert.Empty(t, c.Load(context.Background()))
	_, err := store.Get(context.Background(), "cachedDeals")
	assert.ErrorIs(t, err, kv.ErrNotFound)
}

// failingStore rejects writes so the cache must keep serving from memory.
type failingStore struct{ kv.Store }

func (failingStore) Set(context.Context, string, []byte) error {
	return errors.New("disk full")
}

func TestCache_StorageFailureDegradesToMemory(t *testing.T) {
	c, _ := newTestCache(t, failingStore{kv.NewMemoryStore()}, 24*time.Hour, 100)

	c.Merge(context.Background(), []testDeal{{ID: "d1"}})

	items := c.Load(context.Background())
	assert.Len(t, items, 1)
}
