// Package cache implements the TTL-bounded offline cache for deals and
// vendor listings. Entries live in memory and are mirrored to a kv.Store so
// they survive restarts; a storage failure degrades the cache to memory-only
// instead of failing the caller.
package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"sort"
	"sync"
	"time"

	"dealdrop/internal/errors"
	"dealdrop/internal/offline/kv"
)

// envelope is the persisted form of a cache: the entries plus the last
// successful sync time.
type envelope[T any] struct {
	Entries    []entry[T] `json:"entries"`
	LastSyncAt time.Time  `json:"lastSyncAt"`
}

type entry[T any] struct {
	Item     T         `json:"item"`
	CachedAt time.Time `json:"cachedAt"`
	// Seq orders entries merged at the same instant, so eviction under
	// capacity pressure is deterministic within one batch.
	Seq uint64 `json:"seq"`
}

// Cache holds up to maxEntries items of one type, each stamped with the time
// it was cached. Items older than ttl are dropped on read.
type Cache[T any] struct {
	mu         sync.Mutex
	entries    map[string]entry[T]
	lastSyncAt time.Time
	nextSeq    uint64

	store      kv.Store
	storeKey   string
	keyFn      func(T) string
	ttl        time.Duration
	maxEntries int
	logger     *slog.Logger

	nowFunc func() time.Time // injectable for tests
}

// New creates a cache persisted under storeKey. keyFn must yield a stable
// identity per item so refreshed copies replace stale ones.
func New[T any](store kv.Store, storeKey string, keyFn func(T) string, ttl time.Duration, maxEntries int, logger *slog.Logger) *Cache[T] {
	return &Cache[T]{
		entries:    make(map[string]entry[T]),
		store:      store,
		storeKey:   storeKey,
		keyFn:      keyFn,
		ttl:        ttl,
		maxEntries: maxEntries,
		logger:     logger,
		nowFunc:    time.Now,
	}
}

// Restore loads the persisted cache state. A missing key leaves the cache
// empty; a corrupt payload is discarded with a warning rather than surfaced.
func (c *Cache[T]) Restore(ctx context.Context) error {
	data, err := c.store.Get(ctx, c.storeKey)
	if err != nil {
		if errors.Is(err, kv.ErrNotFound) {
			return nil
		}
		return errors.Wrap(err, "restore cache")
	}

	var env envelope[T]
	if err := json.Unmarshal(data, &env); err != nil {
		c.logger.Warn("discarding corrupt cache payload", slog.String("key", c.storeKey), slog.Any("error", err))
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]entry[T], len(env.Entries))
	for _, e := range env.Entries {
		c.entries[c.keyFn(e.Item)] = e
		if e.Seq > c.nextSeq {
			c.nextSeq = e.Seq
		}
	}
	c.lastSyncAt = env.LastSyncAt
	return nil
}

// Merge folds freshly fetched items into the cache. Incoming items replace
// cached copies with the same key, every merged item is stamped with the
// current time, the cache is trimmed to capacity (oldest stamps evicted
// first), and the result is persisted along with a new last-sync marker.
func (c *Cache[T]) Merge(ctx context.Context, items []T) {
	c.mu.Lock()
	now := c.nowFunc()
	for _, item := range items {
		c.nextSeq++
		c.entries[c.keyFn(item)] = entry[T]{Item: item, CachedAt: now, Seq: c.nextSeq}
	}
	c.trimLocked()
	c.lastSyncAt = now
	env := c.snapshotLocked()
	c.mu.Unlock()

	c.persist(ctx, env)
}

// Load returns the cached items that are still inside the TTL window,
// newest first. Expired entries are pruned as a side effect.
func (c *Cache[T]) Load(ctx context.Context) []T {
	c.mu.Lock()
	now := c.nowFunc()
	pruned := false
	for key, e := range c.entries {
		if now.Sub(e.CachedAt) > c.ttl {
			delete(c.entries, key)
			pruned = true
		}
	}
	live := make([]entry[T], 0, len(c.entries))
	for _, e := range c.entries {
		live = append(live, e)
	}
	sort.Slice(live, func(i, j int) bool {
		if !live[i].CachedAt.Equal(live[j].CachedAt) {
			return live[i].CachedAt.After(live[j].CachedAt)
		}
		return live[i].Seq > live[j].Seq
	})
	var env envelope[T]
	if pruned {
		env = c.snapshotLocked()
	}
	c.mu.Unlock()

	if pruned {
		c.persist(ctx, env)
	}

	items := make([]T, len(live))
	for i, e := range live {
		items[i] = e.Item
	}
	return items
}

// LastSyncAt reports when the cache last absorbed a successful fetch. The
// zero time means never.
func (c *Cache[T]) LastSyncAt() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastSyncAt
}

// Len reports the number of cached entries, including ones the next Load
// would expire.
func (c *Cache[T]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Clear drops all entries and the persisted copy.
func (c *Cache[T]) Clear(ctx context.Context) {
	c.mu.Lock()
	c.entries = make(map[string]entry[T])
	c.lastSyncAt = time.Time{}
	c.mu.Unlock()

	if err := c.store.Remove(ctx, c.storeKey); err != nil {
		c.logger.Warn("failed to clear persisted cache", slog.String("key", c.storeKey), slog.Any("error", err))
	}
}

// trimLocked evicts the oldest entries until the cache fits maxEntries.
// Equal stamps fall back to merge order, so one oversized batch evicts its
// own head rather than an arbitrary subset.
func (c *Cache[T]) trimLocked() {
	if c.maxEntries <= 0 || len(c.entries) <= c.maxEntries {
		return
	}
	ordered := make([]string, 0, len(c.entries))
	for key := range c.entries {
		ordered = append(ordered, key)
	}
	sort.Slice(ordered, func(i, j int) bool {
		a, b := c.entries[ordered[i]], c.entries[ordered[j]]
		if !a.CachedAt.Equal(b.CachedAt) {
			return a.CachedAt.Before(b.CachedAt)
		}
		return a.Seq < b.Seq
	})
	for _, key := range ordered[:len(ordered)-c.maxEntries] {
		delete(c.entries, key)
	}
}

func (c *Cache[T]) snapshotLocked() envelope[T] {
	env := envelope[T]{
		Entries:    make([]entry[T], 0, len(c.entries)),
		LastSyncAt: c.lastSyncAt,
	}
	for _, e := range c.entries {
		env.Entries = append(env.Entries, e)
	}
	return env
}

func (c *Cache[T]) persist(ctx context.Context, env envelope[T]) {
	data, err := json.Marshal(env)
	if err != nil {
		c.logger.Warn("failed to encode cache", slog.String("key", c.storeKey), slog.Any("error", err))
		return
	}
	if err := c.store.Set(ctx, c.storeKey, data); err != nil {
		// Keep serving from memory; durability resumes on the next merge.
		c.logger.Warn("failed to persist cache", slog.String("key", c.storeKey), slog.Any("error", err))
	}
}
