// Package ratelimit provides a keyed cooldown gate for throttling per-vendor
// operations such as location updates.
package ratelimit

import (
	"math"
	"sync"
	"time"
)

// Gate enforces a fixed cooldown window per key. A key admitted at time T is
// refused until T+cooldown, and the refusal reports how many whole minutes
// remain. The zero value is not usable; use NewGate.
type Gate struct {
	mu       sync.Mutex
	cooldown time.Duration
	lastAt   map[string]time.Time

	nowFunc func() time.Time // injectable for tests
}

// NewGate creates a gate with the given cooldown window.
func NewGate(cooldown time.Duration) *Gate {
	return NewGateWithClock(cooldown, time.Now)
}

// NewGateWithClock creates a gate that reads the current time through now.
// Callers holding their own injectable clock pass it here so the gate and
// the caller agree on what "now" is.
func NewGateWithClock(cooldown time.Duration, now func() time.Time) *Gate {
	return &Gate{
		cooldown: cooldown,
		lastAt:   make(map[string]time.Time),
		nowFunc:  now,
	}
}

// Reserve attempts to admit the key. When the key is outside its cooldown
// window it is stamped with the current time and Reserve returns (0, true).
// Otherwise it returns the remaining wait rounded up to whole minutes and
// false, leaving the stamp untouched. Check and stamp happen under one lock
// so concurrent callers cannot both be admitted.
func (g *Gate) Reserve(key string) (waitMinutes int, ok bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	now := g.nowFunc()
	last, seen := g.lastAt[key]
	if seen {
		elapsed := now.Sub(last)
		if elapsed < g.cooldown {
			remaining := g.cooldown - elapsed
			return int(math.Ceil(remaining.Minutes())), false
		}
	}
	g.lastAt[key] = now
	return 0, true
}

// Seed records a prior admission time for a key without admitting it, used to
// rebuild gate state from persisted timestamps after a restart.
func (g *Gate) Seed(key string, at time.Time) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.lastAt[key] = at
}

// SeedIfAbsent records a prior admission time only when the key has no stamp
// yet, so a concurrent admission is never overwritten by stale persisted
// state.
func (g *Gate) SeedIfAbsent(key string, at time.Time) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, seen := g.lastAt[key]; !seen {
		g.lastAt[key] = at
	}
}

// Forget drops the stamp for a key, typically when the keyed resource is
// deleted.
func (g *Gate) Forget(key string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.lastAt, key)
}
