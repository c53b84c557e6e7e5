package ratelimit

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGate(cooldown time.Duration, start time.Time) (*Gate, *time.Time) {
	now := start
	g := NewGate(cooldown)
	g.nowFunc = func() time.Time { return now }
	return g, &now
}

func TestGate_FirstReserveAdmits(t *testing.T) {
	g, _ := newTestGate(60*time.Minute, time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))

	wait, ok := g.Reserve("vendor-a")
	require.True(t, ok)
	assert.Equal(t, 0, wait)
}

func TestGate_RefusesInsideCooldown(t *testing.T) {
	start := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	g, now := newTestGate(60*time.Minute, start)

	_, ok := g.Reserve("vendor-a")
	require.True(t, ok)

	*now = start.Add(59 * time.Minute)
	wait, ok := g.Reserve("vendor-a")
	require.False(t, ok)
	assert.Equal(t, 1, wait)
}

func TestGate_AdmitsAtCooldownBoundary(t *testing.T) {
	start := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	g, now := newTestGate(60*time.Minute, start)

	_, ok := g.Reserve("vendor-a")
	require.True(t, ok)

	*now = start.Add(60 * time.Minute)
	wait, ok := g.Reserve("vendor-a")
	require.True(t, ok)
	assert.Equal(t, 0, wait)
}

func TestGate_WaitMinutesRoundsUp(t *testing.T) {
	start := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	g, now := newTestGate(60*time.Minute, start)

	_, ok := g.Reserve("vendor-a")
	require.True(t, ok)

	// 10m30s elapsed leaves 49m30s, which rounds up to 50 whole minutes.
	*now = start.Add(10*time.Minute + 30*time.Second)
	wait, ok := g.Reserve("vendor-a")
	require.False(t, ok)
	assert.Equal(t, 50, wait)
}

func TestGate_RefusalDoesNotExtendCooldown(t *testing.T) {
	start := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	g, now := newTestGate(60*time.Minute, start)

	_, ok := g.Reserve("vendor-a")
	require.True(t, ok)

	*now = start.Add(30 * time.Minute)
	_, ok = g.Reserve("vendor-a")
	require.False(t, ok)

	// The refused attempt must not have re-stamped the key.
	*now = start.Add(60 * time.Minute)
	_, ok = g.Reserve("vendor-a")
	assert.True(t, ok)
}

func TestGate_KeysAreIndependent(t *testing.T) {
	start := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	g, now := newTestGate(60*time.Minute, start)

	_, ok := g.Reserve("vendor-a")
	require.True(t, ok)

	*now = start.Add(5 * time.Minute)
	wait, ok := g.Reserve("vendor-b")
	require.True(t, ok)
	assert.Equal(t, 0, wait)

	_, ok = g.Reserve("vendor-a")
	assert.False(t, ok)
}

func TestGate_ForgetClearsCooldown(t *testing.T) {
	start := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	g, now := newTestGate(60*time.Minute, start)

	_, ok := g.Reserve("vendor-a")
	require.True(t, ok)

	g.Forget("vendor-a")

	*now = start.Add(1 * time.Minute)
	_, ok = g.Reserve("vendor-a")
	assert.True(t, ok)
}

func TestGate_SeedRebuildsState(t *testing.T) {
	start := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	g, _ := newTestGate(60*time.Minute, start)

	g.Seed("vendor-a", start.Add(-20*time.Minute))

	wait, ok := g.Reserve("vendor-a")
	require.False(t, ok)
	assert.Equal(t, 40, wait)
}

func TestGate_ClockInjectedAtConstruction(t *testing.T) {
	start := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	now := start
	g := NewGateWithClock(60*time.Minute, func() time.Time { return now })

	_, ok := g.Reserve("vendor-a")
	require.True(t, ok)

	// The gate must follow the injected clock, not the wall clock: 20
	// logical minutes in, the key is still cold.
	now = start.Add(20 * time.Minute)
	wait, ok := g.Reserve("vendor-a")
	require.False(t, ok)
	assert.Equal(t, 40, wait)

	now = start.Add(60 * time.Minute)
	_, ok = g.Reserve("vendor-a")
	assert.True(t, ok)
}

func TestGate_ConcurrentReserveAdmitsOnlyOne(t *testing.T) {
	g, _ := newTestGate(60*time.Minute, time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))

	const workers = 32
	var wg sync.WaitGroup
	var mu sync.Mutex
	admitted := 0

	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, ok := g.Reserve("vendor-a"); ok {
				mu.Lock()
				admitted++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, admitted)
}
