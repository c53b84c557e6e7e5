package queue

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"testing"

	"dealdrop/internal/domain/entity"
	"dealdrop/internal/errors"
	"dealdrop/internal/offline/kv"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func favoriteAction(vendorID string) *entity.PendingAction {
	payload, _ := json.Marshal(map[string]string{"vendorId": vendorID})
	return &entity.PendingAction{Type: entity.ActionFavorite, Payload: payload}
}

func TestQueue_EnqueueAssignsIdentity(t *testing.T) {
	q := New(kv.NewMemoryStore(), "pendingActions", 3, slog.Default())

	action := favoriteAction("v1")
	require.NoError(t, q.Enqueue(context.Background(), action))

	assert.NotEmpty(t, action.ID)
	assert.False(t, action.CreatedAt.IsZero())
	assert.Equal(t, 1, q.Len())
}

func TestQueue_EnqueueRejectsUnknownType(t *testing.T) {
	q := New(kv.NewMemoryStore(), "pendingActions", 3, slog.Default())

	err := q.Enqueue(context.Background(), &entity.PendingAction{Type: "teleport"})
	assert.Error(t, err)
	assert.Zero(t, q.Len())
}

func TestQueue_RestoreRoundTrip(t *testing.T) {
	store := kv.NewMemoryStore()
	q := New(store, "pendingActions", 3, slog.Default())

	require.NoError(t, q.Enqueue(context.Background(), favoriteAction("v1")))
	require.NoError(t, q.Enqueue(context.Background(), favoriteAction("v2")))

	restored := New(store, "pendingActions", 3, slog.Default())
	require.NoError(t, restored.Restore(context.Background()))

	pending := restored.Pending()
	require.Len(t, pending, 2)
	assert.Equal(t, q.Pending()[0].ID, pending[0].ID)
}

func TestQueue_DrainAppliesInFIFOOrder(t *testing.T) {
	q := New(kv.NewMemoryStore(), "pendingActions", 3, slog.Default())

	first := favoriteAction("v1")
	second := favoriteAction("v2")
	require.NoError(t, q.Enqueue(context.Background(), first))
	require.NoError(t, q.Enqueue(context.Background(), second))

	var applied []string
	err := q.Drain(context.Background(), EffectorFunc(func(_ context.Context, a *entity.PendingAction) error {
		applied = append(applied, a.ID)
		return nil
	}))
	require.NoError(t, err)

	assert.Equal(t, []string{first.ID, second.ID}, applied)
	assert.Zero(t, q.Len())
}

func TestQueue_DrainKeepsFailedActions(t *testing.T) {
	q := New(kv.NewMemoryStore(), "pendingActions", 3, slog.Default())

	require.NoError(t, q.Enqueue(context.Background(), favoriteAction("v1")))

	err := q.Drain(context.Background(), EffectorFunc(func(context.Context, *entity.PendingAction) error {
		return errors.New("network unreachable")
	}))
	require.NoError(t, err)

	pending := q.Pending()
	require.Len(t, pending, 1)
	assert.Equal(t, 1, pending[0].RetryCount)
}

func TestQueue_DropsActionPastRetryCeiling(t *testing.T) {
	q := New(kv.NewMemoryStore(), "pendingActions", 3, slog.Default())

	require.NoError(t, q.Enqueue(context.Background(), favoriteAction("v1")))

	failing := EffectorFunc(func(context.Context, *entity.PendingAction) error {
		return errors.New("network unreachable")
	})

	// Three failing drains leave the action in place with retryCount 3.
	for range 3 {
		require.NoError(t, q.Drain(context.Background(), failing))
	}
	require.Equal(t, 1, q.Len())

	// The fourth failure exceeds maxRetries and the action is dropped.
	require.NoError(t, q.Drain(context.Background(), failing))
	assert.Zero(t, q.Len())
}

func TestQueue_ServerRefusalIsTerminal(t *testing.T) {
	q := New(kv.NewMemoryStore(), "pendingActions", 3, slog.Default())

	require.NoError(t, q.Enqueue(context.Background(), favoriteAction("v1")))

	// The effector reaching the server and being refused returns nil, so the
	// action must not be retried.
	err := q.Drain(context.Background(), EffectorFunc(func(context.Context, *entity.PendingAction) error {
		return nil
	}))
	require.NoError(t, err)
	assert.Zero(t, q.Len())
}

func TestQueue_DrainIsSingleFlight(t *testing.T) {
	q := New(kv.NewMemoryStore(), "pendingActions", 3, slog.Default())

	require.NoError(t, q.Enqueue(context.Background(), favoriteAction("v1")))

	entered := make(chan struct{})
	release := make(chan struct{})

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_ = q.Drain(context.Background(), EffectorFunc(func(context.Context, *entity.PendingAction) error {
			close(entered)
			<-release
			return nil
		}))
	}()

	<-entered

	// A second drain while the first is in flight is a no-op.
	calls := 0
	require.NoError(t, q.Drain(context.Background(), EffectorFunc(func(context.Context, *entity.PendingAction) error {
		calls++
		return nil
	})))
	assert.Zero(t, calls)

	close(release)
	wg.Wait()
	assert.Zero(t, q.Len())
}

func TestQueue_DrainStopsOnCancelledContext(t *testing.T) {
	q := New(kv.NewMemoryStore(), "pendingActions", 3, slog.Default())

	require.NoError(t, q.Enqueue(context.Background(), favoriteAction("v1")))
	require.NoError(t, q.Enqueue(context.Background(), favoriteAction("v2")))

	ctx, cancel := context.WithCancel(context.Background())
	applied := 0
	err := q.Drain(ctx, EffectorFunc(func(context.Context, *entity.PendingAction) error {
		applied++
		cancel()
		return nil
	}))
	require.NoError(t, err)

	assert.Equal(t, 1, applied)
	assert.Equal(t, 1, q.Len())
}
