// Package queue implements the durable pending-action queue. Actions taken
// while offline are appended here and replayed in FIFO order once
// connectivity returns.
package queue

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"dealdrop/internal/domain/entity"
	"dealdrop/internal/errors"
	"dealdrop/internal/offline/kv"

	"github.com/google/uuid"
)

// Effector applies one pending action against the server. A non-nil error
// means the attempt failed in transit and the action may be retried; a nil
// return is terminal regardless of the server's verdict.
type Effector interface {
	Apply(ctx context.Context, action *entity.PendingAction) error
}

// EffectorFunc adapts a function to the Effector interface.
type EffectorFunc func(ctx context.Context, action *entity.PendingAction) error

// Apply calls f.
func (f EffectorFunc) Apply(ctx context.Context, action *entity.PendingAction) error {
	return f(ctx, action)
}

// Queue is a durable FIFO of pending actions. Every mutation rewrites the
// persisted copy so a crash never loses an enqueued action.
type Queue struct {
	mu       sync.Mutex
	actions  []*entity.PendingAction
	draining atomic.Bool

	store      kv.Store
	storeKey   string
	maxRetries int
	logger     *slog.Logger

	nowFunc func() time.Time // injectable for tests
}

// New creates a queue persisted under storeKey. Actions that fail more than
// maxRetries times are dropped as poison.
func New(store kv.Store, storeKey string, maxRetries int, logger *slog.Logger) *Queue {
	return &Queue{
		store:      store,
		storeKey:   storeKey,
		maxRetries: maxRetries,
		logger:     logger,
		nowFunc:    time.Now,
	}
}

// Restore loads the persisted queue. A missing key leaves the queue empty; a
// corrupt payload is discarded with a warning.
func (q *Queue) Restore(ctx context.Context) error {
	data, err := q.store.Get(ctx, q.storeKey)
	if err != nil {
		if errors.Is(err, kv.ErrNotFound) {
			return nil
		}
		return errors.Wrap(err, "restore queue")
	}

	var actions []*entity.PendingAction
	if err := json.Unmarshal(data, &actions); err != nil {
		q.logger.Warn("discarding corrupt queue payload", slog.String("key", q.storeKey), slog.Any("error", err))
		return nil
	}

	q.mu.Lock()
	q.actions = actions
	q.mu.Unlock()
	return nil
}

// Enqueue appends an action and persists the queue. The action is assigned
// an ID and a creation stamp if it has none.
func (q *Queue) Enqueue(ctx context.Context, action *entity.PendingAction) error {
	if !action.Type.Valid() {
		return errors.Errorf("unknown action type %q", action.Type)
	}
	if action.ID == "" {
		action.ID = uuid.NewString()
	}
	if action.CreatedAt.IsZero() {
		action.CreatedAt = q.nowFunc()
	}

	q.mu.Lock()
	q.actions = append(q.actions, action)
	snapshot := q.snapshotLocked()
	q.mu.Unlock()

	return q.persist(ctx, snapshot)
}

// Len reports the number of pending actions.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.actions)
}

// Pending returns a copy of the queued actions in FIFO order.
func (q *Queue) Pending() []*entity.PendingAction {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.snapshotLocked()
}

// Drain replays pending actions in FIFO order through the effector. Applied
// actions are removed; failed ones have their retry count bumped and stay
// for the next drain, except actions past the retry ceiling, which are
// dropped and logged. Only one drain runs at a time; overlapping calls
// return immediately.
func (q *Queue) Drain(ctx context.Context, effector Effector) error {
	if !q.draining.CompareAndSwap(false, true) {
		return nil
	}
	defer q.draining.Store(false)

	pending := q.Pending()
	if len(pending) == 0 {
		return nil
	}

	var remaining []*entity.PendingAction
	for i, action := range pending {
		if err := ctx.Err(); err != nil {
			remaining = append(remaining, pending[i:]...)
			break
		}

		if err := effector.Apply(ctx, action); err != nil {
			action.RetryCount++
			if action.RetryCount > q.maxRetries {
				q.logger.Error("dropping poison action",
					slog.String("actionId", action.ID),
					slog.String("type", string(action.Type)),
					slog.Int("retries", action.RetryCount),
					slog.Any("error", err))
				continue
			}
			q.logger.Warn("action failed, will retry",
				slog.String("actionId", action.ID),
				slog.String("type", string(action.Type)),
				slog.Int("retries", action.RetryCount),
				slog.Any("error", err))
			remaining = append(remaining, action)
			continue
		}
	}

	q.mu.Lock()
	// Keep actions enqueued mid-drain behind the survivors.
	if extra := len(q.actions) - len(pending); extra > 0 {
		remaining = append(remaining, q.actions[len(pending):]...)
	}
	q.actions = remaining
	snapshot := q.snapshotLocked()
	q.mu.Unlock()

	return q.persist(ctx, snapshot)
}

// Clear drops all pending actions and the persisted copy.
func (q *Queue) Clear(ctx context.Context) error {
	q.mu.Lock()
	q.actions = nil
	q.mu.Unlock()

	if err := q.store.Remove(ctx, q.storeKey); err != nil {
		return errors.Wrap(err, "clear queue")
	}
	return nil
}

func (q *Queue) snapshotLocked() []*entity.PendingAction {
	out := make([]*entity.PendingAction, len(q.actions))
	copy(out, q.actions)
	return out
}

func (q *Queue) persist(ctx context.Context, actions []*entity.PendingAction) error {
	data, err := json.Marshal(actions)
	if err != nil {
		return errors.Wrap(err, "encode queue")
	}
	if err := q.store.Set(ctx, q.storeKey, data); err != nil {
		// The in-memory queue stays authoritative until the next write succeeds.
		q.logger.Warn("failed to persist queue", slog.String("key", q.storeKey), slog.Any("error", err))
	}
	return nil
}
