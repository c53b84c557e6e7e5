// Package sync coordinates the offline layer: it serves reads cache-first,
// funnels writes through the pending-action queue when offline, and replays
// the queue when connectivity returns.
package sync

import (
	"context"
	"log/slog"
	"time"

	"dealdrop/internal/domain/entity"
	"dealdrop/internal/errors"
	"dealdrop/internal/offline/cache"
	"dealdrop/internal/offline/connectivity"
	"dealdrop/internal/offline/queue"
)

// Fetcher retrieves fresh marketplace data from the backend.
type Fetcher interface {
	// FetchDeals retrieves the current deals near the user.
	FetchDeals(ctx context.Context) ([]entity.Deal, error)

	// FetchVendors retrieves the vendor listings relevant to the user.
	FetchVendors(ctx context.Context) ([]entity.VendorListing, error)
}

// Engine owns the offline read/write paths. Reads try the network and fall
// back to cache; writes apply immediately when online and queue otherwise.
type Engine struct {
	deals   *cache.Cache[entity.Deal]
	vendors *cache.Cache[entity.VendorListing]
	pending *queue.Queue
	monitor *connectivity.Monitor

	fetcher  Fetcher
	effector queue.Effector
	timeout  time.Duration
	logger   *slog.Logger

	cancel context.CancelFunc
	done   chan struct{}
}

// NewEngine wires the offline components together. timeout bounds every
// network call the engine makes.
func NewEngine(
	deals *cache.Cache[entity.Deal],
	vendors *cache.Cache[entity.VendorListing],
	pending *queue.Queue,
	monitor *connectivity.Monitor,
	fetcher Fetcher,
	effector queue.Effector,
	timeout time.Duration,
	logger *slog.Logger,
) *Engine {
	return &Engine{
		deals:    deals,
		vendors:  vendors,
		pending:  pending,
		monitor:  monitor,
		fetcher:  fetcher,
		effector: effector,
		timeout:  timeout,
		logger:   logger,
	}
}

// Start restores persisted state and begins reacting to connectivity
// transitions. When the link comes back the queue is drained before the
// caches are refreshed, so replayed actions are reflected in the fetch.
func (e *Engine) Start(ctx context.Context) error {
	if err := e.deals.Restore(ctx); err != nil {
		return errors.Wrap(err, "restore deal cache")
	}
	if err := e.vendors.Restore(ctx); err != nil {
		return errors.Wrap(err, "restore vendor cache")
	}
	if err := e.pending.Restore(ctx); err != nil {
		return errors.Wrap(err, "restore pending queue")
	}

	transitions := e.monitor.Subscribe()
	loopCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	e.cancel = cancel
	e.done = make(chan struct{})

	go func() {
		defer close(e.done)
		for {
			select {
			case <-loopCtx.Done():
				return
			case online := <-transitions:
				if !online {
					continue
				}
				e.logger.Info("back online, replaying pending actions", slog.Int("pending", e.pending.Len()))
				if err := e.pending.Drain(loopCtx, e.boundedEffector()); err != nil {
					e.logger.Error("drain failed", slog.Any("error", err))
				}
				e.Refresh(loopCtx)
			}
		}
	}()
	return nil
}

// Stop halts the transition loop.
func (e *Engine) Stop() {
	if e.cancel == nil {
		return
	}
	e.cancel()
	<-e.done
}

// Deals returns the current deals, fetching when online and serving the
// cache when offline or when the fetch fails.
func (e *Engine) Deals(ctx context.Context) ([]entity.Deal, bool) {
	if e.monitor.Online() {
		fetchCtx, cancel := context.WithTimeout(ctx, e.timeout)
		fetched, err := e.fetcher.FetchDeals(fetchCtx)
		cancel()
		if err == nil {
			e.deals.Merge(ctx, fetched)
			return fetched, true
		}
		e.logger.Warn("deal fetch failed, serving cache", slog.Any("error", err))
	}
	return e.deals.Load(ctx), false
}

// Vendors returns the vendor listings, fetching when online and serving the
// cache when offline or when the fetch fails.
func (e *Engine) Vendors(ctx context.Context) ([]entity.VendorListing, bool) {
	if e.monitor.Online() {
		fetchCtx, cancel := context.WithTimeout(ctx, e.timeout)
		fetched, err := e.fetcher.FetchVendors(fetchCtx)
		cancel()
		if err == nil {
			e.vendors.Merge(ctx, fetched)
			return fetched, true
		}
		e.logger.Warn("vendor fetch failed, serving cache", slog.Any("error", err))
	}
	return e.vendors.Load(ctx), false
}

// Submit applies an action now when online, falling back to the queue on
// transport failure or while offline. It reports whether the action was
// queued for later.
func (e *Engine) Submit(ctx context.Context, action *entity.PendingAction) (queued bool, err error) {
	if e.monitor.Online() {
		applyCtx, cancel := context.WithTimeout(ctx, e.timeout)
		err := e.effector.Apply(applyCtx, action)
		cancel()
		if err == nil {
			return false, nil
		}
		e.logger.Warn("immediate apply failed, queueing action",
			slog.String("type", string(action.Type)), slog.Any("error", err))
	}
	if err := e.pending.Enqueue(ctx, action); err != nil {
		return false, errors.Wrap(err, "enqueue action")
	}
	return true, nil
}

// Refresh replays the pending queue and force-fetches both caches, ignoring
// failures beyond logging them. The queue's single-flight latch makes an
// overlap with the transition-loop drain a no-op.
func (e *Engine) Refresh(ctx context.Context) {
	if e.pending.Len() > 0 {
		if err := e.pending.Drain(ctx, e.boundedEffector()); err != nil {
			e.logger.Error("drain failed", slog.Any("error", err))
		}
	}
	e.Deals(ctx)
	e.Vendors(ctx)
}

// LastSyncAt reports the older of the two cache sync markers, i.e. how stale
// the offline view may be.
func (e *Engine) LastSyncAt() time.Time {
	dealsAt := e.deals.LastSyncAt()
	vendorsAt := e.vendors.LastSyncAt()
	if dealsAt.Before(vendorsAt) {
		return dealsAt
	}
	return vendorsAt
}

// boundedEffector wraps the effector so each replayed action gets its own
// timeout instead of sharing the drain's context budget.
func (e *Engine) boundedEffector() queue.Effector {
	return queue.EffectorFunc(func(ctx context.Context, action *entity.PendingAction) error {
		applyCtx, cancel := context.WithTimeout(ctx, e.timeout)
		defer cancel()
		return e.effector.Apply(applyCtx, action)
	})
}
