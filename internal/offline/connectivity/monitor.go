// Package connectivity tracks whether the backend is reachable and notifies
// subscribers on transitions.
package connectivity

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
	"time"
)

// Prober answers a single reachability check.
type Prober interface {
	Probe(ctx context.Context) bool
}

// HTTPProber checks reachability with a HEAD request against a health URL.
type HTTPProber struct {
	client *http.Client
	url    string
}

// NewHTTPProber creates a prober against the given health endpoint.
func NewHTTPProber(client *http.Client, url string) *HTTPProber {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPProber{client: client, url: url}
}

// Probe reports whether the health endpoint answered at all. Any HTTP status
// counts as reachable; only transport errors count as offline.
func (p *HTTPProber) Probe(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, p.url, nil)
	if err != nil {
		return false
	}
	resp, err := p.client.Do(req)
	if err != nil {
		return false
	}
	_ = resp.Body.Close()
	return true
}

// Monitor polls a Prober and fans out online/offline transitions to
// subscribers. Subscriber channels are buffered; a slow subscriber misses
// coalesced transitions rather than blocking the monitor.
type Monitor struct {
	prober   Prober
	interval time.Duration
	logger   *slog.Logger

	mu     sync.Mutex
	online bool
	subs   []chan bool

	cancel context.CancelFunc
	done   chan struct{}
}

// NewMonitor creates a monitor that polls every interval. The monitor starts
// in the online state; the first probe corrects it if needed.
func NewMonitor(prober Prober, interval time.Duration, logger *slog.Logger) *Monitor {
	return &Monitor{
		prober:   prober,
		interval: interval,
		logger:   logger,
		online:   true,
	}
}

// Online reports the last observed connectivity state.
func (m *Monitor) Online() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.online
}

// Subscribe returns a channel that receives the new state on every
// transition.
func (m *Monitor) Subscribe() <-chan bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	ch := make(chan bool, 1)
	m.subs = append(m.subs, ch)
	return ch
}

// Start begins polling until Stop is called.
func (m *Monitor) Start(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	m.cancel = cancel
	m.done = make(chan struct{})

	go func() {
		defer close(m.done)
		ticker := time.NewTicker(m.interval)
		defer ticker.Stop()

		m.observe(m.probeOnce(ctx))
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				m.observe(m.probeOnce(ctx))
			}
		}
	}()
}

// Stop halts polling and waits for the poll loop to exit.
func (m *Monitor) Stop() {
	if m.cancel == nil {
		return
	}
	m.cancel()
	<-m.done
}

// SetOnline forces the state, used by platforms that surface reachability
// through their own callbacks instead of polling, and by tests.
func (m *Monitor) SetOnline(online bool) {
	m.observe(online)
}

func (m *Monitor) probeOnce(ctx context.Context) bool {
	probeCtx, cancel := context.WithTimeout(ctx, m.interval)
	defer cancel()
	return m.prober.Probe(probeCtx)
}

func (m *Monitor) observe(online bool) {
	m.mu.Lock()
	changed := online != m.online
	m.online = online
	subs := make([]chan bool, len(m.subs))
	copy(subs, m.subs)
	m.mu.Unlock()

	if !changed {
		return
	}
	m.logger.Info("connectivity changed", slog.Bool("online", online))
	for _, ch := range subs {
		select {
		case ch <- online:
		default:
			// Drop the stale value so the channel always holds the latest state.
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- online:
			default:
			}
		}
	}
}
