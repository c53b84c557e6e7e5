package connectivity

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonitor_StartsOnline(t *testing.T) {
	m := NewMonitor(nil, time.Second, slog.Default())
	assert.True(t, m.Online())
}

func TestMonitor_SubscribeReceivesTransitions(t *testing.T) {
	m := NewMonitor(nil, time.Second, slog.Default())
	ch := m.Subscribe()

	m.SetOnline(false)

	select {
	case online := <-ch:
		assert.False(t, online)
	case <-time.After(time.Second):
		t.Fatal("expected a transition notification")
	}
	assert.False(t, m.Online())
}

func TestMonitor_NoNotificationWithoutTransition(t *testing.T) {
	m := NewMonitor(nil, time.Second, slog.Default())
	ch := m.Subscribe()

	// Already online, so this is not a transition.
	m.SetOnline(true)

	select {
	case <-ch:
		t.Fatal("unexpected notification")
	default:
	}
}

func TestMonitor_SlowSubscriberSeesLatestState(t *testing.T) {
	m := NewMonitor(nil, time.Second, slog.Default())
	ch := m.Subscribe()

	m.SetOnline(false)
	m.SetOnline(true)
	m.SetOnline(false)

	// The buffered channel coalesces to the most recent transition.
	var last bool
	for {
		select {
		case v := <-ch:
			last = v
			continue
		default:
		}
		break
	}
	require.False(t, last)
	assert.False(t, m.Online())
}
