package timeline

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BilliardTimeline/internal/domain"
)

// steppingClock advances by step on every call
type steppingClock struct {
	mu   sync.Mutex
	now  time.Time
	step time.Duration
}

func (c *steppingClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := c.now
	c.now = c.now.Add(c.step)
	return now
}

func TestNormalizeInterval(t *testing.T) {
	assert.Equal(t, domain.DefaultRefreshInterval, NormalizeInterval(0))
	assert.Equal(t, domain.DefaultRefreshInterval, NormalizeInterval(-time.Second))
	assert.Equal(t, domain.MaxRefreshInterval, NormalizeInterval(5*time.Minute))
	assert.Equal(t, 10*time.Second, NormalizeInterval(10*time.Second))
}

func TestMarkerAt(t *testing.T) {
	marker := MarkerAt(at(2024, 1, 1, 6, 0), day(2024, 1, 1))
	assert.True(t, marker.Visible)
	assert.InDelta(t, 25.0, marker.Percent, tolerance)

	marker = MarkerAt(at(2024, 1, 2, 10, 0), day(2024, 1, 1))
	assert.False(t, marker.Visible)
}

func TestWatch_EmitsImmediatelyAndOnTicks(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	clock := &steppingClock{now: at(2024, 1, 1, 23, 58), step: time.Minute}
	markers := Watch(ctx, clock, 5*time.Millisecond, day(2024, 1, 1))

	first := receive(t, markers)
	assert.True(t, first.Visible)
	assert.Equal(t, at(2024, 1, 1, 23, 58), first.At)

	second := receive(t, markers)
	assert.True(t, second.Visible)
	assert.Greater(t, second.Percent, first.Percent)

	// the clock has crossed midnight: marker disappears
	third := receive(t, markers)
	assert.False(t, third.Visible)
}

func TestWatch_ClosesOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	clock := ClockFunc(func() time.Time { return at(2024, 1, 1, 12, 0) })
	markers := Watch(ctx, clock, 5*time.Millisecond, day(2024, 1, 1))

	receive(t, markers)
	cancel()

	require.Eventually(t, func() bool {
		select {
		case _, ok := <-markers:
			return !ok
		default:
			return false
		}
	}, time.Second, time.Millisecond)
}

func receive(t *testing.T, markers <-chan NowMarker) NowMarker {
	t.Helper()
	select {
	case m, ok := <-markers:
		require.True(t, ok, "channel closed")
		return m
	case <-time.After(time.Second):
		t.Fatal("no marker received")
		return NowMarker{}
	}
}
