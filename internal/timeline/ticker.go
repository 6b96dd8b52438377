package timeline

import (
	"context"
	"time"

	"github.com/m04kA/SMC-BilliardTimeline/internal/domain"
)

// Clock returns the current time
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a function to Clock
type ClockFunc func() time.Time

func (f ClockFunc) Now() time.Time { return f() }

// NowMarker is the "current time" indicator of a displayed day
type NowMarker struct {
	At      time.Time
	Percent float64
	Visible bool
}

// MarkerAt computes the marker for now on the day starting at dayStart
func MarkerAt(now, dayStart time.Time) NowMarker {
	percent, ok := CurrentTimePosition(now, dayStart)
	return NowMarker{At: now, Percent: percent, Visible: ok}
}

// NormalizeInterval returns the refresh cadence to use for interval:
// DefaultRefreshInterval for non-positive values, at most MaxRefreshInterval.
func NormalizeInterval(interval time.Duration) time.Duration {
	if interval <= 0 {
		return domain.DefaultRefreshInterval
	}
	if interval > domain.MaxRefreshInterval {
		return domain.MaxRefreshInterval
	}
	return interval
}

// Watch emits a marker immediately and then on every tick until ctx is done.
// The channel is closed when ctx is done. Ticks that fire while a marker is still
// waiting for the consumer are dropped.
func Watch(ctx context.Context, clock Clock, interval time.Duration, dayStart time.Time) <-chan NowMarker {
	out := make(chan NowMarker, 1)

	go func() {
		defer close(out)

		ticker := time.NewTicker(NormalizeInterval(interval))
		defer ticker.Stop()

		if !emit(ctx, out, MarkerAt(clock.Now(), dayStart)) {
			return
		}

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if !emit(ctx, out, MarkerAt(clock.Now(), dayStart)) {
					return
				}
			}
		}
	}()

	return out
}

func emit(ctx context.Context, out chan<- NowMarker, marker NowMarker) bool {
	select {
	case <-ctx.Done():
		return false
	case out <- marker:
		return true
	}
}
