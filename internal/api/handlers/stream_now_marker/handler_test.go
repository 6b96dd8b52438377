package stream_now_marker

import (
	"bufio"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BilliardTimeline/internal/api/handlers"
	"github.com/m04kA/SMC-BilliardTimeline/internal/timeline"
	"github.com/m04kA/SMC-BilliardTimeline/pkg/logger"
)

type streamCounter struct {
	open int64
}

func (c *streamCounter) StreamOpened() { atomic.AddInt64(&c.open, 1) }
func (c *streamCounter) StreamClosed() { atomic.AddInt64(&c.open, -1) }

func fixedClock(t time.Time) timeline.Clock {
	return timeline.ClockFunc(func() time.Time { return t })
}

// readEvents читает n событий "now" из потока
func readEvents(t *testing.T, scanner *bufio.Scanner, n int) []handlers.NowMarkerResponse {
	t.Helper()

	events := make([]handlers.NowMarkerResponse, 0, n)
	isNow := false
	for len(events) < n && scanner.Scan() {
		line := scanner.Text()
		switch {
		case line == "event: now":
			isNow = true
		case strings.HasPrefix(line, "data: ") && isNow:
			var m handlers.NowMarkerResponse
			require.NoError(t, json.Unmarshal([]byte(strings.TrimPrefix(line, "data: ")), &m))
			events = append(events, m)
			isNow = false
		}
	}
	require.Len(t, events, n)
	return events
}

func TestHandler_Stream(t *testing.T) {
	now := time.Date(2024, 3, 15, 18, 0, 0, 0, time.UTC)
	counter := &streamCounter{}
	h := NewHandler(fixedClock(now), time.UTC, 10*time.Millisecond, counter, logger.NewNop())

	srv := httptest.NewServer(http.HandlerFunc(h.Handle))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL+"/?date=2024-03-15", nil)
	require.NoError(t, err)

	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	events := readEvents(t, bufio.NewScanner(resp.Body), 2)
	for _, e := range events {
		assert.True(t, e.Visible)
		require.NotNil(t, e.Percent)
		assert.InDelta(t, 75.0, *e.Percent, 1e-9)
	}
	assert.Equal(t, int64(1), atomic.LoadInt64(&counter.open))

	cancel()
	assert.Eventually(t, func() bool {
		return atomic.LoadInt64(&counter.open) == 0
	}, 2*time.Second, 10*time.Millisecond)
}

func TestHandler_OtherDateHidesMarker(t *testing.T) {
	now := time.Date(2024, 3, 16, 1, 0, 0, 0, time.UTC)
	h := NewHandler(fixedClock(now), time.UTC, time.Second, &streamCounter{}, logger.NewNop())

	srv := httptest.NewServer(http.HandlerFunc(h.Handle))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL+"/?date=2024-03-15", nil)
	require.NoError(t, err)

	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	events := readEvents(t, bufio.NewScanner(resp.Body), 1)
	assert.False(t, events[0].Visible)
	assert.Nil(t, events[0].Percent)
}

func TestHandler_BadRequest(t *testing.T) {
	h := NewHandler(fixedClock(time.Now()), time.UTC, time.Second, &streamCounter{}, logger.NewNop())

	for _, target := range []string{"/api/v1/timeline/now", "/api/v1/timeline/now?date=yesterday"} {
		rec := httptest.NewRecorder()
		h.Handle(rec, httptest.NewRequest(http.MethodGet, target, nil))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	}
}

func TestNewHandler_NormalizesInterval(t *testing.T) {
	h := NewHandler(fixedClock(time.Now()), time.UTC, 5*time.Minute, &streamCounter{}, logger.NewNop())
	assert.Equal(t, time.Minute, h.interval)

	h = NewHandler(fixedClock(time.Now()), time.UTC, 0, &streamCounter{}, logger.NewNop())
	assert.Equal(t, 30*time.Second, h.interval)
}
