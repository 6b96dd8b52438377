package metrics

import (
	"net/http"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_SlotResolved(t *testing.T) {
	m := NewWithRegistry("billiard-timeline", prometheus.NewRegistry())

	m.SlotResolved(true)
	m.SlotResolved(true)
	m.SlotResolved(false)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.slotResolutions.WithLabelValues("accepted")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.slotResolutions.WithLabelValues("rejected")))
}

func TestMetrics_HTTPAndCache(t *testing.T) {
	m := NewWithRegistry("billiard-timeline", prometheus.NewRegistry())

	m.ObserveHTTPRequest(http.MethodGet, "/api/v1/timeline", http.StatusOK, 15*time.Millisecond)
	m.CacheLookup(true)
	m.CacheLookup(false)
	m.CacheLookup(false)
	m.StreamOpened()
	m.StreamOpened()
	m.StreamClosed()

	assert.Equal(t, 1.0, testutil.ToFloat64(m.httpRequests.WithLabelValues(http.MethodGet, "/api/v1/timeline", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.cacheLookups.WithLabelValues("hit")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.cacheLookups.WithLabelValues("miss")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.nowMarkerListeners))
}
