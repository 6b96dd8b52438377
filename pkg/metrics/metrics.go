package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics коллекторы Prometheus сервиса
type Metrics struct {
	httpRequests       *prometheus.CounterVec
	httpDuration       *prometheus.HistogramVec
	httpInFlight       prometheus.Gauge
	slotResolutions    *prometheus.CounterVec
	timelineBars       *prometheus.HistogramVec
	cacheLookups       *prometheus.CounterVec
	nowMarkerListeners prometheus.Gauge
}

// New создает коллекторы и регистрирует их в дефолтном registry
func New(serviceName string) *Metrics {
	return NewWithRegistry(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegistry создает коллекторы и регистрирует их в переданном registry
func NewWithRegistry(serviceName string, reg prometheus.Registerer) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		httpRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "http_requests_total",
				Help:        "Total number of HTTP requests.",
				ConstLabels: constLabels,
			},
			[]string{"method", "route", "status"},
		),
		httpDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:        "http_request_duration_seconds",
				Help:        "HTTP request latency.",
				ConstLabels: constLabels,
				Buckets:     prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		httpInFlight: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name:        "http_requests_in_flight",
				Help:        "Number of HTTP requests being served.",
				ConstLabels: constLabels,
			},
		),
		slotResolutions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "timeline_slot_resolutions_total",
				Help:        "Clicks on the timeline track by result.",
				ConstLabels: constLabels,
			},
			[]string{"result"},
		),
		timelineBars: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:        "timeline_bars_rendered",
				Help:        "Number of booking bars laid out per timeline request.",
				ConstLabels: constLabels,
				Buckets:     []float64{0, 1, 2, 5, 10, 20, 50, 100},
			},
			[]string{"view"},
		),
		cacheLookups: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "timeline_cache_lookups_total",
				Help:        "Booking cache lookups by result.",
				ConstLabels: constLabels,
			},
			[]string{"result"},
		),
		nowMarkerListeners: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name:        "timeline_now_marker_listeners",
				Help:        "Open now-marker event streams.",
				ConstLabels: constLabels,
			},
		),
	}

	reg.MustRegister(
		m.httpRequests,
		m.httpDuration,
		m.httpInFlight,
		m.slotResolutions,
		m.timelineBars,
		m.cacheLookups,
		m.nowMarkerListeners,
	)

	return m
}

// ObserveHTTPRequest фиксирует завершенный HTTP запрос
func (m *Metrics) ObserveHTTPRequest(method, route string, status int, duration time.Duration) {
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

func (m *Metrics) IncInFlight() { m.httpInFlight.Inc() }

func (m *Metrics) DecInFlight() { m.httpInFlight.Dec() }

// SlotResolved фиксирует результат обработки клика по треку
func (m *Metrics) SlotResolved(accepted bool) {
	result := "rejected"
	if accepted {
		result = "accepted"
	}
	m.slotResolutions.WithLabelValues(result).Inc()
}

// BarsRendered фиксирует количество отрисованных полос бронирований
func (m *Metrics) BarsRendered(view string, count int) {
	m.timelineBars.WithLabelValues(view).Observe(float64(count))
}

// CacheLookup фиксирует попадание/промах кэша
func (m *Metrics) CacheLookup(hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	m.cacheLookups.WithLabelValues(result).Inc()
}

func (m *Metrics) StreamOpened() { m.nowMarkerListeners.Inc() }

func (m *Metrics) StreamClosed() { m.nowMarkerListeners.Dec() }
