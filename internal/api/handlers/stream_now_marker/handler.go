package stream_now_marker

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/m04kA/SMC-BilliardTimeline/internal/api/handlers"
	"github.com/m04kA/SMC-BilliardTimeline/internal/timeline"
)

const (
	msgMissingDate        = "дата обязательна"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgStreamNotSupported = "потоковая передача не поддерживается"

	eventName = "now"
)

type Handler struct {
	clock    timeline.Clock
	location *time.Location
	interval time.Duration
	recorder StreamRecorder
	logger   Logger
}

// NewHandler создает обработчик потока маркера текущего времени.
// interval приводится к (0, 60s], по умолчанию 30s.
func NewHandler(clock timeline.Clock, location *time.Location, interval time.Duration, recorder StreamRecorder, logger Logger) *Handler {
	return &Handler{
		clock:    clock,
		location: location,
		interval: timeline.NormalizeInterval(interval),
		recorder: recorder,
		logger:   logger,
	}
}

// Handle GET /api/v1/timeline/now?date=YYYY-MM-DD
// Server-Sent Events: сразу отдается текущее положение маркера, затем по таймеру
// до отключения клиента.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /timeline/now - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	date, err := handlers.ParseDate(dateStr)
	if err != nil {
		h.logger.Warn("GET /timeline/now - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		h.logger.Error("GET /timeline/now - ResponseWriter does not support flushing")
		handlers.RespondError(w, http.StatusInternalServerError, msgStreamNotSupported)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")
	w.WriteHeader(http.StatusOK)
	fmt.Fprintf(w, "retry: %d\n\n", h.interval.Milliseconds())
	flusher.Flush()

	h.recorder.StreamOpened()
	defer h.recorder.StreamClosed()

	dayStart := timeline.DayStart(date, h.location)
	h.logger.Info("GET /timeline/now - Stream opened: date=%s, interval=%s", dateStr, h.interval)

	sent := 0
	for marker := range timeline.Watch(r.Context(), h.clock, h.interval, dayStart) {
		payload, err := json.Marshal(handlers.FromNowMarker(marker))
		if err != nil {
			h.logger.Error("GET /timeline/now - Failed to encode marker: %v", err)
			return
		}
		if _, err := fmt.Fprintf(w, "event: %s\ndata: %s\n\n", eventName, payload); err != nil {
			h.logger.Warn("GET /timeline/now - Client write failed: %v", err)
			return
		}
		flusher.Flush()
		sent++
	}

	h.logger.Info("GET /timeline/now - Stream closed: date=%s, events=%d", dateStr, sent)
}
