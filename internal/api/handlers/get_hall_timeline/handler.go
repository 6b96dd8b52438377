package get_hall_timeline

import (
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-BilliardTimeline/internal/api/handlers"
	getHallTimeline "github.com/m04kA/SMC-BilliardTimeline/internal/usecase/get_hall_timeline"
)

const (
	msgMissingDate             = "дата обязательна"
	msgInvalidDate             = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidIncludeCancelled = "некорректное значение includeCancelled"
)

type Handler struct {
	useCase GetHallTimelineUseCase
	logger  Logger
	staff   bool
}

func NewHandler(useCase GetHallTimelineUseCase, logger Logger, staff bool) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
		staff:   staff,
	}
}

// Handle GET /api/v1/timeline
// GET /api/v1/staff/timeline
// Query params: date (required, YYYY-MM-DD), includeCancelled (staff only)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	dateStr := query.Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /timeline - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	date, err := handlers.ParseDate(dateStr)
	if err != nil {
		h.logger.Warn("GET /timeline - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	includeCancelled := false
	if raw := query.Get("includeCancelled"); raw != "" && h.staff {
		includeCancelled, err = strconv.ParseBool(raw)
		if err != nil {
			h.logger.Warn("GET /timeline - Invalid includeCancelled: %v", err)
			handlers.RespondBadRequest(w, msgInvalidIncludeCancelled)
			return
		}
	}

	result, err := h.useCase.Execute(r.Context(), &getHallTimeline.Request{
		Date:             date,
		ShowPersonalInfo: h.staff,
		IncludeCancelled: includeCancelled,
	})
	if err != nil {
		h.logger.Error("GET /timeline - Failed to get hall timeline: date=%s, error=%v", dateStr, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /timeline - Hall timeline retrieved successfully: date=%s, tables=%d", dateStr, len(result.Rows))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
