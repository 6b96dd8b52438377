package get_table_timeline

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-BilliardTimeline/internal/api/handlers"
	getTableTimeline "github.com/m04kA/SMC-BilliardTimeline/internal/usecase/get_table_timeline"
)

const (
	msgInvalidTableID          = "некорректный ID стола"
	msgMissingDate             = "дата обязательна"
	msgInvalidDate             = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidIncludeCancelled = "некорректное значение includeCancelled"
	msgTableNotFound           = "стол не найден"
)

type Handler struct {
	useCase GetTableTimelineUseCase
	logger  Logger
	staff   bool
}

// NewHandler создает обработчик. Для персонала (staff=true) в ответ попадают имя,
// телефон и стоимость, а также можно запросить отмененные бронирования.
func NewHandler(useCase GetTableTimelineUseCase, logger Logger, staff bool) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
		staff:   staff,
	}
}

// Handle GET /api/v1/tables/{tableId}/timeline
// GET /api/v1/staff/tables/{tableId}/timeline
// Query params: date (required, YYYY-MM-DD), includeCancelled (staff only)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tableID, err := strconv.ParseInt(mux.Vars(r)["tableId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /tables/{id}/timeline - Invalid table ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTableID)
		return
	}

	query := r.URL.Query()

	dateStr := query.Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /tables/{id}/timeline - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	date, err := handlers.ParseDate(dateStr)
	if err != nil {
		h.logger.Warn("GET /tables/{id}/timeline - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	includeCancelled := false
	if raw := query.Get("includeCancelled"); raw != "" && h.staff {
		includeCancelled, err = strconv.ParseBool(raw)
		if err != nil {
			h.logger.Warn("GET /tables/{id}/timeline - Invalid includeCancelled: %v", err)
			handlers.RespondBadRequest(w, msgInvalidIncludeCancelled)
			return
		}
	}

	result, err := h.useCase.Execute(r.Context(), ToUseCaseRequest(tableID, date, h.staff, includeCancelled))
	if err != nil {
		switch {
		case errors.Is(err, getTableTimeline.ErrInvalidInput):
			h.logger.Warn("GET /tables/{id}/timeline - Invalid input: table_id=%d, error=%v", tableID, err)
			handlers.RespondBadRequest(w, msgInvalidTableID)

		case errors.Is(err, getTableTimeline.ErrTableNotFound):
			h.logger.Warn("GET /tables/{id}/timeline - Table not found: table_id=%d", tableID)
			handlers.RespondNotFound(w, msgTableNotFound)

		default:
			h.logger.Error("GET /tables/{id}/timeline - Failed to get timeline: table_id=%d, error=%v", tableID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /tables/{id}/timeline - Timeline retrieved successfully: table_id=%d, date=%s, bars=%d",
		tableID, dateStr, len(result.Bars))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
