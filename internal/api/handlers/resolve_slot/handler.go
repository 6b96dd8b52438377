package resolve_slot

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-BilliardTimeline/internal/api/handlers"
	resolveSlot "github.com/m04kA/SMC-BilliardTimeline/internal/usecase/resolve_slot"
)

const (
	msgInvalidTableID     = "некорректный ID стола"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidParams      = "ожидаются date (YYYY-MM-DD), pixelX и trackWidth > 0"
	msgTableNotFound      = "стол не найден"
	msgTableInactive      = "стол недоступен для бронирования"
)

type Handler struct {
	useCase ResolveSlotUseCase
	logger  Logger
}

func NewHandler(useCase ResolveSlotUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/tables/{tableId}/timeline/slot
// Body: {"date": "YYYY-MM-DD", "pixelX": 640.5, "trackWidth": 1440}
// 200 - черновик бронирования, 204 - клик проигнорирован (после 23:45)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tableID, err := strconv.ParseInt(mux.Vars(r)["tableId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /tables/{id}/timeline/slot - Invalid table ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTableID)
		return
	}

	var body ResolveSlotRequest
	if err := handlers.DecodeJSON(r, &body); err != nil {
		h.logger.Warn("POST /tables/{id}/timeline/slot - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := ToUseCaseRequest(tableID, &body)
	if err != nil {
		h.logger.Warn("POST /tables/{id}/timeline/slot - Invalid params: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, resolveSlot.ErrSlotNotRepresentable):
			h.logger.Info("POST /tables/{id}/timeline/slot - Click ignored: table_id=%d, x=%.2f", tableID, useCaseReq.PixelX)
			handlers.RespondNoContent(w)

		case errors.Is(err, resolveSlot.ErrInvalidInput):
			h.logger.Warn("POST /tables/{id}/timeline/slot - Invalid input: table_id=%d, error=%v", tableID, err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		case errors.Is(err, resolveSlot.ErrTableNotFound):
			h.logger.Warn("POST /tables/{id}/timeline/slot - Table not found: table_id=%d", tableID)
			handlers.RespondNotFound(w, msgTableNotFound)

		case errors.Is(err, resolveSlot.ErrTableInactive):
			h.logger.Warn("POST /tables/{id}/timeline/slot - Table inactive: table_id=%d", tableID)
			handlers.RespondError(w, http.StatusConflict, msgTableInactive)

		default:
			h.logger.Error("POST /tables/{id}/timeline/slot - Failed to resolve slot: table_id=%d, error=%v", tableID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /tables/{id}/timeline/slot - Slot resolved: table_id=%d, slot=%s", tableID, result.StartTime)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
