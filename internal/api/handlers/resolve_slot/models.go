package resolve_slot

import (
	"errors"
	"time"

	"github.com/m04kA/SMC-BilliardTimeline/internal/api/handlers"
	"github.com/m04kA/SMC-BilliardTimeline/internal/domain"
	resolveSlot "github.com/m04kA/SMC-BilliardTimeline/internal/usecase/resolve_slot"
)

var errMissingField = errors.New("date, pixelX and trackWidth are required")

// ResolveSlotRequest тело запроса: клик по дорожке стола
type ResolveSlotRequest struct {
	Date       string   `json:"date"`
	PixelX     *float64 `json:"pixelX"`
	TrackWidth *float64 `json:"trackWidth"`
}

// BookingDraftResponse черновик формы бронирования
type BookingDraftResponse struct {
	TableID     int64   `json:"tableId"`
	TableName   string  `json:"tableName"`
	HourlyPrice float64 `json:"hourlyPrice"`
	Date        string  `json:"date"`
	Hour        int     `json:"hour"`
	Minute      int     `json:"minute"`
	MinuteOfDay int     `json:"minuteOfDay"`
	StartTime   string  `json:"startTime"`
	StartsAt    string  `json:"startsAt"`
}

// ToUseCaseRequest создает запрос use case из тела запроса
func ToUseCaseRequest(tableID int64, req *ResolveSlotRequest) (*resolveSlot.Request, error) {
	if req.Date == "" || req.PixelX == nil || req.TrackWidth == nil {
		return nil, errMissingField
	}

	date, err := handlers.ParseDate(req.Date)
	if err != nil {
		return nil, err
	}

	return &resolveSlot.Request{
		TableID:    tableID,
		Date:       date,
		PixelX:     *req.PixelX,
		TrackWidth: *req.TrackWidth,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *resolveSlot.Response) *BookingDraftResponse {
	return &BookingDraftResponse{
		TableID:     resp.TableID,
		TableName:   resp.TableName,
		HourlyPrice: resp.HourlyPrice,
		Date:        resp.Date.Format(domain.DateFormat),
		Hour:        resp.Slot.Hour,
		Minute:      resp.Slot.Minute,
		MinuteOfDay: resp.Slot.MinuteOfDay(),
		StartTime:   resp.StartTime.String(),
		StartsAt:    resp.StartsAt.Format(time.RFC3339),
	}
}
