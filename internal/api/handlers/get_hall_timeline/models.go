package get_hall_timeline

import (
	"github.com/m04kA/SMC-BilliardTimeline/internal/api/handlers"
	"github.com/m04kA/SMC-BilliardTimeline/internal/domain"
	getHallTimeline "github.com/m04kA/SMC-BilliardTimeline/internal/usecase/get_hall_timeline"
)

// HallTimelineResponse HTTP response model
type HallTimelineResponse struct {
	Date      string                        `json:"date"`
	Rows      []RowResponse                 `json:"rows"`
	HourMarks []handlers.HourMarkResponse   `json:"hourMarks"`
	Now       handlers.NowMarkerResponse    `json:"now"`
	Legend    []handlers.LegendItemResponse `json:"legend"`
}

// RowResponse дорожка одного стола
type RowResponse struct {
	Table handlers.TableResponse `json:"table"`
	Bars  []handlers.BarResponse `json:"bars"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getHallTimeline.Response) *HallTimelineResponse {
	rows := make([]RowResponse, len(resp.Rows))
	for i, row := range resp.Rows {
		rows[i] = RowResponse{
			Table: handlers.FromTable(row.Table),
			Bars:  handlers.FromBars(row.Bars),
		}
	}

	return &HallTimelineResponse{
		Date:      resp.DayStart.Format(domain.DateFormat),
		Rows:      rows,
		HourMarks: handlers.FromHourMarks(resp.HourMarks),
		Now:       handlers.FromNowMarker(resp.Now),
		Legend:    handlers.Legend(),
	}
}
