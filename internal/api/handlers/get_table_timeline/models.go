package get_table_timeline

import (
	"time"

	"github.com/m04kA/SMC-BilliardTimeline/internal/api/handlers"
	"github.com/m04kA/SMC-BilliardTimeline/internal/domain"
	getTableTimeline "github.com/m04kA/SMC-BilliardTimeline/internal/usecase/get_table_timeline"
)

// TableTimelineResponse HTTP response model
type TableTimelineResponse struct {
	Date      string                        `json:"date"`
	Table     handlers.TableResponse        `json:"table"`
	Bars      []handlers.BarResponse        `json:"bars"`
	HourMarks []handlers.HourMarkResponse   `json:"hourMarks"`
	Now       handlers.NowMarkerResponse    `json:"now"`
	Legend    []handlers.LegendItemResponse `json:"legend"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getTableTimeline.Response) *TableTimelineResponse {
	return &TableTimelineResponse{
		Date:      resp.DayStart.Format(domain.DateFormat),
		Table:     handlers.FromTable(resp.Table),
		Bars:      handlers.FromBars(resp.Bars),
		HourMarks: handlers.FromHourMarks(resp.HourMarks),
		Now:       handlers.FromNowMarker(resp.Now),
		Legend:    handlers.Legend(),
	}
}

// ToUseCaseRequest создает запрос use case
func ToUseCaseRequest(tableID int64, date time.Time, staff, includeCancelled bool) *getTableTimeline.Request {
	return &getTableTimeline.Request{
		TableID:          tableID,
		Date:             date,
		ShowPersonalInfo: staff,
		IncludeCancelled: staff && includeCancelled,
	}
}
