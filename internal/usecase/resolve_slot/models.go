package resolve_slot

import (
	"time"

	"github.com/m04kA/SMC-BilliardTimeline/internal/domain"
	"github.com/m04kA/SMC-BilliardTimeline/pkg/types"
)

// Request модель клика по дорожке стола
type Request struct {
	TableID    int64     // ID стола
	Date       time.Time // Отображаемая дата
	PixelX     float64   // Горизонтальная позиция клика относительно левого края дорожки
	TrackWidth float64   // Ширина дорожки в пикселях
}

// Response черновик формы бронирования для выбранного слота
type Response struct {
	TableID     int64
	TableName   string
	HourlyPrice float64
	Date        time.Time        // Полночь выбранной даты в часовом поясе зала
	Slot        domain.Slot      // Выбранный слот
	StartTime   types.TimeString // Слот в формате "HH:MM"
	StartsAt    time.Time        // Начало слота
}
