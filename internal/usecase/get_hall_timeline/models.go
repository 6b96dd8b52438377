package get_hall_timeline

import (
	"time"

	"github.com/m04kA/SMC-BilliardTimeline/internal/domain"
	"github.com/m04kA/SMC-BilliardTimeline/internal/timeline"
)

// Request модель запроса таймлайна всего зала
type Request struct {
	Date             time.Time // Отображаемая дата (время суток игнорируется)
	ShowPersonalInfo bool      // Показывать имя, телефон и стоимость (только для персонала)
	IncludeCancelled bool      // Показывать отмененные бронирования
}

// Response модель ответа: по одной дорожке на каждый активный стол
type Response struct {
	DayStart  time.Time
	Rows      []Row
	HourMarks []timeline.HourMark
	Now       timeline.NowMarker
}

// Row дорожка одного стола
type Row struct {
	Table *domain.Table
	Bars  []timeline.Bar
}
