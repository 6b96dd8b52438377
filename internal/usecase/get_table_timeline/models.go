package get_table_timeline

import (
	"time"

	"github.com/m04kA/SMC-BilliardTimeline/internal/domain"
	"github.com/m04kA/SMC-BilliardTimeline/internal/timeline"
)

// Request модель запроса таймлайна одного стола
type Request struct {
	TableID          int64     // ID стола
	Date             time.Time // Отображаемая дата (время суток игнорируется)
	ShowPersonalInfo bool      // Показывать имя, телефон и стоимость (только для персонала)
	IncludeCancelled bool      // Показывать отмененные бронирования
}

// Response модель ответа с разметкой дорожки стола
type Response struct {
	Table     *domain.Table
	DayStart  time.Time           // Полночь отображаемой даты в часовом поясе зала
	Bars      []timeline.Bar      // Полосы бронирований, упорядоченные по левому краю
	HourMarks []timeline.HourMark // Сетка часов
	Now       timeline.NowMarker  // Маркер текущего времени (Visible=false для другой даты)
}
