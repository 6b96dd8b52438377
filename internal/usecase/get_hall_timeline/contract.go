package get_hall_timeline

import (
	"context"
	"time"

	"github.com/m04kA/SMC-BilliardTimeline/internal/domain"
)

// TableRepository интерфейс справочника столов
type TableRepository interface {
	List(ctx context.Context, activeOnly bool) ([]*domain.Table, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByTablesAndPeriod(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
}

// MetricsRecorder учет отрисованных полос
type MetricsRecorder interface {
	BarsRendered(view string, count int)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
