package bookings

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-BilliardTimeline/internal/domain"
)

// Source источник бронирований (репозиторий PostgreSQL)
type Source interface {
	GetByTablesAndPeriod(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
}

// Client подмножество команд Redis, которое использует кэш
// Реализуется *redis.Client
type Client interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

// Recorder учет попаданий в кэш
type Recorder interface {
	CacheLookup(hit bool)
}

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
