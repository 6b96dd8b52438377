package resolve_slot

import (
	"context"

	"github.com/m04kA/SMC-BilliardTimeline/internal/domain"
)

// TableRepository интерфейс справочника столов
type TableRepository interface {
	GetByID(ctx context.Context, tableID int64) (*domain.Table, error)
}

// MetricsRecorder учет принятых и отброшенных кликов
type MetricsRecorder interface {
	SlotResolved(accepted bool)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
