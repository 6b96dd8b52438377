package get_table_timeline

import (
	"context"

	getTableTimeline "github.com/m04kA/SMC-BilliardTimeline/internal/usecase/get_table_timeline"
)

type GetTableTimelineUseCase interface {
	Execute(ctx context.Context, req *getTableTimeline.Request) (*getTableTimeline.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
