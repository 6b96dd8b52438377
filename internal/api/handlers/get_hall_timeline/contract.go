package get_hall_timeline

import (
	"context"

	getHallTimeline "github.com/m04kA/SMC-BilliardTimeline/internal/usecase/get_hall_timeline"
)

type GetHallTimelineUseCase interface {
	Execute(ctx context.Context, req *getHallTimeline.Request) (*getHallTimeline.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
