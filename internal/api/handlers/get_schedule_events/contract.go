package get_schedule_events

import (
	"context"

	getScheduleEvents "github.com/m04kA/SMC-DentalScheduling/internal/usecase/get_schedule_events"
)

type GetScheduleEventsUseCase interface {
	Execute(ctx context.Context, req *getScheduleEvents.Request) (*getScheduleEvents.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
