package create_appointment

import (
	"context"

	buildBooking "github.com/m04kA/SMC-DentalScheduling/internal/usecase/build_booking"
)

type BuildBookingUseCase interface {
	Execute(ctx context.Context, req *buildBooking.Request) (*buildBooking.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
