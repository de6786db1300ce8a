package replace_schedule

import (
	"context"

	"github.com/m04kA/SMC-DentalScheduling/internal/integrations/clinicapi"
)

// ClinicClient интерфейс клиента бэкенда клиники
type ClinicClient interface {
	ReplaceDoctorSchedule(ctx context.Context, doctorID int64, schedule clinicapi.WeeklySchedule) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
