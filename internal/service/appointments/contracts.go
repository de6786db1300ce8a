package appointments

import (
	"context"
	"time"

	"github.com/m04kA/SMC-DentalScheduling/internal/integrations/clinicapi"
)

// ClinicClient интерфейс клиента бэкенда клиники
type ClinicClient interface {
	CancelAppointment(ctx context.Context, req clinicapi.CancelRequest) error
	GetDoctorAppointments(ctx context.Context, doctorID int64, date time.Time) ([]clinicapi.Appointment, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
