package build_booking

import (
	"context"
	"time"

	"github.com/m04kA/SMC-DentalScheduling/internal/domain"
	"github.com/m04kA/SMC-DentalScheduling/internal/integrations/clinicapi"
)

// ClinicClient интерфейс клиента бэкенда клиники
type ClinicClient interface {
	GetTimeBlocks(ctx context.Context, doctorID int64, date time.Time) ([]clinicapi.TimeBlock, error)
	CreateAppointment(ctx context.Context, req clinicapi.BookingRequest) (*clinicapi.Appointment, error)
	CreateGuestAppointment(ctx context.Context, req clinicapi.GuestBookingRequest) (*clinicapi.Appointment, error)
}

// ServiceCatalog интерфейс каталога услуг (с кэшем)
type ServiceCatalog interface {
	GetServices(ctx context.Context) ([]domain.Service, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
