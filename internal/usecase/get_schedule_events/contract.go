package get_schedule_events

import (
	"context"
	"time"

	"github.com/m04kA/SMC-DentalScheduling/internal/integrations/clinicapi"
)

// ClinicClient интерфейс клиента бэкенда клиники
type ClinicClient interface {
	GetDoctorSchedule(ctx context.Context, doctorID int64) (*clinicapi.WeeklySchedule, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct {
	Location *time.Location
}

// Now возвращает текущее время в часовом поясе клиники
func (p *RealTimeProvider) Now() time.Time {
	if p.Location == nil {
		return time.Now()
	}
	return time.Now().In(p.Location)
}
