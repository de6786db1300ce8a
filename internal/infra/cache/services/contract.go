package services

import (
	"context"

	"github.com/m04kA/SMC-DentalScheduling/internal/domain"
	"github.com/m04kA/SMC-DentalScheduling/internal/integrations/clinicapi"
)

// Cache хранилище каталога услуг
// Get возвращает found=false при промахе
type Cache interface {
	Get(ctx context.Context) (services []domain.Service, found bool, err error)
	Set(ctx context.Context, services []domain.Service) error
}

// ClinicClient интерфейс клиента бэкенда клиники
type ClinicClient interface {
	GetServices(ctx context.Context) ([]clinicapi.Service, error)
}

// Metrics учет попаданий в кэш
type Metrics interface {
	IncCacheLookup(result string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

type nopMetrics struct{}

func (nopMetrics) IncCacheLookup(string) {}
