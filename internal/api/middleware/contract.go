package middleware

import (
	"context"
	"time"

	"github.com/m04kA/SMC-DentalScheduling/internal/domain"
	"github.com/m04kA/SMC-DentalScheduling/internal/infra/storage/credentials"
)

// SessionService источник активных сессий
type SessionService interface {
	Get(ctx context.Context, sessionID string) (*domain.Session, error)
}

// SessionStore хранилище токенов сессий с отметкой активности
type SessionStore interface {
	credentials.Store
	Touch(ctx context.Context, id string) error
}

// HTTPMetrics сборщик метрик HTTP запросов
type HTTPMetrics interface {
	ObserveHTTP(method, route string, status int, duration time.Duration)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
