package clinicapi

import (
	"context"
	"time"

	"github.com/m04kA/SMC-DentalScheduling/internal/domain"
)

// CredentialProvider источник токенов одной сессии
// GetToken возвращает пустые Credentials, если сессия анонимная
type CredentialProvider interface {
	GetToken(ctx context.Context) (domain.Credentials, error)
	SetToken(ctx context.Context, credentials domain.Credentials) error
	Clear(ctx context.Context) error
}

// Metrics интерфейс для сбора метрик запросов к бэкенду
type Metrics interface {
	ObserveUpstream(endpoint string, status int, duration time.Duration)
	IncTokenRefresh(outcome string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// AnonymousCredentials провайдер без токенов (гостевые запросы)
type AnonymousCredentials struct{}

func (AnonymousCredentials) GetToken(context.Context) (domain.Credentials, error) {
	return domain.Credentials{}, nil
}

func (AnonymousCredentials) SetToken(context.Context, domain.Credentials) error {
	return nil
}

func (AnonymousCredentials) Clear(context.Context) error {
	return nil
}

type nopMetrics struct{}

func (nopMetrics) ObserveUpstream(string, int, time.Duration) {}

func (nopMetrics) IncTokenRefresh(string) {}
