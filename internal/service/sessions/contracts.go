package sessions

import (
	"context"

	"github.com/m04kA/SMC-DentalScheduling/internal/domain"
	"github.com/m04kA/SMC-DentalScheduling/internal/integrations/clinicapi"
)

// AuthClient интерфейс входа на бэкенде клиники
type AuthClient interface {
	Login(ctx context.Context, email, password string) (*clinicapi.TokenPair, error)
}

// SessionRepository интерфейс хранилища сессий
type SessionRepository interface {
	Create(ctx context.Context, session *domain.Session) error
	GetByID(ctx context.Context, id string) (*domain.Session, error)
	Delete(ctx context.Context, id string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
