package credentials

import (
	"context"
	"errors"

	"github.com/m04kA/SMC-DentalScheduling/internal/domain"
)

// Store хранилище сессий, которым пользуется SessionProvider
type Store interface {
	GetByID(ctx context.Context, id string) (*domain.Session, error)
	UpdateTokens(ctx context.Context, id string, credentials domain.Credentials) error
	Delete(ctx context.Context, id string) error
}

// SessionProvider провайдер токенов одной сессии для клиента бэкенда
type SessionProvider struct {
	store     Store
	sessionID string
}

// NewSessionProvider создает провайдер для сессии sessionID
func NewSessionProvider(store Store, sessionID string) *SessionProvider {
	return &SessionProvider{store: store, sessionID: sessionID}
}

// GetToken возвращает текущую пару токенов; для удаленной сессии пустую пару
func (p *SessionProvider) GetToken(ctx context.Context) (domain.Credentials, error) {
	session, err := p.store.GetByID(ctx, p.sessionID)
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			return domain.Credentials{}, nil
		}
		return domain.Credentials{}, err
	}
	return session.Credentials, nil
}

// SetToken сохраняет обновленную пару токенов
func (p *SessionProvider) SetToken(ctx context.Context, credentials domain.Credentials) error {
	return p.store.UpdateTokens(ctx, p.sessionID, credentials)
}

// Clear завершает сессию: без токенов она больше не может обращаться к бэкенду
func (p *SessionProvider) Clear(ctx context.Context) error {
	if err := p.store.Delete(ctx, p.sessionID); err != nil && !errors.Is(err, ErrSessionNotFound) {
		return err
	}
	return nil
}
