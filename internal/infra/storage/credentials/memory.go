package credentials

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/m04kA/SMC-DentalScheduling/internal/domain"
)

// MemoryRepository хранилище сессий в памяти процесса (когда БД отключена)
type MemoryRepository struct {
	mu       sync.RWMutex
	sessions map[string]domain.Session
	now      func() time.Time
}

// NewMemoryRepository создает пустое хранилище сессий
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		sessions: make(map[string]domain.Session),
		now:      time.Now,
	}
}

func (r *MemoryRepository) Create(_ context.Context, session *domain.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.sessions[session.ID]; exists {
		return fmt.Errorf("%w: id=%s", ErrSessionExists, session.ID)
	}

	now := r.now()
	session.CreatedAt = now
	session.UpdatedAt = now
	r.sessions[session.ID] = *session

	return nil
}

func (r *MemoryRepository) GetByID(_ context.Context, id string) (*domain.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	session, ok := r.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}

	return &session, nil
}

func (r *MemoryRepository) UpdateTokens(_ context.Context, id string, credentials domain.Credentials) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	session, ok := r.sessions[id]
	if !ok {
		return ErrSessionNotFound
	}

	session.Credentials = credentials
	session.UpdatedAt = r.now()
	r.sessions[id] = session

	return nil
}

func (r *MemoryRepository) Touch(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	session, ok := r.sessions[id]
	if !ok {
		return ErrSessionNotFound
	}

	session.UpdatedAt = r.now()
	r.sessions[id] = session

	return nil
}

func (r *MemoryRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[id]; !ok {
		return ErrSessionNotFound
	}
	delete(r.sessions, id)

	return nil
}

func (r *MemoryRepository) DeleteIdleSince(_ context.Context, before time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var deleted int64
	for id, session := range r.sessions {
		if session.UpdatedAt.Before(before) {
			delete(r.sessions, id)
			deleted++
		}
	}

	return deleted, nil
}
