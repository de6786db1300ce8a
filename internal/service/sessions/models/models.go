package models

import (
	"time"

	"github.com/m04kA/SMC-DentalScheduling/internal/domain"
)

// Request модели

// LoginRequest запрос на вход
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Response модели

// SessionResponse созданная сессия
type SessionResponse struct {
	SessionID string    `json:"sessionId"`
	UserID    int64     `json:"userId"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

// Конвертеры

// FromDomainSession конвертирует сессию в ответ API (без токенов)
func FromDomainSession(session *domain.Session) *SessionResponse {
	return &SessionResponse{
		SessionID: session.ID,
		UserID:    session.UserID,
		Role:      session.Role.String(),
		CreatedAt: session.CreatedAt,
	}
}
