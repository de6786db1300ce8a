package sessions

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-DentalScheduling/internal/domain"
	credentialsRepo "github.com/m04kA/SMC-DentalScheduling/internal/infra/storage/credentials"
	"github.com/m04kA/SMC-DentalScheduling/internal/integrations/clinicapi"
	"github.com/m04kA/SMC-DentalScheduling/internal/service/sessions/models"
)

// Service сервис сессий шлюза
type Service struct {
	authClient  AuthClient
	sessionRepo SessionRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса сессий
func NewService(authClient AuthClient, sessionRepo SessionRepository, logger Logger) *Service {
	return &Service{
		authClient:  authClient,
		sessionRepo: sessionRepo,
		logger:      logger,
	}
}

// Login выполняет вход на бэкенде и создает сессию
// Роль определяется один раз по claim role access-токена
func (s *Service) Login(ctx context.Context, req *models.LoginRequest) (*models.SessionResponse, error) {
	email := strings.TrimSpace(req.Email)
	s.logger.Info("Login: email=%s", email)

	if email == "" || req.Password == "" {
		s.logger.Warn("Login: email or password is empty")
		return nil, fmt.Errorf("%w: email and password are required", ErrInvalidInput)
	}

	pair, err := s.authClient.Login(ctx, email, req.Password)
	if err != nil {
		if errors.Is(err, clinicapi.ErrUnauthorized) || errors.Is(err, clinicapi.ErrBadRequest) {
			s.logger.Warn("Login: backend rejected credentials for email=%s", email)
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("Login: backend login failed for email=%s: %v", email, err)
		return nil, fmt.Errorf("sessions: login: %w", err)
	}

	role, userID, err := readClaims(pair.AccessToken)
	if err != nil {
		s.logger.Warn("Login: rejected token for email=%s: %v", email, err)
		return nil, err
	}

	session := &domain.Session{
		ID:          uuid.NewString(),
		UserID:      userID,
		Role:        role,
		Credentials: pair.ToDomain(),
	}

	if err := s.sessionRepo.Create(ctx, session); err != nil {
		s.logger.Error("Login: failed to store session for email=%s: %v", email, err)
		return nil, fmt.Errorf("%w: Login - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Login: session %s created, user=%d, role=%s", session.ID, session.UserID, session.Role)
	return models.FromDomainSession(session), nil
}

// Get возвращает активную сессию
func (s *Service) Get(ctx context.Context, sessionID string) (*domain.Session, error) {
	if _, err := uuid.Parse(sessionID); err != nil {
		return nil, ErrSessionNotFound
	}

	session, err := s.sessionRepo.GetByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, credentialsRepo.ErrSessionNotFound) {
			return nil, ErrSessionNotFound
		}
		s.logger.Error("Get: repository error for session %s: %v", sessionID, err)
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}

	if session.Credentials.IsEmpty() {
		return nil, ErrSessionNotFound
	}

	return session, nil
}

// Logout завершает сессию и удаляет ее токены
func (s *Service) Logout(ctx context.Context, sessionID string) error {
	s.logger.Info("Logout: session %s", sessionID)

	if err := s.sessionRepo.Delete(ctx, sessionID); err != nil {
		if errors.Is(err, credentialsRepo.ErrSessionNotFound) {
			s.logger.Warn("Logout: session %s not found", sessionID)
			return ErrSessionNotFound
		}
		s.logger.Error("Logout: repository error for session %s: %v", sessionID, err)
		return fmt.Errorf("%w: Logout - repository error: %v", ErrInternal, err)
	}

	return nil
}
