package create_session

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-DentalScheduling/internal/api/handlers"
	"github.com/m04kA/SMC-DentalScheduling/internal/service/sessions"
	"github.com/m04kA/SMC-DentalScheduling/internal/service/sessions/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgCredentialsMissing = "email и пароль обязательны"
	msgInvalidCredentials = "неверный email или пароль"
	msgInvalidToken       = "бэкенд клиники выдал токен без роли пользователя"
)

type Handler struct {
	service SessionService
	logger  Logger
}

func NewHandler(service SessionService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/sessions
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /sessions - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	session, err := h.service.Login(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, sessions.ErrInvalidInput):
			h.logger.Warn("POST /sessions - Missing credentials")
			handlers.RespondBadRequest(w, msgCredentialsMissing)

		case errors.Is(err, sessions.ErrInvalidCredentials):
			h.logger.Warn("POST /sessions - Invalid credentials: email=%s", req.Email)
			handlers.RespondUnauthorized(w, msgInvalidCredentials)

		case errors.Is(err, sessions.ErrInvalidToken):
			h.logger.Error("POST /sessions - Unusable access token: email=%s, error=%v", req.Email, err)
			handlers.RespondError(w, http.StatusBadGateway, msgInvalidToken)

		default:
			status := handlers.RespondUpstreamError(w, err)
			h.logger.Error("POST /sessions - Login failed: email=%s, status=%d, error=%v", req.Email, status, err)
		}
		return
	}

	h.logger.Info("POST /sessions - Session created successfully: session_id=%s, user_id=%d, role=%s",
		session.SessionID, session.UserID, session.Role)
	handlers.RespondJSON(w, http.StatusCreated, session)
}
