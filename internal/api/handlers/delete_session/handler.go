package delete_session

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-DentalScheduling/internal/api/handlers"
	"github.com/m04kA/SMC-DentalScheduling/internal/api/middleware"
	"github.com/m04kA/SMC-DentalScheduling/internal/service/sessions"
)

const (
	msgSessionRequired = "требуется авторизация"
	msgSessionNotFound = "сессия не найдена или уже завершена"
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

// Handle DELETE /api/v1/sessions
// Сессию устанавливает middleware авторизации
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		h.logger.Warn("DELETE /sessions - No session in context")
		handlers.RespondUnauthorized(w, msgSessionRequired)
		return
	}

	if err := h.service.Logout(r.Context(), session.ID); err != nil {
		if errors.Is(err, sessions.ErrSessionNotFound) {
			h.logger.Warn("DELETE /sessions - Session not found: session_id=%s", session.ID)
			handlers.RespondUnauthorized(w, msgSessionNotFound)
			return
		}
		h.logger.Error("DELETE /sessions - Failed to logout: session_id=%s, error=%v", session.ID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /sessions - Session closed successfully: session_id=%s, user_id=%d", session.ID, session.UserID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
