package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-DentalScheduling/internal/api/handlers"
	"github.com/m04kA/SMC-DentalScheduling/internal/domain"
	"github.com/m04kA/SMC-DentalScheduling/internal/infra/storage/credentials"
	"github.com/m04kA/SMC-DentalScheduling/internal/integrations/clinicapi"
	"github.com/m04kA/SMC-DentalScheduling/internal/service/sessions"
)

// SessionHeader заголовок с идентификатором сессии шлюза
const SessionHeader = "X-Session-ID"

const (
	msgSessionRequired = "требуется авторизация"
	msgSessionExpired  = "сессия не найдена или завершена"
	msgAccessDenied    = "доступ запрещен"
)

type sessionKey struct{}

// ContextWithSession сохраняет сессию в контексте запроса
func ContextWithSession(ctx context.Context, session *domain.Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, session)
}

// SessionFromContext возвращает сессию, установленную Auth
func SessionFromContext(ctx context.Context) (*domain.Session, bool) {
	session, ok := ctx.Value(sessionKey{}).(*domain.Session)
	return session, ok && session != nil
}

// Auth проверяет X-Session-ID и привязывает токены сессии к запросам к бэкенду
type Auth struct {
	sessions SessionService
	store    SessionStore
	logger   Logger
}

// NewAuth создает middleware авторизации
func NewAuth(sessions SessionService, store SessionStore, logger Logger) *Auth {
	return &Auth{
		sessions: sessions,
		store:    store,
		logger:   logger,
	}
}

// Require пропускает только запросы с активной сессией одной из ролей roles
// Без ролей достаточно любой активной сессии
func (a *Auth) Require(roles ...domain.Role) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sessionID := r.Header.Get(SessionHeader)
			if sessionID == "" {
				a.logger.Warn("%s %s - Missing %s header", r.Method, r.URL.Path, SessionHeader)
				handlers.RespondUnauthorized(w, msgSessionRequired)
				return
			}

			session, ok := a.loadSession(w, r, sessionID)
			if !ok {
				return
			}

			if len(roles) > 0 && !session.Role.In(roles...) {
				a.logger.Warn("%s %s - Access denied: session=%s, role=%s", r.Method, r.URL.Path, session.ID, session.Role)
				handlers.RespondForbidden(w, msgAccessDenied)
				return
			}

			next.ServeHTTP(w, r.WithContext(a.bind(r.Context(), session)))
		})
	}
}

// Optional привязывает сессию, если заголовок передан; без заголовка запрос считается гостевым
func (a *Auth) Optional() mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sessionID := r.Header.Get(SessionHeader)
			if sessionID == "" {
				next.ServeHTTP(w, r)
				return
			}

			session, ok := a.loadSession(w, r, sessionID)
			if !ok {
				return
			}

			next.ServeHTTP(w, r.WithContext(a.bind(r.Context(), session)))
		})
	}
}

func (a *Auth) loadSession(w http.ResponseWriter, r *http.Request, sessionID string) (*domain.Session, bool) {
	session, err := a.sessions.Get(r.Context(), sessionID)
	if err != nil {
		if errors.Is(err, sessions.ErrSessionNotFound) {
			a.logger.Warn("%s %s - Session not found: %s", r.Method, r.URL.Path, sessionID)
			handlers.RespondUnauthorized(w, msgSessionExpired)
			return nil, false
		}
		a.logger.Error("%s %s - Failed to load session %s: %v", r.Method, r.URL.Path, sessionID, err)
		handlers.RespondInternalError(w)
		return nil, false
	}

	// Очистка простаивающих сессий отсчитывается от последнего запроса
	if err := a.store.Touch(r.Context(), session.ID); err != nil {
		a.logger.Warn("%s %s - Failed to touch session %s: %v", r.Method, r.URL.Path, session.ID, err)
	}
	return session, true
}

func (a *Auth) bind(ctx context.Context, session *domain.Session) context.Context {
	ctx = ContextWithSession(ctx, session)
	return clinicapi.ContextWithCredentials(ctx, credentials.NewSessionProvider(a.store, session.ID))
}
