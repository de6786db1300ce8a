package create_appointment

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-DentalScheduling/internal/api/handlers"
	"github.com/m04kA/SMC-DentalScheduling/internal/api/middleware"
	"github.com/m04kA/SMC-DentalScheduling/internal/domain"
	buildBooking "github.com/m04kA/SMC-DentalScheduling/internal/usecase/build_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты визита, ожидается YYYY-MM-DD"
	msgGuestRequired      = "для записи без входа укажите контакты"
	msgInvalidResponse    = "бэкенд клиники не вернул идентификатор визита"
)

type Handler struct {
	useCase BuildBookingUseCase
	logger  Logger
}

func NewHandler(useCase BuildBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments
// С сессией визит создается от имени пациента, без сессии нужны контакты гостя
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	draft, err := req.ToDraft()
	if err != nil {
		h.logger.Warn("POST /appointments - Invalid date %q: %v", req.Date, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	useCaseReq := &buildBooking.Request{Draft: draft}

	session, registered := middleware.SessionFromContext(r.Context())
	if !registered {
		if req.Guest == nil {
			h.logger.Warn("POST /appointments - Guest booking without contact data")
			handlers.RespondValidationError(w, domain.NewValidationError(domain.FieldGuest, domain.CodeRequired, msgGuestRequired))
			return
		}
		useCaseReq.Guest = req.Guest.ToGuestContact()
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		if errors.Is(err, buildBooking.ErrInvalidResponse) {
			h.logger.Error("POST /appointments - Backend returned no appointment id: error=%v", err)
			handlers.RespondError(w, http.StatusBadGateway, msgInvalidResponse)
			return
		}

		status := handlers.RespondUpstreamError(w, err)
		if status >= http.StatusInternalServerError {
			h.logger.Error("POST /appointments - Failed to create appointment: guest=%t, status=%d, error=%v", !registered, status, err)
		} else {
			h.logger.Warn("POST /appointments - Appointment rejected: guest=%t, status=%d, error=%v", !registered, status, err)
		}
		return
	}

	if registered {
		h.logger.Info("POST /appointments - Appointment created successfully: guid=%s, user_id=%d",
			result.AppointmentGUID, session.UserID)
	} else {
		h.logger.Info("POST /appointments - Guest appointment created successfully: guid=%s", result.AppointmentGUID)
	}
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
