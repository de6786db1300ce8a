package cancel_appointment

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-DentalScheduling/internal/api/handlers"
	"github.com/m04kA/SMC-DentalScheduling/internal/integrations/clinicapi"
	"github.com/m04kA/SMC-DentalScheduling/internal/service/appointments/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgNotFound           = "визит не найден"
	msgCannotCancel       = "визит не может быть отменен"
)

type Handler struct {
	service AppointmentService
	logger  Logger
}

func NewHandler(service AppointmentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/appointments/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CancelAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /appointments/cancel - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.service.Cancel(r.Context(), &req); err != nil {
		switch {
		case errors.Is(err, clinicapi.ErrNotFound):
			h.logger.Warn("PUT /appointments/cancel - Appointment not found: guid=%s", req.AppointmentGUID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, clinicapi.ErrConflict):
			h.logger.Warn("PUT /appointments/cancel - Cannot cancel: guid=%s", req.AppointmentGUID)
			handlers.RespondError(w, http.StatusConflict, msgCannotCancel)

		default:
			status := handlers.RespondUpstreamError(w, err)
			if status >= http.StatusInternalServerError {
				h.logger.Error("PUT /appointments/cancel - Failed to cancel appointment: guid=%s, status=%d, error=%v",
					req.AppointmentGUID, status, err)
			} else {
				h.logger.Warn("PUT /appointments/cancel - Cancellation rejected: guid=%s, status=%d, error=%v",
					req.AppointmentGUID, status, err)
			}
		}
		return
	}

	h.logger.Info("PUT /appointments/cancel - Appointment cancelled successfully: guid=%s", req.AppointmentGUID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
