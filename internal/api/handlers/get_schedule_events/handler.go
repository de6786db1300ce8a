package get_schedule_events

import (
	"net/http"

	"github.com/m04kA/SMC-DentalScheduling/internal/api/handlers"
	getScheduleEvents "github.com/m04kA/SMC-DentalScheduling/internal/usecase/get_schedule_events"
)

const msgInvalidDoctorID = "некорректный ID врача"

type Handler struct {
	useCase GetScheduleEventsUseCase
	logger  Logger
}

func NewHandler(useCase GetScheduleEventsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/doctors/{doctorId}/schedule/events
// Query params: lang (optional, язык подписей событий)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	doctorID, err := handlers.PathID(r, "doctorId")
	if err != nil {
		h.logger.Warn("GET /doctors/{id}/schedule/events - Invalid doctor ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDoctorID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getScheduleEvents.Request{
		DoctorID: doctorID,
		Language: r.URL.Query().Get("lang"),
	})
	if err != nil {
		status := handlers.RespondUpstreamError(w, err)
		if status >= http.StatusInternalServerError {
			h.logger.Error("GET /doctors/{id}/schedule/events - Failed to get schedule: doctor_id=%d, status=%d, error=%v", doctorID, status, err)
		} else {
			h.logger.Warn("GET /doctors/{id}/schedule/events - Request rejected: doctor_id=%d, status=%d, error=%v", doctorID, status, err)
		}
		return
	}

	h.logger.Info("GET /doctors/{id}/schedule/events - Schedule retrieved successfully: doctor_id=%d, events_count=%d",
		doctorID, len(result.Events))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
