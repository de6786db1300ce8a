package get_doctor_appointments

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-DentalScheduling/internal/api/handlers"
)

const (
	msgInvalidDoctorID = "некорректный ID врача"
	msgMissingDate     = "дата обязательна"
	msgInvalidDate     = "некорректный формат даты, ожидается YYYY-MM-DD"
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

// Handle GET /api/v1/doctors/{doctorId}/appointments
// Query params: date (required, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	doctorID, err := handlers.PathID(r, "doctorId")
	if err != nil {
		h.logger.Warn("GET /doctors/{id}/appointments - Invalid doctor ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDoctorID)
		return
	}

	date, err := handlers.QueryDate(r, "date")
	if err != nil {
		h.logger.Warn("GET /doctors/{id}/appointments - Invalid date: doctor_id=%d, error=%v", doctorID, err)
		if errors.Is(err, handlers.ErrMissingParam) {
			handlers.RespondBadRequest(w, msgMissingDate)
		} else {
			handlers.RespondBadRequest(w, msgInvalidDate)
		}
		return
	}

	result, err := h.service.GetDoctorAppointments(r.Context(), doctorID, date)
	if err != nil {
		status := handlers.RespondUpstreamError(w, err)
		if status >= http.StatusInternalServerError {
			h.logger.Error("GET /doctors/{id}/appointments - Failed to get appointments: doctor_id=%d, status=%d, error=%v", doctorID, status, err)
		} else {
			h.logger.Warn("GET /doctors/{id}/appointments - Request rejected: doctor_id=%d, status=%d, error=%v", doctorID, status, err)
		}
		return
	}

	h.logger.Info("GET /doctors/{id}/appointments - Appointments retrieved successfully: doctor_id=%d, total=%d",
		doctorID, result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}
