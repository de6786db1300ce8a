package replace_schedule

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-DentalScheduling/internal/api/handlers"
	"github.com/m04kA/SMC-DentalScheduling/internal/domain"
	replaceSchedule "github.com/m04kA/SMC-DentalScheduling/internal/usecase/replace_schedule"
)

const (
	msgInvalidDoctorID    = "некорректный ID врача"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidData        = "укажите расписание в одном формате: display или daysSchemes"
)

type Handler struct {
	useCase ReplaceScheduleUseCase
	logger  Logger
}

func NewHandler(useCase ReplaceScheduleUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PUT /api/v1/doctors/{doctorId}/schedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	doctorID, err := handlers.PathID(r, "doctorId")
	if err != nil {
		h.logger.Warn("PUT /doctors/{id}/schedule - Invalid doctor ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDoctorID)
		return
	}

	var req ReplaceScheduleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /doctors/{id}/schedule - Invalid request body: doctor_id=%d, error=%v", doctorID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(doctorID))
	if err != nil {
		// Некорректные часы здесь прислал клиент, а не бэкенд
		var malformedErr *domain.MalformedInputError
		switch {
		case errors.Is(err, replaceSchedule.ErrInvalidInput):
			h.logger.Warn("PUT /doctors/{id}/schedule - Invalid input: doctor_id=%d, error=%v", doctorID, err)
			handlers.RespondBadRequest(w, msgInvalidData)

		case errors.As(err, &malformedErr):
			h.logger.Warn("PUT /doctors/{id}/schedule - Malformed schedule: doctor_id=%d, error=%v", doctorID, err)
			handlers.RespondMalformedInput(w, http.StatusBadRequest, malformedErr)

		default:
			status := handlers.RespondUpstreamError(w, err)
			if status >= http.StatusInternalServerError {
				h.logger.Error("PUT /doctors/{id}/schedule - Failed to replace schedule: doctor_id=%d, status=%d, error=%v", doctorID, status, err)
			} else {
				h.logger.Warn("PUT /doctors/{id}/schedule - Schedule rejected: doctor_id=%d, status=%d, error=%v", doctorID, status, err)
			}
		}
		return
	}

	h.logger.Info("PUT /doctors/{id}/schedule - Schedule replaced successfully: doctor_id=%d, days=%d",
		doctorID, len(result.Entries))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
