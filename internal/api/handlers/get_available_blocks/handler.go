package get_available_blocks

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-DentalScheduling/internal/api/handlers"
	getAvailableBlocks "github.com/m04kA/SMC-DentalScheduling/internal/usecase/get_available_blocks"
)

const (
	msgInvalidDoctorID = "некорректный ID врача"
	msgMissingDate     = "дата обязательна"
	msgInvalidDate     = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidRequest  = "некорректные параметры запроса"
)

type Handler struct {
	useCase GetAvailableBlocksUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableBlocksUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/doctors/{doctorId}/available-blocks
// Query params: date (required, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	doctorID, err := handlers.PathID(r, "doctorId")
	if err != nil {
		h.logger.Warn("GET /doctors/{id}/available-blocks - Invalid doctor ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDoctorID)
		return
	}

	date, err := handlers.QueryDate(r, "date")
	if err != nil {
		h.logger.Warn("GET /doctors/{id}/available-blocks - Invalid date: doctor_id=%d, error=%v", doctorID, err)
		if errors.Is(err, handlers.ErrMissingParam) {
			handlers.RespondBadRequest(w, msgMissingDate)
		} else {
			handlers.RespondBadRequest(w, msgInvalidDate)
		}
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailableBlocks.Request{DoctorID: doctorID, Date: date})
	if err != nil {
		if errors.Is(err, getAvailableBlocks.ErrInvalidInput) {
			h.logger.Warn("GET /doctors/{id}/available-blocks - Invalid input: doctor_id=%d, error=%v", doctorID, err)
			handlers.RespondBadRequest(w, msgInvalidRequest)
			return
		}

		status := handlers.RespondUpstreamError(w, err)
		if status >= http.StatusInternalServerError {
			h.logger.Error("GET /doctors/{id}/available-blocks - Failed to get blocks: doctor_id=%d, status=%d, error=%v", doctorID, status, err)
		} else {
			h.logger.Warn("GET /doctors/{id}/available-blocks - Request rejected: doctor_id=%d, status=%d, error=%v", doctorID, status, err)
		}
		return
	}

	h.logger.Info("GET /doctors/{id}/available-blocks - Blocks retrieved successfully: doctor_id=%d, blocks_count=%d",
		doctorID, len(result.Blocks))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
