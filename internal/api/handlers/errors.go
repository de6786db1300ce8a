package handlers

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-DentalScheduling/internal/domain"
	"github.com/m04kA/SMC-DentalScheduling/internal/integrations/clinicapi"
)

const (
	msgValidationFailed   = "данные не прошли проверку"
	msgMalformedUpstream  = "бэкенд клиники вернул некорректные данные"
	msgMalformedInput     = "некорректный формат данных"
	msgUnauthorized       = "требуется повторный вход"
	msgUpstreamForbidden  = "бэкенд клиники отказал в доступе"
	msgUpstreamNotFound   = "запись не найдена"
	msgUpstreamConflict   = "запись уже изменена, обновите данные"
	msgUpstreamBadRequest = "бэкенд клиники отклонил запрос"
	msgUpstreamFailed     = "бэкенд клиники недоступен"
)

// RespondValidationError 400 с полем и кодом ошибки проверки
func RespondValidationError(w http.ResponseWriter, err *domain.ValidationError) {
	message := err.Message
	if message == "" {
		message = msgValidationFailed
	}
	RespondJSON(w, http.StatusBadRequest, ErrorResponse{Message: message, Field: err.Field, Code: err.Code})
}

// RespondMalformedInput ответ с полем и значением, которое не удалось разобрать
func RespondMalformedInput(w http.ResponseWriter, status int, err *domain.MalformedInputError) {
	message := msgMalformedInput
	if status == http.StatusBadGateway {
		message = msgMalformedUpstream
	}
	RespondJSON(w, status, ErrorResponse{Message: message, Field: err.Field, Value: err.Value})
}

// RespondUpstreamError отображает ошибки проверки и ошибки бэкенда клиники в HTTP статус
// Некорректные данные считаются пришедшими от бэкенда (502)
// Возвращает статус отправленного ответа
func RespondUpstreamError(w http.ResponseWriter, err error) int {
	var validationErr *domain.ValidationError
	if errors.As(err, &validationErr) {
		RespondValidationError(w, validationErr)
		return http.StatusBadRequest
	}

	var malformedErr *domain.MalformedInputError
	if errors.As(err, &malformedErr) {
		RespondMalformedInput(w, http.StatusBadGateway, malformedErr)
		return http.StatusBadGateway
	}

	status, message := upstreamStatus(err)
	if status == http.StatusInternalServerError {
		RespondInternalError(w)
		return status
	}

	RespondError(w, status, message)
	return status
}

func upstreamStatus(err error) (int, string) {
	switch {
	case errors.Is(err, clinicapi.ErrUnauthorized), errors.Is(err, clinicapi.ErrRefreshFailed):
		return http.StatusUnauthorized, msgUnauthorized
	case errors.Is(err, clinicapi.ErrForbidden):
		return http.StatusForbidden, msgUpstreamForbidden
	case errors.Is(err, clinicapi.ErrNotFound):
		return http.StatusNotFound, msgUpstreamNotFound
	case errors.Is(err, clinicapi.ErrConflict):
		return http.StatusConflict, msgUpstreamConflict
	case errors.Is(err, clinicapi.ErrBadRequest):
		return http.StatusBadGateway, msgUpstreamBadRequest
	case errors.Is(err, clinicapi.ErrUnavailable), errors.Is(err, clinicapi.ErrInvalidResponse):
		return http.StatusBadGateway, msgUpstreamFailed
	default:
		return http.StatusInternalServerError, ""
	}
}
