package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-DentalScheduling/internal/domain"
	"github.com/m04kA/SMC-DentalScheduling/internal/integrations/clinicapi"
)

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()
	var body ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return body
}

func TestRespondUpstreamError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"validation", domain.NewValidationError(domain.FieldTime, domain.CodeNotBookable, "taken"), http.StatusBadRequest},
		{"malformed from backend", domain.NewMalformedInputError(domain.FieldTimeStart, "x", nil), http.StatusBadGateway},
		{"unauthorized", &clinicapi.TransportError{Err: clinicapi.ErrUnauthorized}, http.StatusUnauthorized},
		{"refresh failed", &clinicapi.TransportError{Err: fmt.Errorf("%w: boom", clinicapi.ErrRefreshFailed)}, http.StatusUnauthorized},
		{"not found", fmt.Errorf("wrapped: %w", &clinicapi.TransportError{Err: clinicapi.ErrNotFound}), http.StatusNotFound},
		{"conflict", &clinicapi.TransportError{Err: clinicapi.ErrConflict}, http.StatusConflict},
		{"unavailable", &clinicapi.TransportError{Err: clinicapi.ErrUnavailable}, http.StatusBadGateway},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			status := RespondUpstreamError(rec, tt.err)

			assert.Equal(t, tt.status, status)
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}

func TestRespondValidationError_Body(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondUpstreamError(rec, domain.NewValidationError(domain.FieldServices, domain.CodeUnknownService, "unknown"))

	body := decodeError(t, rec)
	assert.Equal(t, ErrorResponse{Message: "unknown", Field: "services", Code: "unknown_service"}, body)
}

func TestRespondMalformedInput_Body(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondMalformedInput(rec, http.StatusBadRequest, domain.NewMalformedInputError(domain.FieldStart, "9am", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeError(t, rec)
	assert.Equal(t, "start", body.Field)
	assert.Equal(t, "9am", body.Value)
}

func TestPathIDAndQueryDate(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/doctors/7/blocks?date=2026-10-20", nil)
	req = mux.SetURLVars(req, map[string]string{"doctorId": "7"})

	id, err := PathID(req, "doctorId")
	require.NoError(t, err)
	assert.Equal(t, int64(7), id)

	date, err := QueryDate(req, "date")
	require.NoError(t, err)
	assert.Equal(t, "2026-10-20", date.Format(domain.DateFormat))

	_, err = QueryDate(req, "missing")
	assert.ErrorIs(t, err, ErrMissingParam)

	bad := mux.SetURLVars(httptest.NewRequest(http.MethodGet, "/?date=20-10-2026", nil), map[string]string{"doctorId": "-1"})
	_, err = PathID(bad, "doctorId")
	assert.ErrorIs(t, err, ErrInvalidParam)
	_, err = QueryDate(bad, "date")
	assert.ErrorIs(t, err, ErrInvalidParam)
}
