package cancel_appointment

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-DentalScheduling/internal/api/handlers"
	"github.com/m04kA/SMC-DentalScheduling/internal/domain"
	"github.com/m04kA/SMC-DentalScheduling/internal/integrations/clinicapi"
	"github.com/m04kA/SMC-DentalScheduling/internal/service/appointments/models"
	"github.com/m04kA/SMC-DentalScheduling/pkg/logger"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) Cancel(ctx context.Context, req *models.CancelAppointmentRequest) error {
	return m.Called(ctx, req).Error(0)
}

const cancelBody = `{"appointmentGuid":"5b8f3c3e-2a55-4d0f-9a8c-8f1f2b4c6d7e","reason":"sick"}`

func put(svc *mockService, payload string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	NewHandler(svc, logger.NewNop()).Handle(rec, httptest.NewRequest(http.MethodPut, "/api/v1/appointments/cancel", bytes.NewBufferString(payload)))
	return rec
}

func TestHandle_Success(t *testing.T) {
	svc := &mockService{}
	svc.On("Cancel", mock.Anything, &models.CancelAppointmentRequest{
		AppointmentGUID: "5b8f3c3e-2a55-4d0f-9a8c-8f1f2b4c6d7e",
		Reason:          "sick",
	}).Return(nil)

	rec := put(svc, cancelBody)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
	svc.AssertExpectations(t)
}

func TestHandle_InvalidBody(t *testing.T) {
	svc := &mockService{}
	assert.Equal(t, http.StatusBadRequest, put(svc, "not json").Code)
	svc.AssertNotCalled(t, "Cancel", mock.Anything, mock.Anything)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"reason too long", domain.NewValidationError(domain.FieldReason, domain.CodeTooLong, ""), http.StatusBadRequest},
		{"not found", &clinicapi.TransportError{Err: clinicapi.ErrNotFound}, http.StatusNotFound},
		{"already cancelled", &clinicapi.TransportError{Err: clinicapi.ErrConflict}, http.StatusConflict},
		{"forbidden", &clinicapi.TransportError{Err: clinicapi.ErrForbidden}, http.StatusForbidden},
		{"unauthorized", &clinicapi.TransportError{Err: clinicapi.ErrUnauthorized}, http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockService{}
			svc.On("Cancel", mock.Anything, mock.Anything).Return(tt.err)

			assert.Equal(t, tt.status, put(svc, cancelBody).Code)
		})
	}
}

func TestHandle_ValidationBody(t *testing.T) {
	svc := &mockService{}
	svc.On("Cancel", mock.Anything, mock.Anything).Return(domain.NewValidationError(domain.FieldAppointment, domain.CodeInvalidFormat, "not a uuid"))

	rec := put(svc, `{"appointmentGuid":"42"}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	var resp handlers.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, domain.FieldAppointment, resp.Field)
	assert.Equal(t, domain.CodeInvalidFormat, resp.Code)
}
