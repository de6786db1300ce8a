package create_appointment

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-DentalScheduling/internal/api/handlers"
	"github.com/m04kA/SMC-DentalScheduling/internal/api/middleware"
	"github.com/m04kA/SMC-DentalScheduling/internal/domain"
	"github.com/m04kA/SMC-DentalScheduling/internal/integrations/clinicapi"
	buildBooking "github.com/m04kA/SMC-DentalScheduling/internal/usecase/build_booking"
	"github.com/m04kA/SMC-DentalScheduling/pkg/logger"
)

type mockUseCase struct {
	mock.Mock
}

func (m *mockUseCase) Execute(ctx context.Context, req *buildBooking.Request) (*buildBooking.Response, error) {
	args := m.Called(ctx, req)
	if resp, ok := args.Get(0).(*buildBooking.Response); ok {
		return resp, args.Error(1)
	}
	return nil, args.Error(1)
}

const body = `{"doctorId":3,"date":"2026-10-20","serviceIds":[1,2],"timeBlockId":40}`

const guestBody = `{"doctorId":3,"date":"2026-10-20","serviceIds":[1],"timeBlockId":40,
	"guest":{"name":"Jan","surname":"Kowalski","email":"jan@example.com","phone":"+48123456789"}}`

func successResponse() *buildBooking.Response {
	return &buildBooking.Response{
		AppointmentGUID: "5b8f3c3e-2a55-4d0f-9a8c-8f1f2b4c6d7e",
		Payload: domain.BookingPayload{
			DoctorID:     3,
			StartTime:    time.Date(2026, 10, 20, 9, 0, 0, 0, time.UTC),
			StartTimeRaw: "2026-10-20T09:00:00",
			Duration:     3,
			ServicesIDs:  []int64{1, 2},
		},
	}
}

func post(h *Handler, payload string, session *domain.Session) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/appointments", bytes.NewBufferString(payload))
	if session != nil {
		req = req.WithContext(middleware.ContextWithSession(req.Context(), session))
	}

	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_RegisteredPatient(t *testing.T) {
	uc := &mockUseCase{}
	uc.On("Execute", mock.Anything, mock.MatchedBy(func(req *buildBooking.Request) bool {
		return !req.IsGuest() &&
			*req.Draft.SelectedDoctorID == 3 &&
			*req.Draft.SelectedTimeBlockID == 40 &&
			req.Draft.SelectedDate.Equal(time.Date(2026, 10, 20, 0, 0, 0, 0, time.UTC))
	})).Return(successResponse(), nil)

	rec := post(NewHandler(uc, logger.NewNop()), body, &domain.Session{ID: "s", UserID: 11, Role: domain.RolePatient})

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp AppointmentResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "5b8f3c3e-2a55-4d0f-9a8c-8f1f2b4c6d7e", resp.AppointmentGUID)
	assert.Equal(t, 3, resp.Duration)
	assert.Equal(t, 90, resp.DurationMinutes)
	assert.Equal(t, "2026-10-20T09:00:00", resp.StartTime, "start time is echoed as the backend sent it")
	uc.AssertExpectations(t)
}

func TestHandle_Guest(t *testing.T) {
	uc := &mockUseCase{}
	uc.On("Execute", mock.Anything, mock.MatchedBy(func(req *buildBooking.Request) bool {
		return req.IsGuest() && req.Guest.Email == "jan@example.com"
	})).Return(successResponse(), nil)

	rec := post(NewHandler(uc, logger.NewNop()), guestBody, nil)

	assert.Equal(t, http.StatusCreated, rec.Code)
	uc.AssertExpectations(t)
}

func TestHandle_GuestWithoutContact(t *testing.T) {
	uc := &mockUseCase{}
	rec := post(NewHandler(uc, logger.NewNop()), body, nil)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	var resp handlers.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, domain.FieldGuest, resp.Field)
	assert.Equal(t, domain.CodeRequired, resp.Code)
	uc.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

func TestHandle_BadInput(t *testing.T) {
	uc := &mockUseCase{}
	h := NewHandler(uc, logger.NewNop())

	assert.Equal(t, http.StatusBadRequest, post(h, `{"doctorId":`, nil).Code)
	assert.Equal(t, http.StatusBadRequest, post(h, `{"date":"20/10/2026","guest":{}}`, nil).Code)
	uc.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"block taken", domain.NewValidationError(domain.FieldTime, domain.CodeNotBookable, "taken"), http.StatusBadRequest, domain.CodeNotBookable},
		{"unknown service", domain.NewValidationError(domain.FieldServices, domain.CodeUnknownService, ""), http.StatusBadRequest, domain.CodeUnknownService},
		{"backend conflict", &clinicapi.TransportError{Err: clinicapi.ErrConflict}, http.StatusConflict, ""},
		{"session expired", &clinicapi.TransportError{Err: clinicapi.ErrRefreshFailed}, http.StatusUnauthorized, ""},
		{"no guid", buildBooking.ErrInvalidResponse, http.StatusBadGateway, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockUseCase{}
			uc.On("Execute", mock.Anything, mock.Anything).Return(nil, tt.err)

			rec := post(NewHandler(uc, logger.NewNop()), guestBody, nil)

			require.Equal(t, tt.status, rec.Code)
			if tt.code != "" {
				var resp handlers.ErrorResponse
				require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
				assert.Equal(t, tt.code, resp.Code)
			}
		})
	}
}
