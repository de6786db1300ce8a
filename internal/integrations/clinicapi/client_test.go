package clinicapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-DentalScheduling/internal/domain"
	"github.com/m04kA/SMC-DentalScheduling/pkg/logger"
)

type memoryCredentials struct {
	mu      sync.Mutex
	current domain.Credentials
	cleared bool
}

func (m *memoryCredentials) GetToken(context.Context) (domain.Credentials, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current, nil
}

func (m *memoryCredentials) SetToken(_ context.Context, credentials domain.Credentials) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.current = credentials
	return nil
}

func (m *memoryCredentials) Clear(context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.current = domain.Credentials{}
	m.cleared = true
	return nil
}

func newTestClient(serverURL string, creds CredentialProvider) *Client {
	return NewClient(serverURL, 5*time.Second, creds, logger.NewNop())
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, v interface{}) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

func TestClient_InjectsBearerToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer access-1", r.Header.Get("Authorization"))
		assert.Equal(t, "/services", r.URL.Path)
		writeJSON(t, w, http.StatusOK, []Service{{ID: 1, Name: "Cleaning", MinTime: 2}})
	}))
	defer server.Close()

	creds := &memoryCredentials{current: domain.Credentials{AccessToken: "access-1", RefreshToken: "refresh-1"}}
	services, err := newTestClient(server.URL, creds).GetServices(context.Background())

	require.NoError(t, err)
	require.Len(t, services, 1)
	assert.Equal(t, 2, services[0].MinTime)
}

func TestClient_RefreshesAndReplaysOnce(t *testing.T) {
	var scheduleCalls, refreshCalls int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/auth/refresh":
			atomic.AddInt32(&refreshCalls, 1)
			var req RefreshRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, "refresh-1", req.RefreshToken)
			assert.Empty(t, r.Header.Get("Authorization"))
			writeJSON(t, w, http.StatusOK, TokenPair{AccessToken: "access-2", RefreshToken: "refresh-2"})
		case "/doctors/7/schedule":
			atomic.AddInt32(&scheduleCalls, 1)
			var body WeeklySchedule
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			require.Len(t, body.DaysSchemes, 1, "request body must be re-sent on replay")

			if r.Header.Get("Authorization") != "Bearer access-2" {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			w.WriteHeader(http.StatusNoContent)
		default:
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
	}))
	defer server.Close()

	creds := &memoryCredentials{current: domain.Credentials{AccessToken: "access-1", RefreshToken: "refresh-1"}}
	client := newTestClient(server.URL, creds)

	err := client.ReplaceDoctorSchedule(context.Background(), 7, WeeklySchedule{
		DaysSchemes: []DayScheme{{DayOfWeek: 1, StartHour: "09:00", EndHour: "17:00"}},
	})

	require.NoError(t, err)
	assert.Equal(t, int32(2), atomic.LoadInt32(&scheduleCalls))
	assert.Equal(t, int32(1), atomic.LoadInt32(&refreshCalls))
	assert.Equal(t, domain.Credentials{AccessToken: "access-2", RefreshToken: "refresh-2"}, creds.current)
}

func TestClient_SecondUnauthorizedSurfaces(t *testing.T) {
	var blockCalls, refreshCalls int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/auth/refresh":
			atomic.AddInt32(&refreshCalls, 1)
			writeJSON(t, w, http.StatusOK, TokenPair{AccessToken: "access-2", RefreshToken: "refresh-2"})
		default:
			atomic.AddInt32(&blockCalls, 1)
			w.WriteHeader(http.StatusUnauthorized)
		}
	}))
	defer server.Close()

	creds := &memoryCredentials{current: domain.Credentials{AccessToken: "access-1", RefreshToken: "refresh-1"}}
	_, err := newTestClient(server.URL, creds).GetTimeBlocks(context.Background(), 3, time.Date(2026, 10, 20, 0, 0, 0, 0, time.UTC))

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Equal(t, int32(2), atomic.LoadInt32(&blockCalls))
	assert.Equal(t, int32(1), atomic.LoadInt32(&refreshCalls))
	assert.True(t, creds.cleared)
}

func TestClient_RefreshFailureClearsCredentials(t *testing.T) {
	var blockCalls int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/auth/refresh" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		atomic.AddInt32(&blockCalls, 1)
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	creds := &memoryCredentials{current: domain.Credentials{AccessToken: "access-1", RefreshToken: "refresh-1"}}
	_, err := newTestClient(server.URL, creds).GetServices(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRefreshFailed)
	assert.Equal(t, int32(1), atomic.LoadInt32(&blockCalls), "no replay after failed refresh")
	assert.True(t, creds.cleared)
}

func TestClient_AnonymousUnauthorizedDoesNotRefresh(t *testing.T) {
	var refreshCalls int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/auth/refresh" {
			atomic.AddInt32(&refreshCalls, 1)
		}
		assert.Empty(t, r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	_, err := newTestClient(server.URL, nil).GetServices(context.Background())

	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Zero(t, atomic.LoadInt32(&refreshCalls))
}

func TestClient_StatusMapping(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message":"doctor not found"}`))
	}))
	defer server.Close()

	_, err := newTestClient(server.URL, nil).GetDoctorSchedule(context.Background(), 99)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)

	var transportErr *TransportError
	require.True(t, errors.As(err, &transportErr))
	assert.Equal(t, http.StatusNotFound, transportErr.StatusCode)
	assert.Equal(t, "get_doctor_schedule", transportErr.Op)
	assert.Contains(t, transportErr.Body, "doctor not found")
}

func TestClient_UnavailableBackend(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	server.Close()

	_, err := newTestClient(server.URL, nil).GetServices(context.Background())
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestClient_Login(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		if req.Password != "secret" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		writeJSON(t, w, http.StatusOK, TokenPair{AccessToken: "a", RefreshToken: "r"})
	}))
	defer server.Close()

	client := newTestClient(server.URL, nil)

	pair, err := client.Login(context.Background(), "doc@clinic.test", "secret")
	require.NoError(t, err)
	assert.Equal(t, "a", pair.AccessToken)

	_, err = client.Login(context.Background(), "doc@clinic.test", "wrong")
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestTimeBlock_ToDomain(t *testing.T) {
	block := TimeBlock{
		DoctorBlockID: 5,
		TimeStart:     "2026-10-20T09:00:00",
		TimeEnd:       "2026-10-20T09:30:00",
		IsAvailable:   true,
		User:          User{ID: 3, Name: "Anna", Surname: "Nowak"},
	}

	converted, err := block.ToDomain()
	require.NoError(t, err)
	assert.Equal(t, int64(3), converted.Doctor.ID)
	assert.Equal(t, 30, converted.DurationMinutes())

	block.TimeEnd = "2026-10-20 09:30"
	_, err = block.ToDomain()

	var malformed *domain.MalformedInputError
	require.True(t, errors.As(err, &malformed))
	assert.Equal(t, domain.FieldTimeEnd, malformed.Field)
	assert.Equal(t, "2026-10-20 09:30", malformed.Value)
}

func TestFromDomainPayload_KeepsBackendStartTime(t *testing.T) {
	tests := []struct {
		name      string
		timeStart string
	}{
		{"without offset", "2026-10-20T09:00:00"},
		{"with offset", "2026-10-20T09:00:00+02:00"},
		{"with fraction", "2026-10-20T09:00:00.000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			block := TimeBlock{DoctorBlockID: 5, TimeStart: tt.timeStart, TimeEnd: "2026-10-20T23:30:00", User: User{ID: 3}}

			converted, err := block.ToDomain()
			require.NoError(t, err)

			req := FromDomainPayload(domain.BookingPayload{
				DoctorID:     3,
				StartTime:    converted.TimeStart,
				StartTimeRaw: converted.RawTimeStart,
				Duration:     1,
				ServicesIDs:  []int64{1},
			})
			assert.Equal(t, tt.timeStart, req.StartTime)
		})
	}
}

func TestClient_ContextCredentialsOverrideDefault(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer session-token", r.Header.Get("Authorization"))
		writeJSON(t, w, http.StatusOK, []Service{})
	}))
	defer server.Close()

	client := newTestClient(server.URL, nil)
	session := &memoryCredentials{current: domain.Credentials{AccessToken: "session-token", RefreshToken: "r"}}

	_, err := client.GetServices(ContextWithCredentials(context.Background(), session))
	require.NoError(t, err)
}
