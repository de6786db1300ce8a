package clinicapi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/m04kA/SMC-DentalScheduling/internal/domain"
)

// Login выполняет вход по email и паролю и возвращает пару токенов
func (c *Client) Login(ctx context.Context, email, password string) (*TokenPair, error) {
	var pair TokenPair
	if err := c.doPublic(ctx, "login", http.MethodPost, "/auth/login",
		LoginRequest{Email: email, Password: password}, &pair); err != nil {
		return nil, err
	}

	if pair.AccessToken == "" || pair.RefreshToken == "" {
		return nil, &TransportError{Op: "login", StatusCode: http.StatusOK, Err: fmt.Errorf("%w: empty token pair", ErrInvalidResponse)}
	}

	return &pair, nil
}

// GetDoctorSchedule получает недельное расписание врача
func (c *Client) GetDoctorSchedule(ctx context.Context, doctorID int64) (*WeeklySchedule, error) {
	var schedule WeeklySchedule
	path := fmt.Sprintf("/doctors/%d/schedule", doctorID)

	if err := c.do(ctx, "get_doctor_schedule", http.MethodGet, path, nil, nil, &schedule); err != nil {
		return nil, err
	}

	return &schedule, nil
}

// ReplaceDoctorSchedule полностью заменяет недельное расписание врача
func (c *Client) ReplaceDoctorSchedule(ctx context.Context, doctorID int64, schedule WeeklySchedule) error {
	path := fmt.Sprintf("/doctors/%d/schedule", doctorID)
	return c.do(ctx, "replace_doctor_schedule", http.MethodPut, path, nil, schedule, nil)
}

// GetTimeBlocks получает временные блоки врача на дату
func (c *Client) GetTimeBlocks(ctx context.Context, doctorID int64, date time.Time) ([]TimeBlock, error) {
	var blocks []TimeBlock
	path := fmt.Sprintf("/doctors/%d/blocks", doctorID)
	query := url.Values{"date": []string{date.Format(domain.DateFormat)}}

	if err := c.do(ctx, "get_time_blocks", http.MethodGet, path, query, nil, &blocks); err != nil {
		return nil, err
	}

	return blocks, nil
}

// GetServices получает каталог услуг клиники
func (c *Client) GetServices(ctx context.Context) ([]Service, error) {
	var services []Service

	if err := c.do(ctx, "get_services", http.MethodGet, "/services", nil, nil, &services); err != nil {
		return nil, err
	}

	return services, nil
}

// CreateAppointment бронирует визит от имени авторизованного пользователя
func (c *Client) CreateAppointment(ctx context.Context, req BookingRequest) (*Appointment, error) {
	var appointment Appointment

	if err := c.do(ctx, "create_appointment", http.MethodPost, "/appointments", nil, req, &appointment); err != nil {
		return nil, err
	}

	return &appointment, nil
}

// CreateGuestAppointment бронирует визит без учетной записи
func (c *Client) CreateGuestAppointment(ctx context.Context, req GuestBookingRequest) (*Appointment, error) {
	var appointment Appointment

	if err := c.do(ctx, "create_guest_appointment", http.MethodPost, "/appointments/guest", nil, req, &appointment); err != nil {
		return nil, err
	}

	return &appointment, nil
}

// CancelAppointment отменяет визит
func (c *Client) CancelAppointment(ctx context.Context, req CancelRequest) error {
	return c.do(ctx, "cancel_appointment", http.MethodPut, "/appointments/cancel", nil, req, nil)
}

// GetDoctorAppointments получает визиты врача на дату
func (c *Client) GetDoctorAppointments(ctx context.Context, doctorID int64, date time.Time) ([]Appointment, error) {
	var appointments []Appointment
	path := fmt.Sprintf("/doctors/%d/appointments", doctorID)
	query := url.Values{"date": []string{date.Format(domain.DateFormat)}}

	if err := c.do(ctx, "get_doctor_appointments", http.MethodGet, path, query, nil, &appointments); err != nil {
		return nil, err
	}

	return appointments, nil
}
