package create_appointment

import (
	"time"

	"github.com/m04kA/SMC-DentalScheduling/internal/domain"
	buildBooking "github.com/m04kA/SMC-DentalScheduling/internal/usecase/build_booking"
)

// GuestRequest контакты гостя
type GuestRequest struct {
	Name    string `json:"name"`
	Surname string `json:"surname"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
}

// CreateAppointmentRequest HTTP request model
type CreateAppointmentRequest struct {
	DoctorID    *int64        `json:"doctorId"`
	Date        string        `json:"date"` // "2026-10-20"
	ServiceIDs  []int64       `json:"serviceIds"`
	TimeBlockID *int64        `json:"timeBlockId"`
	Guest       *GuestRequest `json:"guest,omitempty"`
}

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	AppointmentGUID string  `json:"appointmentGuid"`
	DoctorID        int64   `json:"doctorId"`
	StartTime       string  `json:"startTime"`
	Duration        int     `json:"duration"` // в единицах по 30 минут
	DurationMinutes int     `json:"durationMinutes"`
	ServiceIDs      []int64 `json:"serviceIds"`
}

// ToDraft конвертирует HTTP запрос в черновик бронирования
// Пустая дата остается нулевой, ее отсутствие сообщит проверка черновика
func (r *CreateAppointmentRequest) ToDraft() (domain.AppointmentDraft, error) {
	draft := domain.AppointmentDraft{
		SelectedDoctorID:    r.DoctorID,
		SelectedServiceIDs:  r.ServiceIDs,
		SelectedTimeBlockID: r.TimeBlockID,
	}

	if r.Date != "" {
		date, err := time.Parse(domain.DateFormat, r.Date)
		if err != nil {
			return domain.AppointmentDraft{}, err
		}
		draft.SelectedDate = date
	}

	return draft, nil
}

// ToGuestContact конвертирует контакты гостя
func (g *GuestRequest) ToGuestContact() *domain.GuestContact {
	return &domain.GuestContact{
		Name:    g.Name,
		Surname: g.Surname,
		Email:   g.Email,
		Phone:   g.Phone,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *buildBooking.Response) *AppointmentResponse {
	return &AppointmentResponse{
		AppointmentGUID: resp.AppointmentGUID,
		DoctorID:        resp.Payload.DoctorID,
		StartTime:       resp.Payload.StartTimeString(),
		Duration:        resp.Payload.Duration,
		DurationMinutes: resp.Payload.DurationMinutes(),
		ServiceIDs:      resp.Payload.ServicesIDs,
	}
}
