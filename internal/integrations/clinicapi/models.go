package clinicapi

import (
	"fmt"

	"github.com/m04kA/SMC-DentalScheduling/internal/domain"
	"github.com/m04kA/SMC-DentalScheduling/pkg/types"
)

// LoginRequest тело запроса POST /auth/login
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RefreshRequest тело запроса POST /auth/refresh
type RefreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// TokenPair пара токенов от бэкенда
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// ToDomain конвертирует пару токенов в доменную модель
func (t TokenPair) ToDomain() domain.Credentials {
	return domain.Credentials{AccessToken: t.AccessToken, RefreshToken: t.RefreshToken}
}

// WeeklySchedule недельное расписание врача
type WeeklySchedule struct {
	DaysSchemes []DayScheme `json:"daysSchemes"`
}

// DayScheme окно доступности в один день недели
type DayScheme struct {
	DayOfWeek int    `json:"dayOfWeek"` // 0 = воскресенье
	StartHour string `json:"startHour"` // "HH:mm"
	EndHour   string `json:"endHour"`   // "HH:mm"
}

// ToDomain конвертирует расписание в записи доменной модели (порядок сохраняется)
func (s WeeklySchedule) ToDomain() []domain.WeeklyScheduleEntry {
	entries := make([]domain.WeeklyScheduleEntry, len(s.DaysSchemes))
	for i, scheme := range s.DaysSchemes {
		entries[i] = domain.WeeklyScheduleEntry{
			DayOfWeek: scheme.DayOfWeek,
			StartHour: types.TimeString(scheme.StartHour),
			EndHour:   types.TimeString(scheme.EndHour),
		}
	}
	return entries
}

// FromDomainSchedule формирует тело запроса замены расписания
func FromDomainSchedule(schedule domain.WeeklySchedule) WeeklySchedule {
	entries := schedule.Entries()
	schemes := make([]DayScheme, len(entries))
	for i, entry := range entries {
		schemes[i] = DayScheme{
			DayOfWeek: entry.DayOfWeek,
			StartHour: entry.StartHour.String(),
			EndHour:   entry.EndHour.String(),
		}
	}
	return WeeklySchedule{DaysSchemes: schemes}
}

// User пользователь (врач или пациент)
type User struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Surname string `json:"surname"`
}

// TimeBlock временной блок врача
type TimeBlock struct {
	DoctorBlockID int64  `json:"doctorBlockId"`
	TimeStart     string `json:"timeStart"`
	TimeEnd       string `json:"timeEnd"`
	IsAvailable   bool   `json:"isAvailable"`
	User          User   `json:"user"`
}

// ToDomain парсит метки времени блока
// Возвращает domain.MalformedInputError для некорректных меток или пустого интервала
func (b TimeBlock) ToDomain() (domain.TimeBlock, error) {
	start, err := types.ParseTimestamp(b.TimeStart)
	if err != nil {
		return domain.TimeBlock{}, domain.NewMalformedInputError(domain.FieldTimeStart, b.TimeStart, err)
	}

	end, err := types.ParseTimestamp(b.TimeEnd)
	if err != nil {
		return domain.TimeBlock{}, domain.NewMalformedInputError(domain.FieldTimeEnd, b.TimeEnd, err)
	}

	if !start.Before(end) {
		return domain.TimeBlock{}, domain.NewMalformedInputError(domain.FieldTimeEnd, b.TimeEnd,
			fmt.Errorf("block %d ends before it starts", b.DoctorBlockID))
	}

	return domain.TimeBlock{
		DoctorBlockID: b.DoctorBlockID,
		TimeStart:     start,
		RawTimeStart:  b.TimeStart,
		TimeEnd:       end,
		IsAvailable:   b.IsAvailable,
		Doctor: domain.DoctorRef{
			ID:      b.User.ID,
			Name:    b.User.Name,
			Surname: b.User.Surname,
		},
	}, nil
}

// ToDomainTimeBlocks конвертирует список блоков, останавливаясь на первой ошибке
func ToDomainTimeBlocks(blocks []TimeBlock) ([]domain.TimeBlock, error) {
	result := make([]domain.TimeBlock, len(blocks))
	for i, block := range blocks {
		converted, err := block.ToDomain()
		if err != nil {
			return nil, err
		}
		result[i] = converted
	}
	return result, nil
}

// Service услуга из каталога клиники
type Service struct {
	ID      int64    `json:"id"`
	Name    string   `json:"name"`
	MinTime int      `json:"minTime"` // в единицах по 30 минут
	Price   *float64 `json:"price,omitempty"`
}

// ToDomain конвертирует услугу в доменную модель
func (s Service) ToDomain() domain.Service {
	return domain.Service{ID: s.ID, Name: s.Name, MinTime: s.MinTime, Price: s.Price}
}

// ToDomainServices конвертирует каталог услуг
func ToDomainServices(services []Service) []domain.Service {
	result := make([]domain.Service, len(services))
	for i, service := range services {
		result[i] = service.ToDomain()
	}
	return result
}

// BookingRequest тело запроса POST /appointments
type BookingRequest struct {
	DoctorID    int64   `json:"doctorId"`
	StartTime   string  `json:"startTime"`
	Duration    int     `json:"duration"`
	ServicesIDs []int64 `json:"servicesIds"`
}

// FromDomainPayload формирует запрос бронирования из собранного payload
func FromDomainPayload(payload domain.BookingPayload) BookingRequest {
	return BookingRequest{
		DoctorID:    payload.DoctorID,
		StartTime:   payload.StartTimeString(),
		Duration:    payload.Duration,
		ServicesIDs: payload.ServicesIDs,
	}
}

// GuestBookingRequest тело запроса POST /appointments/guest
type GuestBookingRequest struct {
	BookingRequest
	Name        string `json:"name"`
	Surname     string `json:"surname"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
}

// CancelRequest тело запроса PUT /appointments/cancel
type CancelRequest struct {
	AppointmentGUID string `json:"appointmentGuid"`
	Reason          string `json:"reason"`
}

// Appointment запись о визите в формате API (вложенная)
type Appointment struct {
	AppointmentGUID string    `json:"appointmentGuid"`
	Patient         User      `json:"patient"`
	DoctorBlock     TimeBlock `json:"doctorBlock"`
	Services        []Service `json:"services"`
}
