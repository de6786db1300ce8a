package get_schedule_events

import (
	"github.com/m04kA/SMC-DentalScheduling/internal/domain"
)

// Request модель запроса на получение событий календаря врача
type Request struct {
	DoctorID int64  // ID врача
	Language string // Язык подписей (пусто - язык по умолчанию)
}

// Response модель ответа с расписанием врача
type Response struct {
	DoctorID int64
	Events   []domain.CalendarEvent        // События текущей недели
	Entries  []domain.DisplayScheduleEntry // Расписание в форме редактора
}
