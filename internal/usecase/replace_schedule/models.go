package replace_schedule

import (
	"github.com/m04kA/SMC-DentalScheduling/internal/domain"
)

// Request модель запроса на замену расписания врача
// Заполняется ровно одно из полей: Display (форма редактора) или Entries (формат API)
type Request struct {
	DoctorID int64
	Display  []domain.DisplayScheduleEntry
	Entries  []domain.WeeklyScheduleEntry
}

// Response модель ответа с сохраненным расписанием
type Response struct {
	DoctorID int64
	Entries  []domain.WeeklyScheduleEntry // Отсортированы с воскресенья по субботу
}
