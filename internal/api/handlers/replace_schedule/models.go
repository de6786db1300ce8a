package replace_schedule

import (
	"github.com/m04kA/SMC-DentalScheduling/internal/domain"
	replaceSchedule "github.com/m04kA/SMC-DentalScheduling/internal/usecase/replace_schedule"
	"github.com/m04kA/SMC-DentalScheduling/pkg/types"
)

// DisplayEntryRequest окно расписания из редактора
type DisplayEntryRequest struct {
	DayOfWeek string `json:"dayOfWeek"`
	Start     string `json:"start"` // "1970-01-01T09:00:00"
	End       string `json:"end"`
}

// DaySchemeRequest окно расписания в формате API клиники
type DaySchemeRequest struct {
	DayOfWeek int    `json:"dayOfWeek"`
	StartHour string `json:"startHour"` // "09:00"
	EndHour   string `json:"endHour"`
}

// ReplaceScheduleRequest HTTP request model
// Передается ровно одно поле: display или daysSchemes
type ReplaceScheduleRequest struct {
	Display     []DisplayEntryRequest `json:"display,omitempty"`
	DaysSchemes []DaySchemeRequest    `json:"daysSchemes,omitempty"`
}

// DaySchemeResponse сохраненное окно расписания
type DaySchemeResponse struct {
	DayOfWeek int    `json:"dayOfWeek"`
	StartHour string `json:"startHour"`
	EndHour   string `json:"endHour"`
}

// ScheduleResponse HTTP response model
type ScheduleResponse struct {
	DoctorID    int64               `json:"doctorId"`
	DaysSchemes []DaySchemeResponse `json:"daysSchemes"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *ReplaceScheduleRequest) ToUseCaseRequest(doctorID int64) *replaceSchedule.Request {
	req := &replaceSchedule.Request{DoctorID: doctorID}

	if r.Display != nil {
		req.Display = make([]domain.DisplayScheduleEntry, len(r.Display))
		for i, entry := range r.Display {
			req.Display[i] = domain.DisplayScheduleEntry{
				DayOfWeek: entry.DayOfWeek,
				Start:     entry.Start,
				End:       entry.End,
			}
		}
	}

	if r.DaysSchemes != nil {
		req.Entries = make([]domain.WeeklyScheduleEntry, len(r.DaysSchemes))
		for i, scheme := range r.DaysSchemes {
			req.Entries[i] = domain.WeeklyScheduleEntry{
				DayOfWeek: scheme.DayOfWeek,
				StartHour: types.TimeString(scheme.StartHour),
				EndHour:   types.TimeString(scheme.EndHour),
			}
		}
	}

	return req
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *replaceSchedule.Response) *ScheduleResponse {
	schemes := make([]DaySchemeResponse, len(resp.Entries))
	for i, entry := range resp.Entries {
		schemes[i] = DaySchemeResponse{
			DayOfWeek: entry.DayOfWeek,
			StartHour: entry.StartHour.String(),
			EndHour:   entry.EndHour.String(),
		}
	}

	return &ScheduleResponse{
		DoctorID:    resp.DoctorID,
		DaysSchemes: schemes,
	}
}
