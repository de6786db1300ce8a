package get_schedule_events

import (
	"time"

	getScheduleEvents "github.com/m04kA/SMC-DentalScheduling/internal/usecase/get_schedule_events"
)

// ColorResponse цвета события
type ColorResponse struct {
	Primary   string `json:"primary"`
	Secondary string `json:"secondary"`
}

// EventResponse событие календаря
type EventResponse struct {
	ID    int           `json:"id"`
	Title string        `json:"title"`
	Start string        `json:"start"`
	End   string        `json:"end"`
	Color ColorResponse `json:"color"`
}

// ScheduleEntryResponse окно расписания в форме редактора
type ScheduleEntryResponse struct {
	DayOfWeek string `json:"dayOfWeek"`
	Start     string `json:"start"`
	End       string `json:"end"`
}

// ScheduleEventsResponse HTTP response model
type ScheduleEventsResponse struct {
	DoctorID int64                   `json:"doctorId"`
	Events   []EventResponse         `json:"events"`
	Entries  []ScheduleEntryResponse `json:"entries"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getScheduleEvents.Response) *ScheduleEventsResponse {
	events := make([]EventResponse, len(resp.Events))
	for i, event := range resp.Events {
		events[i] = EventResponse{
			ID:    event.ID,
			Title: event.Title,
			Start: event.Start.Format(time.RFC3339),
			End:   event.End.Format(time.RFC3339),
			Color: ColorResponse{
				Primary:   event.Colors.Primary,
				Secondary: event.Colors.Secondary,
			},
		}
	}

	entries := make([]ScheduleEntryResponse, len(resp.Entries))
	for i, entry := range resp.Entries {
		entries[i] = ScheduleEntryResponse{
			DayOfWeek: entry.DayOfWeek,
			Start:     entry.Start,
			End:       entry.End,
		}
	}

	return &ScheduleEventsResponse{
		DoctorID: resp.DoctorID,
		Events:   events,
		Entries:  entries,
	}
}
