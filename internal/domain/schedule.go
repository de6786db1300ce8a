package domain

import (
	"fmt"
	"sort"
	"time"

	"github.com/m04kA/SMC-DentalScheduling/pkg/types"
)

// WeeklyScheduleEntry one recurring weekly availability window (wire form).
// DayOfWeek: 0 = Sunday ... 6 = Saturday.
type WeeklyScheduleEntry struct {
	DayOfWeek int
	StartHour types.TimeString
	EndHour   types.TimeString
}

// DisplayScheduleEntry the same window anchored to SentinelDate for the schedule editor.
// DayOfWeek is kept as text because editors submit it as a form value.
type DisplayScheduleEntry struct {
	DayOfWeek string
	Start     string
	End       string
}

// EventColors display colors of a calendar event
type EventColors struct {
	Primary   string
	Secondary string
}

// CalendarEvent renderable calendar event for one weekly window
// ID equals the day of week of the source entry
type CalendarEvent struct {
	ID     int
	Title  string
	Start  time.Time
	End    time.Time
	Colors EventColors
}

// DayWindow working window of a single day
type DayWindow struct {
	StartHour types.TimeString
	EndHour   types.TimeString
}

// WeeklySchedule doctor's weekly availability keyed by weekday.
// At most one window per day; the whole set is replaced on write.
type WeeklySchedule map[time.Weekday]DayWindow

// NewWeeklySchedule builds a schedule from wire entries.
// Rejects days outside 0..6, duplicate days, malformed hours and empty ranges.
func NewWeeklySchedule(entries []WeeklyScheduleEntry) (WeeklySchedule, error) {
	schedule := make(WeeklySchedule, len(entries))

	for _, entry := range entries {
		if entry.DayOfWeek < int(time.Sunday) || entry.DayOfWeek > int(time.Saturday) {
			return nil, NewValidationError(FieldDayOfWeek, CodeOutOfRange,
				fmt.Sprintf("day of week %d is outside 0..6", entry.DayOfWeek))
		}

		day := time.Weekday(entry.DayOfWeek)
		if _, exists := schedule[day]; exists {
			return nil, NewValidationError(FieldDayOfWeek, CodeDuplicateDay,
				fmt.Sprintf("%s has more than one window", day))
		}

		if err := entry.StartHour.Validate(); err != nil {
			return nil, NewMalformedInputError(FieldStartHour, entry.StartHour.String(), err)
		}
		if err := entry.EndHour.Validate(); err != nil {
			return nil, NewMalformedInputError(FieldEndHour, entry.EndHour.String(), err)
		}
		if !entry.StartHour.IsBefore(entry.EndHour) {
			return nil, NewValidationError(FieldEndHour, CodeInvalidRange,
				fmt.Sprintf("%s: start %s must be before end %s", day, entry.StartHour, entry.EndHour))
		}

		schedule[day] = DayWindow{StartHour: entry.StartHour, EndHour: entry.EndHour}
	}

	return schedule, nil
}

// Entries returns wire entries ordered Sunday..Saturday
func (s WeeklySchedule) Entries() []WeeklyScheduleEntry {
	days := make([]int, 0, len(s))
	for day := range s {
		days = append(days, int(day))
	}
	sort.Ints(days)

	entries := make([]WeeklyScheduleEntry, 0, len(days))
	for _, day := range days {
		window := s[time.Weekday(day)]
		entries = append(entries, WeeklyScheduleEntry{
			DayOfWeek: day,
			StartHour: window.StartHour,
			EndHour:   window.EndHour,
		})
	}
	return entries
}
