package schedulemapper

import (
	"fmt"
	"strconv"
	"time"

	"github.com/m04kA/SMC-DentalScheduling/internal/domain"
	"github.com/m04kA/SMC-DentalScheduling/internal/integrations/clinicapi"
)

// Mapper преобразует недельное расписание в события календаря
// Все операции чистые и не хранят состояние между вызовами
type Mapper struct {
	colors domain.EventColors
}

// NewMapper создает маппер с цветами событий доступности
func NewMapper(colors domain.EventColors) *Mapper {
	return &Mapper{colors: colors}
}

// WireToDisplay привязывает окна расписания к опорной дате SentinelDate
func WireToDisplay(entries []domain.WeeklyScheduleEntry) ([]domain.DisplayScheduleEntry, error) {
	result := make([]domain.DisplayScheduleEntry, len(entries))

	for i, entry := range entries {
		start, err := parseHour(domain.FieldStartHour, entry.StartHour)
		if err != nil {
			return nil, err
		}
		end, err := parseHour(domain.FieldEndHour, entry.EndHour)
		if err != nil {
			return nil, err
		}

		result[i] = domain.DisplayScheduleEntry{
			DayOfWeek: strconv.Itoa(entry.DayOfWeek),
			Start:     anchor(start.String()),
			End:       anchor(end.String()),
		}
	}

	return result, nil
}

// DisplayToWire обратное преобразование: номер дня и время суток HH:mm
func DisplayToWire(entries []domain.DisplayScheduleEntry) ([]domain.WeeklyScheduleEntry, error) {
	result := make([]domain.WeeklyScheduleEntry, len(entries))

	for i, entry := range entries {
		day, err := parseDayOfWeek(entry.DayOfWeek)
		if err != nil {
			return nil, err
		}
		start, err := parseDisplayTimestamp(domain.FieldStart, entry.Start)
		if err != nil {
			return nil, err
		}
		end, err := parseDisplayTimestamp(domain.FieldEnd, entry.End)
		if err != nil {
			return nil, err
		}

		result[i] = domain.WeeklyScheduleEntry{
			DayOfWeek: day,
			StartHour: start,
			EndHour:   end,
		}
	}

	return result, nil
}

// ToCalendarEvents размещает окна расписания в текущей неделе (с воскресенья)
// Порядок событий совпадает с порядком записей; записи с одним днем дают пересекающиеся события
func (m *Mapper) ToCalendarEvents(entries []domain.WeeklyScheduleEntry, translator Translator, now time.Time) ([]domain.CalendarEvent, error) {
	weekStart := StartOfWeek(now)
	title := translator.Translate(TitleAvailable)

	events := make([]domain.CalendarEvent, len(entries))

	for i, entry := range entries {
		if entry.DayOfWeek < int(time.Sunday) || entry.DayOfWeek > int(time.Saturday) {
			return nil, domain.NewMalformedInputError(domain.FieldDayOfWeek, strconv.Itoa(entry.DayOfWeek),
				fmt.Errorf("day of week %d is outside 0..6", entry.DayOfWeek))
		}

		start, err := parseHour(domain.FieldStartHour, entry.StartHour)
		if err != nil {
			return nil, err
		}
		end, err := parseHour(domain.FieldEndHour, entry.EndHour)
		if err != nil {
			return nil, err
		}

		date := weekStart.AddDate(0, 0, entry.DayOfWeek)
		startAt, err := start.On(date)
		if err != nil {
			return nil, domain.NewMalformedInputError(domain.FieldStartHour, start.String(), err)
		}
		endAt, err := end.On(date)
		if err != nil {
			return nil, domain.NewMalformedInputError(domain.FieldEndHour, end.String(), err)
		}

		events[i] = domain.CalendarEvent{
			ID:     entry.DayOfWeek,
			Title:  title,
			Start:  startAt,
			End:    endAt,
			Colors: m.colors,
		}
	}

	return events, nil
}

// StartOfWeek возвращает воскресенье 00:00 недели, содержащей now (в часовом поясе now)
func StartOfWeek(now time.Time) time.Time {
	y, m, d := now.Date()
	return time.Date(y, m, d-int(now.Weekday()), 0, 0, 0, 0, now.Location())
}

// APIAppointmentToDomain разворачивает вложенную запись визита в плоскую модель для отображения
func APIAppointmentToDomain(record clinicapi.Appointment) (domain.Appointment, error) {
	date, startTime, err := splitTimestamp(domain.FieldTimeStart, record.DoctorBlock.TimeStart)
	if err != nil {
		return domain.Appointment{}, err
	}

	_, endTime, err := splitTimestamp(domain.FieldTimeEnd, record.DoctorBlock.TimeEnd)
	if err != nil {
		return domain.Appointment{}, err
	}

	serviceNames := make([]string, len(record.Services))
	for i, service := range record.Services {
		serviceNames[i] = service.Name
	}

	return domain.Appointment{
		GUID:           record.AppointmentGUID,
		PatientName:    record.Patient.Name,
		PatientSurname: record.Patient.Surname,
		DoctorID:       record.DoctorBlock.User.ID,
		ServiceNames:   serviceNames,
		Date:           date,
		StartTime:      startTime,
		EndTime:        endTime,
	}, nil
}

// APIAppointmentsToDomain разворачивает список визитов, останавливаясь на первой некорректной записи
func APIAppointmentsToDomain(records []clinicapi.Appointment) ([]domain.Appointment, error) {
	result := make([]domain.Appointment, len(records))
	for i, record := range records {
		appointment, err := APIAppointmentToDomain(record)
		if err != nil {
			return nil, err
		}
		result[i] = appointment
	}
	return result, nil
}

func anchor(hour string) string {
	return domain.SentinelDate + "T" + hour + ":00"
}
