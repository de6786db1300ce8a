package schedulemapper

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/m04kA/SMC-DentalScheduling/internal/domain"
	"github.com/m04kA/SMC-DentalScheduling/pkg/types"
)

var errMissingSeparator = errors.New(`no "T" separator between date and time`)

// parseHour проверяет время суток HH:mm
func parseHour(field string, value types.TimeString) (types.TimeString, error) {
	if err := value.Validate(); err != nil {
		return "", domain.NewMalformedInputError(field, value.String(), err)
	}
	return value, nil
}

// parseDisplayTimestamp парсит метку времени редактора расписания и возвращает время суток
func parseDisplayTimestamp(field, value string) (types.TimeString, error) {
	parsed, err := types.ParseTimestamp(value)
	if err != nil {
		return "", domain.NewMalformedInputError(field, value, err)
	}
	return types.NewTimeString(parsed), nil
}

// parseDayOfWeek парсит номер дня недели 0..6
func parseDayOfWeek(value string) (int, error) {
	day, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, domain.NewMalformedInputError(domain.FieldDayOfWeek, value, err)
	}
	if day < int(time.Sunday) || day > int(time.Saturday) {
		return 0, domain.NewMalformedInputError(domain.FieldDayOfWeek, value,
			fmt.Errorf("day of week %d is outside 0..6", day))
	}
	return day, nil
}

// splitTimestamp делит метку времени на дату и время суток по разделителю "T"
// Метка без разделителя или с некорректной частью считается MalformedInputError
func splitTimestamp(field, value string) (string, types.TimeString, error) {
	datePart, clockPart, found := strings.Cut(value, "T")
	if !found {
		return "", "", domain.NewMalformedInputError(field, value, errMissingSeparator)
	}

	if _, err := time.Parse(domain.DateFormat, datePart); err != nil {
		return "", "", domain.NewMalformedInputError(field, value, err)
	}

	if clockPart == "" {
		return "", "", domain.NewMalformedInputError(field, value, errors.New("empty time part"))
	}

	parsed, err := types.ParseTimestamp(value)
	if err != nil {
		return "", "", domain.NewMalformedInputError(field, value, err)
	}

	return datePart, types.NewTimeString(parsed), nil
}
