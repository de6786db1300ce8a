package types

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalidTimestamp возвращается, когда строка не является ISO-8601 датой со временем
var ErrInvalidTimestamp = errors.New("invalid timestamp format")

// timestampLayouts допустимые форматы меток времени (дата и время разделены "T")
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
}

// ParseTimestamp парсит ISO-8601 метку времени с датой и временем
// Метки без смещения интерпретируются в UTC
func ParseTimestamp(value string) (time.Time, error) {
	if !strings.Contains(value, "T") {
		return time.Time{}, fmt.Errorf("%w: %q has no date/time separator", ErrInvalidTimestamp, value)
	}

	for _, layout := range timestampLayouts {
		if parsed, err := time.Parse(layout, value); err == nil {
			return parsed, nil
		}
	}

	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidTimestamp, value)
}
