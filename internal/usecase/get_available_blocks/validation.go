package get_available_blocks

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-DentalScheduling/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.DoctorID <= 0 {
		return fmt.Errorf("%w: doctorID must be positive", ErrInvalidInput)
	}

	// Проверяем, что дата не является нулевой
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	return nil
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	y1, m1, d1 := date.Date()
	y2, m2, d2 := now.Date()
	dateOnly := time.Date(y1, m1, d1, 0, 0, 0, 0, time.UTC)
	nowOnly := time.Date(y2, m2, d2, 0, 0, 0, 0, time.UTC)
	return dateOnly.Before(nowOnly)
}

// keepDate оставляет только блоки, начинающиеся в указанную дату
func keepDate(blocks []domain.TimeBlock, date time.Time) []domain.TimeBlock {
	result := make([]domain.TimeBlock, 0, len(blocks))
	for _, block := range blocks {
		if block.IsOn(date) {
			result = append(result, block)
		}
	}
	return result
}
