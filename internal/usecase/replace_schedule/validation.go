package replace_schedule

import (
	"fmt"

	"github.com/m04kA/SMC-DentalScheduling/internal/domain"
	"github.com/m04kA/SMC-DentalScheduling/internal/schedulemapper"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.DoctorID <= 0 {
		return fmt.Errorf("%w: doctorID must be positive", ErrInvalidInput)
	}

	if req.Display != nil && req.Entries != nil {
		return fmt.Errorf("%w: either display or wire entries must be given, not both", ErrInvalidInput)
	}

	// Пустой срез очищает расписание, отсутствие обоих полей запрещено
	if req.Display == nil && req.Entries == nil {
		return fmt.Errorf("%w: display or wire entries must be given", ErrInvalidInput)
	}

	return nil
}

// toSchedule приводит запрос к проверенному недельному расписанию
func toSchedule(req *Request) (domain.WeeklySchedule, error) {
	entries := req.Entries

	if req.Display != nil {
		converted, err := schedulemapper.DisplayToWire(req.Display)
		if err != nil {
			return nil, err
		}
		entries = converted
	}

	return domain.NewWeeklySchedule(entries)
}
