package get_available_blocks

import (
	"time"

	"github.com/m04kA/SMC-DentalScheduling/internal/domain"
)

// Request модель запроса на получение свободных блоков врача
type Request struct {
	DoctorID int64     // ID врача
	Date     time.Time // Дата (без времени)
}

// Response модель ответа со списком свободных блоков
type Response struct {
	DoctorID int64
	Date     time.Time
	Blocks   []domain.TimeBlock // Свободные блоки врача в порядке бэкенда
}
