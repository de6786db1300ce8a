package get_available_blocks

import (
	"time"

	"github.com/m04kA/SMC-DentalScheduling/internal/domain"
	getAvailableBlocks "github.com/m04kA/SMC-DentalScheduling/internal/usecase/get_available_blocks"
)

// DoctorResponse врач, которому принадлежит блок
type DoctorResponse struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Surname string `json:"surname"`
}

// TimeBlockResponse свободный временной блок
type TimeBlockResponse struct {
	DoctorBlockID   int64          `json:"doctorBlockId"`
	TimeStart       string         `json:"timeStart"`
	TimeEnd         string         `json:"timeEnd"`
	StartTime       string         `json:"startTime"` // HH:MM
	DurationMinutes int            `json:"durationMinutes"`
	Doctor          DoctorResponse `json:"doctor"`
}

// AvailableBlocksResponse HTTP response model
type AvailableBlocksResponse struct {
	DoctorID int64               `json:"doctorId"`
	Date     string              `json:"date"`
	Blocks   []TimeBlockResponse `json:"blocks"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableBlocks.Response) *AvailableBlocksResponse {
	blocks := make([]TimeBlockResponse, len(resp.Blocks))
	for i, block := range resp.Blocks {
		blocks[i] = TimeBlockResponse{
			DoctorBlockID:   block.DoctorBlockID,
			TimeStart:       block.TimeStart.Format(time.RFC3339),
			TimeEnd:         block.TimeEnd.Format(time.RFC3339),
			StartTime:       block.TimeStart.Format(domain.TimeFormat),
			DurationMinutes: block.DurationMinutes(),
			Doctor: DoctorResponse{
				ID:      block.Doctor.ID,
				Name:    block.Doctor.Name,
				Surname: block.Doctor.Surname,
			},
		}
	}

	return &AvailableBlocksResponse{
		DoctorID: resp.DoctorID,
		Date:     resp.Date.Format(domain.DateFormat),
		Blocks:   blocks,
	}
}
