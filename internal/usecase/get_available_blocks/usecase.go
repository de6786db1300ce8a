package get_available_blocks

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-DentalScheduling/internal/domain"
	"github.com/m04kA/SMC-DentalScheduling/internal/integrations/clinicapi"
)

// UseCase use case для получения свободных временных блоков врача
type UseCase struct {
	clinicClient ClinicClient
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(clinicClient ClinicClient, logger Logger) *UseCase {
	return &UseCase{
		clinicClient: clinicClient,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider подменяет источник текущего времени
func (uc *UseCase) WithTimeProvider(provider TimeProvider) *UseCase {
	uc.timeProvider = provider
	return uc
}

// Execute выполняет use case получения свободных блоков
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableBlocks: doctor=%d, date=%s", req.DoctorID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableBlocks: validation failed: %v", err)
		return nil, err
	}

	// 2. На прошедшие даты свободных блоков нет
	if isDateInPast(req.Date, uc.timeProvider.Now()) {
		uc.logger.Info("GetAvailableBlocks: date %s is in the past", req.Date.Format(domain.DateFormat))
		return &Response{DoctorID: req.DoctorID, Date: req.Date, Blocks: []domain.TimeBlock{}}, nil
	}

	// 3. Получаем блоки врача
	apiBlocks, err := uc.clinicClient.GetTimeBlocks(ctx, req.DoctorID, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableBlocks: failed to get time blocks for doctor=%d: %v", req.DoctorID, err)
		return nil, fmt.Errorf("get_available_blocks: get time blocks: %w", err)
	}

	blocks, err := clinicapi.ToDomainTimeBlocks(apiBlocks)
	if err != nil {
		uc.logger.Error("GetAvailableBlocks: backend returned malformed time blocks: %v", err)
		return nil, err
	}

	// 4. Фильтруем: только свободные блоки этого врача на эту дату
	available := keepDate(domain.FilterBookable(blocks, req.DoctorID), req.Date)

	uc.logger.Info("GetAvailableBlocks: %d of %d blocks available for doctor=%d, date=%s",
		len(available), len(blocks), req.DoctorID, req.Date.Format(domain.DateFormat))

	return &Response{
		DoctorID: req.DoctorID,
		Date:     req.Date,
		Blocks:   available,
	}, nil
}
