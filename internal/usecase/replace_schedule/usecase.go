package replace_schedule

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-DentalScheduling/internal/integrations/clinicapi"
)

// UseCase use case для полной замены недельного расписания врача
type UseCase struct {
	clinicClient ClinicClient
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(clinicClient ClinicClient, logger Logger) *UseCase {
	return &UseCase{
		clinicClient: clinicClient,
		logger:       logger,
	}
}

// Execute выполняет use case замены расписания
// Частичных обновлений нет: бэкенду всегда уходит полный набор окон
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ReplaceSchedule: doctor=%d, display=%d, entries=%d", req.DoctorID, len(req.Display), len(req.Entries))

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ReplaceSchedule: validation failed: %v", err)
		return nil, err
	}

	schedule, err := toSchedule(req)
	if err != nil {
		uc.logger.Warn("ReplaceSchedule: schedule rejected for doctor=%d: %v", req.DoctorID, err)
		return nil, err
	}

	if err := uc.clinicClient.ReplaceDoctorSchedule(ctx, req.DoctorID, clinicapi.FromDomainSchedule(schedule)); err != nil {
		uc.logger.Error("ReplaceSchedule: failed to replace schedule for doctor=%d: %v", req.DoctorID, err)
		return nil, fmt.Errorf("replace_schedule: replace schedule: %w", err)
	}

	uc.logger.Info("ReplaceSchedule: doctor=%d now has %d working days", req.DoctorID, len(schedule))

	return &Response{
		DoctorID: req.DoctorID,
		Entries:  schedule.Entries(),
	}, nil
}
