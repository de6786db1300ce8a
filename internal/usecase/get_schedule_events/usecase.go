package get_schedule_events

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-DentalScheduling/internal/schedulemapper"
)

// UseCase use case для отображения недельного расписания врача в календаре
type UseCase struct {
	clinicClient ClinicClient
	mapper       *schedulemapper.Mapper
	translations *schedulemapper.Translations
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	clinicClient ClinicClient,
	mapper *schedulemapper.Mapper,
	translations *schedulemapper.Translations,
	timeProvider TimeProvider,
	logger Logger,
) *UseCase {
	if timeProvider == nil {
		timeProvider = &RealTimeProvider{}
	}

	return &UseCase{
		clinicClient: clinicClient,
		mapper:       mapper,
		translations: translations,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Execute выполняет use case получения событий календаря
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetScheduleEvents: doctor=%d, language=%q", req.DoctorID, req.Language)

	if req.DoctorID <= 0 {
		uc.logger.Warn("GetScheduleEvents: invalid doctor id=%d", req.DoctorID)
		return nil, fmt.Errorf("%w: doctorID must be positive", ErrInvalidInput)
	}

	schedule, err := uc.clinicClient.GetDoctorSchedule(ctx, req.DoctorID)
	if err != nil {
		uc.logger.Error("GetScheduleEvents: failed to get schedule for doctor=%d: %v", req.DoctorID, err)
		return nil, fmt.Errorf("get_schedule_events: get schedule: %w", err)
	}

	entries := schedule.ToDomain()

	events, err := uc.mapper.ToCalendarEvents(entries, uc.translations.For(req.Language), uc.timeProvider.Now())
	if err != nil {
		uc.logger.Error("GetScheduleEvents: backend returned malformed schedule for doctor=%d: %v", req.DoctorID, err)
		return nil, err
	}

	display, err := schedulemapper.WireToDisplay(entries)
	if err != nil {
		uc.logger.Error("GetScheduleEvents: failed to build display schedule for doctor=%d: %v", req.DoctorID, err)
		return nil, err
	}

	uc.logger.Info("GetScheduleEvents: doctor=%d has %d weekly windows", req.DoctorID, len(events))

	return &Response{
		DoctorID: req.DoctorID,
		Events:   events,
		Entries:  display,
	}, nil
}
