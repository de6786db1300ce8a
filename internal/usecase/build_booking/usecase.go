package build_booking

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-DentalScheduling/internal/domain"
	"github.com/m04kA/SMC-DentalScheduling/internal/integrations/clinicapi"
)

// UseCase use case для сборки и отправки запроса на бронирование визита
type UseCase struct {
	clinicClient ClinicClient
	catalog      ServiceCatalog
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(clinicClient ClinicClient, catalog ServiceCatalog, logger Logger) *UseCase {
	return &UseCase{
		clinicClient: clinicClient,
		catalog:      catalog,
		logger:       logger,
	}
}

// BuildBookingPayload собирает тело запроса бронирования из черновика
// Длительность равна сумме minTime выбранных услуг и остается в единицах (не в минутах)
func BuildBookingPayload(
	draft domain.AppointmentDraft,
	services []domain.Service,
	blocks []domain.TimeBlock,
) (domain.BookingPayload, error) {
	if err := validateDraft(draft); err != nil {
		return domain.BookingPayload{}, err
	}

	duration, err := sumDuration(draft.SelectedServiceIDs, services)
	if err != nil {
		return domain.BookingPayload{}, err
	}

	block, err := resolveBlock(draft, blocks)
	if err != nil {
		return domain.BookingPayload{}, err
	}

	serviceIDs := make([]int64, len(draft.SelectedServiceIDs))
	copy(serviceIDs, draft.SelectedServiceIDs)

	return domain.BookingPayload{
		DoctorID:     *draft.SelectedDoctorID,
		StartTime:    block.TimeStart,
		StartTimeRaw: block.RawTimeStart,
		Duration:     duration,
		ServicesIDs:  serviceIDs,
	}, nil
}

// Execute выполняет use case бронирования
// Ошибки транспорта возвращаются как есть, повторов здесь нет
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация черновика до обращения к бэкенду
	if err := validateDraft(req.Draft); err != nil {
		uc.logger.Warn("BuildBooking: validation failed: %v", err)
		return nil, err
	}

	if req.IsGuest() {
		if err := validateGuest(req.Guest); err != nil {
			uc.logger.Warn("BuildBooking: guest validation failed: %v", err)
			return nil, err
		}
	}

	doctorID := *req.Draft.SelectedDoctorID
	date := req.Draft.SelectedDate

	uc.logger.Info("BuildBooking: doctor=%d, date=%s, block=%d, services=%v, guest=%t",
		doctorID, date.Format(domain.DateFormat), *req.Draft.SelectedTimeBlockID, req.Draft.SelectedServiceIDs, req.IsGuest())

	// 2. Каталог услуг
	services, err := uc.catalog.GetServices(ctx)
	if err != nil {
		uc.logger.Error("BuildBooking: failed to get services: %v", err)
		return nil, fmt.Errorf("build_booking: get services: %w", err)
	}

	// 3. Блоки врача на выбранную дату
	apiBlocks, err := uc.clinicClient.GetTimeBlocks(ctx, doctorID, date)
	if err != nil {
		uc.logger.Error("BuildBooking: failed to get time blocks for doctor=%d: %v", doctorID, err)
		return nil, fmt.Errorf("build_booking: get time blocks: %w", err)
	}

	blocks, err := clinicapi.ToDomainTimeBlocks(apiBlocks)
	if err != nil {
		uc.logger.Error("BuildBooking: backend returned malformed time blocks: %v", err)
		return nil, err
	}

	// 4. Сборка payload
	payload, err := BuildBookingPayload(req.Draft, services, blocks)
	if err != nil {
		uc.logger.Warn("BuildBooking: draft rejected: %v", err)
		return nil, err
	}

	// 5. Отправка
	bookingReq := clinicapi.FromDomainPayload(payload)

	var appointment *clinicapi.Appointment
	if req.IsGuest() {
		appointment, err = uc.clinicClient.CreateGuestAppointment(ctx, clinicapi.GuestBookingRequest{
			BookingRequest: bookingReq,
			Name:           req.Guest.Name,
			Surname:        req.Guest.Surname,
			Email:          req.Guest.Email,
			PhoneNumber:    req.Guest.Phone,
		})
	} else {
		appointment, err = uc.clinicClient.CreateAppointment(ctx, bookingReq)
	}
	if err != nil {
		uc.logger.Error("BuildBooking: failed to create appointment: %v", err)
		return nil, fmt.Errorf("build_booking: create appointment: %w", err)
	}

	if appointment == nil || appointment.AppointmentGUID == "" {
		uc.logger.Error("BuildBooking: backend returned no appointment guid")
		return nil, ErrInvalidResponse
	}

	uc.logger.Info("BuildBooking: created appointment %s, duration=%d units (%d min)",
		appointment.AppointmentGUID, payload.Duration, payload.DurationMinutes())

	return &Response{
		AppointmentGUID: appointment.AppointmentGUID,
		Payload:         payload,
	}, nil
}
