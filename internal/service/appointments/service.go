package appointments

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-DentalScheduling/internal/domain"
	"github.com/m04kA/SMC-DentalScheduling/internal/integrations/clinicapi"
	"github.com/m04kA/SMC-DentalScheduling/internal/schedulemapper"
	"github.com/m04kA/SMC-DentalScheduling/internal/service/appointments/models"
)

// Service сервис для работы с визитами
type Service struct {
	clinicClient ClinicClient
	logger       Logger
}

// NewService создает новый экземпляр сервиса визитов
func NewService(clinicClient ClinicClient, logger Logger) *Service {
	return &Service{
		clinicClient: clinicClient,
		logger:       logger,
	}
}

// Cancel отменяет визит
// GUID визита должен быть UUID, причина обрезается по краям и ограничена 500 символами
func (s *Service) Cancel(ctx context.Context, req *models.CancelAppointmentRequest) error {
	s.logger.Info("Cancel: appointment=%s", req.AppointmentGUID)

	cancel, err := validateCancel(req)
	if err != nil {
		s.logger.Warn("Cancel: validation failed: %v", err)
		return err
	}

	err = s.clinicClient.CancelAppointment(ctx, clinicapi.CancelRequest{
		AppointmentGUID: cancel.AppointmentGUID,
		Reason:          cancel.Reason,
	})
	if err != nil {
		s.logger.Error("Cancel: failed to cancel appointment=%s: %v", cancel.AppointmentGUID, err)
		return fmt.Errorf("appointments: cancel: %w", err)
	}

	s.logger.Info("Cancel: appointment=%s cancelled", cancel.AppointmentGUID)
	return nil
}

// GetDoctorAppointments получает визиты врача на дату в плоском виде
// Одна некорректная запись бэкенда приводит к ошибке всего вызова
func (s *Service) GetDoctorAppointments(ctx context.Context, doctorID int64, date time.Time) (*models.AppointmentListResponse, error) {
	s.logger.Info("GetDoctorAppointments: doctor=%d, date=%s", doctorID, date.Format(domain.DateFormat))

	if doctorID <= 0 {
		return nil, fmt.Errorf("%w: doctorID must be positive", ErrInvalidInput)
	}
	if date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	records, err := s.clinicClient.GetDoctorAppointments(ctx, doctorID, date)
	if err != nil {
		s.logger.Error("GetDoctorAppointments: failed to get appointments for doctor=%d: %v", doctorID, err)
		return nil, fmt.Errorf("appointments: get doctor appointments: %w", err)
	}

	appointments, err := schedulemapper.APIAppointmentsToDomain(records)
	if err != nil {
		s.logger.Error("GetDoctorAppointments: malformed appointment for doctor=%d: %v", doctorID, err)
		return nil, err
	}

	s.logger.Info("GetDoctorAppointments: found %d appointments for doctor=%d", len(appointments), doctorID)

	return &models.AppointmentListResponse{
		DoctorID:     doctorID,
		Date:         date.Format(domain.DateFormat),
		Appointments: models.FromDomainAppointments(appointments),
		Total:        len(appointments),
	}, nil
}

// validateCancel проверяет и нормализует запрос отмены
func validateCancel(req *models.CancelAppointmentRequest) (domain.CancelRequest, error) {
	guid := strings.TrimSpace(req.AppointmentGUID)
	if guid == "" {
		return domain.CancelRequest{}, domain.NewValidationError(domain.FieldAppointment, domain.CodeRequired, "appointment guid is required")
	}

	parsed, err := uuid.Parse(guid)
	if err != nil {
		return domain.CancelRequest{}, domain.NewValidationError(domain.FieldAppointment, domain.CodeInvalidFormat, "appointment guid must be a UUID")
	}

	reason := strings.TrimSpace(req.Reason)
	if utf8.RuneCountInString(reason) > domain.MaxCancellationReasonLength {
		return domain.CancelRequest{}, domain.NewValidationError(domain.FieldReason, domain.CodeTooLong,
			fmt.Sprintf("reason must be at most %d characters", domain.MaxCancellationReasonLength))
	}

	return domain.CancelRequest{AppointmentGUID: parsed.String(), Reason: reason}, nil
}
