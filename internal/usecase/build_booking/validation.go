package build_booking

import (
	"net/mail"
	"strings"

	"github.com/m04kA/SMC-DentalScheduling/internal/domain"
)

// validateDraft проверяет обязательные поля черновика
// Порядок проверки фиксирован: услуги, врач, дата, время
func validateDraft(draft domain.AppointmentDraft) error {
	if len(draft.SelectedServiceIDs) == 0 {
		return domain.NewValidationError(domain.FieldServices, domain.CodeRequired, "at least one service must be selected")
	}

	if draft.SelectedDoctorID == nil {
		return domain.NewValidationError(domain.FieldDoctor, domain.CodeRequired, "doctor is not selected")
	}

	if draft.SelectedDate.IsZero() {
		return domain.NewValidationError(domain.FieldDate, domain.CodeRequired, "date is not selected")
	}

	if draft.SelectedTimeBlockID == nil {
		return domain.NewValidationError(domain.FieldTime, domain.CodeRequired, "time block is not selected")
	}

	return nil
}

// validateGuest проверяет контактные данные гостя
func validateGuest(guest *domain.GuestContact) error {
	if strings.TrimSpace(guest.Name) == "" || strings.TrimSpace(guest.Surname) == "" {
		return domain.NewValidationError(domain.FieldGuest, domain.CodeRequired, "name and surname are required")
	}

	if strings.TrimSpace(guest.Phone) == "" {
		return domain.NewValidationError(domain.FieldGuest, domain.CodeRequired, "phone number is required")
	}

	if _, err := mail.ParseAddress(guest.Email); err != nil {
		return domain.NewValidationError(domain.FieldGuest, domain.CodeInvalidFormat, "email is invalid")
	}

	return nil
}

// sumDuration суммирует minTime выбранных услуг в единицах по 30 минут
func sumDuration(serviceIDs []int64, services []domain.Service) (int, error) {
	catalog := make(map[int64]domain.Service, len(services))
	for _, service := range services {
		catalog[service.ID] = service
	}

	seen := make(map[int64]struct{}, len(serviceIDs))
	duration := 0
	for _, id := range serviceIDs {
		if _, dup := seen[id]; dup {
			return 0, domain.NewValidationError(domain.FieldServices, domain.CodeDuplicateService, "service is selected more than once")
		}
		seen[id] = struct{}{}

		service, ok := catalog[id]
		if !ok {
			return 0, domain.NewValidationError(domain.FieldServices, domain.CodeUnknownService, "service is not in the catalog")
		}
		duration += service.MinTime
	}

	return duration, nil
}

// resolveBlock находит выбранный блок и проверяет, что он принадлежит врачу,
// относится к выбранной дате и свободен
func resolveBlock(draft domain.AppointmentDraft, blocks []domain.TimeBlock) (domain.TimeBlock, error) {
	block, ok := domain.FindBlock(blocks, *draft.SelectedTimeBlockID)
	if !ok {
		return domain.TimeBlock{}, domain.NewValidationError(domain.FieldTime, domain.CodeBlockMismatch, "time block does not exist")
	}

	if block.Doctor.ID != *draft.SelectedDoctorID || !block.IsOn(draft.SelectedDate) {
		return domain.TimeBlock{}, domain.NewValidationError(domain.FieldTime, domain.CodeBlockMismatch,
			"time block does not belong to the selected doctor and date")
	}

	if !block.IsBookable() {
		return domain.TimeBlock{}, domain.NewValidationError(domain.FieldTime, domain.CodeNotBookable, "time block is already taken")
	}

	return block, nil
}
