package models

import (
	"github.com/m04kA/SMC-DentalScheduling/internal/domain"
)

// Request модели

// CancelAppointmentRequest запрос на отмену визита
type CancelAppointmentRequest struct {
	AppointmentGUID string `json:"appointmentGuid"`
	Reason          string `json:"reason"`
}

// Response модели

// AppointmentResponse плоская запись визита
type AppointmentResponse struct {
	AppointmentGUID string   `json:"appointmentGuid"`
	PatientName     string   `json:"patientName"`
	PatientSurname  string   `json:"patientSurname"`
	DoctorID        int64    `json:"doctorId"`
	Services        []string `json:"services"`
	Date            string   `json:"date"`      // YYYY-MM-DD
	StartTime       string   `json:"startTime"` // HH:MM
	EndTime         string   `json:"endTime"`   // HH:MM
}

// AppointmentListResponse список визитов врача на дату
type AppointmentListResponse struct {
	DoctorID     int64                 `json:"doctorId"`
	Date         string                `json:"date"`
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}

// Конвертеры

// FromDomainAppointment конвертирует доменную модель в ответ API
func FromDomainAppointment(appointment domain.Appointment) AppointmentResponse {
	return AppointmentResponse{
		AppointmentGUID: appointment.GUID,
		PatientName:     appointment.PatientName,
		PatientSurname:  appointment.PatientSurname,
		DoctorID:        appointment.DoctorID,
		Services:        appointment.ServiceNames,
		Date:            appointment.Date,
		StartTime:       appointment.StartTime.String(),
		EndTime:         appointment.EndTime.String(),
	}
}

// FromDomainAppointments конвертирует список визитов
func FromDomainAppointments(appointments []domain.Appointment) []AppointmentResponse {
	result := make([]AppointmentResponse, len(appointments))
	for i, appointment := range appointments {
		result[i] = FromDomainAppointment(appointment)
	}
	return result
}
