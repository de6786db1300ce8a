package domain

import (
	"time"

	"github.com/m04kA/SMC-DentalScheduling/pkg/types"
)

// Service clinic service from the catalog.
// MinTime is expressed in duration units of SlotGranularityMinutes.
type Service struct {
	ID      int64
	Name    string
	MinTime int
	Price   *float64
}

// AppointmentDraft in-progress booking selection.
// SelectedTimeBlockID must reference a block of SelectedDoctorID dated SelectedDate.
type AppointmentDraft struct {
	SelectedDate        time.Time
	SelectedDoctorID    *int64
	SelectedServiceIDs  []int64
	SelectedTimeBlockID *int64
}

// BookingPayload request body of the backend booking endpoint.
// Duration is stored in raw units, never in minutes.
// StartTimeRaw is the chosen block's start as received from the backend.
type BookingPayload struct {
	DoctorID     int64
	StartTime    time.Time
	StartTimeRaw string
	Duration     int
	ServicesIDs  []int64
}

// StartTimeString returns the start timestamp in the backend's own notation.
// Falls back to RFC 3339 when the raw value is unknown.
func (p *BookingPayload) StartTimeString() string {
	if p.StartTimeRaw != "" {
		return p.StartTimeRaw
	}
	return p.StartTime.Format(time.RFC3339)
}

// DurationMinutes converts Duration to minutes for display
func (p *BookingPayload) DurationMinutes() int {
	return p.Duration * SlotGranularityMinutes
}

// GuestContact contact data of a patient booking without an account
type GuestContact struct {
	Name    string
	Surname string
	Email   string
	Phone   string
}

// Appointment flattened appointment record for display
type Appointment struct {
	GUID           string
	PatientName    string
	PatientSurname string
	DoctorID       int64
	ServiceNames   []string
	Date           string
	StartTime      types.TimeString
	EndTime        types.TimeString
}

// CancelRequest cancellation of a booked appointment
type CancelRequest struct {
	AppointmentGUID string
	Reason          string
}
