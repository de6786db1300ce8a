package domain

// Booking granularity
const (
	// SlotGranularityMinutes length of one duration unit (service minTime is stored in units)
	SlotGranularityMinutes = 30

	MaxCancellationReasonLength = 500
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD

	// DisplayTimestampLayout layout of schedule timestamps anchored to SentinelDate
	DisplayTimestampLayout = "2006-01-02T15:04:05"

	// SentinelDate reference date for recurring schedule windows in display form
	SentinelDate = "1970-01-01"
)

// Fields named by ValidationError / MalformedInputError
const (
	FieldServices    = "services"
	FieldDoctor      = "doctor"
	FieldDate        = "date"
	FieldTime        = "time"
	FieldDayOfWeek   = "dayOfWeek"
	FieldStartHour   = "startHour"
	FieldEndHour     = "endHour"
	FieldStart       = "start"
	FieldEnd         = "end"
	FieldTimeStart   = "timeStart"
	FieldTimeEnd     = "timeEnd"
	FieldAppointment = "appointmentGuid"
	FieldReason      = "reason"
	FieldRole        = "role"
	FieldCredentials = "credentials"
	FieldGuest       = "guest"
)

// Validation codes
const (
	CodeRequired         = "required"
	CodeUnknownService   = "unknown_service"
	CodeDuplicateService = "duplicate_service"
	CodeDuplicateDay     = "duplicate_day"
	CodeInvalidRange     = "invalid_range"
	CodeOutOfRange       = "out_of_range"
	CodeBlockMismatch    = "block_mismatch"
	CodeNotBookable      = "not_bookable"
	CodeInvalidFormat    = "invalid_format"
	CodeTooLong          = "too_long"
)
