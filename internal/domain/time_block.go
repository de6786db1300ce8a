package domain

import "time"

// DoctorRef read-only reference to the doctor owning a time block
type DoctorRef struct {
	ID      int64
	Name    string
	Surname string
}

// TimeBlock one discrete bookable interval of one doctor.
// Created and destroyed by the clinic backend; the gateway only reads it.
// RawTimeStart keeps the start timestamp exactly as the backend sent it.
type TimeBlock struct {
	DoctorBlockID int64
	TimeStart     time.Time
	RawTimeStart  string
	TimeEnd       time.Time
	IsAvailable   bool
	Doctor        DoctorRef
}

// IsBookable returns true if the block can be chosen for a booking
func (b *TimeBlock) IsBookable() bool {
	return b.IsAvailable
}

// IsOn returns true if the block starts on the given calendar date
func (b *TimeBlock) IsOn(date time.Time) bool {
	y1, m1, d1 := b.TimeStart.Date()
	y2, m2, d2 := date.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// DurationMinutes returns block length in minutes
func (b *TimeBlock) DurationMinutes() int {
	return int(b.TimeEnd.Sub(b.TimeStart) / time.Minute)
}

// FilterBookable returns the blocks of doctorID that are available, in input order.
// Blocks are disjoint by backend contract, so no ordering or tie-breaking is applied.
func FilterBookable(blocks []TimeBlock, doctorID int64) []TimeBlock {
	result := make([]TimeBlock, 0, len(blocks))
	for _, block := range blocks {
		if block.IsBookable() && block.Doctor.ID == doctorID {
			result = append(result, block)
		}
	}
	return result
}

// FindBlock returns the block with the given id
func FindBlock(blocks []TimeBlock, blockID int64) (TimeBlock, bool) {
	for _, block := range blocks {
		if block.DoctorBlockID == blockID {
			return block, true
		}
	}
	return TimeBlock{}, false
}
