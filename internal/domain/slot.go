package domain

import "github.com/m04kA/SMC-ScheduleService/pkg/types"

// TimeSlot represents a fixed half-open [start, end) interval of the day grid
type TimeSlot struct {
	StartTime types.TimeString
	EndTime   types.TimeString
}

// Overlaps reports whether the slot overlaps the half-open interval
// [start, end). Touching boundaries do not count as overlap:
// slot 11:00-12:00 and interval 12:00-13:00 are disjoint.
func (s TimeSlot) Overlaps(start, end types.TimeString) bool {
	return s.StartTime.IsBefore(end) && s.EndTime.IsAfter(start)
}

// IsLeadingFor reports whether the slot is the first slot of the booking's
// span. The grid renders the booking's detail card only in its leading slot;
// every following covered slot is a continuation cell.
func (s TimeSlot) IsLeadingFor(b *Booking) bool {
	return b != nil && b.StartTime == s.StartTime
}
