package attendance

import "time"

// Check-in classification thresholds, in minutes since midnight.
const (
	lateAfterMinutes    = 9 * 60  // 09:00
	halfDayAfterMinutes = 10 * 60 // 10:00
)

// Classify maps a check-in instant to a work-day status based on its
// wall-clock time of day. Both the self-service check-in path and the
// administrative create path go through here; the rule is never
// reimplemented per call site.
//
// Classify never returns StatusAbsent: absence is the record's unset
// default, not a product of checking in.
func Classify(checkIn time.Time) Status {
	minutes := checkIn.Hour()*60 + checkIn.Minute()

	switch {
	case minutes < lateAfterMinutes:
		return StatusPresent
	case minutes < halfDayAfterMinutes:
		return StatusLate
	default:
		return StatusHalfDay
	}
}
