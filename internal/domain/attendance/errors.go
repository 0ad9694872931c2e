package attendance

import "errors"

// Attendance domain errors
var (
	// Check-in / check-out errors
	ErrAlreadyCheckedIn  = errors.New("you have already checked in today")
	ErrNotCheckedIn      = errors.New("you have not checked in yet")
	ErrAlreadyCheckedOut = errors.New("you have already checked out")

	// Administrative errors
	ErrDuplicateRecord        = errors.New("attendance record for this employee and date already exists")
	ErrCheckOutWithoutCheckIn = errors.New("check-out cannot be set without a check-in")
	ErrAttendanceNotFound     = errors.New("attendance record not found")
)
