package response

import (
	"errors"
	"net/http"

	"github.com/workline-hq/attendance-backend-go/internal/domain/attendance"
	"github.com/workline-hq/attendance-backend-go/internal/domain/authz"
	"github.com/workline-hq/attendance-backend-go/internal/domain/employee"
	"github.com/workline-hq/attendance-backend-go/internal/domain/user"
	"github.com/workline-hq/attendance-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Authorization errors
	case errors.Is(err, authz.ErrAccessDenied):
		Forbidden(w, err.Error())
	case errors.Is(err, authz.ErrNoActor), errors.Is(err, user.ErrInvalidToken):
		Unauthorized(w, err.Error())
	case errors.Is(err, user.ErrHRAccessRequired):
		Forbidden(w, err.Error())

	// Attendance state-machine and uniqueness errors
	case errors.Is(err, attendance.ErrAlreadyCheckedIn):
		Conflict(w, "You have already checked in today")
	case errors.Is(err, attendance.ErrAlreadyCheckedOut):
		Conflict(w, "You have already checked out")
	case errors.Is(err, attendance.ErrDuplicateRecord):
		Conflict(w, "Attendance record for this employee and date already exists")
	case errors.Is(err, attendance.ErrNotCheckedIn):
		Conflict(w, "You have not checked in yet")
	case errors.Is(err, attendance.ErrCheckOutWithoutCheckIn):
		BadRequest(w, "Check-out cannot be set without a check-in", nil)

	// Not found
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
