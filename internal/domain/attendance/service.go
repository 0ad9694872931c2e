package attendance

import (
	"context"
)

// AttendanceService defines business logic for attendance operations
type AttendanceService interface {
	// CheckIn creates today's record for the authenticated employee,
	// classifying the status from the current wall-clock time
	CheckIn(ctx context.Context) (AttendanceResponse, error)

	// CheckOut completes today's record and computes work hours
	CheckOut(ctx context.Context) (AttendanceResponse, error)

	// TodayStatus reports today's record (if any) and what the employee
	// can still do, for the client's status polling
	TodayStatus(ctx context.Context) (TodayStatusResponse, error)

	// ListForEmployee retrieves one employee's records; the target may be
	// given as an employee id or an account id, and non-HR callers are
	// restricted to their own records
	ListForEmployee(ctx context.Context, targetID string, filter ListFilter) (ListAttendanceResponse, error)

	// ListAttendance retrieves records across all employees (HR)
	ListAttendance(ctx context.Context, filter ListFilter) (ListAttendanceResponse, error)

	// GetAttendance retrieves a single record by ID (HR)
	GetAttendance(ctx context.Context, id string) (AttendanceResponse, error)

	// CreateAttendance creates a record with explicit historical data (HR)
	CreateAttendance(ctx context.Context, req CreateAttendanceRequest) (AttendanceResponse, error)

	// UpdateAttendance updates a record (HR) - for fixing wrong data
	UpdateAttendance(ctx context.Context, req UpdateAttendanceRequest) (AttendanceResponse, error)

	// DeleteAttendance hard deletes a record (HR)
	DeleteAttendance(ctx context.Context, id string) error
}
