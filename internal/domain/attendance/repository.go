package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access methods for attendance records.
type AttendanceRepository interface {
	// Create inserts a new attendance record. The (employee_id, date)
	// uniqueness is enforced by the store; a violation is returned as
	// ErrDuplicateRecord so concurrent check-ins resolve atomically
	// instead of through a read-then-write guard.
	Create(ctx context.Context, attendance Attendance) (Attendance, error)

	// GetByID retrieves attendance by ID, enriched with the employee's
	// display attributes.
	GetByID(ctx context.Context, id string) (Attendance, error)

	// GetByEmployeeAndDate retrieves attendance for a specific employee on
	// a specific day. Returns (nil, nil) when no record exists.
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*Attendance, error)

	// Update persists the full mutable state of an existing record.
	Update(ctx context.Context, attendance Attendance) error

	// Delete removes the record. Returns ErrAttendanceNotFound when no
	// record exists for the id.
	Delete(ctx context.Context, id string) error

	// List retrieves records matching the compound filter, newest date
	// first, with the total count before pagination.
	List(ctx context.Context, filter ListFilter) ([]Attendance, int64, error)

	// WithTx runs fn with repository calls scoped to one transaction, so
	// read-modify-write sequences commit or roll back as a unit.
	WithTx(ctx context.Context, fn func(ctx context.Context) error) error
}
