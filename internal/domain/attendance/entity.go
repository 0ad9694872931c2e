package attendance

import (
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusPresent Status = "present"
	StatusAbsent  Status = "absent"
	StatusLate    Status = "late"
	StatusHalfDay Status = "half_day"
)

// Attendance is one employee's record for one calendar day. Date is
// normalized to midnight so equality is by day, not by instant.
type Attendance struct {
	ID         string
	EmployeeID string
	Date       time.Time
	Status     Status
	CheckIn    *time.Time
	CheckOut   *time.Time
	WorkHours  decimal.Decimal
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// DTO
	EmployeeName     *string
	EmployeePosition *string
}

// Day maps t to UTC midnight of its calendar day. This is the same
// instant a bare "2006-01-02" string parses to, so records written from
// the wall clock and records written from a submitted date key the same
// day identically regardless of the server's zone.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
