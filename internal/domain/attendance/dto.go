package attendance

import (
	"strings"

	"github.com/workline-hq/attendance-backend-go/internal/pkg/validator"
)

var validStatuses = []string{
	string(StatusPresent),
	string(StatusAbsent),
	string(StatusLate),
	string(StatusHalfDay),
}

// ========================================
// ATTENDANCE DTOs
// ========================================

type AttendanceResponse struct {
	ID               string  `json:"id"`
	EmployeeID       string  `json:"employee_id"`
	EmployeeName     string  `json:"employee_name"`
	EmployeePosition *string `json:"employee_position,omitempty"`
	Date             string  `json:"date"`
	Status           string  `json:"status"`
	CheckInTime      *string `json:"check_in_time,omitempty"`
	CheckOutTime     *string `json:"check_out_time,omitempty"`
	WorkHours        float64 `json:"work_hours"`
	CreatedAt        string  `json:"created_at"`
	UpdatedAt        string  `json:"updated_at"`
}

type ListAttendanceResponse struct {
	TotalCount  int64                `json:"total_count"`
	Page        int                  `json:"page"`
	Limit       int                  `json:"limit"`
	TotalPages  int                  `json:"total_pages"`
	Attendances []AttendanceResponse `json:"attendances"`
}

// TodayStatusResponse backs the client's "today's status" polling.
type TodayStatusResponse struct {
	HasCheckedIn    bool                `json:"has_checked_in"`
	CanCheckIn      bool                `json:"can_check_in"`
	CanCheckOut     bool                `json:"can_check_out"`
	TodayAttendance *AttendanceResponse `json:"today_attendance,omitempty"`
	Message         string              `json:"message"`
}

// CreateAttendanceRequest for HR to create a record with historical data.
// Status is derived from check_in_time by the classifier, never supplied.
type CreateAttendanceRequest struct {
	EmployeeID   string  `json:"employee_id"`
	Date         string  `json:"date"`          // YYYY-MM-DD
	CheckInTime  string  `json:"check_in_time"` // HH:MM or HH:MM:SS
	CheckOutTime *string `json:"check_out_time,omitempty"`
}

func (r *CreateAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if _, valid := validator.IsValidDate(r.Date); !valid {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	checkIn, validIn := validator.IsValidTimeOfDay(r.CheckInTime)
	if !validIn {
		errs = append(errs, validator.ValidationError{
			Field:   "check_in_time",
			Message: "check_in_time must be in HH:MM or HH:MM:SS format",
		})
	}

	if r.CheckOutTime != nil {
		checkOut, validOut := validator.IsValidTimeOfDay(*r.CheckOutTime)
		if !validOut {
			errs = append(errs, validator.ValidationError{
				Field:   "check_out_time",
				Message: "check_out_time must be in HH:MM or HH:MM:SS format",
			})
		} else if validIn && !checkOut.After(checkIn) {
			errs = append(errs, validator.ValidationError{
				Field:   "check_out_time",
				Message: "check_out_time must be after check_in_time",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// UpdateAttendanceRequest for HR to update attendance records.
// This allows fixing wrong data: employee forgot to check in/out, etc.
type UpdateAttendanceRequest struct {
	ID           string   `json:"-"`
	Status       *string  `json:"status,omitempty"`
	CheckInTime  *string  `json:"check_in_time,omitempty"`  // HH:MM:SS or full datetime
	CheckOutTime *string  `json:"check_out_time,omitempty"` // HH:MM:SS or full datetime
	WorkHours    *float64 `json:"work_hours,omitempty"`     // override, used only when both timestamps are not set
}

func (r *UpdateAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Status != nil {
		if !validator.IsInSlice(strings.ToLower(*r.Status), validStatuses) {
			errs = append(errs, validator.ValidationError{
				Field:   "status",
				Message: "status must be one of: present, absent, late, half_day",
			})
		}
	}

	if r.WorkHours != nil && *r.WorkHours < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "work_hours",
			Message: "work_hours must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ListFilter builds a single compound filter from independently-optional
// parameters. Month and year come as a pair; a bare date means a one-day
// range. Results are always ordered most-recent-date first.
type ListFilter struct {
	EmployeeID *string `json:"employee_id,omitempty"`
	Month      *int    `json:"month,omitempty"`
	Year       *int    `json:"year,omitempty"`
	Date       *string `json:"date,omitempty"` // YYYY-MM-DD
	Status     *string `json:"status,omitempty"`

	// Pagination
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

func (f *ListFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Page < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "page",
			Message: "page must be a positive number",
		})
	}
	if f.Page == 0 {
		f.Page = 1 // Default page
	}

	if f.Limit < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must be a positive number",
		})
	}
	if f.Limit == 0 {
		f.Limit = 20 // Default limit
	}
	if f.Limit > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must not exceed 100",
		})
	}

	if (f.Month == nil) != (f.Year == nil) {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month and year must be provided together",
		})
	}
	if f.Month != nil && (*f.Month < 1 || *f.Month > 12) {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be between 1 and 12",
		})
	}
	if f.Year != nil && (*f.Year < 1970 || *f.Year > 9999) {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "year must be a four-digit year",
		})
	}

	if f.Date != nil && *f.Date != "" {
		if _, valid := validator.IsValidDate(*f.Date); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "date",
				Message: "date must be in YYYY-MM-DD format",
			})
		}
	}

	if f.Status != nil {
		if !validator.IsInSlice(*f.Status, validStatuses) {
			errs = append(errs, validator.ValidationError{
				Field:   "status",
				Message: "status must be one of: present, absent, late, half_day",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
