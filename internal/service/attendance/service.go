package attendance

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/shopspring/decimal"
	"github.com/workline-hq/attendance-backend-go/internal/domain/attendance"
	"github.com/workline-hq/attendance-backend-go/internal/domain/authz"
	"github.com/workline-hq/attendance-backend-go/internal/domain/employee"
	"github.com/workline-hq/attendance-backend-go/internal/pkg/clock"
	"github.com/workline-hq/attendance-backend-go/internal/pkg/validator"
)

type AttendanceServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
	resolver       authz.Resolver
	clock          clock.Clock
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	resolver authz.Resolver,
	clk clock.Clock,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
		resolver:       resolver,
		clock:          clk,
	}
}

// timePtrToString safely converts a *time.Time to a string.
func timePtrToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	format := t.Format("2006-01-02 15:04:05")
	return &format
}

// actorEmployeeID returns the authenticated caller's employee-record id,
// resolving it through the directory when the token carries only the
// account identity.
func (a *AttendanceServiceImpl) actorEmployeeID(ctx context.Context) (string, error) {
	actor, err := a.resolver.ActorFromContext(ctx)
	if err != nil {
		return "", err
	}
	if actor.EmployeeID != "" {
		return actor.EmployeeID, nil
	}

	emp, err := a.employeeRepo.GetByUserID(ctx, actor.UserID)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return "", employee.ErrEmployeeNotFound
		}
		return "", fmt.Errorf("failed to resolve actor employee: %w", err)
	}
	return emp.ID, nil
}

// requireHR verifies the caller holds the hr role.
func (a *AttendanceServiceImpl) requireHR(ctx context.Context) error {
	actor, err := a.resolver.ActorFromContext(ctx)
	if err != nil {
		return err
	}
	if !actor.Role.IsHR() {
		return authz.ErrAccessDenied
	}
	return nil
}

// CheckIn implements attendance.AttendanceService. Creation races on the
// store's uniqueness constraint: no prior existence check, the losing
// writer of a concurrent double check-in gets ErrAlreadyCheckedIn.
func (a *AttendanceServiceImpl) CheckIn(ctx context.Context) (attendance.AttendanceResponse, error) {
	employeeID, err := a.actorEmployeeID(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	now := a.clock.Now()

	data := attendance.Attendance{
		EmployeeID: employeeID,
		Date:       attendance.Day(now),
		Status:     attendance.Classify(now),
		CheckIn:    &now,
		WorkHours:  decimal.Zero,
	}

	created, err := a.attendanceRepo.Create(ctx, data)
	if err != nil {
		if errors.Is(err, attendance.ErrDuplicateRecord) {
			return attendance.AttendanceResponse{}, attendance.ErrAlreadyCheckedIn
		}
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to create attendance record: %w", err)
	}

	enriched, err := a.attendanceRepo.GetByID(ctx, created.ID)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to get created attendance: %w", err)
	}

	return mapAttendanceToResponse(enriched), nil
}

// CheckOut implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) CheckOut(ctx context.Context) (attendance.AttendanceResponse, error) {
	employeeID, err := a.actorEmployeeID(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	now := a.clock.Now()

	var enriched attendance.Attendance
	err = a.attendanceRepo.WithTx(ctx, func(txCtx context.Context) error {
		att, err := a.attendanceRepo.GetByEmployeeAndDate(txCtx, employeeID, attendance.Day(now))
		if err != nil {
			return fmt.Errorf("failed to get today's attendance: %w", err)
		}
		if att == nil || att.CheckIn == nil {
			return attendance.ErrNotCheckedIn
		}
		if att.CheckOut != nil {
			return attendance.ErrAlreadyCheckedOut
		}

		att.CheckOut = &now
		att.WorkHours = attendance.ComputeWorkHours(*att.CheckIn, now)

		if err := a.attendanceRepo.Update(txCtx, *att); err != nil {
			return fmt.Errorf("failed to update attendance record: %w", err)
		}

		enriched, err = a.attendanceRepo.GetByID(txCtx, att.ID)
		if err != nil {
			return fmt.Errorf("failed to get updated attendance: %w", err)
		}
		return nil
	})
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return mapAttendanceToResponse(enriched), nil
}

// TodayStatus implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) TodayStatus(ctx context.Context) (attendance.TodayStatusResponse, error) {
	employeeID, err := a.actorEmployeeID(ctx)
	if err != nil {
		return attendance.TodayStatusResponse{}, err
	}

	att, err := a.attendanceRepo.GetByEmployeeAndDate(ctx, employeeID, attendance.Day(a.clock.Now()))
	if err != nil {
		return attendance.TodayStatusResponse{}, fmt.Errorf("failed to get today's attendance: %w", err)
	}

	if att == nil {
		return attendance.TodayStatusResponse{
			HasCheckedIn: false,
			CanCheckIn:   true,
			CanCheckOut:  false,
			Message:      "You have not checked in today",
		}, nil
	}

	resp := mapAttendanceToResponse(*att)
	if att.CheckOut == nil {
		return attendance.TodayStatusResponse{
			HasCheckedIn:    true,
			CanCheckIn:      false,
			CanCheckOut:     true,
			TodayAttendance: &resp,
			Message:         "You are checked in",
		}, nil
	}

	return attendance.TodayStatusResponse{
		HasCheckedIn:    true,
		CanCheckIn:      false,
		CanCheckOut:     false,
		TodayAttendance: &resp,
		Message:         "Your day is complete",
	}, nil
}

// ListForEmployee implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ListForEmployee(ctx context.Context, targetID string, filter attendance.ListFilter) (attendance.ListAttendanceResponse, error) {
	if err := filter.Validate(); err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	actor, err := a.resolver.ActorFromContext(ctx)
	if err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	employeeID, err := a.resolver.ResolveEmployee(ctx, actor, targetID)
	if err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	filter.EmployeeID = &employeeID
	return a.list(ctx, filter)
}

// ListAttendance implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ListAttendance(ctx context.Context, filter attendance.ListFilter) (attendance.ListAttendanceResponse, error) {
	if err := filter.Validate(); err != nil {
		return attendance.ListAttendanceResponse{}, err
	}
	if err := a.requireHR(ctx); err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	return a.list(ctx, filter)
}

func (a *AttendanceServiceImpl) list(ctx context.Context, filter attendance.ListFilter) (attendance.ListAttendanceResponse, error) {
	attendances, total, err := a.attendanceRepo.List(ctx, filter)
	if err != nil {
		return attendance.ListAttendanceResponse{}, fmt.Errorf("failed to list attendances: %w", err)
	}

	responses := make([]attendance.AttendanceResponse, 0, len(attendances))
	for _, att := range attendances {
		responses = append(responses, mapAttendanceToResponse(att))
	}

	totalPages := int(math.Ceil(float64(total) / float64(filter.Limit)))

	return attendance.ListAttendanceResponse{
		TotalCount:  total,
		Page:        filter.Page,
		Limit:       filter.Limit,
		TotalPages:  totalPages,
		Attendances: responses,
	}, nil
}

// GetAttendance implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) GetAttendance(ctx context.Context, id string) (attendance.AttendanceResponse, error) {
	if err := a.requireHR(ctx); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	att, err := a.attendanceRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, attendance.ErrAttendanceNotFound) {
			return attendance.AttendanceResponse{}, attendance.ErrAttendanceNotFound
		}
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to get attendance: %w", err)
	}

	return mapAttendanceToResponse(att), nil
}

// CreateAttendance implements attendance.AttendanceService. Status is
// derived from the supplied check-in through the same classifier the
// self-service path uses.
func (a *AttendanceServiceImpl) CreateAttendance(ctx context.Context, req attendance.CreateAttendanceRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}
	if err := a.requireHR(ctx); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	if _, err := a.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return attendance.AttendanceResponse{}, employee.ErrEmployeeNotFound
		}
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	day, _ := validator.IsValidDate(req.Date)
	checkIn := combineDayAndTime(day, req.CheckInTime)

	data := attendance.Attendance{
		EmployeeID: req.EmployeeID,
		Date:       day,
		Status:     attendance.Classify(checkIn),
		CheckIn:    &checkIn,
		WorkHours:  decimal.Zero,
	}

	if req.CheckOutTime != nil {
		checkOut := combineDayAndTime(day, *req.CheckOutTime)
		data.CheckOut = &checkOut
		data.WorkHours = attendance.ComputeWorkHours(checkIn, checkOut)
	}

	created, err := a.attendanceRepo.Create(ctx, data)
	if err != nil {
		if errors.Is(err, attendance.ErrDuplicateRecord) {
			return attendance.AttendanceResponse{}, attendance.ErrDuplicateRecord
		}
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to create attendance record: %w", err)
	}

	enriched, err := a.attendanceRepo.GetByID(ctx, created.ID)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to get created attendance: %w", err)
	}

	return mapAttendanceToResponse(enriched), nil
}

// UpdateAttendance implements attendance.AttendanceService.
// This allows HR to fix wrong attendance data: clock times, status, etc.
func (a *AttendanceServiceImpl) UpdateAttendance(ctx context.Context, req attendance.UpdateAttendanceRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}
	if err := a.requireHR(ctx); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	var updatedAtt attendance.Attendance
	err := a.attendanceRepo.WithTx(ctx, func(txCtx context.Context) error {
		att, err := a.attendanceRepo.GetByID(txCtx, req.ID)
		if err != nil {
			if errors.Is(err, attendance.ErrAttendanceNotFound) {
				return attendance.ErrAttendanceNotFound
			}
			return fmt.Errorf("failed to get attendance: %w", err)
		}

		if req.Status != nil {
			att.Status = attendance.Status(*req.Status)
		}

		if req.CheckInTime != nil && *req.CheckInTime != "" {
			checkIn, ok := parseRecordTime(att.Date, *req.CheckInTime)
			if !ok {
				return validator.ValidationErrors{{
					Field:   "check_in_time",
					Message: "check_in_time must be HH:MM:SS or YYYY-MM-DD HH:MM:SS",
				}}
			}
			att.CheckIn = &checkIn
		}

		if req.CheckOutTime != nil && *req.CheckOutTime != "" {
			checkOut, ok := parseRecordTime(att.Date, *req.CheckOutTime)
			if !ok {
				return validator.ValidationErrors{{
					Field:   "check_out_time",
					Message: "check_out_time must be HH:MM:SS or YYYY-MM-DD HH:MM:SS",
				}}
			}
			att.CheckOut = &checkOut
		}

		if att.CheckOut != nil && att.CheckIn == nil {
			return attendance.ErrCheckOutWithoutCheckIn
		}

		// Recompute when both bounds are set; otherwise a supplied work_hours
		// override is stored verbatim (administrative escape hatch).
		if att.CheckIn != nil && att.CheckOut != nil {
			att.WorkHours = attendance.ComputeWorkHours(*att.CheckIn, *att.CheckOut)
		} else if req.WorkHours != nil {
			att.WorkHours = decimal.NewFromFloat(*req.WorkHours)
		}

		if err := a.attendanceRepo.Update(txCtx, att); err != nil {
			return fmt.Errorf("failed to update attendance: %w", err)
		}

		updatedAtt, err = a.attendanceRepo.GetByID(txCtx, req.ID)
		if err != nil {
			return fmt.Errorf("failed to get updated attendance: %w", err)
		}
		return nil
	})
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return mapAttendanceToResponse(updatedAtt), nil
}

// DeleteAttendance implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) DeleteAttendance(ctx context.Context, id string) error {
	if err := a.requireHR(ctx); err != nil {
		return err
	}

	if err := a.attendanceRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, attendance.ErrAttendanceNotFound) {
			return attendance.ErrAttendanceNotFound
		}
		return fmt.Errorf("failed to delete attendance: %w", err)
	}

	return nil
}

// combineDayAndTime anchors a wall-clock "HH:MM[:SS]" to a calendar day.
func combineDayAndTime(day time.Time, timeStr string) time.Time {
	t, _ := validator.IsValidTimeOfDay(timeStr)
	return time.Date(day.Year(), day.Month(), day.Day(),
		t.Hour(), t.Minute(), t.Second(), 0, day.Location())
}

// parseRecordTime accepts a full datetime or a time-of-day combined with
// the record's date.
func parseRecordTime(day time.Time, s string) (time.Time, bool) {
	if t, ok := validator.IsValidDateTime(s); ok {
		return t, true
	}
	if t, ok := validator.IsValidTimeOfDay(s); ok {
		return time.Date(day.Year(), day.Month(), day.Day(),
			t.Hour(), t.Minute(), t.Second(), 0, day.Location()), true
	}
	return time.Time{}, false
}

// mapAttendanceToResponse converts an Attendance entity to AttendanceResponse
func mapAttendanceToResponse(att attendance.Attendance) attendance.AttendanceResponse {
	var employeeName string
	if att.EmployeeName != nil {
		employeeName = *att.EmployeeName
	}

	workHours, _ := att.WorkHours.Float64()

	return attendance.AttendanceResponse{
		ID:               att.ID,
		EmployeeID:       att.EmployeeID,
		EmployeeName:     employeeName,
		EmployeePosition: att.EmployeePosition,
		Date:             att.Date.Format("2006-01-02"),
		Status:           string(att.Status),
		CheckInTime:      timePtrToString(att.CheckIn),
		CheckOutTime:     timePtrToString(att.CheckOut),
		WorkHours:        workHours,
		CreatedAt:        att.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt:        att.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
}
