package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/workline-hq/attendance-backend-go/internal/domain/attendance"
	"github.com/workline-hq/attendance-backend-go/internal/pkg/database"
)

// pgUniqueViolation is the SQLSTATE for unique constraint violations.
const pgUniqueViolation = "23505"

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

// Create implements attendance.AttendanceRepository. The unique index on
// (employee_id, date) is the duplicate check-in guard: two concurrent
// writers race on the insert and the loser gets ErrDuplicateRecord.
func (a *attendanceRepository) Create(ctx context.Context, newAttendance attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		INSERT INTO attendances (
			employee_id, date, status, check_in, check_out, work_hours
		) VALUES (
			$1, $2, $3, $4, $5, $6
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		newAttendance.EmployeeID,
		newAttendance.Date,
		newAttendance.Status,
		newAttendance.CheckIn,
		newAttendance.CheckOut,
		newAttendance.WorkHours,
	).Scan(&newAttendance.ID, &newAttendance.CreatedAt, &newAttendance.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return attendance.Attendance{}, attendance.ErrDuplicateRecord
		}
		return attendance.Attendance{}, fmt.Errorf("failed to create attendance: %w", err)
	}

	return newAttendance, nil
}

// GetByID implements attendance.AttendanceRepository.
func (a *attendanceRepository) GetByID(ctx context.Context, id string) (attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT
			a.id, a.employee_id, a.date, a.status,
			a.check_in, a.check_out, a.work_hours,
			a.created_at, a.updated_at,
			e.full_name AS employee_name,
			p.name AS employee_position
		FROM attendances a
		LEFT JOIN employees e ON e.id = a.employee_id
		LEFT JOIN positions p ON p.id = e.position_id
		WHERE a.id = $1
	`

	var att attendance.Attendance
	err := q.QueryRow(ctx, query, id).Scan(
		&att.ID, &att.EmployeeID, &att.Date, &att.Status,
		&att.CheckIn, &att.CheckOut, &att.WorkHours,
		&att.CreatedAt, &att.UpdatedAt,
		&att.EmployeeName, &att.EmployeePosition,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, fmt.Errorf("failed to get attendance by ID: %w", err)
	}

	return att, nil
}

// GetByEmployeeAndDate implements attendance.AttendanceRepository.
func (a *attendanceRepository) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT
			a.id, a.employee_id, a.date, a.status,
			a.check_in, a.check_out, a.work_hours,
			a.created_at, a.updated_at,
			e.full_name AS employee_name,
			p.name AS employee_position
		FROM attendances a
		LEFT JOIN employees e ON e.id = a.employee_id
		LEFT JOIN positions p ON p.id = e.position_id
		WHERE a.employee_id = $1
		  AND a.date = $2
		LIMIT 1
	`

	var att attendance.Attendance
	err := q.QueryRow(ctx, query, employeeID, date).Scan(
		&att.ID, &att.EmployeeID, &att.Date, &att.Status,
		&att.CheckIn, &att.CheckOut, &att.WorkHours,
		&att.CreatedAt, &att.UpdatedAt,
		&att.EmployeeName, &att.EmployeePosition,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil // No record for this day
		}
		return nil, fmt.Errorf("failed to get attendance by employee and date: %w", err)
	}

	return &att, nil
}

// Update implements attendance.AttendanceRepository. The service always
// carries the full mutable state, so this is a whole-row update.
func (a *attendanceRepository) Update(ctx context.Context, att attendance.Attendance) error {
	q := GetQuerier(ctx, a.db)

	query := `
		UPDATE attendances
		SET status = $1, check_in = $2, check_out = $3, work_hours = $4, updated_at = $5
		WHERE id = $6
	`

	commandTag, err := q.Exec(ctx, query,
		att.Status,
		att.CheckIn,
		att.CheckOut,
		att.WorkHours,
		time.Now(),
		att.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update attendance: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return attendance.ErrAttendanceNotFound
	}

	return nil
}

// Delete implements attendance.AttendanceRepository.
func (a *attendanceRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, a.db)

	query := `DELETE FROM attendances WHERE id = $1`

	commandTag, err := q.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete attendance: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return attendance.ErrAttendanceNotFound
	}

	return nil
}

// List implements attendance.AttendanceRepository.
func (a *attendanceRepository) List(ctx context.Context, filter attendance.ListFilter) ([]attendance.Attendance, int64, error) {
	q := GetQuerier(ctx, a.db)

	// Build WHERE clause
	baseWhere := "1 = 1"
	args := []interface{}{}
	argIdx := 1

	// Employee ID filter
	if filter.EmployeeID != nil && *filter.EmployeeID != "" {
		baseWhere += fmt.Sprintf(" AND a.employee_id = $%d", argIdx)
		args = append(args, *filter.EmployeeID)
		argIdx++
	}

	// Single day filter: [date 00:00, date+1day 00:00)
	if filter.Date != nil && *filter.Date != "" {
		day, err := time.Parse("2006-01-02", *filter.Date)
		if err != nil {
			return nil, 0, fmt.Errorf("invalid date filter: %w", err)
		}
		baseWhere += fmt.Sprintf(" AND a.date >= $%d AND a.date < $%d", argIdx, argIdx+1)
		args = append(args, day, day.AddDate(0, 0, 1))
		argIdx += 2
	}

	// Month filter: [firstOfMonth, lastOfMonth 23:59:59.999]
	if filter.Month != nil && filter.Year != nil {
		firstOfMonth := time.Date(*filter.Year, time.Month(*filter.Month), 1, 0, 0, 0, 0, time.UTC)
		endOfMonth := firstOfMonth.AddDate(0, 1, 0).Add(-time.Millisecond)
		baseWhere += fmt.Sprintf(" AND a.date >= $%d AND a.date <= $%d", argIdx, argIdx+1)
		args = append(args, firstOfMonth, endOfMonth)
		argIdx += 2
	}

	// Status filter
	if filter.Status != nil && *filter.Status != "" {
		baseWhere += fmt.Sprintf(" AND a.status = $%d", argIdx)
		args = append(args, *filter.Status)
		argIdx++
	}

	// Count total
	countQuery := "SELECT COUNT(*) FROM attendances a WHERE " + baseWhere
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count attendances: %w", err)
	}

	// Build query with pagination, most-recent-date first
	selectQuery := fmt.Sprintf(`
		SELECT
			a.id, a.employee_id, a.date, a.status,
			a.check_in, a.check_out, a.work_hours,
			a.created_at, a.updated_at,
			e.full_name AS employee_name,
			p.name AS employee_position
		FROM attendances a
		LEFT JOIN employees e ON e.id = a.employee_id
		LEFT JOIN positions p ON p.id = e.position_id
		WHERE %s
		ORDER BY a.date DESC, a.created_at DESC
		LIMIT $%d OFFSET $%d
	`, baseWhere, argIdx, argIdx+1)

	limit := filter.Limit
	if limit == 0 {
		limit = 20
	}
	offset := (filter.Page - 1) * limit
	args = append(args, limit, offset)

	rows, err := q.Query(ctx, selectQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query attendances: %w", err)
	}
	defer rows.Close()

	var attendances []attendance.Attendance
	for rows.Next() {
		var att attendance.Attendance
		err := rows.Scan(
			&att.ID, &att.EmployeeID, &att.Date, &att.Status,
			&att.CheckIn, &att.CheckOut, &att.WorkHours,
			&att.CreatedAt, &att.UpdatedAt,
			&att.EmployeeName, &att.EmployeePosition,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan attendance: %w", err)
		}
		attendances = append(attendances, att)
	}

	return attendances, total, nil
}

// WithTx implements attendance.AttendanceRepository. The transaction is
// handed to nested repository calls through the context, where GetQuerier
// picks it up.
func (a *attendanceRepository) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return WithTransaction(ctx, a.db, func(tx pgx.Tx) error {
		return fn(context.WithValue(ctx, txCtxKey{}, tx))
	})
}
