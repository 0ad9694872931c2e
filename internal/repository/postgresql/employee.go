package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/workline-hq/attendance-backend-go/internal/domain/employee"
	"github.com/workline-hq/attendance-backend-go/internal/pkg/database"
)

type employeeRepository struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepository{db: db}
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepository) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT e.id, e.user_id, e.full_name, p.name AS position, e.created_at, e.updated_at
		FROM employees e
		LEFT JOIN positions p ON p.id = e.position_id
		WHERE e.id = $1
	`

	var emp employee.Employee
	err := q.QueryRow(ctx, query, id).Scan(
		&emp.ID, &emp.UserID, &emp.FullName, &emp.Position, &emp.CreatedAt, &emp.UpdatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by ID: %w", err)
	}

	return emp, nil
}

// GetByUserID implements employee.EmployeeRepository. This is the bridge
// between the account identity space and the employee-record space.
func (r *employeeRepository) GetByUserID(ctx context.Context, userID string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT e.id, e.user_id, e.full_name, p.name AS position, e.created_at, e.updated_at
		FROM employees e
		LEFT JOIN positions p ON p.id = e.position_id
		WHERE e.user_id = $1
	`

	var emp employee.Employee
	err := q.QueryRow(ctx, query, userID).Scan(
		&emp.ID, &emp.UserID, &emp.FullName, &emp.Position, &emp.CreatedAt, &emp.UpdatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by user ID: %w", err)
	}

	return emp, nil
}
