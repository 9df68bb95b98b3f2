package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/horizonte-hr/attendance-backend-go/internal/domain/employee"
	"github.com/horizonte-hr/attendance-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type employeeRepository struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepository{db: db}
}

// ListByBranch implements employee.EmployeeRepository.
func (r *employeeRepository) ListByBranch(ctx context.Context, branchID string) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, branch_id, code, first_name, last_name, position, hire_date, active
		FROM employees
		WHERE branch_id = $1
		  AND active = TRUE
		  AND deleted_at IS NULL
		ORDER BY code
	`

	rows, err := q.Query(ctx, query, branchID)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var out []employee.Employee
	for rows.Next() {
		var emp employee.Employee
		if err := rows.Scan(&emp.ID, &emp.BranchID, &emp.Code, &emp.FirstName, &emp.LastName,
			&emp.Position, &emp.HireDate, &emp.Active); err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		out = append(out, emp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read employees: %w", err)
	}

	return out, nil
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepository) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, branch_id, code, first_name, last_name, position, hire_date, active
		FROM employees
		WHERE id = $1
		  AND deleted_at IS NULL
	`

	var emp employee.Employee
	err := q.QueryRow(ctx, query, id).Scan(&emp.ID, &emp.BranchID, &emp.Code, &emp.FirstName,
		&emp.LastName, &emp.Position, &emp.HireDate, &emp.Active)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}

	return emp, nil
}
