package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/simpeg-app/simpeg-backend-go/internal/domain/employee"
	"github.com/simpeg-app/simpeg-backend-go/internal/pkg/database"
)

type employeeRepository struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepository{db: db}
}

const employeeSelect = `
	SELECT e.id, e.user_id, e.position_id, e.department_id, e.join_date, e.is_active,
		   e.created_at, e.updated_at,
		   u.name AS user_name,
		   u.nik AS user_nik,
		   p.name AS position_name,
		   d.name AS department_name
	FROM employees e
	LEFT JOIN users u ON u.id = e.user_id
	LEFT JOIN positions p ON p.id = e.position_id
	LEFT JOIN departments d ON d.id = e.department_id
`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var e employee.Employee
	err := row.Scan(
		&e.ID, &e.UserID, &e.PositionID, &e.DepartmentID, &e.JoinDate, &e.IsActive,
		&e.CreatedAt, &e.UpdatedAt,
		&e.UserName, &e.UserNIK, &e.PositionName, &e.DepartmentName,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to scan employee: %w", err)
	}
	return e, nil
}

// Create implements employee.EmployeeRepository.
func (r *employeeRepository) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	id, err := uuid.NewV7()
	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to generate employee id: %w", err)
	}
	newEmployee.ID = id.String()

	query := `
		INSERT INTO employees (id, user_id, position_id, department_id, join_date, is_active)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at, updated_at
	`

	err = q.QueryRow(ctx, query,
		newEmployee.ID,
		newEmployee.UserID,
		newEmployee.PositionID,
		newEmployee.DepartmentID,
		newEmployee.JoinDate,
		newEmployee.IsActive,
	).Scan(&newEmployee.CreatedAt, &newEmployee.UpdatedAt)

	if err != nil {
		if isUniqueViolation(err, "employees_user_id_key") {
			return employee.Employee{}, employee.ErrAlreadyEmployee
		}
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return newEmployee, nil
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepository) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	return scanEmployee(q.QueryRow(ctx, employeeSelect+` WHERE e.id = $1`, id))
}

// GetByUserID implements employee.EmployeeRepository.
func (r *employeeRepository) GetByUserID(ctx context.Context, userID string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	return scanEmployee(q.QueryRow(ctx, employeeSelect+` WHERE e.user_id = $1`, userID))
}

// List implements employee.EmployeeRepository.
func (r *employeeRepository) List(ctx context.Context, filter employee.EmployeeFilter) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	baseWhere := "TRUE"
	args := []interface{}{}
	argIdx := 1

	if filter.DepartmentID != nil && *filter.DepartmentID != "" {
		baseWhere += fmt.Sprintf(" AND e.department_id = $%d", argIdx)
		args = append(args, *filter.DepartmentID)
		argIdx++
	}
	if filter.PositionID != nil && *filter.PositionID != "" {
		baseWhere += fmt.Sprintf(" AND e.position_id = $%d", argIdx)
		args = append(args, *filter.PositionID)
		argIdx++
	}
	if filter.IsActive != nil {
		baseWhere += fmt.Sprintf(" AND e.is_active = $%d", argIdx)
		args = append(args, *filter.IsActive)
		argIdx++
	}

	query := employeeSelect + ` WHERE ` + baseWhere + ` ORDER BY e.join_date DESC`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		employees = append(employees, e)
	}

	return employees, nil
}

// ListActiveNotIn implements employee.EmployeeRepository.
func (r *employeeRepository) ListActiveNotIn(ctx context.Context, excludedIDs []string) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	if excludedIDs == nil {
		excludedIDs = []string{}
	}

	query := employeeSelect + ` WHERE e.is_active AND NOT (e.id = ANY($1)) ORDER BY e.id`

	rows, err := q.Query(ctx, query, excludedIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query uncovered employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		employees = append(employees, e)
	}

	return employees, nil
}

// Update implements employee.EmployeeRepository.
func (r *employeeRepository) Update(ctx context.Context, e employee.Employee) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees
		SET position_id = $1, department_id = $2, is_active = $3, updated_at = $4
		WHERE id = $5
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query,
		e.PositionID, e.DepartmentID, e.IsActive, time.Now(), e.ID,
	).Scan(&updatedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.ErrEmployeeNotFound
		}
		return fmt.Errorf("failed to update employee: %w", err)
	}

	return nil
}
