package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/simpeg-app/simpeg-backend-go/internal/domain/attendance"
	"github.com/simpeg-app/simpeg-backend-go/internal/pkg/database"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

const attendanceSelect = `
	SELECT a.id, a.employee_id, a.date, a.status, a.day_leave, a.description, a.created_at,
		   u.name AS employee_name,
		   u.nik AS employee_nik
	FROM attendances a
	LEFT JOIN employees e ON e.id = a.employee_id
	LEFT JOIN users u ON u.id = e.user_id
`

func scanAttendance(row pgx.Row) (attendance.Attendance, error) {
	var att attendance.Attendance
	err := row.Scan(
		&att.ID, &att.EmployeeID, &att.Date, &att.Status, &att.DayLeave,
		&att.Description, &att.CreatedAt,
		&att.EmployeeName, &att.EmployeeNIK,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, fmt.Errorf("failed to scan attendance: %w", err)
	}
	return att, nil
}

// Create implements attendance.AttendanceRepository.
func (r *attendanceRepository) Create(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	id, err := uuid.NewV7()
	if err != nil {
		return attendance.Attendance{}, fmt.Errorf("failed to generate attendance id: %w", err)
	}
	att.ID = id.String()

	query := `
		INSERT INTO attendances (id, employee_id, date, status, day_leave, description)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at
	`

	err = q.QueryRow(ctx, query,
		att.ID, att.EmployeeID, att.Date, att.Status, att.DayLeave, att.Description,
	).Scan(&att.CreatedAt)
	if err != nil {
		if isUniqueViolation(err, "attendances_employee_id_date_key") {
			return attendance.Attendance{}, attendance.ErrDuplicateDate
		}
		return attendance.Attendance{}, fmt.Errorf("failed to create attendance: %w", err)
	}

	return att, nil
}

// GetByEmployeeAndDate implements attendance.AttendanceRepository.
func (r *attendanceRepository) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := attendanceSelect + ` WHERE a.employee_id = $1 AND a.date = $2`

	att, err := scanAttendance(q.QueryRow(ctx, query, employeeID, date))
	if err != nil {
		if err == attendance.ErrAttendanceNotFound {
			return nil, nil
		}
		return nil, err
	}

	return &att, nil
}

// ListEmployeeIDsByDate implements attendance.AttendanceRepository.
func (r *attendanceRepository) ListEmployeeIDsByDate(ctx context.Context, date time.Time) ([]string, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT DISTINCT employee_id FROM attendances WHERE date = $1`

	rows, err := q.Query(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendance employee ids: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan employee id: %w", err)
		}
		ids = append(ids, id)
	}

	return ids, nil
}

// BulkCreateAbsences implements attendance.AttendanceRepository. Rows that
// collide on (employee_id, date) are silently skipped so a second sweep for
// the same day inserts nothing.
func (r *attendanceRepository) BulkCreateAbsences(ctx context.Context, atts []attendance.Attendance) ([]attendance.Attendance, error) {
	if len(atts) == 0 {
		return nil, nil
	}

	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendances (id, employee_id, date, status, day_leave, description)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (employee_id, date) DO NOTHING
		RETURNING id, employee_id, date, status, day_leave, description, created_at
	`

	var inserted []attendance.Attendance
	for _, att := range atts {
		id, err := uuid.NewV7()
		if err != nil {
			return nil, fmt.Errorf("failed to generate attendance id: %w", err)
		}
		att.ID = id.String()

		var row attendance.Attendance
		err = q.QueryRow(ctx, query,
			att.ID, att.EmployeeID, att.Date, att.Status, att.DayLeave, att.Description,
		).Scan(&row.ID, &row.EmployeeID, &row.Date, &row.Status, &row.DayLeave, &row.Description, &row.CreatedAt)
		if err != nil {
			if err == pgx.ErrNoRows {
				// Conflict: this employee already has a record for the day.
				continue
			}
			return nil, fmt.Errorf("failed to create absence record: %w", err)
		}

		inserted = append(inserted, row)
	}

	return inserted, nil
}

// ListByEmployee implements attendance.AttendanceRepository.
func (r *attendanceRepository) ListByEmployee(ctx context.Context, employeeID string) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := attendanceSelect + ` WHERE a.employee_id = $1 ORDER BY a.date DESC`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendances: %w", err)
	}
	defer rows.Close()

	return collectAttendances(rows)
}

// ListByDateRange implements attendance.AttendanceRepository.
func (r *attendanceRepository) ListByDateRange(ctx context.Context, start, end time.Time, filter attendance.AttendanceFilter) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	baseWhere := "a.date >= $1 AND a.date <= $2"
	args := []interface{}{start, end}
	argIdx := 3

	if filter.EmployeeID != nil && *filter.EmployeeID != "" {
		baseWhere += fmt.Sprintf(" AND a.employee_id = $%d", argIdx)
		args = append(args, *filter.EmployeeID)
		argIdx++
	}
	if filter.Status != nil && *filter.Status != "" {
		baseWhere += fmt.Sprintf(" AND a.status = $%d", argIdx)
		args = append(args, *filter.Status)
		argIdx++
	}

	query := attendanceSelect + ` WHERE ` + baseWhere + ` ORDER BY a.date ASC, a.created_at ASC`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendances: %w", err)
	}
	defer rows.Close()

	return collectAttendances(rows)
}

// ListByEmployeeAndMonth implements attendance.AttendanceRepository.
func (r *attendanceRepository) ListByEmployeeAndMonth(ctx context.Context, employeeID string, year int, month time.Month) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, -1)

	query := attendanceSelect + `
		WHERE a.employee_id = $1 AND a.date >= $2 AND a.date <= $3
		ORDER BY a.date ASC, a.created_at ASC`

	rows, err := q.Query(ctx, query, employeeID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to query monthly attendances: %w", err)
	}
	defer rows.Close()

	return collectAttendances(rows)
}

func collectAttendances(rows pgx.Rows) ([]attendance.Attendance, error) {
	var atts []attendance.Attendance
	for rows.Next() {
		att, err := scanAttendance(rows)
		if err != nil {
			return nil, err
		}
		atts = append(atts, att)
	}
	return atts, nil
}
