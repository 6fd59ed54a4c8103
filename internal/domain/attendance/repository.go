package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access methods for attendance records.
type AttendanceRepository interface {
	// Create inserts a single attendance record. A (employee, date)
	// collision returns ErrDuplicateDate.
	Create(ctx context.Context, att Attendance) (Attendance, error)

	// GetByEmployeeAndDate retrieves attendance for a specific employee on
	// a specific date. Used to prevent double check-in. Returns nil when
	// no record exists.
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*Attendance, error)

	// ListEmployeeIDsByDate returns the distinct employee ids having any
	// record on the given date, feeding the reconciliation set difference.
	ListEmployeeIDsByDate(ctx context.Context, date time.Time) ([]string, error)

	// BulkCreateAbsences inserts synthetic absence rows, skipping
	// (employee, date) pairs that already exist, and returns only the rows
	// actually inserted. Safe to call twice for the same date.
	BulkCreateAbsences(ctx context.Context, atts []Attendance) ([]Attendance, error)

	ListByEmployee(ctx context.Context, employeeID string) ([]Attendance, error)
	ListByDateRange(ctx context.Context, start, end time.Time, filter AttendanceFilter) ([]Attendance, error)
	ListByEmployeeAndMonth(ctx context.Context, employeeID string, year int, month time.Month) ([]Attendance, error)
}
