package attendance

import (
	"context"
	"time"
)

// AttendanceService defines business logic for the attendance ledger.
type AttendanceService interface {
	// RecordAttendance inserts one record, expanding multi-day leave into
	// consecutive-day rows inside a single transaction.
	RecordAttendance(ctx context.Context, req RecordAttendanceRequest) (AttendanceResponse, error)

	// Reconcile marks every active employee without a record on date as
	// absent and returns only the newly created records. Idempotent.
	Reconcile(ctx context.Context, date time.Time) ([]AttendanceResponse, error)

	// ListMyAttendance retrieves records for the authenticated employee.
	ListMyAttendance(ctx context.Context) ([]AttendanceResponse, error)

	// ListAttendance retrieves records in a date range (admin).
	ListAttendance(ctx context.Context, filter ListAttendanceRequest) ([]AttendanceResponse, error)

	// MonthlySummary groups a date range by (year-month, employee) with
	// per-status counts. Derived read-only view.
	MonthlySummary(ctx context.Context, filter ListAttendanceRequest) ([]MonthlySummaryResponse, error)

	// Calendar returns a day-of-month keyed view of one employee's month.
	Calendar(ctx context.Context, req CalendarRequest) (CalendarResponse, error)

	// IssueQRCode returns the rotating check-in payload.
	IssueQRCode(ctx context.Context) (QRCodeResponse, error)

	// CheckInWithQR verifies a scanned payload and records today's
	// presence for the calling employee.
	CheckInWithQR(ctx context.Context, req QRCheckInRequest) (AttendanceResponse, error)
}
