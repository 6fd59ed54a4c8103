package attendance

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/simpeg-app/simpeg-backend-go/internal/domain/attendance"
	"github.com/simpeg-app/simpeg-backend-go/internal/domain/employee"
	"github.com/simpeg-app/simpeg-backend-go/internal/pkg/database"
	"github.com/simpeg-app/simpeg-backend-go/internal/pkg/qrcode"
	"github.com/simpeg-app/simpeg-backend-go/internal/pkg/validator"
)

type AttendanceServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
	tx             database.TxManager
	qr             *qrcode.Generator
	logPath        string
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	tx database.TxManager,
	qr *qrcode.Generator,
	logPath string,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
		tx:             tx,
		qr:             qr,
		logPath:        logPath,
	}
}

// RecordAttendance implements attendance.AttendanceService. A leave with
// day_leave > 1 expands into that many consecutive daily rows, all inside
// one transaction so a duplicate anywhere in the range rolls back the
// whole block.
func (s *AttendanceServiceImpl) RecordAttendance(ctx context.Context, req attendance.RecordAttendanceRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	status, err := attendance.ParseStatus(req.Status)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to parse date: %w", err)
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	days := 1
	if status == attendance.StatusLeave && req.DayLeave != nil {
		days = *req.DayLeave
	}

	var first attendance.Attendance
	err = s.tx.WithinTransaction(ctx, func(txCtx context.Context) error {
		for i := 0; i < days; i++ {
			att := attendance.Attendance{
				EmployeeID:  req.EmployeeID,
				Date:        date.AddDate(0, 0, i),
				Status:      status,
				DayLeave:    req.DayLeave,
				Description: req.Description,
			}

			created, err := s.attendanceRepo.Create(txCtx, att)
			if err != nil {
				return err
			}
			if i == 0 {
				first = created
			}
		}
		return nil
	})
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return attendance.ToResponse(first), nil
}

// Reconcile implements attendance.AttendanceService. Employees with no
// record on date get a synthetic absence row; employees already covered,
// and inactive ones, are left alone. A second run for the same date
// inserts nothing thanks to the (employee, date) uniqueness.
func (s *AttendanceServiceImpl) Reconcile(ctx context.Context, date time.Time) ([]attendance.AttendanceResponse, error) {
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)

	coveredIDs, err := s.attendanceRepo.ListEmployeeIDsByDate(ctx, day)
	if err != nil {
		return nil, fmt.Errorf("failed to list covered employees: %w", err)
	}

	uncovered, err := s.employeeRepo.ListActiveNotIn(ctx, coveredIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to list uncovered employees: %w", err)
	}

	absences := make([]attendance.Attendance, 0, len(uncovered))
	for _, emp := range uncovered {
		absences = append(absences, attendance.Attendance{
			EmployeeID:  emp.ID,
			Date:        day,
			Status:      attendance.StatusAbsence,
			Description: attendance.AbsenceDescription,
		})
	}

	inserted, err := s.attendanceRepo.BulkCreateAbsences(ctx, absences)
	if err != nil {
		return nil, fmt.Errorf("failed to create absence records: %w", err)
	}

	s.appendReconcileLog(day, len(inserted))

	responses := make([]attendance.AttendanceResponse, 0, len(inserted))
	for _, att := range inserted {
		responses = append(responses, attendance.ToResponse(att))
	}
	return responses, nil
}

// appendReconcileLog writes one "date count" line per sweep. A failure to
// write the audit line never fails the sweep itself.
func (s *AttendanceServiceImpl) appendReconcileLog(day time.Time, count int) {
	if s.logPath == "" {
		return
	}

	f, err := os.OpenFile(s.logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		slog.Warn("could not open reconcile log", "path", s.logPath, "error", err)
		return
	}
	defer f.Close()

	if _, err := fmt.Fprintf(f, "%s %d\n", day.Format("2006-01-02"), count); err != nil {
		slog.Warn("could not append reconcile log", "path", s.logPath, "error", err)
	}
}

// ListMyAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ListMyAttendance(ctx context.Context) ([]attendance.AttendanceResponse, error) {
	employeeID, err := employeeIDFromClaims(ctx)
	if err != nil {
		return nil, err
	}

	atts, err := s.attendanceRepo.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	responses := make([]attendance.AttendanceResponse, 0, len(atts))
	for _, att := range atts {
		responses = append(responses, attendance.ToResponse(att))
	}
	return responses, nil
}

// ListAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ListAttendance(ctx context.Context, filter attendance.ListAttendanceRequest) ([]attendance.AttendanceResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	start, end, err := resolveRange(filter)
	if err != nil {
		return nil, err
	}

	atts, err := s.attendanceRepo.ListByDateRange(ctx, start, end, attendance.AttendanceFilter{
		EmployeeID: filter.EmployeeID,
		Status:     filter.Status,
	})
	if err != nil {
		return nil, err
	}

	responses := make([]attendance.AttendanceResponse, 0, len(atts))
	for _, att := range atts {
		responses = append(responses, attendance.ToResponse(att))
	}
	return responses, nil
}

// MonthlySummary implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) MonthlySummary(ctx context.Context, filter attendance.ListAttendanceRequest) ([]attendance.MonthlySummaryResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	start, end, err := resolveRange(filter)
	if err != nil {
		return nil, err
	}

	atts, err := s.attendanceRepo.ListByDateRange(ctx, start, end, attendance.AttendanceFilter{
		EmployeeID: filter.EmployeeID,
		Status:     filter.Status,
	})
	if err != nil {
		return nil, err
	}

	type bucketKey struct {
		month      string
		employeeID string
	}

	buckets := make(map[bucketKey]*attendance.MonthlySummaryResponse)
	var order []bucketKey
	for _, att := range atts {
		key := bucketKey{month: att.Date.Format("2006-01"), employeeID: att.EmployeeID}
		b, ok := buckets[key]
		if !ok {
			b = &attendance.MonthlySummaryResponse{Month: key.month, EmployeeID: key.employeeID}
			buckets[key] = b
			order = append(order, key)
		}
		switch att.Status {
		case attendance.StatusPresent:
			b.Present++
		case attendance.StatusLeave:
			b.Leave++
		case attendance.StatusAbsence:
			b.Absence++
		default:
			return nil, fmt.Errorf("attendance %s: %w", att.ID, attendance.ErrInvalidStatus)
		}
	}

	summaries := make([]attendance.MonthlySummaryResponse, 0, len(order))
	for _, key := range order {
		summaries = append(summaries, *buckets[key])
	}
	return summaries, nil
}

// Calendar implements attendance.AttendanceService. Rows arrive ordered
// by creation time, so writing them into the day map in order makes the
// last write win for any duplicated day.
func (s *AttendanceServiceImpl) Calendar(ctx context.Context, req attendance.CalendarRequest) (attendance.CalendarResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.CalendarResponse{}, err
	}

	month, err := time.Parse("2006-01", req.Month)
	if err != nil {
		return attendance.CalendarResponse{}, fmt.Errorf("failed to parse month: %w", err)
	}

	atts, err := s.attendanceRepo.ListByEmployeeAndMonth(ctx, req.EmployeeID, month.Year(), month.Month())
	if err != nil {
		return attendance.CalendarResponse{}, err
	}

	resp := attendance.CalendarResponse{
		EmployeeID: req.EmployeeID,
		Month:      req.Month,
		Days:       make(map[int]string),
	}
	for _, att := range atts {
		resp.Days[att.Date.Day()] = string(att.Status)
	}
	for _, status := range resp.Days {
		switch attendance.Status(status) {
		case attendance.StatusPresent:
			resp.Present++
		case attendance.StatusLeave:
			resp.Leave++
		case attendance.StatusAbsence:
			resp.Absence++
		}
	}

	return resp, nil
}

// IssueQRCode implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) IssueQRCode(ctx context.Context) (attendance.QRCodeResponse, error) {
	payload := s.qr.Issue()
	return attendance.QRCodeResponse{Text: payload.Text, Time: payload.Time}, nil
}

// CheckInWithQR implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) CheckInWithQR(ctx context.Context, req attendance.QRCheckInRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	if err := s.qr.Verify(req.Text, req.Time); err != nil {
		switch err {
		case qrcode.ErrExpiredToken:
			return attendance.AttendanceResponse{}, attendance.ErrQRCodeExpired
		default:
			return attendance.AttendanceResponse{}, attendance.ErrQRCodeInvalid
		}
	}

	employeeID, err := employeeIDFromClaims(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	existing, err := s.attendanceRepo.GetByEmployeeAndDate(ctx, employeeID, today)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	if existing != nil {
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyCheckedIn
	}

	created, err := s.attendanceRepo.Create(ctx, attendance.Attendance{
		EmployeeID: employeeID,
		Date:       today,
		Status:     attendance.StatusPresent,
	})
	if err != nil {
		// Lost the race against a concurrent check-in for the same day
		if err == attendance.ErrDuplicateDate {
			return attendance.AttendanceResponse{}, attendance.ErrAlreadyCheckedIn
		}
		return attendance.AttendanceResponse{}, err
	}

	return attendance.ToResponse(created), nil
}

func employeeIDFromClaims(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to read token claims: %w", err)
	}

	employeeID, ok := claims["employee_id"].(string)
	if !ok || employeeID == "" {
		return "", employee.ErrEmployeeNotFound
	}
	return employeeID, nil
}

func resolveRange(filter attendance.ListAttendanceRequest) (time.Time, time.Time, error) {
	if filter.Month != nil {
		month, err := time.Parse("2006-01", *filter.Month)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("failed to parse month: %w", err)
		}
		start := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, time.UTC)
		return start, start.AddDate(0, 1, -1), nil
	}

	// Default: the current month to date
	now := time.Now()
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	if filter.StartDate != nil {
		parsed, err := time.Parse("2006-01-02", *filter.StartDate)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("failed to parse start_date: %w", err)
		}
		start = parsed
	}
	if filter.EndDate != nil {
		parsed, err := time.Parse("2006-01-02", *filter.EndDate)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("failed to parse end_date: %w", err)
		}
		end = parsed
	}

	// An inverted range would scan nothing and look like an empty
	// ledger; reject it instead.
	if start.After(end) {
		return time.Time{}, time.Time{}, validator.ValidationErrors{
			{Field: "start_date", Message: "must not be after end_date"},
		}
	}

	return start, end, nil
}
