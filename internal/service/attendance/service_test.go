package attendance

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simpeg-app/simpeg-backend-go/internal/domain/attendance"
	"github.com/simpeg-app/simpeg-backend-go/internal/domain/employee"
	"github.com/simpeg-app/simpeg-backend-go/internal/pkg/qrcode"
	"github.com/simpeg-app/simpeg-backend-go/internal/pkg/validator"
)

// ---- in-memory fakes ----

type attKey struct {
	employeeID string
	date       string
}

type fakeAttendanceRepo struct {
	rows   map[attKey]attendance.Attendance
	nextID int
}

func newFakeAttendanceRepo() *fakeAttendanceRepo {
	return &fakeAttendanceRepo{rows: make(map[attKey]attendance.Attendance)}
}

func (f *fakeAttendanceRepo) key(employeeID string, date time.Time) attKey {
	return attKey{employeeID: employeeID, date: date.Format("2006-01-02")}
}

func (f *fakeAttendanceRepo) Create(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	k := f.key(att.EmployeeID, att.Date)
	if _, exists := f.rows[k]; exists {
		return attendance.Attendance{}, attendance.ErrDuplicateDate
	}
	f.nextID++
	att.ID = time.Now().Format("20060102") + "-" + k.employeeID + "-" + k.date
	att.CreatedAt = time.Now()
	f.rows[k] = att
	return att, nil
}

func (f *fakeAttendanceRepo) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*attendance.Attendance, error) {
	if att, ok := f.rows[f.key(employeeID, date)]; ok {
		return &att, nil
	}
	return nil, nil
}

func (f *fakeAttendanceRepo) ListEmployeeIDsByDate(ctx context.Context, date time.Time) ([]string, error) {
	day := date.Format("2006-01-02")
	seen := map[string]bool{}
	var ids []string
	for k := range f.rows {
		if k.date == day && !seen[k.employeeID] {
			seen[k.employeeID] = true
			ids = append(ids, k.employeeID)
		}
	}
	return ids, nil
}

func (f *fakeAttendanceRepo) BulkCreateAbsences(ctx context.Context, atts []attendance.Attendance) ([]attendance.Attendance, error) {
	var inserted []attendance.Attendance
	for _, att := range atts {
		created, err := f.Create(ctx, att)
		if err == attendance.ErrDuplicateDate {
			continue
		}
		if err != nil {
			return nil, err
		}
		inserted = append(inserted, created)
	}
	return inserted, nil
}

func (f *fakeAttendanceRepo) ListByEmployee(ctx context.Context, employeeID string) ([]attendance.Attendance, error) {
	var atts []attendance.Attendance
	for k, att := range f.rows {
		if k.employeeID == employeeID {
			atts = append(atts, att)
		}
	}
	return atts, nil
}

func (f *fakeAttendanceRepo) ListByDateRange(ctx context.Context, start, end time.Time, filter attendance.AttendanceFilter) ([]attendance.Attendance, error) {
	var atts []attendance.Attendance
	for _, att := range f.rows {
		if att.Date.Before(start) || att.Date.After(end) {
			continue
		}
		if filter.EmployeeID != nil && att.EmployeeID != *filter.EmployeeID {
			continue
		}
		if filter.Status != nil && string(att.Status) != *filter.Status {
			continue
		}
		atts = append(atts, att)
	}
	return atts, nil
}

func (f *fakeAttendanceRepo) ListByEmployeeAndMonth(ctx context.Context, employeeID string, year int, month time.Month) ([]attendance.Attendance, error) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, -1)
	return f.ListByDateRange(ctx, start, end, attendance.AttendanceFilter{EmployeeID: &employeeID})
}

type fakeEmployeeRepo struct {
	employees map[string]employee.Employee
}

func newFakeEmployeeRepo(ids ...string) *fakeEmployeeRepo {
	f := &fakeEmployeeRepo{employees: make(map[string]employee.Employee)}
	for _, id := range ids {
		f.employees[id] = employee.Employee{ID: id, IsActive: true}
	}
	return f
}

func (f *fakeEmployeeRepo) Create(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	f.employees[e.ID] = e
	return e, nil
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	e, ok := f.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return e, nil
}

func (f *fakeEmployeeRepo) GetByUserID(ctx context.Context, userID string) (employee.Employee, error) {
	for _, e := range f.employees {
		if e.UserID == userID {
			return e, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) List(ctx context.Context, filter employee.EmployeeFilter) ([]employee.Employee, error) {
	var out []employee.Employee
	for _, e := range f.employees {
		out = append(out, e)
	}
	return out, nil
}

func (f *fakeEmployeeRepo) ListActiveNotIn(ctx context.Context, excludedIDs []string) ([]employee.Employee, error) {
	excluded := map[string]bool{}
	for _, id := range excludedIDs {
		excluded[id] = true
	}
	var out []employee.Employee
	for _, e := range f.employees {
		if e.IsActive && !excluded[e.ID] {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeEmployeeRepo) Update(ctx context.Context, e employee.Employee) error {
	f.employees[e.ID] = e
	return nil
}

// fakeTxManager snapshots the attendance rows before fn and restores
// them when fn fails, mimicking a rollback.
type fakeTxManager struct {
	repo *fakeAttendanceRepo
}

func (f *fakeTxManager) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	snapshot := make(map[attKey]attendance.Attendance, len(f.repo.rows))
	for k, v := range f.repo.rows {
		snapshot[k] = v
	}

	if err := fn(ctx); err != nil {
		f.repo.rows = snapshot
		return err
	}
	return nil
}

func employeeContext(t *testing.T, employeeID string) context.Context {
	t.Helper()
	token, err := jwt.NewBuilder().
		Claim("employee_id", employeeID).
		Claim("type", "access").
		Build()
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

func newTestService(t *testing.T, attRepo *fakeAttendanceRepo, empRepo *fakeEmployeeRepo) attendance.AttendanceService {
	t.Helper()
	qr := qrcode.NewGenerator("test-secret", 30*time.Second)
	logPath := filepath.Join(t.TempDir(), "reconcile.log")
	return NewAttendanceService(attRepo, empRepo, &fakeTxManager{repo: attRepo}, qr, logPath)
}

// ---- tests ----

func TestRecordAttendance_SingleDay(t *testing.T) {
	attRepo := newFakeAttendanceRepo()
	svc := newTestService(t, attRepo, newFakeEmployeeRepo("emp-1"))

	resp, err := svc.RecordAttendance(context.Background(), attendance.RecordAttendanceRequest{
		EmployeeID: "emp-1",
		Date:       "2025-06-02",
		Status:     "present",
	})
	require.NoError(t, err)

	assert.Equal(t, "present", resp.Status)
	assert.Equal(t, "2025-06-02", resp.Date)
	assert.Len(t, attRepo.rows, 1)
}

func TestRecordAttendance_LeaveExpansion(t *testing.T) {
	attRepo := newFakeAttendanceRepo()
	svc := newTestService(t, attRepo, newFakeEmployeeRepo("emp-1"))

	days := 3
	_, err := svc.RecordAttendance(context.Background(), attendance.RecordAttendanceRequest{
		EmployeeID: "emp-1",
		Date:       "2025-06-02",
		Status:     "leave",
		DayLeave:   &days,
	})
	require.NoError(t, err)

	require.Len(t, attRepo.rows, 3)
	for _, day := range []string{"2025-06-02", "2025-06-03", "2025-06-04"} {
		att, ok := attRepo.rows[attKey{employeeID: "emp-1", date: day}]
		require.True(t, ok, "missing leave row for %s", day)
		assert.Equal(t, attendance.StatusLeave, att.Status)
	}
}

func TestRecordAttendance_LeaveExpansionRollsBackOnConflict(t *testing.T) {
	attRepo := newFakeAttendanceRepo()
	svc := newTestService(t, attRepo, newFakeEmployeeRepo("emp-1"))

	// Pre-existing record in the middle of the requested range
	_, err := attRepo.Create(context.Background(), attendance.Attendance{
		EmployeeID: "emp-1",
		Date:       time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC),
		Status:     attendance.StatusPresent,
	})
	require.NoError(t, err)

	days := 3
	_, err = svc.RecordAttendance(context.Background(), attendance.RecordAttendanceRequest{
		EmployeeID: "emp-1",
		Date:       "2025-06-02",
		Status:     "leave",
		DayLeave:   &days,
	})
	require.ErrorIs(t, err, attendance.ErrDuplicateDate)

	// Nothing from the failed expansion survives
	assert.Len(t, attRepo.rows, 1)
}

func TestRecordAttendance_DayLeaveWithoutLeaveStatus(t *testing.T) {
	svc := newTestService(t, newFakeAttendanceRepo(), newFakeEmployeeRepo("emp-1"))

	days := 2
	_, err := svc.RecordAttendance(context.Background(), attendance.RecordAttendanceRequest{
		EmployeeID: "emp-1",
		Date:       "2025-06-02",
		Status:     "present",
		DayLeave:   &days,
	})
	assert.Error(t, err)
}

func TestRecordAttendance_UnknownStatus(t *testing.T) {
	svc := newTestService(t, newFakeAttendanceRepo(), newFakeEmployeeRepo("emp-1"))

	_, err := svc.RecordAttendance(context.Background(), attendance.RecordAttendanceRequest{
		EmployeeID: "emp-1",
		Date:       "2025-06-02",
		Status:     "vacation",
	})
	assert.Error(t, err)
}

func TestReconcile_MarksOnlyUncovered(t *testing.T) {
	attRepo := newFakeAttendanceRepo()
	empRepo := newFakeEmployeeRepo("emp-1", "emp-2", "emp-3")
	svc := newTestService(t, attRepo, empRepo)

	day := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	_, err := attRepo.Create(context.Background(), attendance.Attendance{
		EmployeeID: "emp-1",
		Date:       day,
		Status:     attendance.StatusPresent,
	})
	require.NoError(t, err)

	created, err := svc.Reconcile(context.Background(), day)
	require.NoError(t, err)

	require.Len(t, created, 2)
	for _, resp := range created {
		assert.Equal(t, "absence", resp.Status)
		assert.Equal(t, attendance.AbsenceDescription, resp.Description)
		assert.NotEqual(t, "emp-1", resp.EmployeeID)
	}
}

func TestReconcile_SkipsInactiveEmployees(t *testing.T) {
	attRepo := newFakeAttendanceRepo()
	empRepo := newFakeEmployeeRepo("emp-1")
	empRepo.employees["emp-2"] = employee.Employee{ID: "emp-2", IsActive: false}
	svc := newTestService(t, attRepo, empRepo)

	day := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	created, err := svc.Reconcile(context.Background(), day)
	require.NoError(t, err)

	require.Len(t, created, 1)
	assert.Equal(t, "emp-1", created[0].EmployeeID)
}

func TestReconcile_SecondRunInsertsNothing(t *testing.T) {
	attRepo := newFakeAttendanceRepo()
	svc := newTestService(t, attRepo, newFakeEmployeeRepo("emp-1", "emp-2"))

	day := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

	first, err := svc.Reconcile(context.Background(), day)
	require.NoError(t, err)
	require.Len(t, first, 2)

	second, err := svc.Reconcile(context.Background(), day)
	require.NoError(t, err)
	assert.Empty(t, second)
	assert.Len(t, attRepo.rows, 2)
}

func TestCheckInWithQR_Succeeds(t *testing.T) {
	attRepo := newFakeAttendanceRepo()
	empRepo := newFakeEmployeeRepo("emp-1")
	qr := qrcode.NewGenerator("test-secret", 30*time.Second)
	svc := NewAttendanceService(attRepo, empRepo, &fakeTxManager{repo: attRepo}, qr, "")

	payload := qr.Issue()
	resp, err := svc.CheckInWithQR(employeeContext(t, "emp-1"), attendance.QRCheckInRequest{
		Text: payload.Text,
		Time: payload.Time,
	})
	require.NoError(t, err)

	assert.Equal(t, "present", resp.Status)
	assert.Equal(t, "emp-1", resp.EmployeeID)
}

func TestCheckInWithQR_RejectsTamperedPayload(t *testing.T) {
	attRepo := newFakeAttendanceRepo()
	qr := qrcode.NewGenerator("test-secret", 30*time.Second)
	svc := NewAttendanceService(attRepo, newFakeEmployeeRepo("emp-1"), &fakeTxManager{repo: attRepo}, qr, "")

	payload := qr.Issue()
	_, err := svc.CheckInWithQR(employeeContext(t, "emp-1"), attendance.QRCheckInRequest{
		Text: payload.Text,
		Time: payload.Time + 1,
	})
	assert.ErrorIs(t, err, attendance.ErrQRCodeInvalid)
}

func TestCheckInWithQR_SecondScanConflicts(t *testing.T) {
	attRepo := newFakeAttendanceRepo()
	qr := qrcode.NewGenerator("test-secret", 30*time.Second)
	svc := NewAttendanceService(attRepo, newFakeEmployeeRepo("emp-1"), &fakeTxManager{repo: attRepo}, qr, "")

	payload := qr.Issue()
	ctx := employeeContext(t, "emp-1")

	_, err := svc.CheckInWithQR(ctx, attendance.QRCheckInRequest{Text: payload.Text, Time: payload.Time})
	require.NoError(t, err)

	_, err = svc.CheckInWithQR(ctx, attendance.QRCheckInRequest{Text: payload.Text, Time: payload.Time})
	assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedIn)
}

func TestListAttendance_InvertedRangeRejected(t *testing.T) {
	svc := newTestService(t, newFakeAttendanceRepo(), newFakeEmployeeRepo("emp-1"))

	start := "2025-06-20"
	end := "2025-06-10"
	_, err := svc.ListAttendance(context.Background(), attendance.ListAttendanceRequest{
		StartDate: &start,
		EndDate:   &end,
	})

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs.ToMap(), "start_date")
}

func TestMonthlySummary_CountsByStatus(t *testing.T) {
	attRepo := newFakeAttendanceRepo()
	svc := newTestService(t, attRepo, newFakeEmployeeRepo("emp-1"))

	ctx := context.Background()
	for day, status := range map[int]attendance.Status{
		2: attendance.StatusPresent,
		3: attendance.StatusPresent,
		4: attendance.StatusLeave,
		5: attendance.StatusAbsence,
	} {
		_, err := attRepo.Create(ctx, attendance.Attendance{
			EmployeeID: "emp-1",
			Date:       time.Date(2025, 6, day, 0, 0, 0, 0, time.UTC),
			Status:     status,
		})
		require.NoError(t, err)
	}

	month := "2025-06"
	summaries, err := svc.MonthlySummary(ctx, attendance.ListAttendanceRequest{Month: &month})
	require.NoError(t, err)

	require.Len(t, summaries, 1)
	assert.Equal(t, 2, summaries[0].Present)
	assert.Equal(t, 1, summaries[0].Leave)
	assert.Equal(t, 1, summaries[0].Absence)
	assert.Equal(t, "2025-06", summaries[0].Month)
}

func TestCalendar_MapsDaysOfMonth(t *testing.T) {
	attRepo := newFakeAttendanceRepo()
	svc := newTestService(t, attRepo, newFakeEmployeeRepo("emp-1"))

	ctx := context.Background()
	_, err := attRepo.Create(ctx, attendance.Attendance{
		EmployeeID: "emp-1",
		Date:       time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC),
		Status:     attendance.StatusPresent,
	})
	require.NoError(t, err)
	_, err = attRepo.Create(ctx, attendance.Attendance{
		EmployeeID: "emp-1",
		Date:       time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC),
		Status:     attendance.StatusLeave,
	})
	require.NoError(t, err)

	resp, err := svc.Calendar(ctx, attendance.CalendarRequest{EmployeeID: "emp-1", Month: "2025-06"})
	require.NoError(t, err)

	assert.Equal(t, "present", resp.Days[2])
	assert.Equal(t, "leave", resp.Days[3])
	assert.Equal(t, 1, resp.Present)
	assert.Equal(t, 1, resp.Leave)
	assert.Equal(t, 0, resp.Absence)
}
