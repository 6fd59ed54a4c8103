package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"
	"github.com/simpeg-app/simpeg-backend-go/internal/domain/attendance"
	"github.com/simpeg-app/simpeg-backend-go/internal/domain/employee"
	"github.com/simpeg-app/simpeg-backend-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	Record(w http.ResponseWriter, r *http.Request)
	RecordMine(w http.ResponseWriter, r *http.Request)
	ForceAbsence(w http.ResponseWriter, r *http.Request)
	GetMyAttendance(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	MonthlySummary(w http.ResponseWriter, r *http.Request)
	Calendar(w http.ResponseWriter, r *http.Request)
	GetQRCode(w http.ResponseWriter, r *http.Request)
	CheckInQRCode(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{
		attendanceService: attendanceService,
	}
}

// Record implements AttendanceHandler.
func (h *attendanceHandlerImpl) Record(w http.ResponseWriter, r *http.Request) {
	var req attendance.RecordAttendanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.attendanceService.RecordAttendance(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Attendance recorded", result)
}

// RecordMine implements AttendanceHandler. Self-submission: the employee
// id comes from the access token, not the body.
func (h *attendanceHandlerImpl) RecordMine(w http.ResponseWriter, r *http.Request) {
	var req attendance.RecordAttendanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		response.Unauthorized(w, "Missing or invalid token")
		return
	}
	employeeID, ok := claims["employee_id"].(string)
	if !ok || employeeID == "" {
		response.HandleError(w, employee.ErrEmployeeNotFound)
		return
	}
	req.EmployeeID = employeeID

	result, err := h.attendanceService.RecordAttendance(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Attendance recorded", result)
}

// ForceAbsence implements AttendanceHandler. Marks every employee without
// a record today as absent and returns the newly created rows.
func (h *attendanceHandlerImpl) ForceAbsence(w http.ResponseWriter, r *http.Request) {
	result, err := h.attendanceService.Reconcile(r.Context(), time.Now())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Absence reconciliation completed", result)
}

// GetMyAttendance implements AttendanceHandler.
func (h *attendanceHandlerImpl) GetMyAttendance(w http.ResponseWriter, r *http.Request) {
	result, err := h.attendanceService.ListMyAttendance(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func listFilterFromQuery(r *http.Request) attendance.ListAttendanceRequest {
	var filter attendance.ListAttendanceRequest
	q := r.URL.Query()

	if month := q.Get("month"); month != "" {
		filter.Month = &month
	}
	if start := q.Get("start_date"); start != "" {
		filter.StartDate = &start
	}
	if end := q.Get("end_date"); end != "" {
		filter.EndDate = &end
	}
	if employeeID := q.Get("employee"); employeeID != "" {
		filter.EmployeeID = &employeeID
	}
	if status := q.Get("status"); status != "" {
		filter.Status = &status
	}

	return filter
}

// List implements AttendanceHandler.
func (h *attendanceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.attendanceService.ListAttendance(r.Context(), listFilterFromQuery(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// MonthlySummary implements AttendanceHandler.
func (h *attendanceHandlerImpl) MonthlySummary(w http.ResponseWriter, r *http.Request) {
	result, err := h.attendanceService.MonthlySummary(r.Context(), listFilterFromQuery(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Calendar implements AttendanceHandler.
func (h *attendanceHandlerImpl) Calendar(w http.ResponseWriter, r *http.Request) {
	req := attendance.CalendarRequest{
		EmployeeID: chi.URLParam(r, "employeeId"),
		Month:      r.URL.Query().Get("month"),
	}

	result, err := h.attendanceService.Calendar(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetQRCode implements AttendanceHandler.
func (h *attendanceHandlerImpl) GetQRCode(w http.ResponseWriter, r *http.Request) {
	result, err := h.attendanceService.IssueQRCode(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// CheckInQRCode implements AttendanceHandler.
func (h *attendanceHandlerImpl) CheckInQRCode(w http.ResponseWriter, r *http.Request) {
	var req attendance.QRCheckInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.attendanceService.CheckInWithQR(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Check-in successful", result)
}
