package response

import (
	"errors"
	"net/http"

	"github.com/simpeg-app/simpeg-backend-go/internal/domain/assessment"
	"github.com/simpeg-app/simpeg-backend-go/internal/domain/attendance"
	"github.com/simpeg-app/simpeg-backend-go/internal/domain/auth"
	"github.com/simpeg-app/simpeg-backend-go/internal/domain/employee"
	"github.com/simpeg-app/simpeg-backend-go/internal/domain/master/department"
	"github.com/simpeg-app/simpeg-backend-go/internal/domain/master/position"
	"github.com/simpeg-app/simpeg-backend-go/internal/domain/payload"
	"github.com/simpeg-app/simpeg-backend-go/internal/domain/recruitment"
	"github.com/simpeg-app/simpeg-backend-go/internal/domain/user"
	"github.com/simpeg-app/simpeg-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "NIK or password is incorrect")
	case errors.Is(err, auth.ErrInvalidRefreshToken):
		Unauthorized(w, "Refresh token is invalid or expired")

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrNIKExists):
		Conflict(w, "NIK already registered")
	case errors.Is(err, user.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, user.ErrInvalidRole):
		BadRequest(w, "Unknown role", nil)
	case errors.Is(err, user.ErrRoleTransitionDenied):
		Forbidden(w, "Role transition not allowed")
	case errors.Is(err, user.ErrUserInactive):
		Forbidden(w, "User account is inactive")
	case errors.Is(err, user.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privilege required")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrAlreadyEmployee):
		Conflict(w, "User is already registered as an employee")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrInvalidStatus):
		BadRequest(w, "Unknown attendance status", nil)
	case errors.Is(err, attendance.ErrDuplicateDate):
		Conflict(w, "Attendance already recorded for this date")
	case errors.Is(err, attendance.ErrAlreadyCheckedIn):
		Conflict(w, "Already checked in today")
	case errors.Is(err, attendance.ErrQRCodeExpired):
		Forbidden(w, "QR code has expired")
	case errors.Is(err, attendance.ErrQRCodeInvalid):
		Forbidden(w, "QR code could not be verified")

	// Recruitment domain errors
	case errors.Is(err, recruitment.ErrRecruitmentNotFound):
		NotFound(w, "Recruitment not found")
	case errors.Is(err, recruitment.ErrRecruitmentClosed):
		Forbidden(w, "Recruitment is no longer accepting applications")
	case errors.Is(err, recruitment.ErrCandidateNotFound):
		NotFound(w, "Candidate not found")
	case errors.Is(err, recruitment.ErrAlreadyApplied):
		Conflict(w, "Already applied to this recruitment")
	case errors.Is(err, recruitment.ErrAlreadyEmployed):
		Forbidden(w, "User is already an employee")
	case errors.Is(err, recruitment.ErrInvalidStatus):
		BadRequest(w, "Unknown candidate status", nil)
	case errors.Is(err, recruitment.ErrStatusConflict):
		Conflict(w, "Candidate was updated by someone else, retry")

	// Master data errors
	case errors.Is(err, department.ErrDepartmentNotFound):
		NotFound(w, "Department not found")
	case errors.Is(err, department.ErrDepartmentNameExists):
		Conflict(w, "Department with this name already exists")
	case errors.Is(err, position.ErrPositionNotFound):
		NotFound(w, "Position not found")
	case errors.Is(err, position.ErrPositionNameExists):
		Conflict(w, "Position with this name already exists")

	// Assessment domain errors
	case errors.Is(err, assessment.ErrAssessmentNotFound):
		NotFound(w, "Assessment not found")

	// Payload domain errors
	case errors.Is(err, payload.ErrPayloadNotFound):
		NotFound(w, "Payload not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
