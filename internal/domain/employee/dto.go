package employee

import (
	"github.com/simpeg-app/simpeg-backend-go/internal/pkg/validator"
)

type EmployeeFilter struct {
	DepartmentID *string
	PositionID   *string
	IsActive     *bool
}

// PromoteRequest promotes an existing user to employee.
type PromoteRequest struct {
	UserID       string  `json:"user_id"`
	PositionID   string  `json:"position_id"`
	DepartmentID string  `json:"department_id"`
	JoinDate     *string `json:"join_date,omitempty"`
}

func (r PromoteRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.UserID) {
		errs = append(errs, validator.ValidationError{Field: "user_id", Message: "is required"})
	}
	if validator.IsEmpty(r.PositionID) {
		errs = append(errs, validator.ValidationError{Field: "position_id", Message: "is required"})
	}
	if validator.IsEmpty(r.DepartmentID) {
		errs = append(errs, validator.ValidationError{Field: "department_id", Message: "is required"})
	}
	if r.JoinDate != nil {
		if _, ok := validator.IsValidDate(*r.JoinDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "join_date", Message: "must be formatted as YYYY-MM-DD"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEmployeeRequest struct {
	ID           string  `json:"-"`
	PositionID   *string `json:"position_id,omitempty"`
	DepartmentID *string `json:"department_id,omitempty"`
	IsActive     *bool   `json:"is_active,omitempty"`
}

type EmployeeResponse struct {
	ID             string  `json:"id"`
	UserID         string  `json:"user_id"`
	PositionID     string  `json:"position_id"`
	DepartmentID   string  `json:"department_id"`
	JoinDate       string  `json:"join_date"`
	IsActive       bool    `json:"is_active"`
	UserName       *string `json:"user_name,omitempty"`
	UserNIK        *string `json:"user_nik,omitempty"`
	PositionName   *string `json:"position_name,omitempty"`
	DepartmentName *string `json:"department_name,omitempty"`
}

func ToResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:             e.ID,
		UserID:         e.UserID,
		PositionID:     e.PositionID,
		DepartmentID:   e.DepartmentID,
		JoinDate:       e.JoinDate.Format("2006-01-02"),
		IsActive:       e.IsActive,
		UserName:       e.UserName,
		UserNIK:        e.UserNIK,
		PositionName:   e.PositionName,
		DepartmentName: e.DepartmentName,
	}
}
