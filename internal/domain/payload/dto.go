package payload

import (
	"github.com/shopspring/decimal"
	"github.com/simpeg-app/simpeg-backend-go/internal/pkg/validator"
)

type UpsertPayloadRequest struct {
	EmployeeID string  `json:"employee"`
	Month      string  `json:"month"`
	Salary     *string `json:"salary,omitempty"` // defaults to position salary
	Bonus      string  `json:"bonus,omitempty"`
	Reduction  string  `json:"reduction,omitempty"`
}

func (r UpsertPayloadRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee", Message: "is required"})
	}
	if _, ok := validator.IsValidYearMonth(r.Month); !ok {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "must be formatted as YYYY-MM"})
	}
	if r.Salary != nil {
		if _, err := decimal.NewFromString(*r.Salary); err != nil {
			errs = append(errs, validator.ValidationError{Field: "salary", Message: "must be a decimal number"})
		}
	}
	if r.Bonus != "" {
		if _, err := decimal.NewFromString(r.Bonus); err != nil {
			errs = append(errs, validator.ValidationError{Field: "bonus", Message: "must be a decimal number"})
		}
	}
	if r.Reduction != "" {
		if _, err := decimal.NewFromString(r.Reduction); err != nil {
			errs = append(errs, validator.ValidationError{Field: "reduction", Message: "must be a decimal number"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type PayloadResponse struct {
	ID           string  `json:"id"`
	Month        string  `json:"month"`
	EmployeeID   string  `json:"employee"`
	DepartmentID string  `json:"department"`
	Salary       string  `json:"salary"`
	Bonus        string  `json:"bonus"`
	Reduction    string  `json:"reduction"`
	Net          string  `json:"net"`
	EmployeeName *string `json:"employee_name,omitempty"`
}

func ToResponse(p Payload) PayloadResponse {
	return PayloadResponse{
		ID:           p.ID,
		Month:        p.Month,
		EmployeeID:   p.EmployeeID,
		DepartmentID: p.DepartmentID,
		Salary:       p.Salary.String(),
		Bonus:        p.Bonus.String(),
		Reduction:    p.Reduction.String(),
		Net:          p.Net().String(),
		EmployeeName: p.EmployeeName,
	}
}
