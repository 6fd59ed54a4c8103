package position

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/simpeg-app/simpeg-backend-go/internal/pkg/validator"
)

type Position struct {
	ID           string
	Name         string
	DepartmentID string
	Salary       decimal.Decimal
	CreatedAt    time.Time

	// DTO / Join
	DepartmentName *string
}

type CreatePositionRequest struct {
	Name         string `json:"name"`
	DepartmentID string `json:"department_id"`
	Salary       string `json:"salary"`
}

func (r *CreatePositionRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	} else if len(r.Name) > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not exceed 100 characters",
		})
	}

	if validator.IsEmpty(r.DepartmentID) {
		errs = append(errs, validator.ValidationError{
			Field:   "department_id",
			Message: "department_id is required",
		})
	}

	if _, err := decimal.NewFromString(r.Salary); err != nil {
		errs = append(errs, validator.ValidationError{
			Field:   "salary",
			Message: "salary must be a decimal number",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type PositionResponse struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	DepartmentID   string  `json:"department_id"`
	DepartmentName *string `json:"department_name,omitempty"`
	Salary         string  `json:"salary"`
}
