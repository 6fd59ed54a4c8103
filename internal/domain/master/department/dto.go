package department

import (
	"time"

	"github.com/simpeg-app/simpeg-backend-go/internal/pkg/validator"
)

type Department struct {
	ID        string
	Name      string
	CreatedAt time.Time
}

type CreateDepartmentRequest struct {
	Name string `json:"name"`
}

func (r *CreateDepartmentRequest) Validate() error {
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

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type DepartmentResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
