package assessment

import (
	"github.com/simpeg-app/simpeg-backend-go/internal/pkg/validator"
)

type CreateAssessmentRequest struct {
	EmployeeID string `json:"employee"`
	Manner     int    `json:"manner"`
	Expertness int    `json:"expertness"`
	Diligence  int    `json:"diligence"`
	Tidiness   int    `json:"tidiness"`
	Comment    string `json:"comment,omitempty"`
}

func (r CreateAssessmentRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee", Message: "is required"})
	}
	errs = append(errs, validateScore("manner", r.Manner)...)
	errs = append(errs, validateScore("expertness", r.Expertness)...)
	errs = append(errs, validateScore("diligence", r.Diligence)...)
	errs = append(errs, validateScore("tidiness", r.Tidiness)...)

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateAssessmentRequest struct {
	ID         string  `json:"-"`
	Manner     *int    `json:"manner,omitempty"`
	Expertness *int    `json:"expertness,omitempty"`
	Diligence  *int    `json:"diligence,omitempty"`
	Tidiness   *int    `json:"tidiness,omitempty"`
	Comment    *string `json:"comment,omitempty"`
}

func (r UpdateAssessmentRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Manner != nil {
		errs = append(errs, validateScore("manner", *r.Manner)...)
	}
	if r.Expertness != nil {
		errs = append(errs, validateScore("expertness", *r.Expertness)...)
	}
	if r.Diligence != nil {
		errs = append(errs, validateScore("diligence", *r.Diligence)...)
	}
	if r.Tidiness != nil {
		errs = append(errs, validateScore("tidiness", *r.Tidiness)...)
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func validateScore(field string, score int) validator.ValidationErrors {
	if score < 0 || score > 100 {
		return validator.ValidationErrors{{Field: field, Message: "must be between 0 and 100"}}
	}
	return nil
}

type AssessmentFilter struct {
	EmployeeID *string
}

type AssessmentResponse struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee"`
	Manner       int     `json:"manner"`
	Expertness   int     `json:"expertness"`
	Diligence    int     `json:"diligence"`
	Tidiness     int     `json:"tidiness"`
	Overall      float64 `json:"overall"`
	Comment      string  `json:"comment,omitempty"`
	EmployeeName *string `json:"employee_name,omitempty"`
}

func ToResponse(a Assessment) AssessmentResponse {
	return AssessmentResponse{
		ID:           a.ID,
		EmployeeID:   a.EmployeeID,
		Manner:       a.Manner,
		Expertness:   a.Expertness,
		Diligence:    a.Diligence,
		Tidiness:     a.Tidiness,
		Overall:      a.Overall(),
		Comment:      a.Comment,
		EmployeeName: a.EmployeeName,
	}
}
