package recruitment

import (
	"github.com/simpeg-app/simpeg-backend-go/internal/pkg/validator"
)

type RecruitmentFilter struct {
	Status   *string
	IsActive *bool
}

type CandidateFilter struct {
	Status    *string
	DateStart *string
	DateEnd   *string
}

type CreateRecruitmentRequest struct {
	Title          string `json:"title"`
	PositionID     string `json:"position_id"`
	NumberRequired int    `json:"number_required"`
	Description    string `json:"description,omitempty"`
	ExpiredAt      string `json:"expired_at"`
}

func (r CreateRecruitmentRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.PositionID) {
		errs = append(errs, validator.ValidationError{Field: "position_id", Message: "is required"})
	}
	if r.NumberRequired < 1 {
		errs = append(errs, validator.ValidationError{Field: "number_required", Message: "must be at least 1"})
	}
	if _, ok := validator.IsValidDate(r.ExpiredAt); !ok {
		errs = append(errs, validator.ValidationError{Field: "expired_at", Message: "must be formatted as YYYY-MM-DD"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateRecruitmentRequest struct {
	ID             string  `json:"-"`
	Title          *string `json:"title,omitempty"`
	NumberRequired *int    `json:"number_required,omitempty"`
	Description    *string `json:"description,omitempty"`
	Status         *string `json:"status,omitempty"`
	ExpiredAt      *string `json:"expired_at,omitempty"`
	IsActive       *bool   `json:"is_active,omitempty"`
}

func (r UpdateRecruitmentRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.NumberRequired != nil && *r.NumberRequired < 1 {
		errs = append(errs, validator.ValidationError{Field: "number_required", Message: "must be at least 1"})
	}
	if r.ExpiredAt != nil {
		if _, ok := validator.IsValidDate(*r.ExpiredAt); !ok {
			errs = append(errs, validator.ValidationError{Field: "expired_at", Message: "must be formatted as YYYY-MM-DD"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type TransitionRequest struct {
	CandidateID string  `json:"-"`
	Status      string  `json:"status"`
	Comment     *string `json:"comment,omitempty"`
}

func (r TransitionRequest) Validate() error {
	var errs validator.ValidationErrors

	if !CandidateStatus(r.Status).Valid() {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "must be one of pending, accepted, rejected, hired"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RecruitmentResponse struct {
	ID             string `json:"id"`
	Title          string `json:"title"`
	PositionID     string `json:"position_id"`
	PositionName   string `json:"position_name"`
	DepartmentID   string `json:"department_id"`
	DepartmentName string `json:"department_name"`
	NumberRequired int    `json:"number_required"`
	Description    string `json:"description,omitempty"`
	Status         string `json:"status"`
	Pending        int    `json:"pending"`
	Accepted       int    `json:"accepted"`
	Rejected       int    `json:"rejected"`
	Hired          int    `json:"hired"`
	CandidateTotal int    `json:"candidate_total"`
	ExpiredAt      string `json:"expired_at"`
	IsActive       bool   `json:"is_active"`
}

func ToRecruitmentResponse(r Recruitment) RecruitmentResponse {
	return RecruitmentResponse{
		ID:             r.ID,
		Title:          r.Title,
		PositionID:     r.PositionID,
		PositionName:   r.PositionName,
		DepartmentID:   r.DepartmentID,
		DepartmentName: r.DepartmentName,
		NumberRequired: r.NumberRequired,
		Description:    r.Description,
		Status:         r.Status,
		Pending:        r.Pending,
		Accepted:       r.Accepted,
		Rejected:       r.Rejected,
		Hired:          r.Hired,
		CandidateTotal: r.CandidateTotal(),
		ExpiredAt:      r.ExpiredAt.Format("2006-01-02"),
		IsActive:       r.IsActive,
	}
}

type CandidateResponse struct {
	ID            string  `json:"id"`
	UserID        string  `json:"user"`
	RecruitmentID string  `json:"recruitment"`
	Status        string  `json:"status"`
	AppliedAt     string  `json:"applied_at"`
	IsActive      bool    `json:"is_active"`
	Comment       string  `json:"comment,omitempty"`
	UserName      *string `json:"user_name,omitempty"`
	PositionName  *string `json:"position_name,omitempty"`
}

func ToCandidateResponse(c Candidate) CandidateResponse {
	return CandidateResponse{
		ID:            c.ID,
		UserID:        c.UserID,
		RecruitmentID: c.RecruitmentID,
		Status:        string(c.Status),
		AppliedAt:     c.AppliedAt.Format("2006-01-02 15:04:05"),
		IsActive:      c.IsActive,
		Comment:       c.Comment,
		UserName:      c.UserName,
		PositionName:  c.PositionName,
	}
}
