package assessment

import (
	"context"

	"github.com/simpeg-app/simpeg-backend-go/internal/domain/assessment"
	"github.com/simpeg-app/simpeg-backend-go/internal/domain/employee"
)

type AssessmentServiceImpl struct {
	assessmentRepo assessment.AssessmentRepository
	employeeRepo   employee.EmployeeRepository
}

func NewAssessmentService(
	assessmentRepo assessment.AssessmentRepository,
	employeeRepo employee.EmployeeRepository,
) assessment.AssessmentService {
	return &AssessmentServiceImpl{
		assessmentRepo: assessmentRepo,
		employeeRepo:   employeeRepo,
	}
}

// Create implements assessment.AssessmentService.
func (s *AssessmentServiceImpl) Create(ctx context.Context, req assessment.CreateAssessmentRequest) (assessment.AssessmentResponse, error) {
	if err := req.Validate(); err != nil {
		return assessment.AssessmentResponse{}, err
	}

	employeeData, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return assessment.AssessmentResponse{}, err
	}

	created, err := s.assessmentRepo.Create(ctx, assessment.Assessment{
		EmployeeID: employeeData.ID,
		Manner:     req.Manner,
		Expertness: req.Expertness,
		Diligence:  req.Diligence,
		Tidiness:   req.Tidiness,
		Comment:    req.Comment,
	})
	if err != nil {
		return assessment.AssessmentResponse{}, err
	}

	return assessment.ToResponse(created), nil
}

// Get implements assessment.AssessmentService.
func (s *AssessmentServiceImpl) Get(ctx context.Context, id string) (assessment.AssessmentResponse, error) {
	a, err := s.assessmentRepo.GetByID(ctx, id)
	if err != nil {
		return assessment.AssessmentResponse{}, err
	}
	return assessment.ToResponse(a), nil
}

// List implements assessment.AssessmentService.
func (s *AssessmentServiceImpl) List(ctx context.Context, filter assessment.AssessmentFilter) ([]assessment.AssessmentResponse, error) {
	assessments, err := s.assessmentRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]assessment.AssessmentResponse, 0, len(assessments))
	for _, a := range assessments {
		responses = append(responses, assessment.ToResponse(a))
	}
	return responses, nil
}

// Update implements assessment.AssessmentService.
func (s *AssessmentServiceImpl) Update(ctx context.Context, req assessment.UpdateAssessmentRequest) (assessment.AssessmentResponse, error) {
	if err := req.Validate(); err != nil {
		return assessment.AssessmentResponse{}, err
	}

	updated, err := s.assessmentRepo.Update(ctx, req)
	if err != nil {
		return assessment.AssessmentResponse{}, err
	}

	return assessment.ToResponse(updated), nil
}

// Delete implements assessment.AssessmentService.
func (s *AssessmentServiceImpl) Delete(ctx context.Context, id string) error {
	return s.assessmentRepo.Delete(ctx, id)
}
