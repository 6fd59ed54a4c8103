package assessment

import "context"

type AssessmentService interface {
	// Create records a review for an existing employee.
	Create(ctx context.Context, req CreateAssessmentRequest) (AssessmentResponse, error)

	Get(ctx context.Context, id string) (AssessmentResponse, error)
	List(ctx context.Context, filter AssessmentFilter) ([]AssessmentResponse, error)
	Update(ctx context.Context, req UpdateAssessmentRequest) (AssessmentResponse, error)
	Delete(ctx context.Context, id string) error
}
