package assessment

import "context"

type AssessmentRepository interface {
	Create(ctx context.Context, a Assessment) (Assessment, error)
	GetByID(ctx context.Context, id string) (Assessment, error)
	List(ctx context.Context, filter AssessmentFilter) ([]Assessment, error)

	// Update writes only the fields set on the request.
	Update(ctx context.Context, req UpdateAssessmentRequest) (Assessment, error)

	Delete(ctx context.Context, id string) error
}
