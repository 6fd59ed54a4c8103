package recruitment

import "context"

// RecruitmentService defines business logic for job openings and the
// candidate ledger.
type RecruitmentService interface {
	CreateRecruitment(ctx context.Context, req CreateRecruitmentRequest) (RecruitmentResponse, error)
	GetRecruitment(ctx context.Context, id string) (RecruitmentResponse, error)
	ListRecruitments(ctx context.Context, filter RecruitmentFilter) ([]RecruitmentResponse, error)
	UpdateRecruitment(ctx context.Context, req UpdateRecruitmentRequest) (RecruitmentResponse, error)
	DeleteRecruitment(ctx context.Context, id string) error

	// Apply registers the user as a pending candidate, bumps the pending
	// counter and marks the user a candidate, all in one transaction.
	Apply(ctx context.Context, userID, recruitmentID string) (CandidateResponse, error)

	// Transition moves a candidate to a new status and keeps the parent
	// counters conserved. Transitioning to rejected deactivates the user.
	Transition(ctx context.Context, req TransitionRequest) (CandidateResponse, error)

	// TransitionByUser resolves the candidate from a (recruitment, user)
	// pair before applying the same transition contract.
	TransitionByUser(ctx context.Context, recruitmentID, userID string, req TransitionRequest) (CandidateResponse, error)

	GetCandidate(ctx context.Context, id string) (CandidateResponse, error)
	ListCandidates(ctx context.Context, recruitmentID string, status *string) ([]CandidateResponse, error)
	ListAllCandidates(ctx context.Context, filter CandidateFilter) ([]CandidateResponse, error)
	DeleteCandidate(ctx context.Context, id string) error
}
