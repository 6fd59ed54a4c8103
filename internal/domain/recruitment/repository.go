package recruitment

import "context"

type RecruitmentRepository interface {
	Create(ctx context.Context, r Recruitment) (Recruitment, error)
	GetByID(ctx context.Context, id string) (Recruitment, error)
	List(ctx context.Context, filter RecruitmentFilter) ([]Recruitment, error)
	Update(ctx context.Context, req UpdateRecruitmentRequest) (Recruitment, error)
	Delete(ctx context.Context, id string) error

	// IncrementCounter atomically bumps one status bucket by one,
	// scoped by recruitment id. Fails with ErrInvalidStatus on an
	// unrecognized bucket rather than no-opping.
	IncrementCounter(ctx context.Context, id string, bucket CandidateStatus) error

	// MoveCounter atomically decrements `from` and increments `to` in a
	// single statement so concurrent transitions cannot interleave a
	// partial adjustment.
	MoveCounter(ctx context.Context, id string, from, to CandidateStatus) error

	// SetCounters overwrites all four buckets at once. Used when the
	// cache is recomputed from the candidate ledger.
	SetCounters(ctx context.Context, id string, counts map[CandidateStatus]int) error
}

type CandidateRepository interface {
	// Create inserts a candidate. A (user, recruitment) collision returns
	// ErrAlreadyApplied.
	Create(ctx context.Context, c Candidate) (Candidate, error)

	GetByID(ctx context.Context, id string) (Candidate, error)
	GetByUserAndRecruitment(ctx context.Context, userID, recruitmentID string) (*Candidate, error)
	ListByRecruitment(ctx context.Context, recruitmentID string, status *CandidateStatus) ([]Candidate, error)
	List(ctx context.Context, filter CandidateFilter) ([]Candidate, error)
	// UpdateStatus writes the new status only if the row still holds
	// `from`. A competing transition that committed in between makes the
	// write hit zero rows, which surfaces as ErrStatusConflict so the
	// caller's counter move rolls back with it.
	UpdateStatus(ctx context.Context, id string, from, to CandidateStatus, comment *string) (Candidate, error)
	Delete(ctx context.Context, id string) error

	// CountByStatus aggregates candidates of one recruitment into the
	// four buckets straight from the ledger. Used to audit the cached
	// counters on the parent recruitment.
	CountByStatus(ctx context.Context, recruitmentID string) (map[CandidateStatus]int, error)
}
