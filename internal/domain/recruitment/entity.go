package recruitment

import "time"

// CandidateStatus is the closed set of application states. The four
// values double as counter buckets on Recruitment; keeping the set
// closed means a counter adjustment can never silently miss a bucket.
type CandidateStatus string

const (
	StatusPending  CandidateStatus = "pending"
	StatusAccepted CandidateStatus = "accepted"
	StatusRejected CandidateStatus = "rejected"
	StatusHired    CandidateStatus = "hired"
)

// Valid reports whether s is one of the four counter buckets.
func (s CandidateStatus) Valid() bool {
	switch s {
	case StatusPending, StatusAccepted, StatusRejected, StatusHired:
		return true
	}
	return false
}

// ParseCandidateStatus converts a raw string into a CandidateStatus or
// fails loudly with ErrInvalidStatus.
func ParseCandidateStatus(raw string) (CandidateStatus, error) {
	s := CandidateStatus(raw)
	if !s.Valid() {
		return "", ErrInvalidStatus
	}
	return s, nil
}

type Recruitment struct {
	ID             string
	Title          string
	PositionID     string
	PositionName   string
	DepartmentID   string
	DepartmentName string
	NumberRequired int
	Description    string
	Status         string // free text: pending, open, closed, ...
	ExpiredAt      time.Time
	IsActive       bool
	CreatedAt      time.Time
	UpdatedAt      time.Time

	// Aggregate counters: a cached projection of the candidate ledger.
	// Invariant: Pending+Accepted+Rejected+Hired equals the number of
	// candidates referencing this recruitment in one of those statuses.
	Pending  int
	Accepted int
	Rejected int
	Hired    int
}

// CandidateTotal is the number of applications across all buckets.
func (r Recruitment) CandidateTotal() int {
	return r.Pending + r.Accepted + r.Rejected + r.Hired
}

type Candidate struct {
	ID            string
	UserID        string
	RecruitmentID string
	Status        CandidateStatus
	AppliedAt     time.Time
	IsActive      bool
	Comment       string

	// DTO / Join
	UserName     *string
	PositionName *string
}
