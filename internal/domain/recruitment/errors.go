package recruitment

import "errors"

var (
	ErrRecruitmentNotFound = errors.New("recruitment not found")
	ErrRecruitmentClosed   = errors.New("recruitment is no longer accepting applications")
	ErrCandidateNotFound   = errors.New("candidate not found")
	ErrAlreadyApplied      = errors.New("user already applied to this recruitment")
	ErrAlreadyEmployed     = errors.New("user is already an employee")
	ErrStatusConflict      = errors.New("candidate status changed concurrently")
	ErrInvalidStatus       = errors.New("unknown candidate status")
)
