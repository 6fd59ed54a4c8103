package recruitment

import (
	"context"
	"fmt"
	"time"

	"github.com/simpeg-app/simpeg-backend-go/internal/domain/recruitment"
	"github.com/simpeg-app/simpeg-backend-go/internal/domain/user"
	"github.com/simpeg-app/simpeg-backend-go/internal/pkg/database"
)

type RecruitmentServiceImpl struct {
	recruitmentRepo recruitment.RecruitmentRepository
	candidateRepo   recruitment.CandidateRepository
	userRepo        user.UserRepository
	tx              database.TxManager
}

func NewRecruitmentService(
	recruitmentRepo recruitment.RecruitmentRepository,
	candidateRepo recruitment.CandidateRepository,
	userRepo user.UserRepository,
	tx database.TxManager,
) recruitment.RecruitmentService {
	return &RecruitmentServiceImpl{
		recruitmentRepo: recruitmentRepo,
		candidateRepo:   candidateRepo,
		userRepo:        userRepo,
		tx:              tx,
	}
}

// CreateRecruitment implements recruitment.RecruitmentService.
func (s *RecruitmentServiceImpl) CreateRecruitment(ctx context.Context, req recruitment.CreateRecruitmentRequest) (recruitment.RecruitmentResponse, error) {
	if err := req.Validate(); err != nil {
		return recruitment.RecruitmentResponse{}, err
	}

	expiredAt, err := time.Parse("2006-01-02", req.ExpiredAt)
	if err != nil {
		return recruitment.RecruitmentResponse{}, fmt.Errorf("failed to parse expired_at: %w", err)
	}

	created, err := s.recruitmentRepo.Create(ctx, recruitment.Recruitment{
		Title:          req.Title,
		PositionID:     req.PositionID,
		NumberRequired: req.NumberRequired,
		Description:    req.Description,
		Status:         "open",
		ExpiredAt:      expiredAt,
		IsActive:       true,
	})
	if err != nil {
		return recruitment.RecruitmentResponse{}, err
	}

	return s.GetRecruitment(ctx, created.ID)
}

// GetRecruitment implements recruitment.RecruitmentService.
func (s *RecruitmentServiceImpl) GetRecruitment(ctx context.Context, id string) (recruitment.RecruitmentResponse, error) {
	rec, err := s.recruitmentRepo.GetByID(ctx, id)
	if err != nil {
		return recruitment.RecruitmentResponse{}, err
	}
	return recruitment.ToRecruitmentResponse(rec), nil
}

// ListRecruitments implements recruitment.RecruitmentService.
func (s *RecruitmentServiceImpl) ListRecruitments(ctx context.Context, filter recruitment.RecruitmentFilter) ([]recruitment.RecruitmentResponse, error) {
	recs, err := s.recruitmentRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]recruitment.RecruitmentResponse, 0, len(recs))
	for _, rec := range recs {
		responses = append(responses, recruitment.ToRecruitmentResponse(rec))
	}
	return responses, nil
}

// UpdateRecruitment implements recruitment.RecruitmentService.
func (s *RecruitmentServiceImpl) UpdateRecruitment(ctx context.Context, req recruitment.UpdateRecruitmentRequest) (recruitment.RecruitmentResponse, error) {
	if err := req.Validate(); err != nil {
		return recruitment.RecruitmentResponse{}, err
	}

	updated, err := s.recruitmentRepo.Update(ctx, req)
	if err != nil {
		return recruitment.RecruitmentResponse{}, err
	}
	return recruitment.ToRecruitmentResponse(updated), nil
}

// DeleteRecruitment implements recruitment.RecruitmentService.
func (s *RecruitmentServiceImpl) DeleteRecruitment(ctx context.Context, id string) error {
	return s.recruitmentRepo.Delete(ctx, id)
}

// Apply implements recruitment.RecruitmentService. The candidate row, the
// pending counter bump and the user's role flip commit or roll back as
// one unit, so the counters always equal the ledger.
func (s *RecruitmentServiceImpl) Apply(ctx context.Context, userID, recruitmentID string) (recruitment.CandidateResponse, error) {
	rec, err := s.recruitmentRepo.GetByID(ctx, recruitmentID)
	if err != nil {
		return recruitment.CandidateResponse{}, err
	}
	if !rec.IsActive || time.Now().After(rec.ExpiredAt.AddDate(0, 0, 1)) {
		return recruitment.CandidateResponse{}, recruitment.ErrRecruitmentClosed
	}

	userData, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return recruitment.CandidateResponse{}, err
	}
	if userData.IsEmployed() {
		return recruitment.CandidateResponse{}, recruitment.ErrAlreadyEmployed
	}
	if userData.Role != user.RoleCandidate && !userData.Role.CanTransitionTo(user.RoleCandidate) {
		return recruitment.CandidateResponse{}, user.ErrRoleTransitionDenied
	}

	var created recruitment.Candidate
	err = s.tx.WithinTransaction(ctx, func(txCtx context.Context) error {
		created, err = s.candidateRepo.Create(txCtx, recruitment.Candidate{
			UserID:        userID,
			RecruitmentID: recruitmentID,
			Status:        recruitment.StatusPending,
			IsActive:      true,
		})
		if err != nil {
			return err
		}

		if err := s.recruitmentRepo.IncrementCounter(txCtx, recruitmentID, recruitment.StatusPending); err != nil {
			return err
		}

		if userData.Role != user.RoleCandidate {
			if err := s.userRepo.UpdateRole(txCtx, userID, user.RoleCandidate); err != nil {
				return fmt.Errorf("failed to mark user as candidate: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return recruitment.CandidateResponse{}, err
	}

	return recruitment.ToCandidateResponse(created), nil
}

// Transition implements recruitment.RecruitmentService. The status write
// and the counter move are one transaction; a transition to rejected also
// deactivates the user inside the same boundary. The write is guarded on
// the status read up front, so two admins racing over the same candidate
// cannot both drain the old bucket: the loser gets ErrStatusConflict and
// its counter move rolls back.
func (s *RecruitmentServiceImpl) Transition(ctx context.Context, req recruitment.TransitionRequest) (recruitment.CandidateResponse, error) {
	if err := req.Validate(); err != nil {
		return recruitment.CandidateResponse{}, err
	}

	next, err := recruitment.ParseCandidateStatus(req.Status)
	if err != nil {
		return recruitment.CandidateResponse{}, err
	}

	candidateData, err := s.candidateRepo.GetByID(ctx, req.CandidateID)
	if err != nil {
		return recruitment.CandidateResponse{}, err
	}

	if candidateData.Status == next {
		return recruitment.ToCandidateResponse(candidateData), nil
	}

	var updated recruitment.Candidate
	err = s.tx.WithinTransaction(ctx, func(txCtx context.Context) error {
		updated, err = s.candidateRepo.UpdateStatus(txCtx, candidateData.ID, candidateData.Status, next, req.Comment)
		if err != nil {
			return err
		}

		if err := s.recruitmentRepo.MoveCounter(txCtx, candidateData.RecruitmentID, candidateData.Status, next); err != nil {
			return err
		}

		if next == recruitment.StatusRejected {
			if err := s.userRepo.Deactivate(txCtx, candidateData.UserID); err != nil {
				return fmt.Errorf("failed to deactivate rejected candidate: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return recruitment.CandidateResponse{}, err
	}

	return recruitment.ToCandidateResponse(updated), nil
}

// TransitionByUser implements recruitment.RecruitmentService.
func (s *RecruitmentServiceImpl) TransitionByUser(ctx context.Context, recruitmentID, userID string, req recruitment.TransitionRequest) (recruitment.CandidateResponse, error) {
	candidateData, err := s.candidateRepo.GetByUserAndRecruitment(ctx, userID, recruitmentID)
	if err != nil {
		return recruitment.CandidateResponse{}, err
	}
	if candidateData == nil {
		return recruitment.CandidateResponse{}, recruitment.ErrCandidateNotFound
	}

	req.CandidateID = candidateData.ID
	return s.Transition(ctx, req)
}

// GetCandidate implements recruitment.RecruitmentService.
func (s *RecruitmentServiceImpl) GetCandidate(ctx context.Context, id string) (recruitment.CandidateResponse, error) {
	candidateData, err := s.candidateRepo.GetByID(ctx, id)
	if err != nil {
		return recruitment.CandidateResponse{}, err
	}
	return recruitment.ToCandidateResponse(candidateData), nil
}

// ListCandidates implements recruitment.RecruitmentService.
func (s *RecruitmentServiceImpl) ListCandidates(ctx context.Context, recruitmentID string, status *string) ([]recruitment.CandidateResponse, error) {
	var statusFilter *recruitment.CandidateStatus
	if status != nil && *status != "" {
		parsed, err := recruitment.ParseCandidateStatus(*status)
		if err != nil {
			return nil, err
		}
		statusFilter = &parsed
	}

	if _, err := s.recruitmentRepo.GetByID(ctx, recruitmentID); err != nil {
		return nil, err
	}

	candidates, err := s.candidateRepo.ListByRecruitment(ctx, recruitmentID, statusFilter)
	if err != nil {
		return nil, err
	}

	responses := make([]recruitment.CandidateResponse, 0, len(candidates))
	for _, c := range candidates {
		responses = append(responses, recruitment.ToCandidateResponse(c))
	}
	return responses, nil
}

// ListAllCandidates implements recruitment.RecruitmentService.
func (s *RecruitmentServiceImpl) ListAllCandidates(ctx context.Context, filter recruitment.CandidateFilter) ([]recruitment.CandidateResponse, error) {
	if filter.Status != nil && *filter.Status != "" {
		if _, err := recruitment.ParseCandidateStatus(*filter.Status); err != nil {
			return nil, err
		}
	}

	candidates, err := s.candidateRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]recruitment.CandidateResponse, 0, len(candidates))
	for _, c := range candidates {
		responses = append(responses, recruitment.ToCandidateResponse(c))
	}
	return responses, nil
}

// DeleteCandidate implements recruitment.RecruitmentService. Removing a
// candidate shrinks the counter for whatever bucket they occupied.
func (s *RecruitmentServiceImpl) DeleteCandidate(ctx context.Context, id string) error {
	candidateData, err := s.candidateRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	return s.tx.WithinTransaction(ctx, func(txCtx context.Context) error {
		if err := s.candidateRepo.Delete(txCtx, candidateData.ID); err != nil {
			return err
		}

		counts, err := s.candidateRepo.CountByStatus(txCtx, candidateData.RecruitmentID)
		if err != nil {
			return err
		}

		// Rewrite the cached counters straight from the ledger so a
		// delete can never leave them out of sync.
		return s.recruitmentRepo.SetCounters(txCtx, candidateData.RecruitmentID, counts)
	})
}
