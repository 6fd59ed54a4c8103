package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/simpeg-app/simpeg-backend-go/internal/domain/recruitment"
	"github.com/simpeg-app/simpeg-backend-go/internal/pkg/database"
)

type candidateRepository struct {
	db *database.DB
}

func NewCandidateRepository(db *database.DB) recruitment.CandidateRepository {
	return &candidateRepository{db: db}
}

const candidateSelect = `
	SELECT c.id, c.user_id, c.recruitment_id, c.status, c.applied_at, c.is_active, c.comment,
		   u.name AS user_name,
		   p.name AS position_name
	FROM candidates c
	LEFT JOIN users u ON u.id = c.user_id
	LEFT JOIN recruitments r ON r.id = c.recruitment_id
	LEFT JOIN positions p ON p.id = r.position_id
`

func scanCandidate(row pgx.Row) (recruitment.Candidate, error) {
	var c recruitment.Candidate
	err := row.Scan(
		&c.ID, &c.UserID, &c.RecruitmentID, &c.Status, &c.AppliedAt, &c.IsActive, &c.Comment,
		&c.UserName, &c.PositionName,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return recruitment.Candidate{}, recruitment.ErrCandidateNotFound
		}
		return recruitment.Candidate{}, fmt.Errorf("failed to scan candidate: %w", err)
	}
	return c, nil
}

// Create implements recruitment.CandidateRepository.
func (r *candidateRepository) Create(ctx context.Context, c recruitment.Candidate) (recruitment.Candidate, error) {
	q := GetQuerier(ctx, r.db)

	id, err := uuid.NewV7()
	if err != nil {
		return recruitment.Candidate{}, fmt.Errorf("failed to generate candidate id: %w", err)
	}
	c.ID = id.String()

	query := `
		INSERT INTO candidates (id, user_id, recruitment_id, status, is_active, comment)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING applied_at
	`

	err = q.QueryRow(ctx, query,
		c.ID, c.UserID, c.RecruitmentID, c.Status, c.IsActive, c.Comment,
	).Scan(&c.AppliedAt)
	if err != nil {
		if isUniqueViolation(err, "candidates_user_id_recruitment_id_key") {
			return recruitment.Candidate{}, recruitment.ErrAlreadyApplied
		}
		return recruitment.Candidate{}, fmt.Errorf("failed to create candidate: %w", err)
	}

	return c, nil
}

// GetByID implements recruitment.CandidateRepository.
func (r *candidateRepository) GetByID(ctx context.Context, id string) (recruitment.Candidate, error) {
	q := GetQuerier(ctx, r.db)

	return scanCandidate(q.QueryRow(ctx, candidateSelect+` WHERE c.id = $1`, id))
}

// GetByUserAndRecruitment implements recruitment.CandidateRepository.
func (r *candidateRepository) GetByUserAndRecruitment(ctx context.Context, userID, recruitmentID string) (*recruitment.Candidate, error) {
	q := GetQuerier(ctx, r.db)

	query := candidateSelect + ` WHERE c.user_id = $1 AND c.recruitment_id = $2`

	c, err := scanCandidate(q.QueryRow(ctx, query, userID, recruitmentID))
	if err != nil {
		if err == recruitment.ErrCandidateNotFound {
			return nil, nil
		}
		return nil, err
	}

	return &c, nil
}

// ListByRecruitment implements recruitment.CandidateRepository.
func (r *candidateRepository) ListByRecruitment(ctx context.Context, recruitmentID string, status *recruitment.CandidateStatus) ([]recruitment.Candidate, error) {
	q := GetQuerier(ctx, r.db)

	baseWhere := "c.recruitment_id = $1"
	args := []interface{}{recruitmentID}

	if status != nil {
		baseWhere += " AND c.status = $2"
		args = append(args, *status)
	}

	query := candidateSelect + ` WHERE ` + baseWhere + ` ORDER BY c.applied_at DESC`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query candidates: %w", err)
	}
	defer rows.Close()

	return collectCandidates(rows)
}

// List implements recruitment.CandidateRepository.
func (r *candidateRepository) List(ctx context.Context, filter recruitment.CandidateFilter) ([]recruitment.Candidate, error) {
	q := GetQuerier(ctx, r.db)

	baseWhere := "TRUE"
	args := []interface{}{}
	argIdx := 1

	if filter.Status != nil && *filter.Status != "" {
		baseWhere += fmt.Sprintf(" AND c.status = $%d", argIdx)
		args = append(args, *filter.Status)
		argIdx++
	}
	if filter.DateStart != nil && *filter.DateStart != "" {
		baseWhere += fmt.Sprintf(" AND c.applied_at >= $%d", argIdx)
		args = append(args, *filter.DateStart)
		argIdx++
	}
	if filter.DateEnd != nil && *filter.DateEnd != "" {
		baseWhere += fmt.Sprintf(" AND c.applied_at <= $%d", argIdx)
		args = append(args, *filter.DateEnd)
		argIdx++
	}

	query := candidateSelect + ` WHERE ` + baseWhere + ` ORDER BY c.applied_at DESC`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query candidates: %w", err)
	}
	defer rows.Close()

	return collectCandidates(rows)
}

// UpdateStatus implements recruitment.CandidateRepository. The WHERE
// clause pins the row to the status the caller read, so a transition
// racing against another one misses the row instead of moving the
// wrong counter bucket.
func (r *candidateRepository) UpdateStatus(ctx context.Context, id string, from, to recruitment.CandidateStatus, comment *string) (recruitment.Candidate, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE candidates
		SET status = $1, comment = COALESCE($2, comment), updated_at = $3
		WHERE id = $4 AND status = $5
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query, to, comment, time.Now(), id, from).Scan(&updatedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			// Zero rows is either a missing candidate or a stale read.
			if _, getErr := r.GetByID(ctx, id); getErr != nil {
				return recruitment.Candidate{}, getErr
			}
			return recruitment.Candidate{}, recruitment.ErrStatusConflict
		}
		return recruitment.Candidate{}, fmt.Errorf("failed to update candidate status: %w", err)
	}

	return r.GetByID(ctx, id)
}

// Delete implements recruitment.CandidateRepository.
func (r *candidateRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM candidates WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete candidate: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return recruitment.ErrCandidateNotFound
	}

	return nil
}

// CountByStatus implements recruitment.CandidateRepository.
func (r *candidateRepository) CountByStatus(ctx context.Context, recruitmentID string) (map[recruitment.CandidateStatus]int, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT status, COUNT(*)
		FROM candidates
		WHERE recruitment_id = $1
		GROUP BY status
	`

	rows, err := q.Query(ctx, query, recruitmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to count candidates: %w", err)
	}
	defer rows.Close()

	counts := map[recruitment.CandidateStatus]int{
		recruitment.StatusPending:  0,
		recruitment.StatusAccepted: 0,
		recruitment.StatusRejected: 0,
		recruitment.StatusHired:    0,
	}
	for rows.Next() {
		var raw string
		var count int
		if err := rows.Scan(&raw, &count); err != nil {
			return nil, fmt.Errorf("failed to scan candidate count: %w", err)
		}
		status, err := recruitment.ParseCandidateStatus(raw)
		if err != nil {
			return nil, fmt.Errorf("unexpected candidate status %q: %w", raw, err)
		}
		counts[status] = count
	}

	return counts, nil
}

func collectCandidates(rows pgx.Rows) ([]recruitment.Candidate, error) {
	var cands []recruitment.Candidate
	for rows.Next() {
		c, err := scanCandidate(rows)
		if err != nil {
			return nil, err
		}
		cands = append(cands, c)
	}
	return cands, nil
}
