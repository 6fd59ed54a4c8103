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

type recruitmentRepository struct {
	db *database.DB
}

func NewRecruitmentRepository(db *database.DB) recruitment.RecruitmentRepository {
	return &recruitmentRepository{db: db}
}

const recruitmentSelect = `
	SELECT r.id, r.title, r.position_id, p.name AS position_name,
		   p.department_id, d.name AS department_name,
		   r.number_required, r.description, r.status, r.expired_at, r.is_active,
		   r.pending, r.accepted, r.rejected, r.hired,
		   r.created_at, r.updated_at
	FROM recruitments r
	LEFT JOIN positions p ON p.id = r.position_id
	LEFT JOIN departments d ON d.id = p.department_id
`

func scanRecruitment(row pgx.Row) (recruitment.Recruitment, error) {
	var rec recruitment.Recruitment
	err := row.Scan(
		&rec.ID, &rec.Title, &rec.PositionID, &rec.PositionName,
		&rec.DepartmentID, &rec.DepartmentName,
		&rec.NumberRequired, &rec.Description, &rec.Status, &rec.ExpiredAt, &rec.IsActive,
		&rec.Pending, &rec.Accepted, &rec.Rejected, &rec.Hired,
		&rec.CreatedAt, &rec.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return recruitment.Recruitment{}, recruitment.ErrRecruitmentNotFound
		}
		return recruitment.Recruitment{}, fmt.Errorf("failed to scan recruitment: %w", err)
	}
	return rec, nil
}

// Create implements recruitment.RecruitmentRepository.
func (r *recruitmentRepository) Create(ctx context.Context, rec recruitment.Recruitment) (recruitment.Recruitment, error) {
	q := GetQuerier(ctx, r.db)

	id, err := uuid.NewV7()
	if err != nil {
		return recruitment.Recruitment{}, fmt.Errorf("failed to generate recruitment id: %w", err)
	}
	rec.ID = id.String()

	query := `
		INSERT INTO recruitments (id, title, position_id, number_required, description, status, expired_at, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at, updated_at
	`

	err = q.QueryRow(ctx, query,
		rec.ID, rec.Title, rec.PositionID, rec.NumberRequired,
		rec.Description, rec.Status, rec.ExpiredAt, rec.IsActive,
	).Scan(&rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		return recruitment.Recruitment{}, fmt.Errorf("failed to create recruitment: %w", err)
	}

	return rec, nil
}

// GetByID implements recruitment.RecruitmentRepository.
func (r *recruitmentRepository) GetByID(ctx context.Context, id string) (recruitment.Recruitment, error) {
	q := GetQuerier(ctx, r.db)

	return scanRecruitment(q.QueryRow(ctx, recruitmentSelect+` WHERE r.id = $1`, id))
}

// List implements recruitment.RecruitmentRepository.
func (r *recruitmentRepository) List(ctx context.Context, filter recruitment.RecruitmentFilter) ([]recruitment.Recruitment, error) {
	q := GetQuerier(ctx, r.db)

	baseWhere := "TRUE"
	args := []interface{}{}
	argIdx := 1

	if filter.Status != nil && *filter.Status != "" {
		baseWhere += fmt.Sprintf(" AND r.status = $%d", argIdx)
		args = append(args, *filter.Status)
		argIdx++
	}
	if filter.IsActive != nil {
		baseWhere += fmt.Sprintf(" AND r.is_active = $%d", argIdx)
		args = append(args, *filter.IsActive)
		argIdx++
	}

	query := recruitmentSelect + ` WHERE ` + baseWhere + ` ORDER BY r.created_at DESC`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query recruitments: %w", err)
	}
	defer rows.Close()

	var recs []recruitment.Recruitment
	for rows.Next() {
		rec, err := scanRecruitment(rows)
		if err != nil {
			return nil, err
		}
		recs = append(recs, rec)
	}

	return recs, nil
}

// Update implements recruitment.RecruitmentRepository. Only fields set on
// the request are written; the counter columns are never touched here.
func (r *recruitmentRepository) Update(ctx context.Context, req recruitment.UpdateRecruitmentRequest) (recruitment.Recruitment, error) {
	q := GetQuerier(ctx, r.db)

	setClause := "updated_at = $1"
	args := []interface{}{time.Now()}
	argIdx := 2

	if req.Title != nil {
		setClause += fmt.Sprintf(", title = $%d", argIdx)
		args = append(args, *req.Title)
		argIdx++
	}
	if req.NumberRequired != nil {
		setClause += fmt.Sprintf(", number_required = $%d", argIdx)
		args = append(args, *req.NumberRequired)
		argIdx++
	}
	if req.Description != nil {
		setClause += fmt.Sprintf(", description = $%d", argIdx)
		args = append(args, *req.Description)
		argIdx++
	}
	if req.Status != nil {
		setClause += fmt.Sprintf(", status = $%d", argIdx)
		args = append(args, *req.Status)
		argIdx++
	}
	if req.ExpiredAt != nil {
		expiredAt, err := time.Parse("2006-01-02", *req.ExpiredAt)
		if err != nil {
			return recruitment.Recruitment{}, fmt.Errorf("failed to parse expired_at: %w", err)
		}
		setClause += fmt.Sprintf(", expired_at = $%d", argIdx)
		args = append(args, expiredAt)
		argIdx++
	}
	if req.IsActive != nil {
		setClause += fmt.Sprintf(", is_active = $%d", argIdx)
		args = append(args, *req.IsActive)
		argIdx++
	}

	query := fmt.Sprintf(`UPDATE recruitments SET %s WHERE id = $%d RETURNING id`, setClause, argIdx)
	args = append(args, req.ID)

	var updatedID string
	if err := q.QueryRow(ctx, query, args...).Scan(&updatedID); err != nil {
		if err == pgx.ErrNoRows {
			return recruitment.Recruitment{}, recruitment.ErrRecruitmentNotFound
		}
		return recruitment.Recruitment{}, fmt.Errorf("failed to update recruitment: %w", err)
	}

	return r.GetByID(ctx, req.ID)
}

// Delete implements recruitment.RecruitmentRepository.
func (r *recruitmentRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM recruitments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete recruitment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return recruitment.ErrRecruitmentNotFound
	}

	return nil
}

// counterColumn maps a validated status to its counter column name. The
// column is interpolated into SQL, so it must never come from raw input.
func counterColumn(bucket recruitment.CandidateStatus) (string, error) {
	switch bucket {
	case recruitment.StatusPending:
		return "pending", nil
	case recruitment.StatusAccepted:
		return "accepted", nil
	case recruitment.StatusRejected:
		return "rejected", nil
	case recruitment.StatusHired:
		return "hired", nil
	}
	return "", recruitment.ErrInvalidStatus
}

// IncrementCounter implements recruitment.RecruitmentRepository.
func (r *recruitmentRepository) IncrementCounter(ctx context.Context, id string, bucket recruitment.CandidateStatus) error {
	q := GetQuerier(ctx, r.db)

	col, err := counterColumn(bucket)
	if err != nil {
		return err
	}

	query := fmt.Sprintf(`UPDATE recruitments SET %s = %s + 1, updated_at = $1 WHERE id = $2`, col, col)

	tag, err := q.Exec(ctx, query, time.Now(), id)
	if err != nil {
		return fmt.Errorf("failed to increment %s counter: %w", col, err)
	}
	if tag.RowsAffected() == 0 {
		return recruitment.ErrRecruitmentNotFound
	}

	return nil
}

// MoveCounter implements recruitment.RecruitmentRepository. Both buckets are
// adjusted in one statement so the total stays conserved even under
// concurrent transitions.
func (r *recruitmentRepository) MoveCounter(ctx context.Context, id string, from, to recruitment.CandidateStatus) error {
	if from == to {
		return nil
	}

	q := GetQuerier(ctx, r.db)

	fromCol, err := counterColumn(from)
	if err != nil {
		return err
	}
	toCol, err := counterColumn(to)
	if err != nil {
		return err
	}

	query := fmt.Sprintf(
		`UPDATE recruitments SET %s = %s - 1, %s = %s + 1, updated_at = $1 WHERE id = $2`,
		fromCol, fromCol, toCol, toCol,
	)

	tag, err := q.Exec(ctx, query, time.Now(), id)
	if err != nil {
		return fmt.Errorf("failed to move counter %s -> %s: %w", fromCol, toCol, err)
	}
	if tag.RowsAffected() == 0 {
		return recruitment.ErrRecruitmentNotFound
	}

	return nil
}

// SetCounters implements recruitment.RecruitmentRepository.
func (r *recruitmentRepository) SetCounters(ctx context.Context, id string, counts map[recruitment.CandidateStatus]int) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE recruitments
		SET pending = $1, accepted = $2, rejected = $3, hired = $4, updated_at = $5
		WHERE id = $6
	`

	tag, err := q.Exec(ctx, query,
		counts[recruitment.StatusPending],
		counts[recruitment.StatusAccepted],
		counts[recruitment.StatusRejected],
		counts[recruitment.StatusHired],
		time.Now(), id,
	)
	if err != nil {
		return fmt.Errorf("failed to set counters: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return recruitment.ErrRecruitmentNotFound
	}

	return nil
}
