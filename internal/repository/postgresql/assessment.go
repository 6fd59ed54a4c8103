package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/simpeg-app/simpeg-backend-go/internal/domain/assessment"
	"github.com/simpeg-app/simpeg-backend-go/internal/pkg/database"
)

type assessmentRepository struct {
	db *database.DB
}

func NewAssessmentRepository(db *database.DB) assessment.AssessmentRepository {
	return &assessmentRepository{db: db}
}

const assessmentSelect = `
	SELECT a.id, a.employee_id, a.manner, a.expertness, a.diligence, a.tidiness,
		   a.comment, a.created_at, a.updated_at,
		   u.name AS employee_name
	FROM assessments a
	LEFT JOIN employees e ON e.id = a.employee_id
	LEFT JOIN users u ON u.id = e.user_id
`

func scanAssessment(row pgx.Row) (assessment.Assessment, error) {
	var a assessment.Assessment
	err := row.Scan(
		&a.ID, &a.EmployeeID, &a.Manner, &a.Expertness, &a.Diligence, &a.Tidiness,
		&a.Comment, &a.CreatedAt, &a.UpdatedAt,
		&a.EmployeeName,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return assessment.Assessment{}, assessment.ErrAssessmentNotFound
		}
		return assessment.Assessment{}, fmt.Errorf("failed to scan assessment: %w", err)
	}
	return a, nil
}

// Create implements assessment.AssessmentRepository.
func (r *assessmentRepository) Create(ctx context.Context, a assessment.Assessment) (assessment.Assessment, error) {
	q := GetQuerier(ctx, r.db)

	id, err := uuid.NewV7()
	if err != nil {
		return assessment.Assessment{}, fmt.Errorf("failed to generate assessment id: %w", err)
	}
	a.ID = id.String()

	query := `
		INSERT INTO assessments (id, employee_id, manner, expertness, diligence, tidiness, comment)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at, updated_at
	`

	err = q.QueryRow(ctx, query,
		a.ID, a.EmployeeID, a.Manner, a.Expertness, a.Diligence, a.Tidiness, a.Comment,
	).Scan(&a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return assessment.Assessment{}, fmt.Errorf("failed to create assessment: %w", err)
	}

	return a, nil
}

// GetByID implements assessment.AssessmentRepository.
func (r *assessmentRepository) GetByID(ctx context.Context, id string) (assessment.Assessment, error) {
	q := GetQuerier(ctx, r.db)

	return scanAssessment(q.QueryRow(ctx, assessmentSelect+` WHERE a.id = $1`, id))
}

// List implements assessment.AssessmentRepository.
func (r *assessmentRepository) List(ctx context.Context, filter assessment.AssessmentFilter) ([]assessment.Assessment, error) {
	q := GetQuerier(ctx, r.db)

	baseWhere := "1=1"
	args := []interface{}{}
	argIdx := 1

	if filter.EmployeeID != nil && *filter.EmployeeID != "" {
		baseWhere += fmt.Sprintf(" AND a.employee_id = $%d", argIdx)
		args = append(args, *filter.EmployeeID)
		argIdx++
	}

	query := assessmentSelect + ` WHERE ` + baseWhere + ` ORDER BY a.created_at DESC`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query assessments: %w", err)
	}
	defer rows.Close()

	var assessments []assessment.Assessment
	for rows.Next() {
		a, err := scanAssessment(rows)
		if err != nil {
			return nil, err
		}
		assessments = append(assessments, a)
	}

	return assessments, nil
}

// Update implements assessment.AssessmentRepository. Only fields set on
// the request are written.
func (r *assessmentRepository) Update(ctx context.Context, req assessment.UpdateAssessmentRequest) (assessment.Assessment, error) {
	q := GetQuerier(ctx, r.db)

	setClause := "updated_at = $1"
	args := []interface{}{time.Now()}
	argIdx := 2

	if req.Manner != nil {
		setClause += fmt.Sprintf(", manner = $%d", argIdx)
		args = append(args, *req.Manner)
		argIdx++
	}
	if req.Expertness != nil {
		setClause += fmt.Sprintf(", expertness = $%d", argIdx)
		args = append(args, *req.Expertness)
		argIdx++
	}
	if req.Diligence != nil {
		setClause += fmt.Sprintf(", diligence = $%d", argIdx)
		args = append(args, *req.Diligence)
		argIdx++
	}
	if req.Tidiness != nil {
		setClause += fmt.Sprintf(", tidiness = $%d", argIdx)
		args = append(args, *req.Tidiness)
		argIdx++
	}
	if req.Comment != nil {
		setClause += fmt.Sprintf(", comment = $%d", argIdx)
		args = append(args, *req.Comment)
		argIdx++
	}

	query := fmt.Sprintf(`UPDATE assessments SET %s WHERE id = $%d RETURNING id`, setClause, argIdx)
	args = append(args, req.ID)

	var updatedID string
	if err := q.QueryRow(ctx, query, args...).Scan(&updatedID); err != nil {
		if err == pgx.ErrNoRows {
			return assessment.Assessment{}, assessment.ErrAssessmentNotFound
		}
		return assessment.Assessment{}, fmt.Errorf("failed to update assessment: %w", err)
	}

	return r.GetByID(ctx, req.ID)
}

// Delete implements assessment.AssessmentRepository.
func (r *assessmentRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM assessments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete assessment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return assessment.ErrAssessmentNotFound
	}

	return nil
}
