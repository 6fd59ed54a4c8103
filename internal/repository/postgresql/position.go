package postgresql

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/simpeg-app/simpeg-backend-go/internal/domain/master/position"
	"github.com/simpeg-app/simpeg-backend-go/internal/pkg/database"
)

type positionRepository struct {
	db *database.DB
}

func NewPositionRepository(db *database.DB) position.PositionRepository {
	return &positionRepository{db: db}
}

const positionSelect = `
	SELECT p.id, p.name, p.department_id, p.salary, p.created_at,
		   d.name AS department_name
	FROM positions p
	LEFT JOIN departments d ON d.id = p.department_id
`

func scanPosition(row pgx.Row) (position.Position, error) {
	var p position.Position
	err := row.Scan(&p.ID, &p.Name, &p.DepartmentID, &p.Salary, &p.CreatedAt, &p.DepartmentName)
	if err != nil {
		if err == pgx.ErrNoRows {
			return position.Position{}, position.ErrPositionNotFound
		}
		return position.Position{}, fmt.Errorf("failed to scan position: %w", err)
	}
	return p, nil
}

// Create implements position.PositionRepository.
func (r *positionRepository) Create(ctx context.Context, p position.Position) (position.Position, error) {
	q := GetQuerier(ctx, r.db)

	id, err := uuid.NewV7()
	if err != nil {
		return position.Position{}, fmt.Errorf("failed to generate position id: %w", err)
	}
	p.ID = id.String()

	query := `
		INSERT INTO positions (id, name, department_id, salary)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at
	`

	if err := q.QueryRow(ctx, query, p.ID, p.Name, p.DepartmentID, p.Salary).Scan(&p.CreatedAt); err != nil {
		if isUniqueViolation(err, "positions_department_id_name_key") {
			return position.Position{}, position.ErrPositionNameExists
		}
		return position.Position{}, fmt.Errorf("failed to create position: %w", err)
	}

	return p, nil
}

// GetByID implements position.PositionRepository.
func (r *positionRepository) GetByID(ctx context.Context, id string) (position.Position, error) {
	q := GetQuerier(ctx, r.db)

	return scanPosition(q.QueryRow(ctx, positionSelect+` WHERE p.id = $1`, id))
}

// List implements position.PositionRepository.
func (r *positionRepository) List(ctx context.Context) ([]position.Position, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, positionSelect+` ORDER BY p.name ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query positions: %w", err)
	}
	defer rows.Close()

	var positions []position.Position
	for rows.Next() {
		p, err := scanPosition(rows)
		if err != nil {
			return nil, err
		}
		positions = append(positions, p)
	}

	return positions, nil
}

// Delete implements position.PositionRepository.
func (r *positionRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM positions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete position: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return position.ErrPositionNotFound
	}

	return nil
}
