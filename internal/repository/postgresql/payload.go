package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/simpeg-app/simpeg-backend-go/internal/domain/payload"
	"github.com/simpeg-app/simpeg-backend-go/internal/pkg/database"
)

type payloadRepository struct {
	db *database.DB
}

func NewPayloadRepository(db *database.DB) payload.PayloadRepository {
	return &payloadRepository{db: db}
}

const payloadSelect = `
	SELECT pl.id, pl.month, pl.employee_id, pl.department_id,
		   pl.salary, pl.bonus, pl.reduction, pl.updated_at,
		   u.name AS employee_name
	FROM payloads pl
	LEFT JOIN employees e ON e.id = pl.employee_id
	LEFT JOIN users u ON u.id = e.user_id
`

func scanPayload(row pgx.Row) (payload.Payload, error) {
	var p payload.Payload
	err := row.Scan(
		&p.ID, &p.Month, &p.EmployeeID, &p.DepartmentID,
		&p.Salary, &p.Bonus, &p.Reduction, &p.UpdatedAt,
		&p.EmployeeName,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return payload.Payload{}, payload.ErrPayloadNotFound
		}
		return payload.Payload{}, fmt.Errorf("failed to scan payload: %w", err)
	}
	return p, nil
}

// Upsert implements payload.PayloadRepository.
func (r *payloadRepository) Upsert(ctx context.Context, p payload.Payload) (payload.Payload, error) {
	q := GetQuerier(ctx, r.db)

	id, err := uuid.NewV7()
	if err != nil {
		return payload.Payload{}, fmt.Errorf("failed to generate payload id: %w", err)
	}
	p.ID = id.String()

	query := `
		INSERT INTO payloads (id, month, employee_id, department_id, salary, bonus, reduction)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (employee_id, month) DO UPDATE
		SET salary = EXCLUDED.salary,
			bonus = EXCLUDED.bonus,
			reduction = EXCLUDED.reduction,
			updated_at = $8
		RETURNING id, updated_at
	`

	err = q.QueryRow(ctx, query,
		p.ID, p.Month, p.EmployeeID, p.DepartmentID,
		p.Salary, p.Bonus, p.Reduction, time.Now(),
	).Scan(&p.ID, &p.UpdatedAt)
	if err != nil {
		return payload.Payload{}, fmt.Errorf("failed to upsert payload: %w", err)
	}

	return p, nil
}

// GetByEmployeeAndMonth implements payload.PayloadRepository.
func (r *payloadRepository) GetByEmployeeAndMonth(ctx context.Context, employeeID, month string) (payload.Payload, error) {
	q := GetQuerier(ctx, r.db)

	query := payloadSelect + ` WHERE pl.employee_id = $1 AND pl.month = $2`

	return scanPayload(q.QueryRow(ctx, query, employeeID, month))
}

// ListByMonth implements payload.PayloadRepository.
func (r *payloadRepository) ListByMonth(ctx context.Context, month string) ([]payload.Payload, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, payloadSelect+` WHERE pl.month = $1 ORDER BY u.name ASC`, month)
	if err != nil {
		return nil, fmt.Errorf("failed to query payloads: %w", err)
	}
	defer rows.Close()

	var payloads []payload.Payload
	for rows.Next() {
		p, err := scanPayload(rows)
		if err != nil {
			return nil, err
		}
		payloads = append(payloads, p)
	}

	return payloads, nil
}
