package payload

import "context"

type PayloadService interface {
	// Upsert writes the payroll row for (employee, month). A missing
	// salary falls back to the employee's position salary.
	Upsert(ctx context.Context, req UpsertPayloadRequest) (PayloadResponse, error)

	GetByEmployeeAndMonth(ctx context.Context, employeeID, month string) (PayloadResponse, error)
	ListByMonth(ctx context.Context, month string) ([]PayloadResponse, error)
}
