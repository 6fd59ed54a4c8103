package payload

import "context"

type PayloadRepository interface {
	// Upsert writes the payload row for (employee, month), replacing the
	// amounts when one already exists.
	Upsert(ctx context.Context, p Payload) (Payload, error)

	GetByEmployeeAndMonth(ctx context.Context, employeeID, month string) (Payload, error)
	ListByMonth(ctx context.Context, month string) ([]Payload, error)
}
