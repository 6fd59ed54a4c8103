package employee

import "context"

type EmployeeRepository interface {
	Create(ctx context.Context, e Employee) (Employee, error)
	GetByID(ctx context.Context, id string) (Employee, error)
	GetByUserID(ctx context.Context, userID string) (Employee, error)
	List(ctx context.Context, filter EmployeeFilter) ([]Employee, error)
	Update(ctx context.Context, e Employee) error

	// ListActiveNotIn returns every active employee whose id is not in
	// excludedIDs. The absence sweep uses it to compute the roster/ledger
	// set difference for a given day.
	ListActiveNotIn(ctx context.Context, excludedIDs []string) ([]Employee, error)
}
