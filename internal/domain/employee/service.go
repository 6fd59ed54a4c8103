package employee

import "context"

type EmployeeService interface {
	// Promote turns an eligible user into an active employee and flips
	// their role in the same transaction.
	Promote(ctx context.Context, req PromoteRequest) (EmployeeResponse, error)

	GetEmployee(ctx context.Context, id string) (EmployeeResponse, error)
	GetEmployeeByUser(ctx context.Context, userID string) (EmployeeResponse, error)
	ListEmployees(ctx context.Context, filter EmployeeFilter) ([]EmployeeResponse, error)
	UpdateEmployee(ctx context.Context, req UpdateEmployeeRequest) (EmployeeResponse, error)
}
