package user

import "context"

type UserRepository interface {
	Create(ctx context.Context, u User) (User, error)
	GetByID(ctx context.Context, id string) (User, error)
	GetByNIK(ctx context.Context, nik string) (User, error)
	List(ctx context.Context, filter UserFilter) ([]User, error)
	Update(ctx context.Context, u User) error

	// UpdateRole changes only the role column. Callers are expected to
	// have validated the transition with Role.CanTransitionTo.
	UpdateRole(ctx context.Context, id string, role Role) error

	// Deactivate sets is_active to false (e.g. rejected candidates).
	Deactivate(ctx context.Context, id string) error

	Delete(ctx context.Context, id string) error
}
