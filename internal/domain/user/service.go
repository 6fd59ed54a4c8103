package user

import "context"

type UserService interface {
	CreateUser(ctx context.Context, req CreateUserRequest) (UserResponse, error)
	GetUser(ctx context.Context, id string) (UserResponse, error)
	ListUsers(ctx context.Context, filter UserFilter) ([]UserResponse, error)
	UpdateUser(ctx context.Context, req UpdateUserRequest) (UserResponse, error)

	// ChangeRole applies the role state machine; transitions outside it
	// fail with ErrRoleTransitionDenied.
	ChangeRole(ctx context.Context, id string, role Role) (UserResponse, error)

	DeactivateUser(ctx context.Context, id string) error
	DeleteUser(ctx context.Context, id string) error
}
