package user

import "errors"

var (
	ErrUserNotFound           = errors.New("user not found")
	ErrNIKExists              = errors.New("nik already registered")
	ErrEmailExists            = errors.New("email already registered")
	ErrInvalidRole            = errors.New("invalid user role")
	ErrRoleTransitionDenied   = errors.New("role transition not allowed")
	ErrUserInactive           = errors.New("user account is inactive")
	ErrAdminPrivilegeRequired = errors.New("admin privilege required")
)
