package auth

import "context"

type AuthService interface {
	// Login authenticates by NIK and password. Inactive users are turned
	// away with ErrInvalidCredentials, same as a wrong password.
	Login(ctx context.Context, req LoginRequest) (TokenResponse, error)

	// Refresh exchanges a valid refresh token for a new token pair.
	Refresh(ctx context.Context, refreshToken string) (TokenResponse, error)

	// Logout revokes the refresh token so it cannot be replayed.
	Logout(ctx context.Context, refreshToken string) error
}
