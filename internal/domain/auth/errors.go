package auth

import "errors"

var (
	ErrInvalidCredentials  = errors.New("nik or password is incorrect")
	ErrInvalidRefreshToken = errors.New("refresh token is invalid or expired")
)
