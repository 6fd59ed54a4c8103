package auth

import (
	"context"
	"fmt"

	"github.com/lestrrat-go/jwx/v2/jwt"
	"github.com/simpeg-app/simpeg-backend-go/internal/domain/auth"
	"github.com/simpeg-app/simpeg-backend-go/internal/domain/employee"
	"github.com/simpeg-app/simpeg-backend-go/internal/domain/user"
	pkgjwt "github.com/simpeg-app/simpeg-backend-go/internal/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	userRepo     user.UserRepository
	employeeRepo employee.EmployeeRepository
	jwtService   pkgjwt.Service
}

func NewAuthService(userRepo user.UserRepository, employeeRepo employee.EmployeeRepository, jwtService pkgjwt.Service) auth.AuthService {
	return &AuthServiceImpl{
		userRepo:     userRepo,
		employeeRepo: employeeRepo,
		jwtService:   jwtService,
	}
}

// Login implements auth.AuthService.
func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	userData, err := a.userRepo.GetByNIK(ctx, req.NIK)
	if err != nil {
		if err == user.ErrUserNotFound {
			return auth.TokenResponse{}, auth.ErrInvalidCredentials
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to get user by nik: %w", err)
	}

	if !userData.IsActive {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(userData.PasswordHash), []byte(req.Password)); err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	return a.issueTokens(ctx, userData)
}

// Refresh implements auth.AuthService.
func (a *AuthServiceImpl) Refresh(ctx context.Context, refreshToken string) (auth.TokenResponse, error) {
	if a.jwtService.IsTokenRevoked(refreshToken) {
		return auth.TokenResponse{}, auth.ErrInvalidRefreshToken
	}

	token, err := a.jwtService.JWTAuth().Decode(refreshToken)
	if err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidRefreshToken
	}
	if err := jwt.Validate(token); err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidRefreshToken
	}

	tokenType, _ := token.Get("type")
	if tokenType != "refresh" {
		return auth.TokenResponse{}, auth.ErrInvalidRefreshToken
	}

	userID, ok := token.Get("user_id")
	if !ok {
		return auth.TokenResponse{}, auth.ErrInvalidRefreshToken
	}

	userData, err := a.userRepo.GetByID(ctx, userID.(string))
	if err != nil {
		if err == user.ErrUserNotFound {
			return auth.TokenResponse{}, auth.ErrInvalidRefreshToken
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to get user by id: %w", err)
	}

	if !userData.IsActive {
		return auth.TokenResponse{}, auth.ErrInvalidRefreshToken
	}

	// Rotated on every refresh: the old token is burned.
	a.jwtService.RevokeToken(refreshToken)

	return a.issueTokens(ctx, userData)
}

// Logout implements auth.AuthService.
func (a *AuthServiceImpl) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return nil
	}
	a.jwtService.RevokeToken(refreshToken)
	return nil
}

func (a *AuthServiceImpl) issueTokens(ctx context.Context, userData user.User) (auth.TokenResponse, error) {
	var tokenResponse auth.TokenResponse

	// Employee id rides along in the access token so attendance
	// endpoints need no extra lookup.
	var employeeID *string
	if userData.IsEmployed() {
		employeeData, err := a.employeeRepo.GetByUserID(ctx, userData.ID)
		if err != nil && err != employee.ErrEmployeeNotFound {
			return auth.TokenResponse{}, fmt.Errorf("failed to get employee by user id: %w", err)
		}
		if err == nil {
			employeeID = &employeeData.ID
		}
	}

	var err error
	tokenResponse.AccessToken, tokenResponse.AccessTokenExpiresIn, err = a.jwtService.GenerateAccessToken(userData.ID, userData.NIK, employeeID, userData.Role)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to create access token: %w", err)
	}

	tokenResponse.RefreshToken, tokenResponse.RefreshTokenExpiresIn, err = a.jwtService.GenerateRefreshToken(userData.ID)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to create refresh token: %w", err)
	}

	return tokenResponse, nil
}
