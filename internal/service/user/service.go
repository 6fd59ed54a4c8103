package user

import (
	"context"
	"fmt"

	"github.com/simpeg-app/simpeg-backend-go/internal/domain/user"
	"golang.org/x/crypto/bcrypt"
)

type UserServiceImpl struct {
	userRepo user.UserRepository
}

func NewUserService(userRepo user.UserRepository) user.UserService {
	return &UserServiceImpl{userRepo: userRepo}
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// CreateUser implements user.UserService.
func (s *UserServiceImpl) CreateUser(ctx context.Context, req user.CreateUserRequest) (user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	hash, err := hashPassword(req.Password)
	if err != nil {
		return user.UserResponse{}, err
	}

	role := user.RoleGuest
	if req.Role != "" {
		role = user.Role(req.Role)
	}

	newUser := user.User{
		NIK:          req.NIK,
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         role,
		Bio:          req.Bio,
		IsActive:     true,
	}

	created, err := s.userRepo.Create(ctx, newUser)
	if err != nil {
		return user.UserResponse{}, err
	}

	return user.ToResponse(created), nil
}

// GetUser implements user.UserService.
func (s *UserServiceImpl) GetUser(ctx context.Context, id string) (user.UserResponse, error) {
	userData, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return user.UserResponse{}, err
	}
	return user.ToResponse(userData), nil
}

// ListUsers implements user.UserService.
func (s *UserServiceImpl) ListUsers(ctx context.Context, filter user.UserFilter) ([]user.UserResponse, error) {
	users, err := s.userRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]user.UserResponse, 0, len(users))
	for _, u := range users {
		responses = append(responses, user.ToResponse(u))
	}
	return responses, nil
}

// UpdateUser implements user.UserService.
func (s *UserServiceImpl) UpdateUser(ctx context.Context, req user.UpdateUserRequest) (user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	userData, err := s.userRepo.GetByID(ctx, req.ID)
	if err != nil {
		return user.UserResponse{}, err
	}

	if req.Name != nil {
		userData.Name = *req.Name
	}
	if req.Email != nil {
		userData.Email = *req.Email
	}
	if req.Password != nil {
		hash, err := hashPassword(*req.Password)
		if err != nil {
			return user.UserResponse{}, err
		}
		userData.PasswordHash = hash
	}
	if req.Bio != nil {
		userData.Bio = req.Bio
	}
	if req.Image != nil {
		userData.Image = *req.Image
	}
	if req.IsActive != nil {
		userData.IsActive = *req.IsActive
	}

	if err := s.userRepo.Update(ctx, userData); err != nil {
		return user.UserResponse{}, err
	}

	return user.ToResponse(userData), nil
}

// ChangeRole implements user.UserService.
func (s *UserServiceImpl) ChangeRole(ctx context.Context, id string, role user.Role) (user.UserResponse, error) {
	if !role.Valid() {
		return user.UserResponse{}, user.ErrInvalidRole
	}

	userData, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return user.UserResponse{}, err
	}

	if !userData.Role.CanTransitionTo(role) {
		return user.UserResponse{}, user.ErrRoleTransitionDenied
	}

	if err := s.userRepo.UpdateRole(ctx, id, role); err != nil {
		return user.UserResponse{}, fmt.Errorf("failed to update role: %w", err)
	}

	userData.Role = role
	return user.ToResponse(userData), nil
}

// DeactivateUser implements user.UserService.
func (s *UserServiceImpl) DeactivateUser(ctx context.Context, id string) error {
	return s.userRepo.Deactivate(ctx, id)
}

// DeleteUser implements user.UserService.
func (s *UserServiceImpl) DeleteUser(ctx context.Context, id string) error {
	return s.userRepo.Delete(ctx, id)
}
