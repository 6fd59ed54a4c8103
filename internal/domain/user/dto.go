package user

import (
	"github.com/simpeg-app/simpeg-backend-go/internal/pkg/validator"
)

type UserFilter struct {
	Role     *string
	IsActive *bool
	Name     *string
}

type CreateUserRequest struct {
	NIK      string  `json:"nik"`
	Name     string  `json:"name"`
	Email    string  `json:"email"`
	Password string  `json:"password"`
	Role     string  `json:"role,omitempty"`
	Bio      *string `json:"bio,omitempty"`
}

func (r CreateUserRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidNIK(r.NIK) {
		errs = append(errs, validator.ValidationError{Field: "nik", Message: "must be a 16 digit number"})
	}
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}
	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "must be a valid email address"})
	}
	if len(r.Password) < 8 {
		errs = append(errs, validator.ValidationError{Field: "password", Message: "must be at least 8 characters"})
	}
	if r.Role != "" && !Role(r.Role).Valid() {
		errs = append(errs, validator.ValidationError{Field: "role", Message: "is not a known role"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateUserRequest struct {
	ID       string  `json:"-"`
	Name     *string `json:"name,omitempty"`
	Email    *string `json:"email,omitempty"`
	Password *string `json:"password,omitempty"`
	Bio      *string `json:"bio,omitempty"`
	Image    *string `json:"image,omitempty"`
	IsActive *bool   `json:"is_active,omitempty"`
}

func (r UpdateUserRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "must be a valid email address"})
	}
	if r.Password != nil && len(*r.Password) < 8 {
		errs = append(errs, validator.ValidationError{Field: "password", Message: "must be at least 8 characters"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UserResponse struct {
	ID        string  `json:"id"`
	NIK       string  `json:"nik"`
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	Role      string  `json:"role"`
	Image     string  `json:"image"`
	Bio       *string `json:"bio,omitempty"`
	IsActive  bool    `json:"is_active"`
	CreatedAt string  `json:"created_at"`
}

func ToResponse(u User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		NIK:       u.NIK,
		Name:      u.Name,
		Email:     u.Email,
		Role:      string(u.Role),
		Image:     u.Image,
		Bio:       u.Bio,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}
