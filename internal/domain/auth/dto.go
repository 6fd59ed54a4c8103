package auth

import (
	"github.com/simpeg-app/simpeg-backend-go/internal/pkg/validator"
)

type LoginRequest struct {
	NIK      string `json:"nik"`
	Password string `json:"password"`
}

func (r LoginRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidNIK(r.NIK) {
		errs = append(errs, validator.ValidationError{Field: "nik", Message: "must be a 16 digit national id number"})
	}
	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{Field: "password", Message: "is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type TokenResponse struct {
	AccessToken           string `json:"access_token"`
	AccessTokenExpiresIn  int64  `json:"access_token_expires_in"`
	RefreshToken          string `json:"-"`
	RefreshTokenExpiresIn int64  `json:"-"`
}
