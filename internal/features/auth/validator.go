package auth

import (
	"errors"

	"github.com/campusfound/api/internal/pkg/validator"
)

func ValidateRegister(req *RegisterRequest) error {
	if !validator.IsValidEmail(req.Email) {
		return errors.New("Please enter a valid email")
	}
	if len(req.Password) < 6 {
		return errors.New("Password must be at least 6 characters")
	}
	if !validator.IsValidName(req.FullName) {
		return errors.New("Name must be at least 2 characters")
	}
	return nil
}

func ValidateLogin(req *LoginRequest) error {
	if !validator.IsValidEmail(req.Email) {
		return errors.New("Please enter a valid email")
	}
	if req.Password == "" {
		return errors.New("Password is required")
	}
	return nil
}

func ValidateResetPassword(req *ResetPasswordRequest) error {
	if req.Token == "" {
		return errors.New("Reset token is required")
	}
	if len(req.Password) < 6 {
		return errors.New("Password must be at least 6 characters")
	}
	return nil
}
