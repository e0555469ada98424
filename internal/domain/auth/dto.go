package auth

import (
	"github.com/tadbir-app/tadbir-backend-go/internal/pkg/validator"
)

type RegisterRequest struct {
	CompanyName string `json:"company_name"`
	Name        string `json:"name"`
	Username    string `json:"username"`
	Password    string `json:"password"`
}

func (r *RegisterRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.CompanyName) {
		errs = append(errs, validator.ValidationError{Field: "company_name", Message: "company_name is required"})
	}
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name is required"})
	}
	if !validator.IsValidUsername(r.Username) {
		errs = append(errs, validator.ValidationError{Field: "username", Message: "username must be 3-50 chars of letters, digits, '.', '_' or '-'"})
	}
	if len(r.Password) < 8 {
		errs = append(errs, validator.ValidationError{Field: "password", Message: "password must be at least 8 characters"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (r *LoginRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Username) {
		errs = append(errs, validator.ValidationError{Field: "username", Message: "username is required"})
	}
	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{Field: "password", Message: "password is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresAt   int64  `json:"expires_at"`
	UserID      string `json:"user_id"`
	CompanyID   string `json:"company_id"`
	IsParent    bool   `json:"is_parent"`
	Role        string `json:"role"`
}
