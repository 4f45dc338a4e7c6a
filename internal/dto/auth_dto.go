package dto

import "github.com/google/uuid"

const minPasswordLength = 8

type RegisterRequest struct {
	Username        string `json:"username"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
	Phone           string `json:"phone"`
	City            string `json:"city"`
}

// Validate checks a patient registration form. Uniqueness of username and
// email is a store-level pre-check and is not covered here.
func (r *RegisterRequest) Validate() FieldErrors {
	var errs FieldErrors
	errs.require("username", r.Username, "Username is required")
	errs.require("email", r.Email, "Email is required")
	if len(r.Password) < minPasswordLength {
		errs = append(errs, FieldError{Field: "password", Message: "Password must be at least 8 characters"})
	}
	if r.Password != r.ConfirmPassword {
		errs = append(errs, FieldError{Field: "confirm_password", Message: "Passwords do not match"})
	}
	return errs
}

type RegisterProviderRequest struct {
	RegisterRequest
	BusinessName string `json:"business_name"`
	ProviderType string `json:"provider_type"`
}

func (r *RegisterProviderRequest) Validate() FieldErrors {
	errs := r.RegisterRequest.Validate()
	errs.require("business_name", r.BusinessName, "Business name is required")
	errs.require("provider_type", r.ProviderType, "Provider type is required")
	return errs
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type LogoutRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

type UserResponse struct {
	ID         uuid.UUID `json:"id"`
	Username   string    `json:"username"`
	Email      string    `json:"email"`
	FirstName  string    `json:"first_name"`
	LastName   string    `json:"last_name"`
	Role       string    `json:"role"`
	IsApproved bool      `json:"is_approved"`
}

// AuthResponse carries the token pair plus the role-dependent landing path
// the client should navigate to.
type AuthResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	User         UserResponse `json:"user"`
	Redirect     string       `json:"redirect"`
}

type ErrorResponse struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
}

// ValidationErrorResponse is returned for rejected form input; Fields names
// each offending input so the client can re-render with bound values.
type ValidationErrorResponse struct {
	Error   bool        `json:"error"`
	Message string      `json:"message"`
	Fields  FieldErrors `json:"fields"`
}

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	DB        string `json:"db"`
}
