package model

import "github.com/deppfellow/todo-api/internal/validation"

// User owns Todos and authenticates with a bearer token.
type User struct {
	Base
	Name           string `json:"name"`
	Email          string `json:"email"`
	PasswordDigest string `json:"-"`
}

// AuthResponse is returned by signup and login.
type AuthResponse struct {
	Message   string `json:"message,omitempty"`
	AuthToken string `json:"auth_token"`
}

// ------------------------------------------------------------

type SignupPayload struct {
	Name                 string `json:"name" validate:"notblank"`
	Email                string `json:"email" validate:"notblank,email"`
	Password             string `json:"password" validate:"notblank,min=6"`
	PasswordConfirmation string `json:"password_confirmation" validate:"eqfield=Password"`
}

func (p *SignupPayload) Validate() error {
	return validation.Struct(p)
}

// ------------------------------------------------------------

type LoginPayload struct {
	Email    string `json:"email" validate:"notblank"`
	Password string `json:"password" validate:"notblank"`
}

func (p *LoginPayload) Validate() error {
	return validation.Struct(p)
}
