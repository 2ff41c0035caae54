package dto

import "github.com/dorixona/pharmacy-api/internal/domain/entity"

// LoginRequest credentials for login. Presence is the only validation;
// the account directory decides the rest.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest profile for registration. All fields required by the
// form layer.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

// SessionResponse the current session state as screens see it.
type SessionResponse struct {
	Authenticated bool         `json:"authenticated"`
	Loading       bool         `json:"loading"`
	User          *entity.User `json:"user,omitempty"`
	Mode          string       `json:"mode"`
}
