package payload

import (
	"time"

	"github.com/jmcdev/cryptomark-api/internal/model"
)

type SignupRequest struct {
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Message string      `json:"message"`
	User    *model.User `json:"user"`
}

type LogoutRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type LogoutResponse struct {
	Message    string    `json:"message"`
	LastLogout time.Time `json:"lastLogout"`
}

type UpdateUserRequest struct {
	Name     *string `json:"name,omitempty"`
	Password *string `json:"password,omitempty"`
}

// UserResponse is a user as rendered by GET /users: identical to the stored
// document except the timestamps are formatted local-time strings.
type UserResponse struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Email      string  `json:"email"`
	LastLogin  *string `json:"lastLogin"`
	LastLogout *string `json:"lastLogout"`
}
