// internal/session/entity.go
package session

import (
	"errors"
	"fmt"

	"github.com/your-org/storefront-gateway/internal/api"
)

// Identity is the shopper identity decoded from the current access token
type Identity struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Role      string `json:"role"`
}

// LoginRequest represents login credentials
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RegisterRequest represents user registration data
type RegisterRequest struct {
	Email           string `json:"email" binding:"required,email"`
	Password        string `json:"password" binding:"required"`
	ConfirmPassword string `json:"confirmPassword" binding:"required"`
	FirstName       string `json:"firstName" binding:"required"`
	LastName        string `json:"lastName" binding:"required"`
}

// LoginResponse represents the backend's login payload
type LoginResponse struct {
	Token        string   `json:"token"`
	RefreshToken string   `json:"refreshToken"`
	User         Identity `json:"user"`
}

// refreshResponse represents the backend's refresh payload
type refreshResponse struct {
	AccessToken string `json:"access_token"`
}

// ErrNoRefreshToken is returned when a refresh is attempted with no stored
// refresh token. It always terminates the session.
var ErrNoRefreshToken = errors.New("session: no refresh token available")

// ErrRefreshFailed wraps a backend rejection of the refresh token
var ErrRefreshFailed = errors.New("session: token refresh rejected")

// AuthError is a login or registration failure carrying a user-facing cause
type AuthError struct {
	Status  int
	Message string
	Err     error
}

// Error implements the error interface
func (e *AuthError) Error() string {
	return fmt.Sprintf("auth: %s", e.Message)
}

// Unwrap exposes the underlying cause
func (e *AuthError) Unwrap() error {
	return e.Err
}

// newAuthError maps a failed backend call to a user-facing auth error
func newAuthError(err error) *AuthError {
	status := api.StatusOf(err)
	var message string
	switch {
	case status == 401:
		message = "Invalid credentials"
	case status == 403:
		message = "Access forbidden"
	case status == 404:
		message = "Resource not found"
	case status >= 500:
		message = "Internal server error"
	case status != 0:
		message = fmt.Sprintf("Error code: %d", status)
	default:
		message = "Network error"
	}
	return &AuthError{Status: status, Message: message, Err: err}
}
