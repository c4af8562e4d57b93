package auth

import (
	"errors"
	"net/http"
)

var (
	// ErrInvalidCredentials is rendered verbatim to the login form.
	ErrInvalidCredentials = errors.New("Invalid credentials")

	ErrUserNotFound    = errors.New("user not found")
	ErrProfileNotFound = errors.New("profile not found")
	ErrWrongPassword   = errors.New("current password is incorrect")
	ErrSessionExpired  = errors.New("session expired")
)

// GetHTTPStatusCode maps domain errors to HTTP status codes.
func GetHTTPStatusCode(err error) int {
	switch {
	case errors.Is(err, ErrInvalidCredentials),
		errors.Is(err, ErrSessionExpired):
		return http.StatusUnauthorized
	case errors.Is(err, ErrWrongPassword):
		return http.StatusBadRequest
	case errors.Is(err, ErrUserNotFound),
		errors.Is(err, ErrProfileNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
