package auth

import (
	"context"

	"github.com/google/uuid"

	"github.com/chrisakin/Katherine-Akintade-Website/internal/infrastructure/session"
)

// SessionStore is the slice of the session infrastructure the auth
// service depends on. Satisfied by *session.Store.
type SessionStore interface {
	Create(ctx context.Context, userID uuid.UUID) (*session.Session, error)
	Get(ctx context.Context, token string) (*session.Session, error)
	Refresh(ctx context.Context, token string) (*session.Session, error)
	Delete(ctx context.Context, token string) error
}

// Service owns the process-wide authentication state: login, logout,
// password change, session refresh and change notification.
type Service interface {
	Login(ctx context.Context, req LoginRequest) (*LoginResponse, error)

	// Logout is best effort: a failing store call is logged, never
	// surfaced, and the token is considered dead either way.
	Logout(ctx context.Context, token string)

	Refresh(ctx context.Context, token string) (*SessionDTO, error)
	ChangePassword(ctx context.Context, userID uuid.UUID, req ChangePasswordRequest) error
	Me(ctx context.Context, userID uuid.UUID) (*UserDTO, *ProfileDTO, error)

	// Subscribe registers an observer of auth state changes. Events are
	// delivered on a buffered channel; slow consumers miss events rather
	// than block sign-in.
	Subscribe() <-chan Event
}
