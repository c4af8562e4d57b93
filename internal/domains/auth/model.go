package auth

import (
	"time"

	"github.com/google/uuid"
)

// User is the credential-bearing account behind the admin dashboard.
type User struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

// Profile is the one-to-one public identity of a user. Read-only here
// except that password changes mutate the underlying credential.
type Profile struct {
	ID        uuid.UUID
	FirstName string
	LastName  string
	Username  string
	UpdatedAt time.Time
}

// EventType classifies auth state changes.
type EventType string

const (
	EventSignedIn  EventType = "admin_sign_in"
	EventSignedOut EventType = "admin_sign_out"
)

// Event is broadcast to subscribers whenever the auth state changes.
type Event struct {
	Type   EventType
	UserID uuid.UUID
	At     time.Time
}
