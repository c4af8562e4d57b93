package auth

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the data access contract for users and profiles.
type Repository interface {
	FindUserByEmail(ctx context.Context, email string) (*User, error)
	FindUserByID(ctx context.Context, id uuid.UUID) (*User, error)
	FindProfileByUsername(ctx context.Context, username string) (*Profile, error)
	FindProfileByID(ctx context.Context, id uuid.UUID) (*Profile, error)
	UpdatePasswordHash(ctx context.Context, id uuid.UUID, hash string) error
}
