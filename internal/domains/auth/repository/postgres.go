package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/chrisakin/Katherine-Akintade-Website/internal/domains/auth"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) auth.Repository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) FindUserByEmail(ctx context.Context, email string) (*auth.User, error) {
	const query = `
		SELECT id, email, password_hash, created_at
		FROM users
		WHERE email = $1
	`

	user := &auth.User{}
	err := r.pool.QueryRow(ctx, query, email).Scan(
		&user.ID,
		&user.Email,
		&user.PasswordHash,
		&user.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, auth.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user by email: %w", err)
	}
	return user, nil
}

func (r *postgresRepository) FindUserByID(ctx context.Context, id uuid.UUID) (*auth.User, error) {
	const query = `
		SELECT id, email, password_hash, created_at
		FROM users
		WHERE id = $1
	`

	user := &auth.User{}
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&user.ID,
		&user.Email,
		&user.PasswordHash,
		&user.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, auth.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user by id: %w", err)
	}
	return user, nil
}

func (r *postgresRepository) FindProfileByUsername(ctx context.Context, username string) (*auth.Profile, error) {
	const query = `
		SELECT id, first_name, last_name, username, updated_at
		FROM profiles
		WHERE username = $1
	`

	profile := &auth.Profile{}
	err := r.pool.QueryRow(ctx, query, username).Scan(
		&profile.ID,
		&profile.FirstName,
		&profile.LastName,
		&profile.Username,
		&profile.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, auth.ErrProfileNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find profile by username: %w", err)
	}
	return profile, nil
}

func (r *postgresRepository) FindProfileByID(ctx context.Context, id uuid.UUID) (*auth.Profile, error) {
	const query = `
		SELECT id, first_name, last_name, username, updated_at
		FROM profiles
		WHERE id = $1
	`

	profile := &auth.Profile{}
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&profile.ID,
		&profile.FirstName,
		&profile.LastName,
		&profile.Username,
		&profile.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, auth.ErrProfileNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find profile by id: %w", err)
	}
	return profile, nil
}

func (r *postgresRepository) UpdatePasswordHash(ctx context.Context, id uuid.UUID, hash string) error {
	const query = `
		UPDATE users
		SET password_hash = $2
		WHERE id = $1
	`

	tag, err := r.pool.Exec(ctx, query, id, hash)
	if err != nil {
		return fmt.Errorf("failed to update password hash: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return auth.ErrUserNotFound
	}
	return nil
}
