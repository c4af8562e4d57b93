package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/chrisakin/Katherine-Akintade-Website/internal/domains/auth"
	"github.com/chrisakin/Katherine-Akintade-Website/pkg/logger"
)

const bcryptCost = 12

type authService struct {
	repo     auth.Repository
	sessions auth.SessionStore

	mu   sync.Mutex
	subs []chan auth.Event
}

func NewAuthService(repo auth.Repository, sessions auth.SessionStore) auth.Service {
	return &authService{
		repo:     repo,
		sessions: sessions,
	}
}

// Login resolves the identifier to a user, verifies the credential and
// opens a session. A username that matches no profile fails immediately
// without touching the credential store.
func (s *authService) Login(ctx context.Context, req auth.LoginRequest) (*auth.LoginResponse, error) {
	identifier := strings.TrimSpace(req.Identifier)

	var user *auth.User
	var err error

	if strings.Contains(identifier, "@") {
		user, err = s.repo.FindUserByEmail(ctx, identifier)
		if err != nil {
			if errors.Is(err, auth.ErrUserNotFound) {
				return nil, auth.ErrInvalidCredentials
			}
			return nil, fmt.Errorf("failed to look up user: %w", err)
		}
	} else {
		profile, perr := s.repo.FindProfileByUsername(ctx, identifier)
		if perr != nil {
			if errors.Is(perr, auth.ErrProfileNotFound) {
				// No credential verification happens on this path.
				return nil, auth.ErrInvalidCredentials
			}
			return nil, fmt.Errorf("failed to look up profile: %w", perr)
		}

		user, err = s.repo.FindUserByID(ctx, profile.ID)
		if err != nil {
			if errors.Is(err, auth.ErrUserNotFound) {
				return nil, auth.ErrInvalidCredentials
			}
			return nil, fmt.Errorf("failed to look up user: %w", err)
		}
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, auth.ErrInvalidCredentials
	}

	sess, err := s.sessions.Create(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	profile, err := s.repo.FindProfileByID(ctx, user.ID)
	if err != nil && !errors.Is(err, auth.ErrProfileNotFound) {
		logger.Warn("profile fetch failed after login", err)
	}

	s.notify(auth.Event{Type: auth.EventSignedIn, UserID: user.ID, At: time.Now()})

	return &auth.LoginResponse{
		Token:     sess.Token,
		ExpiresAt: sess.ExpiresAt,
		User:      auth.ToUserDTO(user),
		Profile:   auth.ToProfileDTO(profile),
	}, nil
}

// Logout invalidates the session. Best effort: failures are logged and
// swallowed so the caller can always treat the token as dead.
func (s *authService) Logout(ctx context.Context, token string) {
	var userID uuid.UUID
	if sess, err := s.sessions.Get(ctx, token); err == nil {
		userID = sess.UserID
	}

	if err := s.sessions.Delete(ctx, token); err != nil {
		logger.Warn("session invalidation failed during logout", err)
	}

	s.notify(auth.Event{Type: auth.EventSignedOut, UserID: userID, At: time.Now()})
}

func (s *authService) Refresh(ctx context.Context, token string) (*auth.SessionDTO, error) {
	sess, err := s.sessions.Refresh(ctx, token)
	if err != nil {
		return nil, auth.ErrSessionExpired
	}
	return &auth.SessionDTO{Token: sess.Token, ExpiresAt: sess.ExpiresAt}, nil
}

// ChangePassword re-authenticates with the current password before
// rehashing.
func (s *authService) ChangePassword(ctx context.Context, userID uuid.UUID, req auth.ChangePasswordRequest) error {
	user, err := s.repo.FindUserByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to look up user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.CurrentPassword)); err != nil {
		return auth.ErrWrongPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcryptCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.repo.UpdatePasswordHash(ctx, userID, string(hash)); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	return nil
}

func (s *authService) Me(ctx context.Context, userID uuid.UUID) (*auth.UserDTO, *auth.ProfileDTO, error) {
	user, err := s.repo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to look up user: %w", err)
	}

	profile, err := s.repo.FindProfileByID(ctx, userID)
	if err != nil && !errors.Is(err, auth.ErrProfileNotFound) {
		return nil, nil, fmt.Errorf("failed to look up profile: %w", err)
	}

	userDTO := auth.ToUserDTO(user)
	return &userDTO, auth.ToProfileDTO(profile), nil
}

func (s *authService) Subscribe() <-chan auth.Event {
	ch := make(chan auth.Event, 16)
	s.mu.Lock()
	s.subs = append(s.subs, ch)
	s.mu.Unlock()
	return ch
}

// notify fans out without blocking; a full subscriber misses the event.
func (s *authService) notify(ev auth.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, ch := range s.subs {
		select {
		case ch <- ev:
		default:
		}
	}
}
