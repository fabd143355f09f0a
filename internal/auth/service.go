// Package auth implements session-based authentication for the single
// admin user: credential verification, session lifecycle, and the
// authorization gate every admin route passes through.
package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"lunblog/internal/session"
)

var (
	// ErrInvalidCredentials covers both unknown email and wrong password.
	// Callers must surface the same message for either case so account
	// existence cannot be probed.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrNoSession is returned when a request carries no usable session:
	// missing cookie, unknown ID, or an expired record. Expected control
	// flow, not a server fault.
	ErrNoSession = errors.New("no active session")
)

// Service defines the authentication service interface
type Service interface {
	Login(ctx context.Context, email, password string) (*PublicUser, string, error)
	ResolveSession(ctx context.Context, sessionID string) (*PublicUser, error)
	Logout(ctx context.Context, sessionID string) error
}

type service struct {
	users    UserRepository
	sessions session.Store
}

// NewService creates a new authentication service
func NewService(users UserRepository, sessions session.Store) Service {
	return &service{
		users:    users,
		sessions: sessions,
	}
}

// Login verifies credentials and creates a session. It returns the user's
// public identity and the new session ID for the cookie.
func (s *service) Login(ctx context.Context, email, password string) (*PublicUser, string, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if errors.Is(err, ErrUserNotFound) {
		// Still indistinguishable from a wrong password at the boundary.
		return nil, "", ErrInvalidCredentials
	}
	if err != nil {
		return nil, "", fmt.Errorf("failed to look up user: %w", err)
	}

	if !VerifyPassword(password, user.PasswordHash) {
		return nil, "", ErrInvalidCredentials
	}

	sess, err := s.sessions.Create(ctx, user.ID)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create session: %w", err)
	}

	return user.Public(), sess.ID, nil
}

// ResolveSession maps a session ID to an authenticated identity. Expired
// sessions are deleted on discovery and reported as absent; valid ones get
// their expiry extended (rolling window).
func (s *service) ResolveSession(ctx context.Context, sessionID string) (*PublicUser, error) {
	// A cookie that does not even hold a UUID cannot match a session row.
	if _, err := uuid.Parse(sessionID); err != nil {
		return nil, ErrNoSession
	}

	sess, err := s.sessions.GetWithUser(ctx, sessionID)
	if errors.Is(err, session.ErrSessionNotFound) {
		return nil, ErrNoSession
	}
	if err != nil {
		return nil, fmt.Errorf("failed to resolve session: %w", err)
	}

	if time.Now().After(sess.ExpiresAt) {
		if err := s.sessions.Delete(ctx, sessionID); err != nil {
			return nil, fmt.Errorf("failed to delete expired session: %w", err)
		}
		return nil, ErrNoSession
	}

	if err := s.sessions.Touch(ctx, sessionID); err != nil {
		return nil, fmt.Errorf("failed to extend session: %w", err)
	}

	return &PublicUser{
		ID:    sess.UserID,
		Email: sess.UserEmail,
		Name:  sess.UserName,
	}, nil
}

// Logout deletes the session if it exists. Absence is not an error.
func (s *service) Logout(ctx context.Context, sessionID string) error {
	if _, err := uuid.Parse(sessionID); err != nil {
		return nil
	}
	return s.sessions.Delete(ctx, sessionID)
}
