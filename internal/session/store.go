// Package session provides persistence-backed session management.
// Sessions live in PostgreSQL next to the users they belong to and expire
// on a rolling 30-minute window: every successful resolution pushes the
// deadline forward, and expired rows are deleted lazily on first access.
package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"lunblog/internal/database"
)

// Duration is the rolling session lifetime. Each successful resolution
// resets the expiry to now + Duration.
const Duration = 30 * time.Minute

// ErrSessionNotFound is returned when a session does not exist
var ErrSessionNotFound = errors.New("session not found")

// Store defines the interface for session persistence operations
type Store interface {
	Create(ctx context.Context, userID string) (*Session, error)
	GetWithUser(ctx context.Context, sessionID string) (*SessionWithUser, error)
	Touch(ctx context.Context, sessionID string) error
	Delete(ctx context.Context, sessionID string) error
}

// postgresStore implements Store on top of the shared database service
type postgresStore struct {
	db database.Service
}

// NewPostgresStore creates a PostgreSQL-backed session store
func NewPostgresStore(db database.Service) Store {
	return &postgresStore{db: db}
}

// Create persists a new session for the given user. The session ID is a
// fresh v4 UUID sourced from crypto/rand, which keeps it unguessable.
func (s *postgresStore) Create(ctx context.Context, userID string) (*Session, error) {
	query := `
		INSERT INTO sessions (id, user_id, expires_at, created_at)
		VALUES ($1, $2, $3, NOW())
		RETURNING id, user_id, expires_at, created_at
	`

	sess := &Session{}
	err := s.db.QueryRow(ctx, query, uuid.New().String(), userID, time.Now().Add(Duration)).Scan(
		&sess.ID,
		&sess.UserID,
		&sess.ExpiresAt,
		&sess.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	return sess, nil
}

// GetWithUser fetches a session joined with its owning user in one query.
func (s *postgresStore) GetWithUser(ctx context.Context, sessionID string) (*SessionWithUser, error) {
	query := `
		SELECT s.id, s.user_id, s.expires_at, s.created_at, u.email, u.name
		FROM sessions s
		JOIN users u ON u.id = s.user_id
		WHERE s.id = $1
	`

	sess := &SessionWithUser{}
	err := s.db.QueryRow(ctx, query, sessionID).Scan(
		&sess.ID,
		&sess.UserID,
		&sess.ExpiresAt,
		&sess.CreatedAt,
		&sess.UserEmail,
		&sess.UserName,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	return sess, nil
}

// Touch extends the session's expiry to now + Duration. Concurrent touches
// on the same session are last-write-wins; either write moves the deadline
// forward, never backward.
func (s *postgresStore) Touch(ctx context.Context, sessionID string) error {
	query := `UPDATE sessions SET expires_at = $1 WHERE id = $2`

	if _, err := s.db.Exec(ctx, query, time.Now().Add(Duration), sessionID); err != nil {
		return fmt.Errorf("failed to touch session: %w", err)
	}

	return nil
}

// Delete removes a session. Deleting a session that no longer exists is
// not an error.
func (s *postgresStore) Delete(ctx context.Context, sessionID string) error {
	query := `DELETE FROM sessions WHERE id = $1`

	if _, err := s.db.Exec(ctx, query, sessionID); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}

	return nil
}
