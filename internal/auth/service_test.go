package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"lunblog/internal/session"
)

// Fakes backed by maps; no database involved.

type fakeUserRepo struct {
	users map[string]*User // keyed by email
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*User, error) {
	user, ok := f.users[email]
	if !ok {
		return nil, ErrUserNotFound
	}
	return user, nil
}

type fakeSessionStore struct {
	sessions map[string]*session.SessionWithUser
	deleted  []string
	touched  []string
}

func newFakeSessionStore() *fakeSessionStore {
	return &fakeSessionStore{sessions: make(map[string]*session.SessionWithUser)}
}

func (f *fakeSessionStore) Create(ctx context.Context, userID string) (*session.Session, error) {
	sess := &session.Session{
		ID:        uuid.New().String(),
		UserID:    userID,
		CreatedAt: time.Now(),
		ExpiresAt: time.Now().Add(session.Duration),
	}
	f.sessions[sess.ID] = &session.SessionWithUser{Session: *sess}
	return sess, nil
}

func (f *fakeSessionStore) GetWithUser(ctx context.Context, sessionID string) (*session.SessionWithUser, error) {
	sess, ok := f.sessions[sessionID]
	if !ok {
		return nil, session.ErrSessionNotFound
	}
	return sess, nil
}

func (f *fakeSessionStore) Touch(ctx context.Context, sessionID string) error {
	f.touched = append(f.touched, sessionID)
	if sess, ok := f.sessions[sessionID]; ok {
		sess.ExpiresAt = time.Now().Add(session.Duration)
	}
	return nil
}

func (f *fakeSessionStore) Delete(ctx context.Context, sessionID string) error {
	f.deleted = append(f.deleted, sessionID)
	delete(f.sessions, sessionID)
	return nil
}

func newTestService(t *testing.T) (Service, *fakeUserRepo, *fakeSessionStore) {
	t.Helper()

	hash, err := HashPassword("Sup3rSecret!!!")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}

	users := &fakeUserRepo{users: map[string]*User{
		"admin@x.com": {
			ID:           uuid.New().String(),
			Email:        "admin@x.com",
			PasswordHash: hash,
		},
	}}
	store := newFakeSessionStore()

	return NewService(users, store), users, store
}

func TestLogin_UnknownEmailAndWrongPasswordIndistinguishable(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	_, _, unknownErr := svc.Login(ctx, "nobody@x.com", "Sup3rSecret!!!")
	_, _, wrongErr := svc.Login(ctx, "admin@x.com", "wrong")

	if !errors.Is(unknownErr, ErrInvalidCredentials) {
		t.Fatalf("Expected ErrInvalidCredentials for unknown email, got %v", unknownErr)
	}
	if !errors.Is(wrongErr, ErrInvalidCredentials) {
		t.Fatalf("Expected ErrInvalidCredentials for wrong password, got %v", wrongErr)
	}
	if unknownErr.Error() != wrongErr.Error() {
		t.Errorf("Expected identical errors for both failure modes, got %q vs %q",
			unknownErr.Error(), wrongErr.Error())
	}
}

func TestLogin_Success(t *testing.T) {
	svc, users, store := newTestService(t)
	ctx := context.Background()

	user, sessionID, err := svc.Login(ctx, "admin@x.com", "Sup3rSecret!!!")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}

	if user.ID != users.users["admin@x.com"].ID {
		t.Errorf("Expected logged-in user ID %s, got %s", users.users["admin@x.com"].ID, user.ID)
	}
	if user.Email != "admin@x.com" {
		t.Errorf("Expected email admin@x.com, got %s", user.Email)
	}
	if sessionID == "" {
		t.Fatal("Expected a session ID")
	}

	sess, ok := store.sessions[sessionID]
	if !ok {
		t.Fatal("Expected session to be persisted")
	}
	remaining := time.Until(sess.ExpiresAt)
	if remaining < session.Duration-time.Minute || remaining > session.Duration {
		t.Errorf("Expected expiry about %v out, got %v", session.Duration, remaining)
	}
}

func TestResolveSession_ValidExtendsExpiry(t *testing.T) {
	svc, users, store := newTestService(t)
	ctx := context.Background()

	_, sessionID, err := svc.Login(ctx, "admin@x.com", "Sup3rSecret!!!")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}

	// Simulate a session nearing expiry; resolution must push it forward.
	store.sessions[sessionID].ExpiresAt = time.Now().Add(time.Minute)
	store.sessions[sessionID].UserEmail = "admin@x.com"

	before := store.sessions[sessionID].ExpiresAt

	user, err := svc.ResolveSession(ctx, sessionID)
	if err != nil {
		t.Fatalf("ResolveSession failed: %v", err)
	}
	if user.ID != users.users["admin@x.com"].ID {
		t.Errorf("Expected resolved user to match logged-in user")
	}

	if len(store.touched) != 1 || store.touched[0] != sessionID {
		t.Fatalf("Expected exactly one touch of %s, got %v", sessionID, store.touched)
	}
	if !store.sessions[sessionID].ExpiresAt.After(before) {
		t.Error("Expected expiry to move forward, never backward")
	}
}

func TestResolveSession_ExpiredIsDeleted(t *testing.T) {
	svc, _, store := newTestService(t)
	ctx := context.Background()

	_, sessionID, err := svc.Login(ctx, "admin@x.com", "Sup3rSecret!!!")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}

	store.sessions[sessionID].ExpiresAt = time.Now().Add(-time.Second)

	_, err = svc.ResolveSession(ctx, sessionID)
	if !errors.Is(err, ErrNoSession) {
		t.Fatalf("Expected ErrNoSession for expired session, got %v", err)
	}

	if len(store.deleted) != 1 || store.deleted[0] != sessionID {
		t.Errorf("Expected expired session to be deleted, deletions: %v", store.deleted)
	}
	if _, ok := store.sessions[sessionID]; ok {
		t.Error("Expected expired session to be gone from the store")
	}
	if len(store.touched) != 0 {
		t.Error("Expected no touch on an expired session")
	}
}

func TestResolveSession_MissingOrEmpty(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	if _, err := svc.ResolveSession(ctx, ""); !errors.Is(err, ErrNoSession) {
		t.Errorf("Expected ErrNoSession for empty ID, got %v", err)
	}
	if _, err := svc.ResolveSession(ctx, "not-a-session-id"); !errors.Is(err, ErrNoSession) {
		t.Errorf("Expected ErrNoSession for malformed ID, got %v", err)
	}
	if _, err := svc.ResolveSession(ctx, uuid.New().String()); !errors.Is(err, ErrNoSession) {
		t.Errorf("Expected ErrNoSession for unknown ID, got %v", err)
	}
}

func TestLogout_ThenResolveFails(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	_, sessionID, err := svc.Login(ctx, "admin@x.com", "Sup3rSecret!!!")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}

	if err := svc.Logout(ctx, sessionID); err != nil {
		t.Fatalf("Logout failed: %v", err)
	}

	if _, err := svc.ResolveSession(ctx, sessionID); !errors.Is(err, ErrNoSession) {
		t.Errorf("Expected ErrNoSession after logout, got %v", err)
	}

	// Logging out twice is fine.
	if err := svc.Logout(ctx, sessionID); err != nil {
		t.Errorf("Expected repeated logout to succeed, got %v", err)
	}
	if err := svc.Logout(ctx, ""); err != nil {
		t.Errorf("Expected logout without a session to succeed, got %v", err)
	}
}
