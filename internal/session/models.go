package session

import "time"

// Session is the server-side record behind the session cookie. Its ID is
// the bearer credential, so it must never be logged or echoed outside the
// cookie itself.
type Session struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// SessionWithUser is a session joined with its owning user, fetched in a
// single query during resolution.
type SessionWithUser struct {
	Session
	UserEmail string
	UserName  *string
}
