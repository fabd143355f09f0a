package auth

import "time"

// User is the full identity record as stored. PasswordHash never leaves
// this package.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Name         *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// PublicUser is the identity shape exposed to clients: never the hash.
type PublicUser struct {
	ID    string  `json:"id"`
	Email string  `json:"email"`
	Name  *string `json:"name"`
}

// Public strips the user down to its client-visible fields.
func (u *User) Public() *PublicUser {
	return &PublicUser{
		ID:    u.ID,
		Email: u.Email,
		Name:  u.Name,
	}
}

// LoginRequest is the request payload for logging in. No length rule on
// the password: any non-empty value is checked against the stored digest,
// so a short guess fails with the same 401 as any other wrong password.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse is the response after successful authentication
type LoginResponse struct {
	Success bool        `json:"success"`
	User    *PublicUser `json:"user"`
}
