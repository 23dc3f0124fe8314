package domain

import (
	"time"
)

// User is the identity anchor. A user is created on first login and keyed
// by an opaque external identifier.
type User struct {
	ID             string
	UserIdentifier string
	CreatedAt      time.Time
}

// NewUser creates a new User instance
func NewUser(identifier string) *User {
	return &User{
		UserIdentifier: identifier,
		CreatedAt:      time.Now(),
	}
}

// Validate validates the user
func (u *User) Validate() error {
	if u.UserIdentifier == "" {
		return ValidationErrors{NewMissingFieldError("user_identifier")}
	}
	return nil
}

// Session represents one logged-in session, identified by an opaque token.
// A user may hold any number of concurrent sessions.
type Session struct {
	ID           string
	UserID       string
	SessionToken string
	ExpiresAt    time.Time
	CreatedAt    time.Time
}

// IsExpired reports whether the session should be treated as absent.
// Expiry is inclusive: a session whose deadline equals now is expired.
func (s *Session) IsExpired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
