package models

import (
	"time"
)

// User represents a user row in the users table.
type User struct {
	ID             string    `db:"id"`              // ULID
	UserIdentifier string    `db:"user_identifier"` // Opaque external identifier, unique
	CreatedAt      time.Time `db:"created_at"`      // Timestamp of user creation
}

// Session represents an auth session row. The token is an opaque random
// string; the row is removed on logout or lazily once expired.
type Session struct {
	ID           string    `db:"id"`            // ULID
	UserID       string    `db:"user_id"`       // Foreign key to users table
	SessionToken string    `db:"session_token"` // Opaque random token, unique
	ExpiresAt    time.Time `db:"expires_at"`    // Hard expiry deadline
	CreatedAt    time.Time `db:"created_at"`    // Timestamp of issuance
}
