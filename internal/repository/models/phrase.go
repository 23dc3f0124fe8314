package models

import (
	"time"
)

// SavedPhrase represents a row in the saved_phrases table.
type SavedPhrase struct {
	ID         string    `db:"id"`          // ULID
	UserID     string    `db:"user_id"`     // Foreign key to users table
	Phrase     string    `db:"phrase"`      // The bookmarked phrase text
	Context    string    `db:"context"`     // Usage example or context
	Category   string    `db:"category"`    // Free-form tag, e.g. "transition"
	IsMastered bool      `db:"is_mastered"` // Whether the user marked the phrase as mastered
	CreatedAt  time.Time `db:"created_at"`  // Timestamp of the save action
}
