package domain

import (
	"time"
)

// SavedPhrase is a user's bookmarked language phrase. Phrases are
// exclusively owned by one user and never shared.
type SavedPhrase struct {
	ID         string
	UserID     string
	Phrase     string
	Context    string
	Category   string
	IsMastered bool
	CreatedAt  time.Time
}

// NewSavedPhrase creates a new SavedPhrase instance. New phrases always
// start out unmastered.
func NewSavedPhrase(userID, phrase, context, category string) *SavedPhrase {
	return &SavedPhrase{
		UserID:     userID,
		Phrase:     phrase,
		Context:    context,
		Category:   category,
		IsMastered: false,
		CreatedAt:  time.Now(),
	}
}

// Validate validates the phrase
func (p *SavedPhrase) Validate() error {
	var errs ValidationErrors
	if p.UserID == "" {
		errs = append(errs, NewMissingFieldError("user_id"))
	}
	if p.Phrase == "" {
		errs = append(errs, NewMissingFieldError("phrase"))
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}
