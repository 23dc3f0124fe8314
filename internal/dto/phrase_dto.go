package dto

import "time"

// SavePhraseRequest is the body of POST /phrases.
type SavePhraseRequest struct {
	Phrase   string `json:"phrase"`
	Context  string `json:"context"`
	Category string `json:"category"`
}

// SetMasteredRequest is the body of PATCH /phrases/:id/mastered.
type SetMasteredRequest struct {
	IsMastered bool `json:"is_mastered"`
}

// PhraseResponse represents one saved phrase.
type PhraseResponse struct {
	ID         string    `json:"id"`
	Phrase     string    `json:"phrase"`
	Context    string    `json:"context,omitempty"`
	Category   string    `json:"category,omitempty"`
	IsMastered bool      `json:"is_mastered"`
	CreatedAt  time.Time `json:"created_at"`
}

// PhraseListResponse is the response for listing a user's phrases.
type PhraseListResponse struct {
	Phrases []PhraseResponse `json:"phrases"`
	Total   int              `json:"total"`
}
