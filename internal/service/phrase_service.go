package service

import (
	"context"
	"fmt"

	"speakprep/internal/domain"
	"speakprep/internal/dto"
	"speakprep/internal/repository"
)

// PhraseService exposes owner-scoped phrase bookkeeping on top of the
// repository, translating misses into domain errors for the API boundary.
type PhraseService interface {
	SavePhrase(ctx context.Context, userID string, req *dto.SavePhraseRequest) (*dto.PhraseResponse, error)
	GetPhrase(ctx context.Context, userID, phraseID string) (*dto.PhraseResponse, error)
	ListPhrases(ctx context.Context, userID string) (*dto.PhraseListResponse, error)
	DeletePhrase(ctx context.Context, userID, phraseID string) error
	SetMastered(ctx context.Context, userID, phraseID string, isMastered bool) (*dto.PhraseResponse, error)
}

type phraseServiceImpl struct {
	phraseRepo repository.PhraseRepository
}

// NewPhraseService creates a new instance of PhraseService.
func NewPhraseService(phraseRepo repository.PhraseRepository) PhraseService {
	return &phraseServiceImpl{phraseRepo: phraseRepo}
}

func toPhraseResponse(p *domain.SavedPhrase) *dto.PhraseResponse {
	return &dto.PhraseResponse{
		ID:         p.ID,
		Phrase:     p.Phrase,
		Context:    p.Context,
		Category:   p.Category,
		IsMastered: p.IsMastered,
		CreatedAt:  p.CreatedAt,
	}
}

// SavePhrase persists a new phrase for the user. New phrases start unmastered.
func (s *phraseServiceImpl) SavePhrase(ctx context.Context, userID string, req *dto.SavePhraseRequest) (*dto.PhraseResponse, error) {
	phrase := domain.NewSavedPhrase(userID, req.Phrase, req.Context, req.Category)
	if err := phrase.Validate(); err != nil {
		return nil, err
	}

	saved, err := s.phraseRepo.Save(ctx, phrase)
	if err != nil {
		return nil, fmt.Errorf("failed to save phrase in repository: %w", err)
	}
	return toPhraseResponse(saved), nil
}

// GetPhrase retrieves one phrase owned by the user.
func (s *phraseServiceImpl) GetPhrase(ctx context.Context, userID, phraseID string) (*dto.PhraseResponse, error) {
	phrase, err := s.phraseRepo.GetByID(ctx, userID, phraseID)
	if err != nil {
		return nil, fmt.Errorf("failed to get phrase from repository: %w", err)
	}
	if phrase == nil {
		return nil, domain.NewPhraseNotFoundError(phraseID)
	}
	return toPhraseResponse(phrase), nil
}

// ListPhrases returns all phrases of the user, most recent first.
func (s *phraseServiceImpl) ListPhrases(ctx context.Context, userID string) (*dto.PhraseListResponse, error) {
	phrases, err := s.phraseRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list phrases from repository: %w", err)
	}

	items := make([]dto.PhraseResponse, len(phrases))
	for i := range phrases {
		items[i] = *toPhraseResponse(&phrases[i])
	}
	return &dto.PhraseListResponse{Phrases: items, Total: len(items)}, nil
}

// DeletePhrase removes the phrase. The repository treats a missing row as
// a no-op; the API contract wants a 404, so the miss surfaces here.
func (s *phraseServiceImpl) DeletePhrase(ctx context.Context, userID, phraseID string) error {
	deleted, err := s.phraseRepo.Delete(ctx, userID, phraseID)
	if err != nil {
		return fmt.Errorf("failed to delete phrase in repository: %w", err)
	}
	if !deleted {
		return domain.NewPhraseNotFoundError(phraseID)
	}
	return nil
}

// SetMastered toggles the mastered flag and returns the updated phrase.
func (s *phraseServiceImpl) SetMastered(ctx context.Context, userID, phraseID string, isMastered bool) (*dto.PhraseResponse, error) {
	updated, err := s.phraseRepo.SetMastered(ctx, userID, phraseID, isMastered)
	if err != nil {
		return nil, fmt.Errorf("failed to update mastered status in repository: %w", err)
	}
	if updated == nil {
		return nil, domain.NewPhraseNotFoundError(phraseID)
	}
	return toPhraseResponse(updated), nil
}
