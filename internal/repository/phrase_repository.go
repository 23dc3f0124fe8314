package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"speakprep/internal/domain"
	"speakprep/internal/repository/models"
	"speakprep/internal/util"

	"github.com/jmoiron/sqlx"
)

// PhraseRepository defines owner-scoped persistence for saved phrases.
// Every read takes the owner id as a mandatory filter so a caller cannot
// accidentally read another user's phrase.
type PhraseRepository interface {
	Save(ctx context.Context, phrase *domain.SavedPhrase) (*domain.SavedPhrase, error)
	// GetByID returns (nil, nil) when no phrase matches id and owner.
	GetByID(ctx context.Context, userID, phraseID string) (*domain.SavedPhrase, error)
	// ListByUser returns all phrases of the user, most recent first.
	ListByUser(ctx context.Context, userID string) ([]domain.SavedPhrase, error)
	// Delete reports whether a row was removed; an absent id is not an error.
	Delete(ctx context.Context, userID, phraseID string) (bool, error)
	// SetMastered updates the mastered flag and returns the updated phrase,
	// or (nil, nil) when no phrase matches.
	SetMastered(ctx context.Context, userID, phraseID string, isMastered bool) (*domain.SavedPhrase, error)
}

// sqlxPhraseRepository implements PhraseRepository using sqlx.
type sqlxPhraseRepository struct {
	db *sqlx.DB
}

// NewSQLXPhraseRepository creates a new instance of sqlxPhraseRepository.
func NewSQLXPhraseRepository(db *sqlx.DB) PhraseRepository {
	return &sqlxPhraseRepository{db: db}
}

func toDomainPhrase(m *models.SavedPhrase) *domain.SavedPhrase {
	if m == nil {
		return nil
	}
	return &domain.SavedPhrase{
		ID:         m.ID,
		UserID:     m.UserID,
		Phrase:     m.Phrase,
		Context:    m.Context,
		Category:   m.Category,
		IsMastered: m.IsMastered,
		CreatedAt:  m.CreatedAt,
	}
}

// Save inserts a new phrase and returns the persisted entity.
func (r *sqlxPhraseRepository) Save(ctx context.Context, phrase *domain.SavedPhrase) (*domain.SavedPhrase, error) {
	exec := GetExecutor(ctx, r.db)
	m := models.SavedPhrase{
		ID:         util.NewULID(),
		UserID:     phrase.UserID,
		Phrase:     phrase.Phrase,
		Context:    phrase.Context,
		Category:   phrase.Category,
		IsMastered: false,
		CreatedAt:  time.Now(),
	}
	query := `INSERT INTO saved_phrases (id, user_id, phrase, context, category, is_mastered, created_at)
	          VALUES (:id, :user_id, :phrase, :context, :category, :is_mastered, :created_at)`
	if _, err := exec.NamedExecContext(ctx, query, m); err != nil {
		return nil, fmt.Errorf("failed to save phrase: %w", err)
	}
	return toDomainPhrase(&m), nil
}

// GetByID retrieves a phrase by id, scoped to its owner.
func (r *sqlxPhraseRepository) GetByID(ctx context.Context, userID, phraseID string) (*domain.SavedPhrase, error) {
	exec := GetExecutor(ctx, r.db)
	var m models.SavedPhrase
	query := `SELECT id, user_id, phrase, context, category, is_mastered, created_at
	          FROM saved_phrases WHERE id = $1 AND user_id = $2`

	err := exec.GetContext(ctx, &m, query, phraseID, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get phrase by id: %w", err)
	}
	return toDomainPhrase(&m), nil
}

// ListByUser retrieves all phrases of a user ordered by creation time,
// most recent first. The result set is unbounded.
func (r *sqlxPhraseRepository) ListByUser(ctx context.Context, userID string) ([]domain.SavedPhrase, error) {
	exec := GetExecutor(ctx, r.db)
	var rows []models.SavedPhrase
	query := `SELECT id, user_id, phrase, context, category, is_mastered, created_at
	          FROM saved_phrases WHERE user_id = $1 ORDER BY created_at DESC, id DESC`

	if err := exec.SelectContext(ctx, &rows, query, userID); err != nil {
		return nil, fmt.Errorf("failed to list phrases by user: %w", err)
	}

	phrases := make([]domain.SavedPhrase, len(rows))
	for i := range rows {
		phrases[i] = *toDomainPhrase(&rows[i])
	}
	return phrases, nil
}

// Delete removes the phrase if present.
func (r *sqlxPhraseRepository) Delete(ctx context.Context, userID, phraseID string) (bool, error) {
	exec := GetExecutor(ctx, r.db)
	query := `DELETE FROM saved_phrases WHERE id = $1 AND user_id = $2`

	result, err := exec.ExecContext(ctx, query, phraseID, userID)
	if err != nil {
		return false, fmt.Errorf("failed to delete phrase: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return rowsAffected > 0, nil
}

// SetMastered updates the is_mastered flag and returns the updated row.
func (r *sqlxPhraseRepository) SetMastered(ctx context.Context, userID, phraseID string, isMastered bool) (*domain.SavedPhrase, error) {
	exec := GetExecutor(ctx, r.db)
	query := `UPDATE saved_phrases SET is_mastered = $1 WHERE id = $2 AND user_id = $3`

	result, err := exec.ExecContext(ctx, query, isMastered, phraseID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to update mastered status: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return nil, nil
	}
	return r.GetByID(ctx, userID, phraseID)
}
