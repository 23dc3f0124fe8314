package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"speakprep/internal/domain"
	"speakprep/internal/repository/models"

	"github.com/jmoiron/sqlx"
)

// SessionRepository defines the interface for auth session persistence.
type SessionRepository interface {
	Create(ctx context.Context, session *domain.Session) error
	// GetByToken returns (nil, nil) when no session matches the token.
	GetByToken(ctx context.Context, token string) (*domain.Session, error)
	// DeleteByToken removes the session if present and reports whether a
	// row was deleted. Deleting an absent token is not an error.
	DeleteByToken(ctx context.Context, token string) (bool, error)
}

// sqlxSessionRepository implements SessionRepository using sqlx.
type sqlxSessionRepository struct {
	db *sqlx.DB
}

// NewSQLXSessionRepository creates a new instance of sqlxSessionRepository.
func NewSQLXSessionRepository(db *sqlx.DB) SessionRepository {
	return &sqlxSessionRepository{db: db}
}

func toDomainSession(m *models.Session) *domain.Session {
	if m == nil {
		return nil
	}
	return &domain.Session{
		ID:           m.ID,
		UserID:       m.UserID,
		SessionToken: m.SessionToken,
		ExpiresAt:    m.ExpiresAt,
		CreatedAt:    m.CreatedAt,
	}
}

// Create inserts a new session row. One row per login; tokens are never reused.
func (r *sqlxSessionRepository) Create(ctx context.Context, session *domain.Session) error {
	exec := GetExecutor(ctx, r.db)
	m := models.Session{
		ID:           session.ID,
		UserID:       session.UserID,
		SessionToken: session.SessionToken,
		ExpiresAt:    session.ExpiresAt,
		CreatedAt:    session.CreatedAt,
	}
	query := `INSERT INTO sessions (id, user_id, session_token, expires_at, created_at)
	          VALUES (:id, :user_id, :session_token, :expires_at, :created_at)`
	if _, err := exec.NamedExecContext(ctx, query, m); err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}
	return nil
}

// GetByToken retrieves a session by its opaque token.
func (r *sqlxSessionRepository) GetByToken(ctx context.Context, token string) (*domain.Session, error) {
	exec := GetExecutor(ctx, r.db)
	var session models.Session
	query := `SELECT id, user_id, session_token, expires_at, created_at FROM sessions WHERE session_token = $1`

	err := exec.GetContext(ctx, &session, query, token)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get session by token: %w", err)
	}
	return toDomainSession(&session), nil
}

// DeleteByToken removes the session matching the token, if any.
func (r *sqlxSessionRepository) DeleteByToken(ctx context.Context, token string) (bool, error) {
	exec := GetExecutor(ctx, r.db)
	query := `DELETE FROM sessions WHERE session_token = $1`

	result, err := exec.ExecContext(ctx, query, token)
	if err != nil {
		return false, fmt.Errorf("failed to delete session: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return rowsAffected > 0, nil
}
