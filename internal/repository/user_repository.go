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

// UserRepository defines the interface for user data operations.
type UserRepository interface {
	// CreateOrGetByIdentifier resolves an external identifier to a user,
	// creating the user on first sight. Concurrent first logins are safe:
	// the unique constraint on user_identifier is the authoritative guard.
	CreateOrGetByIdentifier(ctx context.Context, identifier string) (*domain.User, error)
	// GetByIdentifier returns (nil, nil) when no user matches.
	GetByIdentifier(ctx context.Context, identifier string) (*domain.User, error)
	// GetByID returns (nil, nil) when no user matches.
	GetByID(ctx context.Context, userID string) (*domain.User, error)
}

// sqlxUserRepository implements UserRepository using sqlx.
type sqlxUserRepository struct {
	db *sqlx.DB
}

// NewSQLXUserRepository creates a new instance of sqlxUserRepository.
func NewSQLXUserRepository(db *sqlx.DB) UserRepository {
	return &sqlxUserRepository{db: db}
}

func toDomainUser(m *models.User) *domain.User {
	if m == nil {
		return nil
	}
	return &domain.User{
		ID:             m.ID,
		UserIdentifier: m.UserIdentifier,
		CreatedAt:      m.CreatedAt,
	}
}

// CreateOrGetByIdentifier inserts the user if absent and returns the row
// that won, whether ours or a concurrent writer's.
func (r *sqlxUserRepository) CreateOrGetByIdentifier(ctx context.Context, identifier string) (*domain.User, error) {
	existing, err := r.GetByIdentifier(ctx, identifier)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	exec := GetExecutor(ctx, r.db)
	newUser := models.User{
		ID:             util.NewULID(),
		UserIdentifier: identifier,
		CreatedAt:      time.Now(),
	}
	query := `INSERT INTO users (id, user_identifier, created_at)
	          VALUES (:id, :user_identifier, :created_at)
	          ON CONFLICT (user_identifier) DO NOTHING`
	if _, err := exec.NamedExecContext(ctx, query, newUser); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	// Re-select rather than trusting our insert: a concurrent first login
	// may have won the conflict, and its row is the canonical one.
	created, err := r.GetByIdentifier(ctx, identifier)
	if err != nil {
		return nil, err
	}
	if created == nil {
		return nil, fmt.Errorf("user %q missing after upsert", identifier)
	}
	return created, nil
}

// GetByIdentifier retrieves a user by the opaque external identifier.
func (r *sqlxUserRepository) GetByIdentifier(ctx context.Context, identifier string) (*domain.User, error) {
	exec := GetExecutor(ctx, r.db)
	var user models.User
	query := `SELECT id, user_identifier, created_at FROM users WHERE user_identifier = $1`

	err := exec.GetContext(ctx, &user, query, identifier)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil // Not found; services decide how to surface this
		}
		return nil, fmt.Errorf("failed to get user by identifier: %w", err)
	}
	return toDomainUser(&user), nil
}

// GetByID retrieves a user by their internal ID.
func (r *sqlxUserRepository) GetByID(ctx context.Context, userID string) (*domain.User, error) {
	exec := GetExecutor(ctx, r.db)
	var user models.User
	query := `SELECT id, user_identifier, created_at FROM users WHERE id = $1`

	err := exec.GetContext(ctx, &user, query, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by id: %w", err)
	}
	return toDomainUser(&user), nil
}
