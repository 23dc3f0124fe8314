package service

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"time"

	"speakprep/internal/domain"
	"speakprep/internal/dto"
	"speakprep/internal/logger"
	"speakprep/internal/repository"
	"speakprep/internal/util"

	"go.uber.org/zap"
)

const sessionTokenBytes = 32

// AuthService manages the session lifecycle: opaque token issuance,
// resolution and expiry-driven deletion.
type AuthService interface {
	// Login resolves or creates the user behind the identifier and issues
	// a fresh session token. Every call produces a new session row.
	Login(ctx context.Context, identifier string) (*dto.SimpleLoginResponse, error)
	// ResolveToken returns the user owning the token, or (nil, nil) when
	// the token is absent, unknown or expired. Expired rows are deleted
	// as a side effect of the lookup.
	ResolveToken(ctx context.Context, token string) (*domain.User, error)
	// Logout deletes the session matching the token. An unknown token is
	// a no-op, not an error.
	Logout(ctx context.Context, token string) error
}

type authServiceImpl struct {
	userRepo    repository.UserRepository
	sessionRepo repository.SessionRepository
	txManager   domain.TransactionManager
	sessionTTL  time.Duration
}

// NewAuthService creates a new instance of AuthService.
func NewAuthService(
	userRepo repository.UserRepository,
	sessionRepo repository.SessionRepository,
	txManager domain.TransactionManager,
	sessionTTL time.Duration,
) AuthService {
	return &authServiceImpl{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		txManager:   txManager,
		sessionTTL:  sessionTTL,
	}
}

// generateSessionToken returns an unguessable URL-safe token.
// Randomness source failure is not expected in normal operation and is
// surfaced as an unrecoverable error.
func generateSessionToken() (string, error) {
	b := make([]byte, sessionTokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to read random bytes for session token: %w", err)
	}
	return base64.URLEncoding.EncodeToString(b), nil
}

// Login issues a token for the identifier, creating the user on first
// login. User and session creation share one transaction so no partial
// state survives a failed login.
func (s *authServiceImpl) Login(ctx context.Context, identifier string) (*dto.SimpleLoginResponse, error) {
	token, err := generateSessionToken()
	if err != nil {
		return nil, domain.NewInternalError("Failed to generate session token", err)
	}

	var resp *dto.SimpleLoginResponse
	err = s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		user, err := s.userRepo.CreateOrGetByIdentifier(txCtx, identifier)
		if err != nil {
			return err
		}

		session := &domain.Session{
			ID:           util.NewULID(),
			UserID:       user.ID,
			SessionToken: token,
			ExpiresAt:    time.Now().Add(s.sessionTTL),
			CreatedAt:    time.Now(),
		}
		if err := s.sessionRepo.Create(txCtx, session); err != nil {
			return err
		}

		resp = &dto.SimpleLoginResponse{
			SessionToken: token,
			UserID:       user.ID,
		}
		return nil
	})
	if err != nil {
		return nil, domain.NewInternalError("Login failed", err)
	}

	logger.Get().Info("Session issued", zap.String("userID", resp.UserID))
	return resp, nil
}

// ResolveToken maps a token to its user. Expired sessions are purged on
// first touch; there is no background sweep.
func (s *authServiceImpl) ResolveToken(ctx context.Context, token string) (*domain.User, error) {
	if token == "" {
		return nil, nil
	}

	session, err := s.sessionRepo.GetByToken(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("failed to look up session: %w", err)
	}
	if session == nil {
		return nil, nil
	}

	if session.IsExpired(time.Now()) {
		// Lazy cleanup: the stale row is removed as a side effect of the
		// resolution attempt.
		if _, err := s.sessionRepo.DeleteByToken(ctx, token); err != nil {
			logger.Get().Warn("Failed to delete expired session", zap.Error(err))
		}
		return nil, nil
	}

	user, err := s.userRepo.GetByID(ctx, session.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load session user: %w", err)
	}
	return user, nil
}

// Logout removes the session row if present.
func (s *authServiceImpl) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	deleted, err := s.sessionRepo.DeleteByToken(ctx, token)
	if err != nil {
		return domain.NewInternalError("Logout failed", err)
	}
	if deleted {
		logger.Get().Info("Session deleted on logout")
	}
	return nil
}
