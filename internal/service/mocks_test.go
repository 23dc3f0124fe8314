package service

import (
	"context"
	"time"

	"speakprep/internal/domain"

	"github.com/stretchr/testify/mock"
)

// --- MockUserRepository ---
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) CreateOrGetByIdentifier(ctx context.Context, identifier string) (*domain.User, error) {
	args := m.Called(ctx, identifier)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetByIdentifier(ctx context.Context, identifier string) (*domain.User, error) {
	args := m.Called(ctx, identifier)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// --- MockSessionRepository ---
type MockSessionRepository struct {
	mock.Mock
}

func (m *MockSessionRepository) Create(ctx context.Context, session *domain.Session) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *MockSessionRepository) GetByToken(ctx context.Context, token string) (*domain.Session, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Session), args.Error(1)
}

func (m *MockSessionRepository) DeleteByToken(ctx context.Context, token string) (bool, error) {
	args := m.Called(ctx, token)
	return args.Bool(0), args.Error(1)
}

// --- MockPhraseRepository ---
type MockPhraseRepository struct {
	mock.Mock
}

func (m *MockPhraseRepository) Save(ctx context.Context, phrase *domain.SavedPhrase) (*domain.SavedPhrase, error) {
	args := m.Called(ctx, phrase)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SavedPhrase), args.Error(1)
}

func (m *MockPhraseRepository) GetByID(ctx context.Context, userID, phraseID string) (*domain.SavedPhrase, error) {
	args := m.Called(ctx, userID, phraseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SavedPhrase), args.Error(1)
}

func (m *MockPhraseRepository) ListByUser(ctx context.Context, userID string) ([]domain.SavedPhrase, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SavedPhrase), args.Error(1)
}

func (m *MockPhraseRepository) Delete(ctx context.Context, userID, phraseID string) (bool, error) {
	args := m.Called(ctx, userID, phraseID)
	return args.Bool(0), args.Error(1)
}

func (m *MockPhraseRepository) SetMastered(ctx context.Context, userID, phraseID string, isMastered bool) (*domain.SavedPhrase, error) {
	args := m.Called(ctx, userID, phraseID, isMastered)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SavedPhrase), args.Error(1)
}

// --- MockPracticeSessionRepository ---
type MockPracticeSessionRepository struct {
	mock.Mock
}

func (m *MockPracticeSessionRepository) Create(ctx context.Context, session *domain.PracticeSession) (*domain.PracticeSession, error) {
	args := m.Called(ctx, session)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PracticeSession), args.Error(1)
}

func (m *MockPracticeSessionRepository) CompleteScoring(ctx context.Context, sessionID string, result *domain.ScoringResult) (bool, error) {
	args := m.Called(ctx, sessionID, result)
	return args.Bool(0), args.Error(1)
}

func (m *MockPracticeSessionRepository) ListByUserAndTaskType(ctx context.Context, userID, taskType string, limit, offset int) ([]domain.PracticeSession, int, error) {
	args := m.Called(ctx, userID, taskType, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.PracticeSession), args.Int(1), args.Error(2)
}

func (m *MockPracticeSessionRepository) GetByIDForUser(ctx context.Context, sessionID, userID, taskType string) (*domain.PracticeSession, error) {
	args := m.Called(ctx, sessionID, userID, taskType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PracticeSession), args.Error(1)
}

// --- MockCache ---
type MockCache struct {
	mock.Mock
}

func (m *MockCache) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockCache) Set(ctx context.Context, key string, value string, expiration time.Duration) error {
	args := m.Called(ctx, key, value, expiration)
	return args.Error(0)
}

func (m *MockCache) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockCache) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// fakeTxManager runs the function directly, without a real transaction.
type fakeTxManager struct{}

func (f *fakeTxManager) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
