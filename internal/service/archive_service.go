package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"speakprep/internal/cache"
	"speakprep/internal/domain"
	"speakprep/internal/dto"
	"speakprep/internal/logger"
	"speakprep/internal/repository"
	"speakprep/internal/validation"

	"go.uber.org/zap"
)

// ArchiveService provides paginated, filtered read access to a user's
// past speaking-task attempts.
type ArchiveService interface {
	// ListQuestions returns one page of attempts for the user and task
	// type plus the total match count.
	ListQuestions(ctx context.Context, userIdentifier, taskType string, limit, offset int) (*dto.ArchiveListResponse, error)
	// GetQuestion returns one attempt, scoped to user and task type.
	GetQuestion(ctx context.Context, userIdentifier, taskType, questionID string) (*dto.ArchiveQuestionResponse, error)
}

type archiveServiceImpl struct {
	userRepo     repository.UserRepository
	practiceRepo repository.PracticeSessionRepository
	cache        domain.Cache
	validator    *validation.Validator
	detailTTL    time.Duration
}

// NewArchiveService creates a new instance of ArchiveService.
func NewArchiveService(
	userRepo repository.UserRepository,
	practiceRepo repository.PracticeSessionRepository,
	cacheAdapter domain.Cache,
	detailTTL time.Duration,
) ArchiveService {
	return &archiveServiceImpl{
		userRepo:     userRepo,
		practiceRepo: practiceRepo,
		cache:        cacheAdapter,
		validator:    validation.NewValidator(),
		detailTTL:    detailTTL,
	}
}

// QuestionDetailCacheKey is the cache key for one archived question.
// Keyed by id alone so scoring completion can invalidate without knowing
// the owner; the cached envelope carries the owner for verification.
func QuestionDetailCacheKey(questionID string) string {
	return cache.GenerateCacheKey("archive", "question", questionID)
}

// cachedQuestionDetail wraps the response with the scope it was cached
// under, so a hit is only served back to the same user and task type.
type cachedQuestionDetail struct {
	UserID   string                      `json:"user_id"`
	TaskType string                      `json:"task_type"`
	Question dto.ArchiveQuestionResponse `json:"question"`
}

func toArchiveQuestionResponse(p *domain.PracticeSession) dto.ArchiveQuestionResponse {
	return dto.ArchiveQuestionResponse{
		ID:                    p.ID,
		TaskType:              p.TaskType,
		Question:              p.Question,
		ReadingText:           p.ReadingText,
		LectureScript:         p.LectureScript,
		UserTranscript:        p.UserTranscript,
		OverallScore:          p.OverallScore,
		DeliveryScore:         p.DeliveryScore,
		LanguageUseScore:      p.LanguageUseScore,
		TopicDevelopmentScore: p.TopicDevelopmentScore,
		FeedbackJSON:          p.FeedbackJSON,
		CreatedAt:             p.CreatedAt.Format(time.RFC3339),
	}
}

// resolveUser maps the external identifier to a user or a not-found error.
func (s *archiveServiceImpl) resolveUser(ctx context.Context, userIdentifier string) (*domain.User, error) {
	user, err := s.userRepo.GetByIdentifier(ctx, userIdentifier)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve user from repository: %w", err)
	}
	if user == nil {
		return nil, domain.NewUserNotFoundError(userIdentifier)
	}
	return user, nil
}

// ListQuestions validates the pagination window, resolves the user and
// returns the requested page. Out-of-range limit/offset are rejected,
// not clamped; the total is independent of the window.
func (s *archiveServiceImpl) ListQuestions(ctx context.Context, userIdentifier, taskType string, limit, offset int) (*dto.ArchiveListResponse, error) {
	if errs := s.validator.ValidateArchiveListParams(limit, offset); len(errs) > 0 {
		return nil, errs
	}

	user, err := s.resolveUser(ctx, userIdentifier)
	if err != nil {
		return nil, err
	}

	sessions, total, err := s.practiceRepo.ListByUserAndTaskType(ctx, user.ID, taskType, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list practice sessions from repository: %w", err)
	}

	questions := make([]dto.ArchiveQuestionResponse, len(sessions))
	for i := range sessions {
		questions[i] = toArchiveQuestionResponse(&sessions[i])
	}

	logger.Get().Info("Archive questions retrieved",
		zap.String("userIdentifier", userIdentifier),
		zap.String("taskType", taskType),
		zap.Int("count", len(questions)),
		zap.Int("total", total),
	)

	return &dto.ArchiveListResponse{Questions: questions, Total: total}, nil
}

// GetQuestion validates the id format before touching the store, then
// resolves the user and looks up the attempt. An attempt owned by a
// different user is reported as not found.
func (s *archiveServiceImpl) GetQuestion(ctx context.Context, userIdentifier, taskType, questionID string) (*dto.ArchiveQuestionResponse, error) {
	if errs := s.validator.ValidateEntityID("question_id", questionID); len(errs) > 0 {
		return nil, errs
	}

	user, err := s.resolveUser(ctx, userIdentifier)
	if err != nil {
		return nil, err
	}

	if cached := s.getCachedDetail(ctx, questionID, user.ID, taskType); cached != nil {
		return cached, nil
	}

	session, err := s.practiceRepo.GetByIDForUser(ctx, questionID, user.ID, taskType)
	if err != nil {
		return nil, fmt.Errorf("failed to get practice session from repository: %w", err)
	}
	if session == nil {
		return nil, domain.NewQuestionNotFoundError(questionID)
	}

	resp := toArchiveQuestionResponse(session)
	if session.IsScored() {
		// Scored attempts never change again, which makes them safe to cache.
		s.setCachedDetail(ctx, questionID, user.ID, taskType, resp)
	}
	return &resp, nil
}

func (s *archiveServiceImpl) getCachedDetail(ctx context.Context, questionID, userID, taskType string) *dto.ArchiveQuestionResponse {
	if s.cache == nil {
		return nil
	}
	raw, err := s.cache.Get(ctx, QuestionDetailCacheKey(questionID))
	if err != nil {
		if !errors.Is(err, domain.ErrCacheMiss) {
			logger.Get().Debug("Archive detail cache read failed", zap.Error(err))
		}
		return nil
	}
	var envelope cachedQuestionDetail
	if err := json.Unmarshal([]byte(raw), &envelope); err != nil {
		logger.Get().Debug("Archive detail cache entry malformed", zap.Error(err))
		return nil
	}
	if envelope.UserID != userID || envelope.TaskType != taskType {
		// Cached under a different scope; treat as a miss rather than
		// leaking another user's attempt.
		return nil
	}
	return &envelope.Question
}

func (s *archiveServiceImpl) setCachedDetail(ctx context.Context, questionID, userID, taskType string, resp dto.ArchiveQuestionResponse) {
	if s.cache == nil {
		return
	}
	envelope := cachedQuestionDetail{UserID: userID, TaskType: taskType, Question: resp}
	raw, err := json.Marshal(envelope)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, QuestionDetailCacheKey(questionID), string(raw), s.detailTTL); err != nil {
		logger.Get().Debug("Archive detail cache write failed", zap.Error(err))
	}
}
