package service

import (
	"context"
	"fmt"
	"time"

	"speakprep/internal/domain"
	"speakprep/internal/dto"
	"speakprep/internal/logger"
	"speakprep/internal/repository"

	"go.uber.org/zap"
)

// PracticeService records speaking-task attempts and applies the one-time
// scoring mutation once an external scorer has produced a result.
type PracticeService interface {
	// RecordSession creates an unscored attempt. userID is nil for
	// anonymous practice.
	RecordSession(ctx context.Context, userID *string, req *dto.CreatePracticeSessionRequest) (*dto.PracticeSessionResponse, error)
	// CompleteScoring fills in transcript, scores and feedback for the
	// attempt. A second completion attempt reports not found.
	CompleteScoring(ctx context.Context, sessionID string, req *dto.CompleteScoringRequest) error
}

type practiceServiceImpl struct {
	practiceRepo repository.PracticeSessionRepository
	cache        domain.Cache
}

// NewPracticeService creates a new instance of PracticeService.
func NewPracticeService(practiceRepo repository.PracticeSessionRepository, cacheAdapter domain.Cache) PracticeService {
	return &practiceServiceImpl{
		practiceRepo: practiceRepo,
		cache:        cacheAdapter,
	}
}

// RecordSession persists a new attempt at problem-generation time.
func (s *practiceServiceImpl) RecordSession(ctx context.Context, userID *string, req *dto.CreatePracticeSessionRequest) (*dto.PracticeSessionResponse, error) {
	session := domain.NewPracticeSession(userID, req.TaskType, req.Question)
	session.ReadingText = req.ReadingText
	session.LectureScript = req.LectureScript
	if err := session.Validate(); err != nil {
		return nil, err
	}

	created, err := s.practiceRepo.Create(ctx, session)
	if err != nil {
		return nil, fmt.Errorf("failed to create practice session in repository: %w", err)
	}

	logger.Get().Info("Practice session recorded",
		zap.String("sessionID", created.ID),
		zap.String("taskType", created.TaskType),
		zap.Bool("anonymous", created.UserID == nil),
	)

	return &dto.PracticeSessionResponse{
		ID:        created.ID,
		UserID:    created.UserID,
		TaskType:  created.TaskType,
		Question:  created.Question,
		CreatedAt: created.CreatedAt.Format(time.RFC3339),
	}, nil
}

// CompleteScoring applies the scoring result and drops any cached archive
// detail for the attempt.
func (s *practiceServiceImpl) CompleteScoring(ctx context.Context, sessionID string, req *dto.CompleteScoringRequest) error {
	result := &domain.ScoringResult{
		UserTranscript:        req.UserTranscript,
		OverallScore:          req.OverallScore,
		DeliveryScore:         req.DeliveryScore,
		LanguageUseScore:      req.LanguageUseScore,
		TopicDevelopmentScore: req.TopicDevelopmentScore,
		FeedbackJSON:          req.FeedbackJSON,
	}
	if err := result.Validate(); err != nil {
		return err
	}

	updated, err := s.practiceRepo.CompleteScoring(ctx, sessionID, result)
	if err != nil {
		return fmt.Errorf("failed to complete scoring in repository: %w", err)
	}
	if !updated {
		return domain.NewQuestionNotFoundError(sessionID)
	}

	if s.cache != nil {
		if err := s.cache.Delete(ctx, QuestionDetailCacheKey(sessionID)); err != nil {
			logger.Get().Debug("Archive detail cache invalidation failed", zap.Error(err))
		}
	}

	logger.Get().Info("Practice session scored", zap.String("sessionID", sessionID))
	return nil
}
