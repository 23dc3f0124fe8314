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

// PracticeSessionRepository defines persistence for speaking-task attempts.
type PracticeSessionRepository interface {
	// Create inserts an unscored attempt at problem-generation time.
	Create(ctx context.Context, session *domain.PracticeSession) (*domain.PracticeSession, error)
	// CompleteScoring applies the one-time scoring mutation and reports
	// whether a row was updated.
	CompleteScoring(ctx context.Context, sessionID string, result *domain.ScoringResult) (bool, error)
	// ListByUserAndTaskType returns one page of a user's attempts for a
	// task type, most recent first, together with the total match count.
	ListByUserAndTaskType(ctx context.Context, userID, taskType string, limit, offset int) ([]domain.PracticeSession, int, error)
	// GetByIDForUser returns (nil, nil) when the id is absent, owned by a
	// different user, or of a different task type.
	GetByIDForUser(ctx context.Context, sessionID, userID, taskType string) (*domain.PracticeSession, error)
}

// sqlxPracticeSessionRepository implements PracticeSessionRepository using sqlx.
type sqlxPracticeSessionRepository struct {
	db *sqlx.DB
}

// NewSQLXPracticeSessionRepository creates a new instance of sqlxPracticeSessionRepository.
func NewSQLXPracticeSessionRepository(db *sqlx.DB) PracticeSessionRepository {
	return &sqlxPracticeSessionRepository{db: db}
}

func toDomainPracticeSession(m *models.PracticeSession) *domain.PracticeSession {
	if m == nil {
		return nil
	}
	return &domain.PracticeSession{
		ID:                    m.ID,
		UserID:                util.NullStringToStringPtr(m.UserID),
		TaskType:              m.TaskType,
		Question:              m.Question,
		ReadingText:           m.ReadingText.String,
		LectureScript:         m.LectureScript.String,
		UserTranscript:        m.UserTranscript.String,
		OverallScore:          util.NullInt64ToIntPtr(m.OverallScore),
		DeliveryScore:         util.NullInt64ToIntPtr(m.DeliveryScore),
		LanguageUseScore:      util.NullInt64ToIntPtr(m.LanguageUseScore),
		TopicDevelopmentScore: util.NullInt64ToIntPtr(m.TopicDevelopmentScore),
		FeedbackJSON:          m.FeedbackJSON.String,
		CreatedAt:             m.CreatedAt,
	}
}

// Create inserts a new attempt with all scoring columns NULL.
func (r *sqlxPracticeSessionRepository) Create(ctx context.Context, session *domain.PracticeSession) (*domain.PracticeSession, error) {
	exec := GetExecutor(ctx, r.db)
	m := models.PracticeSession{
		ID:            util.NewULID(),
		UserID:        util.StringPtrToNullString(session.UserID),
		TaskType:      session.TaskType,
		Question:      session.Question,
		ReadingText:   util.StringToNullString(session.ReadingText),
		LectureScript: util.StringToNullString(session.LectureScript),
		CreatedAt:     time.Now(),
	}
	query := `INSERT INTO practice_sessions (id, user_id, task_type, question, reading_text, lecture_script, created_at)
	          VALUES (:id, :user_id, :task_type, :question, :reading_text, :lecture_script, :created_at)`
	if _, err := exec.NamedExecContext(ctx, query, m); err != nil {
		return nil, fmt.Errorf("failed to create practice session: %w", err)
	}
	return toDomainPracticeSession(&m), nil
}

// CompleteScoring fills in transcript, scores and feedback. Rows that were
// already scored are left untouched: the mutation happens exactly once.
func (r *sqlxPracticeSessionRepository) CompleteScoring(ctx context.Context, sessionID string, result *domain.ScoringResult) (bool, error) {
	exec := GetExecutor(ctx, r.db)
	query := `UPDATE practice_sessions
	          SET user_transcript = $1,
	              overall_score = $2,
	              delivery_score = $3,
	              language_use_score = $4,
	              topic_development_score = $5,
	              feedback_json = $6
	          WHERE id = $7 AND overall_score IS NULL`

	res, err := exec.ExecContext(ctx, query,
		result.UserTranscript,
		result.OverallScore,
		result.DeliveryScore,
		result.LanguageUseScore,
		result.TopicDevelopmentScore,
		util.StringToNullString(result.FeedbackJSON),
		sessionID,
	)
	if err != nil {
		return false, fmt.Errorf("failed to complete scoring: %w", err)
	}
	rowsAffected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return rowsAffected > 0, nil
}

// ListByUserAndTaskType returns a page of attempts plus the total count.
// The id tie-break keeps the order stable when created_at collides.
func (r *sqlxPracticeSessionRepository) ListByUserAndTaskType(ctx context.Context, userID, taskType string, limit, offset int) ([]domain.PracticeSession, int, error) {
	exec := GetExecutor(ctx, r.db)

	var total int
	countQuery := `SELECT COUNT(*) FROM practice_sessions WHERE user_id = $1 AND task_type = $2`
	if err := exec.GetContext(ctx, &total, countQuery, userID, taskType); err != nil {
		return nil, 0, fmt.Errorf("failed to count practice sessions: %w", err)
	}

	var rows []models.PracticeSession
	pageQuery := `SELECT id, user_id, task_type, question, reading_text, lecture_script,
	                     user_transcript, overall_score, delivery_score, language_use_score,
	                     topic_development_score, feedback_json, created_at
	              FROM practice_sessions
	              WHERE user_id = $1 AND task_type = $2
	              ORDER BY created_at DESC, id DESC
	              LIMIT $3 OFFSET $4`
	if err := exec.SelectContext(ctx, &rows, pageQuery, userID, taskType, limit, offset); err != nil {
		return nil, 0, fmt.Errorf("failed to list practice sessions: %w", err)
	}

	sessions := make([]domain.PracticeSession, len(rows))
	for i := range rows {
		sessions[i] = *toDomainPracticeSession(&rows[i])
	}
	return sessions, total, nil
}

// GetByIDForUser retrieves one attempt scoped to owner and task type.
// An ownership mismatch is indistinguishable from absence.
func (r *sqlxPracticeSessionRepository) GetByIDForUser(ctx context.Context, sessionID, userID, taskType string) (*domain.PracticeSession, error) {
	exec := GetExecutor(ctx, r.db)
	var m models.PracticeSession
	query := `SELECT id, user_id, task_type, question, reading_text, lecture_script,
	                 user_transcript, overall_score, delivery_score, language_use_score,
	                 topic_development_score, feedback_json, created_at
	          FROM practice_sessions
	          WHERE id = $1 AND user_id = $2 AND task_type = $3`

	err := exec.GetContext(ctx, &m, query, sessionID, userID, taskType)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get practice session by id: %w", err)
	}
	return toDomainPracticeSession(&m), nil
}
