package models

import (
	"database/sql"
	"time"
)

// PracticeSession represents a row in the practice_sessions table.
// Score and transcript columns stay NULL until scoring completes;
// user_id is NULL for anonymous attempts.
type PracticeSession struct {
	ID                    string         `db:"id"`                      // ULID
	UserID                sql.NullString `db:"user_id"`                 // Foreign key to users table, NULL for anonymous attempts
	TaskType              string         `db:"task_type"`               // Speaking task format, immutable after creation
	Question              string         `db:"question"`                // Generated question text
	ReadingText           sql.NullString `db:"reading_text"`            // Optional reading passage
	LectureScript         sql.NullString `db:"lecture_script"`          // Optional lecture script
	UserTranscript        sql.NullString `db:"user_transcript"`         // Transcript of the spoken response
	OverallScore          sql.NullInt64  `db:"overall_score"`           // 0-4
	DeliveryScore         sql.NullInt64  `db:"delivery_score"`          // 0-4
	LanguageUseScore      sql.NullInt64  `db:"language_use_score"`      // 0-4
	TopicDevelopmentScore sql.NullInt64  `db:"topic_development_score"` // 0-4
	FeedbackJSON          sql.NullString `db:"feedback_json"`           // Structured feedback (JSONB)
	CreatedAt             time.Time      `db:"created_at"`              // Timestamp of problem generation
}
