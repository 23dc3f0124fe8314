package domain

import (
	"time"
)

// Task types distinguishing the different speaking-task formats.
const (
	TaskTypeTask1 = "task1"
	TaskTypeTask2 = "task2"
	TaskTypeTask3 = "task3"
	TaskTypeTask4 = "task4"
)

// ScoreMin and ScoreMax bound the 0-4 rubric used for every score dimension.
const (
	ScoreMin = 0
	ScoreMax = 4
)

// PracticeSession is one attempt at a speaking task. It is created with
// the generated question before the user responds; scores, transcript and
// feedback are filled in exactly once when scoring completes. UserID is
// nil for anonymous attempts.
type PracticeSession struct {
	ID            string
	UserID        *string
	TaskType      string
	Question      string
	ReadingText   string
	LectureScript string
	CreatedAt     time.Time

	// Populated once scoring completes.
	UserTranscript        string
	OverallScore          *int
	DeliveryScore         *int
	LanguageUseScore      *int
	TopicDevelopmentScore *int
	FeedbackJSON          string
}

// NewPracticeSession creates an unscored practice session.
func NewPracticeSession(userID *string, taskType, question string) *PracticeSession {
	return &PracticeSession{
		UserID:    userID,
		TaskType:  taskType,
		Question:  question,
		CreatedAt: time.Now(),
	}
}

// IsScored reports whether scoring has completed for this attempt.
func (p *PracticeSession) IsScored() bool {
	return p.OverallScore != nil
}

// Validate validates the practice session
func (p *PracticeSession) Validate() error {
	var errs ValidationErrors
	if p.TaskType == "" {
		errs = append(errs, NewMissingFieldError("task_type"))
	} else if !IsValidTaskType(p.TaskType) {
		errs = append(errs, NewInvalidFormatError("task_type", p.TaskType))
	}
	if p.Question == "" {
		errs = append(errs, NewMissingFieldError("question"))
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// IsValidTaskType reports whether the given string names a known task format.
func IsValidTaskType(taskType string) bool {
	switch taskType {
	case TaskTypeTask1, TaskTypeTask2, TaskTypeTask3, TaskTypeTask4:
		return true
	}
	return false
}

// ScoringResult carries the one-time mutation applied when scoring
// completes: transcript, the four rubric dimensions and structured feedback.
type ScoringResult struct {
	UserTranscript        string
	OverallScore          int
	DeliveryScore         int
	LanguageUseScore      int
	TopicDevelopmentScore int
	FeedbackJSON          string
}

// Validate checks every score dimension against the rubric bounds.
func (r *ScoringResult) Validate() error {
	var errs ValidationErrors
	check := func(field string, v int) {
		if v < ScoreMin || v > ScoreMax {
			errs = append(errs, NewOutOfRangeError(field, v, ScoreMin, ScoreMax))
		}
	}
	check("overall_score", r.OverallScore)
	check("delivery_score", r.DeliveryScore)
	check("language_use_score", r.LanguageUseScore)
	check("topic_development_score", r.TopicDevelopmentScore)
	if len(errs) > 0 {
		return errs
	}
	return nil
}
