package dto

// CreatePracticeSessionRequest is the body of POST /practice/sessions.
type CreatePracticeSessionRequest struct {
	TaskType      string `json:"task_type"`
	Question      string `json:"question"`
	ReadingText   string `json:"reading_text,omitempty"`
	LectureScript string `json:"lecture_script,omitempty"`
}

// PracticeSessionResponse is returned after creating an attempt.
type PracticeSessionResponse struct {
	ID        string  `json:"id"`
	UserID    *string `json:"user_id"`
	TaskType  string  `json:"task_type"`
	Question  string  `json:"question"`
	CreatedAt string  `json:"created_at"`
}

// CompleteScoringRequest is the body of PUT /practice/sessions/:id/score.
type CompleteScoringRequest struct {
	UserTranscript        string `json:"user_transcript"`
	OverallScore          int    `json:"overall_score"`
	DeliveryScore         int    `json:"delivery_score"`
	LanguageUseScore      int    `json:"language_use_score"`
	TopicDevelopmentScore int    `json:"topic_development_score"`
	FeedbackJSON          string `json:"feedback_json,omitempty"`
}
