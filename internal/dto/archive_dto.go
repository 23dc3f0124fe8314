package dto

// ArchiveQuestionResponse represents one archived speaking-task attempt.
// Transcript and score fields are omitted until scoring completes.
type ArchiveQuestionResponse struct {
	ID                    string `json:"id"`
	TaskType              string `json:"task_type"`
	Question              string `json:"question"`
	ReadingText           string `json:"reading_text,omitempty"`
	LectureScript         string `json:"lecture_script,omitempty"`
	UserTranscript        string `json:"user_transcript,omitempty"`
	OverallScore          *int   `json:"overall_score"`
	DeliveryScore         *int   `json:"delivery_score,omitempty"`
	LanguageUseScore      *int   `json:"language_use_score,omitempty"`
	TopicDevelopmentScore *int   `json:"topic_development_score,omitempty"`
	FeedbackJSON          string `json:"feedback_json,omitempty"`
	CreatedAt             string `json:"created_at"`
}

// ArchiveListResponse is one page of archived questions plus the total
// match count, independent of the pagination window.
type ArchiveListResponse struct {
	Questions []ArchiveQuestionResponse `json:"questions"`
	Total     int                       `json:"total"`
}
