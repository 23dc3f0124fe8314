package validation

import (
	"regexp"
	"strings"

	"speakprep/internal/domain"
)

const (
	// ArchiveLimitMin and ArchiveLimitMax bound the archive page size.
	// Out-of-range values are rejected, not clamped.
	ArchiveLimitMin = 1
	ArchiveLimitMax = 100
)

// Validator provides request validation functionality
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateSimpleLoginRequest validates the simple login request body.
func (v *Validator) ValidateSimpleLoginRequest(userIdentifier string) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(userIdentifier) == "" {
		errors = append(errors, domain.NewMissingFieldError("user_id"))
	} else if len(userIdentifier) > 255 {
		errors = append(errors, domain.NewOutOfRangeError("user_id", len(userIdentifier), 1, 255))
	}

	return errors
}

// ValidateSavePhraseRequest validates the save phrase request body.
func (v *Validator) ValidateSavePhraseRequest(phrase, category string) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(phrase) == "" {
		errors = append(errors, domain.NewMissingFieldError("phrase"))
	} else if len(phrase) > 2000 {
		errors = append(errors, domain.NewOutOfRangeError("phrase", len(phrase), 1, 2000))
	}

	if category != "" && !isValidCategory(category) {
		errors = append(errors, domain.NewInvalidFormatError("category", category))
	}

	return errors
}

// ValidateArchiveListParams validates pagination parameters for archive queries.
func (v *Validator) ValidateArchiveListParams(limit, offset int) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if limit < ArchiveLimitMin || limit > ArchiveLimitMax {
		errors = append(errors, domain.NewOutOfRangeError("limit", limit, ArchiveLimitMin, ArchiveLimitMax))
	}
	if offset < 0 {
		errors = append(errors, domain.ValidationError{Field: "offset", Message: "must not be negative"})
	}

	return errors
}

// ValidateEntityID validates an entity id path or query parameter.
func (v *Validator) ValidateEntityID(field, id string) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(id) == "" {
		errors = append(errors, domain.NewMissingFieldError(field))
	} else if !IsValidULID(id) {
		errors = append(errors, domain.NewInvalidFormatError(field, id))
	}

	return errors
}

// ValidateCreatePracticeSessionRequest validates the practice session creation body.
func (v *Validator) ValidateCreatePracticeSessionRequest(taskType, question string) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(taskType) == "" {
		errors = append(errors, domain.NewMissingFieldError("task_type"))
	} else if !domain.IsValidTaskType(taskType) {
		errors = append(errors, domain.NewInvalidFormatError("task_type", taskType))
	}

	if strings.TrimSpace(question) == "" {
		errors = append(errors, domain.NewMissingFieldError("question"))
	}

	return errors
}

// IsValidULID checks if the string is a valid ULID format
func IsValidULID(s string) bool {
	// ULID is 26 characters long, base32 encoded
	if len(s) != 26 {
		return false
	}
	// Check if all characters are valid base32 (Crockford's Base32)
	validULID := regexp.MustCompile(`^[0-9A-HJKMNP-TV-Z]{26}$`)
	return validULID.MatchString(s)
}

// isValidCategory checks if the category tag format is valid
func isValidCategory(s string) bool {
	// Allow alphanumeric, hyphens, and underscores, 1-50 characters
	if len(s) == 0 || len(s) > 50 {
		return false
	}
	validCategory := regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)
	return validCategory.MatchString(s)
}
