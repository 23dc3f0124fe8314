package validation

import (
	"strings"
	"testing"

	"speakprep/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestValidateSimpleLoginRequest(t *testing.T) {
	v := NewValidator()

	assert.Empty(t, v.ValidateSimpleLoginRequest("device-abc"))
	assert.Empty(t, v.ValidateSimpleLoginRequest(strings.Repeat("a", 255)))

	errs := v.ValidateSimpleLoginRequest("")
	assert.Len(t, errs, 1)
	assert.Equal(t, "user_id", errs[0].Field)

	errs = v.ValidateSimpleLoginRequest("   ")
	assert.Len(t, errs, 1, "whitespace-only identifier counts as missing")

	errs = v.ValidateSimpleLoginRequest(strings.Repeat("a", 256))
	assert.Len(t, errs, 1)
}

func TestValidateSavePhraseRequest(t *testing.T) {
	v := NewValidator()

	assert.Empty(t, v.ValidateSavePhraseRequest("on the contrary", "transition"))
	assert.Empty(t, v.ValidateSavePhraseRequest("short", ""), "category is optional")

	errs := v.ValidateSavePhraseRequest("", "")
	assert.Len(t, errs, 1)
	assert.Equal(t, "phrase", errs[0].Field)

	errs = v.ValidateSavePhraseRequest(strings.Repeat("x", 2001), "")
	assert.Len(t, errs, 1)

	errs = v.ValidateSavePhraseRequest("fine", "has spaces")
	assert.Len(t, errs, 1)
	assert.Equal(t, "category", errs[0].Field)

	errs = v.ValidateSavePhraseRequest("", "%%%")
	assert.Len(t, errs, 2, "independent problems are reported together")
}

func TestValidateArchiveListParams(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name    string
		limit   int
		offset  int
		wantErr bool
	}{
		{"min limit", 1, 0, false},
		{"max limit", 100, 0, false},
		{"large offset ok", 50, 100000, false},
		{"limit zero rejected", 0, 0, true},
		{"limit above max rejected not clamped", 101, 0, true},
		{"negative limit", -5, 0, true},
		{"negative offset", 10, -1, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := v.ValidateArchiveListParams(tt.limit, tt.offset)
			if tt.wantErr {
				assert.NotEmpty(t, errs)
			} else {
				assert.Empty(t, errs)
			}
		})
	}
}

func TestValidateEntityID(t *testing.T) {
	v := NewValidator()

	assert.Empty(t, v.ValidateEntityID("question_id", "01ARZ3NDEKTSV4RRFFQ69G5FAV"))

	errs := v.ValidateEntityID("question_id", "")
	assert.Len(t, errs, 1)

	errs = v.ValidateEntityID("question_id", "not-a-ulid")
	assert.Len(t, errs, 1)
	assert.Equal(t, "question_id", errs[0].Field)
}

func TestValidateCreatePracticeSessionRequest(t *testing.T) {
	v := NewValidator()

	assert.Empty(t, v.ValidateCreatePracticeSessionRequest(domain.TaskTypeTask1, "Describe your hometown."))

	errs := v.ValidateCreatePracticeSessionRequest("", "q")
	assert.Len(t, errs, 1)

	errs = v.ValidateCreatePracticeSessionRequest("task5", "q")
	assert.Len(t, errs, 1)
	assert.Equal(t, "task_type", errs[0].Field)

	errs = v.ValidateCreatePracticeSessionRequest("", "")
	assert.Len(t, errs, 2)
}

func TestIsValidULID(t *testing.T) {
	assert.True(t, IsValidULID("01ARZ3NDEKTSV4RRFFQ69G5FAV"))
	assert.False(t, IsValidULID(""))
	assert.False(t, IsValidULID("01ARZ3NDEKTSV4RRFFQ69G5FA"), "25 chars")
	assert.False(t, IsValidULID("01ARZ3NDEKTSV4RRFFQ69G5FAVX"), "27 chars")
	assert.False(t, IsValidULID("01ARZ3NDEKTSV4RRFFQ69G5FAI"), "I is not Crockford base32")
	assert.False(t, IsValidULID("01arz3ndektsv4rrffq69g5fav"), "lowercase rejected")
}
