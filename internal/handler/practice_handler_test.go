package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"speakprep/internal/domain"
	"speakprep/internal/dto"
	"speakprep/internal/handler"
	"speakprep/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

// MockPracticeService
type MockPracticeService struct {
	RecordSessionFunc   func(ctx context.Context, userID *string, req *dto.CreatePracticeSessionRequest) (*dto.PracticeSessionResponse, error)
	CompleteScoringFunc func(ctx context.Context, sessionID string, req *dto.CompleteScoringRequest) error
}

func (m *MockPracticeService) RecordSession(ctx context.Context, userID *string, req *dto.CreatePracticeSessionRequest) (*dto.PracticeSessionResponse, error) {
	if m.RecordSessionFunc != nil {
		return m.RecordSessionFunc(ctx, userID, req)
	}
	panic("MockPracticeService.RecordSessionFunc not implemented")
}
func (m *MockPracticeService) CompleteScoring(ctx context.Context, sessionID string, req *dto.CompleteScoringRequest) error {
	if m.CompleteScoringFunc != nil {
		return m.CompleteScoringFunc(ctx, sessionID, req)
	}
	panic("MockPracticeService.CompleteScoringFunc not implemented")
}

func newPracticeTestApp(svc *MockPracticeService, authenticated bool) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: middleware.ErrorHandler(),
	})
	h := handler.NewPracticeHandler(svc)

	group := app.Group("/practice", func(c *fiber.Ctx) error {
		if authenticated {
			c.Locals(middleware.UserIDKey, testUserID)
		}
		return c.Next()
	})
	group.Post("/sessions", h.CreateSession)
	group.Put("/sessions/:sessionId/score", h.CompleteScoring)
	return app
}

func TestPracticeHandler_CreateSession(t *testing.T) {
	t.Run("Anonymous", func(t *testing.T) {
		mockSvc := &MockPracticeService{
			RecordSessionFunc: func(ctx context.Context, userID *string, req *dto.CreatePracticeSessionRequest) (*dto.PracticeSessionResponse, error) {
				assert.Nil(t, userID, "no session token means an anonymous attempt")
				return &dto.PracticeSessionResponse{ID: testQuestionID, TaskType: req.TaskType, Question: req.Question}, nil
			},
		}
		app := newPracticeTestApp(mockSvc, false)

		body, _ := json.Marshal(dto.CreatePracticeSessionRequest{
			TaskType: domain.TaskTypeTask1,
			Question: "Describe your favorite place to study.",
		})
		req := httptest.NewRequest("POST", "/practice/sessions", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	})

	t.Run("Authenticated", func(t *testing.T) {
		mockSvc := &MockPracticeService{
			RecordSessionFunc: func(ctx context.Context, userID *string, req *dto.CreatePracticeSessionRequest) (*dto.PracticeSessionResponse, error) {
				if assert.NotNil(t, userID) {
					assert.Equal(t, testUserID, *userID)
				}
				return &dto.PracticeSessionResponse{ID: testQuestionID, UserID: userID, TaskType: req.TaskType, Question: req.Question}, nil
			},
		}
		app := newPracticeTestApp(mockSvc, true)

		body, _ := json.Marshal(dto.CreatePracticeSessionRequest{
			TaskType: domain.TaskTypeTask3,
			Question: "Explain the concept from the reading.",
		})
		req := httptest.NewRequest("POST", "/practice/sessions", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	})

	t.Run("Unknown Task Type", func(t *testing.T) {
		app := newPracticeTestApp(&MockPracticeService{}, false)

		body, _ := json.Marshal(dto.CreatePracticeSessionRequest{TaskType: "task7", Question: "Q"})
		req := httptest.NewRequest("POST", "/practice/sessions", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})
}

func TestPracticeHandler_CompleteScoring(t *testing.T) {
	validBody := func() []byte {
		body, _ := json.Marshal(dto.CompleteScoringRequest{
			UserTranscript:        "In my opinion...",
			OverallScore:          3,
			DeliveryScore:         3,
			LanguageUseScore:      3,
			TopicDevelopmentScore: 3,
		})
		return body
	}

	t.Run("Recorded", func(t *testing.T) {
		mockSvc := &MockPracticeService{
			CompleteScoringFunc: func(ctx context.Context, sessionID string, req *dto.CompleteScoringRequest) error {
				assert.Equal(t, testQuestionID, sessionID)
				assert.Equal(t, 3, req.OverallScore)
				return nil
			},
		}
		app := newPracticeTestApp(mockSvc, false)

		req := httptest.NewRequest("PUT", "/practice/sessions/"+testQuestionID+"/score", bytes.NewReader(validBody()))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("Already Scored", func(t *testing.T) {
		mockSvc := &MockPracticeService{
			CompleteScoringFunc: func(ctx context.Context, sessionID string, req *dto.CompleteScoringRequest) error {
				return domain.NewQuestionNotFoundError(sessionID)
			},
		}
		app := newPracticeTestApp(mockSvc, false)

		req := httptest.NewRequest("PUT", "/practice/sessions/"+testQuestionID+"/score", bytes.NewReader(validBody()))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	})

	t.Run("Malformed Session ID", func(t *testing.T) {
		app := newPracticeTestApp(&MockPracticeService{}, false)

		req := httptest.NewRequest("PUT", "/practice/sessions/nope/score", bytes.NewReader(validBody()))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})
}
