package handler

import (
	"speakprep/internal/dto"
	"speakprep/internal/logger"
	"speakprep/internal/middleware"
	"speakprep/internal/service"
	"speakprep/internal/validation"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type PracticeHandler struct {
	practiceService service.PracticeService
	validator       *validation.Validator
}

func NewPracticeHandler(practiceService service.PracticeService) *PracticeHandler {
	return &PracticeHandler{
		practiceService: practiceService,
		validator:       validation.NewValidator(),
	}
}

// CreateSession records a new practice attempt. The route uses optional
// auth: without a session token the attempt is stored anonymously.
// @Summary Record a practice session
// @Description Records a new practice attempt. Without a session token the attempt is stored anonymously.
// @Tags practice
// @Security SessionToken
// @Accept json
// @Produce json
// @Param request body dto.CreatePracticeSessionRequest true "Practice attempt"
// @Success 201 {object} dto.PracticeSessionResponse
// @Failure 400 {object} middleware.ErrorResponse "Invalid request body"
// @Router /practice/sessions [post]
func (h *PracticeHandler) CreateSession(c *fiber.Ctx) error {
	var req dto.CreatePracticeSessionRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Get().Warn("Failed to parse practice session request body", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(middleware.ErrorResponse{
			Code: "INVALID_REQUEST_BODY", Message: "Invalid request body", Status: fiber.StatusBadRequest,
		})
	}

	if errs := h.validator.ValidateCreatePracticeSessionRequest(req.TaskType, req.Question); len(errs) > 0 {
		return errs
	}

	var userID *string
	if id, ok := currentUserID(c); ok {
		userID = &id
	}

	resp, err := h.practiceService.RecordSession(c.Context(), userID, &req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// CompleteScoring applies the one-time scoring result to an attempt.
// @Summary Complete scoring
// @Description Applies the scoring result to an attempt. A session can only be scored once.
// @Tags practice
// @Accept json
// @Produce json
// @Param sessionId path string true "Practice session ID"
// @Param request body dto.CompleteScoringRequest true "Scoring result"
// @Success 200 {object} dto.PracticeSessionResponse
// @Failure 400 {object} middleware.ErrorResponse "Invalid scoring payload"
// @Failure 404 {object} middleware.ErrorResponse "Session not found or already scored"
// @Router /practice/sessions/{sessionId}/score [put]
func (h *PracticeHandler) CompleteScoring(c *fiber.Ctx) error {
	sessionID := c.Params("sessionId")
	if errs := h.validator.ValidateEntityID("session_id", sessionID); len(errs) > 0 {
		return errs
	}

	var req dto.CompleteScoringRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(middleware.ErrorResponse{
			Code: "INVALID_REQUEST_BODY", Message: "Invalid request body", Status: fiber.StatusBadRequest,
		})
	}

	if err := h.practiceService.CompleteScoring(c.Context(), sessionID, &req); err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(dto.MessageResponse{Message: "Scoring recorded"})
}
