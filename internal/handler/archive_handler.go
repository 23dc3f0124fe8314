package handler

import (
	"strconv"

	"speakprep/internal/domain"
	"speakprep/internal/logger"
	"speakprep/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const (
	defaultArchiveLimit  = 50
	defaultArchiveOffset = 0
)

type ArchiveHandler struct {
	archiveService service.ArchiveService
	taskType       string
}

// NewArchiveHandler creates a handler serving one task type's archive.
func NewArchiveHandler(archiveService service.ArchiveService, taskType string) *ArchiveHandler {
	return &ArchiveHandler{
		archiveService: archiveService,
		taskType:       taskType,
	}
}

// ListQuestions returns a page of the user's past attempts plus the total.
// @Summary List archived questions
// @Description Returns a paginated window of the user's past attempts plus the total count.
// @Tags archive
// @Produce json
// @Param user_id query string true "User identifier"
// @Param limit query int false "Number of items per page (default 50, max 200)"
// @Param offset query int false "Offset into the result set (default 0)"
// @Success 200 {object} dto.ArchiveListResponse
// @Failure 400 {object} middleware.ErrorResponse "Invalid pagination parameters"
// @Failure 404 {object} middleware.ErrorResponse "User not found"
// @Router /task1-archive/questions [get]
func (h *ArchiveHandler) ListQuestions(c *fiber.Ctx) error {
	userIdentifier := c.Query("user_id")
	if userIdentifier == "" {
		return domain.ValidationErrors{domain.NewMissingFieldError("user_id")}
	}

	limit, err := strconv.Atoi(c.Query("limit", strconv.Itoa(defaultArchiveLimit)))
	if err != nil {
		return domain.ValidationErrors{domain.NewInvalidFormatError("limit", c.Query("limit"))}
	}
	offset, err := strconv.Atoi(c.Query("offset", strconv.Itoa(defaultArchiveOffset)))
	if err != nil {
		return domain.ValidationErrors{domain.NewInvalidFormatError("offset", c.Query("offset"))}
	}

	logger.Get().Info("Fetching archive questions",
		zap.String("userIdentifier", userIdentifier),
		zap.String("taskType", h.taskType),
	)

	resp, err := h.archiveService.ListQuestions(c.Context(), userIdentifier, h.taskType, limit, offset)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(resp)
}

// GetQuestion returns one past attempt by id.
// @Summary Get an archived question
// @Description Returns a single past attempt of the user by id.
// @Tags archive
// @Produce json
// @Param questionId path string true "Question ID"
// @Param user_id query string true "User identifier"
// @Success 200 {object} dto.ArchiveQuestionResponse
// @Failure 400 {object} middleware.ErrorResponse "Malformed question ID"
// @Failure 404 {object} middleware.ErrorResponse "Question not found"
// @Router /task1-archive/questions/{questionId} [get]
func (h *ArchiveHandler) GetQuestion(c *fiber.Ctx) error {
	questionID := c.Params("questionId")
	userIdentifier := c.Query("user_id")
	if userIdentifier == "" {
		return domain.ValidationErrors{domain.NewMissingFieldError("user_id")}
	}

	resp, err := h.archiveService.GetQuestion(c.Context(), userIdentifier, h.taskType, questionID)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(resp)
}
