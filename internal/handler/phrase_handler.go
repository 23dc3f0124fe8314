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

type PhraseHandler struct {
	phraseService service.PhraseService
	validator     *validation.Validator
}

func NewPhraseHandler(phraseService service.PhraseService) *PhraseHandler {
	return &PhraseHandler{
		phraseService: phraseService,
		validator:     validation.NewValidator(),
	}
}

// currentUserID reads the user id set by the session auth middleware.
func currentUserID(c *fiber.Ctx) (string, bool) {
	userID, ok := c.Locals(middleware.UserIDKey).(string)
	return userID, ok && userID != ""
}

// SavePhrase bookmarks a new phrase for the authenticated user.
// @Summary Save a phrase
// @Description Bookmarks a new phrase for the authenticated user.
// @Tags phrases
// @Security SessionToken
// @Accept json
// @Produce json
// @Param request body dto.SavePhraseRequest true "Phrase to save"
// @Success 201 {object} dto.PhraseResponse
// @Failure 400 {object} middleware.ErrorResponse "Invalid request body"
// @Failure 401 {object} middleware.ErrorResponse "Unauthorized"
// @Router /phrases [post]
func (h *PhraseHandler) SavePhrase(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(middleware.ErrorResponse{
			Code: "INVALID_USER_CONTEXT", Message: "User ID not found in context", Status: fiber.StatusUnauthorized,
		})
	}

	var req dto.SavePhraseRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Get().Warn("Failed to parse save phrase request body", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(middleware.ErrorResponse{
			Code: "INVALID_REQUEST_BODY", Message: "Invalid request body", Status: fiber.StatusBadRequest,
		})
	}

	if errs := h.validator.ValidateSavePhraseRequest(req.Phrase, req.Category); len(errs) > 0 {
		return errs
	}

	resp, err := h.phraseService.SavePhrase(c.Context(), userID, &req)
	if err != nil {
		return err
	}

	logger.Get().Info("Phrase saved", zap.String("userID", userID), zap.String("phraseID", resp.ID))
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// GetPhrase returns one of the user's phrases by id.
// @Summary Get a phrase
// @Description Returns a single saved phrase owned by the authenticated user.
// @Tags phrases
// @Security SessionToken
// @Produce json
// @Param phraseId path string true "Phrase ID"
// @Success 200 {object} dto.PhraseResponse
// @Failure 400 {object} middleware.ErrorResponse "Malformed phrase ID"
// @Failure 401 {object} middleware.ErrorResponse "Unauthorized"
// @Failure 404 {object} middleware.ErrorResponse "Phrase not found"
// @Router /phrases/{phraseId} [get]
func (h *PhraseHandler) GetPhrase(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(middleware.ErrorResponse{
			Code: "INVALID_USER_CONTEXT", Message: "User ID not found in context", Status: fiber.StatusUnauthorized,
		})
	}

	phraseID := c.Params("phraseId")
	if errs := h.validator.ValidateEntityID("phrase_id", phraseID); len(errs) > 0 {
		return errs
	}

	resp, err := h.phraseService.GetPhrase(c.Context(), userID, phraseID)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(resp)
}

// ListPhrases returns all of the user's phrases, most recent first.
// @Summary List phrases
// @Description Returns all of the authenticated user's saved phrases, most recent first.
// @Tags phrases
// @Security SessionToken
// @Produce json
// @Success 200 {object} dto.PhraseListResponse
// @Failure 401 {object} middleware.ErrorResponse "Unauthorized"
// @Router /phrases [get]
func (h *PhraseHandler) ListPhrases(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(middleware.ErrorResponse{
			Code: "INVALID_USER_CONTEXT", Message: "User ID not found in context", Status: fiber.StatusUnauthorized,
		})
	}

	resp, err := h.phraseService.ListPhrases(c.Context(), userID)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(resp)
}

// DeletePhrase removes one of the user's phrases.
// @Summary Delete a phrase
// @Description Removes a saved phrase owned by the authenticated user.
// @Tags phrases
// @Security SessionToken
// @Produce json
// @Param phraseId path string true "Phrase ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} middleware.ErrorResponse "Malformed phrase ID"
// @Failure 401 {object} middleware.ErrorResponse "Unauthorized"
// @Failure 404 {object} middleware.ErrorResponse "Phrase not found"
// @Router /phrases/{phraseId} [delete]
func (h *PhraseHandler) DeletePhrase(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(middleware.ErrorResponse{
			Code: "INVALID_USER_CONTEXT", Message: "User ID not found in context", Status: fiber.StatusUnauthorized,
		})
	}

	phraseID := c.Params("phraseId")
	if errs := h.validator.ValidateEntityID("phrase_id", phraseID); len(errs) > 0 {
		return errs
	}

	if err := h.phraseService.DeletePhrase(c.Context(), userID, phraseID); err != nil {
		return err
	}

	logger.Get().Info("Phrase deleted", zap.String("userID", userID), zap.String("phraseID", phraseID))
	return c.Status(fiber.StatusOK).JSON(dto.MessageResponse{Message: "Phrase deleted"})
}

// SetMastered toggles the mastered flag on one of the user's phrases.
// @Summary Set mastered flag
// @Description Marks a saved phrase as mastered or not mastered.
// @Tags phrases
// @Security SessionToken
// @Accept json
// @Produce json
// @Param phraseId path string true "Phrase ID"
// @Param request body dto.SetMasteredRequest true "Mastered flag"
// @Success 200 {object} dto.PhraseResponse
// @Failure 400 {object} middleware.ErrorResponse "Invalid request body"
// @Failure 401 {object} middleware.ErrorResponse "Unauthorized"
// @Failure 404 {object} middleware.ErrorResponse "Phrase not found"
// @Router /phrases/{phraseId}/mastered [patch]
func (h *PhraseHandler) SetMastered(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(middleware.ErrorResponse{
			Code: "INVALID_USER_CONTEXT", Message: "User ID not found in context", Status: fiber.StatusUnauthorized,
		})
	}

	phraseID := c.Params("phraseId")
	if errs := h.validator.ValidateEntityID("phrase_id", phraseID); len(errs) > 0 {
		return errs
	}

	var req dto.SetMasteredRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(middleware.ErrorResponse{
			Code: "INVALID_REQUEST_BODY", Message: "Invalid request body", Status: fiber.StatusBadRequest,
		})
	}

	resp, err := h.phraseService.SetMastered(c.Context(), userID, phraseID, req.IsMastered)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(resp)
}
