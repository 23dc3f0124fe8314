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

type AuthHandler struct {
	authService service.AuthService
	validator   *validation.Validator
}

func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		validator:   validation.NewValidator(),
	}
}

// SimpleLogin creates or retrieves the user behind the supplied identifier
// and issues a fresh session token.
// @Summary Simple login
// @Description Creates the user on first login and returns a new session token.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.SimpleLoginRequest true "User identifier"
// @Success 200 {object} dto.SimpleLoginResponse
// @Failure 400 {object} middleware.ErrorResponse "Invalid request body"
// @Failure 500 {object} middleware.ErrorResponse "Internal server error"
// @Router /auth/simple-login [post]
func (h *AuthHandler) SimpleLogin(c *fiber.Ctx) error {
	appLogger := logger.Get()

	var req dto.SimpleLoginRequest
	if err := c.BodyParser(&req); err != nil {
		appLogger.Warn("Failed to parse simple login request body", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(middleware.ErrorResponse{
			Code: "INVALID_REQUEST_BODY", Message: "Invalid request body", Status: fiber.StatusBadRequest,
		})
	}

	if errs := h.validator.ValidateSimpleLoginRequest(req.UserID); len(errs) > 0 {
		return errs
	}

	resp, err := h.authService.Login(c.Context(), req.UserID)
	if err != nil {
		return err
	}

	appLogger.Info("Simple login succeeded", zap.String("userID", resp.UserID))
	return c.Status(fiber.StatusOK).JSON(resp)
}

// VerifySession checks whether a session token still resolves to a user.
// @Summary Verify session
// @Description Checks whether the given session token is still valid.
// @Tags auth
// @Produce json
// @Param session_token query string true "Session token"
// @Success 200 {object} dto.VerifySessionResponse
// @Failure 401 {object} middleware.ErrorResponse "Invalid or expired session"
// @Router /auth/verify [get]
func (h *AuthHandler) VerifySession(c *fiber.Ctx) error {
	token := c.Query(middleware.SessionTokenQueryParam)

	user, err := h.authService.ResolveToken(c.Context(), token)
	if err != nil {
		return err
	}
	if user == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(middleware.ErrorResponse{
			Code: "INVALID_SESSION", Message: "Invalid or expired session", Status: fiber.StatusUnauthorized,
		})
	}

	return c.Status(fiber.StatusOK).JSON(dto.VerifySessionResponse{
		Valid:          true,
		UserID:         user.ID,
		UserIdentifier: user.UserIdentifier,
	})
}

// Logout deletes the session behind the token. Logging out an unknown
// token is still a success.
// @Summary Logout
// @Description Deletes the session behind the token. Unknown tokens are a no-op.
// @Tags auth
// @Produce json
// @Param session_token query string false "Session token"
// @Success 200 {object} dto.MessageResponse
// @Failure 500 {object} middleware.ErrorResponse "Internal server error"
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	token := c.Query(middleware.SessionTokenQueryParam)

	if err := h.authService.Logout(c.Context(), token); err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(dto.MessageResponse{Message: "Logged out successfully"})
}
