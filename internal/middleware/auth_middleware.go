package middleware

import (
	"speakprep/internal/logger"
	"speakprep/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const (
	// SessionTokenHeader is the header alternative to the session_token
	// query parameter.
	SessionTokenHeader = "X-Session-Token"
	// SessionTokenQueryParam matches the original API contract.
	SessionTokenQueryParam = "session_token"
	// UserIDKey is the fiber.Ctx locals key for the resolved user id.
	UserIDKey = "userID"
	// UserIdentifierKey is the fiber.Ctx locals key for the external identifier.
	UserIdentifierKey = "userIdentifier"
)

// sessionToken extracts the token from the query string or header.
func sessionToken(c *fiber.Ctx) string {
	if token := c.Query(SessionTokenQueryParam); token != "" {
		return token
	}
	return c.Get(SessionTokenHeader)
}

// SessionAuth protects routes by requiring a valid session token. The
// token is resolved through the auth service, which also purges expired
// sessions; a token that does not resolve yields 401.
func SessionAuth(authService service.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := sessionToken(c)
		if token == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(ErrorResponse{
				Code:    "MISSING_SESSION_TOKEN",
				Message: "Session token is missing",
				Status:  fiber.StatusUnauthorized,
			})
		}

		user, err := authService.ResolveToken(c.Context(), token)
		if err != nil {
			logger.Get().Error("Session resolution failed", zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
				Code:    "SESSION_RESOLUTION_ERROR",
				Message: "Could not resolve session token",
				Status:  fiber.StatusInternalServerError,
			})
		}
		if user == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(ErrorResponse{
				Code:    "INVALID_SESSION",
				Message: "Invalid or expired session",
				Status:  fiber.StatusUnauthorized,
			})
		}

		c.Locals(UserIDKey, user.ID)
		c.Locals(UserIdentifierKey, user.UserIdentifier)
		return c.Next()
	}
}

// OptionalSessionAuth resolves a session token when one is supplied and
// otherwise lets the request through anonymously.
func OptionalSessionAuth(authService service.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := sessionToken(c)
		if token == "" {
			return c.Next()
		}

		user, err := authService.ResolveToken(c.Context(), token)
		if err != nil {
			logger.Get().Debug("OptionalSessionAuth: resolution failed, proceeding as anonymous", zap.Error(err))
			return c.Next()
		}
		if user == nil {
			logger.Get().Debug("OptionalSessionAuth: token did not resolve, proceeding as anonymous")
			return c.Next()
		}

		c.Locals(UserIDKey, user.ID)
		c.Locals(UserIdentifierKey, user.UserIdentifier)
		return c.Next()
	}
}
