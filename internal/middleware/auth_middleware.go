package middleware

import (
	"log"
	"strings"

	"diario/internal/models"
	"diario/internal/services"

	"github.com/gofiber/fiber/v2"
)

const currentUserKey = "current_user"

// TokenFromHeader extracts the bearer token from the Authorization
// header, or "" when the header is missing or malformed.
func TokenFromHeader(c *fiber.Ctx) string {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return ""
	}

	// Expected format: "Bearer <token>"
	parts := strings.SplitN(authHeader, " ", 2)
	if !(len(parts) == 2 && parts[0] == "Bearer") {
		return ""
	}
	return parts[1]
}

// AuthRequired is a Fiber middleware that resolves the caller's identity
// from the bearer token via the persisted session store. Resolution runs
// per request; on failure it short-circuits with 401 and the protected
// handler is never called.
func AuthRequired(authService *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := TokenFromHeader(c)
		if token == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "authorization header with bearer token is required",
			})
		}

		user, err := authService.UserFromToken(token)
		if err != nil {
			log.Printf("Token resolution failed: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "could not resolve session",
			})
		}
		if user == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "invalid or expired token",
			})
		}

		// Store the resolved identity in the Fiber context for handlers
		c.Locals(currentUserKey, user)

		return c.Next()
	}
}

// CurrentUser returns the identity resolved by AuthRequired, or nil on
// an unprotected route.
func CurrentUser(c *fiber.Ctx) *models.User {
	user, _ := c.Locals(currentUserKey).(*models.User)
	return user
}
