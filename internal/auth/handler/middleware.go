package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	errs "github.com/seino914/user-auth-service/internal/errors"
)

const localsUserID = "userID"

// RequireAuth gates a route on a valid, unrevoked bearer token and
// stashes the token subject in the request locals.
func (h *AuthHandler) RequireAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := bearerToken(c)
		if token == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "missing bearer token",
			})
		}

		claims, err := h.authService.Authenticate(c.Context(), token)
		if err != nil {
			var tokenErr *errs.InvalidTokenError
			if errors.As(err, &tokenErr) {
				return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
					"error":  "invalid token",
					"reason": tokenErr.Reason,
				})
			}
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "invalid token",
			})
		}

		c.Locals(localsUserID, claims.UserID())

		return c.Next()
	}
}
