package handler

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/seino914/user-auth-service/internal/auth/dto"
	"github.com/seino914/user-auth-service/internal/auth/service"
	errs "github.com/seino914/user-auth-service/internal/errors"
)

type AuthHandler struct {
	authService *service.AuthService
	validate    *validator.Validate
}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		validate:    validator.New(),
	}
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var input dto.RegisterInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid input",
		})
	}
	if err := h.validate.Struct(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid input",
		})
	}

	user, err := h.authService.Register(c.Context(), input)
	if err != nil {
		var weak *errs.WeakPasswordError
		switch {
		case errors.Is(err, errs.ErrEmailAlreadyInUse):
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": err.Error(),
			})
		case errors.As(err, &weak):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error":  weak.Error(),
				"errors": weak.Violations,
			})
		default:
			return internalError(c)
		}
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "user registered",
		"user":    user,
	})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var input dto.LoginInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid input",
		})
	}
	if err := h.validate.Struct(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid input",
		})
	}

	out, err := h.authService.Login(c.Context(), input)
	if err != nil {
		var locked *errs.AccountLockedError
		var invalid *errs.InvalidCredentialsError
		switch {
		case errors.As(err, &locked):
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error":             locked.Error(),
				"remaining_minutes": locked.RemainingMinutes,
			})
		case errors.As(err, &invalid):
			body := fiber.Map{"error": invalid.Error()}
			if invalid.RemainingAttempts >= 0 {
				body["remaining_attempts"] = invalid.RemainingAttempts
			}
			return c.Status(fiber.StatusUnauthorized).JSON(body)
		default:
			return internalError(c)
		}
	}

	return c.Status(fiber.StatusOK).JSON(out)
}

// Logout always reports success: revocation is best-effort and a
// malformed token still honors the user's intent to end the session.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if token := bearerToken(c); token != "" {
		h.authService.Logout(c.Context(), token)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "logged out",
	})
}

func (h *AuthHandler) Me(c *fiber.Ctx) error {
	userID, _ := c.Locals(localsUserID).(string)

	user, err := h.authService.GetAccount(c.Context(), userID)
	if err != nil {
		return internalError(c)
	}
	if user == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "account not found",
		})
	}

	return c.Status(fiber.StatusOK).JSON(user)
}

func bearerToken(c *fiber.Ctx) string {
	header := c.Get(fiber.HeaderAuthorization)
	if !strings.HasPrefix(header, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(header, "Bearer ")
}

// internalError hides store and crypto failures from the client; the
// detail is already logged server-side.
func internalError(c *fiber.Ctx) error {
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": "internal server error",
	})
}
