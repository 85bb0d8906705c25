package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	applog "apotheka/internal/log"
	"apotheka/internal/services"
)

func bearerToken(c *fiber.Ctx) string {
	h := c.Get(fiber.HeaderAuthorization)
	if strings.HasPrefix(h, "Bearer ") {
		return strings.TrimPrefix(h, "Bearer ")
	}
	return ""
}

// RequireAdmin guards mutating API routes with a session token when admin
// auth is configured. Reads stay open either way; with no password hash set
// the whole surface is open.
func RequireAdmin(auth *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !auth.Enabled() || c.Method() == fiber.MethodGet {
			return c.Next()
		}
		if strings.HasPrefix(c.Path(), "/api/auth/") {
			return c.Next()
		}
		if !auth.Valid(bearerToken(c)) {
			applog.Security(c, "auth.reject", nil)
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
		}
		return c.Next()
	}
}
