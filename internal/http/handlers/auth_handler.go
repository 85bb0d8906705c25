package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "apotheka/internal/log"
	"apotheka/internal/services"
)

type AuthHandler struct {
	Auth *services.AuthService
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var body struct {
		Password string `json:"password"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid JSON body"})
	}
	token, err := h.Auth.Login(body.Password)
	if err != nil {
		applog.Security(c, "auth.login.fail", nil)
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid password"})
	}
	applog.Audit(c, "auth.login", nil)
	return c.JSON(fiber.Map{"token": token})
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	h.Auth.Logout(bearerToken(c))
	return c.JSON(fiber.Map{"status": "ok"})
}
