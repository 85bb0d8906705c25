package handlers

import (
	"github.com/gofiber/fiber/v2"

	"apotheka/internal/domain"
	applog "apotheka/internal/log"
	"apotheka/internal/repos"
)

type SettingsHandler struct {
	Settings *repos.SettingsRepo
}

func (h *SettingsHandler) Get(c *fiber.Ctx) error {
	return c.JSON(h.Settings.Get())
}

// Put replaces the settings object wholesale; there is no merge.
func (h *SettingsHandler) Put(c *fiber.Ctx) error {
	body := domain.Record{}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid JSON body"})
	}
	obj, err := h.Settings.Put(body)
	if err != nil {
		applog.Error(c, "settings.update.fail", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "could not save settings"})
	}
	applog.Audit(c, "settings.update", nil)
	return c.JSON(obj)
}
