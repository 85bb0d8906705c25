package handlers

import (
	"github.com/gofiber/fiber/v2"

	"apotheka/internal/services"
)

type StatisticsHandler struct {
	Stats *services.StatisticsService
}

func (h *StatisticsHandler) Get(c *fiber.Ctx) error {
	return c.JSON(h.Stats.Compute())
}
