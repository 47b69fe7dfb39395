package handler

import (
	"github.com/Maspur102/elokalfa/internal/service"

	"github.com/gofiber/fiber/v2"
)

type SettingsHandler struct {
	service service.SettingsService
}

func NewSettingsHandler(s service.SettingsService) *SettingsHandler {
	return &SettingsHandler{service: s}
}

// GetSettings returns the store profile
// GET /api/v1/settings
func (h *SettingsHandler) GetSettings(c *fiber.Ctx) error {
	info, err := h.service.Get()
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(info)
}

// UpdateSettings saves the store profile; the logo is an optional multipart file "logo"
// PUT /api/v1/settings
func (h *SettingsHandler) UpdateSettings(c *fiber.Ctx) error {
	var req service.UpdateSettingsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	logo, err := optionalFile(c, "logo")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid logo upload"})
	}

	info, err := h.service.Update(&req, logo, actorOf(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "Settings saved", "data": info})
}
