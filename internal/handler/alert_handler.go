package handler

import (
	"canteen-inventory-api/internal/service"

	"github.com/gofiber/fiber/v2"
)

type AlertHandler struct {
	service service.AlertService
}

func NewAlertHandler(s service.AlertService) *AlertHandler {
	return &AlertHandler{service: s}
}

// GetAlerts returns all alerts, newest first
// GET /api/v1/alerts
func (h *AlertHandler) GetAlerts(c *fiber.Ctx) error {
	alerts, err := h.service.GetAllAlerts()
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(alerts)
}

// MarkRead flips a single alert to read
// PUT /api/v1/alerts/:id/mark-read
func (h *AlertHandler) MarkRead(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"message": "Invalid alert ID"})
	}

	if err := h.service.MarkAlertRead(id); err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{"message": "Alert marked as read successfully"})
}

// MarkAllRead flips every unread alert to read
// PUT /api/v1/alerts/mark-all-read
func (h *AlertHandler) MarkAllRead(c *fiber.Ctx) error {
	if err := h.service.MarkAllAlertsRead(); err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{"message": "All alerts marked as read successfully"})
}
