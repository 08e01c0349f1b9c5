package handler

import (
	"canteen-inventory-api/internal/repository"

	"github.com/gofiber/fiber/v2"
)

type LogHandler struct {
	logRepo repository.ActivityLogRepository
}

func NewLogHandler(logRepo repository.ActivityLogRepository) *LogHandler {
	return &LogHandler{logRepo: logRepo}
}

// GetLogs returns the full activity trail, newest first (admin only)
// GET /api/v1/logs
func (h *LogHandler) GetLogs(c *fiber.Ctx) error {
	logs, err := h.logRepo.FindAll()
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(logs)
}
