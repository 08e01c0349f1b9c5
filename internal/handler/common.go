package handler

import (
	"log"
	"strconv"

	"canteen-inventory-api/pkg/apperr"

	"github.com/gofiber/fiber/v2"
)

// fail maps a service error onto the HTTP response. Internal causes are
// logged server-side only; the client gets the generic message.
func fail(c *fiber.Ctx, err error) error {
	appErr := apperr.From(err)
	if appErr.Kind == apperr.KindInternal {
		log.Printf("internal error: %s %s: %v", c.Method(), c.Path(), appErr.Err)
	}
	return c.Status(appErr.Status()).JSON(fiber.Map{"message": appErr.Message})
}

// currentUserID reads the authenticated user id set by the auth middleware.
func currentUserID(c *fiber.Ctx) uint {
	userID, ok := c.Locals("user_id").(uint)
	if !ok {
		return 0 // shouldn't happen on protected routes
	}
	return userID
}

// parseID parses the :id path segment. Non-numeric segments are invalid input.
func parseID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
