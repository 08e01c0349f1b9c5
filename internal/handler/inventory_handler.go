package handler

import (
	"canteen-inventory-api/internal/service"

	"github.com/gofiber/fiber/v2"
)

type InventoryHandler struct {
	service service.InventoryService
}

func NewInventoryHandler(s service.InventoryService) *InventoryHandler {
	return &InventoryHandler{service: s}
}

// GetInventory returns all batches, newest first
// GET /api/v1/inventory
func (h *InventoryHandler) GetInventory(c *fiber.Ctx) error {
	items, err := h.service.GetAllInventory()
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(items)
}

// GetInventoryItem returns a single batch by ID
// GET /api/v1/inventory/:id
func (h *InventoryHandler) GetInventoryItem(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"message": "Invalid inventory ID"})
	}

	item, err := h.service.GetInventoryByID(id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(item)
}

// CreateInventory records a new batch
// POST /api/v1/inventory
func (h *InventoryHandler) CreateInventory(c *fiber.Ctx) error {
	var req service.InventoryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"message": "Invalid JSON"})
	}

	item, err := h.service.CreateInventory(&req, currentUserID(c))
	if err != nil {
		return fail(c, err)
	}

	return c.Status(201).JSON(fiber.Map{
		"message":     "Inventory added successfully",
		"inventoryId": item.ID,
	})
}

// UpdateInventory corrects an existing batch
// PUT /api/v1/inventory/:id
func (h *InventoryHandler) UpdateInventory(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"message": "Invalid inventory ID"})
	}

	var req service.InventoryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"message": "Invalid JSON"})
	}

	item, err := h.service.UpdateInventory(id, &req, currentUserID(c))
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{
		"message":     "Inventory updated successfully",
		"inventoryId": item.ID,
	})
}

// DeleteInventory removes a batch
// DELETE /api/v1/inventory/:id
func (h *InventoryHandler) DeleteInventory(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"message": "Invalid inventory ID"})
	}

	if err := h.service.DeleteInventory(id, currentUserID(c)); err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{"message": "Inventory item deleted successfully"})
}
