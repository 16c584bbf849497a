package handlers

import (
	"Go-Pantry-Assistant/domain"
	"Go-Pantry-Assistant/internal/api/presenters"
	"Go-Pantry-Assistant/pkg/inventory"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	InventoryHandler interface {
		GetInventory(c *fiber.Ctx) error
		AddItem(c *fiber.Ctx) error
		DeleteItem(c *fiber.Ctx) error
	}

	inventoryHandler struct {
		inventoryService inventory.InventoryService
		validator        *validator.Validate
	}
)

func NewInventoryHandler(inventoryService inventory.InventoryService, validator *validator.Validate) InventoryHandler {
	return &inventoryHandler{
		inventoryService: inventoryService,
		validator:        validator,
	}
}

func (h *inventoryHandler) GetInventory(c *fiber.Ctx) error {
	userID := c.Params("user_id")

	items, err := h.inventoryService.GetInventory(c.UserContext(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, err)
	}

	return presenters.SuccessResponse(c, items, fiber.StatusOK)
}

func (h *inventoryHandler) AddItem(c *fiber.Ctx) error {
	req := new(domain.AddInventoryItemRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, domain.NewInvalidRequestError(domain.MessageFailedBodyRequest, err))
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, domain.NewInvalidRequestError(err.Error(), err))
	}

	res, err := h.inventoryService.AddItem(c.UserContext(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK)
}

func (h *inventoryHandler) DeleteItem(c *fiber.Ctx) error {
	itemID := c.Params("id")

	res, err := h.inventoryService.DeleteItem(c.UserContext(), itemID)
	if err != nil {
		return presenters.ErrorResponse(c, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK)
}
