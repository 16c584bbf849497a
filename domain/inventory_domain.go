package domain

import (
	"time"
)

var (
	MessageSuccessAddItem    = "Item added"
	MessageSuccessDeleteItem = "Item deleted"

	MessageFailedGetInventory = "failed to retrieve inventory"
	MessageFailedAddItem      = "failed to add item"
	MessageFailedDeleteItem   = "failed to delete item"
)

type (
	AddInventoryItemRequest struct {
		UserID         *string `json:"user_id" validate:"required"`
		Name           *string `json:"name" validate:"required"`
		Quantity       *int    `json:"quantity" validate:"required"`
		ExpirationDate *string `json:"expiration_date"`
	}

	AddInventoryItemResponse struct {
		ID      string `json:"id"`
		Message string `json:"message"`
	}

	InventoryItemResponse struct {
		ID             string    `json:"id"`
		UserID         string    `json:"user_id"`
		Name           string    `json:"name"`
		Quantity       int       `json:"quantity"`
		ExpirationDate *string   `json:"expiration_date"`
		CreatedAt      time.Time `json:"created_at"`
	}

	MessageResponse struct {
		Message string `json:"message"`
	}
)
