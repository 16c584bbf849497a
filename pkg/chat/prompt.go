package chat

import (
	"Go-Pantry-Assistant/entities"
	"fmt"
	"strings"
)

const (
	emptyInventoryText = "No items in inventory"
	noExpirationText   = "N/A"
)

const promptTemplate = `You are a helpful cooking assistant.

Current inventory:
%s

User question: %s

Provide helpful recipe suggestions based on their available ingredients. Prioritize items that are expiring soon.`

// RenderInventory renders one line per item, e.g. "Milk (qty: 2, expires: 2024-01-01)".
func RenderInventory(items []*entities.InventoryItem) string {
	if len(items) == 0 {
		return emptyInventoryText
	}

	lines := make([]string, 0, len(items))
	for _, item := range items {
		expires := noExpirationText
		if item.ExpirationDate != nil && *item.ExpirationDate != "" {
			expires = *item.ExpirationDate
		}
		lines = append(lines, fmt.Sprintf("%s (qty: %d, expires: %s)", item.Name, item.Quantity, expires))
	}
	return strings.Join(lines, "\n")
}

func BuildPrompt(inventoryText, message string) string {
	return fmt.Sprintf(promptTemplate, inventoryText, message)
}
