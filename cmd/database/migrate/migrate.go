package migration

import (
	"Go-Pantry-Assistant/entities"
	"fmt"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&entities.User{}); err != nil {
		return fmt.Errorf("error migrating users table: %w", err)
	}

	if err := db.AutoMigrate(&entities.InventoryItem{}); err != nil {
		return fmt.Errorf("error migrating inventory table: %w", err)
	}

	return nil
}
