package inventory

import (
	"Go-Pantry-Assistant/entities"
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	InventoryRepository interface {
		// ListByUser returns the user's items in the order the store yields
		// them. No results is an empty slice, not an error.
		ListByUser(ctx context.Context, userID string) ([]*entities.InventoryItem, error)
		// Insert assigns item.ID and persists the record.
		Insert(ctx context.Context, item *entities.InventoryItem) error
		// Delete removes the record. Deleting an unknown id succeeds.
		Delete(ctx context.Context, id string) error
	}

	inventoryRepository struct {
		db *gorm.DB
	}
)

func NewInventoryRepository(db *gorm.DB) InventoryRepository {
	return &inventoryRepository{db: db}
}

func (r *inventoryRepository) ListByUser(ctx context.Context, userID string) ([]*entities.InventoryItem, error) {
	items := []*entities.InventoryItem{}
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at asc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *inventoryRepository) Insert(ctx context.Context, item *entities.InventoryItem) error {
	item.ID = uuid.New().String()
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *inventoryRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.InventoryItem{}).Error
}
