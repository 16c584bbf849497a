package entities

import (
	"time"
)

// InventoryItem is one ingredient owned by a user. The same record is stored
// as a row of the "inventory" table or a document of the "inventory" collection.
type InventoryItem struct {
	ID             string    `gorm:"type:varchar(64);primary_key" firestore:"-" json:"id"`
	UserID         string    `gorm:"index;not null" firestore:"user_id" json:"user_id"`
	Name           string    `firestore:"name" json:"name"`
	Quantity       int       `firestore:"quantity" json:"quantity"`
	ExpirationDate *string   `firestore:"expiration_date" json:"expiration_date"`
	CreatedAt      time.Time `firestore:"created_at" json:"created_at"`
}

func (InventoryItem) TableName() string {
	return "inventory"
}
