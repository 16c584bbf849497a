package inventory

import (
	"Go-Pantry-Assistant/entities"
	"context"
	"errors"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
)

const collectionName = "inventory"

type firestoreRepository struct {
	client *firestore.Client
}

func NewFirestoreRepository(client *firestore.Client) InventoryRepository {
	return &firestoreRepository{client: client}
}

func (r *firestoreRepository) collection() *firestore.CollectionRef {
	return r.client.Collection(collectionName)
}

func (r *firestoreRepository) ListByUser(ctx context.Context, userID string) ([]*entities.InventoryItem, error) {
	iter := r.collection().Where("user_id", "==", userID).Documents(ctx)
	defer iter.Stop()

	items := []*entities.InventoryItem{}
	for {
		doc, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, err
		}

		var item entities.InventoryItem
		if err := doc.DataTo(&item); err != nil {
			return nil, err
		}
		item.ID = doc.Ref.ID
		items = append(items, &item)
	}
	return items, nil
}

func (r *firestoreRepository) Insert(ctx context.Context, item *entities.InventoryItem) error {
	ref := r.collection().NewDoc()
	if _, err := ref.Set(ctx, item); err != nil {
		return err
	}
	item.ID = ref.ID
	return nil
}

// Delete on a missing document is not an error in Firestore unless a
// precondition is given, which is the behavior we want.
func (r *firestoreRepository) Delete(ctx context.Context, id string) error {
	_, err := r.collection().Doc(id).Delete(ctx)
	return err
}
