package inventory

import (
	"Go-Pantry-Assistant/domain"
	"Go-Pantry-Assistant/entities"
	"context"
	"time"

	"go.uber.org/zap"
)

type (
	InventoryService interface {
		GetInventory(ctx context.Context, userID string) ([]domain.InventoryItemResponse, error)
		AddItem(ctx context.Context, req domain.AddInventoryItemRequest) (domain.AddInventoryItemResponse, error)
		DeleteItem(ctx context.Context, id string) (domain.MessageResponse, error)
	}

	inventoryService struct {
		inventoryRepository InventoryRepository
		logger              *zap.Logger
		now                 func() time.Time
	}
)

func NewInventoryService(inventoryRepository InventoryRepository, logger *zap.Logger) InventoryService {
	return &inventoryService{
		inventoryRepository: inventoryRepository,
		logger:              logger,
		now:                 time.Now,
	}
}

func (s *inventoryService) GetInventory(ctx context.Context, userID string) ([]domain.InventoryItemResponse, error) {
	items, err := s.inventoryRepository.ListByUser(ctx, userID)
	if err != nil {
		s.logger.Error(domain.MessageFailedGetInventory,
			zap.Error(err),
			zap.String("user_id", userID))
		return nil, domain.NewStoreError(err.Error(), err)
	}

	response := make([]domain.InventoryItemResponse, 0, len(items))
	for _, item := range items {
		response = append(response, domain.InventoryItemResponse{
			ID:             item.ID,
			UserID:         item.UserID,
			Name:           item.Name,
			Quantity:       item.Quantity,
			ExpirationDate: item.ExpirationDate,
			CreatedAt:      item.CreatedAt,
		})
	}

	return response, nil
}

func (s *inventoryService) AddItem(ctx context.Context, req domain.AddInventoryItemRequest) (domain.AddInventoryItemResponse, error) {
	item := &entities.InventoryItem{
		UserID:         domain.StringValue(req.UserID),
		Name:           domain.StringValue(req.Name),
		ExpirationDate: req.ExpirationDate,
		CreatedAt:      s.now(),
	}
	if req.Quantity != nil {
		item.Quantity = *req.Quantity
	}

	if err := s.inventoryRepository.Insert(ctx, item); err != nil {
		s.logger.Error(domain.MessageFailedAddItem,
			zap.Error(err),
			zap.String("user_id", item.UserID),
			zap.String("name", item.Name))
		return domain.AddInventoryItemResponse{}, domain.NewStoreError(err.Error(), err)
	}

	return domain.AddInventoryItemResponse{
		ID:      item.ID,
		Message: domain.MessageSuccessAddItem,
	}, nil
}

func (s *inventoryService) DeleteItem(ctx context.Context, id string) (domain.MessageResponse, error) {
	if err := s.inventoryRepository.Delete(ctx, id); err != nil {
		s.logger.Error(domain.MessageFailedDeleteItem,
			zap.Error(err),
			zap.String("id", id))
		return domain.MessageResponse{}, domain.NewStoreError(err.Error(), err)
	}

	return domain.MessageResponse{Message: domain.MessageSuccessDeleteItem}, nil
}
