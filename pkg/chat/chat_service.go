package chat

import (
	"Go-Pantry-Assistant/domain"
	"Go-Pantry-Assistant/pkg/inventory"
	"context"
	"fmt"

	"go.uber.org/zap"
)

type (
	ChatService interface {
		Answer(ctx context.Context, req domain.ChatRequest) (domain.ChatResponse, error)
	}

	chatService struct {
		inventoryRepository inventory.InventoryRepository
		modelClient         ModelClient
		logger              *zap.Logger
	}
)

func NewChatService(inventoryRepository inventory.InventoryRepository, modelClient ModelClient, logger *zap.Logger) ChatService {
	return &chatService{
		inventoryRepository: inventoryRepository,
		modelClient:         modelClient,
		logger:              logger,
	}
}

// Answer builds a prompt from the user's current inventory and question and
// returns the model's reply. Nothing is retried and no history is kept.
func (s *chatService) Answer(ctx context.Context, req domain.ChatRequest) (domain.ChatResponse, error) {
	userID := domain.StringValue(req.UserID)

	items, err := s.inventoryRepository.ListByUser(ctx, userID)
	if err != nil {
		return domain.ChatResponse{}, s.fail("failed to load inventory", err, userID)
	}

	prompt := BuildPrompt(RenderInventory(items), domain.StringValue(req.Message))
	s.logger.Debug("Sending prompt to model",
		zap.String("user_id", userID),
		zap.Int("items", len(items)),
		zap.String("prompt_preview", preview(prompt, 100)))

	raw, err := s.modelClient.GenerateContent(ctx, prompt)
	if err != nil {
		return domain.ChatResponse{}, s.fail("model request failed", err, userID)
	}

	text, err := ExtractText(raw)
	if err != nil {
		return domain.ChatResponse{}, s.fail("could not read model response", err, userID)
	}

	return domain.ChatResponse{Response: text}, nil
}

func (s *chatService) fail(step string, err error, userID string) error {
	s.logger.Error("Chat request failed",
		zap.String("step", step),
		zap.Error(err),
		zap.String("user_id", userID))
	return domain.NewChatError(fmt.Sprintf("%s: %s: %v", domain.MessageChatError, step, err), err)
}
