package handlers

import (
	"Go-Pantry-Assistant/domain"
	"Go-Pantry-Assistant/internal/api/presenters"
	"Go-Pantry-Assistant/pkg/chat"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	ChatHandler interface {
		Chat(c *fiber.Ctx) error
	}

	chatHandler struct {
		chatService chat.ChatService
		validator   *validator.Validate
	}
)

func NewChatHandler(chatService chat.ChatService, validator *validator.Validate) ChatHandler {
	return &chatHandler{
		chatService: chatService,
		validator:   validator,
	}
}

func (h *chatHandler) Chat(c *fiber.Ctx) error {
	req := new(domain.ChatRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, domain.NewInvalidRequestError(domain.MessageFailedBodyRequest, err))
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, domain.NewInvalidRequestError(err.Error(), err))
	}

	res, err := h.chatService.Answer(c.UserContext(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK)
}
