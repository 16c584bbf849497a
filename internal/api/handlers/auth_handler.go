package handlers

import (
	"Go-Pantry-Assistant/domain"
	"Go-Pantry-Assistant/internal/api/presenters"
	"Go-Pantry-Assistant/pkg/auth"

	"github.com/gofiber/fiber/v2"
)

type (
	AuthHandler interface {
		Signup(c *fiber.Ctx) error
		Login(c *fiber.Ctx) error
	}

	authHandler struct {
		authService auth.AuthService
	}
)

func NewAuthHandler(authService auth.AuthService) AuthHandler {
	return &authHandler{
		authService: authService,
	}
}

func (h *authHandler) Signup(c *fiber.Ctx) error {
	req := new(domain.AuthRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, domain.NewInvalidRequestError(domain.MessageFailedBodyRequest, err))
	}

	res, err := h.authService.Signup(c.UserContext(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK)
}

func (h *authHandler) Login(c *fiber.Ctx) error {
	req := new(domain.AuthRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, domain.NewInvalidRequestError(domain.MessageFailedBodyRequest, err))
	}

	res, err := h.authService.Login(c.UserContext(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK)
}
