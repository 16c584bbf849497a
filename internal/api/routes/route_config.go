package routes

import (
	"Go-Pantry-Assistant/domain"
	"Go-Pantry-Assistant/internal/api/handlers"
	"Go-Pantry-Assistant/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App              *fiber.App
	AuthHandler      handlers.AuthHandler
	InventoryHandler handlers.InventoryHandler
	ChatHandler      handlers.ChatHandler
	Middleware       middleware.Middleware
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.RecoverMiddleware())
	c.App.Use(c.Middleware.CORSMiddleware())
	c.GuestRoute()
	c.Auth()
	c.Inventory()
	c.Chat()
}

func (c *Config) GuestRoute() {
	c.App.Get("/ping", func(c *fiber.Ctx) error {
		return c.JSON(domain.MessageResponse{Message: domain.MessagePong})
	})
}

func (c *Config) Auth() {
	auth := c.App.Group("/auth")
	auth.Post("/signup", c.AuthHandler.Signup)
	auth.Post("/login", c.AuthHandler.Login)
}

func (c *Config) Inventory() {
	inventory := c.App.Group("/inventory")
	inventory.Get("/:user_id", c.InventoryHandler.GetInventory)
	inventory.Post("", c.InventoryHandler.AddItem)
	inventory.Delete("/:id", c.InventoryHandler.DeleteItem)
}

func (c *Config) Chat() {
	c.App.Post("/chat", c.ChatHandler.Chat)
}
