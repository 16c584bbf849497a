package config

import (
	migration "Go-Pantry-Assistant/cmd/database/migrate"
	"Go-Pantry-Assistant/internal/api/handlers"
	"Go-Pantry-Assistant/internal/api/presenters"
	"Go-Pantry-Assistant/internal/api/routes"
	"Go-Pantry-Assistant/internal/middleware"
	"Go-Pantry-Assistant/internal/utils"
	"Go-Pantry-Assistant/pkg/auth"
	"Go-Pantry-Assistant/pkg/chat"
	"Go-Pantry-Assistant/pkg/inventory"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type backend struct {
	identity  auth.IdentityProvider
	inventory inventory.InventoryRepository
	closers   []func() error
}

// NewApp wires the whole service from the loaded configuration. The returned
// cleanup func releases the access log and backend connections.
func NewApp(ctx context.Context, cfg *utils.Config, logger *zap.Logger) (*fiber.App, func() error, error) {
	app := fiber.New(fiber.Config{
		AppName:      "Pantry Assistant",
		ErrorHandler: presenters.ErrorHandler,
	})
	middlewares := middleware.NewMiddleware(cfg.FrontendURL, logger)
	validator := utils.NewValidator()

	// access log
	accessLog, closeLog, err := openAccessLog(cfg.AccessLogPath)
	if err != nil {
		return nil, nil, err
	}
	app.Use(middlewares.AccessLogMiddleware(accessLog))

	// backends
	be, err := newBackend(ctx, cfg, logger)
	if err != nil {
		_ = closeLog()
		return nil, nil, err
	}
	be.closers = append(be.closers, closeLog)

	modelClient, err := NewModelClient(ctx, cfg)
	if err != nil {
		_ = be.close()
		return nil, nil, err
	}

	// Service
	authService := auth.NewAuthService(be.identity, logger)
	inventoryService := inventory.NewInventoryService(be.inventory, logger)
	chatService := chat.NewChatService(be.inventory, modelClient, logger)

	// Handler
	authHandler := handlers.NewAuthHandler(authService)
	inventoryHandler := handlers.NewInventoryHandler(inventoryService, validator)
	chatHandler := handlers.NewChatHandler(chatService, validator)

	// routes
	routesConfig := routes.Config{
		App:              app,
		AuthHandler:      authHandler,
		InventoryHandler: inventoryHandler,
		ChatHandler:      chatHandler,
		Middleware:       middlewares,
	}
	routesConfig.Setup()

	logger.Info("Application configured",
		zap.String("data_backend", cfg.DataBackend),
		zap.String("model_provider", cfg.ModelProvider))
	return app, be.close, nil
}

func newBackend(ctx context.Context, cfg *utils.Config, logger *zap.Logger) (*backend, error) {
	switch cfg.DataBackend {
	case utils.BackendPostgres:
		db, err := ConnectDB(cfg, logger)
		if err != nil {
			return nil, err
		}
		if err := migration.Migrate(db); err != nil {
			return nil, err
		}
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		return &backend{
			identity:  auth.NewPostgresProvider(db),
			inventory: inventory.NewInventoryRepository(db),
			closers:   []func() error{sqlDB.Close},
		}, nil
	case utils.BackendFirebase:
		clients, err := ConnectFirebase(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return &backend{
			identity:  auth.NewFirebaseProvider(clients.Auth),
			inventory: inventory.NewFirestoreRepository(clients.Firestore),
			closers:   []func() error{clients.Firestore.Close},
		}, nil
	default:
		return nil, fmt.Errorf("unknown data backend %q", cfg.DataBackend)
	}
}

func (b *backend) close() error {
	var errs []error
	for _, closeFn := range b.closers {
		if err := closeFn(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// openAccessLog opens the request log file, creating its directory. "-" logs
// to stdout.
func openAccessLog(path string) (io.Writer, func() error, error) {
	if path == "-" {
		return os.Stdout, func() error { return nil }, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), os.ModePerm); err != nil {
		return nil, nil, fmt.Errorf("error creating logs directory: %w", err)
	}
	file, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		return nil, nil, fmt.Errorf("error opening access log: %w", err)
	}
	return file, file.Close, nil
}
