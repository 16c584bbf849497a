package main

import (
	"Go-Pantry-Assistant/cmd/config"
	"Go-Pantry-Assistant/internal/utils"
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
)

type server interface {
	Listen(addr string) error
	Shutdown() error
}

func main() {
	cfg, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("error loading configuration: %v", err)
	}

	logger, err := utils.NewLogger(cfg.LogLevel)
	if err != nil {
		log.Fatalf("error creating logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, cleanup, err := config.NewApp(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("Failed to start application", zap.Error(err))
	}

	if err := serve(ctx, app, cfg.Addr(), cleanup, logger); err != nil {
		logger.Fatal("Server stopped", zap.Error(err))
	}
}

// serve runs srv until ctx is cancelled, then releases resources. A Listen
// failure that was not caused by shutdown is returned.
func serve(ctx context.Context, srv server, addr string, cleanup func() error, logger *zap.Logger) error {
	go func() {
		<-ctx.Done()
		logger.Info("Shutting down server")
		if err := srv.Shutdown(); err != nil {
			logger.Error("Server shutdown failed", zap.Error(err))
		}
	}()

	logger.Info("Server listening", zap.String("addr", addr))
	listenErr := srv.Listen(addr)

	if err := cleanup(); err != nil {
		logger.Error("Cleanup failed", zap.Error(err))
	}

	if listenErr != nil && ctx.Err() == nil {
		return fmt.Errorf("listen on %s: %w", addr, listenErr)
	}
	return nil
}
