package main

import (
	"context"
	"os/signal"
	"syscall"

	"eggslist_backend/internal/app"
	"eggslist_backend/internal/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	application, err := app.New()
	if err != nil {
		logger.Fatal("startup failed", "error", err)
	}

	if err := application.Run(ctx); err != nil {
		logger.Fatal("server stopped", "error", err)
	}
}
