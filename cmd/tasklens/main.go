package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/tasklens/tasklens/adapter/cli"
	"github.com/tasklens/tasklens/internal/app"
	"github.com/tasklens/tasklens/pkg/config"
	"github.com/tasklens/tasklens/pkg/observability"
)

func main() {
	logger := observability.LoggerFromEnv()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	cli.SetLogger(logger)

	container, err := app.NewContainer(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to initialize container", "error", err)
		os.Exit(1)
	}
	defer container.Close()

	cli.SetContainer(container)
	cli.Execute(ctx)
}
