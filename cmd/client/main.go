package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"signet/internal/client/cli"
	"signet/internal/client/config"
	"signet/internal/logging"
)

func main() {
	cfg := config.LoadConfig()
	log := logging.New(os.Stderr, slog.LevelInfo)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := cli.NewApp(cfg, log)
	app.Run(ctx)
}
