package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/nfrund/tinyhouse/internal/config"
	"github.com/nfrund/tinyhouse/internal/logging"
	"github.com/nfrund/tinyhouse/internal/server"
)

func main() {
	logging.New()
	cfg := config.New()

	ctx := context.Background()
	s, err := server.New(ctx, cfg)
	if err != nil {
		slog.Error("Failed to initialize server", "event", "server_init_failed", "error", err)
		os.Exit(1)
	}

	if err := s.Start(ctx, cfg.GetServerAddr()); err != nil {
		slog.Error("Server stopped with error", "event", "server_failed", "error", err)
		os.Exit(1)
	}
}
