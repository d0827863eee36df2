package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/senko/hndaily/internal/config"
	"github.com/senko/hndaily/internal/digest"
	"github.com/senko/hndaily/internal/domain"
	"github.com/senko/hndaily/internal/hackernews"
	"github.com/senko/hndaily/internal/sendgrid"
	"github.com/senko/hndaily/internal/sqlite"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	// Optional; configuration can also come from the process environment.
	godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	repo, err := sqlite.NewRepository(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("open story database: %w", err)
	}
	defer repo.Close()

	renderer, err := digest.NewRenderer()
	if err != nil {
		return fmt.Errorf("create renderer: %w", err)
	}

	feed := hackernews.NewClient(cfg.BaseURL, logger)
	notifier := sendgrid.NewMailer(cfg.SendgridAPIKey, cfg.FromEmail, cfg.RecipientEmail, logger)

	service := domain.NewDigestService(repo, feed, renderer, notifier, logger)

	return service.Run(context.Background())
}
