// Command cleanup removes glossary records carrying the internal test
// marker (leading or trailing underscore). The server does the same at
// startup; this command exists for cron and for manual invocation.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/feddict/feddict-backend/internal/adapter/postgres"
	"github.com/feddict/feddict-backend/internal/adapter/postgres/term"
	"github.com/feddict/feddict-backend/internal/app"
	"github.com/feddict/feddict-backend/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	repo := term.New(pool)

	deleted, err := repo.DeleteTestTerms(ctx)
	if err != nil {
		logger.Error("cleanup failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("cleanup completed", slog.Int64("deleted", deleted))
}
