package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/feddict/feddict-backend/internal/adapter/postgres"
	"github.com/feddict/feddict-backend/internal/adapter/postgres/term"
	"github.com/feddict/feddict-backend/internal/config"
	"github.com/feddict/feddict-backend/internal/service/glossary"
	"github.com/feddict/feddict-backend/internal/transport/rest"
)

// Run is the application entry point: it loads configuration, connects to
// the database, removes leftover test-marker records, and serves HTTP
// until the context is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	termRepo := term.New(pool)
	svc := glossary.New(logger, termRepo, cfg.Glossary)

	// Leftover test-marker records from interrupted test runs must not be
	// visible to clients.
	if cleaned, err := svc.CleanupTestTerms(ctx); err != nil {
		logger.Warn("startup cleanup failed", slog.String("error", err.Error()))
	} else if cleaned > 0 {
		logger.Info("startup cleanup", slog.Int64("deleted", cleaned))
	}

	router, stopLimiter := rest.NewRouter(rest.RouterDeps{
		Log:     logger,
		Cfg:     cfg,
		Service: svc,
		DB:      pool,
		Version: BuildVersion(),
	})
	defer stopLimiter()

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	logger.Info("stopped")

	return nil
}
