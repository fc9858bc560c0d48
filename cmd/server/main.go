// Package main is the entrypoint for the FabAssist API server.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/astrasemi/fabassist/internal/ai"
	"github.com/astrasemi/fabassist/internal/api"
	"github.com/astrasemi/fabassist/internal/api/handler"
	"github.com/astrasemi/fabassist/internal/config"
	"github.com/astrasemi/fabassist/internal/risk"
	"github.com/astrasemi/fabassist/internal/service"
)

const shutdownTimeout = 30 * time.Second

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if err := run(); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	// Local development convenience; missing .env is not an error.
	_ = godotenv.Load()

	// 1. Load config — fail fast on invalid config
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	slog.Info("config loaded", "env", cfg.Server.Env, "model", cfg.AI.Model)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 2. Select the completer (live gateway or mock)
	completer := ai.NewCompleter(cfg.AI)
	slog.Info("completer initialized", "provider", completer.Name())

	// 3. Build the analysis service
	svc := service.New(completer, risk.NewScorer(nil), cfg.AI.InferenceTimeout)

	// 4. Build router with dependencies
	deps := api.Dependencies{
		HealthHandler:             handler.NewHealthHandler(svc.Provider()),
		OperationsHandler:         handler.NewOperationsHandler(svc),
		InterpretHandler:          handler.NewInterpretHandler(svc),
		IdentifyHandler:           handler.NewIdentifyHandler(svc),
		PredictiveDataHandler:     handler.NewPredictiveDataHandler(svc),
		PredictiveAnalysisHandler: handler.NewPredictiveAnalysisHandler(svc),
		QualityInsightHandler:     handler.NewQualityInsightHandler(svc),
	}

	router := api.NewRouter(deps)

	// 5. Start HTTP server
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 90 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in background
	errCh := make(chan error, 1)
	go func() {
		slog.Info("server listening", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	// Wait for shutdown signal or server error
	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
		slog.Info("shutdown signal received, draining connections...")
	}

	// Graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	slog.Info("server stopped gracefully")
	return nil
}
