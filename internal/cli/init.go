// Package cli provides the bootstrap shared by cmd/moneysaving and cmd/ledgerctl.
package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"moneysaving/internal/config"
	applog "moneysaving/internal/log"
	"moneysaving/internal/storage"
)

// SetupLogger builds the application logger at the given LOG_LEVEL and
// makes it the slog default. Unknown levels fall back to info.
func SetupLogger(level string) *applog.Logger {
	lvl, _ := config.ParseLevel(level)
	cfg := applog.DefaultConfig()
	cfg.Level = lvl

	logger := applog.New(cfg)
	applog.SetDefault(logger)
	return logger
}

// LoadEnvFile loads the .env file for local development.
// Errors are ignored silently as this is optional in production.
func LoadEnvFile() {
	_ = godotenv.Load()
}

// LoadAndValidateConfig loads configuration and validates it.
func LoadAndValidateConfig() (*config.Config, error) {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// InitStore opens the ledger store eagerly so schema problems surface at
// startup rather than on the first request.
func InitStore(ctx context.Context, logger *applog.Logger, dbPath string) (*storage.Store, error) {
	store := storage.New(dbPath, storage.WithLogger(logger.WithComponent(applog.ComponentStorage).Slog()))
	if _, err := store.Open(ctx); err != nil {
		return nil, fmt.Errorf("init store %s: %w", dbPath, err)
	}
	logger.Info("Ledger store ready", applog.FieldDBPath, dbPath)
	return store, nil
}

// GracefulShutdown returns a context cancelled on SIGINT or SIGTERM. The
// cleanup function runs with a context bounded by timeout; done is closed
// once it returns.
func GracefulShutdown(logger *applog.Logger, timeout time.Duration, cleanup func(ctx context.Context)) (context.Context, <-chan struct{}) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		defer signal.Stop(sigChan)

		select {
		case sig := <-sigChan:
			logger.Info("Shutdown signal received", "signal", sig.String())
		case <-ctx.Done():
		}
		cancel()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), timeout)
		defer shutdownCancel()

		if cleanup != nil {
			cleanup(shutdownCtx)
		}
		if shutdownCtx.Err() != nil {
			logger.Warn("Shutdown timeout reached")
		} else {
			logger.Info("Shutdown complete")
		}
		close(done)
	}()

	return ctx, done
}
