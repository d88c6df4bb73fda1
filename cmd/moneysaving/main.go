package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"time"

	"moneysaving/internal/cache"
	"moneysaving/internal/cli"
	apphttp "moneysaving/internal/http"
	"moneysaving/internal/ledger"
	applog "moneysaving/internal/log"
)

func main() {
	cli.LoadEnvFile()

	cfg, err := cli.LoadAndValidateConfig()
	if err != nil {
		applog.New(applog.DefaultConfig()).Error("Configuration validation failed", applog.FieldError, err)
		os.Exit(1)
	}
	logger := cli.SetupLogger(cfg.LogLevel)

	store, err := cli.InitStore(context.Background(), logger, cfg.SQLiteDBPath)
	if err != nil {
		logger.Error("Failed to initialize ledger store", applog.FieldError, err, applog.FieldDBPath, cfg.SQLiteDBPath)
		os.Exit(1)
	}

	svc := ledger.NewService(store, ledger.Options{
		CacheSize: cfg.CacheSize,
		CacheTTL:  cfg.CacheTTL,
		Logger:    logger.WithComponent(applog.ComponentLedger).Slog(),
	})

	srv := apphttp.NewServer(cfg.Addr(), svc, apphttp.Options{
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		Logger:       logger,
	})
	srv.IdleTimeout = 60 * time.Second
	srv.MaxHeaderBytes = 1 << 16 // 64KB

	ctx, done := cli.GracefulShutdown(logger, cfg.ShutdownTimeout, func(ctx context.Context) {
		if err := srv.Shutdown(ctx); err != nil {
			logger.Error("Server shutdown error", applog.FieldError, err)
		}
		if err := store.Close(); err != nil {
			logger.Error("Ledger store close error", applog.FieldError, err)
		}
	})

	caches := cache.NewManager(logger.WithComponent(applog.ComponentCache).Slog())
	caches.Register(svc.Caches()...)
	go caches.Run(ctx, time.Minute)

	logger.Info("Starting moneysaving server", "port", cfg.Port, applog.FieldDBPath, cfg.SQLiteDBPath)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("Server error", applog.FieldError, err, "port", cfg.Port)
		os.Exit(1)
	}

	<-done
	logger.Info("Server stopped gracefully")
}
