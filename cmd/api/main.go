package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/almeidamaycon094-ux/heasystaff/internal/app"
	"github.com/almeidamaycon094-ux/heasystaff/internal/auth"
	"github.com/almeidamaycon094-ux/heasystaff/internal/infra"
	"github.com/almeidamaycon094-ux/heasystaff/internal/repository"
	"github.com/almeidamaycon094-ux/heasystaff/internal/service"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	if err := run(logger); err != nil {
		logger.Error("server failed", "error", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load config
	cfg, err := infra.LoadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("validate config: %w", err)
	}

	// Open the database file
	db, err := infra.NewSQLiteDB(ctx, cfg.DatabasePath)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()
	logger.Info("database opened", "path", cfg.DatabasePath)

	// Create schema on first run
	if err := infra.RunMigrations(db, logger); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	// Seed admin, roles and settings when their tables are empty
	bootstrap := service.NewBootstrap(db,
		repository.NewAdminRepository(),
		repository.NewRoleRepository(),
		repository.NewSettingsRepository(),
		cfg, logger)
	if err := bootstrap.Run(ctx); err != nil {
		return fmt.Errorf("bootstrap: %w", err)
	}

	// JWT expiry
	expiry, err := time.ParseDuration(cfg.JWTExpiry)
	if err != nil {
		return fmt.Errorf("parse JWT expiry: %w", err)
	}
	jwtMgr := auth.NewJWTManager(cfg.JWTSecret, expiry)

	r := app.NewRouter(app.RouterDeps{
		DB:          db,
		JWTMgr:      jwtMgr,
		Logger:      logger,
		CORSOrigins: cfg.CORSAllowedOrigins,
	})

	// Start server
	addr := fmt.Sprintf(":%d", cfg.APIPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	errCh := make(chan error, 1)
	go func() {
		logger.Info("api server starting", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	}

	// Shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}

	logger.Info("server stopped gracefully")
	return nil
}
