package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"instituteCMS/internal/config"
	"instituteCMS/internal/database"
	"instituteCMS/internal/repository"
	"instituteCMS/internal/service"
	"instituteCMS/internal/storage"
)

// NewLogger returns a JSON logger in production and a text logger otherwise.
func NewLogger(cfg *config.Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(cfg.LogLevel)}

	var handler slog.Handler
	if cfg.IsDevelopment() {
		handler = slog.NewTextHandler(os.Stdout, opts)
	} else {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}
	return slog.New(handler)
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// App wires the store, the media bucket and the services.
func App(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*database.DB, *service.Service, error) {
	// connection DB
	db, err := database.ConnectDB(cfg)
	if err != nil {
		return nil, nil, err
	}

	// connection MinIO
	minioClient, err := storage.NewMinIOClient(cfg.MinIO)
	if err != nil {
		_ = db.CloseDB()
		return nil, nil, fmt.Errorf("initializing MinIO: %w", err)
	}

	bucketCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()
	if err := minioClient.EnsureBucket(bucketCtx); err != nil {
		_ = db.CloseDB()
		return nil, nil, fmt.Errorf("preparing media bucket: %w", err)
	}

	// enabling dependencies
	repo := repository.NewRepository(db.DB)
	services := service.NewService(repo, cfg, minioClient, logger)

	if cfg.SeedAdmin() {
		created, err := services.Auth.EnsureAdmin(ctx, cfg.AdminEmail, cfg.AdminPassword)
		if err != nil {
			_ = db.CloseDB()
			return nil, nil, fmt.Errorf("provisioning admin: %w", err)
		}
		if created {
			logger.Info("admin account created", slog.String("email", cfg.AdminEmail))
		}
	}

	return db, services, nil
}
