package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"instituteCMS/cmd/app"
	"instituteCMS/internal/config"
	handlers "instituteCMS/internal/handler"
	"instituteCMS/internal/middleware"
)

func main() {
	// setting up config
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger := app.NewLogger(cfg)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, services, err := app.App(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to start", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer func() {
		if err := db.CloseDB(); err != nil {
			logger.Error("failed to close database", slog.String("error", err.Error()))
		}
	}()

	handler := handlers.NewHandlers(services, db, cfg, logger)
	router := handler.NewRouter(cfg.APIPrefix, middleware.RequireAdmin(services.Auth, cfg.CookieName, logger))

	handlerChain := middleware.Chain(
		router,
		middleware.MaxBodyMiddleware(cfg.MaxUploadSize),
		middleware.CORSMiddleware(cfg.CORSAllowedOrigin),
		middleware.LoggingMiddleware(logger),
		middleware.RecoverMiddleware(logger),
	)

	server := &http.Server{
		Addr:         cfg.ServerAddr(),
		Handler:      handlerChain,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	// Starting the server
	errCh := make(chan error, 1)
	go func() {
		logger.Info("server started",
			slog.String("addr", server.Addr),
			slog.String("api_prefix", cfg.APIPrefix),
			slog.String("env", cfg.Env),
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("server failed", slog.String("error", err.Error()))
			return
		}
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", slog.String("error", err.Error()))
	}
}
