package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"quick-notes/config"
	"quick-notes/config/setup"
)

func main() {
	config.Load()
	cfg := config.AppConfig

	logger := setup.NewLogger(cfg)
	slog.SetDefault(logger)

	application, resources, err := setup.InitApp(context.Background(), cfg, logger)
	if err != nil {
		logger.Error("failed to initialize application", "error", err)
		os.Exit(1)
	}

	app := setup.NewFiberApp(cfg, logger)
	setup.ApplyMiddleware(app, logger)
	setup.RegisterRoutes(app, application)

	addr := net.JoinHostPort(cfg.Host, cfg.Port)
	logger.Info("starting server", "addr", addr, "env", cfg.Env)

	go func() {
		if err := app.Listen(addr); err != nil {
			logger.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server gracefully")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	setup.Shutdown(resources, logger)
	logger.Info("server stopped")
}
