package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdugdh24/reunion-backend/internal/config"
	"github.com/gdugdh24/reunion-backend/internal/infrastructure/container"
	"github.com/gdugdh24/reunion-backend/internal/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load config")
	}

	logger.Init(cfg.Logging)

	app, err := container.NewContainer(cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize application")
	}
	defer func() {
		if err := app.Close(); err != nil {
			logger.Error().Err(err).Msg("error closing application")
		}
	}()

	// Channel to listen for interrupt signals
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Server.Start(); err != nil {
			logger.Error().Err(err).Msg("server error")
			quit <- syscall.SIGTERM
		}
	}()

	logger.Info().
		Str("env", cfg.Server.Env).
		Int("port", cfg.Server.Port).
		Msg("server started")

	<-quit

	if err := app.Server.Shutdown(context.Background()); err != nil {
		logger.Error().Err(err).Msg("server shutdown error")
		return
	}

	logger.Info().Msg("server exited properly")
}
