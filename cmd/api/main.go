package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/gokatarajesh/trivia-bank/internal/app"
	"github.com/gokatarajesh/trivia-bank/internal/config"
)

// configLoadTimeout bounds reading the environment at startup.
const configLoadTimeout = 10 * time.Second

func main() {
	// Bootstrap logger until the app builds its configured one.
	log.Logger = zerolog.New(os.Stderr).With().Timestamp().Str("cmd", "api").Logger()

	if os.Getenv("APP_ENV") != "production" {
		if err := godotenv.Load("configs/.env"); err != nil {
			log.Warn().Err(err).Msg("no configs/.env loaded; using process environment")
		}
	}

	loadCtx, cancel := context.WithTimeout(context.Background(), configLoadTimeout)
	cfg, err := config.Load(loadCtx)
	cancel()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	log.Info().
		Str("store_backend", cfg.StoreBackend).
		Str("addr", cfg.HTTPAddr).
		Int("page_size", cfg.Trivia.PageSize).
		Msg("configuration loaded")

	// Run also listens for signals; the context covers callers that cancel first.
	runCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	instance, err := app.New(runCtx, cfg)
	if err != nil {
		log.Fatal().Err(err).Str("store_backend", cfg.StoreBackend).Msg("failed to build app")
	}

	if err := instance.Run(runCtx); err != nil {
		log.Error().Err(err).Msg("api stopped with error")
		stop()
		os.Exit(1)
	}
}
