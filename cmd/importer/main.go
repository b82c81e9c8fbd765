package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/gokatarajesh/trivia-bank/internal/app"
	"github.com/gokatarajesh/trivia-bank/internal/config"
	"github.com/gokatarajesh/trivia-bank/internal/question"
	"github.com/gokatarajesh/trivia-bank/internal/question/external"
)

func main() {
	var (
		amount     = flag.Int("amount", 10, "Number of questions to fetch (1-50)")
		category   = flag.Int("category", 0, "Open Trivia DB category id (0 for any)")
		difficulty = flag.String("difficulty", "", "easy, medium or hard")
		every      = flag.Duration("every", 0, "Repeat the import on this interval (0 runs once)")
	)
	flag.Parse()

	log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()

	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load("configs/.env")
	}

	if *amount < 1 || *amount > 50 {
		log.Fatal().Int("amount", *amount).Msg("amount must be between 1 and 50")
	}

	ctx := context.Background()
	cfg, err := config.Load(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	if cfg.StoreBackend == config.BackendMemory {
		log.Fatal().Msg("importer needs a persistent store; set STORE_BACKEND=postgres")
	}

	instance, err := app.New(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build app")
	}
	defer instance.Close()

	client := external.NewOpenTDBClient(cfg.Importer.OpenTDBURL, &http.Client{Timeout: cfg.Importer.HTTPTimeout})
	importer := question.NewImporter(instance.Service(), client, instance.Logger())

	opts := external.FetchOptions{
		Amount:     *amount,
		Category:   *category,
		Difficulty: *difficulty,
	}

	if *every > 0 {
		runCtx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		log.Info().Dur("every", *every).Msg("starting scheduled import")
		question.NewImportWorker(importer, opts, *every, cfg.Importer.HTTPTimeout*5, instance.Logger()).Run(runCtx)
		return
	}

	report, err := importer.Import(ctx, opts)
	if err != nil {
		log.Fatal().Err(err).Msg("import failed")
	}
	log.Info().
		Int("fetched", report.Fetched).
		Int("imported", report.Imported).
		Int("skipped", report.Skipped).
		Int("failed", report.Failed).
		Msg("import complete")
}
