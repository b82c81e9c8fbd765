package app

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/gokatarajesh/trivia-bank/internal/config"
	"github.com/gokatarajesh/trivia-bank/internal/db/memory"
	"github.com/gokatarajesh/trivia-bank/internal/db/repository"
	sqlcgen "github.com/gokatarajesh/trivia-bank/internal/db/sqlc"
	"github.com/gokatarajesh/trivia-bank/internal/logging"
	"github.com/gokatarajesh/trivia-bank/internal/question"
	"github.com/gokatarajesh/trivia-bank/internal/server"
)

// Application aggregates shared infrastructure (store, service, HTTP server).
type Application struct {
	cfg    *config.App
	logger zerolog.Logger

	pool *pgxpool.Pool
	svc  *question.Service
	http *http.Server
}

// New bootstraps the logger, the configured store backend and the HTTP server.
func New(ctx context.Context, cfg *config.App) (*Application, error) {
	logger := logging.New(cfg.Name, cfg.Env, cfg.LogLevel)
	logger.Info().Str("store_backend", cfg.StoreBackend).Msg("starting application bootstrap")

	var (
		pool       *pgxpool.Pool
		pinger     server.Pinger
		questions  question.QuestionStore
		categories question.CategoryStore
	)

	switch cfg.StoreBackend {
	case config.BackendMemory:
		store := memory.NewSeeded(question.ContainsFold)
		pinger = store
		questions = store.Questions()
		categories = store.Categories()
		logger.Warn().Msg("using in-memory store; data is lost on restart")
	default:
		var err error
		pool, err = pgxpool.New(ctx, cfg.Postgres.DSN())
		if err != nil {
			return nil, fmt.Errorf("connect postgres: %w", err)
		}
		queries := sqlcgen.New(pool)
		pinger = pool
		questions = repository.NewQuestionRepository(queries)
		categories = repository.NewCategoryRepository(queries)
	}

	svc := question.NewService(questions, categories, question.ServiceOptions{
		PageSize:              cfg.Trivia.PageSize,
		EmptySearchMatchesAll: cfg.Trivia.EmptySearchMatchesAll,
	})
	handler := question.NewHTTPHandler(svc, logger)
	apiServer := server.NewHTTPServer(cfg, logger, pinger, handler)

	return &Application{
		cfg:    cfg,
		logger: logger,
		pool:   pool,
		svc:    svc,
		http:   apiServer,
	}, nil
}

// Service exposes the question service for in-process callers such as the
// importer command.
func (a *Application) Service() *question.Service { return a.svc }

// Logger returns the application logger.
func (a *Application) Logger() zerolog.Logger { return a.logger }

// Run starts the HTTP server and waits for termination signals.
func (a *Application) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		a.logger.Info().Str("addr", a.cfg.HTTPAddr).Msg("http server listening")
		if err := a.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	select {
	case sig := <-sigCh:
		a.logger.Info().Str("signal", sig.String()).Msg("shutdown signal received")
	case err := <-errCh:
		a.Close()
		return fmt.Errorf("http server error: %w", err)
	case <-ctx.Done():
		a.logger.Warn().Msg("context canceled")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.GracefulShutdownTimeout)
	defer cancel()

	if err := a.http.Shutdown(shutdownCtx); err != nil {
		a.logger.Error().Err(err).Msg("http shutdown error")
	}
	a.Close()

	a.logger.Info().Msg("shutdown complete")
	return nil
}

// Close releases the database pool, if any.
func (a *Application) Close() {
	if a.pool != nil {
		a.pool.Close()
	}
}
