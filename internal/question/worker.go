package question

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/gokatarajesh/trivia-bank/internal/question/external"
)

// ImportWorker runs the importer on a fixed interval until stopped.
type ImportWorker struct {
	importer  *Importer
	opts      external.FetchOptions
	interval  time.Duration
	timeout   time.Duration
	logger    zerolog.Logger
	shutdownC chan struct{}
}

func NewImportWorker(importer *Importer, opts external.FetchOptions, interval, timeout time.Duration, logger zerolog.Logger) *ImportWorker {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &ImportWorker{
		importer:  importer,
		opts:      opts,
		interval:  interval,
		timeout:   timeout,
		logger:    logger,
		shutdownC: make(chan struct{}),
	}
}

// Run imports once immediately, then once per interval. It returns when ctx
// is done or Stop is called.
func (w *ImportWorker) Run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.runOnce(ctx)
	for {
		select {
		case <-ctx.Done():
			w.logger.Info().Msg("import worker stopping")
			return
		case <-w.shutdownC:
			w.logger.Info().Msg("import worker stopping")
			return
		case <-ticker.C:
			w.runOnce(ctx)
		}
	}
}

func (w *ImportWorker) runOnce(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, w.timeout)
	defer cancel()

	// Rate limits and empty batches are transient; keep the schedule.
	if _, err := w.importer.Import(ctx, w.opts); err != nil {
		w.logger.Warn().Err(err).Msg("scheduled import failed")
	}
}

func (w *ImportWorker) Stop() {
	close(w.shutdownC)
}
