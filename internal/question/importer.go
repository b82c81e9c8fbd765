package question

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/gokatarajesh/trivia-bank/internal/question/external"
)

// Fetcher retrieves raw questions from an external trivia source.
type Fetcher interface {
	Fetch(ctx context.Context, opts external.FetchOptions) ([]external.OpenTDBQuestion, error)
}

// ImportReport summarizes one importer run.
type ImportReport struct {
	Fetched  int
	Imported int
	Skipped  int
	Failed   int
}

// Importer copies external questions into the bank through the validated
// create path.
type Importer struct {
	svc     *Service
	fetcher Fetcher
	logger  zerolog.Logger
}

// NewImporter builds an Importer.
func NewImporter(svc *Service, fetcher Fetcher, logger zerolog.Logger) *Importer {
	return &Importer{
		svc:     svc,
		fetcher: fetcher,
		logger:  logger.With().Str("component", "trivia_importer").Logger(),
	}
}

// Import fetches one batch and stores every question whose category maps
// onto a local one. Questions that fail validation are counted, not fatal.
func (im *Importer) Import(ctx context.Context, opts external.FetchOptions) (ImportReport, error) {
	var report ImportReport

	list, err := im.svc.Categories(ctx)
	if err != nil {
		return report, fmt.Errorf("load categories: %w", err)
	}
	byLabel := make(map[string]int, len(list.Categories))
	for id, label := range list.Categories {
		byLabel[strings.ToLower(label)] = id
	}

	batch, err := im.fetcher.Fetch(ctx, opts)
	if err != nil {
		return report, fmt.Errorf("fetch questions: %w", err)
	}
	report.Fetched = len(batch)

	for _, raw := range batch {
		categoryID, ok := byLabel[categoryKey(raw.Category)]
		if !ok {
			report.Skipped++
			importedQuestions.WithLabelValues("skipped").Inc()
			im.logger.Debug().Str("category", raw.Category).Msg("no local category, skipping")
			continue
		}
		q, err := im.svc.CreateQuestion(ctx, NewQuestion{
			Text:       raw.Question,
			Answer:     raw.CorrectAnswer,
			CategoryID: categoryID,
			Difficulty: difficultyLevel(raw.Difficulty),
		})
		if err != nil {
			report.Failed++
			importedQuestions.WithLabelValues("failed").Inc()
			im.logger.Warn().Err(err).Str("question", raw.Question).Msg("import question failed")
			continue
		}
		report.Imported++
		importedQuestions.WithLabelValues("imported").Inc()
		im.logger.Debug().Int("question_id", q.ID).Int("category", categoryID).Msg("question imported")
	}

	im.logger.Info().
		Int("fetched", report.Fetched).
		Int("imported", report.Imported).
		Int("skipped", report.Skipped).
		Int("failed", report.Failed).
		Msg("import finished")
	return report, nil
}

// categoryKey reduces an Open Trivia DB category ("Entertainment: Film",
// "Science & Nature") to its leading word.
func categoryKey(category string) string {
	fields := strings.FieldsFunc(category, func(r rune) bool {
		return r == ':' || r == '&' || r == ' '
	})
	if len(fields) == 0 {
		return ""
	}
	return strings.ToLower(fields[0])
}

func difficultyLevel(level string) int {
	switch strings.ToLower(level) {
	case "easy":
		return 1
	case "medium":
		return 3
	case "hard":
		return MaxDifficulty
	default:
		return 0
	}
}
