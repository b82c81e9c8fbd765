package question

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gokatarajesh/trivia-bank/internal/db/memory"
	"github.com/gokatarajesh/trivia-bank/internal/question/external"
)

type stubFetcher struct {
	batch []external.OpenTDBQuestion
	err   error
	got   external.FetchOptions
}

func (s *stubFetcher) Fetch(_ context.Context, opts external.FetchOptions) ([]external.OpenTDBQuestion, error) {
	s.got = opts
	return s.batch, s.err
}

func TestImporter_Import(t *testing.T) {
	store := memory.NewSeeded(ContainsFold)
	svc := NewService(store.Questions(), store.Categories(), ServiceOptions{})
	fetcher := &stubFetcher{batch: []external.OpenTDBQuestion{
		{Category: "Science & Nature", Difficulty: "easy", Question: "What gas do plants absorb?", CorrectAnswer: "Carbon dioxide"},
		{Category: "Entertainment: Film", Difficulty: "hard", Question: "Who directed Jaws?", CorrectAnswer: "Steven Spielberg"},
		{Category: "Mythology", Difficulty: "medium", Question: "Who is the Norse god of thunder?", CorrectAnswer: "Thor"},
		{Category: "History", Difficulty: "medium", Question: "   ", CorrectAnswer: "nobody"},
	}}

	report, err := NewImporter(svc, fetcher, zerolog.Nop()).Import(context.Background(), external.FetchOptions{Amount: 4})
	require.NoError(t, err)

	assert.Equal(t, ImportReport{Fetched: 4, Imported: 2, Skipped: 1, Failed: 1}, report)
	assert.Equal(t, 4, fetcher.got.Amount)

	page, err := svc.SearchQuestions(context.Background(), "Jaws", 1)
	require.NoError(t, err)
	require.Len(t, page.Questions, 1)
	assert.Equal(t, 5, page.Questions[0].CategoryID)
	assert.Equal(t, MaxDifficulty, page.Questions[0].Difficulty)
}

func TestImporter_FetchError(t *testing.T) {
	store := memory.NewSeeded(ContainsFold)
	svc := NewService(store.Questions(), store.Categories(), ServiceOptions{})

	_, err := NewImporter(svc, &stubFetcher{err: external.ErrRateLimited}, zerolog.Nop()).
		Import(context.Background(), external.FetchOptions{Amount: 1})
	require.Error(t, err)
	assert.True(t, errors.Is(err, external.ErrRateLimited))
}

func TestCategoryKey(t *testing.T) {
	assert.Equal(t, "entertainment", categoryKey("Entertainment: Video Games"))
	assert.Equal(t, "science", categoryKey("Science & Nature"))
	assert.Equal(t, "geography", categoryKey("Geography"))
	assert.Equal(t, "", categoryKey(""))
}

func TestDifficultyLevel(t *testing.T) {
	assert.Equal(t, 1, difficultyLevel("easy"))
	assert.Equal(t, 3, difficultyLevel("Medium"))
	assert.Equal(t, MaxDifficulty, difficultyLevel("hard"))
	assert.Equal(t, 0, difficultyLevel(""))
}
