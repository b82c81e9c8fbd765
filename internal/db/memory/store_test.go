package memory

import (
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gokatarajesh/trivia-bank/internal/db/repository"
	sqlcgen "github.com/gokatarajesh/trivia-bank/internal/db/sqlc"
)

func containsFold(text, term string) bool {
	return strings.Contains(strings.ToLower(text), strings.ToLower(term))
}

func ids(rows []sqlcgen.Question) []int32 {
	out := make([]int32, len(rows))
	for i, r := range rows {
		out[i] = r.ID
	}
	return out
}

func TestStore_ListIsOrderedByID(t *testing.T) {
	s := NewSeeded(containsFold)

	rows, err := s.Questions().List(context.Background())
	require.NoError(t, err)
	assert.Len(t, rows, 19)
	assert.IsIncreasing(t, ids(rows))
}

func TestStore_ListByCategory(t *testing.T) {
	s := NewSeeded(containsFold)

	rows, err := s.Questions().ListByCategory(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, []int32{13, 14, 15}, ids(rows))
}

func TestStore_SearchUsesMatcher(t *testing.T) {
	s := NewSeeded(containsFold)

	rows, err := s.Questions().Search(context.Background(), "africa")
	require.NoError(t, err)
	assert.Equal(t, []int32{13}, ids(rows))
}

func TestStore_ListCandidates(t *testing.T) {
	s := NewSeeded(containsFold)
	qs := s.Questions()

	rows, err := qs.ListCandidates(context.Background(), 3, []int32{13, 15})
	require.NoError(t, err)
	assert.Equal(t, []int32{14}, ids(rows))

	rows, err = qs.ListCandidates(context.Background(), 0, nil)
	require.NoError(t, err)
	assert.Len(t, rows, 19)
}

func TestStore_InsertRejectsUnknownCategory(t *testing.T) {
	s := NewSeeded(containsFold)

	_, err := s.Questions().Insert(context.Background(), sqlcgen.InsertQuestionParams{
		Question: "Q", Answer: "A", Category: 42,
	})
	assert.ErrorIs(t, err, repository.ErrUnknownCategory)
}

func TestStore_InsertAssignsIncreasingIDs(t *testing.T) {
	s := NewSeeded(containsFold)
	qs := s.Questions()

	first, err := qs.Insert(context.Background(), sqlcgen.InsertQuestionParams{Question: "Q1", Answer: "A", Category: 1})
	require.NoError(t, err)
	second, err := qs.Insert(context.Background(), sqlcgen.InsertQuestionParams{Question: "Q2", Answer: "A", Category: 1})
	require.NoError(t, err)

	assert.Equal(t, int32(24), first.ID)
	assert.Equal(t, int32(25), second.ID)

	got, err := qs.Get(context.Background(), second.ID)
	require.NoError(t, err)
	assert.Equal(t, second, got)
}

func TestStore_Delete(t *testing.T) {
	s := NewSeeded(containsFold)
	qs := s.Questions()

	require.NoError(t, qs.Delete(context.Background(), 2))
	_, err := qs.Get(context.Background(), 2)
	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.ErrorIs(t, qs.Delete(context.Background(), 2), repository.ErrNotFound)
}

func TestStore_Categories(t *testing.T) {
	s := NewSeeded(containsFold)

	rows, err := s.Categories().List(context.Background())
	require.NoError(t, err)
	assert.Len(t, rows, 6)
	assert.Equal(t, "Science", rows[0].Type)

	row, err := s.Categories().Get(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, "Geography", row.Type)

	_, err = s.Categories().Get(context.Background(), 9)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestStore_ConcurrentInsertsGetUniqueIDs(t *testing.T) {
	s := NewStore(containsFold)
	s.Seed([]sqlcgen.Category{{ID: 1, Type: "Science"}}, nil)
	qs := s.Questions()

	const writers = 20
	var wg sync.WaitGroup
	got := make(chan int32, writers)
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			row, err := qs.Insert(context.Background(), sqlcgen.InsertQuestionParams{Question: "Q", Answer: "A", Category: 1})
			if err == nil {
				got <- row.ID
			}
		}()
	}
	wg.Wait()
	close(got)

	seen := map[int32]bool{}
	for id := range got {
		assert.False(t, seen[id], "duplicate id %d", id)
		seen[id] = true
	}
	assert.Len(t, seen, writers)
}
