// Package memory is an in-process implementation of the question and category
// stores. It backs STORE_BACKEND=memory and the package tests of its callers.
package memory

import (
	"context"
	"fmt"
	"slices"
	"sort"
	"sync"

	"github.com/gokatarajesh/trivia-bank/internal/db/repository"
	sqlcgen "github.com/gokatarajesh/trivia-bank/internal/db/sqlc"
)

// MatchFunc reports whether text satisfies a search term.
type MatchFunc func(text, term string) bool

// Store holds categories and questions behind a single RWMutex so readers run
// concurrently and each insert/delete is atomic.
type Store struct {
	mu         sync.RWMutex
	categories map[int32]sqlcgen.Category
	questions  map[int32]sqlcgen.Question
	nextID     int32
	match      MatchFunc
}

// NewStore builds an empty store that filters searches with match.
func NewStore(match MatchFunc) *Store {
	return &Store{
		categories: make(map[int32]sqlcgen.Category),
		questions:  make(map[int32]sqlcgen.Question),
		nextID:     1,
		match:      match,
	}
}

// Seed loads categories and questions keeping their ids; later inserts get
// ids above the largest seeded one.
func (s *Store) Seed(categories []sqlcgen.Category, questions []sqlcgen.Question) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range categories {
		s.categories[c.ID] = c
	}
	for _, q := range questions {
		s.questions[q.ID] = q
		if q.ID >= s.nextID {
			s.nextID = q.ID + 1
		}
	}
}

// Questions returns the question store view.
func (s *Store) Questions() *QuestionStore { return &QuestionStore{s: s} }

// Categories returns the category store view.
func (s *Store) Categories() *CategoryStore { return &CategoryStore{s: s} }

// Ping always succeeds; it mirrors the pool health check.
func (s *Store) Ping(context.Context) error { return nil }

// collect returns the questions accepted by keep, ordered by id. Callers hold the read lock.
func (s *Store) collect(keep func(sqlcgen.Question) bool) []sqlcgen.Question {
	out := make([]sqlcgen.Question, 0, len(s.questions))
	for _, q := range s.questions {
		if keep(q) {
			out = append(out, q)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// QuestionStore exposes question operations of a Store.
type QuestionStore struct {
	s *Store
}

func (q *QuestionStore) List(_ context.Context) ([]sqlcgen.Question, error) {
	q.s.mu.RLock()
	defer q.s.mu.RUnlock()
	return q.s.collect(func(sqlcgen.Question) bool { return true }), nil
}

func (q *QuestionStore) ListByCategory(_ context.Context, categoryID int32) ([]sqlcgen.Question, error) {
	q.s.mu.RLock()
	defer q.s.mu.RUnlock()
	return q.s.collect(func(row sqlcgen.Question) bool { return row.Category == categoryID }), nil
}

func (q *QuestionStore) Search(_ context.Context, term string) ([]sqlcgen.Question, error) {
	q.s.mu.RLock()
	defer q.s.mu.RUnlock()
	return q.s.collect(func(row sqlcgen.Question) bool { return q.s.match(row.Question, term) }), nil
}

func (q *QuestionStore) ListCandidates(_ context.Context, categoryID int32, excluded []int32) ([]sqlcgen.Question, error) {
	q.s.mu.RLock()
	defer q.s.mu.RUnlock()
	return q.s.collect(func(row sqlcgen.Question) bool {
		if categoryID != 0 && row.Category != categoryID {
			return false
		}
		return !slices.Contains(excluded, row.ID)
	}), nil
}

func (q *QuestionStore) Get(_ context.Context, id int32) (sqlcgen.Question, error) {
	q.s.mu.RLock()
	defer q.s.mu.RUnlock()
	row, ok := q.s.questions[id]
	if !ok {
		return sqlcgen.Question{}, fmt.Errorf("get question %d: %w", id, repository.ErrNotFound)
	}
	return row, nil
}

func (q *QuestionStore) Insert(_ context.Context, params sqlcgen.InsertQuestionParams) (sqlcgen.Question, error) {
	q.s.mu.Lock()
	defer q.s.mu.Unlock()
	if _, ok := q.s.categories[params.Category]; !ok {
		return sqlcgen.Question{}, fmt.Errorf("insert question: %w", repository.ErrUnknownCategory)
	}
	row := sqlcgen.Question{
		ID:         q.s.nextID,
		Question:   params.Question,
		Answer:     params.Answer,
		Category:   params.Category,
		Difficulty: params.Difficulty,
	}
	q.s.questions[row.ID] = row
	q.s.nextID++
	return row, nil
}

func (q *QuestionStore) Delete(_ context.Context, id int32) error {
	q.s.mu.Lock()
	defer q.s.mu.Unlock()
	if _, ok := q.s.questions[id]; !ok {
		return fmt.Errorf("delete question %d: %w", id, repository.ErrNotFound)
	}
	delete(q.s.questions, id)
	return nil
}

// CategoryStore exposes category lookups of a Store.
type CategoryStore struct {
	s *Store
}

func (c *CategoryStore) List(_ context.Context) ([]sqlcgen.Category, error) {
	c.s.mu.RLock()
	defer c.s.mu.RUnlock()
	out := make([]sqlcgen.Category, 0, len(c.s.categories))
	for _, row := range c.s.categories {
		out = append(out, row)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (c *CategoryStore) Get(_ context.Context, id int32) (sqlcgen.Category, error) {
	c.s.mu.RLock()
	defer c.s.mu.RUnlock()
	row, ok := c.s.categories[id]
	if !ok {
		return sqlcgen.Category{}, fmt.Errorf("get category %d: %w", id, repository.ErrNotFound)
	}
	return row, nil
}
