package repository

import (
	"context"
	"fmt"
	"strings"

	sqlcgen "github.com/gokatarajesh/trivia-bank/internal/db/sqlc"
)

type questionStore interface {
	ListQuestions(ctx context.Context) ([]sqlcgen.Question, error)
	ListQuestionsByCategory(ctx context.Context, category int32) ([]sqlcgen.Question, error)
	SearchQuestions(ctx context.Context, pattern string) ([]sqlcgen.Question, error)
	ListQuizCandidates(ctx context.Context, arg sqlcgen.ListQuizCandidatesParams) ([]sqlcgen.Question, error)
	GetQuestion(ctx context.Context, id int32) (sqlcgen.Question, error)
	InsertQuestion(ctx context.Context, arg sqlcgen.InsertQuestionParams) (sqlcgen.Question, error)
	DeleteQuestion(ctx context.Context, id int32) (int64, error)
}

// QuestionRepository wraps sqlc queries for question access. Every listing is
// ordered by ascending id.
type QuestionRepository struct {
	store questionStore
}

func NewQuestionRepository(store questionStore) *QuestionRepository {
	return &QuestionRepository{store: store}
}

func (r *QuestionRepository) List(ctx context.Context) ([]sqlcgen.Question, error) {
	rows, err := r.store.ListQuestions(ctx)
	if err != nil {
		return nil, fmt.Errorf("list questions: %w", translate(err))
	}
	return rows, nil
}

func (r *QuestionRepository) ListByCategory(ctx context.Context, categoryID int32) ([]sqlcgen.Question, error) {
	rows, err := r.store.ListQuestionsByCategory(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("list questions for category %d: %w", categoryID, translate(err))
	}
	return rows, nil
}

// Search matches term as a literal, case-insensitive substring of the question text.
func (r *QuestionRepository) Search(ctx context.Context, term string) ([]sqlcgen.Question, error) {
	rows, err := r.store.SearchQuestions(ctx, "%"+escapeLike(term)+"%")
	if err != nil {
		return nil, fmt.Errorf("search questions: %w", translate(err))
	}
	return rows, nil
}

// ListCandidates returns questions of categoryID (0 means any category) whose
// ids are not in excluded.
func (r *QuestionRepository) ListCandidates(ctx context.Context, categoryID int32, excluded []int32) ([]sqlcgen.Question, error) {
	// A nil slice is sent as NULL and "id = ANY(NULL)" would drop every row.
	if excluded == nil {
		excluded = []int32{}
	}
	rows, err := r.store.ListQuizCandidates(ctx, sqlcgen.ListQuizCandidatesParams{
		CategoryID:  categoryID,
		ExcludedIds: excluded,
	})
	if err != nil {
		return nil, fmt.Errorf("list quiz candidates: %w", translate(err))
	}
	return rows, nil
}

func (r *QuestionRepository) Get(ctx context.Context, id int32) (sqlcgen.Question, error) {
	row, err := r.store.GetQuestion(ctx, id)
	if err != nil {
		return sqlcgen.Question{}, fmt.Errorf("get question %d: %w", id, translate(err))
	}
	return row, nil
}

// Insert stores a new question; the category must already exist.
func (r *QuestionRepository) Insert(ctx context.Context, params sqlcgen.InsertQuestionParams) (sqlcgen.Question, error) {
	row, err := r.store.InsertQuestion(ctx, params)
	if err != nil {
		return sqlcgen.Question{}, fmt.Errorf("insert question: %w", translate(err))
	}
	return row, nil
}

// Delete removes a question, returning ErrNotFound when no row matched.
func (r *QuestionRepository) Delete(ctx context.Context, id int32) error {
	affected, err := r.store.DeleteQuestion(ctx, id)
	if err != nil {
		return fmt.Errorf("delete question %d: %w", id, translate(err))
	}
	if affected == 0 {
		return fmt.Errorf("delete question %d: %w", id, ErrNotFound)
	}
	return nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(term string) string {
	return likeEscaper.Replace(term)
}
