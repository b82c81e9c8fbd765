package question

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/gokatarajesh/trivia-bank/internal/db/repository"
	sqlcgen "github.com/gokatarajesh/trivia-bank/internal/db/sqlc"
)

// QuestionStore is the persistence contract for questions. Listings are
// ordered by ascending id.
type QuestionStore interface {
	List(ctx context.Context) ([]sqlcgen.Question, error)
	ListByCategory(ctx context.Context, categoryID int32) ([]sqlcgen.Question, error)
	Search(ctx context.Context, term string) ([]sqlcgen.Question, error)
	ListCandidates(ctx context.Context, categoryID int32, excluded []int32) ([]sqlcgen.Question, error)
	Get(ctx context.Context, id int32) (sqlcgen.Question, error)
	Insert(ctx context.Context, params sqlcgen.InsertQuestionParams) (sqlcgen.Question, error)
	Delete(ctx context.Context, id int32) error
}

// CategoryStore is the persistence contract for categories.
type CategoryStore interface {
	List(ctx context.Context) ([]sqlcgen.Category, error)
	Get(ctx context.Context, id int32) (sqlcgen.Category, error)
}

// ServiceOptions tunes paging, search and quiz randomness.
type ServiceOptions struct {
	PageSize int
	// EmptySearchMatchesAll makes a blank search term return every question
	// instead of none.
	EmptySearchMatchesAll bool
	Random                RandomSource
}

// Service resolves listing, search, category browsing and quiz queries
// against the stores.
type Service struct {
	questions      QuestionStore
	categories     CategoryStore
	selector       *Selector
	pageSize       int
	emptySearchAll bool
}

func NewService(questions QuestionStore, categories CategoryStore, opts ServiceOptions) *Service {
	pageSize := opts.PageSize
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &Service{
		questions:      questions,
		categories:     categories,
		selector:       NewSelector(opts.Random),
		pageSize:       pageSize,
		emptySearchAll: opts.EmptySearchMatchesAll,
	}
}

// PageSize reports the configured page size.
func (s *Service) PageSize() int { return s.pageSize }

// Categories returns every category keyed by id.
func (s *Service) Categories(ctx context.Context) (CategoryList, error) {
	categories, err := s.categoryMap(ctx)
	if err != nil {
		return CategoryList{}, internal("list categories", err)
	}
	return CategoryList{Categories: categories, Total: len(categories)}, nil
}

// ListQuestions returns one page of all questions. An empty page is NotFound.
func (s *Service) ListQuestions(ctx context.Context, page int) (QuestionPage, error) {
	const op = "list questions"
	rows, err := s.questions.List(ctx)
	if err != nil {
		return QuestionPage{}, internal(op, err)
	}
	current := Paginate(toDomainList(rows), page, s.pageSize)
	if len(current) == 0 {
		return QuestionPage{}, notFound(op, fmt.Sprintf("page %d is empty", page), nil)
	}
	categories, err := s.categoryMap(ctx)
	if err != nil {
		return QuestionPage{}, internal(op, err)
	}
	return QuestionPage{
		Questions:  current,
		Total:      len(rows),
		Categories: categories,
	}, nil
}

// QuestionsByCategory returns one page of a category's questions. An unknown
// category is a BadRequest; an empty page is a valid result.
func (s *Service) QuestionsByCategory(ctx context.Context, categoryID, page int) (QuestionPage, error) {
	const op = "list category questions"
	category, err := s.lookupCategory(ctx, op, categoryID)
	if err != nil {
		return QuestionPage{}, err
	}
	rows, err := s.questions.ListByCategory(ctx, category.ID)
	if err != nil {
		return QuestionPage{}, internal(op, err)
	}
	return QuestionPage{
		Questions:       Paginate(toDomainList(rows), page, s.pageSize),
		Total:           len(rows),
		CurrentCategory: category.Type,
	}, nil
}

// SearchQuestions returns one page of questions whose text contains term.
// No matches is a successful, empty result.
func (s *Service) SearchQuestions(ctx context.Context, term string, page int) (QuestionPage, error) {
	const op = "search questions"
	if isBlank(term) && !s.emptySearchAll {
		return QuestionPage{Questions: []Question{}}, nil
	}
	var (
		rows []sqlcgen.Question
		err  error
	)
	if isBlank(term) {
		rows, err = s.questions.List(ctx)
	} else {
		rows, err = s.questions.Search(ctx, term)
	}
	if err != nil {
		return QuestionPage{}, internal(op, err)
	}
	return QuestionPage{
		Questions: Paginate(toDomainList(rows), page, s.pageSize),
		Total:     len(rows),
	}, nil
}

// GetQuestion looks up a single question.
func (s *Service) GetQuestion(ctx context.Context, id int) (Question, error) {
	const op = "get question"
	key, ok := storeID(id)
	if !ok {
		return Question{}, notFound(op, fmt.Sprintf("question %d does not exist", id), nil)
	}
	row, err := s.questions.Get(ctx, key)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return Question{}, notFound(op, fmt.Sprintf("question %d does not exist", id), err)
		}
		return Question{}, internal(op, err)
	}
	return toDomain(row), nil
}

// CreateQuestion validates and stores a question. The referenced category
// must exist.
func (s *Service) CreateQuestion(ctx context.Context, in NewQuestion) (Question, error) {
	const op = "create question"
	in.Text = strings.TrimSpace(in.Text)
	in.Answer = strings.TrimSpace(in.Answer)
	if err := validateNewQuestion(op, in); err != nil {
		return Question{}, err
	}
	row, err := s.questions.Insert(ctx, sqlcgen.InsertQuestionParams{
		Question:   in.Text,
		Answer:     in.Answer,
		Category:   int32(in.CategoryID),
		Difficulty: int32(in.Difficulty),
	})
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrUnknownCategory):
			return Question{}, unprocessable(op, "category", fmt.Sprintf("category %d does not exist", in.CategoryID), err)
		case errors.Is(err, repository.ErrInvalidQuestion):
			return Question{}, unprocessable(op, "", "question rejected by store", err)
		default:
			return Question{}, unprocessable(op, "", "question could not be stored", err)
		}
	}
	return toDomain(row), nil
}

// DeleteQuestion removes a question; a missing id is NotFound.
func (s *Service) DeleteQuestion(ctx context.Context, id int) error {
	const op = "delete question"
	key, ok := storeID(id)
	if !ok {
		return notFound(op, fmt.Sprintf("question %d does not exist", id), nil)
	}
	if err := s.questions.Delete(ctx, key); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound(op, fmt.Sprintf("question %d does not exist", id), err)
		}
		return unprocessable(op, "", "question could not be deleted", err)
	}
	return nil
}

// NextQuizQuestion picks an unseen question from the requested category, or
// from all categories for AnyCategory. A nil question means the quiz is
// exhausted, which is not an error.
func (s *Service) NextQuizQuestion(ctx context.Context, req QuizRequest) (*Question, error) {
	const op = "next quiz question"
	if req.CategoryID != AnyCategory {
		if _, err := s.lookupCategory(ctx, op, req.CategoryID); err != nil {
			return nil, err
		}
	}
	// Ids outside the store's range cannot name a question, so they exclude nothing.
	excluded := make([]int32, 0, len(req.PreviousQuestions))
	for _, id := range req.PreviousQuestions {
		if key, ok := storeID(id); ok {
			excluded = append(excluded, key)
		}
	}
	rows, err := s.questions.ListCandidates(ctx, int32(req.CategoryID), excluded)
	if err != nil {
		return nil, internal(op, err)
	}
	picked := s.selector.Pick(toDomainList(rows), req.CategoryID, req.PreviousQuestions)
	observeQuizSelection(picked)
	return picked, nil
}

func (s *Service) lookupCategory(ctx context.Context, op string, id int) (sqlcgen.Category, error) {
	key, ok := storeID(id)
	if !ok || key <= 0 {
		return sqlcgen.Category{}, badRequest(op, "category", fmt.Sprintf("category %d does not exist", id), nil)
	}
	category, err := s.categories.Get(ctx, key)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return sqlcgen.Category{}, badRequest(op, "category", fmt.Sprintf("category %d does not exist", id), err)
		}
		return sqlcgen.Category{}, internal(op, err)
	}
	return category, nil
}

func (s *Service) categoryMap(ctx context.Context) (CategoryMap, error) {
	rows, err := s.categories.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make(CategoryMap, len(rows))
	for _, row := range rows {
		out[int(row.ID)] = row.Type
	}
	return out, nil
}

// storeID narrows an API id to the int32 column type, reporting false when it
// does not fit.
func storeID(id int) (int32, bool) {
	if id < math.MinInt32 || id > math.MaxInt32 {
		return 0, false
	}
	return int32(id), true
}

func toDomain(row sqlcgen.Question) Question {
	return Question{
		ID:         int(row.ID),
		Text:       row.Question,
		Answer:     row.Answer,
		CategoryID: int(row.Category),
		Difficulty: int(row.Difficulty),
	}
}

func toDomainList(rows []sqlcgen.Question) []Question {
	out := make([]Question, len(rows))
	for i, row := range rows {
		out[i] = toDomain(row)
	}
	return out
}
