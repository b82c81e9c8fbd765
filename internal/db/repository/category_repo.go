package repository

import (
	"context"
	"fmt"

	sqlcgen "github.com/gokatarajesh/trivia-bank/internal/db/sqlc"
)

type categoryStore interface {
	ListCategories(ctx context.Context) ([]sqlcgen.Category, error)
	GetCategory(ctx context.Context, id int32) (sqlcgen.Category, error)
}

// CategoryRepository exposes read-only category lookups.
type CategoryRepository struct {
	store categoryStore
}

func NewCategoryRepository(store categoryStore) *CategoryRepository {
	return &CategoryRepository{store: store}
}

// List returns every category ordered by id.
func (r *CategoryRepository) List(ctx context.Context) ([]sqlcgen.Category, error) {
	rows, err := r.store.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", translate(err))
	}
	return rows, nil
}

// Get returns ErrNotFound when the id is unknown.
func (r *CategoryRepository) Get(ctx context.Context, id int32) (sqlcgen.Category, error) {
	row, err := r.store.GetCategory(ctx, id)
	if err != nil {
		return sqlcgen.Category{}, fmt.Errorf("get category %d: %w", id, translate(err))
	}
	return row, nil
}
