package repository

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	sqlcgen "github.com/gokatarajesh/trivia-bank/internal/db/sqlc"
)

type mockCategoryStore struct {
	mock.Mock
}

func (m *mockCategoryStore) ListCategories(ctx context.Context) ([]sqlcgen.Category, error) {
	args := m.Called(ctx)
	return args.Get(0).([]sqlcgen.Category), args.Error(1)
}

func (m *mockCategoryStore) GetCategory(ctx context.Context, id int32) (sqlcgen.Category, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(sqlcgen.Category), args.Error(1)
}

func TestCategoryRepository_List(t *testing.T) {
	store := new(mockCategoryStore)
	repo := NewCategoryRepository(store)

	expect := []sqlcgen.Category{{ID: 1, Type: "Science"}, {ID: 3, Type: "Geography"}}
	store.On("ListCategories", mock.Anything).Return(expect, nil)

	got, err := repo.List(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, expect, got)
	store.AssertExpectations(t)
}

func TestCategoryRepository_GetUnknown(t *testing.T) {
	store := new(mockCategoryStore)
	repo := NewCategoryRepository(store)

	store.On("GetCategory", mock.Anything, int32(9)).Return(sqlcgen.Category{}, pgx.ErrNoRows)

	_, err := repo.Get(context.Background(), 9)
	assert.ErrorIs(t, err, ErrNotFound)
}
