package question

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedSource int

func (f fixedSource) IntN(n int) int { return int(f) % n }

func samplePool() []Question {
	return []Question{
		{ID: 5, CategoryID: 4},
		{ID: 9, CategoryID: 4},
		{ID: 12, CategoryID: 4},
		{ID: 13, CategoryID: 3},
		{ID: 14, CategoryID: 3},
		{ID: 15, CategoryID: 3},
		{ID: 23, CategoryID: 4},
	}
}

func TestSelectorPickRespectsCategoryAndExclusions(t *testing.T) {
	sel := NewSelector(rand.New(rand.NewPCG(7, 11)))

	for i := 0; i < 50; i++ {
		q := sel.Pick(samplePool(), 4, []int{5, 12})
		require.NotNil(t, q)
		assert.Equal(t, 4, q.CategoryID)
		assert.NotContains(t, []int{5, 12}, q.ID)
	}
}

func TestSelectorPickExhausted(t *testing.T) {
	sel := NewSelector(fixedSource(0))

	assert.Nil(t, sel.Pick(samplePool(), 3, []int{13, 14, 15}))
	assert.Nil(t, sel.Pick(nil, AnyCategory, nil))
}

func TestSelectorPickAnyCategoryUsesWholePool(t *testing.T) {
	pool := samplePool()
	sel := NewSelector(fixedSource(len(pool) - 1))

	q := sel.Pick(pool, AnyCategory, nil)
	require.NotNil(t, q)
	assert.Equal(t, 23, q.ID)
}

func TestSelectorPickIsRoughlyUniform(t *testing.T) {
	sel := NewSelector(rand.New(rand.NewPCG(1, 2)))
	counts := map[int]int{}

	const draws = 3000
	for i := 0; i < draws; i++ {
		q := sel.Pick(samplePool(), 3, nil)
		require.NotNil(t, q)
		counts[q.ID]++
	}

	require.Len(t, counts, 3)
	for id, n := range counts {
		assert.InDelta(t, draws/3, n, draws/10, "question %d drawn %d times", id, n)
	}
}

func TestSelectorNilSourceFallsBackToGlobal(t *testing.T) {
	q := NewSelector(nil).Pick(samplePool(), 3, []int{13, 14})
	require.NotNil(t, q)
	assert.Equal(t, 15, q.ID)
}
