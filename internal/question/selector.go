package question

import "math/rand/v2"

// RandomSource yields a uniform integer in [0, n). Implementations must be
// safe for concurrent use when shared across requests.
type RandomSource interface {
	IntN(n int) int
}

type globalSource struct{}

func (globalSource) IntN(n int) int { return rand.IntN(n) }

// Selector picks quiz questions.
type Selector struct {
	src RandomSource
}

// NewSelector uses src, or the math/rand/v2 global source when src is nil.
func NewSelector(src RandomSource) *Selector {
	if src == nil {
		src = globalSource{}
	}
	return &Selector{src: src}
}

// Pick narrows pool to categoryID (unless it is AnyCategory), drops excluded
// ids and returns one of the remaining questions uniformly at random. It
// returns nil once the pool is exhausted.
func (s *Selector) Pick(pool []Question, categoryID int, excluded []int) *Question {
	skip := make(map[int]struct{}, len(excluded))
	for _, id := range excluded {
		skip[id] = struct{}{}
	}

	candidates := make([]Question, 0, len(pool))
	for _, q := range pool {
		if categoryID != AnyCategory && q.CategoryID != categoryID {
			continue
		}
		if _, seen := skip[q.ID]; seen {
			continue
		}
		candidates = append(candidates, q)
	}
	if len(candidates) == 0 {
		return nil
	}

	picked := candidates[s.src.IntN(len(candidates))]
	return &picked
}
