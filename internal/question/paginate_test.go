package question

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaginate(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19}

	assert.Equal(t, items[:10], Paginate(items, 1, 10))
	assert.Equal(t, items[10:], Paginate(items, 2, 10))
	assert.Empty(t, Paginate(items, 3, 10))
	assert.NotNil(t, Paginate(items, 3, 10))
	assert.Empty(t, Paginate(items, 0, 10))
	assert.Empty(t, Paginate([]int{}, 1, 10))
}

func TestPaginateHugePageDoesNotOverflow(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19}

	assert.NotPanics(t, func() {
		assert.Empty(t, Paginate(items, math.MaxInt, 10))
		assert.Empty(t, Paginate(items, math.MaxInt/10+2, 10))
		assert.Empty(t, Paginate(items, math.MaxInt, math.MaxInt))
	})
	assert.Equal(t, items, Paginate(items, 1, math.MaxInt))
}

func TestPaginateDoesNotAliasAppends(t *testing.T) {
	items := []int{1, 2, 3, 4}
	page := Paginate(items, 1, 2)
	page = append(page, 99)

	assert.Equal(t, []int{1, 2, 99}, page)
	assert.Equal(t, []int{1, 2, 3, 4}, items)
}

func TestParsePage(t *testing.T) {
	cases := []struct {
		raw     string
		want    int
		wantErr bool
	}{
		{"", 1, false},
		{"2", 2, false},
		{" 3 ", 3, false},
		{"abc", 1, false},
		{"0", 0, true},
		{"-4", 0, true},
		{"9223372036854775807", 9223372036854775807, false},
	}
	for _, tc := range cases {
		t.Run(tc.raw, func(t *testing.T) {
			got, err := ParsePage(tc.raw)
			if tc.wantErr {
				require.Error(t, err)
				assert.Equal(t, KindBadRequest, KindOf(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}
