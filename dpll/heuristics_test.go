package dpll

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChooseLiteral(t *testing.T) {
	cases := []struct {
		name    string
		clauses [][]int
		want    int
	}{
		{
			name:    "positive count dominates",
			clauses: [][]int{{1, 2}, {1, 3}, {-2}},
			want:    1,
		},
		{
			name:    "negative count dominates",
			clauses: [][]int{{-1, 2}, {-1, 3}, {-1}},
			want:    -1,
		},
		{
			name:    "only positive occurrences",
			clauses: [][]int{{1, 2}, {2}},
			want:    2,
		},
		{
			name:    "only negative occurrences",
			clauses: [][]int{{-3, -4}, {-3}},
			want:    -3,
		},
		{
			name:    "count tie within a side goes to the smaller id",
			clauses: [][]int{{1, 2}, {2, 1}},
			want:    1,
		},
		{
			name:    "cross-side tie, larger id is negative",
			clauses: [][]int{{1}, {-2}},
			want:    -2,
		},
		{
			name:    "cross-side tie, positive preferred when its id is larger",
			clauses: [][]int{{2}, {-1}},
			want:    2,
		},
		{
			name:    "cross-side tie on the same id prefers positive",
			clauses: [][]int{{1, 2}, {-1, -2}},
			want:    1,
		},
		{
			name:    "duplicate literals count once per clause",
			clauses: [][]int{{1, 1, 1}, {-2}, {-2, 3}},
			want:    -2,
		},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, chooseLiteral(tc.clauses), tc.name)
	}
}

// The choice only depends on the counts, so it must survive both
// repetition and clause reordering.
func TestChooseLiteralDeterministic(t *testing.T) {
	clauses := [][]int{{1, -2, 3}, {-2, 4}, {3, -2}, {-4, 1}, {1, 3}}
	want := chooseLiteral(clauses)
	for i := 0; i < 100; i++ {
		assert.Equal(t, want, chooseLiteral(clauses))
	}

	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 100; i++ {
		shuffled := make([][]int, len(clauses))
		copy(shuffled, clauses)
		rng.Shuffle(len(shuffled), func(a, b int) {
			shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
		})
		assert.Equal(t, want, chooseLiteral(shuffled))
	}
}

func TestChooseLiteralEmptyPanics(t *testing.T) {
	assert.Panics(t, func() { chooseLiteral(nil) })
}
