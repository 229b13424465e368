package layout

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBreakpoints_Columns(t *testing.T) {
	t.Parallel()

	bp := Breakpoints{480: 2, 768: 3, 1024: 4}

	tests := []struct {
		width int
		want  int
	}{
		{768, 3},   // exact match
		{800, 3},   // falls back to next smaller breakpoint
		{1023, 3},  // just below the next breakpoint
		{1024, 4},  // exact match at the top
		{2000, 4},  // above all breakpoints uses the widest
		{320, 2},   // below all defined breakpoints -> default
		{0, 2},     // degenerate width -> default
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("width_%d", tt.width), func(t *testing.T) {
			assert.Equal(t, tt.want, bp.Columns(tt.width))
		})
	}
}

func TestEstimateHeight_Deterministic(t *testing.T) {
	t.Parallel()

	for _, id := range []string{"a", "post-42", "e7c9", ""} {
		first := EstimateHeight(id)
		for i := 0; i < 10; i++ {
			require.Equal(t, first, EstimateHeight(id))
		}
		assert.Contains(t, aspectVariants, first)
	}
}

func TestLayout_ShortestColumnPlacement(t *testing.T) {
	t.Parallel()

	// Heights chosen so placement is fully predictable.
	heights := map[string]float64{
		"a": 100, "b": 300, "c": 50, "d": 60, "e": 10,
	}
	est := func(id string) float64 { return heights[id] }

	res := Layout([]string{"a", "b", "c", "d", "e"}, 2, 8, est)

	// a -> col0 (tie, lowest index), b -> col1, c and d stack on col0
	// (100+8+50=158, then 158+8+60=226), e -> col0 (226 < 300).
	require.Len(t, res.Columns[0], 4)
	require.Len(t, res.Columns[1], 1)
	assert.Equal(t, "a", res.Columns[0][0].ID)
	assert.Equal(t, "b", res.Columns[1][0].ID)
	assert.Equal(t, "c", res.Columns[0][1].ID)
	assert.Equal(t, "d", res.Columns[0][2].ID)
	assert.Equal(t, "e", res.Columns[0][3].ID)

	// First item of each column has no top gap.
	assert.Equal(t, 0.0, res.Columns[0][0].Top)
	assert.Equal(t, 0.0, res.Columns[1][0].Top)
	assert.Equal(t, 108.0, res.Columns[0][1].Top)

	assert.Equal(t, 236.0, res.ColumnHeights[0])
	assert.Equal(t, 300.0, res.ColumnHeights[1])
}

func TestLayout_Deterministic(t *testing.T) {
	t.Parallel()

	ids := make([]string, 50)
	for i := range ids {
		ids[i] = fmt.Sprintf("post-%d", i*7)
	}

	first := Layout(ids, 3, 12, nil)
	second := Layout(ids, 3, 12, nil)
	assert.Equal(t, first, second)
}

func TestLayout_EveryItemPlacedOnce(t *testing.T) {
	t.Parallel()

	ids := make([]string, 37)
	for i := range ids {
		ids[i] = fmt.Sprintf("id-%d", i)
	}

	res := Layout(ids, 4, 10, nil)

	seen := map[string]int{}
	for _, col := range res.Columns {
		for _, p := range col {
			seen[p.ID]++
		}
	}
	require.Len(t, seen, len(ids))
	for id, n := range seen {
		assert.Equal(t, 1, n, "item %s placed %d times", id, n)
	}
}

func TestLayout_DegenerateColumns(t *testing.T) {
	t.Parallel()

	res := Layout([]string{"x", "y"}, 0, 10, nil)
	require.Len(t, res.Columns, DefaultColumns)
}
