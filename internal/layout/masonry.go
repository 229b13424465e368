// Package layout implements the responsive waterfall (masonry) feed layout:
// greedy shortest-column placement with deterministic per-item height
// estimation, so re-renders never jitter.
package layout

// DefaultColumns is used when no breakpoint covers the viewport width.
const DefaultColumns = 2

// Breakpoints maps a viewport width to a column count. Resolution picks the
// exact width if defined, otherwise the widest defined breakpoint that is
// still smaller, otherwise DefaultColumns.
type Breakpoints map[int]int

// DefaultBreakpoints mirrors the standard responsive grid of the feed.
var DefaultBreakpoints = Breakpoints{
	480:  2,
	768:  3,
	1024: 4,
	1440: 5,
}

// Columns resolves the column count for the given viewport width.
func (b Breakpoints) Columns(width int) int {
	if cols, ok := b[width]; ok && cols > 0 {
		return cols
	}
	best, cols := -1, 0
	for w, c := range b {
		if w < width && w > best && c > 0 {
			best, cols = w, c
		}
	}
	if best < 0 {
		return DefaultColumns
	}
	return cols
}

// aspectVariants is the fixed discrete set of card height variants the
// estimator indexes into. Values are heights at unit column width.
var aspectVariants = []float64{220, 260, 300, 340, 380}

// heightSeed derives a stable pseudo-random seed from an item id by summing
// its character codes. The same id always yields the same seed, across
// renders and across column recomputation.
func heightSeed(id string) int {
	sum := 0
	for _, r := range id {
		sum += int(r)
	}
	if sum < 0 {
		sum = -sum
	}
	return sum
}

// EstimateHeight returns the deterministic estimated card height for an item
// id.
func EstimateHeight(id string) float64 {
	return aspectVariants[heightSeed(id)%len(aspectVariants)]
}

// Estimator computes a card height for an item id. Implementations must be
// deterministic given the same id.
type Estimator func(id string) float64

// Placement records where one item landed.
type Placement struct {
	ID     string  `json:"id"`
	Index  int     `json:"index"`
	Column int     `json:"column"`
	Top    float64 `json:"top"`
	Height float64 `json:"height"`
}

// Result is the outcome of a layout pass.
type Result struct {
	Columns       [][]Placement `json:"columns"`
	ColumnHeights []float64     `json:"column_heights"`
}

// Layout assigns items to columns with greedy shortest-column placement: each
// item, in input order, lands in the column with the smallest accumulated
// height, ties broken by lowest column index. The pass is single, O(n*cols),
// and never rebalances after placement. A nil estimator uses EstimateHeight.
func Layout(ids []string, columns int, gap float64, estimate Estimator) Result {
	if columns < 1 {
		columns = DefaultColumns
	}
	if estimate == nil {
		estimate = EstimateHeight
	}

	res := Result{
		Columns:       make([][]Placement, columns),
		ColumnHeights: make([]float64, columns),
	}

	for i, id := range ids {
		col := 0
		for c := 1; c < columns; c++ {
			if res.ColumnHeights[c] < res.ColumnHeights[col] {
				col = c
			}
		}

		top := res.ColumnHeights[col]
		if len(res.Columns[col]) > 0 {
			// No top gap for a column's first item.
			top += gap
		}

		h := estimate(id)
		res.Columns[col] = append(res.Columns[col], Placement{
			ID:     id,
			Index:  i,
			Column: col,
			Top:    top,
			Height: h,
		})
		res.ColumnHeights[col] = top + h
	}

	return res
}
