// Package pagination provides the page/limit envelope shared by every
// list-returning operation.
package pagination

// Defaults and bounds for list queries.
const (
	DefaultPage  = 1
	DefaultLimit = 20
	MaxLimit     = 50
)

// Params are the normalized page/limit of a list request.
type Params struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

// Normalize clamps page to >= 1 and limit into [1, MaxLimit], applying the
// defaults for zero values.
func Normalize(page, limit int) Params {
	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return Params{Page: page, Limit: limit}
}

// Offset returns the index of the first item on the page.
func (p Params) Offset() int {
	return (p.Page - 1) * p.Limit
}

// Envelope describes one page of a list result.
type Envelope struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

// NewEnvelope computes the envelope for a list of total items. TotalPages is
// at least 1 even for an empty list.
func NewEnvelope(p Params, total int) Envelope {
	pages := (total + p.Limit - 1) / p.Limit
	if pages < 1 {
		pages = 1
	}
	return Envelope{
		Page:       p.Page,
		Limit:      p.Limit,
		Total:      total,
		TotalPages: pages,
	}
}

// Bounds returns the [start, end) slice indexes of the page within a list of
// n items. A page past the end yields an empty range.
func (p Params) Bounds(n int) (start, end int) {
	start = p.Offset()
	if start > n {
		start = n
	}
	end = start + p.Limit
	if end > n {
		end = n
	}
	return start, end
}

// SlicePage cuts one page out of the full ordered list.
func SlicePage[T any](items []T, p Params) []T {
	start, end := p.Bounds(len(items))
	return items[start:end]
}
