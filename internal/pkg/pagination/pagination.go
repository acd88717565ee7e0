// Package pagination windows an in-memory listing for API responses.
package pagination

const (
	DefaultPage    = 1
	DefaultPerPage = 100
	MaxPerPage     = 1000
)

type Params struct {
	Page    int
	PerPage int
}

// NewParams clamps page and perPage into their valid ranges.
func NewParams(page, perPage int) Params {
	switch {
	case perPage < 1:
		perPage = DefaultPerPage
	case perPage > MaxPerPage:
		perPage = MaxPerPage
	}
	return Params{Page: max(page, DefaultPage), PerPage: perPage}
}

type Info struct {
	Page       int  `json:"page"`
	PerPage    int  `json:"per_page"`
	TotalItems int  `json:"total_items"`
	TotalPages int  `json:"total_pages"`
	HasNext    bool `json:"has_next"`
	HasPrev    bool `json:"has_prev"`
}

// Slice returns the page of items selected by p in listing order. A page
// past the end is empty; an empty listing still reports one page.
func Slice[T any](items []T, p Params) ([]T, *Info) {
	total := len(items)
	pages := max((total+p.PerPage-1)/p.PerPage, 1)

	start := total
	if p.Page >= 1 && p.Page-1 < pages {
		start = min((p.Page-1)*p.PerPage, total)
	}
	end := min(start+p.PerPage, total)

	return items[start:end], &Info{
		Page:       p.Page,
		PerPage:    p.PerPage,
		TotalItems: total,
		TotalPages: pages,
		HasNext:    p.Page < pages,
		HasPrev:    p.Page > 1,
	}
}
