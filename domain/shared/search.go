package shared

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/spf13/cast"
)

// SortDirection orders search results.
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// ParseSortDirection returns SortDesc for any casing of "desc" and SortAsc otherwise.
func ParseSortDirection(dir string) SortDirection {
	if strings.EqualFold(strings.TrimSpace(dir), string(SortDesc)) {
		return SortDesc
	}
	return SortAsc
}

const (
	DefaultPage    = 1
	DefaultPerPage = 15
)

// SearchInput is the raw, unvalidated search request. Page and PerPage accept
// anything a caller may have parsed from a query string (ints, floats,
// numeric strings, nil).
type SearchInput[F comparable] struct {
	Page    any
	PerPage any
	Sort    string
	SortDir string
	Filter  *F
}

// SearchParams is a normalized search request. It is a value object: two
// params are Equal when every field matches.
type SearchParams[F comparable] struct {
	page    int
	perPage int
	sort    string
	sortDir SortDirection
	filter  *F
}

// NewSearchParams normalizes in. Page and PerPage values that are missing,
// non-numeric, fractional or not positive fall back to their defaults instead
// of failing.
func NewSearchParams[F comparable](in SearchInput[F]) SearchParams[F] {
	p := SearchParams[F]{
		page:    positiveIntOr(in.Page, DefaultPage),
		perPage: positiveIntOr(in.PerPage, DefaultPerPage),
		sort:    strings.TrimSpace(in.Sort),
		sortDir: ParseSortDirection(in.SortDir),
	}
	if in.Filter != nil {
		f := *in.Filter
		p.filter = &f
	}
	return p
}

// DefaultSearchParams is page 1, 15 per page, no sort, no filter.
func DefaultSearchParams[F comparable]() SearchParams[F] {
	return NewSearchParams(SearchInput[F]{})
}

func positiveIntOr(value any, fallback int) int {
	if value == nil {
		return fallback
	}
	f, err := cast.ToFloat64E(value)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return fallback
	}
	if f <= 0 || f != math.Trunc(f) || f > math.MaxInt32 {
		return fallback
	}
	return int(f)
}

func (p SearchParams[F]) Page() int              { return p.page }
func (p SearchParams[F]) PerPage() int           { return p.perPage }
func (p SearchParams[F]) Sort() string           { return p.sort }
func (p SearchParams[F]) SortDir() SortDirection { return p.sortDir }

// Filter returns the filter and whether one was given.
func (p SearchParams[F]) Filter() (F, bool) {
	if p.filter == nil {
		var zero F
		return zero, false
	}
	return *p.filter, true
}

// Offset is the index of the first item of the requested page.
func (p SearchParams[F]) Offset() int {
	return (p.page - 1) * p.perPage
}

func (p SearchParams[F]) Equals(other ValueObject) bool {
	o, ok := other.(SearchParams[F])
	if !ok {
		return false
	}
	if p.page != o.page || p.perPage != o.perPage || p.sort != o.sort || p.sortDir != o.sortDir {
		return false
	}
	if (p.filter == nil) != (o.filter == nil) {
		return false
	}
	return p.filter == nil || *p.filter == *o.filter
}

func (p SearchParams[F]) String() string {
	filter := "<none>"
	if p.filter != nil {
		filter = fmt.Sprint(*p.filter)
	}
	return fmt.Sprintf("page=%d per_page=%d sort=%q sort_dir=%s filter=%s",
		p.page, p.perPage, p.sort, p.sortDir, filter)
}

// SearchResult is one page of a search. LastPage is derived, never stored.
type SearchResult[E any] struct {
	items       []E
	total       int
	currentPage int
	perPage     int
}

// NewSearchResult builds a page. total counts every filtered item, not only items.
func NewSearchResult[E any](items []E, total, currentPage, perPage int) SearchResult[E] {
	if items == nil {
		items = []E{}
	}
	return SearchResult[E]{
		items:       items,
		total:       total,
		currentPage: currentPage,
		perPage:     perPage,
	}
}

func (r SearchResult[E]) Items() []E       { return r.items }
func (r SearchResult[E]) Total() int       { return r.total }
func (r SearchResult[E]) CurrentPage() int { return r.currentPage }
func (r SearchResult[E]) PerPage() int     { return r.perPage }

// LastPage is ceil(total / perPage).
func (r SearchResult[E]) LastPage() int {
	if r.perPage <= 0 {
		return 0
	}
	return int(math.Ceil(float64(r.total) / float64(r.perPage)))
}

func (r SearchResult[E]) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Items       []E `json:"items"`
		Total       int `json:"total"`
		CurrentPage int `json:"current_page"`
		PerPage     int `json:"per_page"`
		LastPage    int `json:"last_page"`
	}{
		Items:       r.items,
		Total:       r.total,
		CurrentPage: r.currentPage,
		PerPage:     r.perPage,
		LastPage:    r.LastPage(),
	})
}
