package memory

import (
	"cmp"
	"context"
	"slices"
	"time"

	"catalog/domain/shared"
)

// FilterFunc keeps the items matching filter. It is only called when the
// search carries a filter.
type FilterFunc[E any, F comparable] func(ctx context.Context, items []E, filter F) ([]E, error)

// SortKeyFunc returns the value of field on item, or nil if the field is unknown.
type SortKeyFunc[E any] func(item E, field string) any

// SearchConfig describes how one entity kind is searched.
type SearchConfig[E any, F comparable] struct {
	Kind           string
	SortableFields []string
	Filter         FilterFunc[E, F]
	SortKey        SortKeyFunc[E]

	// DefaultSort applies only when the search names no sort at all.
	DefaultSort    string
	DefaultSortDir shared.SortDirection
}

// SearchableRepository adds filter, sort and pagination on top of Repository.
type SearchableRepository[E Storable[E], F comparable] struct {
	*Repository[E]
	cfg SearchConfig[E, F]
}

func NewSearchableRepository[E Storable[E], F comparable](cfg SearchConfig[E, F]) *SearchableRepository[E, F] {
	return &SearchableRepository[E, F]{
		Repository: NewRepository[E](cfg.Kind),
		cfg:        cfg,
	}
}

func (r *SearchableRepository[E, F]) SortableFields() []string {
	return slices.Clone(r.cfg.SortableFields)
}

// Search filters, then sorts, then slices out the requested page. Total is the
// number of filtered items before pagination.
func (r *SearchableRepository[E, F]) Search(ctx context.Context, params shared.SearchParams[F]) (shared.SearchResult[E], error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	filtered, err := r.applyFilter(ctx, slices.Clone(r.items), params)
	if err != nil {
		return shared.SearchResult[E]{}, err
	}
	sorted := r.applySort(filtered, params.Sort(), params.SortDir())
	page := paginate(sorted, params.Offset(), params.PerPage())

	return shared.NewSearchResult(cloneAll(page), len(filtered), params.Page(), params.PerPage()), nil
}

func (r *SearchableRepository[E, F]) applyFilter(ctx context.Context, items []E, params shared.SearchParams[F]) ([]E, error) {
	filter, ok := params.Filter()
	if !ok || r.cfg.Filter == nil {
		return items, nil
	}
	return r.cfg.Filter(ctx, items, filter)
}

func (r *SearchableRepository[E, F]) applySort(items []E, sort string, dir shared.SortDirection) []E {
	if sort == "" {
		if r.cfg.DefaultSort == "" {
			return items
		}
		sort, dir = r.cfg.DefaultSort, r.cfg.DefaultSortDir
	}
	if !slices.Contains(r.cfg.SortableFields, sort) || r.cfg.SortKey == nil {
		return items
	}

	slices.SortStableFunc(items, func(a, b E) int {
		c := compareValues(r.cfg.SortKey(a, sort), r.cfg.SortKey(b, sort))
		if dir == shared.SortDesc {
			return -c
		}
		return c
	})
	return items
}

func paginate[E any](items []E, offset, limit int) []E {
	if offset >= len(items) {
		return []E{}
	}
	end := min(offset+limit, len(items))
	return items[offset:end]
}

// compareValues orders two sort keys of the same type. Strings compare by
// bytes, like a binary collation. Mixed or unsupported types compare equal.
func compareValues(a, b any) int {
	switch x := a.(type) {
	case string:
		if y, ok := b.(string); ok {
			return cmp.Compare(x, y)
		}
	case int:
		if y, ok := b.(int); ok {
			return cmp.Compare(x, y)
		}
	case int64:
		if y, ok := b.(int64); ok {
			return cmp.Compare(x, y)
		}
	case float64:
		if y, ok := b.(float64); ok {
			return cmp.Compare(x, y)
		}
	case time.Time:
		if y, ok := b.(time.Time); ok {
			return x.Compare(y)
		}
	case bool:
		if y, ok := b.(bool); ok {
			switch {
			case x == y:
				return 0
			case !x:
				return -1
			default:
				return 1
			}
		}
	}
	return 0
}
