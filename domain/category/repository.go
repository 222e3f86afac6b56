package category

import (
	"catalog/domain/shared"
)

// Repository is the searchable store for categories. The filter is a name
// substring matched case-insensitively.
type Repository interface {
	shared.SearchableRepository[*Category, string]
}

type (
	SearchParams = shared.SearchParams[string]
	SearchResult = shared.SearchResult[*Category]
	SearchInput  = shared.SearchInput[string]
)

// Sortable field names.
const (
	SortByName      = "name"
	SortByCreatedAt = "created_at"
)

// SortableFields lists the fields Search orders by. Any other sort is ignored.
var SortableFields = []string{SortByName, SortByCreatedAt}

// NewSearchParams normalizes in. An empty filter means no filter.
func NewSearchParams(in SearchInput) SearchParams {
	if in.Filter != nil && *in.Filter == "" {
		in.Filter = nil
	}
	return shared.NewSearchParams(in)
}

// FilterSpecification turns a search filter into the specification both
// backends evaluate.
func FilterSpecification(filter string) shared.Specification[*Category] {
	return NewNameContainsSpecification(filter)
}
