package memory

import (
	"context"

	"catalog/domain/category"
	"catalog/domain/shared"
)

// CategoryRepository is the in-memory category.Repository. Searches without a
// sort return the newest categories first.
type CategoryRepository struct {
	*SearchableRepository[*category.Category, string]
}

func NewCategoryRepository() *CategoryRepository {
	return &CategoryRepository{
		SearchableRepository: NewSearchableRepository(SearchConfig[*category.Category, string]{
			Kind:           category.Kind,
			SortableFields: category.SortableFields,
			Filter:         filterCategories,
			SortKey:        categorySortKey,
			DefaultSort:    category.SortByCreatedAt,
			DefaultSortDir: shared.SortDesc,
		}),
	}
}

func filterCategories(ctx context.Context, items []*category.Category, filter string) ([]*category.Category, error) {
	return shared.Select(ctx, category.FilterSpecification(filter), items), nil
}

func categorySortKey(c *category.Category, field string) any {
	switch field {
	case category.SortByName:
		return c.Name()
	case category.SortByCreatedAt:
		return c.CreatedAt()
	}
	return nil
}

var _ category.Repository = (*CategoryRepository)(nil)
