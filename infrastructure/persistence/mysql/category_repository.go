package mysql

import (
	"catalog/domain/category"
	"catalog/domain/shared"
	"catalog/infrastructure/persistence/mysql/po"
	"catalog/infrastructure/persistence/specification"

	"gorm.io/gorm"
)

// CategoryMapper maps categories to rows of the categories table.
type CategoryMapper struct{}

func (CategoryMapper) ToModel(c *category.Category) *po.CategoryPO {
	return po.FromCategoryDomain(c)
}

func (CategoryMapper) ToEntity(m *po.CategoryPO) (*category.Category, error) {
	return m.ToDomain()
}

// CategoryRepository is the MySQL category.Repository.
type CategoryRepository struct {
	*Repository[*category.Category, po.CategoryPO, string]
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	translator := specification.NewGormTranslator()
	return &CategoryRepository{
		Repository: NewRepository(db, RepositoryConfig[*category.Category, po.CategoryPO, string]{
			Kind:           category.Kind,
			IDColumn:       "category_id",
			Mapper:         CategoryMapper{},
			SortableFields: category.SortableFields,
			DefaultSort:    category.SortByCreatedAt,
			DefaultSortDir: shared.SortDesc,
			TieBreakers:    []string{category.SortByCreatedAt},
			FilterScope: func(filter string) Scope {
				return translator.Translate(category.FilterSpecification(filter))
			},
		}),
	}
}

var (
	_ Mapper[*category.Category, po.CategoryPO] = CategoryMapper{}
	_ category.Repository                       = (*CategoryRepository)(nil)
)
