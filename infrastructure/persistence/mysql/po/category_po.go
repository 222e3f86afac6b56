package po

import (
	"time"

	"catalog/domain/category"
)

// CategoryPO is the categories row. Nullable columns are pointers so a
// corrupted row reaches entity validation instead of being zero-filled.
// name uses a binary collation so ORDER BY name matches byte order.
type CategoryPO struct {
	CategoryID  string    `gorm:"column:category_id;primaryKey;type:char(36)"`
	Name        *string   `gorm:"column:name;type:varchar(255) COLLATE utf8mb4_bin;not null"`
	Description *string   `gorm:"column:description;type:text"`
	IsActive    *bool     `gorm:"column:is_active;not null"`
	CreatedAt   time.Time `gorm:"column:created_at;type:datetime(3);not null"`
}

func (CategoryPO) TableName() string {
	return "categories"
}

func FromCategoryDomain(c *category.Category) *CategoryPO {
	name := c.Name()
	active := c.IsActive()
	return &CategoryPO{
		CategoryID:  c.CategoryID().String(),
		Name:        &name,
		Description: c.Description(),
		IsActive:    &active,
		CreatedAt:   c.CreatedAt(),
	}
}

// ToDomain rebuilds and re-validates the entity.
func (po *CategoryPO) ToDomain() (*category.Category, error) {
	return category.RebuildFromDTO(category.ReconstructionDTO{
		CategoryID:  po.CategoryID,
		Name:        po.Name,
		Description: po.Description,
		IsActive:    po.IsActive,
		CreatedAt:   po.CreatedAt,
	})
}
