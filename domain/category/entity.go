package category

import (
	"encoding/json"
	"time"

	"catalog/domain/shared"
)

// Kind names the entity in errors.
const Kind = "Category"

// Category groups catalog items. It is a small aggregate: every field lives on
// the root and every mutation that can break an invariant re-validates.
type Category struct {
	categoryID  shared.Uuid
	name        string
	description *string
	isActive    bool
	createdAt   time.Time
}

// Props are the construction inputs. Zero CategoryID, nil IsActive and zero
// CreatedAt are filled with a generated id, true and the current time. The
// generated time is truncated to milliseconds, the precision storage keeps.
type Props struct {
	CategoryID  shared.Uuid
	Name        string
	Description *string
	IsActive    *bool
	CreatedAt   time.Time
}

// New builds a Category without validating it.
func New(props Props) *Category {
	c := &Category{
		categoryID:  props.CategoryID,
		name:        props.Name,
		description: copyString(props.Description),
		isActive:    true,
		createdAt:   props.CreatedAt,
	}
	if c.categoryID.IsZero() {
		c.categoryID = shared.NewUuid()
	}
	if props.IsActive != nil {
		c.isActive = *props.IsActive
	}
	if c.createdAt.IsZero() {
		c.createdAt = time.Now().Truncate(time.Millisecond)
	}
	return c
}

// Create builds and validates a Category.
func Create(props Props) (*Category, error) {
	c := New(props)
	if err := Validate(c); err != nil {
		return nil, err
	}
	return c, nil
}

// ============================================================================
// Behaviour
// ============================================================================
//
// Mutations apply first and validate the resulting state. A failed validation
// leaves the invalid state in place; callers must fix or discard the entity.

// Rename changes the name.
func (c *Category) Rename(name string) error {
	c.name = name
	return Validate(c)
}

// ChangeDescription sets the description; nil clears it.
func (c *Category) ChangeDescription(description *string) error {
	c.description = copyString(description)
	return Validate(c)
}

// Update changes name and description together and validates once.
func (c *Category) Update(name string, description *string) error {
	c.name = name
	c.description = copyString(description)
	return Validate(c)
}

func (c *Category) Activate() {
	c.isActive = true
}

func (c *Category) Deactivate() {
	c.isActive = false
}

// Clone returns an independent copy.
func (c *Category) Clone() *Category {
	clone := *c
	clone.description = copyString(c.description)
	return &clone
}

// ============================================================================
// Getters
// ============================================================================

func (c *Category) CategoryID() shared.Uuid { return c.categoryID }
func (c *Category) EntityID() shared.ValueObject { return c.categoryID }
func (c *Category) Name() string { return c.name }
func (c *Category) IsActive() bool { return c.isActive }
func (c *Category) CreatedAt() time.Time { return c.createdAt }
func (c *Category) Description() *string { return copyString(c.description) }

func (c *Category) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		CategoryID  string    `json:"category_id"`
		Name        string    `json:"name"`
		Description *string   `json:"description"`
		IsActive    bool      `json:"is_active"`
		CreatedAt   time.Time `json:"created_at"`
	}{
		CategoryID:  c.categoryID.String(),
		Name:        c.name,
		Description: c.description,
		IsActive:    c.isActive,
		CreatedAt:   c.createdAt,
	})
}

// ReconstructionDTO is the storage-side view of a Category. Nullable columns
// are pointers so a corrupted row reaches validation as null.
// Only repository implementations should use it.
type ReconstructionDTO struct {
	CategoryID  string
	Name        *string
	Description *string
	IsActive    *bool
	CreatedAt   time.Time
}

// RebuildFromDTO restores a Category from storage and validates it exactly as
// Create would, so invalid stored data fails with the same EntityValidationError.
func RebuildFromDTO(dto ReconstructionDTO) (*Category, error) {
	id, err := shared.ParseUuid(dto.CategoryID)
	if err != nil {
		return nil, err
	}

	rec := shared.Record{
		"name":        nil,
		"description": nil,
		"is_active":   nil,
		"created_at":  nil,
	}
	if dto.Name != nil {
		rec["name"] = *dto.Name
	}
	if dto.Description != nil {
		rec["description"] = *dto.Description
	}
	if dto.IsActive != nil {
		rec["is_active"] = *dto.IsActive
	}
	if !dto.CreatedAt.IsZero() {
		rec["created_at"] = dto.CreatedAt
	}
	if err := validateRecord(rec); err != nil {
		return nil, err
	}

	return New(Props{
		CategoryID:  id,
		Name:        *dto.Name,
		Description: dto.Description,
		IsActive:    dto.IsActive,
		CreatedAt:   dto.CreatedAt,
	}), nil
}

func copyString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

var _ shared.Entity = (*Category)(nil)
