package shared

import (
	"context"
)

// Repository is the backend-agnostic persistence contract for one entity kind.
//
// Lookups report absence as data (FindByID returns found=false), mutations on a
// missing identity report it as a *NotFoundError. Backend I/O errors are
// returned unchanged.
type Repository[E Entity] interface {
	// Insert stores a new entity.
	Insert(ctx context.Context, entity E) error

	// BulkInsert stores entities in the given order. Atomicity is backend defined.
	BulkInsert(ctx context.Context, entities []E) error

	// Update replaces the stored entity with the same identity.
	Update(ctx context.Context, entity E) error

	// Delete removes the stored entity with the given identity.
	Delete(ctx context.Context, id ValueObject) error

	// FindByID returns the entity and true, or the zero value and false when absent.
	FindByID(ctx context.Context, id ValueObject) (E, bool, error)

	// FindAll returns every stored entity.
	FindAll(ctx context.Context) ([]E, error)
}

// SearchableRepository adds filtered, sorted and paginated search.
// Identical inputs produce the same items, total and page metadata on every backend.
type SearchableRepository[E Entity, F comparable] interface {
	Repository[E]

	// SortableFields lists the field names Search will order by.
	SortableFields() []string

	Search(ctx context.Context, params SearchParams[F]) (SearchResult[E], error)
}
