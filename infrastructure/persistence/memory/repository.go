// Package memory keeps entities in process memory. It is the reference
// backend: the relational one must return exactly what this one returns.
package memory

import (
	"context"
	"sync"

	"catalog/domain/shared"
)

// Storable is an entity that can hand out independent copies of itself.
type Storable[E any] interface {
	shared.Entity
	Clone() E
}

// Repository stores entities in insertion order. Everything handed in or out is
// cloned, so callers never share state with the store.
type Repository[E Storable[E]] struct {
	mu    sync.RWMutex
	kind  string
	items []E
}

// NewRepository creates an empty store. kind names the entity in NotFound errors.
func NewRepository[E Storable[E]](kind string) *Repository[E] {
	return &Repository[E]{kind: kind, items: make([]E, 0)}
}

func (r *Repository[E]) Insert(ctx context.Context, entity E) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, entity.Clone())
	return nil
}

// BulkInsert appends entities in the given order.
func (r *Repository[E]) BulkInsert(ctx context.Context, entities []E) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range entities {
		r.items = append(r.items, e.Clone())
	}
	return nil
}

func (r *Repository[E]) Update(ctx context.Context, entity E) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(entity.EntityID())
	if i < 0 {
		return shared.NewNotFoundError(r.kind, entity.EntityID())
	}
	r.items[i] = entity.Clone()
	return nil
}

func (r *Repository[E]) Delete(ctx context.Context, id shared.ValueObject) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return shared.NewNotFoundError(r.kind, id)
	}
	r.items = append(r.items[:i], r.items[i+1:]...)
	return nil
}

func (r *Repository[E]) FindByID(ctx context.Context, id shared.ValueObject) (E, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexOf(id)
	if i < 0 {
		var zero E
		return zero, false, nil
	}
	return r.items[i].Clone(), true, nil
}

func (r *Repository[E]) FindAll(ctx context.Context) ([]E, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return cloneAll(r.items), nil
}

// Len reports how many entities are stored.
func (r *Repository[E]) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items)
}

// indexOf requires r.mu held.
func (r *Repository[E]) indexOf(id shared.ValueObject) int {
	if id == nil {
		return -1
	}
	for i, item := range r.items {
		if id.Equals(item.EntityID()) {
			return i
		}
	}
	return -1
}

func cloneAll[E Storable[E]](items []E) []E {
	out := make([]E, len(items))
	for i, item := range items {
		out[i] = item.Clone()
	}
	return out
}
