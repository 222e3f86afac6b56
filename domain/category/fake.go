package category

import (
	"fmt"
	"time"
)

// FakeBuilder builds valid categories for tests and seeding.
// Every override takes either a value or a func(index) producing one.
type FakeBuilder struct {
	count       int
	name        func(i int) string
	description func(i int) *string
	isActive    func(i int) bool
	createdAt   func(i int) time.Time
}

// Fake starts a builder for a single category.
func Fake() *FakeBuilder {
	base := time.Now().Truncate(time.Millisecond)
	return &FakeBuilder{
		count:       1,
		name:        func(i int) string { return fmt.Sprintf("Category %d", i+1) },
		description: func(int) *string { return nil },
		isActive:    func(int) bool { return true },
		// strictly increasing so default ordering is deterministic
		createdAt: func(i int) time.Time { return base.Add(time.Duration(i) * time.Millisecond) },
	}
}

// Many switches the builder to produce n categories.
func (b *FakeBuilder) Many(n int) *FakeBuilder {
	b.count = n
	return b
}

func (b *FakeBuilder) WithName(name string) *FakeBuilder {
	return b.WithNameFunc(func(int) string { return name })
}

func (b *FakeBuilder) WithNameFunc(fn func(i int) string) *FakeBuilder {
	b.name = fn
	return b
}

func (b *FakeBuilder) WithDescription(description *string) *FakeBuilder {
	b.description = func(int) *string { return copyString(description) }
	return b
}

func (b *FakeBuilder) Inactive() *FakeBuilder {
	b.isActive = func(int) bool { return false }
	return b
}

func (b *FakeBuilder) WithCreatedAt(t time.Time) *FakeBuilder {
	return b.WithCreatedAtFunc(func(int) time.Time { return t })
}

func (b *FakeBuilder) WithCreatedAtFunc(fn func(i int) time.Time) *FakeBuilder {
	b.createdAt = fn
	return b
}

// Build returns every category, in index order. Values are not validated,
// so a builder can produce invalid entities on purpose.
func (b *FakeBuilder) Build() []*Category {
	out := make([]*Category, 0, b.count)
	for i := 0; i < b.count; i++ {
		active := b.isActive(i)
		out = append(out, New(Props{
			Name:        b.name(i),
			Description: b.description(i),
			IsActive:    &active,
			CreatedAt:   b.createdAt(i),
		}))
	}
	return out
}

// One returns the first category.
func (b *FakeBuilder) One() *Category {
	return b.Many(1).Build()[0]
}
