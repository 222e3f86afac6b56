package category

import (
	"context"
	"strings"

	"catalog/domain/shared"
)

// NameContainsSpecification matches categories whose name contains Term,
// ignoring case.
type NameContainsSpecification struct {
	Term string
}

func (spec NameContainsSpecification) IsSatisfiedBy(_ context.Context, c *Category) bool {
	return strings.Contains(strings.ToLower(c.Name()), strings.ToLower(spec.Term))
}

type ActiveSpecification struct {
	Active bool
}

func (spec ActiveSpecification) IsSatisfiedBy(_ context.Context, c *Category) bool {
	return c.IsActive() == spec.Active
}

func NewNameContainsSpecification(term string) shared.Specification[*Category] {
	return NameContainsSpecification{Term: term}
}

func NewActiveSpecification(active bool) shared.Specification[*Category] {
	return ActiveSpecification{Active: active}
}
