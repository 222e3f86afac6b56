package specification

import (
	"strings"

	"catalog/domain/category"
	"catalog/domain/shared"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Translator converts category specifications into GORM scopes.
type Translator interface {
	// Translate returns nil for specification types it does not know.
	Translate(spec shared.Specification[*category.Category]) func(*gorm.DB) *gorm.DB
}

// GormTranslator translates into MySQL-flavoured WHERE clauses. The SQL must
// select exactly the rows the specification accepts in memory.
type GormTranslator struct{}

func NewGormTranslator() *GormTranslator {
	return &GormTranslator{}
}

func (t *GormTranslator) Translate(spec shared.Specification[*category.Category]) func(*gorm.DB) *gorm.DB {
	expr, ok := t.expression(spec, false)
	if !ok {
		return nil
	}
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(expr)
	}
}

// expression builds the condition for spec, negated when not is set. Negation
// is pushed down to the leaves (De Morgan) so every leaf can pick its own
// negated operator.
func (t *GormTranslator) expression(spec shared.Specification[*category.Category], not bool) (clause.Expression, bool) {
	switch s := spec.(type) {
	case nil:
		return nil, false
	case shared.AndSpecification[*category.Category]:
		return t.pair(s.Left, s.Right, not, !not)
	case shared.OrSpecification[*category.Category]:
		return t.pair(s.Left, s.Right, not, not)
	case shared.NotSpecification[*category.Category]:
		return t.expression(s.Spec, !not)
	case category.NameContainsSpecification:
		op := "LIKE"
		if not {
			op = "NOT LIKE"
		}
		return clause.Expr{
			SQL:  "LOWER(name) " + op + " ?",
			Vars: []any{"%" + EscapeLike(strings.ToLower(s.Term)) + "%"},
		}, true
	case category.ActiveSpecification:
		if not {
			return clause.Neq{Column: clause.Column{Name: "is_active"}, Value: s.Active}, true
		}
		return clause.Eq{Column: clause.Column{Name: "is_active"}, Value: s.Active}, true
	default:
		return nil, false
	}
}

// pair joins both sides with AND when and is set, OR otherwise.
func (t *GormTranslator) pair(left, right shared.Specification[*category.Category], not, and bool) (clause.Expression, bool) {
	l, ok := t.expression(left, not)
	if !ok {
		return nil, false
	}
	r, ok := t.expression(right, not)
	if !ok {
		return nil, false
	}
	if and {
		return clause.And(l, r), true
	}
	return clause.Or(l, r), true
}

// EscapeLike escapes the LIKE wildcards in s so it matches literally.
func EscapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

var _ Translator = (*GormTranslator)(nil)
