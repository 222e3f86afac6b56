package shared

import (
	"fmt"
	"maps"
	"slices"
	"unicode/utf8"
)

// FieldErrors maps a field name to its violation messages, in rule declaration order.
type FieldErrors map[string][]string

// Add appends a message for field.
func (fe FieldErrors) Add(field, message string) {
	fe[field] = append(fe[field], message)
}

// Fields returns the invalid field names, sorted.
func (fe FieldErrors) Fields() []string {
	return slices.Sorted(maps.Keys(fe))
}

// Record is the candidate handed to a Validator. A nil or missing value is null.
type Record map[string]any

// Rule is one check on one field.
type Rule struct {
	Field   string
	Message string
	Check   func(value any) bool
}

// Validator evaluates an ordered list of rules. Every rule runs; nothing
// short-circuits, so a field reports every rule it violates.
type Validator struct {
	rules    []Rule
	optional map[string]bool
}

// NewValidator keeps rules in the order given.
func NewValidator(rules ...Rule) *Validator {
	return &Validator{
		rules:    slices.Clone(rules),
		optional: make(map[string]bool),
	}
}

// Optional marks fields whose rules are skipped entirely when the value is null.
func (v *Validator) Optional(fields ...string) *Validator {
	for _, f := range fields {
		v.optional[f] = true
	}
	return v
}

// Validate returns nil when rec satisfies every rule.
func (v *Validator) Validate(rec Record) FieldErrors {
	var errs FieldErrors
	for _, rule := range v.rules {
		value := rec[rule.Field]
		if value == nil && v.optional[rule.Field] {
			continue
		}
		if rule.Check(value) {
			continue
		}
		if errs == nil {
			errs = make(FieldErrors)
		}
		errs.Add(rule.Field, rule.Message)
	}
	return errs
}

// NotEmpty fails on null and on the empty string.
func NotEmpty(field string) Rule {
	return Rule{
		Field:   field,
		Message: field + " should not be empty",
		Check: func(value any) bool {
			if value == nil {
				return false
			}
			s, ok := value.(string)
			return !ok || s != ""
		},
	}
}

// IsString fails on anything that is not a string, null included.
func IsString(field string) Rule {
	return Rule{
		Field:   field,
		Message: field + " must be a string",
		Check: func(value any) bool {
			_, ok := value.(string)
			return ok
		},
	}
}

// MaxLength fails on non-strings and on strings longer than max runes.
func MaxLength(field string, max int) Rule {
	return Rule{
		Field:   field,
		Message: fmt.Sprintf("%s must be shorter than or equal to %d characters", field, max),
		Check: func(value any) bool {
			s, ok := value.(string)
			return ok && utf8.RuneCountInString(s) <= max
		},
	}
}

// IsBoolean fails on anything that is not a bool.
func IsBoolean(field string) Rule {
	return Rule{
		Field:   field,
		Message: field + " must be a boolean value",
		Check: func(value any) bool {
			_, ok := value.(bool)
			return ok
		},
	}
}
