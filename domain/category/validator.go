package category

import (
	"catalog/domain/shared"
)

// MaxNameLength is the longest accepted name, in characters.
const MaxNameLength = 255

var validator = shared.NewValidator(
	shared.NotEmpty("name"),
	shared.IsString("name"),
	shared.MaxLength("name", MaxNameLength),
	shared.IsString("description"),
	shared.NotEmpty("is_active"),
	shared.IsBoolean("is_active"),
	shared.NotEmpty("created_at"),
).Optional("description")

// Validate checks every rule against c and returns an
// *shared.EntityValidationError listing all violations, or nil.
func Validate(c *Category) error {
	rec := shared.Record{
		"name":      c.name,
		"is_active": c.isActive,
	}
	if c.description != nil {
		rec["description"] = *c.description
	}
	if !c.createdAt.IsZero() {
		rec["created_at"] = c.createdAt
	}
	return validateRecord(rec)
}

func validateRecord(rec shared.Record) error {
	if errs := validator.Validate(rec); errs != nil {
		return shared.NewEntityValidationError(Kind, errs)
	}
	return nil
}
