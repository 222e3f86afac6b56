package shared

import (
	"github.com/google/uuid"
)

// ValueObject is an immutable value compared by content.
//
// Implementations compare field by field and must return false for a nil
// argument or for a value of a different concrete type.
type ValueObject interface {
	Equals(other ValueObject) bool
	String() string
}

// Uuid identity value. A Uuid obtained from NewUuid or ParseUuid is always
// well formed.
type Uuid struct {
	id string
}

// NewUuid generates a random identity.
func NewUuid() Uuid {
	return Uuid{id: uuid.NewString()}
}

// ParseUuid validates id and returns it as a Uuid in canonical lower-case form.
// Only the hyphenated 36 character representation is accepted.
func ParseUuid(id string) (Uuid, error) {
	if len(id) != 36 {
		return Uuid{}, NewInvalidUuidError(id)
	}
	parsed, err := uuid.Parse(id)
	if err != nil {
		return Uuid{}, NewInvalidUuidError(id)
	}
	return Uuid{id: parsed.String()}, nil
}

// MustParseUuid is ParseUuid for fixtures and constants; it panics on malformed input.
func MustParseUuid(id string) Uuid {
	u, err := ParseUuid(id)
	if err != nil {
		panic(err)
	}
	return u
}

// ID returns the raw identifier.
func (u Uuid) ID() string { return u.id }

// String implements fmt.Stringer.
func (u Uuid) String() string { return u.id }

// IsZero reports whether u is the zero value rather than a parsed or generated id.
func (u Uuid) IsZero() bool { return u.id == "" }

// Equals compares two identities by their canonical string.
func (u Uuid) Equals(other ValueObject) bool {
	o, ok := other.(Uuid)
	if !ok {
		return false
	}
	return u.id == o.id
}
