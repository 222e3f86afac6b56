package shared

// Entity is a mutable object with exactly one identity for its whole lifetime.
// Two entities are the same entity when their identities are Equal, whatever
// their other fields hold.
type Entity interface {
	EntityID() ValueObject
}

// SameIdentity reports whether a and b name the same entity.
func SameIdentity(a, b Entity) bool {
	if a == nil || b == nil {
		return false
	}
	return a.EntityID().Equals(b.EntityID())
}
