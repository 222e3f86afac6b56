package shared

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type prefixSpec struct{ prefix string }

func (s prefixSpec) IsSatisfiedBy(_ context.Context, candidate string) bool {
	return strings.HasPrefix(candidate, s.prefix)
}

type suffixSpec struct{ suffix string }

func (s suffixSpec) IsSatisfiedBy(_ context.Context, candidate string) bool {
	return strings.HasSuffix(candidate, s.suffix)
}

func TestCompositeSpecifications(t *testing.T) {
	ctx := context.Background()
	startsWithA := prefixSpec{"a"}
	endsWithZ := suffixSpec{"z"}

	tests := []struct {
		name string
		spec Specification[string]
		in   string
		want bool
	}{
		{"and both", And[string](startsWithA, endsWithZ), "abcz", true},
		{"and one", And[string](startsWithA, endsWithZ), "abc", false},
		{"or left", Or[string](startsWithA, endsWithZ), "abc", true},
		{"or right", Or[string](startsWithA, endsWithZ), "xyz", true},
		{"or none", Or[string](startsWithA, endsWithZ), "xy", false},
		{"not", Not[string](startsWithA), "xyz", true},
		{"not not", Not(Not[string](startsWithA)), "abc", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.spec.IsSatisfiedBy(ctx, tt.in))
		})
	}
}

func TestSelectKeepsOrder(t *testing.T) {
	got := Select[string](context.Background(), prefixSpec{"a"}, []string{"ab", "b", "ac", "a"})
	assert.Equal(t, []string{"ab", "ac", "a"}, got)
}
