package shared

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotFoundError(t *testing.T) {
	id := MustParseUuid("5490020a-e866-4229-9adc-aa44b83234c4")

	err := NewNotFoundError("Category", id)

	assert.EqualError(t, err, "Category not found using id: 5490020a-e866-4229-9adc-aa44b83234c4")
	assert.True(t, errors.Is(err, ErrNotFound))

	var nf *NotFoundError
	require.True(t, errors.As(err, &nf))
	assert.Equal(t, "Category", nf.Entity)
	assert.Equal(t, []string{id.String()}, nf.IDs)
	assert.NotEmpty(t, nf.Stack())
}

func TestNotFoundErrorWithSeveralIDs(t *testing.T) {
	a := MustParseUuid("5490020a-e866-4229-9adc-aa44b83234c4")
	b := MustParseUuid("9366b7dc-2d71-4799-b91c-c64adb205104")

	err := NewNotFoundError("Category", a, b)

	assert.EqualError(t, err, fmt.Sprintf("Category not found using id: %s, %s", a, b))
}

func TestNotFoundErrorSurvivesWrapping(t *testing.T) {
	err := fmt.Errorf("delete: %w", NewNotFoundError("Category", NewUuid()))

	assert.True(t, errors.Is(err, ErrNotFound))
	var nf *NotFoundError
	assert.True(t, errors.As(err, &nf))
}

func TestEntityValidationError(t *testing.T) {
	err := NewEntityValidationError("Category", FieldErrors{
		"name":        {"name should not be empty", "name must be a string"},
		"description": {"description must be a string"},
	})

	assert.True(t, errors.Is(err, ErrInvalidInput))
	assert.EqualError(t, err,
		"Category validation failed: description: description must be a string; name: name should not be empty, name must be a string")

	var ve *EntityValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, []string{"description", "name"}, ve.Errors.Fields())

	var stacker Stacker
	require.True(t, errors.As(err, &stacker))
	assert.NotEmpty(t, stacker.Stack())
}

func TestInvalidUuidError(t *testing.T) {
	err := NewInvalidUuidError("abc")

	assert.True(t, errors.Is(err, ErrInvalidUuid))
	assert.Equal(t, `must be a valid uuid: "abc"`, err.Error())
}

func TestFormatStackEmpty(t *testing.T) {
	assert.Nil(t, FormatStack(nil))
}
