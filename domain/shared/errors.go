/*
Package shared holds the building blocks every aggregate and repository uses:
identity values, the entity contract, repository and search contracts,
specifications, field validation and the domain error types.

Error model:
 1. Sentinel errors classify failures for errors.Is().
 2. Typed errors carry the context (entity kind, ids, field messages) and
    unwrap to their sentinel.
 3. Stacks are captured when the error is built and formatted only when
    somebody asks for them.
 4. Nothing in this package logs.
*/
package shared

import (
	"errors"
	"fmt"
	"maps"
	"runtime"
	"slices"
	"strings"
)

var (
	// ErrNotFound no stored entity matches the given identity.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput validation failed.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidUuid an identity value failed format validation.
	ErrInvalidUuid = errors.New("must be a valid uuid")
)

// DomainError is a classified error with a message and a captured stack.
type DomainError struct {
	// Err is the sentinel used by errors.Is().
	Err error

	// Entity is the kind the error is about (e.g. "Category", "uuid").
	Entity string

	Message string

	stack []uintptr
}

func (e *DomainError) Error() string { return e.Message }

func (e *DomainError) Unwrap() error { return e.Err }

// Stack formats the stack captured at construction.
func (e *DomainError) Stack() []string { return FormatStack(e.stack) }

// NewInvalidUuidError reports a malformed identity.
func NewInvalidUuidError(value string) error {
	return &DomainError{
		Err:     ErrInvalidUuid,
		Entity:  "uuid",
		Message: fmt.Sprintf("must be a valid uuid: %q", value),
		stack:   CaptureStack(3),
	}
}

// NotFoundError is returned by Update and Delete when no stored entity has the
// given identity. FindByID never returns it.
type NotFoundError struct {
	Entity string
	IDs    []string

	stack []uintptr
}

// NewNotFoundError builds the error for one or more missing identities.
func NewNotFoundError(entity string, ids ...ValueObject) error {
	raw := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == nil {
			continue
		}
		raw = append(raw, id.String())
	}
	return &NotFoundError{
		Entity: entity,
		IDs:    raw,
		stack:  CaptureStack(3),
	}
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found using id: %s", e.Entity, strings.Join(e.IDs, ", "))
}

func (e *NotFoundError) Unwrap() error { return ErrNotFound }

func (e *NotFoundError) Stack() []string { return FormatStack(e.stack) }

// EntityValidationError is the aggregated result of one validation pass.
// Errors holds every violated rule of every invalid field.
type EntityValidationError struct {
	Entity string
	Errors FieldErrors

	stack []uintptr
}

// NewEntityValidationError wraps a non-empty FieldErrors.
func NewEntityValidationError(entity string, errs FieldErrors) error {
	return &EntityValidationError{
		Entity: entity,
		Errors: errs,
		stack:  CaptureStack(3),
	}
}

func (e *EntityValidationError) Error() string {
	var b strings.Builder
	b.WriteString(e.Entity)
	b.WriteString(" validation failed")
	for i, field := range slices.Sorted(maps.Keys(e.Errors)) {
		if i == 0 {
			b.WriteString(": ")
		} else {
			b.WriteString("; ")
		}
		b.WriteString(field)
		b.WriteString(": ")
		b.WriteString(strings.Join(e.Errors[field], ", "))
	}
	return b.String()
}

func (e *EntityValidationError) Unwrap() error { return ErrInvalidInput }

func (e *EntityValidationError) Stack() []string { return FormatStack(e.stack) }

// CaptureStack records the current call stack.
// skip is the number of frames to drop (runtime.Callers, CaptureStack and the constructor is 3).
func CaptureStack(skip int) []uintptr {
	var pcs [32]uintptr
	n := runtime.Callers(skip, pcs[:])
	return pcs[:n]
}

// FormatStack renders at most ten non-runtime frames as "file:line function".
func FormatStack(stack []uintptr) []string {
	if len(stack) == 0 {
		return nil
	}

	frames := runtime.CallersFrames(stack)
	var result []string
	for {
		frame, more := frames.Next()
		if !strings.Contains(frame.File, "runtime/") {
			result = append(result, fmt.Sprintf("%s:%d %s", frame.File, frame.Line, frame.Function))
		}
		if !more || len(result) >= 10 {
			break
		}
	}
	return result
}

// Stacker is implemented by errors that carry a captured stack.
type Stacker interface {
	Stack() []string
}
