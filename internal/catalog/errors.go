package catalog

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound matches every *NotFoundError via errors.Is.
	ErrNotFound = errors.New("record not found")

	// ErrInvalid matches every *ValidationError via errors.Is.
	ErrInvalid = errors.New("invalid record")
)

// NotFoundError reports an id that is absent from a collection.
type NotFoundError struct {
	Kind Kind
	ID   int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Kind, e.ID)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// ValidationError reports a record field that violates an invariant.
// Records that fail validation never reach a collection.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalid
}
