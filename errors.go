package pga

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidEntity indicates that coordinates passed to a
	// constructor do not describe a geometric entity, such as a plane
	// with a zero normal.
	ErrInvalidEntity = errors.New("invalid entity")

	// ErrZero indicates an attempt to extract a value from a
	// degenerate [ZeroOr].
	ErrZero = errors.New("degenerate result")
)

// EntityError describes a failed construction. It unwraps to
// [ErrInvalidEntity].
type EntityError struct {
	// Entity is the kind of entity being constructed, such as "plane".
	Entity string

	// Reason describes which invariant the coordinates violate.
	Reason string
}

func (err *EntityError) Error() string {
	return fmt.Sprintf("%v: %v: %v", ErrInvalidEntity, err.Entity, err.Reason)
}

func (err *EntityError) Unwrap() error {
	return ErrInvalidEntity
}

func invalid(entity, reason string) error {
	return &EntityError{Entity: entity, Reason: reason}
}
