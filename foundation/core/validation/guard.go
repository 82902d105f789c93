// File: guard.go
// Title: Sequence Mutation Guard
// Description: Decides whether a mutating sequence operation may proceed.
//              Absence is checked first and unconditionally; the index is
//              only checked once every supplied value is known to be present.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-13
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-13 v0.1.0: Single and batch validation
// - 2026-10-15 v0.1.1: Inspect for collected results, nil batch handling

package validation

import (
	"fmt"

	mdwerror "github.com/msto63/nslist/foundation/core/error"
)

var (
	// ErrNullArgument matches every error raised for an absent value or an
	// absent batch.
	ErrNullArgument = mdwerror.Sentinel(mdwerror.CodeNullArgument, "null argument")

	// ErrIndexOutOfRange matches every error raised for an illegal index.
	ErrIndexOutOfRange = mdwerror.Sentinel(mdwerror.CodeIndexOutOfRange, "index out of range")
)

// Guard validates the arguments of mutating sequence operations. The zero
// value uses IsAbsent.
type Guard[T any] struct {
	absent AbsenceFunc[T]
}

// NewGuard creates a guard with the given absence detector; nil selects
// IsAbsent.
func NewGuard[T any](absent AbsenceFunc[T]) Guard[T] {
	return Guard[T]{absent: absent}
}

// Absent reports whether value is absent under this guard
func (g Guard[T]) Absent(value T) bool {
	if g.absent == nil {
		return IsAbsent(value)
	}
	return g.absent(value)
}

// FirstAbsent returns the position of the first absent element, or -1
func (g Guard[T]) FirstAbsent(values []T) int {
	for i, v := range values {
		if g.Absent(v) {
			return i
		}
	}
	return -1
}

// ValidateSingle checks a single-value operation at index against a
// sequence of the given size.
func (g Guard[T]) ValidateSingle(op Op, index, size int, value T) error {
	if g.Absent(value) {
		return nullArgument(op, index).
			WithDetail("size", size)
	}
	return CheckIndex(op, index, size)
}

// ValidateBatch checks a batch operation at index against a sequence of the
// given size. A nil batch is an absent collection. The whole batch is
// scanned before the index is looked at.
func (g Guard[T]) ValidateBatch(op Op, index, size int, values []T) error {
	if values == nil {
		return mdwerror.Newf("absent collection passed to %s", op).
			WithCode(mdwerror.CodeNullArgument).
			WithOperation(op.String()).
			WithDetail("index", index).
			WithDetail("size", size)
	}

	if pos := g.FirstAbsent(values); pos >= 0 {
		return mdwerror.Newf("absent element at position %d passed to %s", pos, op).
			WithCode(mdwerror.CodeNullArgument).
			WithOperation(op.String()).
			WithDetail("index", index).
			WithDetail("size", size).
			WithDetail("position", pos)
	}

	return CheckIndex(op, index, size)
}

// Inspect scans every element and reports each absent position. Unlike
// ValidateBatch it does not stop at the first defect.
func (g Guard[T]) Inspect(values []T) ValidationResult {
	result := NewValidationResult()
	result.WithContext("size", len(values))

	if values == nil {
		result.AddError(mdwerror.CodeNullArgument, "absent collection")
		return result
	}

	for i, v := range values {
		if !g.Absent(v) {
			continue
		}
		result.Errors = append(result.Errors, ValidationError{
			Code:    mdwerror.CodeNullArgument,
			Field:   fmt.Sprintf("values[%d]", i),
			Message: fmt.Sprintf("absent element at position %d", i),
			Context: map[string]interface{}{"position": i},
		})
		result.Valid = false
	}

	return result
}

// CheckIndex reports IndexOutOfRange when index is not legal for op on a
// sequence of the given size. It performs no absence check.
func CheckIndex(op Op, index, size int) error {
	if op.InRange(index, size) {
		return nil
	}
	return mdwerror.Newf("index %d out of range for %s on size %d", index, op, size).
		WithCode(mdwerror.CodeIndexOutOfRange).
		WithOperation(op.String()).
		WithDetail("index", index).
		WithDetail("size", size).
		WithDetail("bound", op.Bound(size))
}

func nullArgument(op Op, index int) *mdwerror.Error {
	return mdwerror.Newf("absent value passed to %s", op).
		WithCode(mdwerror.CodeNullArgument).
		WithOperation(op.String()).
		WithDetail("index", index)
}
