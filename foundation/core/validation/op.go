// File: op.go
// Title: Validated Operations
// Description: Enumerates the mutating sequence operations that must pass
//              validation and the index bound each one accepts.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-13
// Modified: 2026-10-13
//
// Change History:
// - 2026-10-13 v0.1.0: Initial implementation

package validation

// Op identifies a validated mutating operation
type Op int

const (
	// OpAppend adds one element at the end
	OpAppend Op = iota
	// OpInsert adds one element at an index, shifting later elements right
	OpInsert
	// OpAssign replaces the element at an index
	OpAssign
	// OpAppendAll adds a batch at the end
	OpAppendAll
	// OpInsertAll adds a batch at an index, shifting later elements right
	OpInsertAll
)

// String returns the operation name used in error details and scripts
func (o Op) String() string {
	switch o {
	case OpAppend:
		return "append"
	case OpInsert:
		return "insert"
	case OpAssign:
		return "assign"
	case OpAppendAll:
		return "append_all"
	case OpInsertAll:
		return "insert_all"
	default:
		return "unknown"
	}
}

// IsBatch reports whether the operation takes a collection of values
func (o Op) IsBatch() bool {
	return o == OpAppendAll || o == OpInsertAll
}

// Bound returns the largest legal index for the operation on a sequence of
// the given size. Insert-like operations may target size itself; assign
// must hit an occupied slot, so its bound is size-1 (and -1 when empty).
func (o Op) Bound(size int) int {
	if o == OpAssign {
		return size - 1
	}
	return size
}

// InRange reports whether index is legal for the operation at the given size
func (o Op) InRange(index, size int) bool {
	return index >= 0 && index <= o.Bound(size)
}
