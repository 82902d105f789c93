// File: sequence.go
// Title: Ordered Sequence Capability
// Description: Defines the generic ordered, index-addressable sequence that
//              the null-safe collections wrap or extend. Implementations in
//              this package never check elements for absence.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-13
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-13 v0.1.0: Sequence interface and index errors
// - 2026-10-15 v0.1.1: Iterator support via iter.Seq2

package seq

import (
	"iter"

	mdwerror "github.com/msto63/nslist/foundation/core/error"
)

// Sequence is an ordered, index-addressable, mutable collection.
//
// Insert-like operations accept 0 <= index <= Len(); Set, Get and RemoveAt
// accept 0 <= index < Len(). Any other index yields an error matching
// ErrIndexOutOfRange and leaves the sequence unchanged.
type Sequence[T any] interface {
	// Append adds value at the end
	Append(value T) error
	// Insert adds value at index, shifting later elements right
	Insert(index int, value T) error
	// Set replaces the element at index and returns the previous one
	Set(index int, value T) (T, error)
	// AppendAll adds values at the end in order
	AppendAll(values []T) error
	// InsertAll adds values at index in order, shifting later elements right
	InsertAll(index int, values []T) error

	Get(index int) (T, error)
	RemoveAt(index int) (T, error)
	// RemoveFunc removes the first element matching and reports whether one was found
	RemoveFunc(match func(T) bool) bool
	IndexFunc(match func(T) bool) int
	ContainsFunc(match func(T) bool) bool
	Len() int
	Clear()

	// All iterates index/element pairs in order
	All() iter.Seq2[int, T]
	// Values returns a copy of the elements in order
	Values() []T
}

// ErrIndexOutOfRange matches every index error raised by a sequence
var ErrIndexOutOfRange = mdwerror.Sentinel(mdwerror.CodeIndexOutOfRange, "index out of range")

func outOfRange(op string, index, size, bound int) error {
	return mdwerror.Newf("index %d out of range for %s on size %d", index, op, size).
		WithCode(mdwerror.CodeIndexOutOfRange).
		WithOperation("seq." + op).
		WithDetail("index", index).
		WithDetail("size", size).
		WithDetail("bound", bound)
}

// checkInsert validates an insert position: 0 <= index <= size
func checkInsert(op string, index, size int) error {
	if index < 0 || index > size {
		return outOfRange(op, index, size, size)
	}
	return nil
}

// checkElement validates an occupied position: 0 <= index < size
func checkElement(op string, index, size int) error {
	if index < 0 || index >= size {
		return outOfRange(op, index, size, size-1)
	}
	return nil
}

// Equal reports whether s holds exactly values, in order
func Equal[T comparable](s Sequence[T], values []T) bool {
	if s.Len() != len(values) {
		return false
	}
	for i, v := range s.All() {
		if v != values[i] {
			return false
		}
	}
	return true
}

// EqualFunc reports whether s holds values in order under eq
func EqualFunc[T any](s Sequence[T], values []T, eq func(a, b T) bool) bool {
	if s.Len() != len(values) {
		return false
	}
	for i, v := range s.All() {
		if !eq(v, values[i]) {
			return false
		}
	}
	return true
}
