// File: decorator.go
// Title: Decorating Null-Safe List
// Description: Decorator makes an existing sequence null-safe. Mutating
//              calls pass the guard before they are forwarded; everything
//              else goes straight to the backing sequence.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation
// - 2026-10-17 v0.1.1: Method docs, locking note for synchronized backings

package nullsafe

import (
	"iter"

	"github.com/msto63/nslist/foundation/collections/seq"
	"github.com/msto63/nslist/foundation/core/validation"
)

// Decorator wraps a backing sequence it owns exclusively. Mutating the
// backing sequence through another reference voids the guarantee.
//
// Each guarded call reads the backing size and then forwards, so over a
// seq.Synchronized backing the two steps take the lock separately. Absent
// values are still rejected, but the size reported in an index error may be
// stale under contention. Wrap the decorator itself with seq.Synchronize
// when the check and the write must be one atomic step.
type Decorator[T any] struct {
	backing seq.Sequence[T]
	guard   validation.Guard[T]
}

func (d *Decorator[T]) nullSafe() {}

// Append adds value at the end. An absent value fails with ErrNullArgument.
func (d *Decorator[T]) Append(value T) error {
	size := d.backing.Len()
	if err := d.guard.ValidateSingle(validation.OpAppend, size, size, value); err != nil {
		return err
	}
	return d.backing.Append(value)
}

// Insert places value at index, shifting later elements right.
func (d *Decorator[T]) Insert(index int, value T) error {
	if err := d.guard.ValidateSingle(validation.OpInsert, index, d.backing.Len(), value); err != nil {
		return err
	}
	return d.backing.Insert(index, value)
}

// Set replaces the element at index and returns the previous one.
func (d *Decorator[T]) Set(index int, value T) (T, error) {
	if err := d.guard.ValidateSingle(validation.OpAssign, index, d.backing.Len(), value); err != nil {
		var zero T
		return zero, err
	}
	return d.backing.Set(index, value)
}

// AppendAll adds the batch at the end. Nothing is added when any element
// is absent or values is nil.
func (d *Decorator[T]) AppendAll(values []T) error {
	size := d.backing.Len()
	if err := d.guard.ValidateBatch(validation.OpAppendAll, size, size, values); err != nil {
		return err
	}
	return d.backing.AppendAll(values)
}

// InsertAll places the batch at index in order. The batch is validated as
// a whole before the backing is touched.
func (d *Decorator[T]) InsertAll(index int, values []T) error {
	if err := d.guard.ValidateBatch(validation.OpInsertAll, index, d.backing.Len(), values); err != nil {
		return err
	}
	return d.backing.InsertAll(index, values)
}

// Reads, removal and Clear cannot introduce an absent element and are
// forwarded unchecked.

// Get returns the element at index
func (d *Decorator[T]) Get(index int) (T, error) {
	return d.backing.Get(index)
}

// RemoveAt removes and returns the element at index
func (d *Decorator[T]) RemoveAt(index int) (T, error) {
	return d.backing.RemoveAt(index)
}

// RemoveFunc removes the first element matching match
func (d *Decorator[T]) RemoveFunc(match func(T) bool) bool {
	return d.backing.RemoveFunc(match)
}

// IndexFunc returns the position of the first match or -1
func (d *Decorator[T]) IndexFunc(match func(T) bool) int {
	return d.backing.IndexFunc(match)
}

// ContainsFunc reports whether any element matches
func (d *Decorator[T]) ContainsFunc(match func(T) bool) bool {
	return d.backing.ContainsFunc(match)
}

// Len returns the number of elements
func (d *Decorator[T]) Len() int {
	return d.backing.Len()
}

// Clear removes every element
func (d *Decorator[T]) Clear() {
	d.backing.Clear()
}

// All iterates positions and elements in order
func (d *Decorator[T]) All() iter.Seq2[int, T] {
	return d.backing.All()
}

// Values returns a copy of the elements
func (d *Decorator[T]) Values() []T {
	return d.backing.Values()
}
