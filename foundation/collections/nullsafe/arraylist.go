// File: arraylist.go
// Title: Specialized Null-Safe List
// Description: ArrayList owns its storage through an embedded seq.ArrayList
//              and overrides only the five mutating methods. Reads, removal
//              and Clear are promoted unchanged.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation
// - 2026-10-17 v0.1.1: Method docs

package nullsafe

import (
	"github.com/msto63/nslist/foundation/collections/seq"
	"github.com/msto63/nslist/foundation/core/validation"
)

// ArrayList is a slice-backed List. The zero value is empty, uses the
// default absence detector and is ready to use.
type ArrayList[T any] struct {
	seq.ArrayList[T]
	guard validation.Guard[T]
}

func (l *ArrayList[T]) nullSafe() {}

// Append adds value at the end, rejecting an absent value
func (l *ArrayList[T]) Append(value T) error {
	size := l.Len()
	if err := l.guard.ValidateSingle(validation.OpAppend, size, size, value); err != nil {
		return err
	}
	return l.ArrayList.Append(value)
}

// Insert places value at index. Absence is checked before the index.
func (l *ArrayList[T]) Insert(index int, value T) error {
	if err := l.guard.ValidateSingle(validation.OpInsert, index, l.Len(), value); err != nil {
		return err
	}
	return l.ArrayList.Insert(index, value)
}

// Set replaces the element at index and returns the previous one
func (l *ArrayList[T]) Set(index int, value T) (T, error) {
	if err := l.guard.ValidateSingle(validation.OpAssign, index, l.Len(), value); err != nil {
		var zero T
		return zero, err
	}
	return l.ArrayList.Set(index, value)
}

// AppendAll adds the batch at the end, or nothing if any element is absent
func (l *ArrayList[T]) AppendAll(values []T) error {
	size := l.Len()
	if err := l.guard.ValidateBatch(validation.OpAppendAll, size, size, values); err != nil {
		return err
	}
	return l.ArrayList.AppendAll(values)
}

// InsertAll places the batch at index, or nothing if any element is absent
func (l *ArrayList[T]) InsertAll(index int, values []T) error {
	if err := l.guard.ValidateBatch(validation.OpInsertAll, index, l.Len(), values); err != nil {
		return err
	}
	return l.ArrayList.InsertAll(index, values)
}
