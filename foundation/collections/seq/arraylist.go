// File: arraylist.go
// Title: Slice-Backed Sequence
// Description: ArrayList stores elements in a Go slice. Capacity passed at
//              construction is a growth hint only.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-13
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-13 v0.1.0: Initial implementation on slicex

package seq

import (
	"iter"

	"github.com/msto63/nslist/foundation/utils/slicex"
)

// ArrayList is a slice-backed Sequence. The zero value is an empty list
// ready to use.
type ArrayList[T any] struct {
	elements []T
}

// NewArrayList creates an empty list with room for capacity elements.
// A negative capacity is treated as zero.
func NewArrayList[T any](capacity int) *ArrayList[T] {
	if capacity < 0 {
		capacity = 0
	}
	return &ArrayList[T]{elements: make([]T, 0, capacity)}
}

// ArrayListOf creates a list holding a copy of values
func ArrayListOf[T any](values ...T) *ArrayList[T] {
	l := NewArrayList[T](len(values))
	l.elements = append(l.elements, values...)
	return l
}

func (l *ArrayList[T]) Append(value T) error {
	l.elements = append(l.elements, value)
	return nil
}

func (l *ArrayList[T]) Insert(index int, value T) error {
	elements, ok := slicex.InsertAt(l.elements, index, value)
	if !ok {
		return checkInsert("insert", index, len(l.elements))
	}
	l.elements = elements
	return nil
}

func (l *ArrayList[T]) Set(index int, value T) (T, error) {
	if err := checkElement("set", index, len(l.elements)); err != nil {
		var zero T
		return zero, err
	}
	old := l.elements[index]
	l.elements[index] = value
	return old, nil
}

func (l *ArrayList[T]) AppendAll(values []T) error {
	l.elements = append(l.elements, values...)
	return nil
}

func (l *ArrayList[T]) InsertAll(index int, values []T) error {
	elements, ok := slicex.InsertAt(l.elements, index, values...)
	if !ok {
		return checkInsert("insert_all", index, len(l.elements))
	}
	l.elements = elements
	return nil
}

func (l *ArrayList[T]) Get(index int) (T, error) {
	if err := checkElement("get", index, len(l.elements)); err != nil {
		var zero T
		return zero, err
	}
	return l.elements[index], nil
}

func (l *ArrayList[T]) RemoveAt(index int) (T, error) {
	elements, removed, ok := slicex.RemoveAt(l.elements, index)
	if !ok {
		return removed, checkElement("remove_at", index, len(l.elements))
	}
	l.elements = elements
	return removed, nil
}

func (l *ArrayList[T]) RemoveFunc(match func(T) bool) bool {
	i := slicex.IndexOfBy(l.elements, match)
	if i < 0 {
		return false
	}
	l.elements, _, _ = slicex.RemoveAt(l.elements, i)
	return true
}

func (l *ArrayList[T]) IndexFunc(match func(T) bool) int {
	return slicex.IndexOfBy(l.elements, match)
}

func (l *ArrayList[T]) ContainsFunc(match func(T) bool) bool {
	return slicex.ContainsBy(l.elements, match)
}

func (l *ArrayList[T]) Len() int {
	return len(l.elements)
}

// Cap returns the number of elements the list can hold without growing
func (l *ArrayList[T]) Cap() int {
	return cap(l.elements)
}

// Clear removes all elements and keeps the allocated capacity
func (l *ArrayList[T]) Clear() {
	clear(l.elements)
	l.elements = l.elements[:0]
}

func (l *ArrayList[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, v := range l.elements {
			if !yield(i, v) {
				return
			}
		}
	}
}

func (l *ArrayList[T]) Values() []T {
	return slicex.Clone(l.elements)
}
