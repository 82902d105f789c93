// File: linkedlist.go
// Title: Linked Sequence
// Description: LinkedList adapts the gods doubly linked list to Sequence.
//              Positions are validated here because the gods list silently
//              ignores out of range inserts and updates. Only single value
//              Insert and Remove are used for positional writes: the gods
//              multi value Insert misplaces values in the back half and
//              its Set prints to stdout.
// Author: msto63
// Version: v0.1.1
// Created: 2026-10-14
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation on gods doublylinkedlist
// - 2026-10-17 v0.1.1: Element wise InsertAll, Set via Remove and Insert

package seq

import (
	"iter"

	"github.com/emirpasic/gods/lists/doublylinkedlist"
)

// LinkedList is a Sequence backed by a doubly linked list
type LinkedList[T any] struct {
	list *doublylinkedlist.List
}

// NewLinkedList creates an empty linked list
func NewLinkedList[T any]() *LinkedList[T] {
	return &LinkedList[T]{list: doublylinkedlist.New()}
}

// LinkedListOf creates a linked list holding values
func LinkedListOf[T any](values ...T) *LinkedList[T] {
	l := NewLinkedList[T]()
	l.list.Add(boxAll(values)...)
	return l
}

// boxAll converts values for the untyped gods API
func boxAll[T any](values []T) []interface{} {
	boxed := make([]interface{}, len(values))
	for i, v := range values {
		boxed[i] = v
	}
	return boxed
}

// unbox returns the zero T for a stored nil interface
func unbox[T any](v interface{}) T {
	t, _ := v.(T)
	return t
}

func (l *LinkedList[T]) Append(value T) error {
	l.list.Add(value)
	return nil
}

func (l *LinkedList[T]) Insert(index int, value T) error {
	if err := checkInsert("insert", index, l.list.Size()); err != nil {
		return err
	}
	l.list.Insert(index, value)
	return nil
}

func (l *LinkedList[T]) Set(index int, value T) (T, error) {
	if err := checkElement("set", index, l.list.Size()); err != nil {
		var zero T
		return zero, err
	}
	old, _ := l.list.Get(index)
	l.list.Remove(index)
	l.list.Insert(index, value)
	return unbox[T](old), nil
}

func (l *LinkedList[T]) AppendAll(values []T) error {
	if len(values) > 0 {
		l.list.Add(boxAll(values)...)
	}
	return nil
}

func (l *LinkedList[T]) InsertAll(index int, values []T) error {
	if err := checkInsert("insert_all", index, l.list.Size()); err != nil {
		return err
	}
	for i, v := range values {
		l.list.Insert(index+i, v)
	}
	return nil
}

func (l *LinkedList[T]) Get(index int) (T, error) {
	if err := checkElement("get", index, l.list.Size()); err != nil {
		var zero T
		return zero, err
	}
	v, _ := l.list.Get(index)
	return unbox[T](v), nil
}

func (l *LinkedList[T]) RemoveAt(index int) (T, error) {
	if err := checkElement("remove_at", index, l.list.Size()); err != nil {
		var zero T
		return zero, err
	}
	v, _ := l.list.Get(index)
	l.list.Remove(index)
	return unbox[T](v), nil
}

func (l *LinkedList[T]) RemoveFunc(match func(T) bool) bool {
	i := l.IndexFunc(match)
	if i < 0 {
		return false
	}
	l.list.Remove(i)
	return true
}

func (l *LinkedList[T]) IndexFunc(match func(T) bool) int {
	if match == nil {
		return -1
	}
	it := l.list.Iterator()
	for it.Next() {
		if match(unbox[T](it.Value())) {
			return it.Index()
		}
	}
	return -1
}

func (l *LinkedList[T]) ContainsFunc(match func(T) bool) bool {
	return l.IndexFunc(match) >= 0
}

func (l *LinkedList[T]) Len() int {
	return l.list.Size()
}

func (l *LinkedList[T]) Clear() {
	l.list.Clear()
}

func (l *LinkedList[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		it := l.list.Iterator()
		for it.Next() {
			if !yield(it.Index(), unbox[T](it.Value())) {
				return
			}
		}
	}
}

func (l *LinkedList[T]) Values() []T {
	values := make([]T, 0, l.list.Size())
	for _, v := range l.list.Values() {
		values = append(values, unbox[T](v))
	}
	return values
}
