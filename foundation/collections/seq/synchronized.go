// File: synchronized.go
// Title: Synchronized Sequence
// Description: Wraps any Sequence with a read/write mutex so it can be
//              shared between goroutines.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation
// - 2026-10-17 v0.1.1: Locking note for validating wrappers

package seq

import (
	"iter"
	"sync"
)

// Synchronized guards every call on the wrapped sequence with a mutex.
// Match functions passed to the search methods run while the lock is held
// and must not call back into the same sequence.
type Synchronized[T any] struct {
	mu  sync.RWMutex
	seq Sequence[T]
}

// Synchronize wraps s. The caller must not use s directly afterwards.
// Each call locks separately, so a wrapper that validates through Len and
// then writes should itself be wrapped here when the pair must be atomic.
func Synchronize[T any](s Sequence[T]) *Synchronized[T] {
	return &Synchronized[T]{seq: s}
}

// Do runs fn with exclusive access, for compound operations that must not
// interleave with other callers.
func (s *Synchronized[T]) Do(fn func(Sequence[T]) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.seq)
}

func (s *Synchronized[T]) Append(value T) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.seq.Append(value)
}

func (s *Synchronized[T]) Insert(index int, value T) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.seq.Insert(index, value)
}

func (s *Synchronized[T]) Set(index int, value T) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.seq.Set(index, value)
}

func (s *Synchronized[T]) AppendAll(values []T) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.seq.AppendAll(values)
}

func (s *Synchronized[T]) InsertAll(index int, values []T) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.seq.InsertAll(index, values)
}

func (s *Synchronized[T]) Get(index int) (T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.seq.Get(index)
}

func (s *Synchronized[T]) RemoveAt(index int) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.seq.RemoveAt(index)
}

func (s *Synchronized[T]) RemoveFunc(match func(T) bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.seq.RemoveFunc(match)
}

func (s *Synchronized[T]) IndexFunc(match func(T) bool) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.seq.IndexFunc(match)
}

func (s *Synchronized[T]) ContainsFunc(match func(T) bool) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.seq.ContainsFunc(match)
}

func (s *Synchronized[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.seq.Len()
}

func (s *Synchronized[T]) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq.Clear()
}

// All iterates over a snapshot taken when iteration starts
func (s *Synchronized[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, v := range s.Values() {
			if !yield(i, v) {
				return
			}
		}
	}
}

func (s *Synchronized[T]) Values() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.seq.Values()
}
