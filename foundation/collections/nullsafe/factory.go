// File: factory.go
// Title: Null-Safe List Construction
// Description: Constructors for both variants: wrapping an existing
//              sequence, wrapping with an initial batch, and empty lists
//              with a capacity hint.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-14 v0.1.0: Wrap, WrapWith, WithCapacity, NewArrayList
// - 2026-10-16 v0.1.1: Custom absence detectors through options

package nullsafe

import (
	"github.com/msto63/nslist/foundation/collections/seq"
	mdwerror "github.com/msto63/nslist/foundation/core/error"
	"github.com/msto63/nslist/foundation/core/validation"
)

// Option configures a list built by this package
type Option[T any] func(*options[T])

type options[T any] struct {
	absent validation.AbsenceFunc[T]
}

// WithAbsence replaces the default absence detector
func WithAbsence[T any](absent validation.AbsenceFunc[T]) Option[T] {
	return func(o *options[T]) {
		o.absent = absent
	}
}

func newGuard[T any](opts []Option[T]) validation.Guard[T] {
	var o options[T]
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return validation.NewGuard(o.absent)
}

// Wrap makes s null-safe. The returned Decorator takes exclusive ownership
// of s. Wrap fails with NULL_ARGUMENT when s is nil or already holds an
// absent element.
func Wrap[T any](s seq.Sequence[T], opts ...Option[T]) (*Decorator[T], error) {
	guard := newGuard(opts)
	if err := checkBacking(s, guard, "wrap"); err != nil {
		return nil, err
	}
	return &Decorator[T]{backing: s, guard: guard}, nil
}

// WrapFunc is Wrap with a custom absence detector
func WrapFunc[T any](s seq.Sequence[T], absent validation.AbsenceFunc[T]) (*Decorator[T], error) {
	return Wrap(s, WithAbsence(absent))
}

// WrapWith wraps s and inserts batch at position 0. The batch is validated
// completely before s is touched, so on failure s is left exactly as it
// was passed in.
func WrapWith[T any](s seq.Sequence[T], batch []T, opts ...Option[T]) (*Decorator[T], error) {
	guard := newGuard(opts)
	if err := checkBacking(s, guard, "wrap_with"); err != nil {
		return nil, err
	}
	if err := guard.ValidateBatch(validation.OpInsertAll, 0, s.Len(), batch); err != nil {
		return nil, err
	}

	d := &Decorator[T]{backing: s, guard: guard}
	if err := s.InsertAll(0, batch); err != nil {
		return nil, mdwerror.Wrap(err, "insert initial batch")
	}
	return d, nil
}

// WithCapacity creates an empty Decorator over a slice-backed sequence.
// The capacity is a hint, not a size.
func WithCapacity[T any](capacity int, opts ...Option[T]) (*Decorator[T], error) {
	if err := checkCapacity(capacity, "with_capacity"); err != nil {
		return nil, err
	}
	return &Decorator[T]{backing: seq.NewArrayList[T](capacity), guard: newGuard(opts)}, nil
}

// NewArrayList creates an empty specialized list with a capacity hint
func NewArrayList[T any](capacity int, opts ...Option[T]) (*ArrayList[T], error) {
	if err := checkCapacity(capacity, "new_array_list"); err != nil {
		return nil, err
	}
	return &ArrayList[T]{ArrayList: *seq.NewArrayList[T](capacity), guard: newGuard(opts)}, nil
}

// NewArrayListFunc is NewArrayList with a custom absence detector
func NewArrayListFunc[T any](capacity int, absent validation.AbsenceFunc[T]) (*ArrayList[T], error) {
	return NewArrayList(capacity, WithAbsence(absent))
}

// ArrayListOf creates a specialized list holding values. It fails with
// NULL_ARGUMENT if any value is absent.
func ArrayListOf[T any](values ...T) (*ArrayList[T], error) {
	return ArrayListFrom(values)
}

// ArrayListFrom creates a specialized list holding a copy of values
func ArrayListFrom[T any](values []T, opts ...Option[T]) (*ArrayList[T], error) {
	l, err := NewArrayList(len(values), opts...)
	if err != nil {
		return nil, err
	}
	if len(values) == 0 {
		return l, nil
	}
	if err := l.AppendAll(values); err != nil {
		return nil, err
	}
	return l, nil
}

func checkBacking[T any](s seq.Sequence[T], guard validation.Guard[T], op string) error {
	if validation.IsAbsent(s) {
		return mdwerror.New("absent backing sequence").
			WithCode(mdwerror.CodeNullArgument).
			WithOperation(op)
	}
	if pos := s.IndexFunc(guard.Absent); pos >= 0 {
		return mdwerror.Newf("backing sequence holds an absent element at position %d", pos).
			WithCode(mdwerror.CodeNullArgument).
			WithOperation(op).
			WithDetail("position", pos).
			WithDetail("size", s.Len())
	}
	return nil
}

func checkCapacity(capacity int, op string) error {
	if capacity >= 0 {
		return nil
	}
	return mdwerror.Newf("negative capacity %d", capacity).
		WithCode(mdwerror.CodeInvalidInput).
		WithOperation(op).
		WithDetail("capacity", capacity)
}
