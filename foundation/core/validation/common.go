// File: common.go
// Title: Absence Detection
// Description: Default detection of absent values for arbitrary element
//              types. Nil references are absent; values of non-nullable
//              types are never absent unless they opt in via Absenter.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-13
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-13 v0.1.0: Reflection based nil detection
// - 2026-10-14 v0.1.1: Absenter for optional-style value types

package validation

import "reflect"

// Absenter is implemented by optional-style types that can represent "no
// value" without being nil.
type Absenter interface {
	IsAbsent() bool
}

// AbsenceFunc reports whether a value is absent
type AbsenceFunc[T any] func(value T) bool

// IsAbsent is the default absence detector. It reports true for an untyped
// nil, for nil pointers, interfaces, maps, slices, funcs and channels, and
// for non-nil values whose IsAbsent method says so.
func IsAbsent[T any](value T) bool {
	v := any(value)
	if v == nil {
		return true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice,
		reflect.Func, reflect.Chan, reflect.UnsafePointer:
		if rv.IsNil() {
			return true
		}
	}

	if a, ok := v.(Absenter); ok {
		return a.IsAbsent()
	}
	return false
}

// Nullable reports whether any value of T can be absent under IsAbsent.
func Nullable[T any]() bool {
	t := reflect.TypeOf((*T)(nil)).Elem()
	switch t.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice,
		reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return true
	}
	return t.Implements(reflect.TypeOf((*Absenter)(nil)).Elem())
}
