// File: slicex.go
// Title: Slice Utilities
// Description: Generic slice helpers used by the slice-backed sequence:
//              positional insert and removal, predicate search, comparison
//              and formatting. All helpers accept nil slices.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-13
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-13 v0.1.0: Trimmed to the helpers the sequences need
// - 2026-10-14 v0.1.1: Positional insert and removal

package slicex

import (
	"fmt"
	"slices"
	"strings"
)

// ===============================
// Positional Operations
// ===============================

// InsertAt inserts values at index, shifting later elements right. It
// reports false and returns slice unchanged when index is outside [0, len].
func InsertAt[T any](slice []T, index int, values ...T) ([]T, bool) {
	if index < 0 || index > len(slice) {
		return slice, false
	}
	if len(values) == 0 {
		return slice, true
	}
	return slices.Insert(slice, index, values...), true
}

// RemoveAt removes the element at index and returns it. It reports false
// and returns slice unchanged when index is outside [0, len).
func RemoveAt[T any](slice []T, index int) ([]T, T, bool) {
	var zero T
	if index < 0 || index >= len(slice) {
		return slice, zero, false
	}
	removed := slice[index]
	slice = slices.Delete(slice, index, index+1)
	return slice, removed, true
}

// ===============================
// Transformation
// ===============================

// Filter returns a new slice containing only elements that match the predicate
func Filter[T any](slice []T, predicate func(T) bool) []T {
	if slice == nil || predicate == nil {
		return nil
	}

	result := make([]T, 0, len(slice))
	for _, item := range slice {
		if predicate(item) {
			result = append(result, item)
		}
	}
	return result
}

// Map transforms each element in the slice using the provided function
func Map[T, R any](slice []T, mapper func(T) R) []R {
	if slice == nil || mapper == nil {
		return nil
	}

	result := make([]R, len(slice))
	for i, item := range slice {
		result[i] = mapper(item)
	}
	return result
}

// Clone creates a shallow copy of the slice
func Clone[T any](slice []T) []T {
	if slice == nil {
		return nil
	}

	result := make([]T, len(slice))
	copy(result, slice)
	return result
}

// ===============================
// Search
// ===============================

// IndexOfBy returns the first index where predicate returns true, or -1
func IndexOfBy[T any](slice []T, predicate func(T) bool) int {
	if predicate == nil {
		return -1
	}
	for i, item := range slice {
		if predicate(item) {
			return i
		}
	}
	return -1
}

// ContainsBy checks if the slice contains an element matching the predicate
func ContainsBy[T any](slice []T, predicate func(T) bool) bool {
	return IndexOfBy(slice, predicate) >= 0
}

// Every checks if all elements match the predicate. An empty slice matches.
func Every[T any](slice []T, predicate func(T) bool) bool {
	if predicate == nil {
		return false
	}
	for _, item := range slice {
		if !predicate(item) {
			return false
		}
	}
	return true
}

// Count returns the number of elements matching the predicate
func Count[T any](slice []T, predicate func(T) bool) int {
	if predicate == nil {
		return 0
	}
	count := 0
	for _, item := range slice {
		if predicate(item) {
			count++
		}
	}
	return count
}

// ===============================
// Comparison
// ===============================

// Equal checks if two slices hold equal elements in the same order
func Equal[T comparable](slice1, slice2 []T) bool {
	if len(slice1) != len(slice2) {
		return false
	}
	for i, item := range slice1 {
		if item != slice2[i] {
			return false
		}
	}
	return true
}

// EqualBy checks if two slices are equal using a comparison function
func EqualBy[T any](slice1, slice2 []T, equal func(T, T) bool) bool {
	if len(slice1) != len(slice2) || equal == nil {
		return false
	}
	for i, item := range slice1 {
		if !equal(item, slice2[i]) {
			return false
		}
	}
	return true
}

// ===============================
// String Conversion
// ===============================

// Join converts elements to strings with %v and joins them with separator
func Join[T any](slice []T, separator string) string {
	if len(slice) == 0 {
		return ""
	}

	parts := make([]string, len(slice))
	for i, item := range slice {
		parts[i] = fmt.Sprintf("%v", item)
	}
	return strings.Join(parts, separator)
}
