// File: mapx.go
// Title: Map Utilities
// Description: Generic map helpers used by the logger fields and error
//              details: deterministic key order, copying and merging. All
//              helpers accept nil maps.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-14 v0.1.0: Trimmed to the helpers logging and errors need
// - 2026-10-17 v0.1.1: Map type parameters so named maps keep their type

package mapx

import (
	"cmp"
	"slices"
)

// Keys returns the keys of m in unspecified order
func Keys[M ~map[K]V, K comparable, V any](m M) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}

// SortedKeys returns the keys of m in ascending order
func SortedKeys[M ~map[K]V, K cmp.Ordered, V any](m M) []K {
	keys := Keys(m)
	slices.Sort(keys)
	return keys
}

// Clone returns a shallow copy of m. A nil map stays nil.
func Clone[M ~map[K]V, K comparable, V any](m M) M {
	if m == nil {
		return nil
	}
	result := make(M, len(m))
	for k, v := range m {
		result[k] = v
	}
	return result
}

// Merge combines maps into a new, never nil map. Later maps win on
// conflicting keys.
func Merge[M ~map[K]V, K comparable, V any](maps ...M) M {
	size := 0
	for _, m := range maps {
		size += len(m)
	}

	result := make(M, size)
	for _, m := range maps {
		for k, v := range m {
			result[k] = v
		}
	}
	return result
}
