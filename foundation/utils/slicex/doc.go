/*
Package slicex provides generic slice helpers.

Package: slicex
Title: Slice Utilities
Description: Positional insert and removal, predicate search, comparison and
             formatting for generic slices. Used as the storage engine of the
             slice-backed sequence.
Author: msto63
Version: v0.1.0
Created: 2026-10-13
Modified: 2026-10-14

Change History:
- 2026-10-13 v0.1.0: Trimmed to sequence helpers

Positional helpers never panic on a bad index; they report success instead:

	s, ok := slicex.InsertAt([]int{1, 4}, 1, 2, 3) // [1 2 3 4], true
	s, removed, ok := slicex.RemoveAt(s, 0)        // [2 3 4], 1, true

Predicate helpers treat a nil predicate as matching nothing.
*/
package slicex
