/*
Package mapx provides generic map helpers.

Package: mapx
Title: Map Utilities
Description: Deterministic key order, copying and merging for generic maps.
             Used by the structured logger for its fields and by the coded
             errors for their details.
Author: msto63
Version: v0.1.0
Created: 2026-10-14
Modified: 2026-10-17

Change History:
- 2026-10-14 v0.1.0: Trimmed to logging and error helpers

Named map types keep their type through every helper:

	type Fields map[string]interface{}

	f := mapx.Merge(Fields{"a": 1}, Fields{"b": 2}) // Fields{"a": 1, "b": 2}
	for _, k := range mapx.SortedKeys(f) {          // "a", "b"
		...
	}
*/
package mapx
