// ============================================================================
// nslist - Null-Safe Sequences
// ============================================================================
//
// Package:     runner
// Description: Built-in scenarios every list variant must pass
// Author:      Mike Stoffels
// Created:     2026-10-16
// License:     MIT
// ============================================================================

package runner

import "github.com/msto63/nslist/internal/script"

// Scenarios returns the reference scenarios for null-safe lists. Each call
// returns fresh scripts that callers may modify.
func Scenarios() []*script.Script {
	return []*script.Script{
		{
			Name:        "append-then-insert",
			Description: "appending and inserting present values keeps order",
			Steps: []script.Step{
				{Op: script.OpAppend, Value: 1},
				{Op: script.OpInsert, Index: 1, Value: 2, Want: []any{1, 2}},
			},
		},
		{
			Name:        "batches-and-clear",
			Description: "batch operations place elements contiguously; clear empties the list",
			Steps: []script.Step{
				{Op: script.OpAppendAll, Values: []any{1, 2, 3}, Want: []any{1, 2, 3}},
				{Op: script.OpClear, Want: []any{}},
				{Op: script.OpInsert, Index: 0, Value: 4},
				{Op: script.OpInsertAll, Index: 1, Values: []any{1, 2, 3}, Want: []any{4, 1, 2, 3}},
			},
		},
		{
			Name:        "assign-and-reject",
			Description: "assigning an absent value fails before the index is checked",
			Seed:        []any{1, 2, 3},
			Steps: []script.Step{
				{Op: script.OpAssign, Index: 1, Value: 4, Result: 2, Want: []any{1, 4, 3}},
				{Op: script.OpAssign, Index: 0, Value: nil, Expect: "NULL_ARGUMENT", Want: []any{1, 4, 3}},
				{Op: script.OpAssign, Index: -1, Value: nil, Expect: "NULL_ARGUMENT", Want: []any{1, 4, 3}},
			},
		},
		{
			Name:        "null-before-range",
			Description: "absence is reported ahead of a bad position, and batches stay atomic",
			Steps: []script.Step{
				{Op: script.OpInsert, Index: -1, Value: 0, Expect: "INDEX_OUT_OF_RANGE"},
				{Op: script.OpInsert, Index: -1, Value: nil, Expect: "NULL_ARGUMENT"},
				{Op: script.OpInsertAll, Index: -1, Values: []any{1, nil}, Expect: "NULL_ARGUMENT", Want: []any{}},
			},
		},
	}
}
