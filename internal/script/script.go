// ============================================================================
// nslist - Null-Safe Sequences
// ============================================================================
//
// Package:     script
// Description: Operation scripts exercised against null-safe lists
// Author:      Mike Stoffels
// Created:     2026-10-16
// License:     MIT
// ============================================================================

package script

import (
	"fmt"
	"strings"
)

// Op names a list operation a step performs
type Op string

const (
	OpAppend    Op = "append"
	OpInsert    Op = "insert"
	OpAssign    Op = "assign"
	OpAppendAll Op = "append_all"
	OpInsertAll Op = "insert_all"
	OpGet       Op = "get"
	OpRemoveAt  Op = "remove_at"
	OpRemove    Op = "remove"
	OpClear     Op = "clear"
	OpSize      Op = "size"
	OpContains  Op = "contains"
)

// Ops lists every supported operation in documentation order
var Ops = []Op{
	OpAppend, OpInsert, OpAssign, OpAppendAll, OpInsertAll,
	OpGet, OpRemoveAt, OpRemove, OpClear, OpSize, OpContains,
}

// IsValid reports whether o is a supported operation
func (o Op) IsValid() bool {
	for _, known := range Ops {
		if o == known {
			return true
		}
	}
	return false
}

// Mutating reports whether the operation goes through the null check
func (o Op) Mutating() bool {
	switch o {
	case OpAppend, OpInsert, OpAssign, OpAppendAll, OpInsertAll:
		return true
	default:
		return false
	}
}

// UsesIndex reports whether the step's index is meaningful for o
func (o Op) UsesIndex() bool {
	switch o {
	case OpInsert, OpAssign, OpInsertAll, OpGet, OpRemoveAt:
		return true
	default:
		return false
	}
}

// UsesValue reports whether the step's single value is meaningful for o
func (o Op) UsesValue() bool {
	switch o {
	case OpAppend, OpInsert, OpAssign, OpRemove, OpContains:
		return true
	default:
		return false
	}
}

// UsesValues reports whether the step's batch is meaningful for o
func (o Op) UsesValues() bool {
	return o == OpAppendAll || o == OpInsertAll
}

// Script is a named sequence of steps run against one list
type Script struct {
	Name        string `yaml:"name" toml:"name"`
	Description string `yaml:"description,omitempty" toml:"description,omitempty"`
	Seed        []any  `yaml:"seed,omitempty" toml:"seed,omitempty"`
	Steps       []Step `yaml:"steps" toml:"steps"`

	// Set by Load
	SourceFile string `yaml:"-" toml:"-"`
}

// Step is a single operation with its expected outcome. A nil Want leaves
// the contents unchecked; a nil Result leaves the returned value unchecked.
type Step struct {
	Op     Op     `yaml:"op" toml:"op"`
	Index  int    `yaml:"index,omitempty" toml:"index,omitempty"`
	Value  any    `yaml:"value,omitempty" toml:"value,omitempty"`
	Values []any  `yaml:"values,omitempty" toml:"values,omitempty"`
	Expect string `yaml:"expect,omitempty" toml:"expect,omitempty"`
	Want   []any  `yaml:"want,omitempty" toml:"want,omitempty"`
	Result any    `yaml:"result,omitempty" toml:"result,omitempty"`
}

// String renders the step the way it appears in reports, e.g.
// "insert_all(-1, [1 null])".
func (s Step) String() string {
	var args []string
	if s.Op.UsesIndex() {
		args = append(args, fmt.Sprint(s.Index))
	}
	if s.Op.UsesValue() {
		args = append(args, formatValue(s.Value))
	}
	if s.Op.UsesValues() {
		args = append(args, formatValues(s.Values))
	}
	return fmt.Sprintf("%s(%s)", s.Op, strings.Join(args, ", "))
}

func formatValue(v any) string {
	if v == nil {
		return "null"
	}
	return fmt.Sprint(v)
}

func formatValues(vs []any) string {
	if vs == nil {
		return "null"
	}
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = formatValue(v)
	}
	return "[" + strings.Join(parts, " ") + "]"
}
