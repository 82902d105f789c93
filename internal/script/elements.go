// ============================================================================
// nslist - Null-Safe Sequences
// ============================================================================
//
// Package:     script
// Description: Conversion of decoded script values into list elements
// Author:      Mike Stoffels
// Created:     2026-10-16
// License:     MIT
// ============================================================================

package script

import (
	"fmt"
	"strings"

	"github.com/msto63/nslist/foundation/utils/slicex"
)

// Element converts a decoded value into a list element. A nil value or the
// null token becomes the absent element (a nil pointer). Everything else is
// rendered with fmt.Sprint, so `4` in YAML and `4` in TOML both become "4".
func Element(v any, nullToken string) *string {
	if v == nil {
		return nil
	}
	s := fmt.Sprint(v)
	if nullToken != "" && s == nullToken {
		return nil
	}
	return &s
}

// Elements converts a decoded list. A nil list stays nil, which the lists
// treat as an absent collection.
func Elements(vs []any, nullToken string) []*string {
	return slicex.Map(vs, func(v any) *string { return Element(v, nullToken) })
}

// Text renders an element for reports and comparisons
func Text(e *string) string {
	if e == nil {
		return "null"
	}
	return *e
}

// Texts renders a list of elements as "[a b c]"
func Texts(es []*string) string {
	return "[" + strings.Join(slicex.Map(es, Text), " ") + "]"
}

// Same reports whether two elements are both absent or hold the same text
func Same(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
