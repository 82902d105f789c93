// File: list.go
// Title: Null-Safe List Capability
// Description: The capability shared by both null-safe variants and the
//              errors they raise.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation

package nullsafe

import (
	"github.com/msto63/nslist/foundation/collections/seq"
	mdwerror "github.com/msto63/nslist/foundation/core/error"
	"github.com/msto63/nslist/foundation/core/validation"
)

// List is a Sequence that never holds an absent element. Only the types in
// this package implement it.
type List[T any] interface {
	seq.Sequence[T]
	nullSafe()
}

var (
	// ErrNullArgument matches errors raised for an absent value or batch
	ErrNullArgument = validation.ErrNullArgument

	// ErrIndexOutOfRange matches errors raised for an illegal index
	ErrIndexOutOfRange = validation.ErrIndexOutOfRange

	// ErrInvalidCapacity matches errors raised for a negative capacity
	ErrInvalidCapacity = mdwerror.Sentinel(mdwerror.CodeInvalidInput, "invalid capacity")
)

// IsNullSafe reports whether s carries the null-safety guarantee
func IsNullSafe[T any](s seq.Sequence[T]) bool {
	_, ok := s.(List[T])
	return ok
}
