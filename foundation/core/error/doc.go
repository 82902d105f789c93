// Package error provides the coded error type used across nslist.
//
// Package: error
// Title: nslist Error Handling Framework
// Description: Structured errors with codes, severities, operation names,
//              details and stack traces. Sequence operations report caller
//              defects with CodeNullArgument and CodeIndexOutOfRange; the
//              configuration and script layers use their own codes.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-12
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-12 v0.1.0: Initial implementation with contextual errors and codes
// - 2026-10-14 v0.1.1: Sentinel targets for errors.Is
//
// Usage:
//
//	import mdwerror "github.com/msto63/nslist/foundation/core/error"
//
//	err := mdwerror.New("value must not be absent").
//		WithCode(mdwerror.CodeNullArgument).
//		WithOperation("nullsafe.Insert").
//		WithDetail("index", -1)
//
//	var ErrNullArgument = mdwerror.Sentinel(mdwerror.CodeNullArgument, "null argument")
//	if errors.Is(err, ErrNullArgument) {
//		// caller passed an absent value
//	}
package error
