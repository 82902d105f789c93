// File: codes.go
// Title: Error Code Definitions
// Description: Defines the error codes used by the nslist collections, the
//              configuration layer and the script runner. Codes classify
//              failures so callers can branch on them without string matching.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-12
// Modified: 2026-10-12
//
// Change History:
// - 2026-10-12 v0.1.0: Initial code set for null-safe sequences

package error

import "strings"

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown          Code = "UNKNOWN"
	CodeInternal         Code = "INTERNAL"
	CodeNotFound         Code = "NOT_FOUND"
	CodeInvalidInput     Code = "INVALID_INPUT"
	CodeInvalidOperation Code = "INVALID_OPERATION"

	// Sequence usage defects
	CodeNullArgument    Code = "NULL_ARGUMENT"
	CodeIndexOutOfRange Code = "INDEX_OUT_OF_RANGE"
	CodeNoSuchElement   Code = "NO_SUCH_ELEMENT"

	// Configuration and environment
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeInvalidConfig Code = "INVALID_CONFIG"

	// Script execution
	CodeInvalidScript     Code = "INVALID_SCRIPT"
	CodeExpectationFailed Code = "EXPECTATION_FAILED"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known valid code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeNotFound, CodeInvalidInput, CodeInvalidOperation,
		CodeNullArgument, CodeIndexOutOfRange, CodeNoSuchElement,
		CodeConfigError, CodeInvalidConfig,
		CodeInvalidScript, CodeExpectationFailed:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeNullArgument, CodeIndexOutOfRange, CodeNoSuchElement, CodeInvalidInput, CodeInvalidOperation:
		return "usage"
	case CodeConfigError, CodeInvalidConfig:
		return "configuration"
	case CodeInvalidScript, CodeExpectationFailed:
		return "script"
	default:
		return "generic"
	}
}

// ParseCode maps a textual code back to a known Code. Matching ignores case
// and surrounding whitespace; unknown text yields CodeUnknown and false.
func ParseCode(s string) (Code, bool) {
	c := Code(strings.ToUpper(strings.TrimSpace(s)))
	if c.IsValid() {
		return c, true
	}
	return CodeUnknown, false
}
