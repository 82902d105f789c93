// ============================================================================
// nslist - Null-Safe Sequences
// ============================================================================
//
// Package:     script
// Description: Structural validation of scripts before they run
// Author:      Mike Stoffels
// Created:     2026-10-16
// License:     MIT
// ============================================================================

package script

import (
	"fmt"

	mdwerror "github.com/msto63/nslist/foundation/core/error"
	"github.com/msto63/nslist/foundation/core/validation"
)

// ExpectedCode returns the error code the step expects, or "" for success
func (s Step) ExpectedCode() mdwerror.Code {
	if s.Expect == "" {
		return ""
	}
	code, _ := mdwerror.ParseCode(s.Expect)
	return code
}

// returnsValue reports whether the operation produces a checkable result
func (o Op) returnsValue() bool {
	switch o {
	case OpAssign, OpGet, OpRemoveAt, OpRemove, OpSize, OpContains:
		return true
	default:
		return false
	}
}

// Check validates the script structure and returns every problem found.
// Absent values, absent batches and bad indices are legal: they are what
// scripts exist to exercise.
func (s *Script) Check() validation.ValidationResult {
	result := validation.NewValidationResult()
	result.WithContext("script", s.Name)

	if len(s.Steps) == 0 {
		result.AddFieldError(mdwerror.CodeInvalidScript, "steps", "script has no steps", nil)
	}

	for i, step := range s.Steps {
		field := fmt.Sprintf("steps[%d]", i)

		if !step.Op.IsValid() {
			result.AddFieldError(mdwerror.CodeInvalidScript, field+".op",
				fmt.Sprintf("unknown operation %q", step.Op), string(step.Op))
			continue
		}
		if step.Expect != "" {
			if _, ok := mdwerror.ParseCode(step.Expect); !ok {
				result.AddFieldError(mdwerror.CodeInvalidScript, field+".expect",
					fmt.Sprintf("unknown error code %q", step.Expect), step.Expect)
			}
		}
		if !step.Op.UsesIndex() && step.Index != 0 {
			result.AddFieldError(mdwerror.CodeInvalidScript, field+".index",
				fmt.Sprintf("%s does not take an index", step.Op), step.Index)
		}
		if !step.Op.UsesValue() && step.Value != nil {
			result.AddFieldError(mdwerror.CodeInvalidScript, field+".value",
				fmt.Sprintf("%s does not take a value", step.Op), step.Value)
		}
		if !step.Op.UsesValues() && step.Values != nil {
			result.AddFieldError(mdwerror.CodeInvalidScript, field+".values",
				fmt.Sprintf("%s does not take values", step.Op), step.Values)
		}
		if step.Result != nil {
			switch {
			case !step.Op.returnsValue():
				result.AddFieldError(mdwerror.CodeInvalidScript, field+".result",
					fmt.Sprintf("%s returns no result", step.Op), step.Result)
			case step.Expect != "":
				result.AddFieldError(mdwerror.CodeInvalidScript, field+".result",
					"a result cannot be checked when an error is expected", step.Result)
			}
		}
	}

	return result
}

// Validate returns nil for a runnable script, or an INVALID_SCRIPT error
// describing the first problem and counting the rest.
func (s *Script) Validate() error {
	result := s.Check()
	if result.Valid {
		return nil
	}
	err := result.ToError()
	if coded, ok := err.(*mdwerror.Error); ok {
		coded.WithOperation("script.Validate")
		if s.SourceFile != "" {
			coded.WithDetail("path", s.SourceFile)
		}
	}
	return err
}
