// File: interfaces.go
// Title: Validation Results
// Description: Collected validation results. Where the guard stops at the
//              first defect, a ValidationResult lists every defect found,
//              and converts to a coded error for callers that need one.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-13
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-13 v0.1.0: Result types carried over to sequence validation
// - 2026-10-14 v0.1.1: Codes share the core/error code space

package validation

import (
	"fmt"
	"strings"

	mdwerror "github.com/msto63/nslist/foundation/core/error"
)

// ValidationResult represents the result of a validation operation
type ValidationResult struct {
	Valid   bool                   `json:"valid"`
	Errors  []ValidationError      `json:"errors,omitempty"`
	Context map[string]interface{} `json:"context,omitempty"`
}

// ValidationError represents a single validation error
type ValidationError struct {
	Code     mdwerror.Code          `json:"code"`
	Field    string                 `json:"field,omitempty"`
	Message  string                 `json:"message"`
	Value    interface{}            `json:"value,omitempty"`
	Context  map[string]interface{} `json:"context,omitempty"`
	Expected interface{}            `json:"expected,omitempty"`
}

// NewValidationResult creates a successful validation result
func NewValidationResult() ValidationResult {
	return ValidationResult{Valid: true}
}

// NewValidationError creates a failed validation result with a single error
func NewValidationError(code mdwerror.Code, message string) ValidationResult {
	return ValidationResult{
		Valid:  false,
		Errors: []ValidationError{{Code: code, Message: message}},
	}
}

// AddError adds an error to an existing validation result
func (r *ValidationResult) AddError(code mdwerror.Code, message string) *ValidationResult {
	r.Valid = false
	r.Errors = append(r.Errors, ValidationError{Code: code, Message: message})
	return r
}

// AddFieldError adds a field-specific error to the validation result
func (r *ValidationResult) AddFieldError(code mdwerror.Code, field, message string, value interface{}) *ValidationResult {
	r.Valid = false
	r.Errors = append(r.Errors, ValidationError{
		Code:    code,
		Field:   field,
		Message: message,
		Value:   value,
	})
	return r
}

// WithContext adds context information to the validation result
func (r *ValidationResult) WithContext(key string, value interface{}) *ValidationResult {
	if r.Context == nil {
		r.Context = make(map[string]interface{})
	}
	r.Context[key] = value
	return r
}

// FirstError returns the first validation error, or nil if validation passed
func (r ValidationResult) FirstError() *ValidationError {
	if len(r.Errors) == 0 {
		return nil
	}
	return &r.Errors[0]
}

// ErrorMessages returns all error messages
func (r ValidationResult) ErrorMessages() []string {
	messages := make([]string, len(r.Errors))
	for i, err := range r.Errors {
		messages[i] = err.Message
	}
	return messages
}

// ErrorCodes returns all error codes
func (r ValidationResult) ErrorCodes() []mdwerror.Code {
	codes := make([]mdwerror.Code, len(r.Errors))
	for i, err := range r.Errors {
		codes[i] = err.Code
	}
	return codes
}

// HasError checks if the result contains a specific error code
func (r ValidationResult) HasError(code mdwerror.Code) bool {
	for _, err := range r.Errors {
		if err.Code == code {
			return true
		}
	}
	return false
}

// ToError converts the result to a coded error built from the first
// validation error. Returns nil if validation passed.
func (r ValidationResult) ToError() error {
	if r.Valid {
		return nil
	}

	if len(r.Errors) == 0 {
		return mdwerror.New("validation failed").WithCode(mdwerror.CodeInvalidInput)
	}

	first := r.Errors[0]
	err := mdwerror.New(first.Message).WithCode(first.Code)

	if first.Field != "" {
		err = err.WithDetail("field", first.Field)
	}
	if first.Value != nil {
		err = err.WithDetail("value", first.Value)
	}
	if first.Expected != nil {
		err = err.WithDetail("expected", first.Expected)
	}
	for key, value := range first.Context {
		err = err.WithDetail(key, value)
	}

	if len(r.Errors) > 1 {
		err = err.WithDetail("total_errors", len(r.Errors))
		err = err.WithDetail("all_messages", r.ErrorMessages())
	}

	return err
}

// String returns a human-readable representation of the validation result
func (r ValidationResult) String() string {
	if r.Valid {
		return "ValidationResult{valid: true}"
	}

	parts := []string{"ValidationResult{valid: false"}
	if len(r.Errors) > 0 {
		parts = append(parts, fmt.Sprintf("errors: %d", len(r.Errors)))
		first := r.Errors[0]
		parts = append(parts, fmt.Sprintf("first: %s", first.Message))
		if first.Field != "" {
			parts = append(parts, fmt.Sprintf("field: %s", first.Field))
		}
	}
	return strings.Join(parts, ", ") + "}"
}

// String returns a human-readable representation of a validation error
func (e ValidationError) String() string {
	var parts []string

	if e.Field != "" {
		parts = append(parts, fmt.Sprintf("field:%s", e.Field))
	}
	parts = append(parts, fmt.Sprintf("code:%s", e.Code))
	parts = append(parts, fmt.Sprintf("message:%s", e.Message))
	if e.Value != nil {
		parts = append(parts, fmt.Sprintf("value:%v", e.Value))
	}
	if e.Expected != nil {
		parts = append(parts, fmt.Sprintf("expected:%v", e.Expected))
	}

	return fmt.Sprintf("ValidationError{%s}", strings.Join(parts, ", "))
}

// Combine merges multiple validation results into a single result
func Combine(results ...ValidationResult) ValidationResult {
	combined := NewValidationResult()

	for _, result := range results {
		if !result.Valid {
			combined.Valid = false
			combined.Errors = append(combined.Errors, result.Errors...)
		}
		for key, value := range result.Context {
			combined.WithContext(key, value)
		}
	}

	return combined
}
