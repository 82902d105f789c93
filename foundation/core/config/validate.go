// File: validate.go
// Title: Configuration Validation
// Description: Checks a loaded configuration and reports every invalid
//              field at once as an INVALID_CONFIG error.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation

package config

import (
	"fmt"

	mdwerror "github.com/msto63/nslist/foundation/core/error"
	mdwlog "github.com/msto63/nslist/foundation/core/log"
	"github.com/msto63/nslist/foundation/core/validation"
)

// Check validates the configuration and returns every problem found
func (c *Config) Check() validation.ValidationResult {
	result := validation.NewValidationResult()

	if _, err := mdwlog.ParseLevel(c.General.LogLevel); err != nil {
		result.AddFieldError(mdwerror.CodeInvalidConfig, "general.log_level",
			fmt.Sprintf("unknown log level %q", c.General.LogLevel), c.General.LogLevel)
	}
	if _, err := mdwlog.ParseFormat(c.General.LogFormat); err != nil {
		result.AddFieldError(mdwerror.CodeInvalidConfig, "general.log_format",
			fmt.Sprintf("unknown log format %q", c.General.LogFormat), c.General.LogFormat)
	}

	switch c.List.Variant {
	case VariantDecorator, VariantSpecialized:
	default:
		result.AddFieldError(mdwerror.CodeInvalidConfig, "list.variant",
			fmt.Sprintf("unknown variant %q, want %s or %s", c.List.Variant, VariantDecorator, VariantSpecialized),
			c.List.Variant)
	}

	switch c.List.Backing {
	case BackingArray, BackingLinked:
	default:
		result.AddFieldError(mdwerror.CodeInvalidConfig, "list.backing",
			fmt.Sprintf("unknown backing %q, want %s or %s", c.List.Backing, BackingArray, BackingLinked),
			c.List.Backing)
	}

	if c.List.Variant == VariantSpecialized && c.List.Backing == BackingLinked {
		result.AddFieldError(mdwerror.CodeInvalidConfig, "list.backing",
			"the specialized variant owns slice storage and cannot use the linked backing",
			c.List.Backing)
	}

	if c.List.Variant == VariantSpecialized && c.List.Synchronized {
		result.AddFieldError(mdwerror.CodeInvalidConfig, "list.synchronized",
			"only the decorator variant can guard a synchronized backing",
			c.List.Synchronized)
	}

	if c.List.InitialCapacity < 0 {
		result.AddFieldError(mdwerror.CodeInvalidConfig, "list.initial_capacity",
			fmt.Sprintf("initial capacity must not be negative, got %d", c.List.InitialCapacity),
			c.List.InitialCapacity)
	}

	if c.Runner.NullToken == "" {
		result.AddFieldError(mdwerror.CodeInvalidConfig, "runner.null_token",
			"null token must not be empty", nil)
	}

	return result
}

// Validate returns nil for a usable configuration, or an INVALID_CONFIG
// error describing the first problem and counting the rest.
func (c *Config) Validate() error {
	result := c.Check()
	if result.Valid {
		return nil
	}
	err := result.ToError()
	if coded, ok := err.(*mdwerror.Error); ok {
		coded.WithOperation("config.Validate")
		if c.source != "" {
			coded.WithDetail("source", c.source)
		}
	}
	return err
}
