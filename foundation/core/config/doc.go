/*
Package config loads the nslist configuration.

Package: config
Title: nslist Configuration
Description: Typed configuration read from TOML or YAML, completed with
             defaults and overridden by NSLIST_* environment variables.
Author: msto63
Version: v0.1.0
Created: 2026-10-15
Modified: 2026-10-16

Change History:
- 2026-10-15 v0.1.0: Typed configuration, discovery and validation

# File layout

	[general]
	name = "nslist"
	environment = "development"
	log_level = "info"          # trace, debug, info, warn, error
	log_format = "text"         # json, text, console, logfmt

	[list]
	variant = "decorator"       # decorator or specialized
	backing = "array"           # array or linked (decorator only)
	initial_capacity = 16
	synchronized = false

	[runner]
	null_token = "null"
	strict = false
	stop_on_failure = false

The same keys are accepted in YAML. Unknown keys are rejected.

# Environment

Every key can be overridden with PREFIX_SECTION_KEY, for example
NSLIST_LIST_VARIANT=specialized or NSLIST_RUNNER_STRICT=true.

# Usage

	cfg, err := config.Discover(config.DefaultDiscoveryOptions())
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
*/
package config
