// File: env.go
// Title: Environment Overrides
// Description: Applies PREFIX_SECTION_KEY environment variables on top of
//              file values, e.g. NSLIST_LIST_VARIANT=specialized.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation

package config

import (
	"os"
	"strconv"
	"strings"

	mdwerror "github.com/msto63/nslist/foundation/core/error"
)

type binding struct {
	key string
	set func(c *Config, value string) error
}

func stringBinding(key string, field func(c *Config) *string) binding {
	return binding{key: key, set: func(c *Config, value string) error {
		*field(c) = value
		return nil
	}}
}

func intBinding(key string, field func(c *Config) *int) binding {
	return binding{key: key, set: func(c *Config, value string) error {
		n, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return err
		}
		*field(c) = n
		return nil
	}}
}

func boolBinding(key string, field func(c *Config) *bool) binding {
	return binding{key: key, set: func(c *Config, value string) error {
		b, err := strconv.ParseBool(strings.TrimSpace(value))
		if err != nil {
			return err
		}
		*field(c) = b
		return nil
	}}
}

var bindings = []binding{
	stringBinding("general.name", func(c *Config) *string { return &c.General.Name }),
	stringBinding("general.environment", func(c *Config) *string { return &c.General.Environment }),
	stringBinding("general.log_level", func(c *Config) *string { return &c.General.LogLevel }),
	stringBinding("general.log_format", func(c *Config) *string { return &c.General.LogFormat }),
	stringBinding("list.variant", func(c *Config) *string { return &c.List.Variant }),
	stringBinding("list.backing", func(c *Config) *string { return &c.List.Backing }),
	intBinding("list.initial_capacity", func(c *Config) *int { return &c.List.InitialCapacity }),
	boolBinding("list.synchronized", func(c *Config) *bool { return &c.List.Synchronized }),
	stringBinding("runner.null_token", func(c *Config) *string { return &c.Runner.NullToken }),
	boolBinding("runner.strict", func(c *Config) *bool { return &c.Runner.Strict }),
	boolBinding("runner.stop_on_failure", func(c *Config) *bool { return &c.Runner.StopOnFailure }),
}

// EnvKey converts a config key to its environment variable name
func EnvKey(prefix, key string) string {
	envKey := strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
	if prefix == "" {
		return envKey
	}
	return strings.ToUpper(prefix) + "_" + envKey
}

// ApplyEnv overrides fields from environment variables. An empty prefix
// means DefaultEnvPrefix; "-" disables overrides.
func (c *Config) ApplyEnv(prefix string) error {
	if prefix == "-" {
		return nil
	}
	if prefix == "" {
		prefix = DefaultEnvPrefix
	}

	for _, b := range bindings {
		name := EnvKey(prefix, b.key)
		value, ok := os.LookupEnv(name)
		if !ok {
			continue
		}
		if err := b.set(c, value); err != nil {
			return mdwerror.Wrap(err, "invalid environment override").
				WithCode(mdwerror.CodeConfigError).
				WithOperation("config.ApplyEnv").
				WithDetail("variable", name).
				WithDetail("value", value)
		}
	}
	return nil
}
