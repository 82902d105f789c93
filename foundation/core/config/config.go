// File: config.go
// Title: Configuration Loading
// Description: Typed nslist configuration loaded from TOML or YAML files
//              with defaults and environment variable overrides.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-15 v0.1.0: Typed configuration with TOML/YAML support
// - 2026-10-16 v0.1.1: Environment overrides

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	mdwerror "github.com/msto63/nslist/foundation/core/error"
)

// Format represents the configuration file format
type Format int

const (
	// FormatAuto detects the format from the file extension
	FormatAuto Format = iota

	// FormatTOML represents TOML format (default)
	FormatTOML

	// FormatYAML represents YAML format
	FormatYAML
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	case FormatAuto:
		return "auto"
	default:
		return "unknown"
	}
}

// DefaultEnvPrefix is the prefix of environment overrides
const DefaultEnvPrefix = "NSLIST"

// List variants and backings
const (
	VariantDecorator   = "decorator"
	VariantSpecialized = "specialized"

	BackingArray  = "array"
	BackingLinked = "linked"
)

// Config holds the complete nslist configuration
type Config struct {
	General GeneralConfig `toml:"general" yaml:"general"`
	List    ListConfig    `toml:"list" yaml:"list"`
	Runner  RunnerConfig  `toml:"runner" yaml:"runner"`

	source string
}

// GeneralConfig holds general application settings
type GeneralConfig struct {
	Name        string `toml:"name" yaml:"name"`
	Environment string `toml:"environment" yaml:"environment"`
	LogLevel    string `toml:"log_level" yaml:"log_level"`
	LogFormat   string `toml:"log_format" yaml:"log_format"`
}

// ListConfig selects how null-safe lists are built
type ListConfig struct {
	Variant         string `toml:"variant" yaml:"variant"`
	Backing         string `toml:"backing" yaml:"backing"`
	InitialCapacity int    `toml:"initial_capacity" yaml:"initial_capacity"`
	Synchronized    bool   `toml:"synchronized" yaml:"synchronized"`
}

// RunnerConfig holds script execution settings
type RunnerConfig struct {
	NullToken     string `toml:"null_token" yaml:"null_token"`
	Strict        bool   `toml:"strict" yaml:"strict"`
	StopOnFailure bool   `toml:"stop_on_failure" yaml:"stop_on_failure"`
}

// LoadOptions defines options for loading configuration
type LoadOptions struct {
	Format    Format // File format (default: auto-detect)
	EnvPrefix string // Environment variable prefix (default: NSLIST, "-" disables)
}

// Default returns a complete configuration with every field set
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load loads configuration from a file with default options
func Load(filePath string) (*Config, error) {
	return LoadWithOptions(filePath, LoadOptions{Format: FormatAuto})
}

// LoadWithOptions loads configuration from a file with custom options
func LoadWithOptions(filePath string, options LoadOptions) (*Config, error) {
	if strings.TrimSpace(filePath) == "" {
		return nil, mdwerror.New("config file path cannot be empty").
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("config.LoadWithOptions")
	}

	content, err := os.ReadFile(filePath)
	if os.IsNotExist(err) {
		return nil, mdwerror.Newf("config file not found: %s", filePath).
			WithCode(mdwerror.CodeNotFound).
			WithOperation("config.LoadWithOptions").
			WithDetail("filePath", filePath)
	}
	if err != nil {
		return nil, mdwerror.Wrap(err, "failed to read config file").
			WithCode(mdwerror.CodeConfigError).
			WithOperation("config.LoadWithOptions").
			WithDetail("filePath", filePath)
	}

	format := options.Format
	if format == FormatAuto {
		format = detectFormat(filePath)
	}

	cfg, err := parse(content, format, options.EnvPrefix)
	if err != nil {
		return nil, mdwerror.Wrap(err, "failed to load config file").
			WithDetail("filePath", filePath)
	}
	cfg.source = filePath
	return cfg, nil
}

// LoadFromString loads configuration from a string with the given format
func LoadFromString(content string, format Format) (*Config, error) {
	return parse([]byte(content), format, DefaultEnvPrefix)
}

// Source returns the file the configuration was loaded from, if any
func (c *Config) Source() string {
	return c.source
}

// String renders the configuration as TOML
func (c *Config) String() string {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(c); err != nil {
		return fmt.Sprintf("config(%v)", err)
	}
	return buf.String()
}

func parse(content []byte, format Format, envPrefix string) (*Config, error) {
	if format == FormatAuto {
		format = FormatTOML
	}

	cfg := &Config{}
	if err := parseContent(content, format, cfg); err != nil {
		return nil, err
	}
	cfg.applyDefaults()

	if err := cfg.ApplyEnv(envPrefix); err != nil {
		return nil, err
	}
	return cfg, nil
}

// detectFormat determines the configuration format from file extension
func detectFormat(filePath string) Format {
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

// parseContent decodes content into cfg. Unknown keys are rejected so that
// typos do not silently fall back to defaults.
func parseContent(content []byte, format Format, cfg *Config) error {
	switch format {
	case FormatTOML:
		meta, err := toml.Decode(string(content), cfg)
		if err != nil {
			return mdwerror.Wrap(err, "TOML parse error").
				WithCode(mdwerror.CodeConfigError).
				WithOperation("config.parseContent")
		}
		if undecoded := meta.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, len(undecoded))
			for i, k := range undecoded {
				keys[i] = k.String()
			}
			return mdwerror.Newf("unknown config keys: %s", strings.Join(keys, ", ")).
				WithCode(mdwerror.CodeInvalidConfig).
				WithOperation("config.parseContent").
				WithDetail("keys", keys)
		}
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(content))
		dec.KnownFields(true)
		if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
			return mdwerror.Wrap(err, "YAML parse error").
				WithCode(mdwerror.CodeConfigError).
				WithOperation("config.parseContent")
		}
	default:
		return mdwerror.Newf("unsupported format: %s", format).
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("config.parseContent").
			WithDetail("format", format.String())
	}
	return nil
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	if c.General.Name == "" {
		c.General.Name = "nslist"
	}
	if c.General.Environment == "" {
		c.General.Environment = "development"
	}
	if c.General.LogLevel == "" {
		c.General.LogLevel = "info"
	}
	if c.General.LogFormat == "" {
		c.General.LogFormat = "text"
	}

	if c.List.Variant == "" {
		c.List.Variant = VariantDecorator
	}
	if c.List.Backing == "" {
		c.List.Backing = BackingArray
	}

	if c.Runner.NullToken == "" {
		c.Runner.NullToken = "null"
	}
}
