// ============================================================================
// nslist - Null-Safe Sequences
// ============================================================================
//
// Package:     script
// Description: Loading scripts from YAML and TOML documents
// Author:      Mike Stoffels
// Created:     2026-10-16
// License:     MIT
// ============================================================================

package script

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/msto63/nslist/foundation/core/config"
	mdwerror "github.com/msto63/nslist/foundation/core/error"
)

var (
	// ErrInvalidScript matches every script that fails to parse or validate
	ErrInvalidScript = mdwerror.Sentinel(mdwerror.CodeInvalidScript, "invalid script")

	// ErrScriptNotFound matches a missing script file
	ErrScriptNotFound = mdwerror.Sentinel(mdwerror.CodeNotFound, "script not found")
)

// Load reads, parses and validates a script file. The format follows the
// extension: .toml is TOML, anything else YAML. A script without a name is
// named after its file.
func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, mdwerror.Newf("script file not found: %s", path).
			WithCode(mdwerror.CodeNotFound).
			WithOperation("script.Load").
			WithDetail("path", path)
	}
	if err != nil {
		return nil, mdwerror.Wrap(err, "failed to read script file").
			WithCode(mdwerror.CodeInvalidScript).
			WithOperation("script.Load").
			WithDetail("path", path)
	}

	s, err := Parse(data, DetectFormat(path))
	if err != nil {
		return nil, mdwerror.Wrap(err, "failed to load script").
			WithDetail("path", path)
	}

	s.SourceFile = path
	if s.Name == "" {
		s.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// DetectFormat picks the script format from a file extension
func DetectFormat(path string) config.Format {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return config.FormatTOML
	}
	return config.FormatYAML
}

// Parse decodes a script without validating it. FormatAuto means YAML.
// Unknown keys are rejected in both formats.
func Parse(data []byte, format config.Format) (*Script, error) {
	s := &Script{}

	switch format {
	case config.FormatTOML:
		meta, err := toml.Decode(string(data), s)
		if err != nil {
			return nil, mdwerror.Wrap(err, "TOML parse error").
				WithCode(mdwerror.CodeInvalidScript).
				WithOperation("script.Parse")
		}
		if undecoded := meta.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, len(undecoded))
			for i, k := range undecoded {
				keys[i] = k.String()
			}
			return nil, mdwerror.Newf("unknown script keys: %s", strings.Join(keys, ", ")).
				WithCode(mdwerror.CodeInvalidScript).
				WithOperation("script.Parse").
				WithDetail("keys", keys)
		}
	case config.FormatYAML, config.FormatAuto:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(s); err != nil && !errors.Is(err, io.EOF) {
			return nil, mdwerror.Wrap(err, "YAML parse error").
				WithCode(mdwerror.CodeInvalidScript).
				WithOperation("script.Parse")
		}
	default:
		return nil, mdwerror.Newf("unsupported script format: %s", format).
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("script.Parse")
	}

	return s, nil
}
