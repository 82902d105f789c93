// File: discovery.go
// Title: Configuration File Discovery
// Description: Searches the usual locations for an nslist configuration
//              file. Finding none is not an error unless required.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-15 v0.1.0: Initial implementation of file discovery

package config

import (
	"os"
	"path/filepath"
	"strings"

	mdwerror "github.com/msto63/nslist/foundation/core/error"
)

// DiscoveryOptions defines options for automatic configuration file discovery
type DiscoveryOptions struct {
	Paths      []string // Directories to search for config files
	Filenames  []string // Base filenames to look for (without extension)
	Extensions []string // File extensions to try (.toml, .yaml, .yml)
	EnvPrefix  string   // Environment variable prefix for overrides
	Required   bool     // Whether finding a config file is required
}

// DefaultDiscoveryOptions searches the working directory, ./configs and the
// user config directory for nslist.toml, nslist.yaml or nslist.yml.
func DefaultDiscoveryOptions() DiscoveryOptions {
	paths := []string{".", "./configs"}
	if dir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(dir, "nslist"))
	}
	return DiscoveryOptions{
		Paths:      paths,
		Filenames:  []string{"nslist"},
		Extensions: []string{".toml", ".yaml", ".yml"},
		EnvPrefix:  DefaultEnvPrefix,
	}
}

// Discover loads the first configuration file found. Without a file it
// returns defaults with environment overrides applied, or a NOT_FOUND error
// when options.Required is set.
func Discover(options DiscoveryOptions) (*Config, error) {
	path, err := FindConfigFile(options)
	if err == nil {
		cfg, loadErr := LoadWithOptions(path, LoadOptions{Format: FormatAuto, EnvPrefix: options.EnvPrefix})
		if loadErr != nil {
			return nil, mdwerror.Wrap(loadErr, "found config file but failed to load it").
				WithOperation("config.Discover").
				WithDetail("configPath", path)
		}
		return cfg, nil
	}

	if options.Required {
		searched := ListPossibleConfigFiles(options)
		return nil, mdwerror.Newf("no configuration file found in: %s", strings.Join(searched, ", ")).
			WithCode(mdwerror.CodeNotFound).
			WithOperation("config.Discover").
			WithDetail("searchPaths", searched)
	}

	cfg := Default()
	if err := cfg.ApplyEnv(options.EnvPrefix); err != nil {
		return nil, err
	}
	return cfg, nil
}

// FindConfigFile searches for a configuration file without loading it
func FindConfigFile(options DiscoveryOptions) (string, error) {
	for _, configPath := range ListPossibleConfigFiles(options) {
		if info, err := os.Stat(configPath); err == nil && !info.IsDir() {
			return configPath, nil
		}
	}

	return "", mdwerror.New("configuration file not found").
		WithCode(mdwerror.CodeNotFound).
		WithOperation("config.FindConfigFile")
}

// ListPossibleConfigFiles returns every path Discover would try, in order
func ListPossibleConfigFiles(options DiscoveryOptions) []string {
	if len(options.Filenames) == 0 {
		options.Filenames = []string{"nslist"}
	}
	if len(options.Extensions) == 0 {
		options.Extensions = []string{".toml", ".yaml", ".yml"}
	}

	var paths []string
	for _, path := range options.Paths {
		for _, filename := range options.Filenames {
			for _, ext := range options.Extensions {
				paths = append(paths, filepath.Join(path, filename+ext))
			}
		}
	}
	return paths
}
