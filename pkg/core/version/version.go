// ============================================================================
// nslist - Null-Safe Sequences
// ============================================================================
//
// Package:     version
// Description: Central version management for the library and the CLI
// Author:      Mike Stoffels
// Created:     2026-10-16
// License:     MIT
// ============================================================================

package version

import (
	"fmt"
	"runtime"
)

// Version constants for the nslist components
const (
	// Platform version
	Platform = "0.1.0"

	// Component versions
	Foundation = "0.1.0"
	CLI        = "0.1.0"
	Runner     = "0.1.0"
)

// Build metadata, set via -ldflags at build time
var (
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// ComponentVersion returns the version for a given component name
func ComponentVersion(name string) string {
	switch name {
	case "foundation":
		return Foundation
	case "cli", "nslist":
		return CLI
	case "runner":
		return Runner
	default:
		return Platform
	}
}

// String returns the one-line version banner printed by the CLI
func String() string {
	return fmt.Sprintf("nslist %s (commit %s, built %s, %s %s/%s)",
		CLI, GitCommit, BuildDate, runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
