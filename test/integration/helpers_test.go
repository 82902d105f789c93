package integration

import (
	"bytes"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	mdwlog "github.com/msto63/nslist/foundation/core/log"
	"github.com/msto63/nslist/internal/script"
)

// loadScripts loads every script in testdata in name order
func loadScripts(t *testing.T) []*script.Script {
	t.Helper()

	var paths []string
	for _, pattern := range []string{"*.yaml", "*.yml", "*.toml"} {
		matches, err := filepath.Glob(filepath.Join("testdata", pattern))
		require.NoError(t, err)
		paths = append(paths, matches...)
	}
	sort.Strings(paths)

	var scripts []*script.Script
	for _, path := range paths {
		if filepath.Base(path) == "nslist.yaml" {
			continue
		}
		s, err := script.Load(path)
		require.NoError(t, err, path)
		scripts = append(scripts, s)
	}
	require.NotEmpty(t, scripts)
	return scripts
}

// bufferLogger returns a JSON logger at debug level writing to a buffer
func bufferLogger() (*mdwlog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return mdwlog.NewWithConfig(mdwlog.Config{
		Level:  mdwlog.LevelDebug,
		Format: mdwlog.FormatJSON,
		Output: &buf,
	}), &buf
}
