package integration

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/msto63/nslist/foundation/core/config"
	"github.com/msto63/nslist/internal/report"
	"github.com/msto63/nslist/internal/runner"
)

func TestE2E_ScriptsOnEveryVariant(t *testing.T) {
	scripts := loadScripts(t)

	cfg := config.Default()
	cfg.Runner.Strict = true
	r := runner.New(cfg, nil)

	for _, lc := range runner.Combinations(2) {
		for _, s := range scripts {
			t.Run(runner.Describe(lc)+"/"+s.Name, func(t *testing.T) {
				res, err := r.RunWith(context.Background(), lc, s)
				require.NoError(t, err)
				for _, step := range res.Steps {
					assert.Equal(t, runner.StatusPassed, step.Status, "%s: %s", step.Call, step.Reason)
				}
			})
		}
	}
}

func TestE2E_ConfigFileDrivesRun(t *testing.T) {
	cfg, err := config.Load(filepath.Join("testdata", "nslist.yaml"))
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "decorator/linked+sync", runner.Describe(cfg.List))

	logger, logs := bufferLogger()
	results, err := runner.New(cfg, logger.WithName(cfg.General.Name)).RunAll(context.Background(), loadScripts(t))
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, report.Write(&out, results, report.FormatText))
	assert.Contains(t, out.String(), "decorator/linked+sync")
	assert.Contains(t, out.String(), "0 failed, 0 skipped")

	assert.Contains(t, logs.String(), `"message":"step executed"`)
	assert.NotContains(t, logs.String(), "expectation not met")
}

func TestE2E_BuiltInScenariosReportAsJSON(t *testing.T) {
	results, err := runner.New(nil, nil).RunAll(context.Background(), runner.Scenarios())
	require.NoError(t, err)

	data, err := report.JSON(results)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"ok": true`)
	assert.Contains(t, string(data), `"expected": "NULL_ARGUMENT"`)
}
