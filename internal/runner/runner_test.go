package runner

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/msto63/nslist/foundation/collections/nullsafe"
	"github.com/msto63/nslist/foundation/core/config"
	mdwerror "github.com/msto63/nslist/foundation/core/error"
	mdwlog "github.com/msto63/nslist/foundation/core/log"
	"github.com/msto63/nslist/internal/script"
)

func strs(vs ...string) []*string {
	out := make([]*string, len(vs))
	for i := range vs {
		out[i] = &vs[i]
	}
	return out
}

func TestScenariosPassOnEveryCombination(t *testing.T) {
	r := New(nil, nil)

	for _, lc := range Combinations(4) {
		for _, s := range Scenarios() {
			t.Run(Describe(lc)+"/"+s.Name, func(t *testing.T) {
				require.NoError(t, s.Validate())

				res, err := r.RunWith(context.Background(), lc, s)
				require.NoError(t, err)
				for _, step := range res.Steps {
					assert.Equal(t, StatusPassed, step.Status, "%s: %s", step.Call, step.Reason)
				}
				assert.True(t, res.OK())
				assert.Equal(t, len(s.Steps), res.Passed)
			})
		}
	}
}

func TestBuild(t *testing.T) {
	t.Run("decorator", func(t *testing.T) {
		list, err := Build(config.ListConfig{Variant: config.VariantDecorator, Backing: config.BackingLinked}, strs("a", "b"))
		require.NoError(t, err)
		assert.IsType(t, &nullsafe.Decorator[*string]{}, list)
		assert.Equal(t, "[a b]", script.Texts(list.Values()))
	})

	t.Run("specialized", func(t *testing.T) {
		list, err := Build(config.ListConfig{Variant: config.VariantSpecialized, Backing: config.BackingArray, InitialCapacity: 8}, nil)
		require.NoError(t, err)
		assert.IsType(t, &nullsafe.ArrayList[*string]{}, list)
		assert.Equal(t, 0, list.Len())
	})

	t.Run("seed with absent element", func(t *testing.T) {
		for _, lc := range Combinations(0) {
			_, err := Build(lc, []*string{strs("a")[0], nil})
			require.Error(t, err, Describe(lc))
			assert.True(t, errors.Is(err, nullsafe.ErrNullArgument), Describe(lc))
		}
	})

	t.Run("invalid configurations", func(t *testing.T) {
		tests := []config.ListConfig{
			{Variant: "proxy", Backing: config.BackingArray},
			{Variant: config.VariantDecorator, Backing: "tree"},
			{Variant: config.VariantSpecialized, Backing: config.BackingLinked},
		}
		for _, lc := range tests {
			_, err := Build(lc, nil)
			require.Error(t, err, Describe(lc))
			assert.Equal(t, mdwerror.CodeInvalidConfig, mdwerror.GetCode(err))
		}
	})

	t.Run("negative capacity", func(t *testing.T) {
		_, err := Build(config.ListConfig{Variant: config.VariantSpecialized, Backing: config.BackingArray, InitialCapacity: -1}, nil)
		assert.True(t, errors.Is(err, nullsafe.ErrInvalidCapacity))
	})
}

func TestDescribe(t *testing.T) {
	assert.Equal(t, "decorator/array", Describe(config.ListConfig{Variant: "decorator", Backing: "array"}))
	assert.Equal(t, "decorator/linked+sync", Describe(config.ListConfig{Variant: "decorator", Backing: "linked", Synchronized: true}))
}

func TestReadOperations(t *testing.T) {
	s := &script.Script{
		Name: "reads",
		Seed: []any{"a", "b", "c"},
		Steps: []script.Step{
			{Op: script.OpGet, Index: 1, Result: "b"},
			{Op: script.OpSize, Result: 3},
			{Op: script.OpContains, Value: "c", Result: true},
			{Op: script.OpContains, Value: nil, Result: false},
			{Op: script.OpRemoveAt, Index: 0, Result: "a", Want: []any{"b", "c"}},
			{Op: script.OpRemove, Value: "c", Result: "c", Want: []any{"b"}},
			{Op: script.OpRemove, Value: "z", Expect: "NO_SUCH_ELEMENT"},
			{Op: script.OpGet, Index: 1, Expect: "INDEX_OUT_OF_RANGE"},
			{Op: script.OpRemoveAt, Index: -1, Expect: "INDEX_OUT_OF_RANGE", Want: []any{"b"}},
		},
	}
	require.NoError(t, s.Validate())

	for _, lc := range Combinations(0) {
		t.Run(Describe(lc), func(t *testing.T) {
			res, err := New(nil, nil).RunWith(context.Background(), lc, s)
			require.NoError(t, err)
			for _, step := range res.Steps {
				assert.Equal(t, StatusPassed, step.Status, "%s: %s", step.Call, step.Reason)
			}
			assert.Equal(t, "[b]", res.Contents)
		})
	}
}

func TestNullTokenFromConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Runner.NullToken = "~"

	s := &script.Script{Name: "token", Steps: []script.Step{
		{Op: script.OpAppend, Value: "~", Expect: "NULL_ARGUMENT"},
		{Op: script.OpAppend, Value: "null", Want: []any{"null"}},
	}}

	res, err := New(cfg, nil).Run(context.Background(), s)
	require.NoError(t, err)
	assert.True(t, res.OK())
}

func failingScript() *script.Script {
	return &script.Script{
		Name: "failing",
		Steps: []script.Step{
			{Op: script.OpAppend, Value: 1},
			{Op: script.OpAppend, Value: nil},
			{Op: script.OpInsert, Index: 5, Value: 1, Expect: "NULL_ARGUMENT"},
			{Op: script.OpSize, Result: 2},
		},
	}
}

func TestRunReportsUnmetExpectations(t *testing.T) {
	res, err := New(nil, nil).Run(context.Background(), failingScript())
	require.NoError(t, err, "non-strict runs report failures in the result only")

	require.Len(t, res.Steps, 4)
	assert.Equal(t, StatusPassed, res.Steps[0].Status)

	assert.Equal(t, StatusFailed, res.Steps[1].Status)
	assert.Equal(t, mdwerror.CodeNullArgument, res.Steps[1].Code)
	assert.Contains(t, res.Steps[1].Reason, "unexpected NULL_ARGUMENT")

	assert.Equal(t, StatusFailed, res.Steps[2].Status)
	assert.Equal(t, mdwerror.CodeIndexOutOfRange, res.Steps[2].Code)
	assert.Equal(t, "expected NULL_ARGUMENT, got INDEX_OUT_OF_RANGE", res.Steps[2].Reason)

	assert.Equal(t, StatusFailed, res.Steps[3].Status)
	assert.Equal(t, "result 1, want 2", res.Steps[3].Reason)

	assert.Equal(t, 1, res.Passed)
	assert.Equal(t, 3, res.Failed)
	assert.False(t, res.OK())
	assert.Equal(t, "[1]", res.Contents)
}

func TestRunStrict(t *testing.T) {
	cfg := config.Default()
	cfg.Runner.Strict = true

	res, err := New(cfg, nil).Run(context.Background(), failingScript())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrExpectationFailed))
	assert.Equal(t, 3, res.Failed)
}

func TestRunStopOnFailure(t *testing.T) {
	cfg := config.Default()
	cfg.Runner.StopOnFailure = true

	res, err := New(cfg, nil).Run(context.Background(), failingScript())
	require.NoError(t, err)
	require.Len(t, res.Steps, 4)
	assert.Equal(t, 1, res.Passed)
	assert.Equal(t, 1, res.Failed)
	assert.Equal(t, 2, res.Skipped)
	assert.Equal(t, StatusSkipped, res.Steps[3].Status)
	assert.Equal(t, 3, res.Steps[3].Index)
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := New(nil, nil).Run(ctx, Scenarios()[0])
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Equal(t, len(Scenarios()[0].Steps), res.Skipped)
	assert.NotEmpty(t, res.Error)
}

func TestRunSeedRejected(t *testing.T) {
	s := &script.Script{Name: "bad-seed", Seed: []any{1, nil}, Steps: []script.Step{{Op: script.OpSize}}}

	for _, lc := range Combinations(0) {
		res, err := New(nil, nil).RunWith(context.Background(), lc, s)
		require.Error(t, err)
		assert.True(t, errors.Is(err, nullsafe.ErrNullArgument))
		assert.Empty(t, res.Steps)
		assert.False(t, res.OK())
	}
}

func TestRunAll(t *testing.T) {
	cfg := config.Default()
	cfg.Runner.Strict = true

	scripts := append(Scenarios(), failingScript())
	results, err := New(cfg, nil).RunAll(context.Background(), scripts)
	require.Len(t, results, len(scripts))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrExpectationFailed))

	for _, res := range results[:len(results)-1] {
		assert.True(t, res.OK(), res.Script)
	}
}

func TestRunLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := mdwlog.NewWithConfig(mdwlog.Config{
		Level:  mdwlog.LevelDebug,
		Format: mdwlog.FormatJSON,
		Output: &buf,
	})

	res, err := New(nil, logger).Run(context.Background(), failingScript())
	require.NoError(t, err)

	_, err = uuid.Parse(res.RunID)
	require.NoError(t, err)

	var messages []string
	scanner := bufio.NewScanner(&buf)
	for scanner.Scan() {
		var entry map[string]interface{}
		require.NoError(t, jsoniter.Unmarshal(scanner.Bytes(), &entry))
		assert.Equal(t, res.RunID, entry["request_id"])
		assert.Equal(t, "runner", entry["logger"])
		messages = append(messages, entry["message"].(string))
	}

	assert.Equal(t, "script started", messages[0])
	assert.Contains(t, messages, "step executed")
	assert.Contains(t, messages, "expectation not met")
	assert.Equal(t, "script failing completed with failures", messages[len(messages)-1])
}

func decodeEntries(t *testing.T, buf *bytes.Buffer) []map[string]interface{} {
	t.Helper()
	var entries []map[string]interface{}
	scanner := bufio.NewScanner(buf)
	for scanner.Scan() {
		var entry map[string]interface{}
		require.NoError(t, jsoniter.Unmarshal(scanner.Bytes(), &entry))
		entries = append(entries, entry)
	}
	return entries
}

func jsonLogger(buf *bytes.Buffer) *mdwlog.Logger {
	return mdwlog.NewWithConfig(mdwlog.Config{
		Level:  mdwlog.LevelDebug,
		Format: mdwlog.FormatJSON,
		Output: buf,
	})
}

func TestRunAllSharesCorrelationID(t *testing.T) {
	var buf bytes.Buffer
	results, err := New(nil, jsonLogger(&buf)).RunAll(context.Background(), Scenarios()[:2])
	require.NoError(t, err)
	require.Len(t, results, 2)
	require.NotEqual(t, results[0].RunID, results[1].RunID)

	entries := decodeEntries(t, &buf)
	require.NotEmpty(t, entries)
	correlation, _ := entries[0]["correlation_id"].(string)
	_, err = uuid.Parse(correlation)
	require.NoError(t, err)

	runs := map[interface{}]bool{}
	for _, entry := range entries {
		assert.Equal(t, correlation, entry["correlation_id"])
		runs[entry["request_id"]] = true
	}
	assert.Len(t, runs, 2)
}

func TestUnmetExpectationCarriesError(t *testing.T) {
	var buf bytes.Buffer
	_, err := New(nil, jsonLogger(&buf)).Run(context.Background(), failingScript())
	require.NoError(t, err)

	var warned int
	for _, entry := range decodeEntries(t, &buf) {
		if entry["message"] != "expectation not met" {
			continue
		}
		warned++
		assert.Equal(t, "warn", entry["level"])
		assert.Equal(t, mdwerror.CodeExpectationFailed.String(), entry["error_code"])
		assert.Contains(t, entry["error"], "step ")
	}
	assert.Equal(t, 3, warned)
}

func TestRunCancelledLogsWithoutCompletion(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var buf bytes.Buffer
	_, err := New(nil, jsonLogger(&buf)).Run(ctx, Scenarios()[0])
	require.Error(t, err)

	var messages []string
	for _, entry := range decodeEntries(t, &buf) {
		messages = append(messages, entry["message"].(string))
	}
	assert.Equal(t, []string{"script started", "script cancelled"}, messages)
}
