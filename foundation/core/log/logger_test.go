// File: logger_test.go
// Title: Logger Tests
// Description: Tests for level filtering, derived loggers, formatters,
//              coded error logging and timers.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-12
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-12 v0.1.0: Initial test implementation

package log

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mdwerror "github.com/msto63/nslist/foundation/core/error"
)

func newTestLogger(buf *bytes.Buffer, level Level, format Format) *Logger {
	return NewWithConfig(Config{Level: level, Format: format, Output: buf, Name: "test"})
}

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]interface{} {
	t.Helper()
	var out []map[string]interface{}
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var m map[string]interface{}
		require.NoError(t, jsoniter.Unmarshal([]byte(line), &m), line)
		out = append(out, m)
	}
	return out
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := newTestLogger(&buf, LevelWarn, FormatJSON)

	logger.Debug("hidden")
	logger.Info("hidden")
	logger.Warn("shown")
	logger.Error("shown too")

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 2)
	assert.Equal(t, "warn", lines[0]["level"])
	assert.Equal(t, "error", lines[1]["level"])
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    Level
		wantErr bool
	}{
		{"debug", LevelDebug, false},
		{" INFO ", LevelInfo, false},
		{"warning", LevelWarn, false},
		{"err", LevelError, false},
		{"", LevelInfo, false},
		{"loud", LevelInfo, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantErr, err != nil)
		})
	}
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("logfmt")
	require.NoError(t, err)
	assert.Equal(t, FormatLogfmt, f)

	_, err = ParseFormat("xml")
	assert.Error(t, err)
}

func TestDerivedLoggersDoNotAffectParent(t *testing.T) {
	var buf bytes.Buffer
	parent := newTestLogger(&buf, LevelInfo, FormatJSON)
	child := parent.WithField("variant", "decorator").WithRequestID("run-1")

	parent.Info("from parent")
	child.Info("from child")

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 2)
	assert.NotContains(t, lines[0], "variant")
	assert.NotContains(t, lines[0], "request_id")
	assert.Equal(t, "decorator", lines[1]["variant"])
	assert.Equal(t, "run-1", lines[1]["request_id"])
	assert.Equal(t, "test", lines[1]["logger"])
}

func TestNewDefaults(t *testing.T) {
	logger := New()
	assert.Equal(t, DefaultLevel(), logger.GetLevel())
	assert.True(t, logger.IsLevelEnabled(LevelError))

	var buf bytes.Buffer
	logger.WithOutput(&buf).Error("visible")
	assert.Contains(t, buf.String(), "visible")
}

func TestCorrelationAndWarnWithErr(t *testing.T) {
	var buf bytes.Buffer
	logger := newTestLogger(&buf, LevelInfo, FormatJSON).
		WithCorrelationID("batch-1").
		WithRequestID("run-2")

	cause := mdwerror.New("result 1, want 2").WithCode(mdwerror.CodeExpectationFailed)
	logger.WarnWithErr("expectation not met", cause, Fields{"step": 3})

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "warn", lines[0]["level"])
	assert.Equal(t, "batch-1", lines[0]["correlation_id"])
	assert.Equal(t, "run-2", lines[0]["request_id"])
	assert.Equal(t, "result 1, want 2", lines[0]["error"])
	assert.EqualValues(t, 3, lines[0]["step"])
}

func TestTraceAndErrorWithErr(t *testing.T) {
	var buf bytes.Buffer
	logger := newTestLogger(&buf, LevelDebug, FormatJSON)
	logger.Trace("list contents")
	assert.Empty(t, buf.String(), "trace is below debug")

	logger.SetLevel(LevelTrace)
	logger.Trace("list contents", Fields{"contents": "[a]"})
	logger.ErrorWithErr("selftest failed", errors.New("2 runs failed"))

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 2)
	assert.Equal(t, "trace", lines[0]["level"])
	assert.Equal(t, "[a]", lines[0]["contents"])
	assert.Equal(t, "error", lines[1]["level"])
	assert.Equal(t, "2 runs failed", lines[1]["error"])
}

func TestTextFormatterSortsFields(t *testing.T) {
	entry := NewEntry(LevelInfo, "step")
	entry.Fields["op"] = "insert"
	entry.Fields["index"] = 1

	out, err := (&TextFormatter{DisableTimestamp: true}).Format(entry)
	require.NoError(t, err)
	assert.Equal(t, "[INF] step [index=1 op=insert]\n", string(out))
}

func TestLogfmtFormatter(t *testing.T) {
	entry := NewEntry(LevelWarn, "expectation not met")
	entry.Fields["want"] = "NULL_ARGUMENT"
	entry.Fields["step"] = 2

	out, err := NewLogfmtFormatter().Format(entry)
	require.NoError(t, err)
	s := string(out)
	assert.Contains(t, s, `level=warn`)
	assert.Contains(t, s, `message="expectation not met"`)
	assert.Contains(t, s, `step=2 want="NULL_ARGUMENT"`)
}

func TestConsoleFormatterColors(t *testing.T) {
	entry := NewEntry(LevelError, "boom")

	colored, err := NewConsoleFormatter().Format(entry)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(colored), LevelError.Color()))

	plain := NewConsoleFormatter()
	plain.DisableColors = true
	out, err := plain.Format(entry)
	require.NoError(t, err)
	assert.NotContains(t, string(out), "\033[")
}

func TestLogErrorUsesSeverity(t *testing.T) {
	var buf bytes.Buffer
	logger := newTestLogger(&buf, LevelTrace, FormatJSON)

	logger.LogError(mdwerror.New("absent value").
		WithCode(mdwerror.CodeNullArgument).
		WithOperation("nullsafe.Append").
		WithDetail("index", 0))
	logger.LogError(mdwerror.New("bad config").WithCode(mdwerror.CodeInvalidConfig))
	logger.LogError(errors.New("plain"))
	logger.LogError(nil)

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 3)

	assert.Equal(t, "info", lines[0]["level"])
	assert.Equal(t, "NULL_ARGUMENT", lines[0]["error_code"])
	assert.Equal(t, "nullsafe.Append", lines[0]["error_operation"])
	assert.EqualValues(t, 0, lines[0]["error_index"])
	assert.Contains(t, lines[0], "error_details")

	assert.Equal(t, "error", lines[1]["level"])
	assert.Equal(t, "error", lines[2]["level"])
	assert.Equal(t, "plain", lines[2]["error"])
}

func TestLogErrorFindsWrappedCodedError(t *testing.T) {
	var buf bytes.Buffer
	logger := newTestLogger(&buf, LevelTrace, FormatJSON)

	inner := mdwerror.New("index 4 out of range").WithCode(mdwerror.CodeIndexOutOfRange)
	logger.LogError(errors.Join(errors.New("context"), inner))

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "INDEX_OUT_OF_RANGE", lines[0]["error_code"])
}

func TestCallerInfo(t *testing.T) {
	var buf bytes.Buffer
	logger := newTestLogger(&buf, LevelInfo, FormatJSON).WithCaller(0)

	logger.Info("where am I")

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0]["caller"], "logger_test.go")
}

func TestDiscard(t *testing.T) {
	logger := Discard()
	assert.False(t, logger.IsLevelEnabled(LevelError))
	logger.Error("nothing happens")
}

func TestTimer(t *testing.T) {
	var buf bytes.Buffer
	logger := newTestLogger(&buf, LevelDebug, FormatJSON)

	timer := logger.StartTimer("script run").WithField("steps", 3)
	time.Sleep(time.Millisecond)
	elapsed := timer.Stop()

	assert.Greater(t, elapsed, time.Duration(0))
	assert.False(t, timer.IsRunning())
	assert.Zero(t, timer.Stop(), "second stop is a no-op")

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "script run completed", lines[0]["message"])
	assert.EqualValues(t, 3, lines[0]["steps"])
	assert.Contains(t, lines[0], "duration_ms")
}

func TestTimerCancel(t *testing.T) {
	var buf bytes.Buffer
	logger := newTestLogger(&buf, LevelDebug, FormatJSON)

	timer := logger.StartTimer("script run")
	timer.Cancel()
	assert.False(t, timer.IsRunning())
	assert.Zero(t, timer.Stop())
	assert.Empty(t, buf.String())
}

func TestTimerStopWithResult(t *testing.T) {
	var buf bytes.Buffer
	logger := newTestLogger(&buf, LevelDebug, FormatJSON)

	logger.StartTimer("selftest").StopWithResult(false, "1 failed")
	logger.StartTimer("load").StopWithError(errors.New("missing file"))

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 2)
	assert.Equal(t, "warn", lines[0]["level"])
	assert.Equal(t, false, lines[0]["success"])
	assert.Equal(t, "error", lines[1]["level"])
	assert.Equal(t, "load failed", lines[1]["message"])
}

func TestFieldsMerge(t *testing.T) {
	a := Fields{"x": 1, "y": 2}
	merged := a.Merge(Fields{"y": 3})

	assert.Equal(t, Fields{"x": 1, "y": 3}, merged)
	assert.Equal(t, 2, a["y"])
	assert.Nil(t, Fields(nil).Clone())
}
