// File: timer.go
// Title: Performance Timer
// Description: Measures an operation and logs its completion or failure
//              with the elapsed time.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-12
// Modified: 2026-10-12
//
// Change History:
// - 2026-10-12 v0.1.0: Initial implementation with performance timing

package log

import (
	"time"
)

// Timer represents a performance timer for measuring operation duration
type Timer struct {
	logger    *Logger
	operation string
	startTime time.Time
	fields    Fields
	level     Level
	stopped   bool
}

// NewTimer creates a new timer for the given operation
func NewTimer(logger *Logger, operation string) *Timer {
	return &Timer{
		logger:    logger,
		operation: operation,
		startTime: time.Now(),
		fields:    make(Fields),
		level:     LevelDebug,
	}
}

// WithLevel sets the log level for the completion message
func (t *Timer) WithLevel(level Level) *Timer {
	t.level = level
	return t
}

// WithField adds a field to be logged when the timer completes
func (t *Timer) WithField(key string, value interface{}) *Timer {
	t.fields[key] = value
	return t
}

// Elapsed returns the elapsed time since the timer was started
func (t *Timer) Elapsed() time.Duration {
	return time.Since(t.startTime)
}

// Stop stops the timer and logs the elapsed time. A stopped timer returns 0.
func (t *Timer) Stop() time.Duration {
	return t.finish(t.level, t.operation+" completed", nil)
}

// StopWithError stops the timer and logs err with the elapsed time
func (t *Timer) StopWithError(err error) time.Duration {
	level := t.level
	if level < LevelError {
		level = LevelError
	}
	return t.finish(level, t.operation+" failed", err)
}

// StopWithResult stops the timer and logs a success flag and result value.
// Unsuccessful results are raised to at least warn.
func (t *Timer) StopWithResult(success bool, result interface{}) time.Duration {
	level := t.level
	message := t.operation + " completed successfully"
	if !success {
		message = t.operation + " completed with failures"
		if level < LevelWarn {
			level = LevelWarn
		}
	}
	t.fields["success"] = success
	if result != nil {
		t.fields["result"] = result
	}
	return t.finish(level, message, nil)
}

func (t *Timer) finish(level Level, message string, err error) time.Duration {
	if t.stopped {
		return 0
	}

	elapsed := t.Elapsed()
	t.stopped = true

	t.fields["operation"] = t.operation
	t.fields["duration_ms"] = float64(elapsed.Nanoseconds()) / 1e6

	if t.logger != nil {
		t.logger.log(level, message, err, t.fields)
	}

	return elapsed
}

// Cancel cancels the timer without logging completion
func (t *Timer) Cancel() {
	t.stopped = true
}

// IsRunning returns true if the timer is still running
func (t *Timer) IsRunning() bool {
	return !t.stopped
}
