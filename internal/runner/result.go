// ============================================================================
// nslist - Null-Safe Sequences
// ============================================================================
//
// Package:     runner
// Description: Results of script runs
// Author:      Mike Stoffels
// Created:     2026-10-16
// License:     MIT
// ============================================================================

package runner

import (
	"time"

	mdwerror "github.com/msto63/nslist/foundation/core/error"
	"github.com/msto63/nslist/internal/script"
)

// Status is the outcome of a single step
type Status string

const (
	StatusPassed  Status = "passed"
	StatusFailed  Status = "failed"
	StatusSkipped Status = "skipped"
)

// StepResult records what a step did and whether it met its expectation
type StepResult struct {
	Index    int           `json:"index"`
	Op       script.Op     `json:"op"`
	Call     string        `json:"call"`
	Status   Status        `json:"status"`
	Expected mdwerror.Code `json:"expected,omitempty"`
	Code     mdwerror.Code `json:"code,omitempty"`
	Error    string        `json:"error,omitempty"`
	Result   string        `json:"result,omitempty"`
	Contents string        `json:"contents"`
	Reason   string        `json:"reason,omitempty"`
}

// Result summarizes one script run against one list configuration
type Result struct {
	RunID    string        `json:"run_id"`
	Script   string        `json:"script"`
	Source   string        `json:"source,omitempty"`
	List     string        `json:"list"`
	Steps    []StepResult  `json:"steps"`
	Passed   int           `json:"passed"`
	Failed   int           `json:"failed"`
	Skipped  int           `json:"skipped"`
	Contents string        `json:"contents"`
	Started  time.Time     `json:"started"`
	Duration time.Duration `json:"duration_ns"`
	Error    string        `json:"error,omitempty"`
}

// OK reports whether every step ran and met its expectation
func (r *Result) OK() bool {
	return r.Error == "" && r.Failed == 0 && r.Skipped == 0
}

func (r *Result) record(step StepResult) {
	r.Steps = append(r.Steps, step)
	switch step.Status {
	case StatusPassed:
		r.Passed++
	case StatusFailed:
		r.Failed++
	case StatusSkipped:
		r.Skipped++
	}
}
