// ============================================================================
// nslist - Null-Safe Sequences
// ============================================================================
//
// Package:     runner
// Description: Executes operation scripts against null-safe lists
// Author:      Mike Stoffels
// Created:     2026-10-16
// License:     MIT
// ============================================================================

package runner

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/msto63/nslist/foundation/collections/nullsafe"
	"github.com/msto63/nslist/foundation/core/config"
	mdwerror "github.com/msto63/nslist/foundation/core/error"
	mdwlog "github.com/msto63/nslist/foundation/core/log"
	"github.com/msto63/nslist/foundation/utils/slicex"
	"github.com/msto63/nslist/internal/script"
)

// ErrExpectationFailed matches the error a strict run returns when a step
// did not behave as the script expected
var ErrExpectationFailed = mdwerror.Sentinel(mdwerror.CodeExpectationFailed, "expectation failed")

// Runner executes scripts with the list and runner settings of a config
type Runner struct {
	cfg    *config.Config
	logger *mdwlog.Logger
}

// New creates a runner. A nil config means defaults, a nil logger discards.
func New(cfg *config.Config, logger *mdwlog.Logger) *Runner {
	if cfg == nil {
		cfg = config.Default()
	}
	if logger == nil {
		logger = mdwlog.Discard()
	}
	return &Runner{cfg: cfg, logger: logger.WithName("runner")}
}

// Config returns the configuration the runner uses
func (r *Runner) Config() *config.Config {
	return r.cfg
}

// Run executes s against a fresh list built from the configured list
// settings. The returned Result is never nil. The error is non-nil when the
// list cannot be built, the context ends, or a strict run misses an
// expectation.
func (r *Runner) Run(ctx context.Context, s *script.Script) (*Result, error) {
	return r.RunWith(ctx, r.cfg.List, s)
}

// RunWith is Run with an explicit list configuration
func (r *Runner) RunWith(ctx context.Context, lc config.ListConfig, s *script.Script) (*Result, error) {
	res := &Result{
		RunID:   uuid.NewString(),
		Script:  s.Name,
		Source:  s.SourceFile,
		List:    Describe(lc),
		Started: time.Now(),
	}
	logger := r.logger.WithRequestID(res.RunID).WithFields(mdwlog.Fields{
		"script": s.Name,
		"list":   res.List,
	})
	timer := logger.StartTimer("script " + s.Name).WithLevel(mdwlog.LevelInfo)
	defer func() { res.Duration = time.Since(res.Started) }()

	logger.Info("script started", mdwlog.Int("steps", len(s.Steps)))

	token := r.cfg.Runner.NullToken
	list, err := Build(lc, script.Elements(s.Seed, token))
	if err != nil {
		err = mdwerror.Wrap(err, "failed to build list").
			WithOperation("runner.Run").
			WithDetail("script", s.Name)
		res.Error = err.Error()
		timer.StopWithError(err)
		return res, err
	}

	for i, step := range s.Steps {
		if ctxErr := ctx.Err(); ctxErr != nil {
			for _, rest := range s.Steps[i:] {
				res.record(skipped(len(res.Steps), rest, "run cancelled"))
			}
			err := mdwerror.Wrap(ctxErr, "script run cancelled").
				WithCode(mdwerror.CodeInvalidOperation).
				WithOperation("runner.Run").
				WithDetail("script", s.Name).
				WithDetail("step", i)
			res.Error = err.Error()
			res.Contents = script.Texts(list.Values())
			timer.Cancel()
			logger.WarnWithErr("script cancelled", err, mdwlog.Int("skipped", len(s.Steps)-i))
			return res, err
		}

		sr := r.execute(list, i, step)
		res.record(sr)

		stepFields := mdwlog.Fields{"step": i, "call": sr.Call, "status": string(sr.Status)}
		if sr.Code != "" {
			stepFields["code"] = sr.Code.String()
		}
		logger.Debug("step executed", stepFields)
		logger.Trace("list contents", mdwlog.String("contents", sr.Contents))

		if sr.Status == StatusFailed {
			logger.WarnWithErr("expectation not met", unmet(s.Name, sr), stepFields.Merge(mdwlog.Fields{
				"error_code": mdwerror.CodeExpectationFailed.String(),
			}))
			if r.cfg.Runner.StopOnFailure {
				for j, rest := range s.Steps[i+1:] {
					res.record(skipped(i+1+j, rest, "stopped after failure"))
				}
				break
			}
		}
	}

	res.Contents = script.Texts(list.Values())
	timer.StopWithResult(res.Failed == 0, fmt.Sprintf("%d passed, %d failed, %d skipped", res.Passed, res.Failed, res.Skipped))

	if res.Failed > 0 && r.cfg.Runner.Strict {
		return res, mdwerror.Newf("script %s: %d of %d steps did not meet their expectation", s.Name, res.Failed, len(s.Steps)).
			WithCode(mdwerror.CodeExpectationFailed).
			WithOperation("runner.Run").
			WithDetail("script", s.Name).
			WithDetail("run_id", res.RunID).
			WithDetail("failed", res.Failed)
	}
	return res, nil
}

// RunAll runs every script in order and joins their errors. The log entries
// of all runs share one correlation ID.
func (r *Runner) RunAll(ctx context.Context, scripts []*script.Script) ([]*Result, error) {
	batch := &Runner{cfg: r.cfg, logger: r.logger.WithCorrelationID(uuid.NewString())}

	results := make([]*Result, 0, len(scripts))
	var errs []error
	for _, s := range scripts {
		res, err := batch.Run(ctx, s)
		results = append(results, res)
		if err != nil {
			errs = append(errs, err)
			if ctx.Err() != nil {
				break
			}
		}
	}
	return results, errors.Join(errs...)
}

// unmet describes a failed step as an error for logging
func unmet(name string, sr StepResult) error {
	return mdwerror.Newf("step %d %s: %s", sr.Index, sr.Call, sr.Reason).
		WithCode(mdwerror.CodeExpectationFailed).
		WithOperation("runner.Run").
		WithDetail("script", name)
}

func skipped(index int, step script.Step, reason string) StepResult {
	return StepResult{
		Index:  index,
		Op:     step.Op,
		Call:   step.String(),
		Status: StatusSkipped,
		Reason: reason,
	}
}

// execute performs one step and compares it with its expectations
func (r *Runner) execute(list nullsafe.List[*string], index int, step script.Step) StepResult {
	token := r.cfg.Runner.NullToken
	sr := StepResult{
		Index:    index,
		Op:       step.Op,
		Call:     step.String(),
		Expected: step.ExpectedCode(),
	}

	result, err := apply(list, step, token)
	sr.Result = result
	sr.Contents = script.Texts(list.Values())
	if err != nil {
		sr.Code = codeOf(err)
		sr.Error = err.Error()
	}

	sr.Status, sr.Reason = judge(list, step, sr, token)
	return sr
}

func judge(list nullsafe.List[*string], step script.Step, sr StepResult, token string) (Status, string) {
	switch {
	case sr.Expected == "" && sr.Code != "":
		return StatusFailed, fmt.Sprintf("unexpected %s: %s", sr.Code, sr.Error)
	case sr.Expected != "" && sr.Code == "":
		return StatusFailed, fmt.Sprintf("expected %s, got success", sr.Expected)
	case sr.Expected != sr.Code:
		return StatusFailed, fmt.Sprintf("expected %s, got %s", sr.Expected, sr.Code)
	}

	if step.Result != nil && sr.Code == "" {
		want := script.Text(script.Element(step.Result, token))
		if sr.Result != want {
			return StatusFailed, fmt.Sprintf("result %s, want %s", sr.Result, want)
		}
	}

	if step.Want != nil {
		want := script.Elements(step.Want, token)
		got := list.Values()
		if !slicex.EqualBy(got, want, script.Same) {
			return StatusFailed, fmt.Sprintf("contents %s, want %s", script.Texts(got), script.Texts(want))
		}
	}

	return StatusPassed, ""
}

// apply runs the step's operation and renders its return value
func apply(list nullsafe.List[*string], step script.Step, token string) (string, error) {
	value := script.Element(step.Value, token)

	switch step.Op {
	case script.OpAppend:
		return "", list.Append(value)
	case script.OpInsert:
		return "", list.Insert(step.Index, value)
	case script.OpAssign:
		prev, err := list.Set(step.Index, value)
		if err != nil {
			return "", err
		}
		return script.Text(prev), nil
	case script.OpAppendAll:
		return "", list.AppendAll(script.Elements(step.Values, token))
	case script.OpInsertAll:
		return "", list.InsertAll(step.Index, script.Elements(step.Values, token))
	case script.OpGet:
		v, err := list.Get(step.Index)
		if err != nil {
			return "", err
		}
		return script.Text(v), nil
	case script.OpRemoveAt:
		v, err := list.RemoveAt(step.Index)
		if err != nil {
			return "", err
		}
		return script.Text(v), nil
	case script.OpRemove:
		if !list.RemoveFunc(matcher(value)) {
			return "", mdwerror.Newf("no element equal to %s", script.Text(value)).
				WithCode(mdwerror.CodeNoSuchElement).
				WithOperation("remove").
				WithDetail("size", list.Len())
		}
		return script.Text(value), nil
	case script.OpClear:
		list.Clear()
		return "", nil
	case script.OpSize:
		return strconv.Itoa(list.Len()), nil
	case script.OpContains:
		return strconv.FormatBool(list.ContainsFunc(matcher(value))), nil
	default:
		return "", mdwerror.Newf("unsupported operation %q", step.Op).
			WithCode(mdwerror.CodeInvalidScript).
			WithOperation("runner.apply")
	}
}

func matcher(value *string) func(*string) bool {
	return func(e *string) bool { return script.Same(e, value) }
}

func codeOf(err error) mdwerror.Code {
	var coded *mdwerror.Error
	if errors.As(err, &coded) {
		return coded.Code()
	}
	return mdwerror.CodeUnknown
}
