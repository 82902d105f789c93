// ============================================================================
// nslist - Null-Safe Sequences
// ============================================================================
//
// Package:     report
// Description: Renders script run results as styled text or JSON
// Author:      Mike Stoffels
// Created:     2026-10-16
// License:     MIT
// ============================================================================

package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"

	mdwerror "github.com/msto63/nslist/foundation/core/error"
	"github.com/msto63/nslist/internal/runner"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Format selects how results are rendered
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// ParseFormat parses a report format name; "" means text
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case FormatText, "":
		return FormatText, nil
	case FormatJSON:
		return FormatJSON, nil
	default:
		return "", mdwerror.Newf("unknown report format %q, want text or json", s).
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("report.ParseFormat").
			WithDetail("format", s)
	}
}

// Write renders results to w in the given format
func Write(w io.Writer, results []*runner.Result, format Format) error {
	switch format {
	case FormatJSON:
		data, err := JSON(results)
		if err != nil {
			return err
		}
		_, err = w.Write(append(data, '\n'))
		return err
	case FormatText, "":
		var b strings.Builder
		for _, res := range results {
			b.WriteString(Text(res))
			b.WriteString("\n")
		}
		b.WriteString(Summary(results))
		b.WriteString("\n")
		_, err := io.WriteString(w, b.String())
		return err
	default:
		return mdwerror.Newf("unknown report format %q", format).
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("report.Write")
	}
}

// JSON renders results as an indented JSON document
func JSON(results []*runner.Result) ([]byte, error) {
	data, err := json.MarshalIndent(map[string]interface{}{
		"results": results,
		"ok":      allOK(results),
	}, "", "  ")
	if err != nil {
		return nil, mdwerror.Wrap(err, "failed to encode report").
			WithCode(mdwerror.CodeInternal).
			WithOperation("report.JSON")
	}
	return data, nil
}

// Text renders a single result as a styled block
func Text(res *runner.Result) string {
	var b strings.Builder

	b.WriteString(RenderTitle(res.Script))
	b.WriteString("  ")
	b.WriteString(SubtitleStyle.Render(fmt.Sprintf("%s  run %s", res.List, shortID(res.RunID))))
	b.WriteString("\n")

	width := 0
	for _, step := range res.Steps {
		width = max(width, len(step.Call))
	}

	for _, step := range res.Steps {
		b.WriteString("  ")
		b.WriteString(stepLine(step, width))
		b.WriteString("\n")
	}

	if res.Error != "" {
		b.WriteString("  ")
		b.WriteString(RenderError(res.Error))
		b.WriteString("\n")
	}

	counts := fmt.Sprintf("%d passed, %d failed, %d skipped in %s",
		res.Passed, res.Failed, res.Skipped, res.Duration.Round(time.Microsecond))
	b.WriteString("  ")
	if res.OK() {
		b.WriteString(StatusOKStyle.Render(counts))
	} else {
		b.WriteString(StatusErrorStyle.Render(counts))
	}
	b.WriteString("  ")
	b.WriteString(ContentsStyle.Render(res.Contents))
	b.WriteString("\n")

	return b.String()
}

func stepLine(step runner.StepResult, width int) string {
	call := fmt.Sprintf("%-*s", width, step.Call)

	switch step.Status {
	case runner.StatusPassed:
		outcome := step.Result
		if step.Code != "" {
			outcome = CodeStyle.Render(step.Code.String())
		}
		return strings.TrimRight(fmt.Sprintf("%s %s  %s  %s",
			StatusOKStyle.Render("✓"), call, outcome, ContentsStyle.Render(step.Contents)), " ")
	case runner.StatusFailed:
		return fmt.Sprintf("%s %s  %s",
			StatusErrorStyle.Render("✗"), call, StatusErrorStyle.Render(step.Reason))
	default:
		return fmt.Sprintf("%s %s  %s",
			StatusSkippedStyle.Render("-"), call, StatusSkippedStyle.Render(step.Reason))
	}
}

// Summary renders the totals over all results in a box
func Summary(results []*runner.Result) string {
	var passed, failed, skipped, broken int
	for _, res := range results {
		passed += res.Passed
		failed += res.Failed
		skipped += res.Skipped
		if res.Error != "" {
			broken++
		}
	}

	line := fmt.Sprintf("%d scripts: %d steps passed, %d failed, %d skipped", len(results), passed, failed, skipped)
	if broken > 0 {
		line += fmt.Sprintf(", %d aborted", broken)
	}

	style := StatusOKStyle
	if !allOK(results) {
		style = StatusErrorStyle
	}
	return BoxStyle.Render(style.Render(line))
}

func allOK(results []*runner.Result) bool {
	for _, res := range results {
		if !res.OK() {
			return false
		}
	}
	return true
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
