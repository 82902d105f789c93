// ============================================================================
// nslist - Null-Safe Sequences
// ============================================================================
//
// Package:     report
// Description: Terminal styles for run reports
// Author:      Mike Stoffels
// Created:     2026-10-16
// License:     MIT
// ============================================================================

package report

import (
	"github.com/charmbracelet/lipgloss"
)

// Colors
var (
	colorPrimary   = lipgloss.Color("#7C3AED")
	colorSecondary = lipgloss.Color("#10B981")
	colorAccent    = lipgloss.Color("#F59E0B")
	colorError     = lipgloss.Color("#EF4444")
	colorMuted     = lipgloss.Color("#6B7280")
)

// Styles
var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Italic(true)

	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorMuted).
			Padding(0, 1)

	StatusOKStyle = lipgloss.NewStyle().
			Foreground(colorSecondary)

	StatusErrorStyle = lipgloss.NewStyle().
				Foreground(colorError)

	StatusSkippedStyle = lipgloss.NewStyle().
				Foreground(colorAccent)

	CodeStyle = lipgloss.NewStyle().
			Foreground(colorAccent).
			Bold(true)

	ContentsStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	HelpStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			MarginTop(1)
)

// RenderTitle renders a section title
func RenderTitle(title string) string {
	return TitleStyle.Render(title)
}

// RenderError renders an error line
func RenderError(err string) string {
	return StatusErrorStyle.Render("error: " + err)
}

// RenderHelp renders a hint below a report
func RenderHelp(help string) string {
	return HelpStyle.Render(help)
}
