// SPDX-License-Identifier: MIT

package main

import "github.com/charmbracelet/lipgloss"

// Color palette for human-facing output.
const (
	ColorPrimary = lipgloss.Color("#7C3AED")
	ColorMuted   = lipgloss.Color("#6B7280")
	ColorSuccess = lipgloss.Color("#10B981")
	ColorError   = lipgloss.Color("#EF4444")
	ColorWarning = lipgloss.Color("#F59E0B")
)

// Styles for prompts and reports. Raw encode/decode results are printed
// unstyled so they stay pipeable.
var (
	// TitleStyle is for banners and section titles.
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	// LabelStyle is for "Key:"-style labels in reports.
	LabelStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorWarning)

	// SuccessStyle marks an admissible key or a finished operation.
	SuccessStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess)

	// ErrorStyle marks a rejected key or input.
	ErrorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorError)

	// HintStyle is for examples and re-prompt hints.
	HintStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Italic(true)
)
