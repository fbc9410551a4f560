// Copyright 2026 The Pixelveil Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import "github.com/charmbracelet/lipgloss"

// Theme defines the color palette for the interactive front end. All
// colors use lipgloss ANSI 256-color codes for broad terminal
// compatibility.
type Theme struct {
	NormalText lipgloss.Color
	FaintText  lipgloss.Color

	// Accent marks the focused choice and section headers.
	Accent lipgloss.Color

	// Success and Error color the final result line.
	Success lipgloss.Color
	Error   lipgloss.Color

	// Warning colors the lossy-carrier notice.
	Warning lipgloss.Color
}

// DefaultTheme is the built-in dark-terminal color scheme.
var DefaultTheme = Theme{
	NormalText: lipgloss.Color("252"),
	FaintText:  lipgloss.Color("245"),
	Accent:     lipgloss.Color("75"),
	Success:    lipgloss.Color("35"),
	Error:      lipgloss.Color("203"),
	Warning:    lipgloss.Color("214"),
}

// styles derives the concrete lipgloss styles used by the view from
// a theme. Built once at model construction.
type styles struct {
	title    lipgloss.Style
	normal   lipgloss.Style
	faint    lipgloss.Style
	selected lipgloss.Style
	success  lipgloss.Style
	failure  lipgloss.Style
	warning  lipgloss.Style
}

func newStyles(theme Theme) styles {
	return styles{
		title:    lipgloss.NewStyle().Foreground(theme.Accent).Bold(true),
		normal:   lipgloss.NewStyle().Foreground(theme.NormalText),
		faint:    lipgloss.NewStyle().Foreground(theme.FaintText),
		selected: lipgloss.NewStyle().Foreground(theme.Accent).Bold(true),
		success:  lipgloss.NewStyle().Foreground(theme.Success).Bold(true),
		failure:  lipgloss.NewStyle().Foreground(theme.Error),
		warning:  lipgloss.NewStyle().Foreground(theme.Warning),
	}
}
