// Copyright 2026 The Pixelveil Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// consoleProgress implements pipeline.Progress for the CLI front end.
// Phase transitions print one line each, styled when stdout is a
// color-capable terminal and plain when piped or redirected.
type consoleProgress struct {
	out    io.Writer
	styled bool

	stepStyle lipgloss.Style
	doneStyle lipgloss.Style
	warnStyle lipgloss.Style
}

// newConsoleProgress builds a progress printer for the given file.
// Styling requires both a terminal and a color profile better than
// plain ASCII.
func newConsoleProgress(out *os.File) *consoleProgress {
	styled := term.IsTerminal(int(out.Fd())) && termenv.ColorProfile() != termenv.Ascii
	return &consoleProgress{
		out:       out,
		styled:    styled,
		stepStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		doneStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("35")).Bold(true),
		warnStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
	}
}

func (p *consoleProgress) Update(message string) {
	if p.styled {
		fmt.Fprintln(p.out, p.stepStyle.Render("  "+message+"..."))
		return
	}
	fmt.Fprintln(p.out, message+"...")
}

func (p *consoleProgress) Finish(message string) {
	if p.styled {
		fmt.Fprintln(p.out, p.doneStyle.Render(message))
		return
	}
	fmt.Fprintln(p.out, message)
}

// Warn prints a warning line outside the normal phase sequence (for
// example, a lossy carrier being redirected to PNG output).
func (p *consoleProgress) Warn(message string) {
	if p.styled {
		fmt.Fprintln(p.out, p.warnStyle.Render("Warning: "+message))
		return
	}
	fmt.Fprintln(p.out, "Warning: "+message)
}
