// Copyright 2026 The Pixelveil Authors
// SPDX-License-Identifier: Apache-2.0

// Package tui provides the interactive wizard front end. This is a
// separate package from cmd/pixelveil/commands so that the
// charmbracelet/bubbletea dependency closure is only linked into
// binaries that import it.
//
// The wizard collects the same inputs the embed/extract flags
// express — carrier, payload, output path, passphrase, compression —
// then drives lib/pipeline with progress routed through the
// bubbletea message loop.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pixelveil/pixelveil/cmd/pixelveil/cli"
)

// Command returns the "tui" subcommand that launches the interactive
// wizard.
func Command() *cli.Command {
	return &cli.Command{
		Name:    "tui",
		Summary: "Interactive embed/extract wizard",
		Description: `Launch an interactive terminal UI that walks through hiding or
recovering a payload: pick the files with a built-in browser, type
the options, and watch the pipeline phases as they run.`,
		Usage: "pixelveil tui",
		Examples: []cli.Example{
			{
				Description: "Start the wizard",
				Command:     "pixelveil tui",
			},
		},
		Run: func(args []string) error {
			program := tea.NewProgram(NewModel(), tea.WithAltScreen())
			_, err := program.Run()
			return err
		},
	}
}
