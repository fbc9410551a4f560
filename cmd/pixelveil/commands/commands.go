// Copyright 2026 The Pixelveil Authors
// SPDX-License-Identifier: Apache-2.0

// Package commands builds the complete pixelveil CLI command tree.
// Each subcommand is a [cli.Command] constructed by a function in
// this package (or in cmd/pixelveil/tui, which is kept separate so
// the bubbletea dependency closure is only linked where needed).
package commands

import (
	"fmt"

	"github.com/pixelveil/pixelveil/cmd/pixelveil/cli"
	"github.com/pixelveil/pixelveil/cmd/pixelveil/tui"
	"github.com/pixelveil/pixelveil/lib/version"
)

// Root builds and returns the complete pixelveil CLI command tree.
func Root() *cli.Command {
	return &cli.Command{
		Name: "pixelveil",
		Description: `Pixelveil: hide data inside images.

Embeds a text payload in the least significant bits of an image's RGB
channels, with optional AES-256-GCM encryption and zlib compression,
and recovers it later. One payload occupies one carrier image; the
carrier looks unchanged to the eye.`,
		Subcommands: []*cli.Command{
			EmbedCommand(),
			ExtractCommand(),
			CapacityCommand(),
			tui.Command(),
			VersionCommand(),
		},
	}
}

// VersionCommand reports build version information.
func VersionCommand() *cli.Command {
	return &cli.Command{
		Name:    "version",
		Summary: "Print version information",
		Usage:   "pixelveil version",
		Run: func(args []string) error {
			fmt.Println(version.Full())
			return nil
		},
	}
}
