// Copyright 2026 The Pixelveil Authors
// SPDX-License-Identifier: Apache-2.0

// Package cli provides the command-line framework for the pixelveil CLI.
//
// The central type is [Command], which represents a named subcommand with
// optional nested [Command.Subcommands], a [pflag.FlagSet] factory, and a
// Run function. Commands are assembled into a tree in
// cmd/pixelveil/commands and dispatched via [Command.Execute], which
// handles flag parsing, subcommand routing, and structured help output
// with examples.
//
// When a user types an unknown subcommand or flag, the framework computes
// Levenshtein edit distance against all known names and suggests the
// closest match (threshold: distance <= 3). This is implemented in
// suggest.go.
//
// [ExitError] lets a command request a specific non-zero exit code
// without an extra "error:" line; the main function checks for it via
// the ExitCode method.
package cli
