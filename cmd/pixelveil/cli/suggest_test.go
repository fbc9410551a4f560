// Copyright 2026 The Pixelveil Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"testing"

	"github.com/spf13/pflag"
)

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"", "abc", 3},
		{"abc", "", 3},
		{"abc", "abc", 0},
		{"abc", "abd", 1}, // substitution
		{"abc", "ab", 1},  // deletion
		{"ab", "abc", 1},  // insertion
		{"abc", "bac", 2}, // transposition (counted as 2 edits)
		{"kitten", "sitting", 3},
		{"embed", "embde", 2},
		{"extract", "extrct", 1},
		{"capacity", "capactiy", 2},
	}

	for _, test := range tests {
		got := levenshtein(test.a, test.b)
		if got != test.want {
			t.Errorf("levenshtein(%q, %q) = %d, want %d", test.a, test.b, got, test.want)
		}
	}
}

func TestLevenshtein_Symmetric(t *testing.T) {
	pairs := [][2]string{
		{"abc", "abd"},
		{"hello", "helo"},
		{"embed", "embde"},
	}

	for _, pair := range pairs {
		forward := levenshtein(pair[0], pair[1])
		reverse := levenshtein(pair[1], pair[0])
		if forward != reverse {
			t.Errorf("levenshtein(%q, %q) = %d, but reverse = %d",
				pair[0], pair[1], forward, reverse)
		}
	}
}

func TestSuggestCommand(t *testing.T) {
	commands := []*Command{
		{Name: "embed"},
		{Name: "extract"},
		{Name: "capacity"},
		{Name: "version"},
	}

	tests := []struct {
		input string
		want  string
	}{
		{"embde", "embed"},
		{"extrat", "extract"},
		{"capactiy", "capacity"},
		{"vresion", "version"},
		{"zzzzzzzz", ""}, // nothing close enough
	}

	for _, test := range tests {
		got := suggestCommand(test.input, commands)
		if got != test.want {
			t.Errorf("suggestCommand(%q) = %q, want %q", test.input, got, test.want)
		}
	}
}

func TestSuggestFlag(t *testing.T) {
	makeFlags := func() *pflag.FlagSet {
		flagSet := pflag.NewFlagSet("embed", pflag.ContinueOnError)
		flagSet.String("carrier", "", "carrier image")
		flagSet.Bool("compress", false, "compress payload")
		flagSet.Int("workers", 0, "worker count")
		return flagSet
	}

	tests := []struct {
		args []string
		want string
	}{
		{[]string{"--carier", "x.png"}, "--carrier"},
		{[]string{"--comprses"}, "--compress"},
		{[]string{"--workesr=4"}, "--workers"},
		{[]string{"--carrier", "x.png"}, ""}, // defined flag, no suggestion
		{[]string{"--qqqqqqqq"}, ""},         // nothing close
	}

	for _, test := range tests {
		got := suggestFlag(test.args, makeFlags())
		if got != test.want {
			t.Errorf("suggestFlag(%v) = %q, want %q", test.args, got, test.want)
		}
	}
}
