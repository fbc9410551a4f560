// Copyright 2026 The Pixelveil Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/pflag"

	"github.com/pixelveil/pixelveil/cmd/pixelveil/cli"
	"github.com/pixelveil/pixelveil/lib/carrier"
	"github.com/pixelveil/pixelveil/lib/config"
	"github.com/pixelveil/pixelveil/lib/pipeline"
)

// ExtractCommand returns the "extract" subcommand.
func ExtractCommand() *cli.Command {
	var (
		carrierPath string
		outputPath  string
		passphrase  string
		decompress  bool
		configPath  string
		verbose     bool
	)

	return &cli.Command{
		Name:    "extract",
		Summary: "Recover a hidden payload from an image",
		Description: `Extract a payload previously embedded with "pixelveil embed".

The options must mirror the embed invocation: --key if the payload
was encrypted, --decompress if it was compressed. A compressed
payload extracted without --decompress is an error (and vice versa) —
the compression marker must agree with the requested options.`,
		Usage: "pixelveil extract --carrier <image> --output <file> [flags]",
		Examples: []cli.Example{
			{
				Description: "Recover the payload from hidden.png",
				Command:     "pixelveil extract --carrier hidden.png --output message.txt",
			},
			{
				Description: "Recover an encrypted, compressed payload",
				Command:     "pixelveil extract -c hidden.png -o message.txt --key secret --decompress",
			},
		},
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("extract", pflag.ContinueOnError)
			flagSet.StringVarP(&carrierPath, "carrier", "c", "", "image containing the hidden payload")
			flagSet.StringVarP(&outputPath, "output", "o", "", "where to write the recovered payload")
			flagSet.StringVarP(&passphrase, "key", "k", "", "passphrase the payload was encrypted with")
			flagSet.BoolVar(&decompress, "decompress", false, "decompress the payload after extraction")
			flagSet.StringVar(&configPath, "config", "", "path to a pixelveil config file")
			flagSet.BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
			return flagSet
		},
		Run: func(args []string) error {
			if len(args) > 0 {
				return fmt.Errorf("unexpected argument: %s", args[0])
			}
			if carrierPath == "" || outputPath == "" {
				return fmt.Errorf("--carrier and --output are required")
			}

			logger := cli.NewCommandLogger(verbose)
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if cfg.OutputDir != "" && !filepath.IsAbs(outputPath) {
				outputPath = filepath.Join(cfg.OutputDir, outputPath)
			}

			return runExtract(logger, carrierPath, outputPath, pipeline.Options{
				Passphrase: passphrase,
				Compress:   decompress,
			})
		},
	}
}

func runExtract(logger *slog.Logger, carrierPath, outputPath string, opts pipeline.Options) error {
	progress := newConsoleProgress(os.Stdout)

	progress.Update("Loading carrier image")
	image, err := carrier.Load(carrierPath)
	if err != nil {
		return err
	}

	payload, err := pipeline.Extract(image, opts, progress)
	if err != nil {
		return err
	}
	logger.Debug("payload recovered", "bytes", len(payload))

	progress.Update("Saving recovered payload")
	if parent := filepath.Dir(outputPath); parent != "." {
		if err := os.MkdirAll(parent, 0o755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}
	if err := os.WriteFile(outputPath, payload, 0o644); err != nil {
		return fmt.Errorf("writing recovered payload: %w", err)
	}

	progress.Finish("Extraction completed => " + outputPath)
	return nil
}
