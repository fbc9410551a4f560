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

// EmbedCommand returns the "embed" subcommand.
func EmbedCommand() *cli.Command {
	var (
		carrierPath string
		dataPath    string
		outputPath  string
		passphrase  string
		compress    bool
		workers     int
		configPath  string
		verbose     bool

		flagSet *pflag.FlagSet
	)

	return &cli.Command{
		Name:    "embed",
		Summary: "Hide a payload file inside a carrier image",
		Description: `Embed a payload file into the least significant bits of a carrier
image's RGB channels.

With --key, the payload is encrypted with AES-256-GCM before
embedding; the same key must be given to extract. With --compress,
the (possibly encrypted) payload is zlib-compressed and marked, and
extract must be run with --decompress.

Lossy carriers (JPEG, GIF) are accepted as input, but the output is
always written to a lossless format — re-encoding through a lossy
format would destroy the embedded bits. After saving, the output file
is re-read and verified to round-trip the pixel data exactly.`,
		Usage: "pixelveil embed --carrier <image> --data <file> --output <image> [flags]",
		Examples: []cli.Example{
			{
				Description: "Hide message.txt inside photo.png",
				Command:     "pixelveil embed --carrier photo.png --data message.txt --output hidden.png",
			},
			{
				Description: "Encrypt with a passphrase and compress",
				Command:     "pixelveil embed -c photo.png -d message.txt -o hidden.png --key secret --compress",
			},
		},
		Flags: func() *pflag.FlagSet {
			flagSet = pflag.NewFlagSet("embed", pflag.ContinueOnError)
			flagSet.StringVarP(&carrierPath, "carrier", "c", "", "carrier image to hide the payload in")
			flagSet.StringVarP(&dataPath, "data", "d", "", "payload file to hide")
			flagSet.StringVarP(&outputPath, "output", "o", "", "where to write the embedded image")
			flagSet.StringVarP(&passphrase, "key", "k", "", "passphrase for AES-256-GCM encryption (max 32 bytes)")
			flagSet.BoolVar(&compress, "compress", false, "compress the payload before embedding")
			flagSet.IntVar(&workers, "workers", 0, "embedding worker count (0 = automatic)")
			flagSet.StringVar(&configPath, "config", "", "path to a pixelveil config file")
			flagSet.BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
			return flagSet
		},
		Run: func(args []string) error {
			if len(args) > 0 {
				return fmt.Errorf("unexpected argument: %s", args[0])
			}
			if carrierPath == "" || dataPath == "" || outputPath == "" {
				return fmt.Errorf("--carrier, --data, and --output are required")
			}

			logger := cli.NewCommandLogger(verbose)
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}

			// Config supplies defaults only for flags the user did
			// not set explicitly.
			if !flagSet.Changed("compress") {
				compress = cfg.Compress
			}
			if !flagSet.Changed("workers") {
				workers = cfg.Workers
			}
			if cfg.OutputDir != "" && !filepath.IsAbs(outputPath) {
				outputPath = filepath.Join(cfg.OutputDir, outputPath)
			}

			return runEmbed(logger, carrierPath, dataPath, outputPath, pipeline.Options{
				Passphrase: passphrase,
				Compress:   compress,
				Workers:    workers,
			})
		},
	}
}

func runEmbed(logger *slog.Logger, carrierPath, dataPath, outputPath string, opts pipeline.Options) error {
	progress := newConsoleProgress(os.Stdout)

	progress.Update("Loading carrier image")
	lossless, err := carrier.IsLossless(carrierPath)
	if err != nil {
		return err
	}
	image, err := carrier.Load(carrierPath)
	if err != nil {
		return err
	}
	if !lossless {
		progress.Warn("carrier image is lossy; output will be written as lossless PNG")
	}
	outputPath = carrier.EnsureLosslessPath(outputPath)

	progress.Update("Reading payload file")
	payload, err := os.ReadFile(dataPath)
	if err != nil {
		return fmt.Errorf("reading payload file: %w", err)
	}
	logger.Debug("payload loaded",
		"bytes", len(payload),
		"carrier_bits", image.Bits(),
		"compress", opts.Compress,
		"encrypted", opts.Passphrase != "")

	if err := pipeline.Embed(payload, image, opts, progress); err != nil {
		return err
	}

	progress.Update("Saving embedded image")
	if err := carrier.Save(image, outputPath); err != nil {
		return err
	}

	// The embedded bits live in the pixel values, so the save path
	// must be bit-exact. Re-read the file and compare digests; a
	// mismatch means the output is useless and should not be trusted.
	reloaded, err := carrier.Load(outputPath)
	if err != nil {
		return fmt.Errorf("verifying output image: %w", err)
	}
	if reloaded.Digest() != image.Digest() {
		return fmt.Errorf("output image %s did not round-trip losslessly; the embedded payload would be unrecoverable", outputPath)
	}

	progress.Finish("Embedding completed => " + outputPath)
	return nil
}
