// Copyright 2026 The Pixelveil Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/pixelveil/pixelveil/cmd/pixelveil/cli"
	"github.com/pixelveil/pixelveil/lib/carrier"
	"github.com/pixelveil/pixelveil/lib/stego"
)

// CapacityCommand returns the "capacity" subcommand: the capacity
// oracle exposed for humans. With --data it also answers whether a
// specific payload file would fit, exiting non-zero when it would not
// (scriptable without parsing output).
func CapacityCommand() *cli.Command {
	var dataPath string

	return &cli.Command{
		Name:    "capacity",
		Summary: "Report how much payload a carrier image can hold",
		Description: `Report the payload capacity of a carrier image: one bit per RGB
channel byte, minus the one-byte payload delimiter.

With --data, additionally check whether that payload file fits. A
payload that does not fit exits with status 1.`,
		Usage: "pixelveil capacity <image> [--data <file>]",
		Examples: []cli.Example{
			{
				Description: "Show the capacity of photo.png",
				Command:     "pixelveil capacity photo.png",
			},
			{
				Description: "Check whether message.txt fits in photo.png",
				Command:     "pixelveil capacity photo.png --data message.txt",
			},
		},
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("capacity", pflag.ContinueOnError)
			flagSet.StringVarP(&dataPath, "data", "d", "", "payload file to check against the capacity")
			return flagSet
		},
		Run: func(args []string) error {
			if len(args) != 1 {
				return fmt.Errorf("exactly one carrier image path is required")
			}

			image, err := carrier.Load(args[0])
			if err != nil {
				return err
			}

			capacityBytes := image.Bits()/8 - 1
			if capacityBytes < 0 {
				capacityBytes = 0
			}
			fmt.Printf("%dx%d carrier: %d bytes of payload capacity (%d channel bits)\n",
				image.Width, image.Height, capacityBytes, image.Bits())

			if dataPath == "" {
				return nil
			}

			payload, err := os.ReadFile(dataPath)
			if err != nil {
				return fmt.Errorf("reading payload file: %w", err)
			}
			if !stego.HasCapacity(len(payload), image) {
				fmt.Printf("%s does NOT fit: %d bytes payload, %d bytes capacity\n",
					dataPath, len(payload), capacityBytes)
				return &cli.ExitError{Code: 1}
			}
			fmt.Printf("%s fits: %d of %d bytes used\n", dataPath, len(payload), capacityBytes)
			return nil
		},
	}
}
