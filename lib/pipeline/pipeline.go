// Copyright 2026 The Pixelveil Authors
// SPDX-License-Identifier: Apache-2.0

package pipeline

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/pixelveil/pixelveil/lib/carrier"
	"github.com/pixelveil/pixelveil/lib/envelope"
	"github.com/pixelveil/pixelveil/lib/frame"
	"github.com/pixelveil/pixelveil/lib/stego"
)

// ErrNotText is returned by Extract when the recovered bytes are not
// valid UTF-8. The LSB layer has no structural validation — a carrier
// with no embedded payload, or one whose payload was damaged by lossy
// re-encoding, yields noise, and this is where that noise surfaces.
var ErrNotText = errors.New("extracted payload is not valid text")

// Progress receives ordered human-readable notifications at each
// phase transition. Implementations are supplied by the front ends
// (the CLI prints styled lines, the TUI routes messages into its
// model); the pipeline itself holds no ambient progress state.
type Progress interface {
	// Update reports that a new phase has begun.
	Update(message string)

	// Finish reports successful completion of the whole operation.
	Finish(message string)
}

// NopProgress discards all notifications.
type NopProgress struct{}

func (NopProgress) Update(string) {}
func (NopProgress) Finish(string) {}

// Options controls the optional payload transformation layers. The
// zero value embeds the payload as-is.
type Options struct {
	// Passphrase enables AES-256-GCM encryption when non-empty. The
	// same passphrase must be supplied to extract.
	Passphrase string

	// Compress enables the zlib compression frame on embed, and
	// requires it on extract. A mismatch between this flag and the
	// embedded data is a hard error in both directions.
	Compress bool

	// Workers bounds the embedding worker pool. Zero selects
	// automatically based on payload size.
	Workers int
}

// Embed runs the payload through the optional encryption and
// compression layers, then writes the result into the carrier's pixel
// LSBs. The carrier is mutated in place, but only after the capacity
// check passes — an ErrInsufficientCapacity failure leaves it
// untouched. Encryption runs before compression regardless of flags.
func Embed(payload []byte, im *carrier.Image, opts Options, progress Progress) error {
	if progress == nil {
		progress = NopProgress{}
	}

	data := payload

	if opts.Passphrase != "" {
		progress.Update("Encrypting payload")
		key, err := envelope.DeriveKey(opts.Passphrase)
		if err != nil {
			return err
		}
		blob, err := envelope.Encrypt(data, key)
		if err != nil {
			return fmt.Errorf("encrypting payload: %w", err)
		}
		data = []byte(blob)
	}

	if opts.Compress {
		progress.Update("Compressing payload")
		framed, err := frame.Frame(data)
		if err != nil {
			return err
		}
		data = []byte(framed)
	}

	progress.Update("Embedding payload into carrier")
	if err := stego.EmbedWorkers(data, im, opts.Workers); err != nil {
		return err
	}

	progress.Finish("Payload embedded")
	return nil
}

// Extract reads the embedded bytes from the carrier's pixel LSBs and
// reverses the layers Embed applied: decompression first (enforcing
// that the compression marker's presence agrees with opts.Compress),
// then decryption. The recovered payload must be valid UTF-8;
// anything else is reported as ErrNotText.
func Extract(im *carrier.Image, opts Options, progress Progress) ([]byte, error) {
	if progress == nil {
		progress = NopProgress{}
	}

	progress.Update("Extracting payload from carrier")
	data := stego.Extract(im)

	if opts.Compress {
		progress.Update("Decompressing payload")
		unframed, err := frame.Unframe(string(data))
		if err != nil {
			return nil, err
		}
		data = unframed
	} else if frame.IsFramed(string(data)) {
		return nil, frame.ErrUnexpectedCompression
	}

	if opts.Passphrase != "" {
		progress.Update("Decrypting payload")
		key, err := envelope.DeriveKey(opts.Passphrase)
		if err != nil {
			return nil, err
		}
		plaintext, err := envelope.Decrypt(string(data), key)
		if err != nil {
			return nil, err
		}
		data = plaintext
	}

	if !utf8.Valid(data) {
		return nil, ErrNotText
	}

	progress.Finish("Payload extracted")
	return data, nil
}
