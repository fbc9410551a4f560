// Copyright 2026 The Pixelveil Authors
// SPDX-License-Identifier: Apache-2.0

package pipeline

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/pixelveil/pixelveil/lib/carrier"
	"github.com/pixelveil/pixelveil/lib/envelope"
	"github.com/pixelveil/pixelveil/lib/frame"
	"github.com/pixelveil/pixelveil/lib/stego"
)

// recordingProgress captures notifications for ordering assertions.
type recordingProgress struct {
	updates  []string
	finished []string
}

func (p *recordingProgress) Update(message string) { p.updates = append(p.updates, message) }
func (p *recordingProgress) Finish(message string) { p.finished = append(p.finished, message) }

func TestEmbedExtract_Plain(t *testing.T) {
	// Scenario: no key, no compression, blank carrier.
	payload := []byte("Hello, world!")
	image := carrier.New(10, 10)

	if err := Embed(payload, image, Options{}, nil); err != nil {
		t.Fatalf("Embed: %v", err)
	}

	got, err := Extract(image, Options{}, nil)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if !bytes.Equal(got, payload) {
		t.Errorf("Extract = %q, want %q", got, payload)
	}
}

func TestEmbedExtract_Encrypted(t *testing.T) {
	payload := []byte("Hello, world!")
	image := carrier.New(20, 20)

	if err := Embed(payload, image, Options{Passphrase: "secret"}, nil); err != nil {
		t.Fatalf("Embed: %v", err)
	}

	got, err := Extract(image, Options{Passphrase: "secret"}, nil)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if !bytes.Equal(got, payload) {
		t.Errorf("Extract = %q, want %q", got, payload)
	}
}

func TestExtract_WrongKey(t *testing.T) {
	image := carrier.New(20, 20)
	if err := Embed([]byte("Hello, world!"), image, Options{Passphrase: "secret"}, nil); err != nil {
		t.Fatalf("Embed: %v", err)
	}

	_, err := Extract(image, Options{Passphrase: "different"}, nil)
	if !errors.Is(err, envelope.ErrDecryptionFailed) {
		t.Errorf("Extract with wrong key = %v, want ErrDecryptionFailed", err)
	}
}

func TestEmbed_InsufficientCapacity(t *testing.T) {
	// A 1x1 carrier holds 3 bits; any non-empty payload needs at
	// least 16. The carrier must not be touched.
	image := carrier.New(1, 1)
	original := append([]uint8(nil), image.Pix...)

	err := Embed([]byte("x"), image, Options{}, nil)
	if !errors.Is(err, stego.ErrInsufficientCapacity) {
		t.Fatalf("Embed = %v, want ErrInsufficientCapacity", err)
	}
	if !bytes.Equal(image.Pix, original) {
		t.Error("carrier mutated by failed embed")
	}
}

func TestEmbedExtract_Compressed(t *testing.T) {
	// Scenario: a large repetitive payload with compression. The
	// framed intermediate must carry the marker, which extraction
	// verifies before inflating.
	payload := []byte(strings.Repeat("Large message!", 1000))
	image := carrier.New(100, 100)

	// Raw payload would not fit; compression is what makes it fit.
	if stego.HasCapacity(len(payload), image) {
		t.Fatal("test carrier too large: raw payload should not fit")
	}

	if err := Embed(payload, image, Options{Compress: true}, nil); err != nil {
		t.Fatalf("Embed: %v", err)
	}

	// The embedded intermediate is the framed text.
	if embedded := stego.Extract(image); !frame.IsFramed(string(embedded)) {
		t.Error("embedded intermediate does not start with the compression marker")
	}

	got, err := Extract(image, Options{Compress: true}, nil)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if !bytes.Equal(got, payload) {
		t.Error("compressed round-trip mismatch")
	}
}

func TestEmbedExtract_EncryptedAndCompressed(t *testing.T) {
	payload := []byte(strings.Repeat("secret payload ", 50))
	image := carrier.New(60, 60)

	opts := Options{Passphrase: "secret", Compress: true}
	if err := Embed(payload, image, opts, nil); err != nil {
		t.Fatalf("Embed: %v", err)
	}

	got, err := Extract(image, opts, nil)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if !bytes.Equal(got, payload) {
		t.Error("encrypted+compressed round-trip mismatch")
	}
}

func TestExtract_DecompressionNotRequested(t *testing.T) {
	image := carrier.New(30, 30)
	if err := Embed([]byte("hello"), image, Options{Compress: true}, nil); err != nil {
		t.Fatalf("Embed: %v", err)
	}

	_, err := Extract(image, Options{}, nil)
	if !errors.Is(err, frame.ErrUnexpectedCompression) {
		t.Errorf("Extract = %v, want ErrUnexpectedCompression", err)
	}
}

func TestExtract_DecompressionExpectedButAbsent(t *testing.T) {
	image := carrier.New(30, 30)
	if err := Embed([]byte("hello"), image, Options{}, nil); err != nil {
		t.Fatalf("Embed: %v", err)
	}

	_, err := Extract(image, Options{Compress: true}, nil)
	if !errors.Is(err, frame.ErrNotCompressed) {
		t.Errorf("Extract = %v, want ErrNotCompressed", err)
	}
}

func TestExtract_GarbageIsNotText(t *testing.T) {
	// A carrier with noise in its LSBs and no embedded payload
	// yields invalid UTF-8, which surfaces as ErrNotText.
	image := carrier.New(30, 30)
	state := uint32(0x12345678)
	for i := range image.Pix {
		// xorshift for varied pixel values; the forced LSB of 1
		// guarantees no delimiter byte ever assembles.
		state ^= state << 13
		state ^= state >> 17
		state ^= state << 5
		image.Pix[i] = uint8(state) | 1
	}

	_, err := Extract(image, Options{}, nil)
	if err == nil {
		t.Fatal("Extract of noise succeeded")
	}
	if !errors.Is(err, ErrNotText) {
		t.Errorf("Extract = %v, want ErrNotText", err)
	}
}

func TestEmbed_ProgressOrdering(t *testing.T) {
	progress := &recordingProgress{}
	image := carrier.New(40, 40)

	opts := Options{Passphrase: "secret", Compress: true}
	if err := Embed([]byte("watch the phases"), image, opts, progress); err != nil {
		t.Fatalf("Embed: %v", err)
	}

	want := []string{"Encrypting payload", "Compressing payload", "Embedding payload into carrier"}
	if len(progress.updates) != len(want) {
		t.Fatalf("updates = %v, want %v", progress.updates, want)
	}
	for i, message := range want {
		if progress.updates[i] != message {
			t.Errorf("update %d = %q, want %q", i, progress.updates[i], message)
		}
	}
	if len(progress.finished) != 1 {
		t.Errorf("finished = %v, want exactly one notification", progress.finished)
	}
}

func TestExtract_ProgressOrdering(t *testing.T) {
	image := carrier.New(40, 40)
	opts := Options{Passphrase: "secret", Compress: true}
	if err := Embed([]byte("watch the phases"), image, opts, nil); err != nil {
		t.Fatalf("Embed: %v", err)
	}

	progress := &recordingProgress{}
	if _, err := Extract(image, opts, progress); err != nil {
		t.Fatalf("Extract: %v", err)
	}

	// Decompression must come before decryption: the layers unwind
	// in reverse of how Embed applied them.
	want := []string{"Extracting payload from carrier", "Decompressing payload", "Decrypting payload"}
	if len(progress.updates) != len(want) {
		t.Fatalf("updates = %v, want %v", progress.updates, want)
	}
	for i, message := range want {
		if progress.updates[i] != message {
			t.Errorf("update %d = %q, want %q", i, progress.updates[i], message)
		}
	}
}

func TestEmbed_OverlongPassphrase(t *testing.T) {
	image := carrier.New(20, 20)
	err := Embed([]byte("x"), image, Options{Passphrase: strings.Repeat("p", 33)}, nil)
	if !errors.Is(err, envelope.ErrKeyTooLong) {
		t.Errorf("Embed = %v, want ErrKeyTooLong", err)
	}
}
