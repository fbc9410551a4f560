// Copyright 2026 The Pixelveil Authors
// SPDX-License-Identifier: Apache-2.0

// Package carrier provides the pixel buffer that holds hidden payload
// data, plus the file I/O to move it between disk formats and memory.
//
// A [Image] is a flat row-major RGB buffer: three 8-bit channel bytes
// per pixel, addressable through the single linear index function
// [Image.Index]. All steganographic reads and writes go through that
// buffer — the codec in lib/stego never touches files or formats.
//
// Key exports:
//
//   - [Image] -- width, height, and flat RGB channel bytes
//   - [Load] / [Save] -- decode and encode image files (PNG, JPEG,
//     GIF, BMP, TIFF in; lossless formats out)
//   - [IsLossless] -- whether a path's format preserves pixel data
//   - [Image.Digest] -- BLAKE3 hash of dimensions plus pixel data,
//     used to verify that saving and reloading preserves every byte
//
// Lossy formats (JPEG, GIF) may be loaded as carriers, but saving an
// embedded image to them would destroy the payload bits; [Save]
// rejects them and callers redirect lossy sources to PNG output.
package carrier
