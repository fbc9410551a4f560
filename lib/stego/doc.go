// Copyright 2026 The Pixelveil Authors
// SPDX-License-Identifier: Apache-2.0

// Package stego implements least-significant-bit steganography over a
// carrier pixel buffer.
//
// Each payload byte is written most-significant-bit first into the
// LSB of eight consecutive channel bytes, scanning the carrier in
// row-major R,G,B order. A single 0x00 delimiter byte terminates the
// payload; extraction stops at the first fully-assembled zero byte.
// The scan order and bit order are identical on both sides, so
// [Extract] after [Embed] returns the original payload for any input
// that passes [HasCapacity].
//
// Key exports:
//
//   - [HasCapacity] -- whether a payload (plus delimiter) fits
//   - [Embed] / [EmbedWorkers] -- write payload bits into the carrier
//   - [Extract] -- recover payload bytes from the carrier
//   - [ErrInsufficientCapacity] -- returned before any mutation when
//     the carrier is too small
//
// Embedding mutates the carrier in place. Each channel byte's new
// value depends only on its own old value and one payload bit, so
// [EmbedWorkers] can split the byte range across goroutines without
// synchronization.
package stego
